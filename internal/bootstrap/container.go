package bootstrap

import (
	"neuranote-be/internal/config"
	"neuranote-be/internal/controller"
	"neuranote-be/internal/pkg/logger"
	"neuranote-be/internal/repository/unitofwork"
	"neuranote-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	NoteController  controller.INoteController
	TagController   controller.ITagController
	GraphController controller.IGraphController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Services
	tagService := service.NewTagService(uowFactory)
	linkService := service.NewLinkService(sysLogger)
	noteService := service.NewNoteService(uowFactory, tagService, linkService, sysLogger)
	graphService := service.NewGraphService(uowFactory)

	return &Container{
		NoteController:  controller.NewNoteController(noteService),
		TagController:   controller.NewTagController(tagService),
		GraphController: controller.NewGraphController(graphService),

		Logger: sysLogger,
	}
}
