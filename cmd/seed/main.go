package main

import (
	"context"
	"log"
	"os"

	"neuranote-be/internal/dto"
	"neuranote-be/internal/model"
	"neuranote-be/internal/pkg/logger"
	"neuranote-be/internal/repository/unitofwork"
	"neuranote-be/internal/service"
	"neuranote-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo workspace through the service layer so tag creation and
// link resolution run exactly as they do for API writes.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()

	demoEmail := "demo@neuranote.local"
	var user model.User
	if err := db.Where("email = ?", demoEmail).First(&user).Error; err == nil {
		color.Yellow("Demo user already exists (%s), skipping seed.", user.Id)
		return
	}

	user = model.User{
		Id:       uuid.New(),
		Email:    demoEmail,
		FullName: "Demo User",
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Failed to create demo user: %v", err)
		os.Exit(1)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger("logs/seed.log", false)
	defer sysLogger.Sync()

	tagService := service.NewTagService(uowFactory)
	linkService := service.NewLinkService(sysLogger)
	noteService := service.NewNoteService(uowFactory, tagService, linkService, sysLogger)

	projects, err := noteService.Create(ctx, user.Id, &dto.CreateNoteRequest{
		Title:    "Projects",
		Content:  "Top level index of everything in flight.",
		TagNames: []string{"index"},
	})
	if err != nil {
		color.Red("Seed failed: %v", err)
		os.Exit(1)
	}

	seedNotes := []*dto.CreateNoteRequest{
		{
			Title:    "Reading List",
			Content:  "Books and papers queued up. Summaries land under [[Projects]].",
			TagNames: []string{"reading"},
		},
		{
			Title:    "Garden Plan",
			Content:  "Spring layout draft. Supplies tracked in [[Shopping]].",
			ParentId: &projects.Id,
			TagNames: []string{"home", "outdoors"},
		},
		{
			Title:    "Shopping",
			Content:  "Seeds, soil, trellis netting.",
			ParentId: &projects.Id,
			TagNames: []string{"home"},
		},
		{
			Title:    "Weekly Review",
			Content:  "Check [[Projects]], [[Reading List]] and [[Garden Plan]] every Sunday.",
			TagNames: []string{"routine"},
		},
	}

	for _, req := range seedNotes {
		if _, err := noteService.Create(ctx, user.Id, req); err != nil {
			color.Red("Seed failed on %q: %v", req.Title, err)
			os.Exit(1)
		}
	}

	color.Green("Seeded demo workspace for %s (user id %s).", demoEmail, user.Id)
}
