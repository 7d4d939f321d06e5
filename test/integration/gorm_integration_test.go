package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"neuranote-be/internal/entity"
	"neuranote-be/internal/repository/specification"
	"neuranote-be/internal/repository/unitofwork"
	"neuranote-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.TagRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check Transactional Note With Tags And Links", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		target := &entity.Note{
			Id:     uuid.New(),
			Title:  "Integration Target",
			UserId: user.Id,
		}
		err = uow.NoteRepository().Create(ctx, target)
		assert.NoError(t, err)

		source := &entity.Note{
			Id:      uuid.New(),
			Title:   "Integration Source",
			Content: "points at [[Integration Target]]",
			UserId:  user.Id,
		}
		err = uow.NoteRepository().Create(ctx, source)
		assert.NoError(t, err)

		tag := &entity.Tag{
			Id:     uuid.New(),
			Name:   "integration-" + uuid.New().String(),
			UserId: user.Id,
		}
		err = uow.TagRepository().Create(ctx, tag)
		assert.NoError(t, err)

		err = uow.NoteTagRepository().ReplaceForNote(ctx, source.Id, []uuid.UUID{tag.Id})
		assert.NoError(t, err)

		err = uow.NoteLinkRepository().ReplaceOutgoing(ctx, user.Id, source.Id, []uuid.UUID{target.Id})
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Verify the committed rows through fresh reads.
		found, err := uow.NoteRepository().FindOne(ctx,
			specification.ByID{ID: source.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		tags, err := uow.NoteTagRepository().FindTagsByNoteId(ctx, source.Id)
		assert.NoError(t, err)
		assert.Len(t, tags, 1)

		targetIds, err := uow.NoteLinkRepository().FindTargetIds(ctx, user.Id, source.Id)
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{target.Id}, targetIds)

		t.Log("Successfully created Note with Tag and Link in Transaction")
	})
}
