package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/pkg/database"

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

	assert.NotNil(t, uow.ContactRepository())
	assert.NotNil(t, uow.ChatSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Contact Repository", func(t *testing.T) {
		count, err := uow.ContactRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Contact count: %d", count)
	})

	t.Run("Check Deal Repository", func(t *testing.T) {
		count, err := uow.DealRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Deal count: %d", count)
	})

	t.Run("Check Transactional Chat Write", func(t *testing.T) {
		ctx := context.Background()

		sessionId := uuid.New()
		session := &entity.ChatSession{
			Id:          sessionId,
			VisitorName: "Integration Visitor " + uuid.New().String()[:8],
			Status:      entity.ChatStatusWaiting,
			StartedAt:   time.Now(),
		}

		err := uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		// Message insert and preview update belong to one transaction.
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		message := &entity.ChatMessage{
			Id:         uuid.New(),
			SessionId:  sessionId,
			SenderType: entity.SenderTypeVisitor,
			SenderName: session.VisitorName,
			Message:    "hello from the integration test",
			CreatedAt:  time.Now(),
		}
		err = uow.ChatMessageRepository().Create(ctx, message)
		assert.NoError(t, err)

		tail, err := uow.ChatMessageRepository().LastBySession(ctx, sessionId)
		assert.NoError(t, err)
		if assert.NotNil(t, tail) {
			assert.Equal(t, message.Message, tail.Message)
		}

		session.LastMessage = tail.Message
		session.LastMessageAt = &tail.CreatedAt
		err = uow.ChatSessionRepository().Update(ctx, session)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Verify the preview landed.
		stored, err := uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
		assert.NoError(t, err)
		if assert.NotNil(t, stored) {
			assert.Equal(t, message.Message, stored.LastMessage)
		}

		t.Log("Successfully created ChatMessage with session preview in Transaction")
	})

	t.Run("Check Mark Read By Session", func(t *testing.T) {
		ctx := context.Background()

		sessionId := uuid.New()
		session := &entity.ChatSession{
			Id:          sessionId,
			VisitorName: "Integration Visitor " + uuid.New().String()[:8],
			Status:      entity.ChatStatusActive,
			StartedAt:   time.Now(),
		}
		err := uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		visitorMsg := &entity.ChatMessage{
			Id:         uuid.New(),
			SessionId:  sessionId,
			SenderType: entity.SenderTypeVisitor,
			SenderName: session.VisitorName,
			Message:    "anyone there?",
			CreatedAt:  time.Now(),
		}
		agentMsg := &entity.ChatMessage{
			Id:         uuid.New(),
			SessionId:  sessionId,
			SenderType: entity.SenderTypeAgent,
			SenderName: "Agent",
			Message:    "with you shortly",
			CreatedAt:  time.Now(),
		}
		assert.NoError(t, uow.ChatMessageRepository().Create(ctx, visitorMsg))
		assert.NoError(t, uow.ChatMessageRepository().Create(ctx, agentMsg))

		err = uow.ChatMessageRepository().MarkReadBySession(ctx, sessionId)
		assert.NoError(t, err)

		unread, err := uow.ChatMessageRepository().Count(ctx,
			specification.BySessionID{SessionID: sessionId},
			specification.BySenderType{SenderType: string(entity.SenderTypeVisitor)},
			specification.Unread{},
		)
		assert.NoError(t, err)
		assert.Zero(t, unread)

		stored, err := uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: visitorMsg.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, stored) {
			assert.True(t, stored.IsRead)
		}

		t.Log("Successfully marked visitor messages read for session")
	})
}
