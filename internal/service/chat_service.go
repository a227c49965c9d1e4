package service

import (
	"context"
	"errors"
	"time"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/listview"
	"crm-hub-be/internal/pkg/logger"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/internal/store"
	"crm-hub-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TableChatSessions = "chat_sessions"
	TableChatMessages = "chat_messages"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionEnded    = errors.New("chat session has ended")
)

type IChatService interface {
	StartSession(ctx context.Context, req *dto.StartChatRequest, info entity.VisitorInfo) (*dto.ChatSessionResponse, error)
	ListSessions(ctx context.Context, q *dto.ListSessionsQuery) ([]dto.ChatSessionResponse, error)
	ShowSession(ctx context.Context, id uuid.UUID) (*dto.ChatSessionResponse, error)
	GetMessages(ctx context.Context, sessionId uuid.UUID) ([]dto.ChatMessageResponse, error)
	SendVisitorMessage(ctx context.Context, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	SendAgentMessage(ctx context.Context, sessionId, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	AssignToMe(ctx context.Context, sessionId, userId uuid.UUID) (*dto.ChatSessionResponse, error)
	EndSession(ctx context.Context, sessionId uuid.UUID) (*dto.ChatSessionResponse, error)
	MarkRead(ctx context.Context, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
	snapshots  *store.SnapshotStore[*entity.ChatSession]
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
		snapshots:  store.NewSnapshotStore[*entity.ChatSession](),
	}
}

var (
	sessionOrder = specification.OrderBy{Field: "started_at", Desc: true}
	messageOrder = specification.OrderBy{Field: "created_at", Desc: false}
)

func sessionToResponse(s *entity.ChatSession) dto.ChatSessionResponse {
	return dto.ChatSessionResponse{
		Id:            s.Id,
		VisitorName:   s.VisitorName,
		VisitorEmail:  s.VisitorEmail,
		Status:        string(s.Status),
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		AssignedTo:    s.AssignedTo,
		LastMessage:   s.LastMessage,
		LastMessageAt: s.LastMessageAt,
	}
}

func messageToResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:         m.Id,
		SessionId:  m.SessionId,
		SenderType: string(m.SenderType),
		SenderName: m.SenderName,
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

func (s *chatService) publishChange(ctx context.Context, table, op string, rowId uuid.UUID) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, events.NewChangeEvent(table, op, rowId)); err != nil {
		s.logger.Warn("Chat", "Change notification dropped", map[string]interface{}{
			"table": table,
			"op":    op,
			"error": err.Error(),
		})
	}
}

func (s *chatService) StartSession(ctx context.Context, req *dto.StartChatRequest, info entity.VisitorInfo) (*dto.ChatSessionResponse, error) {
	session := entity.ChatSession{
		Id:           uuid.New(),
		VisitorName:  req.VisitorName,
		VisitorEmail: req.VisitorEmail,
		Status:       entity.ChatStatusWaiting,
		StartedAt:    time.Now(),
		VisitorInfo:  info,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.publishChange(ctx, TableChatSessions, events.OpInsert, session.Id)

	res := sessionToResponse(&session)
	return &res, nil
}

func (s *chatService) loadSessions(ctx context.Context) ([]*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, sessionOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, sessions)
	return sessions, nil
}

func (s *chatService) ListSessions(ctx context.Context, q *dto.ListSessionsQuery) ([]dto.ChatSessionResponse, error) {
	sessions, err := s.loadSessions(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(sessions, q.Search, listview.SessionSearchFields,
		listview.SessionStatusFacet(q.Status),
	)

	result := make([]dto.ChatSessionResponse, 0, len(visible))
	for _, session := range visible {
		result = append(result, sessionToResponse(session))
	}
	return result, nil
}

func (s *chatService) ShowSession(ctx context.Context, id uuid.UUID) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	res := sessionToResponse(session)
	return &res, nil
}

func (s *chatService) GetMessages(ctx context.Context, sessionId uuid.UUID) ([]dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		messageOrder,
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, messageToResponse(m))
	}
	return result, nil
}

// sendMessage appends to the message log and refreshes the session preview
// in one transaction. The preview is recomputed from the log tail, not
// copied from the request, so a concurrent write can never leave the two
// out of step.
func (s *chatService) sendMessage(ctx context.Context, sessionId uuid.UUID, senderType entity.SenderType, senderName, text string) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if session == nil {
		uow.Rollback()
		return nil, ErrSessionNotFound
	}
	if session.Status == entity.ChatStatusEnded {
		uow.Rollback()
		return nil, ErrSessionEnded
	}

	message := entity.ChatMessage{
		Id:         uuid.New(),
		SessionId:  sessionId,
		SenderType: senderType,
		SenderName: senderName,
		Message:    text,
		CreatedAt:  time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		uow.Rollback()
		return nil, err
	}

	tail, err := uow.ChatMessageRepository().LastBySession(ctx, sessionId)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if tail != nil {
		session.LastMessage = tail.Message
		session.LastMessageAt = &tail.CreatedAt
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishChange(ctx, TableChatMessages, events.OpInsert, message.Id)
	s.publishChange(ctx, TableChatSessions, events.OpUpdate, session.Id)

	res := messageToResponse(&message)
	return &res, nil
}

func (s *chatService) SendVisitorMessage(ctx context.Context, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.sendMessage(ctx, sessionId, entity.SenderTypeVisitor, session.VisitorName, req.Message)
}

func (s *chatService) SendAgentMessage(ctx context.Context, sessionId, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return s.sendMessage(ctx, sessionId, entity.SenderTypeAgent, user.DisplayName(), req.Message)
}

// AssignToMe moves a waiting session to active and records the agent.
// Concurrent assignment is last-write-wins: the actor is not required to
// match the currently assigned agent.
func (s *chatService) AssignToMe(ctx context.Context, sessionId, userId uuid.UUID) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.Status != entity.ChatStatusActive {
		if !session.Status.CanTransitionTo(entity.ChatStatusActive) {
			return nil, ErrSessionEnded
		}
		session.Status = entity.ChatStatusActive
	}
	session.AssignedTo = &userId

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.publishChange(ctx, TableChatSessions, events.OpUpdate, session.Id)

	res := sessionToResponse(session)
	return &res, nil
}

// EndSession is the terminal transition. Further message sends fail.
func (s *chatService) EndSession(ctx context.Context, sessionId uuid.UUID) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if !session.Status.CanTransitionTo(entity.ChatStatusEnded) {
		return nil, ErrSessionEnded
	}

	now := time.Now()
	session.Status = entity.ChatStatusEnded
	session.EndedAt = &now

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.publishChange(ctx, TableChatSessions, events.OpUpdate, session.Id)

	res := sessionToResponse(session)
	return &res, nil
}

func (s *chatService) MarkRead(ctx context.Context, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatMessageRepository().MarkReadBySession(ctx, sessionId); err != nil {
		return err
	}
	s.publishChange(ctx, TableChatMessages, events.OpUpdate, sessionId)
	return nil
}
