package service

import (
	"context"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/pkg/logger"
	"crm-hub-be/internal/websocket"
	"crm-hub-be/pkg/events"
	pkgNats "crm-hub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IChatSyncService keeps connected agent dashboards in step with the chat
// tables. Change events are treated purely as invalidation signals: on any
// event the synchronizer refetches full snapshots from the database and
// pushes them over the hub, never patching client state from the event
// payload itself.
type IChatSyncService interface {
	Start(ctx context.Context) error
}

type chatSyncService struct {
	chatService IChatService
	hub         *websocket.Hub
	pubSub      *gochannel.GoChannel
	natsSub     *pkgNats.Subscriber
	logger      logger.ILogger
}

func NewChatSyncService(
	chatService IChatService,
	hub *websocket.Hub,
	pubSub *gochannel.GoChannel,
	natsSub *pkgNats.Subscriber,
	log logger.ILogger,
) IChatSyncService {
	return &chatSyncService{
		chatService: chatService,
		hub:         hub,
		pubSub:      pubSub,
		natsSub:     natsSub,
		logger:      log,
	}
}

// Start subscribes to the local change bus for both chat tables, plus the
// NATS mirror so writes on other instances trigger the same refresh.
func (s *chatSyncService) Start(ctx context.Context) error {
	for _, table := range []string{TableChatSessions, TableChatMessages} {
		messages, err := s.pubSub.Subscribe(ctx, ChangeTopic(table))
		if err != nil {
			return err
		}
		go s.consume(ctx, messages)
	}

	if s.natsSub != nil {
		for _, table := range []string{TableChatSessions, TableChatMessages} {
			err := s.natsSub.SubscribeChanges(table, "chat-sync-"+table, func(ctx context.Context, change events.ChangeEvent) error {
				s.refresh(ctx)
				return nil
			})
			if err != nil {
				s.logger.Warn("ChatSync", "NATS subscription unavailable, running single-instance", map[string]interface{}{
					"table": table,
					"error": err.Error(),
				})
				break
			}
		}
	}

	s.logger.Info("ChatSync", "Chat synchronizer started", nil)
	return nil
}

func (s *chatSyncService) consume(ctx context.Context, messages <-chan *message.Message) {
	for msg := range messages {
		s.refresh(ctx)
		msg.Ack()
	}
}

// refresh pushes a fresh session list to every agent, then a fresh message
// log to each client for the session it is viewing. Sessions not selected
// by anyone are skipped; their previews already travel with the list.
func (s *chatSyncService) refresh(ctx context.Context) {
	sessions, err := s.chatService.ListSessions(ctx, &dto.ListSessionsQuery{})
	if err != nil {
		s.logger.Warn("ChatSync", "Session snapshot refresh failed", map[string]interface{}{"error": err.Error()})
	} else {
		s.hub.Broadcast("sessions_snapshot", sessions)
	}

	for _, sessionId := range s.hub.SelectedSessions() {
		messages, err := s.chatService.GetMessages(ctx, sessionId)
		if err != nil {
			s.logger.Warn("ChatSync", "Message snapshot refresh failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
			continue
		}
		s.hub.SendToSelected(sessionId, "messages_snapshot", messages)
	}
}
