package mapper

import (
	"encoding/json"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var info entity.VisitorInfo
	if len(s.VisitorInfo) > 0 {
		// Malformed visitor context is display-only, never fatal.
		_ = json.Unmarshal(s.VisitorInfo, &info)
	}

	return &entity.ChatSession{
		Id:            s.Id,
		VisitorName:   s.VisitorName,
		VisitorEmail:  s.VisitorEmail,
		Status:        entity.ChatStatus(s.Status),
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		AssignedTo:    s.AssignedTo,
		LastMessage:   s.LastMessage,
		LastMessageAt: s.LastMessageAt,
		VisitorInfo:   info,
	}
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	infoJSON, _ := json.Marshal(s.VisitorInfo)

	return &model.ChatSession{
		Id:            s.Id,
		VisitorName:   s.VisitorName,
		VisitorEmail:  s.VisitorEmail,
		Status:        string(s.Status),
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		AssignedTo:    s.AssignedTo,
		LastMessage:   s.LastMessage,
		LastMessageAt: s.LastMessageAt,
		VisitorInfo:   datatypes.JSON(infoJSON),
	}
}

func (m *ChatMapper) SessionsToEntities(models []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(models))
	for i, s := range models {
		entities[i] = m.SessionToEntity(s)
	}
	return entities
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		SenderType: entity.SenderType(msg.SenderType),
		SenderName: msg.SenderName,
		Message:    msg.Message,
		IsRead:     msg.IsRead,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		SenderType: string(msg.SenderType),
		SenderName: msg.SenderName,
		Message:    msg.Message,
		IsRead:     msg.IsRead,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
