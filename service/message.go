package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/log"
	"Agora/pkg/snowflake"
	"Agora/types"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Publisher fans an event out to every connected client.
type Publisher interface {
	Broadcast(event string, payload any)
}

var _ IMessageService = (*MessageService)(nil)

// IMessageService 实时通道上的消息与未读数.
// Send and MarkRead never return errors to the emitting client; failures are logged.
type IMessageService interface {
	Send(ctx context.Context, from, to int64, text string, createdAt *time.Time) *models.Message
	RequestUnread(ctx context.Context, requester, forUser int64) int64
	MarkRead(ctx context.Context, from, to int64) int64
}

type MessageService struct {
	MessageDAO *dao.MessageDAO
	Publisher  Publisher
}

func (s *MessageService) Send(ctx context.Context, from, to int64, text string, createdAt *time.Time) *models.Message {
	if from == 0 || to == 0 || strings.TrimSpace(text) == "" {
		log.L.Warn("drop incomplete message", zap.Int64("from", from), zap.Int64("to", to))
		return nil
	}

	msg := &models.Message{
		ID:        snowflake.GenID(),
		FromID:    from,
		ToID:      to,
		Text:      text,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if createdAt != nil && !createdAt.IsZero() {
		msg.CreatedAt = *createdAt
	}

	if err := s.MessageDAO.Create(ctx, msg); err != nil {
		log.L.Error("save message", zap.Int64("from", from), zap.Int64("to", to), zap.Error(err))
		return nil
	}

	s.Publisher.Broadcast(types.EventReceiveMessage, msg)
	s.Publisher.Broadcast(types.EventReceiveUnreadCount, &types.UnreadCountPayload{
		From:  from,
		To:    to,
		Delta: 1,
	})

	return msg
}

func (s *MessageService) RequestUnread(ctx context.Context, requester, forUser int64) int64 {
	count, err := s.MessageDAO.CountUnread(ctx, requester, forUser)
	if err != nil {
		log.L.Warn("count unread", zap.Int64("requester", requester), zap.Int64("for", forUser), zap.Error(err))
		return 0
	}
	return count
}

func (s *MessageService) MarkRead(ctx context.Context, from, to int64) int64 {
	affected, err := s.MessageDAO.MarkRead(ctx, from, to)
	if err != nil {
		log.L.Error("mark read", zap.Int64("from", from), zap.Int64("to", to), zap.Error(err))
		return 0
	}

	if affected > 0 {
		s.Publisher.Broadcast(types.EventReceiveUnreadCount, &types.UnreadCountPayload{
			From:  from,
			To:    to,
			Delta: -affected,
		})
	}

	return affected
}
