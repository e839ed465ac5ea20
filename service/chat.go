package service

import (
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/models"
	"Agora/types"
	"context"
	"fmt"
	"sort"
)

var _ IChatService = (*ChatService)(nil)

// IChatService 聊天相关的 REST 查询
type IChatService interface {
	ListChatUsers(ctx context.Context, userID int64) ([]*types.ChatUser, error)
	ListMessages(ctx context.Context, userID, peerID int64) ([]*models.Message, error)
}

type ChatService struct {
	MessageDAO *dao.MessageDAO
	UserDAO    *dao.Users
	Presence   *cache.PresenceStorage
}

func (s *ChatService) ListChatUsers(ctx context.Context, userID int64) ([]*types.ChatUser, error) {
	peers, err := s.MessageDAO.Peers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load peers: %w", err)
	}

	users, err := s.UserDAO.FindMap(ctx, peers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	unread, err := s.MessageDAO.UnreadBySender(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load unread: %w", err)
	}

	online := s.Presence.OnlineSet(ctx, peers)

	items := make([]*types.ChatUser, 0, len(peers))
	for _, id := range peers {
		u, ok := users[id]
		if !ok {
			continue
		}
		items = append(items, &types.ChatUser{
			ID:          u.ID,
			Username:    u.Username,
			Avatar:      u.Avatar,
			UnreadCount: unread[id],
			Online:      online[id],
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Username < items[j].Username })
	return items, nil
}

func (s *ChatService) ListMessages(ctx context.Context, userID, peerID int64) ([]*models.Message, error) {
	messages, err := s.MessageDAO.Conversation(ctx, userID, peerID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return messages, nil
}
