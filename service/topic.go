package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/response"
	"Agora/pkg/snowflake"
	"Agora/types"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	CreateTopic(ctx context.Context, title string, requesterID int64) (*models.Topic, error)
	ListTopics(ctx context.Context) ([]*types.TopicItem, error)
}

type TopicService struct {
	TopicDAO *dao.Topic
	UserDAO  *dao.Users
}

func (ts *TopicService) CreateTopic(ctx context.Context, title string, requesterID int64) (*models.Topic, error) {
	requester, err := ts.UserDAO.FindById(ctx, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("user not found")
		}
		return nil, fmt.Errorf("find requester: %w", err)
	}
	if !requester.IsAdmin() {
		return nil, response.Forbidden("only admins can create topics")
	}

	title = normalizeTitle(title)
	if title == "" {
		return nil, response.Validation("topic title is required")
	}

	exist, err := ts.TopicDAO.IsTitleExist(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("check topic: %w", err)
	}
	if exist {
		return nil, response.Conflict("topic already exists")
	}

	topic := &models.Topic{
		ID:          snowflake.GenID(),
		Title:       title,
		CreatedBy:   requesterID,
		Discussions: datatypes.JSONSlice[models.Discussion]{},
	}
	// 唯一索引兜底并发创建
	if err := ts.TopicDAO.Create(ctx, topic); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("topic already exists")
		}
		return nil, fmt.Errorf("create topic: %w", err)
	}

	return topic, nil
}

func (ts *TopicService) ListTopics(ctx context.Context) ([]*types.TopicItem, error) {
	topics, err := ts.TopicDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	items := make([]*types.TopicItem, 0, len(topics))
	for _, t := range topics {
		items = append(items, &types.TopicItem{
			ID:              t.ID,
			Title:           t.Title,
			CreatedBy:       t.CreatedBy,
			DiscussionCount: len(t.Discussions),
			CreatedAt:       t.CreatedAt,
		})
	}
	return items, nil
}

// normalizeTitle 话题标题统一小写
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
