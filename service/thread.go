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
	"time"

	"gorm.io/gorm"
)

var _ IThreadService = (*ThreadService)(nil)

// IThreadService 讨论与回复, 均以 (话题标题, 讨论ID) 定位
type IThreadService interface {
	CreateDiscussion(ctx context.Context, topicTitle, title, description string, authorID int64) (*models.Discussion, error)
	ListDiscussions(ctx context.Context, topicTitle string) ([]models.Discussion, error)
	GetDiscussion(ctx context.Context, topicTitle string, discussionID int64) (*types.DiscussionDetail, error)
	AddReply(ctx context.Context, topicTitle string, discussionID, authorID int64, req *types.CreateReplyRequest) ([]models.Reply, error)
	DeleteReply(ctx context.Context, topicTitle string, discussionID, replyID, requesterID int64) error
	ListUserDiscussions(ctx context.Context, userID int64) ([]*types.UserDiscussion, error)
	ListUserComments(ctx context.Context, userID int64) ([]*types.UserComment, error)
}

type ThreadService struct {
	TopicDAO *dao.Topic
	UserDAO  *dao.Users
}

var errDiscussionNotFound = response.NotFound("discussion not found")

func (s *ThreadService) CreateDiscussion(ctx context.Context, topicTitle, title, description string, authorID int64) (*models.Discussion, error) {
	// 自由文本按原样保存, 只在校验时去空白
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, response.Validation("title and description are required")
	}

	discussion := models.Discussion{
		ID:          snowflake.GenID(),
		Title:       title,
		Description: description,
		AuthorID:    authorID,
		CreatedAt:   time.Now(),
		Replies:     []models.Reply{},
	}

	_, err := s.mutate(ctx, topicTitle, func(topic *models.Topic) error {
		topic.Discussions = append(topic.Discussions, discussion)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &discussion, nil
}

func (s *ThreadService) ListDiscussions(ctx context.Context, topicTitle string) ([]models.Discussion, error) {
	topic, err := s.findTopic(ctx, topicTitle)
	if err != nil {
		return nil, err
	}

	discussions := make([]models.Discussion, 0, len(topic.Discussions))
	for _, d := range topic.Discussions {
		if d.Replies == nil {
			d.Replies = []models.Reply{}
		}
		discussions = append(discussions, d)
	}
	return discussions, nil
}

func (s *ThreadService) GetDiscussion(ctx context.Context, topicTitle string, discussionID int64) (*types.DiscussionDetail, error) {
	topic, err := s.findTopic(ctx, topicTitle)
	if err != nil {
		return nil, err
	}

	idx := topic.FindDiscussion(discussionID)
	if idx < 0 {
		return nil, errDiscussionNotFound
	}
	d := topic.Discussions[idx]

	ids := make([]int64, 0, len(d.Replies)+1)
	ids = append(ids, d.AuthorID)
	for _, r := range d.Replies {
		ids = append(ids, r.AuthorID)
	}

	users, err := s.UserDAO.FindMap(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	author := func(id int64) types.UserBrief {
		if u, ok := users[id]; ok {
			return toBrief(u)
		}
		return types.UserBrief{ID: id}
	}

	detail := &types.DiscussionDetail{
		ID:          d.ID,
		Topic:       topic.Title,
		Title:       d.Title,
		Description: d.Description,
		Author:      author(d.AuthorID),
		CreatedAt:   d.CreatedAt,
		Replies:     make([]types.ReplyDetail, 0, len(d.Replies)),
	}
	for _, r := range d.Replies {
		detail.Replies = append(detail.Replies, types.ReplyDetail{
			ID:             r.ID,
			Author:         author(r.AuthorID),
			Message:        r.Message,
			YoutubeVideoID: r.YoutubeVideoID,
			ImageURL:       r.ImageURL,
			CreatedAt:      r.CreatedAt,
		})
	}

	return detail, nil
}

func (s *ThreadService) AddReply(ctx context.Context, topicTitle string, discussionID, authorID int64, req *types.CreateReplyRequest) ([]models.Reply, error) {
	message := strings.TrimSpace(req.Message)
	video := strings.TrimSpace(req.YoutubeVideoID)
	image := strings.TrimSpace(req.ImageURL)
	if message == "" && video == "" && image == "" {
		return nil, response.Validation("reply must contain a message, a video or an image")
	}
	if image != "" && !isHTTPURL(image) {
		return nil, response.Validation("image url must start with http:// or https://")
	}

	reply := models.Reply{
		ID:             snowflake.GenID(),
		AuthorID:       authorID,
		Message:        req.Message,
		YoutubeVideoID: req.YoutubeVideoID,
		ImageURL:       req.ImageURL,
		CreatedAt:      time.Now(),
	}

	var replies []models.Reply
	_, err := s.mutate(ctx, topicTitle, func(topic *models.Topic) error {
		idx := topic.FindDiscussion(discussionID)
		if idx < 0 {
			return errDiscussionNotFound
		}

		d := &topic.Discussions[idx]
		d.Replies = append(d.Replies, reply)
		replies = d.Replies
		return nil
	})
	if err != nil {
		return nil, err
	}

	return replies, nil
}

func (s *ThreadService) DeleteReply(ctx context.Context, topicTitle string, discussionID, replyID, requesterID int64) error {
	_, err := s.mutate(ctx, topicTitle, func(topic *models.Topic) error {
		idx := topic.FindDiscussion(discussionID)
		if idx < 0 {
			return errDiscussionNotFound
		}

		if !topic.Discussions[idx].RemoveReply(replyID, requesterID) {
			return response.Unauthorized("reply not found or not yours")
		}
		return nil
	})
	return err
}

func (s *ThreadService) ListUserDiscussions(ctx context.Context, userID int64) ([]*types.UserDiscussion, error) {
	topics, err := s.TopicDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	items := make([]*types.UserDiscussion, 0)
	for _, t := range topics {
		for _, d := range t.Discussions {
			if d.AuthorID != userID {
				continue
			}
			items = append(items, &types.UserDiscussion{
				ID:          d.ID,
				Topic:       t.Title,
				Title:       d.Title,
				Description: d.Description,
				ReplyCount:  len(d.Replies),
				CreatedAt:   d.CreatedAt,
			})
		}
	}
	return items, nil
}

func (s *ThreadService) ListUserComments(ctx context.Context, userID int64) ([]*types.UserComment, error) {
	topics, err := s.TopicDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	items := make([]*types.UserComment, 0)
	for _, t := range topics {
		for _, d := range t.Discussions {
			for _, r := range d.Replies {
				if r.AuthorID != userID {
					continue
				}
				items = append(items, &types.UserComment{
					ID:              r.ID,
					Topic:           t.Title,
					DiscussionID:    d.ID,
					DiscussionTitle: d.Title,
					Message:         r.Message,
					YoutubeVideoID:  r.YoutubeVideoID,
					ImageURL:        r.ImageURL,
					CreatedAt:       r.CreatedAt,
				})
			}
		}
	}
	return items, nil
}

func (s *ThreadService) findTopic(ctx context.Context, title string) (*models.Topic, error) {
	topic, err := s.TopicDAO.FindByTitle(ctx, normalizeTitle(title))
	if err != nil {
		return nil, topicError(err)
	}
	return topic, nil
}

func (s *ThreadService) mutate(ctx context.Context, title string, fn func(topic *models.Topic) error) (*models.Topic, error) {
	topic, err := s.TopicDAO.Mutate(ctx, normalizeTitle(title), fn)
	if err != nil {
		return nil, topicError(err)
	}
	return topic, nil
}

func topicError(err error) error {
	var be *response.BizError
	switch {
	case errors.As(err, &be):
		return be
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NotFound("topic not found")
	default:
		return fmt.Errorf("topic store: %w", err)
	}
}
