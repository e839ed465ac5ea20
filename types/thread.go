package types

import "time"

type CreateTopicRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateDiscussionRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type CreateReplyRequest struct {
	Message        string `json:"message"`
	YoutubeVideoID string `json:"youtube_video_id"`
	ImageURL       string `json:"image_url"`
}

type TopicItem struct {
	ID              int64     `json:"id,string"`
	Title           string    `json:"title"`
	CreatedBy       int64     `json:"created_by,string"`
	DiscussionCount int       `json:"discussion_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReplyDetail struct {
	ID             int64     `json:"id,string"`
	Author         UserBrief `json:"author"`
	Message        string    `json:"message"`
	YoutubeVideoID string    `json:"youtube_video_id,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// DiscussionDetail 作者信息已填充的讨论
type DiscussionDetail struct {
	ID          int64         `json:"id,string"`
	Topic       string        `json:"topic"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Author      UserBrief     `json:"author"`
	CreatedAt   time.Time     `json:"created_at"`
	Replies     []ReplyDetail `json:"replies"`
}

type UserDiscussion struct {
	ID          int64     `json:"id,string"`
	Topic       string    `json:"topic"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReplyCount  int       `json:"reply_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserComment struct {
	ID              int64     `json:"id,string"`
	Topic           string    `json:"topic"`
	DiscussionID    int64     `json:"discussion_id,string"`
	DiscussionTitle string    `json:"discussion_title"`
	Message         string    `json:"message"`
	YoutubeVideoID  string    `json:"youtube_video_id,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
