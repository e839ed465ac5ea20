package models

import (
	"time"

	"gorm.io/datatypes"
)

// Topic 话题表, discussions 连同回复整体存成一个 JSON 列
type Topic struct {
	ID          int64                         `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Title       string                        `gorm:"type:varchar(128);uniqueIndex:idx_topics_title;not null" json:"title"` // 小写
	CreatedBy   int64                         `gorm:"index;not null" json:"created_by,string"`
	Discussions datatypes.JSONSlice[Discussion] `json:"discussions"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// Discussion only exists inside its Topic.
type Discussion struct {
	ID          int64     `json:"id,string"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    int64     `json:"author_id,string"`
	CreatedAt   time.Time `json:"created_at"`
	Replies     []Reply   `json:"replies"`
}

// Reply only exists inside its Discussion.
type Reply struct {
	ID             int64     `json:"id,string"`
	AuthorID       int64     `json:"author_id,string"`
	Message        string    `json:"message"`
	YoutubeVideoID string    `json:"youtube_video_id,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// FindDiscussion returns the index of the discussion with id, or -1.
func (t *Topic) FindDiscussion(id int64) int {
	for i := range t.Discussions {
		if t.Discussions[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveReply drops the reply matching both id and author, keeping the order
// of the rest. It reports whether a reply was removed.
func (d *Discussion) RemoveReply(replyID, authorID int64) bool {
	for i, r := range d.Replies {
		if r.ID == replyID && r.AuthorID == authorID {
			d.Replies = append(d.Replies[:i:i], d.Replies[i+1:]...)
			return true
		}
	}
	return false
}
