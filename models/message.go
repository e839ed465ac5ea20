package models

import "time"

// Message 私信, 未读数由 is_read 派生
type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	FromID    int64     `gorm:"index:idx_messages_pair,priority:2;not null" json:"from,string"`
	ToID      int64     `gorm:"index:idx_messages_pair,priority:1;not null" json:"to,string"`
	Text      string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"index:idx_messages_pair,priority:3;default:false;not null" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
