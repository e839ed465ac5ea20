package types

import "time"

// 实时通道事件
const (
	EventSendMessage           = "sendMessage"
	EventRequestUnreadMessages = "requestUnreadMessages"
	EventMarkAsRead            = "markAsRead"

	EventReceiveMessage        = "receiveMessage"
	EventReceiveUnreadCount    = "receiveUnreadCount"
	EventReceiveUnreadMessages = "receiveUnreadMessages"
)

type ChatUser struct {
	ID          int64  `json:"id,string"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	UnreadCount int64  `json:"unread_count"`
	Online      bool   `json:"online"`
}

type SendMessagePayload struct {
	To        int64      `json:"to,string"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type RequestUnreadPayload struct {
	ForUserID int64 `json:"for_user_id,string"`
}

type MarkAsReadPayload struct {
	From int64 `json:"from,string"`
}

// UnreadCountPayload 未读数增量, Delta 为 +1 或 -N
type UnreadCountPayload struct {
	From  int64 `json:"from,string"`
	To    int64 `json:"to,string"`
	Delta int64 `json:"delta"`
}

type UnreadMessagesPayload struct {
	ForUserID int64 `json:"for_user_id,string"`
	Count     int64 `json:"count"`
}
