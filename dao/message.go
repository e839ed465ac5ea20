package dao

import (
	"Agora/models"
	"context"
	"sort"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

// CountUnread counts messages from sender to reader that are still unread.
func (d *MessageDAO) CountUnread(ctx context.Context, reader, sender int64) (int64, error) {
	return d.Repo.FindCount(ctx, "to_id = ? AND from_id = ? AND is_read = ?", reader, sender, false)
}

// MarkRead flips every unread message from -> to and returns how many changed.
func (d *MessageDAO) MarkRead(ctx context.Context, from, to int64) (int64, error) {
	return d.Repo.UpdateWhere(ctx, map[string]any{"is_read": true},
		"from_id = ? AND to_id = ? AND is_read = ?", from, to, false)
}

// Conversation 两人之间的全部消息, 按时间升序
func (d *MessageDAO) Conversation(ctx context.Context, a, b int64) ([]*models.Message, error) {
	return d.Repo.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
			Order("created_at ASC").Order("id ASC")
	})
}

// Peers returns every user id that exchanged at least one message with uid.
func (d *MessageDAO) Peers(ctx context.Context, uid int64) ([]int64, error) {
	var senders, receivers []int64

	if err := d.Model(ctx).Where("to_id = ?", uid).Distinct().Pluck("from_id", &senders).Error; err != nil {
		return nil, err
	}
	if err := d.Model(ctx).Where("from_id = ?", uid).Distinct().Pluck("to_id", &receivers).Error; err != nil {
		return nil, err
	}

	peers := uniqueIDs(append(senders, receivers...))
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
	return peers, nil
}

type unreadRow struct {
	FromID int64
	Total  int64
}

// UnreadBySender 按发送者聚合 reader 的未读数
func (d *MessageDAO) UnreadBySender(ctx context.Context, reader int64) (map[int64]int64, error) {
	var rows []unreadRow
	err := d.Model(ctx).
		Select("from_id, COUNT(*) AS total").
		Where("to_id = ? AND is_read = ?", reader, false).
		Group("from_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	m := make(map[int64]int64, len(rows))
	for _, row := range rows {
		m[row.FromID] = row.Total
	}
	return m, nil
}
