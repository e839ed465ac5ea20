package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// PresenceStorage 记录每个用户在各个 conn-server 节点上的连接.
// A nil redis client turns every call into a no-op and everyone reads as offline.
type PresenceStorage struct {
	redis *redis.Client
}

func NewPresenceStorage(redis *redis.Client) *PresenceStorage {
	return &PresenceStorage{redis: redis}
}

func (p *PresenceStorage) Enabled() bool {
	return p.redis != nil
}

// Bind 绑定客户端与用户
func (p *PresenceStorage) Bind(ctx context.Context, sid, clientId string, uid int64) error {
	if !p.Enabled() {
		return nil
	}

	_, err := p.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, p.clientKey(sid), clientId, uid)
		pipe.SAdd(ctx, p.userKey(sid, uid), clientId)
		pipe.HIncrBy(ctx, p.userLocationKey(uid), sid, 1)
		return nil
	})
	return err
}

// UnBind 解除绑定, 节点计数归零时删除该节点
func (p *PresenceStorage) UnBind(ctx context.Context, sid, clientId string) error {
	if !p.Enabled() {
		return nil
	}

	key := p.clientKey(sid)
	uidStr, err := p.redis.HGet(ctx, key, clientId).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil {
		return fmt.Errorf("presence: bad uid %q: %w", uidStr, err)
	}

	_, err = p.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, key, clientId)
		pipe.SRem(ctx, p.userKey(sid, uid), clientId)
		pipe.HIncrBy(ctx, p.userLocationKey(uid), sid, -1)
		return nil
	})
	if err != nil {
		return err
	}

	count, _ := p.redis.HGet(ctx, p.userLocationKey(uid), sid).Int64()
	if count <= 0 {
		p.redis.HDel(ctx, p.userLocationKey(uid), sid)
	}
	return nil
}

// IsOnline 判断用户在任一节点是否在线
func (p *PresenceStorage) IsOnline(ctx context.Context, uid int64) bool {
	if !p.Enabled() {
		return false
	}

	locations, err := p.redis.HGetAll(ctx, p.userLocationKey(uid)).Result()
	if err != nil {
		return false
	}

	for _, v := range locations {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return true
		}
	}
	return false
}

// OnlineSet 批量判断在线状态
func (p *PresenceStorage) OnlineSet(ctx context.Context, uids []int64) map[int64]bool {
	out := make(map[int64]bool, len(uids))
	for _, uid := range uids {
		out[uid] = p.IsOnline(ctx, uid)
	}
	return out
}

// Reset 清理节点上遗留的绑定, conn-server 启动时调用
func (p *PresenceStorage) Reset(ctx context.Context, sid string) error {
	if !p.Enabled() {
		return nil
	}

	clients, err := p.redis.HGetAll(ctx, p.clientKey(sid)).Result()
	if err != nil {
		return err
	}
	for clientId := range clients {
		if err := p.UnBind(ctx, sid, clientId); err != nil {
			return err
		}
	}
	return nil
}

func (p *PresenceStorage) userLocationKey(uid int64) string {
	return fmt.Sprintf("ws:user:location:%d", uid)
}

func (p *PresenceStorage) clientKey(sid string) string {
	return fmt.Sprintf("ws:%s:chat:client", sid)
}

func (p *PresenceStorage) userKey(sid string, uid int64) string {
	return fmt.Sprintf("ws:%s:chat:user:%d", sid, uid)
}
