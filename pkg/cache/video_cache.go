package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VideoCacheManager keeps hot view counters next to the store so a popular
// video detail read does not hammer MySQL with counter lookups.
type VideoCacheManager struct {
	client        *redis.Client
	counterExpire time.Duration
}

func NewVideoCacheManager(client *redis.Client) *VideoCacheManager {
	return &VideoCacheManager{
		client:        client,
		counterExpire: 1 * time.Hour,
	}
}

const (
	// 视频播放量缓存键
	VideoVisitCountKey = "video:visit_count:%d"
)

// IncrVisitCount bumps the cached counter and refreshes its TTL.
func (vcm *VideoCacheManager) IncrVisitCount(ctx context.Context, videoID int64) (int64, error) {
	key := fmt.Sprintf(VideoVisitCountKey, videoID)
	count, err := vcm.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to incr visit count: %w", err)
	}
	vcm.client.Expire(ctx, key, vcm.counterExpire)
	return count, nil
}

// GetVisitCount returns the cached counter, 0 when the key is cold.
func (vcm *VideoCacheManager) GetVisitCount(ctx context.Context, videoID int64) (int64, error) {
	key := fmt.Sprintf(VideoVisitCountKey, videoID)
	count, err := vcm.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get visit count: %w", err)
	}
	return count, nil
}

// SetVisitCount seeds the counter from the store value.
func (vcm *VideoCacheManager) SetVisitCount(ctx context.Context, videoID, count int64) error {
	key := fmt.Sprintf(VideoVisitCountKey, videoID)
	return vcm.client.Set(ctx, key, count, vcm.counterExpire).Err()
}
