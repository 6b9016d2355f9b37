package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService tracks per-user daily usage of the metered summary endpoint.
type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func summaryQuotaKey(userID int, day time.Time) string {
	return fmt.Sprintf("summary:quota:%d:%s", userID, day.Format("2006-01-02"))
}

// IncrSummaryCount bumps and returns the user's request count for the day.
// The key expires on its own so there is nothing to clean up.
func (s *RedisService) IncrSummaryCount(ctx context.Context, userID int, now time.Time) (int64, error) {
	key := summaryQuotaKey(userID, now)
	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.rdb.Expire(ctx, key, 48*time.Hour)
	}
	return count, nil
}
