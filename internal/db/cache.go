package mbiri

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// CacheService keeps per-user point balances in Redis with a short TTL.
// It is an optional collaborator: callers hold it behind a nil-checked field.
type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {
	addr := os.Getenv("MBIRI_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env MBIRI_CACHE_URL is not set")
	}
	user := os.Getenv("MBIRI_CACHE_USER")
	pwd := os.Getenv("MBIRI_CACHE_PWD")

	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func (c *CacheService) GetPoints(ctx context.Context, user string) (points int, err error) {
	val, err := c.client.Get(ctx, "points:"+user).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("not found")
	} else if err != nil {
		return 0, err
	}

	points, err = strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (c *CacheService) SetPoints(ctx context.Context, user string, points int) (err error) {
	err = c.client.Set(ctx, "points:"+user, points, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidatePoints(ctx context.Context, user string) error {
	err := c.client.Del(ctx, "points:"+user).Err()
	if err != nil {
		return err
	}
	return nil
}
