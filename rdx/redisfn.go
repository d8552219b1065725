package rdx

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init dials Redis. A ping failure is returned but Conn is still set; the
// cache is best-effort and callers log and move on.
func Init(addr string) error {
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return Conn.Ping(ctx).Err()
}

func RdxSet(key, value string) error {
	if Conn == nil {
		return errors.New("redis not initialized")
	}
	return Conn.Set(context.Background(), key, value, 0).Err()
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", errors.New("redis not initialized")
	}
	return Conn.Get(context.Background(), key).Result()
}

func RdxDel(key string) error {
	if Conn == nil {
		return errors.New("redis not initialized")
	}
	return Conn.Del(context.Background(), key).Err()
}
