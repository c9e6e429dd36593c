package cache

import (
	"context"
	"strings"
	"time"

	"familyhub/core/config"
	"familyhub/core/constants"
	"familyhub/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

func NewCache(cfg *config.Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:NewCache:Ping:Error:", err)
		return nil, err
	}

	logger.Info("Cache:NewCache:Connected", "addr", cfg.RedisAddr)
	return &Cache{client: client}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// BlacklistToken records a logged-out token until its natural expiry.
func (c *Cache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetPresence refreshes a member's presence signal. The key TTL replaces
// the query-time staleness window of the original design: a member with no
// heartbeat for 30s simply disappears from GetPresence.
func (c *Cache) SetPresence(ctx context.Context, groupID, email string) error {
	key := constants.RedisKeyPresence + groupID + ":" + email
	return c.client.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), constants.PresenceTTL).Err()
}

func (c *Cache) GetPresence(ctx context.Context, groupID string) ([]string, error) {
	return c.scanMembers(ctx, constants.RedisKeyPresence+groupID+":")
}

// SetTyping refreshes a member's typing signal (5s TTL).
func (c *Cache) SetTyping(ctx context.Context, groupID, email string) error {
	key := constants.RedisKeyTyping + groupID + ":" + email
	return c.client.Set(ctx, key, "1", constants.TypingTTL).Err()
}

func (c *Cache) GetTyping(ctx context.Context, groupID string) ([]string, error) {
	return c.scanMembers(ctx, constants.RedisKeyTyping+groupID+":")
}

func (c *Cache) scanMembers(ctx context.Context, prefix string) ([]string, error) {
	emails := []string{}
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		emails = append(emails, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		logger.Error("Cache:scanMembers:Error:", err)
		return nil, err
	}
	return emails, nil
}
