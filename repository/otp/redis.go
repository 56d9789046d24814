package otp

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const keyPrefix = "otp:"

// RedisStore keeps OTP entries in redis with key TTL, so expiry is enforced
// by the store itself and codes survive a process restart.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Save(ctx context.Context, number, code string, ttl time.Duration) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+number, hash, ttl).Err()
}

func (r *RedisStore) Consume(ctx context.Context, code string) (string, error) {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		hash, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil { // expired between SCAN and GET
				continue
			}
			return "", err
		}
		if bcrypt.CompareHashAndPassword(hash, []byte(code)) == nil {
			if err := r.client.Del(ctx, key).Err(); err != nil {
				return "", err
			}
			return strings.TrimPrefix(key, keyPrefix), nil
		}
	}
	if err := iter.Err(); err != nil {
		return "", err
	}
	return "", ErrCodeNotFound
}
