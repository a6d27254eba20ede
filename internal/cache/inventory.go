package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	LikedMoviesKeyPrefix = "user:%d:liked"
)

const (
	UserTTL        = 5 * time.Minute
	LikedMoviesTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func LikedMoviesKey(userID uint) string {
	return fmt.Sprintf(LikedMoviesKeyPrefix, userID)
}

// Aside implements the cache-aside pattern: on a hit, dest is populated from
// the cached JSON value; on a miss, fill is called and its result stored under
// key with the given TTL. With no Redis client available it degrades to a
// plain fill call. Cache write failures are ignored; the fill result wins.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fill func() error) error {
	if client != nil {
		if raw, err := client.Get(ctx, key).Bytes(); err == nil {
			if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
				return nil
			}
			// Corrupt entry, drop it and fall through to the fill.
			client.Del(ctx, key)
		}
	}

	if err := fill(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateLikedMovies(ctx context.Context, userID uint) {
	Invalidate(ctx, LikedMoviesKey(userID))
}
