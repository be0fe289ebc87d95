package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is nil when no REDIS_ADDR is configured; every helper
// degrades to a no-op in that case so the cache stays optional.
var RedisClient *redis.Client

const listVersionKey = "properties:version"

func InitRedis(addr, password string) {
	if addr == "" {
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

func CacheEnabled() bool {
	return RedisClient != nil
}

func GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// ListCacheVersion returns the current namespace version for cached
// property lists. Mutations bump it, which implicitly invalidates every
// key built under the previous version.
func ListCacheVersion(ctx context.Context) string {
	if !CacheEnabled() {
		return "0"
	}
	n, err := RedisClient.Get(ctx, listVersionKey).Int64()
	if err != nil {
		return "0"
	}
	return strconv.FormatInt(n, 10)
}

func BumpListCacheVersion(ctx context.Context) {
	if !CacheEnabled() {
		return
	}
	RedisClient.Incr(ctx, listVersionKey)
}

func GenerateQueryCacheKey(prefix string, queryParams map[string]string) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(queryParams[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	hashStr := hex.EncodeToString(hash[:])

	return prefix + ":" + hashStr
}
