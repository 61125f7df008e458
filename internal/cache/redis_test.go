package cache

import (
	"context"
	"testing"
	"time"

	"github.com/brewnext/internal/config"
)

func resetCacheState(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		redisClient = nil
		redisEnabled = false
		redisPrefix = defaultKeyPrefix
	})
}

func TestKeyPrefixFollowsConfig(t *testing.T) {
	resetCacheState(t)

	if err := InitRedis(&config.RedisConfig{Enabled: false, Prefix: "unit"}); err != nil {
		t.Fatalf("InitRedis error: %v", err)
	}
	if Enabled() {
		t.Fatalf("cache should stay disabled")
	}
	if got := KeyPrefix(); got != "unit" {
		t.Fatalf("unexpected key prefix: %s", got)
	}
	if got := RateLimitPrefix("login"); got != "unit:rate:login" {
		t.Fatalf("unexpected rate limit prefix: %s", got)
	}
	if got := RateLimitPrefix("  "); got != "unit:rate:default" {
		t.Fatalf("unexpected default scene prefix: %s", got)
	}
	if got := namespacedKey("auth:user:1"); got != "unit:auth:user:1" {
		t.Fatalf("unexpected namespaced key: %s", got)
	}
}

func TestDisabledCacheNoop(t *testing.T) {
	resetCacheState(t)

	if err := InitRedis(nil); err != nil {
		t.Fatalf("InitRedis error: %v", err)
	}
	if got := KeyPrefix(); got != defaultKeyPrefix {
		t.Fatalf("nil config should keep default prefix, got %s", got)
	}

	ctx := context.Background()
	var dest map[string]string
	hit, err := GetJSON(ctx, "missing", &dest)
	if err != nil || hit {
		t.Fatalf("disabled GetJSON should miss silently, hit=%v err=%v", hit, err)
	}
	if err := SetJSON(ctx, "missing", map[string]string{"k": "v"}, time.Minute); err != nil {
		t.Fatalf("disabled SetJSON should be a no-op: %v", err)
	}
	if err := Del(ctx, "missing"); err != nil {
		t.Fatalf("disabled Del should be a no-op: %v", err)
	}
}
