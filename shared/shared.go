package shared

import (
	"context"
	"strings"
	"studyspot/shared/cache"
	"studyspot/shared/constant"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a prefix and its parts into a single cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// InvalidateCaches drops every cache entry under the given prefix.
// Cache failures are logged and swallowed; the store stays authoritative.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// NormalizeEmail trims surrounding whitespace the way the signup form does.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
