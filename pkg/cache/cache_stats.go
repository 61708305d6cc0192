package cache

import (
	"strconv"
	"time"
)

// Dashboard payload caching. Statistics reads tolerate staleness, so both
// blocks sit behind a short TTL and are invalidated when a new exchange is
// stored for the account.

const globalStatsKeyPart = "stats:global"

func userStatsKey(userID uint) string {
	return KeyFromStrings("stats:user", strconv.FormatUint(uint64(userID), 10))
}

// GetUserStats returns the cached per-account dashboard block, if any.
func (c *Cache) GetUserStats(userID uint) (any, bool) {
	return c.Get(userStatsKey(userID))
}

// SetUserStats caches the per-account dashboard block.
func (c *Cache) SetUserStats(userID uint, v any, ttl time.Duration) {
	c.Set(userStatsKey(userID), v, ttl)
}

// InvalidateUserStats drops the cached block after new messages land.
func (c *Cache) InvalidateUserStats(userID uint) {
	c.Delete(userStatsKey(userID))
}

// GetGlobalStats returns the cached platform-wide block, if any.
func (c *Cache) GetGlobalStats() (any, bool) {
	return c.Get(KeyFromStrings(globalStatsKeyPart))
}

// SetGlobalStats caches the platform-wide block.
func (c *Cache) SetGlobalStats(v any, ttl time.Duration) {
	c.Set(KeyFromStrings(globalStatsKeyPart), v, ttl)
}

// InvalidateGlobalStats drops the cached platform-wide block.
func (c *Cache) InvalidateGlobalStats() {
	c.Delete(KeyFromStrings(globalStatsKeyPart))
}
