package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/juju/errors"
	"github.com/monitoring-dashboard/dto"
	"github.com/redis/go-redis/v9"
)

const (
	// SummaryKey is where the dashboard summary is cached
	SummaryKey = "dashboard:summary"
	// GenerationKey is bumped on every invalidation
	GenerationKey = "dashboard:summary:gen"
)

// setIfGeneration stores the summary only while the generation is still the
// one the caller read before computing it.
// KEYS: generation, summary. ARGV: expected generation, payload, ttl in ms (0 = none).
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// Noop never holds anything. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context) (dto.SummaryResponse, bool, error) {
	return dto.SummaryResponse{}, false, nil
}

func (Noop) Generation(context.Context) (int64, error) { return 0, nil }

func (Noop) Set(context.Context, int64, dto.SummaryResponse) (bool, error) { return false, nil }

func (Noop) Invalidate(context.Context) error { return nil }

// RedisSummary keeps the last computed summary as JSON in Redis
type RedisSummary struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisSummary creates a summary cache; a zero ttl keeps entries until invalidated
func NewRedisSummary(rdb redis.Cmdable, ttl time.Duration) *RedisSummary {
	return &RedisSummary{rdb: rdb, ttl: ttl}
}

// Get returns the cached summary. A miss is not an error.
func (c *RedisSummary) Get(ctx context.Context) (dto.SummaryResponse, bool, error) {
	var summary dto.SummaryResponse
	raw, err := c.rdb.Get(ctx, SummaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return summary, false, nil
	}
	if err != nil {
		return summary, false, errors.Annotate(err, "reading cached summary")
	}
	if err := json.Unmarshal(raw, &summary); err != nil {
		return summary, false, errors.Annotate(err, "decoding cached summary")
	}
	return summary, true, nil
}

// Generation returns the current invalidation count. Read it before taking the
// snapshot a summary is computed from.
func (c *RedisSummary) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, errors.Annotate(err, "reading summary generation")
}

// Set stores summary unless an invalidation happened since generation was read.
// It reports whether the summary was stored.
func (c *RedisSummary) Set(ctx context.Context, generation int64, summary dto.SummaryResponse) (bool, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return false, errors.Trace(err)
	}
	stored, err := setIfGeneration.Run(ctx, c.rdb,
		[]string{GenerationKey, SummaryKey},
		generation, raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, errors.Annotate(err, "caching summary")
	}
	return stored == 1, nil
}

// Invalidate drops the cached summary and refuses fills computed before now
func (c *RedisSummary) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, GenerationKey).Err(); err != nil {
		return errors.Annotate(err, "bumping summary generation")
	}
	return errors.Annotate(c.rdb.Del(ctx, SummaryKey).Err(), "invalidating summary")
}
