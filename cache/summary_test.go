package cache

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/monitoring-dashboard/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis serves the few commands the summary cache uses from a map
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

// EvalSha runs the generation compare-and-set the way the Lua script does
func (f *fakeRedis) EvalSha(_ context.Context, sha string, keys []string, args ...interface{}) *redis.Cmd {
	if sha != setIfGeneration.Hash() {
		return redis.NewCmdResult(nil, fmt.Errorf("NOSCRIPT unknown script %s", sha))
	}
	gen, ok := f.data[keys[0]]
	if !ok {
		gen = "0"
	}
	if gen != fmt.Sprint(args[0]) {
		return redis.NewCmdResult(int64(0), nil)
	}
	f.data[keys[1]] = string(args[1].([]byte))
	f.ttls[keys[1]] = time.Duration(args[2].(int64)) * time.Millisecond
	return redis.NewCmdResult(int64(1), nil)
}

func TestRedisSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	c := NewRedisSummary(rdb, time.Minute)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := dto.SummaryResponse{
		TotalProjects:      3,
		TotalBudget:        100,
		BudgetVariance:     40,
		StatusDistribution: map[string]int{"On Track": 3},
	}
	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)
	stored, err := c.Set(ctx, gen, want)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, time.Minute, rdb.ttls[SummaryKey])

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.TotalProjects, got.TotalProjects)
	assert.Equal(t, want.BudgetVariance, got.BudgetVariance)
	assert.Equal(t, want.StatusDistribution, got.StatusDistribution)

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	gen, err = c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestRedisSummarySkipsStaleFill(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	c := NewRedisSummary(rdb, 0)

	gen, err := c.Generation(ctx)
	require.NoError(t, err)

	// a write lands between reading the generation and storing the result
	require.NoError(t, c.Invalidate(ctx))

	stored, err := c.Set(ctx, gen, dto.SummaryResponse{TotalProjects: 1})
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	gen, err = c.Generation(ctx)
	require.NoError(t, err)
	stored, err = c.Set(ctx, gen, dto.SummaryResponse{TotalProjects: 2})
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, time.Duration(0), rdb.ttls[SummaryKey])

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), got.TotalProjects)
}

func TestRedisSummaryCorruptEntry(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data[SummaryKey] = "{not json"

	_, ok, err := NewRedisSummary(rdb, 0).Get(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Noop

	stored, err := c.Set(ctx, 0, dto.SummaryResponse{TotalProjects: 1})
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx))
}
