package publisher

import (
	"context"
	"errors"
	"fmt"
	"mobile-depot-planner/internal/adapters/geojson"
	"mobile-depot-planner/internal/platform/obs"
	"mobile-depot-planner/internal/ports"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultStream is the stream accepted plans are appended to.
const DefaultStream = "GeoJSONOutput"

const publishTimeout = 2 * time.Second

// RedisStreamPublisher appends every accepted plan to a Redis stream.
// Entries carry the plan mode in "type", the plan id and the rendered body.
type RedisStreamPublisher struct {
	rdb    *redis.Client
	stream string
}

func NewRedisStreamPublisher(rdb *redis.Client, stream string) *RedisStreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisStreamPublisher{rdb: rdb, stream: stream}
}

// NewRedisStreamPublisherFromURL connects using a redis:// URL.
func NewRedisStreamPublisherFromURL(url, stream string) (*RedisStreamPublisher, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis publisher: parse url: %w", err)
	}
	return NewRedisStreamPublisher(redis.NewClient(opt), stream), nil
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, pub ports.Publication) (err error) {
	defer obs.Time(ctx, "publish.redis")(&err)

	if p.rdb == nil {
		return errors.New("redis publisher: client is nil")
	}
	plan := pub.Plan

	body, err := geojson.MarshalPlan(plan, pub.RequestData)
	if err != nil {
		return fmt.Errorf("redis publisher: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	id, err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"type":    string(plan.Mode),
			"plan_id": plan.ID,
			"body":    string(body),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("redis publisher: xadd %s: %w", p.stream, err)
	}

	obs.Logger(ctx).WithField("entry", id).WithField("stream", p.stream).Debug("plan published")
	return nil
}

func (p *RedisStreamPublisher) Close() error {
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
