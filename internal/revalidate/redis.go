package revalidate

import (
	"context"
	"strconv"
	"time"

	pkgLog "records-srv/pkg/log"
	pkgRedis "records-srv/pkg/redis"
)

type redisSignal struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ Signal = &redisSignal{}

// NewRedisSignal returns a Signal that publishes staleness notifications on
// the shared Redis channel.
func NewRedisSignal(l pkgLog.Logger, redis pkgRedis.IRedis) *redisSignal {
	return &redisSignal{
		l:     l,
		redis: redis,
	}
}

func (s *redisSignal) Invalidate(ctx context.Context) error {
	// Payload is the emission time; subscribers only care that the event
	// happened.
	payload := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.redis.Publish(ctx, Channel, payload); err != nil {
		s.l.Errorf(ctx, "internal.revalidate.redisSignal.Invalidate.Publish: %v", err)
		return err
	}

	return nil
}
