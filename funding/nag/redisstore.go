package nag

import (
	"context"
	"os"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/log"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// redisOpTimeout bounds every store call so a slow Redis cannot stall a host
// process that only wanted to show a reminder.
const redisOpTimeout = 2 * time.Second

const redisKeyPrefix = "floss-funding"

// RedisStore is the stricter Store backend: SET NX makes check-and-record an
// atomic compare-and-swap, so concurrent processes cannot double-nag the way
// racing FileStore writers can. Entry lifetime is enforced with a TTL equal
// to the clamped max age, which replaces explicit rotation.
//
// Like FileStore, every failure degrades to "no throttling".
type RedisStore struct {
	client redis.UniversalClient
	kind   Kind
	maxAge time.Duration
	logger log.Logger
	now    func() time.Time
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisLogger sets the logger for swallowed-failure diagnostics.
func WithRedisLogger(logger log.Logger) RedisOption {
	return func(s *RedisStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRedisMaxAge overrides the entry lifetime. The value is clamped.
func WithRedisMaxAge(d time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.maxAge = ClampMaxAge(d)
	}
}

// WithRedisClock overrides the time source used for entry timestamps.
func WithRedisClock(now func() time.Time) RedisOption {
	return func(s *RedisStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRedisStore builds a RedisStore for a kind on an existing client.
func NewRedisStore(client redis.UniversalClient, kind Kind, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		kind:   kind,
		maxAge: defaultMaxAge(kind),
		logger: log.NewNop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Nagged reports whether a reminder was already recorded for key.
func (s *RedisStore) Nagged(key string) bool {
	if s == nil || s.client == nil {
		return false
	}

	ctx, cancel := s.opContext()
	defer cancel()

	n, err := s.client.Exists(ctx, s.nagKey(key)).Result()
	if err != nil {
		s.logger.Log(ctx, log.LevelDebug, "redis nag check failed", log.Err(err))

		return false
	}

	return n > 0
}

// Record atomically inserts an entry for key with the store lifetime as TTL.
// An existing entry is left untouched.
func (s *RedisStore) Record(key string, entry Entry) {
	if s == nil || s.client == nil {
		return
	}

	ctx, cancel := s.opContext()
	defer cancel()

	data, err := yaml.Marshal(entry)
	if err != nil {
		s.logger.Log(ctx, log.LevelDebug, "redis nag marshal failed", log.Err(err))

		return
	}

	if err := s.client.SetNX(ctx, s.nagKey(key), data, s.maxAge).Err(); err != nil {
		s.logger.Log(ctx, log.LevelDebug, "redis nag record failed", log.Err(err))
	}
}

// Rotate is a no-op: per-entry TTLs already bound every record's lifetime.
func (s *RedisStore) Rotate() {}

// Touch writes the created marker so the store's presence is observable.
func (s *RedisStore) Touch() {
	if s == nil || s.client == nil {
		return
	}

	ctx, cancel := s.opContext()
	defer cancel()

	created := Created{
		PID:  os.Getpid(),
		At:   s.now().UTC(),
		Type: string(s.kind),
	}

	data, err := yaml.Marshal(created)
	if err != nil {
		return
	}

	if err := s.client.SetNX(ctx, s.createdKey(), data, s.maxAge).Err(); err != nil {
		s.logger.Log(ctx, log.LevelDebug, "redis touch failed", log.Err(err))
	}
}

func (s *RedisStore) nagKey(key string) string {
	return redisKeyPrefix + ":" + string(s.kind) + ":nag:" + key
}

func (s *RedisStore) createdKey() string {
	return redisKeyPrefix + ":" + string(s.kind) + ":created"
}

func (s *RedisStore) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisOpTimeout)
}
