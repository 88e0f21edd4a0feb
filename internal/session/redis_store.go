package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/denizbarcak/planvia-partner-ui/config"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in redis so a server restart does not log
// every partner out.
type RedisStore struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore connects to redis and pings it once.
func NewRedisStore(cfg *config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis session store connected", zap.String("addr", cfg.Addr))

	return &RedisStore{rdb: rdb, ttl: ttl, logger: logger}, nil
}

// Create stores a new session under its id.
func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	return s.write(ctx, sess)
}

// Get loads a session by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Save overwrites an existing session, refreshing its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	return s.write(ctx, sess)
}

// Delete removes a session.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}

// Close closes the redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) write(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.rdb.Set(ctx, keyPrefix+sess.ID, raw, s.sessionTTL(sess)).Err()
}

// sessionTTL aligns the redis TTL with the upstream access token when
// the token expires before the configured session lifetime. Keeping a
// session alive past its credential would only produce 401s.
func (s *RedisStore) sessionTTL(sess *Session) time.Duration {
	ttl := s.ttl
	if exp, ok := tokenExpiry(sess.AccessToken); ok {
		if remaining := time.Until(exp); remaining > 0 && remaining < ttl {
			ttl = remaining
		}
	}
	return ttl
}

// tokenExpiry peeks at the access token's exp claim. The token is NOT
// verified here: the signing secret belongs to the backend, and the
// claim is only used to bound the session lifetime.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwtv5.RegisteredClaims{}
	if _, _, err := jwtv5.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
