package session

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/longchau/pharmacy-web/pkg/helpers"
)

const (
	sessionKeyPrefix = "session:"
	flashKeyPrefix   = "flash:"

	// flashTTL bounds how long an unread flash survives.
	flashTTL = time.Hour
)

// RedisStore keeps session records as Redis hashes under session:<token>.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(token string) string { return sessionKeyPrefix + token }
func flashKey(token string) string   { return flashKeyPrefix + token }

func (s *RedisStore) Create(ctx context.Context, data Data, ttl time.Duration) (string, error) {
	token, err := helpers.GenToken(32)
	if err != nil {
		return "", err
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now().UTC()
	}
	fields := map[string]any{
		"user_id":    data.UserID,
		"email":      data.Email,
		"name":       data.Name,
		"remember":   strconv.FormatBool(data.Remember),
		"created_at": data.CreatedAt.Format(time.RFC3339Nano),
	}
	key := sessionKey(token)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Data, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	fields, err := s.rdb.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	d := &Data{
		UserID: fields["user_id"],
		Email:  fields["email"],
		Name:   fields["name"],
	}
	d.Remember, _ = strconv.ParseBool(fields["remember"])
	if t, err := time.Parse(time.RFC3339Nano, fields["created_at"]); err == nil {
		d.CreatedAt = t
	}
	return d, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

func (s *RedisStore) Extend(ctx context.Context, token string, ttl time.Duration) error {
	ok, err := s.rdb.Expire(ctx, sessionKey(token), ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) AddFlash(ctx context.Context, token string, f Flash) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	key := flashKey(token)
	pipe := s.rdb.Pipeline()
	pipe.RPush(ctx, key, b)
	pipe.Expire(ctx, key, flashTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) PopFlashes(ctx context.Context, token string) ([]Flash, error) {
	if token == "" {
		return nil, nil
	}
	key := flashKey(token)
	pipe := s.rdb.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	raw, err := items.Result()
	if err != nil {
		return nil, err
	}
	flashes := make([]Flash, 0, len(raw))
	for _, r := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(r), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

var _ Store = (*RedisStore)(nil)
