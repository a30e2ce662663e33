package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"bigtwo/internal/engine"
)

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a Store backed by a shared Redis instance, one
// JSON document per player.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func profileKey(name string) string {
	return fmt.Sprintf("bigtwo:profile:%s", name)
}

func (r *redisStore) Get(ctx context.Context, name string) (Profile, error) {
	data, err := r.rdb.Get(ctx, profileKey(name)).Bytes()
	if err == redis.Nil {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %q: %w", name, err)
	}
	return p, nil
}

func (r *redisStore) Put(ctx context.Context, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, profileKey(p.Name), data, 0).Err()
}

func (r *redisStore) Apply(ctx context.Context, updates []engine.Update) error {
	// Read-modify-write per name; settlements for one table arrive
	// from a single goroutine so no cross-key atomicity is needed.
	folded := make([]Profile, 0, len(updates))
	for _, u := range updates {
		p, err := r.Get(ctx, u.Name)
		if err != nil && err != ErrNotFound {
			return err
		}
		folded = append(folded, applyUpdate(p, u))
	}

	pipe := r.rdb.Pipeline()
	for _, p := range folded {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.Set(ctx, profileKey(p.Name), data, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}
