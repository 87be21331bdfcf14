package infra_redis_recommendation_cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/meulencv/wenomadus/internal/model"
)

// Driver keeps the last recommendation of every room as JSON.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// New returns a cache whose entries live for ttl. Zero keeps them forever.
func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Store(roomID uuid.UUID, rec *model.Recommendation) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode recommendation: %w", err)
	}

	return d.client.Set(d.getFullKey(roomID), payload, d.ttl).Err()
}

func (d *Driver) Load(roomID uuid.UUID) (*model.Recommendation, error) {
	val, err := d.client.Get(d.getFullKey(roomID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rec model.Recommendation
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("decode recommendation: %w", err)
	}
	return &rec, nil
}

func (d *Driver) getFullKey(roomID uuid.UUID) string {
	if d.key != "" {
		return d.key + ":" + roomID.String()
	}
	return roomID.String()
}
