package infra_redis_room_lock

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Driver is a per-room mutual exclusion shared by every app instance.
// A holder that dies keeps the room locked for at most ttl.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

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

func (d *Driver) Acquire(roomID uuid.UUID) (string, bool, error) {
	token := uuid.NewString()
	ok, err := d.client.SetNX(d.getFullKey(roomID), token, d.ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (d *Driver) Release(roomID uuid.UUID, token string) error {
	err := releaseScript.Run(d.client, []string{d.getFullKey(roomID)}, token).Err()
	if err != nil && err != redis.Nil {
		return err
	}
	return nil
}

func (d *Driver) getFullKey(roomID uuid.UUID) string {
	if d.key != "" {
		return d.key + ":" + roomID.String()
	}
	return roomID.String()
}
