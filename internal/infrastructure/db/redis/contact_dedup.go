package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const contactDedupTTL = time.Hour

// ContactDedup suppresses repeated contact-form submissions, backed by Redis.
// Key format: contact:<email>:<sha256(message) prefix>
type ContactDedup struct {
	client *redis.Client
}

// NewContactDedup creates a ContactDedup wrapping the given Redis client.
func NewContactDedup(client *redis.Client) *ContactDedup {
	return &ContactDedup{client: client}
}

// IsDuplicate reports whether the same email already submitted this exact
// message within the dedup window.
func (d *ContactDedup) IsDuplicate(ctx context.Context, email, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("contact dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission was stored (expires after contactDedupTTL).
func (d *ContactDedup) Mark(ctx context.Context, email, message string) error {
	return d.client.Set(ctx, d.key(email, message), "1", contactDedupTTL).Err()
}

func (d *ContactDedup) key(email, message string) string {
	sum := sha256.Sum256([]byte(message))
	return fmt.Sprintf("contact:%s:%s", email, hex.EncodeToString(sum[:8]))
}
