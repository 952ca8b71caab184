package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/redis/go-redis/v9"
)

// Tracker records which posts already have at least one question, so reruns
// skip redundant concept extraction.
type Tracker interface {
	Covered(ctx context.Context) (map[string]bool, error)
	Add(ctx context.Context, keys []string) error
}

// FileTracker stores the tracking set as a JSON artifact on disk.
type FileTracker struct {
	path string
}

// trackingFile matches the on-disk artifact layout.
type trackingFile struct {
	GeneratedFor []string `json:"generatedFor"`
}

// NewFileTracker creates a tracker backed by the given artifact path. A
// missing file means an empty set.
func NewFileTracker(path string) *FileTracker {
	return &FileTracker{path: path}
}

func (t *FileTracker) Covered(ctx context.Context) (map[string]bool, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("read tracking artifact: %w", err)
	}

	var tf trackingFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse tracking artifact: %w", err)
	}

	covered := make(map[string]bool, len(tf.GeneratedFor))
	for _, k := range tf.GeneratedFor {
		covered[k] = true
	}
	return covered, nil
}

func (t *FileTracker) Add(ctx context.Context, keys []string) error {
	covered, err := t.Covered(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		covered[k] = true
	}

	tf := trackingFile{GeneratedFor: make([]string, 0, len(covered))}
	for k := range covered {
		tf.GeneratedFor = append(tf.GeneratedFor, k)
	}

	data, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tracking artifact: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("write tracking artifact: %w", err)
	}
	return nil
}

// RedisTracker stores the tracking set in a Redis set, shared across hosts.
type RedisTracker struct {
	client *redis.Client
	key    string
}

// NewRedisTracker creates a tracker backed by the Redis set under key.
func NewRedisTracker(client *redis.Client, key string) *RedisTracker {
	return &RedisTracker{client: client, key: key}
}

func (t *RedisTracker) Covered(ctx context.Context) (map[string]bool, error) {
	members, err := t.client.SMembers(ctx, t.key).Result()
	if err != nil {
		return nil, fmt.Errorf("read tracking set: %w", err)
	}
	covered := make(map[string]bool, len(members))
	for _, m := range members {
		covered[m] = true
	}
	return covered, nil
}

func (t *RedisTracker) Add(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	members := make([]any, len(keys))
	for i, k := range keys {
		members[i] = k
	}
	if err := t.client.SAdd(ctx, t.key, members...).Err(); err != nil {
		return fmt.Errorf("update tracking set: %w", err)
	}
	return nil
}
