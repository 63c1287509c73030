package customdict

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"stemcheck/internal/analysis"
)

// DefaultKey is the Redis set holding custom words.
const DefaultKey = "custom_dict"

// ErrInvalidWord is returned for words outside the analysis alphabet.
var ErrInvalidWord = errors.New("invalid custom word")

// CustomDict wraps a Redis client to store custom dictionary words.
type CustomDict struct {
	client redis.Cmdable
	key    string
}

// New creates a new CustomDict with the provided Redis client. An empty key
// selects DefaultKey.
func New(client redis.Cmdable, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// Normalize returns the stored form of word.
func Normalize(word string) (string, error) {
	w := analysis.Normalize(strings.TrimSpace(word))
	if !analysis.InAlphabet(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return w, nil
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) (string, error) {
	w, err := Normalize(word)
	if err != nil {
		return "", err
	}
	if err := cd.client.SAdd(ctx, cd.key, w).Err(); err != nil {
		return "", fmt.Errorf("redis sadd %s: %w", cd.key, err)
	}
	return w, nil
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) (string, error) {
	w, err := Normalize(word)
	if err != nil {
		return "", err
	}
	if err := cd.client.SRem(ctx, cd.key, w).Err(); err != nil {
		return "", fmt.Errorf("redis srem %s: %w", cd.key, err)
	}
	return w, nil
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers %s: %w", cd.key, err)
	}
	return words, nil
}

// Ping checks the connection.
func (cd *CustomDict) Ping(ctx context.Context) error {
	return cd.client.Ping(ctx).Err()
}
