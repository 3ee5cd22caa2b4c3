package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested key is absent from the store.
var ErrNotFound = errors.New("record not found")

// Store is the key-value persistence contract consumed by the domain services.
// Values are opaque JSON blobs; callers own serialization.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// GetByPrefix returns the values of every key starting with prefix, in no particular order.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	// MGet returns one entry per requested key, aligned with the input; absent keys yield nil.
	MGet(ctx context.Context, keys []string) ([][]byte, error)
}

// GetJSON fetches key and unmarshals its value into target.
func GetJSON(ctx context.Context, s Store, key string, target interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode record %s: %w", key, err)
	}

	return nil
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}

	return s.Set(ctx, key, raw)
}

// GetList returns the ID list stored under key, or an empty list when absent.
// Index side-lists (instructor courses, lesson comments, user inboxes) are
// stored as JSON string arrays.
func GetList(ctx context.Context, s Store, key string) ([]string, error) {
	var ids []string
	if err := GetJSON(ctx, s, key, &ids); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	return ids, nil
}

// AppendToList appends id to the list stored under key. The read-modify-write
// sequence is not atomic; concurrent appends follow last-write-wins.
func AppendToList(ctx context.Context, s Store, key, id string) error {
	ids, err := GetList(ctx, s, key)
	if err != nil {
		return err
	}

	return SetJSON(ctx, s, key, append(ids, id))
}
