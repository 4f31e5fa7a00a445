package service

import "context"

// SlipStorage stores generated delivery slip documents.
type SlipStorage interface {
	// Put writes data under key, replacing any previous object.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}
