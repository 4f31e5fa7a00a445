// Package storage writes delivery slips to a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/service"
	"market/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local runs
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// ErrSlipNotFound is returned by Get for a missing key.
var ErrSlipNotFound = errors.New("slip not found")

type blobSlipStorage struct {
	bucket *blob.Bucket
}

// NewBlobSlipStorage wraps an opened bucket.
func NewBlobSlipStorage(bucket *blob.Bucket) service.SlipStorage {
	return &blobSlipStorage{bucket: bucket}
}

func (s *blobSlipStorage) Put(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "write slip %s", key)
}

func (s *blobSlipStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, ErrSlipNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read slip %s", key)
	}

	return data, nil
}

// Params holds dependencies for slip storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket; without configuration slips are kept in memory.
func New(params Params) (service.SlipStorage, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	params.Logger.Info("Slip storage opened", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobSlipStorage(bucket), nil
}

// Module provides the slip storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
