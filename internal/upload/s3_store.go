package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Store implements Store for writing images to AWS S3.
type s3Store struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Store creates an S3-based image store.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 image store initialised")

	return &s3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Save uploads the image to S3 and returns its public URL.
func (s *s3Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := s.prefix + uniqueName(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Debug().Str("key", key).Msg("image stored in S3")

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// fallbackStore tries S3 first, then falls back to the local store.
type fallbackStore struct {
	s3Store    Store
	localStore Store
	s3Enabled  bool
	logger     zerolog.Logger
}

// NewFallbackStore creates a store that tries S3 first, then falls
// back to the local file system. With s3Store nil or S3 disabled it
// only uses the local store.
func NewFallbackStore(s3Store, localStore Store, s3Enabled bool, logger zerolog.Logger) Store {
	return &fallbackStore{
		s3Store:    s3Store,
		localStore: localStore,
		s3Enabled:  s3Enabled,
		logger:     logger.With().Str("component", "fallback-image-store").Logger(),
	}
}

// Save attempts the S3 store first, then the local file system. The
// image is buffered so the fallback can re-read it after a failed
// S3 attempt.
func (s *fallbackStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	if s.s3Enabled && s.s3Store != nil {
		source, err := s.s3Store.Save(ctx, filename, bytes.NewReader(data))
		if err == nil {
			return source, nil
		}

		s.logger.Warn().
			Err(err).
			Str("filename", filename).
			Msg("S3 store failed, falling back to local file system")
	}

	return s.localStore.Save(ctx, filename, bytes.NewReader(data))
}
