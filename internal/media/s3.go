package media

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Resolver implements Resolver by presigning S3 GET requests for image
// objects.
type s3Resolver struct {
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
	logger    zerolog.Logger
}

// NewS3Resolver creates an S3-backed image URL resolver.
func NewS3Resolver(ctx context.Context, bucket, region string, expiry time.Duration, logger zerolog.Logger) (Resolver, error) {
	logger = logger.With().Str("component", "media-s3").Logger()

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
		Dur("url_expiry", expiry).
		Msg("S3 media resolver initialised")

	return &s3Resolver{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		expiry:    expiry,
		logger:    logger,
	}, nil
}

// URL presigns a GET for the image object and returns the signed URL.
func (r *s3Resolver) URL(ctx context.Context, key string) (string, error) {
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.expiry))
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("bucket", r.bucket).
			Str("key", key).
			Msg("failed to presign image URL")
		return "", fmt.Errorf("failed to presign image URL (bucket=%s, key=%s): %w", r.bucket, key, err)
	}

	return req.URL, nil
}
