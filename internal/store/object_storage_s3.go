package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
)

// s3PutAPI is the part of *s3.Client used for uploads.
type s3PutAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3PresignAPI is the part of *s3.PresignClient used for download URLs.
type s3PresignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// s3ObjectStorage keeps media files in an S3-compatible bucket.
type s3ObjectStorage struct {
	client        s3PutAPI
	presigner     s3PresignAPI
	bucket        string
	presignExpiry time.Duration
	logger        *logger.Logger
}

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// NewS3ObjectStorage builds an [ObjectStorage] for the configured bucket.
//
// Static credentials are used when both keys are configured; otherwise the
// default AWS credential chain applies. BaseEndpoint and UsePathStyle allow
// pointing the client at MinIO or another S3-compatible server.
func NewS3ObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ObjectStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("object storage initialised")

	return newS3ObjectStorage(client, s3.NewPresignClient(client), cfg.Bucket, cfg.PresignExpiry, log), nil
}

func newS3ObjectStorage(client s3PutAPI, presigner s3PresignAPI, bucket string, expiry time.Duration, log *logger.Logger) *s3ObjectStorage {
	if expiry <= 0 {
		expiry = config.DefaultPresignExpiry
	}
	return &s3ObjectStorage{
		client:        client,
		presigner:     presigner,
		bucket:        bucket,
		presignExpiry: expiry,
		logger:        log,
	}
}

// PutObject uploads body under key in a single request.
func (s *s3ObjectStorage) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	log := logger.FromContext(ctx)

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		log.Err(err).Str("func", "*s3ObjectStorage.PutObject").Str("key", key).Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrPuttingObject, err)
	}

	return nil
}

// PresignGetURL returns a time-bounded GET URL for key.
func (s *s3ObjectStorage) PresignGetURL(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpiry))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPresigningObject, err)
	}

	return req.URL, nil
}
