package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"headless-cms/storage"
)

// Config options for the S3 backend.
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional custom endpoint for S3-compatible services
	UsePathStyle    bool
	ACL             string // canned ACL applied to uploads, e.g. "public-read"
	KeyPrefix       string // path prefix for this deployment's objects
	PublicBaseURL   string // optional CDN/base URL; derived from bucket+region when empty
}

// Backend is the AWS S3 implementation of storage.Backend.
type Backend struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	region        string
	acl           types.ObjectCannedACL
	keyPrefix     string
	publicBaseURL string
}

func New(cfg Config) (storage.Backend, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:               cfg.Endpoint,
					SigningRegion:     cfg.Region,
					HostnameImmutable: true,
				}, nil
			})
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.UsePathStyle {
			o.UsePathStyle = true
		}
	})

	acl := types.ObjectCannedACL(cfg.ACL)
	if cfg.ACL == "" {
		acl = types.ObjectCannedACLPublicRead
	}

	return &Backend{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		acl:           acl,
		keyPrefix:     strings.Trim(cfg.KeyPrefix, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (b *Backend) key(objectKey string) string {
	if b.keyPrefix == "" {
		return objectKey
	}
	return path.Join(b.keyPrefix, objectKey)
}

func (b *Backend) Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(objectKey)),
		Body:   reader,
		ACL:    b.acl,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := b.uploader.Upload(ctx, input); err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(objectKey)),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (b *Backend) PublicURL(objectKey string) string {
	if b.publicBaseURL != "" {
		return b.publicBaseURL + "/" + b.key(objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, b.key(objectKey))
}
