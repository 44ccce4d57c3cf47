// Package storage uploads artifacts to an S3-compatible object store and
// resolves their public URLs. Any store that speaks the S3 API works; the
// endpoint is configurable so hosted storage services and MinIO can be used
// interchangeably.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Options struct {
	// Endpoint is the base URL of the S3-compatible store.
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`

	// JustificationsBucket holds uploaded justification files.
	JustificationsBucket string `yaml:"justificationsBucket"`
	// ReportsBucket holds generated PDF reports.
	ReportsBucket string `yaml:"reportsBucket"`
}

// Store is the surface the server needs from blob storage. Tests substitute
// a fake.
type Store interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
	PublicURL(bucket, key string) string
}

type Client struct {
	s3      *s3.Client
	options Options
}

func NewClient(ctx context.Context, options Options) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(options.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			options.AccessKeyID,
			options.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(options.Endpoint)
		o.UsePathStyle = true
	})

	return &Client{s3: client, options: options}, nil
}

func (c *Client) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (c *Client) PublicURL(bucket, key string) string {
	return strings.TrimSuffix(c.options.Endpoint, "/") + "/" + path.Join(bucket, key)
}

// JustificationKey builds the object key for an uploaded justification file,
// grouped by user. An empty filename gets a generated one so the key is
// never ambiguous.
func JustificationKey(userID uint, filename string) string {
	if filename == "" {
		filename = uuid.New().String()
	}
	return fmt.Sprintf("%d/%d-%s", userID, time.Now().UnixMilli(), filename)
}

// ReportKey builds the object key for a generated report, unique per user
// and generation time.
func ReportKey(userID uint) string {
	return fmt.Sprintf("relatorio_%d_%d.pdf", userID, time.Now().UnixMilli())
}
