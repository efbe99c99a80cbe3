package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/poimap-service/internal/config"
	"github.com/poimap-service/internal/domain/repository"
	"go.uber.org/zap"
)

const maxObjectSize = 8 << 20

// Client читает документы карт из S3-совместимого хранилища
type Client struct {
	client *minio.Client
	bucket string
	prefix string
	logger *zap.Logger
}

var (
	_ repository.DocumentSource = (*Client)(nil)
	_ repository.DocumentSink   = (*Client)(nil)
)

// NewClient создает клиент MinIO/S3
func NewClient(cfg *config.S3Config, logger *zap.Logger) (*Client, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	logger.Info("S3 client created",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return &Client{
		client: minioClient,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger,
	}, nil
}

// Health проверяет, что бакет существует
func (c *Client) Health(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", c.bucket)
	}
	return nil
}

// DocumentSource возвращает клиент как источник документов
func (c *Client) DocumentSource() repository.DocumentSource {
	return c
}

func (c *Client) Name() string {
	return "s3"
}

func (c *Client) objectKey(name string) string {
	return c.prefix + name
}

func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := c.objectKey(name)

	object, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		c.logger.Error("Failed to get object", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(io.LimitReader(object, maxObjectSize+1))
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("object %s not found in bucket %s: %w", key, c.bucket, err)
		}
		c.logger.Error("Failed to read object", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	if len(data) > maxObjectSize {
		return nil, fmt.Errorf("object %s exceeds %d bytes", key, maxObjectSize)
	}

	c.logger.Debug("Map document read from bucket",
		zap.String("bucket", c.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)))

	return data, nil
}

// Put загружает документ в бакет (используется сидером и тестами)
func (c *Client) Put(ctx context.Context, name string, data []byte) error {
	key := c.objectKey(name)
	_, err := c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}
