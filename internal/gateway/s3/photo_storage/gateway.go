package photo_storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"builty-service/internal/gateway/metrics"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const serviceName = "s3-photo-storage"

type PhotoStorage struct {
	client        client
	bucket        string
	publicBaseURL string
}

func New(client client, bucket, publicBaseURL string) *PhotoStorage {
	return &PhotoStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores the object and returns its public URL. Retries are left to the SDK retryer,
// the body is read once here.
func (p *PhotoStorage) Upload(ctx context.Context, key string, contentType string, size int64, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	start := time.Now()
	_, err := p.client.PutObject(ctx, input)
	metrics.Observe(serviceName, "PutObject", resultLabel(err), start, 1)
	if err != nil {
		return "", fmt.Errorf("gateway photo storage, put %s: %w", key, err)
	}

	return p.publicBaseURL + "/" + key, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ResultCanceled
	default:
		return metrics.ResultError
	}
}
