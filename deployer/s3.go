package deployer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"resume-folio/config"
	"resume-folio/dto"
)

// S3 publishes the site objects into a MinIO/S3 bucket configured for static
// website hosting. Each deploy lives under a short random prefix.
type S3 struct {
	client        *minio.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewS3 builds a MinIO-backed deployer from the config.
func NewS3(cfg config.S3Config) (*S3, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}
	return &S3{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Deploy implements Deployer.
func (s *S3) Deploy(ctx context.Context, site dto.SiteCode) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	siteID := uuid.NewString()[:8]
	objects := []struct {
		name        string
		content     string
		contentType string
	}{
		{FileHTML, site.HTMLCode, "text/html; charset=utf-8"},
		{FileCSS, site.CSSCode, "text/css; charset=utf-8"},
		{FileJS, site.JSCode, "text/javascript; charset=utf-8"},
	}
	for _, obj := range objects {
		key := siteID + "/" + obj.name
		reader := strings.NewReader(obj.content)
		opts := minio.PutObjectOptions{ContentType: obj.contentType}
		if _, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(obj.content)), opts); err != nil {
			return "", fmt.Errorf("upload %s: %w", key, err)
		}
	}

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, siteID, FileHTML), nil
}

func (s *S3) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}
