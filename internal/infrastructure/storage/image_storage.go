// Package storage implementa el colaborador de archivos: destinos de subida
// de vigencia corta y resolución de referencias a URLs descargables, sobre
// S3 o MinIO.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/soulsisters/joyeria-api/internal/domain"
	"github.com/soulsisters/joyeria-api/pkg/config"
)

// ImageStorage emite URLs prefirmadas para subir imágenes de producto y
// resuelve una referencia (key) a una URL de descarga.
type ImageStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// NewImageStorage construye el servicio desde la configuración.
func NewImageStorage(cfg config.StorageConfig) *ImageStorage {
	endpointURL := cfg.Endpoint
	if !strings.HasPrefix(endpointURL, "http://") && !strings.HasPrefix(endpointURL, "https://") {
		protocol := "http"
		if cfg.UseSSL {
			protocol = "https"
		}
		endpointURL = protocol + "://" + endpointURL
	}

	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		BaseEndpoint: aws.String(endpointURL),
		UsePathStyle: true, // requerido por MinIO
	})

	expiry := time.Duration(cfg.PresignMinutes) * time.Minute
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &ImageStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		expiry:  expiry,
	}
}

// IssueUpload emite un destino de subida de vigencia corta. Devuelve la URL
// prefirmada (PUT) y la key estable que se guarda como referencia en el
// producto. La extensión del archivo original se conserva.
func (s *ImageStorage) IssueUpload(ctx context.Context, filename string) (uploadURL, key string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	key = "products/" + uuid.New().String() + ext

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return req.URL, key, nil
}

// ResolveURL resuelve una referencia a una URL de descarga prefirmada.
func (s *ImageStorage) ResolveURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("resolver imagen %s: %w", key, err)
	}
	return req.URL, nil
}
