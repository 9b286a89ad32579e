package storage

import (
	"context"
	"io"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	bucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.DocumentStorage {
	return &minioStorage{
		MinioClient: minioClient,
		bucketName:  internalConfig.App.ClaimBucketName,
		Log:         logger,
	}
}

func (m *minioStorage) UploadClaimBundle(ctx context.Context, objectName, contentType string, file io.Reader, size int64) (string, error) {
	m.Log.Info("minioStorage.UploadClaimBundle called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingBucketNameKey, m.bucketName),
		zap.String(constvars.LoggingDocumentObjectName, objectName),
	)

	_, err := m.MinioClient.PutObject(ctx, m.bucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioPutObject(err, m.bucketName)
	}
	return objectName, nil
}

func (m *minioStorage) PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.bucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.bucketName)
	}
	return presignedURL.String(), nil
}
