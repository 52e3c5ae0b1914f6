package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"celula-igreja/internal/config"
	"celula-igreja/internal/repository"
	"celula-igreja/internal/service/roster"
)

type Service interface {
	UploadPhoto(ctx context.Context, userID, groupID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
}

type service struct {
	userRepo    repository.UserRepository
	rosterSvc   roster.Service
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(userRepo repository.UserRepository, rosterSvc roster.Service, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		userRepo:    userRepo,
		rosterSvc:   rosterSvc,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// UploadPhoto stores the member's photo and points their profile at it. The
// roster cache is invalidated so notification cards pick up the new photo on
// the next resolution.
func (s *service) UploadPhoto(ctx context.Context, userID, groupID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}

	storagePath := fmt.Sprintf("fotos/%s", userID)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	photoURL := s.publicURL(storagePath)
	if err := s.userRepo.UpdatePhoto(ctx, userID, photoURL); err != nil {
		return "", err
	}

	_ = s.rosterSvc.Invalidate(ctx, groupID)

	return photoURL, nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}
