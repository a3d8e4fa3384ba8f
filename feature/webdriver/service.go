package webdriver

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/audit"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/driver"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service drives the backend for the protocol endpoints and owns the
// cross-cutting concerns around it: session event auditing, the optional
// screenshot archive, and stopping the listener after a shutdown command.
type Service struct {
	backend driver.Backend
	store   storage.Client
	bucket  string
	audit   *audit.Recorder
	logger  *zap.Logger
	stop    func()
}

// NewService creates a new webdriver service. store may be nil to disable the
// screenshot archive.
func NewService(backend driver.Backend, store storage.Client, bucket string, recorder *audit.Recorder, logger *zap.Logger, stop func()) *Service {
	return &Service{
		backend: backend,
		store:   store,
		bucket:  bucket,
		audit:   recorder,
		logger:  logger,
		stop:    stop,
	}
}

// Ready reports whether the backend can accept a new session.
func (s *Service) Ready(ctx context.Context) bool {
	return s.backend.Ready(ctx)
}

// CreateSession allocates a backend session. An empty id means the backend
// refused the session.
func (s *Service) CreateSession(ctx context.Context) (string, error) {
	id, err := s.backend.CreateSession(ctx)
	if err != nil || id == "" {
		return "", err
	}
	s.audit.Record(ctx, id, audit.EventCreated, "")
	return id, nil
}

// Navigate points the session at a URL.
func (s *Service) Navigate(ctx context.Context, sessionID, url string) error {
	if err := s.backend.NavigateTo(ctx, sessionID, url); err != nil {
		return err
	}
	s.audit.Record(ctx, sessionID, audit.EventNavigated, url)
	return nil
}

// Screenshot captures the session's display and, when an archive is
// configured, uploads the PNG alongside the response.
func (s *Service) Screenshot(ctx context.Context, sessionID string) ([]byte, error) {
	png, err := s.backend.Screenshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.archive(ctx, sessionID, png)
	s.audit.Record(ctx, sessionID, audit.EventScreenshot, "")
	return png, nil
}

// Title returns the session's current page title.
func (s *Service) Title(ctx context.Context, sessionID string) (string, error) {
	return s.backend.Title(ctx, sessionID)
}

// CloseSession tears the session down. Like the backend contract it never
// fails; redundant cleanup calls are no-ops.
func (s *Service) CloseSession(ctx context.Context, sessionID string) {
	s.backend.CloseSession(ctx, sessionID)
	s.audit.Record(ctx, sessionID, audit.EventClosed, "")
}

// Shutdown runs the backend shutdown hook and stops the listener. Hook
// failures are logged; the shutdown proceeds regardless.
func (s *Service) Shutdown(ctx context.Context) {
	if err := s.backend.Shutdown(ctx); err != nil {
		s.logger.Error("Backend shutdown failed", zap.Error(err))
	}
	s.audit.Record(ctx, "", audit.EventShutdown, "")
	if s.stop != nil {
		s.stop()
	}
}

// EnsureBucket verifies the archive bucket exists, creating it if needed.
// Called once at startup when archiving is enabled.
func (s *Service) EnsureBucket(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	exists, err := s.store.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.store.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

// archive uploads a captured screenshot to the archive bucket. Failures are
// logged and never surfaced: the client already has its screenshot.
func (s *Service) archive(ctx context.Context, sessionID string, png []byte) {
	if s.store == nil {
		return
	}

	name := fmt.Sprintf("screenshots/%s/%d.png", sessionID, time.Now().UnixNano())
	_, err := s.store.PutObject(ctx, s.bucket, name, bytes.NewReader(png), int64(len(png)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		s.logger.Warn("Failed to archive screenshot",
			zap.String("session_id", sessionID),
			zap.String("object", name),
			zap.Error(err))
		return
	}
	s.logger.Debug("Screenshot archived",
		zap.String("session_id", sessionID),
		zap.String("object", name))
}
