package webdriver

import (
	"context"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/audit"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/driver"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the WebDriver protocol feature. store and db are
// optional; stop is invoked after a /shutdown command to stop the listener.
func NewFeature(backend driver.Backend, store storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, stop func()) *Feature {
	svc := NewService(backend, store, bucket, audit.NewRecorder(db, logger), logger, stop)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "webdriver"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Prepare initializes the feature's persistence: the audit table migration
// and the screenshot archive bucket. Call it once before serving traffic.
func (f *Feature) Prepare(ctx context.Context) error {
	if err := f.service.audit.Migrate(); err != nil {
		return err
	}
	return f.service.EnsureBucket(ctx)
}

// Load registers the feature's routes. The protocol catch-all is registered
// last, so this feature must be the final one loaded.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
