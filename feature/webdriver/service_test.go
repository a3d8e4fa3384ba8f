package webdriver

import (
	"context"
	"testing"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/audit"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/driver"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// captureBackend supports screenshots and nothing else beyond the defaults.
type captureBackend struct {
	driver.UnimplementedBackend
	png []byte
}

func (b *captureBackend) Screenshot(ctx context.Context, sessionID string) ([]byte, error) {
	return b.png, nil
}

func newTestService(backend driver.Backend, store *mocks.Client) *Service {
	logger := zap.NewNop()
	if store != nil {
		return NewService(backend, store, "screenshots", audit.NewRecorder(nil, logger), logger, func() {})
	}
	return NewService(backend, nil, "", audit.NewRecorder(nil, logger), logger, func() {})
}

func TestScreenshot_ArchivesToStorage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "screenshots", mock.Anything, mock.Anything, int64(len(png)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(&captureBackend{png: png}, store)

	got, err := svc.Screenshot(context.Background(), "ab12cd34ab12cd34ab12cd34ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, png, got)
	store.AssertExpectations(t)
}

func TestScreenshot_ArchiveFailureIsSwallowed(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "screenshots", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	svc := newTestService(&captureBackend{png: png}, store)

	got, err := svc.Screenshot(context.Background(), "ab12cd34ab12cd34ab12cd34ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestScreenshot_NoArchiveConfigured(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	svc := newTestService(&captureBackend{png: png}, nil)

	got, err := svc.Screenshot(context.Background(), "ab12cd34ab12cd34ab12cd34ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestEnsureBucket_CreatesMissingBucket(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "screenshots").Return(false, nil)
	store.On("MakeBucket", mock.Anything, "screenshots", mock.Anything).Return(nil)

	svc := newTestService(driver.UnimplementedBackend{}, store)

	require.NoError(t, svc.EnsureBucket(context.Background()))
	store.AssertExpectations(t)
}

func TestEnsureBucket_ExistingBucket(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "screenshots").Return(true, nil)

	svc := newTestService(driver.UnimplementedBackend{}, store)

	require.NoError(t, svc.EnsureBucket(context.Background()))
	store.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureBucket_CheckFailure(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "screenshots").Return(false, assert.AnError)

	svc := newTestService(driver.UnimplementedBackend{}, store)

	assert.Error(t, svc.EnsureBucket(context.Background()))
}

func TestCreateSession_RefusedBackend(t *testing.T) {
	svc := newTestService(driver.UnimplementedBackend{}, nil)

	id, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)
}
