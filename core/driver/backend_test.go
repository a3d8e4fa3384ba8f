package driver_test

import (
	"context"
	"testing"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/driver"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnimplementedBackend_Defaults(t *testing.T) {
	ctx := context.Background()
	var b driver.Backend = driver.UnimplementedBackend{}

	assert.False(t, b.Ready(ctx))

	id, err := b.CreateSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	assert.ErrorIs(t, b.NavigateTo(ctx, "abc", "http://example.com"), protocol.ErrInvalidSessionID)

	_, err = b.Screenshot(ctx, "abc")
	assert.ErrorIs(t, err, protocol.ErrUnableToCaptureScreen)

	_, err = b.Title(ctx, "abc")
	assert.ErrorIs(t, err, protocol.ErrInvalidSessionID)

	// Must not panic and must not fail.
	b.CloseSession(ctx, "abc")
	assert.NoError(t, b.Shutdown(ctx))
}
