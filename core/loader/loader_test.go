package loader_test

import (
	"testing"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAll_SkipsDisabledFeatures(t *testing.T) {
	app := fiber.New()
	mgr := loader.NewManager()

	enabled := &fakeFeature{name: "enabled", enabled: true}
	disabled := &fakeFeature{name: "disabled", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	require.NoError(t, mgr.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestLoadAll_StopsOnFirstFailure(t *testing.T) {
	app := fiber.New()
	mgr := loader.NewManager()

	failing := &fakeFeature{name: "failing", enabled: true, loadErr: assert.AnError}
	after := &fakeFeature{name: "after", enabled: true}
	mgr.Register(failing)
	mgr.Register(after)

	err := mgr.LoadAll(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.False(t, after.loaded)
}
