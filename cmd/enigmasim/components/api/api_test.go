package api_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/components/api"
	"github.com/sergeii/enigmasim/cmd/enigmasim/persistence"
	"github.com/sergeii/enigmasim/internal/settings"
	"github.com/sergeii/enigmasim/internal/testutils/testapp"
)

func TestAPIComponent_ServesRequests(t *testing.T) {
	ctx := context.TODO()
	gin.SetMode(gin.ReleaseMode)

	var component *api.Component

	app := fx.New(
		fx.Provide(testapp.NoLogging),
		fx.Supply(settings.Default()),
		fx.Supply(testapp.ProvidePersistence(t)),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		api.Module,
		fx.NopLogger,
		fx.Populate(&component),
	)
	require.NoError(t, app.Start(ctx))
	defer func() {
		_ = app.Stop(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s", component.Addr())

	resp, err := http.Get(baseURL + "/status") // nolint: noctx
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = http.Post( // nolint: noctx
		baseURL+"/api/encipher",
		"application/json",
		bytes.NewBufferString(`{"text":"AAAAA","key":{"reflector":"B","rotors":["I","II","III"]}}`),
	)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `"text":"BDZGO"`)

	resp, err = http.Get(baseURL + "/docs/doc.json") // nolint: noctx
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestAPIComponent_StopsGracefully(t *testing.T) {
	ctx := context.TODO()

	var component *api.Component

	app := fx.New(
		fx.Provide(testapp.NoLogging),
		fx.Supply(settings.Default()),
		fx.Supply(persistence.Config{Storage: persistence.StorageMemory}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		api.Module,
		fx.NopLogger,
		fx.Populate(&component),
	)
	require.NoError(t, app.Start(ctx))
	addr := component.Addr().String()
	require.NoError(t, app.Stop(ctx))

	_, err := http.Get(fmt.Sprintf("http://%s/status", addr)) // nolint: noctx
	assert.Error(t, err)
}
