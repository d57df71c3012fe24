package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/components/api"
	"github.com/sergeii/enigmasim/cmd/enigmasim/persistence"
	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/metrics"
	"github.com/sergeii/enigmasim/internal/settings"
	"github.com/sergeii/enigmasim/internal/testutils/testapp"
)

type TestServerDeps struct {
	Profiles  repositories.ProfileRepository
	Collector *metrics.Collector
}

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Supply(api.Config{
			HTTPListenAddr: "localhost:0",
		}),
		fx.Supply(settings.Default()),
		fx.Supply(persistence.Config{Storage: persistence.StorageMemory}),
		fx.Provide(persistence.Provide),
		fx.Provide(testapp.NoLogging),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop() // nolint: errcheck
		defer ts.Close()
	}
}

func PrepareTestServerWithDeps(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, TestServerDeps, func()) {
	var deps TestServerDeps
	extra = append(
		extra,
		fx.Populate(&deps.Profiles, &deps.Collector),
	)
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, deps, cleanup
}
