package application

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/cmd/enigmasim/components/exporter"
	"github.com/sergeii/enigmasim/cmd/enigmasim/container"
	"github.com/sergeii/enigmasim/cmd/enigmasim/logging"
	"github.com/sergeii/enigmasim/internal/metrics"
	"github.com/sergeii/enigmasim/internal/validation"
)

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

// Start builds and starts the app for commands that run to completion.
// The targets are populated from the container and the caller is responsible for stopping the app.
func (b *Builder) Start(ctx context.Context, targets ...any) (*fx.App, error) {
	app := b.Add(fx.Populate(targets...)).Build()
	if err := app.Start(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Invoke(validation.Register),
	fx.Provide(metrics.New),
	container.Module,
)
