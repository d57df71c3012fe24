package testapp

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commander"
	"github.com/sergeii/enigmasim/cmd/enigmasim/persistence"
	"github.com/sergeii/enigmasim/internal/settings"
)

// RunCommand parses args against the CLI extended with the command plugins
// and runs the selected command the way main does, collecting its standard output.
func RunCommand(tb testing.TB, plugins kong.Plugins, stdin string, args ...string) (string, error) {
	tb.Helper()

	cli := commander.CLI{}
	cli.Plugins = plugins

	var stdout bytes.Buffer
	parser, err := kong.New(
		&cli,
		kong.Name("enigmasim"),
		kong.Writers(&stdout, io.Discard),
		kong.Exit(func(int) {}),
		kong.BindTo(strings.NewReader(stdin), (*io.Reader)(nil)),
	)
	if err != nil {
		tb.Fatalf("unable to build command line parser: %v", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			Storage:  cli.Storage,
			RedisURL: cli.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(settings.Settings{
			GroupSize:     cli.GroupSize,
			MaxTextLength: cli.MaxTextLength,
		}),
		fx.Provide(NoLogging),
		fx.NopLogger,
	)

	err = kctx.Run(&cli.Globals, builder)
	return stdout.String(), err
}
