package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commander"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/catalog"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/cipher"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/keysheets"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/profiles"
	"github.com/sergeii/enigmasim/cmd/enigmasim/components/api"
	"github.com/sergeii/enigmasim/cmd/enigmasim/components/exporter"
	"github.com/sergeii/enigmasim/cmd/enigmasim/components/observer"
	"github.com/sergeii/enigmasim/cmd/enigmasim/logging"
	"github.com/sergeii/enigmasim/cmd/enigmasim/persistence"
	"github.com/sergeii/enigmasim/internal/settings"
)

//	@title			Enigma Simulator API
//	@version		1.0
//	@description	Encipher text on simulated Enigma I, M3 and M4 machines and manage stored key settings.
//	@BasePath		/api

func main() {
	cli := commander.CLI{}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&observer.CLI{},
	}
	cli.Plugins = kong.Plugins{
		&cipher.CLI{},
		&catalog.CLI{},
		&keysheets.CLI{},
		&profiles.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("enigmasim"),
		kong.Description("Enigma M3/M4 simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			Storage:  cli.Globals.Storage,
			RedisURL: cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			GroupSize:     cli.Globals.GroupSize,
			MaxTextLength: cli.Globals.MaxTextLength,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
