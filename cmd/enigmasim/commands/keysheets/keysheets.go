package keysheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/container"
	"github.com/sergeii/enigmasim/internal/core/usecases/saveprofile"
	"github.com/sergeii/enigmasim/internal/keysheet"
	"github.com/sergeii/enigmasim/internal/validation"
	"github.com/sergeii/enigmasim/pkg/random"
)

var ErrImportIncomplete = errors.New("some key sheet entries were not imported")

type checkCmd struct {
	File string `arg:"" help:"Path to the key sheet" type:"existingfile"`
}

func (c *checkCmd) Run(kctx *kong.Context) error {
	// the sheet is checked without starting the application
	validate, err := validation.New()
	if err != nil {
		return err
	}
	sheet, err := keysheet.LoadFile(c.File, validate)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(kctx.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKEY")
	for _, entry := range sheet.Profiles {
		fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Key)
	}
	return w.Flush()
}

type importCmd struct {
	File      string `arg:"" help:"Path to the key sheet" type:"existingfile"`
	Overwrite bool   `help:"Replaces the keys of profiles that already exist"`
}

func (c *importCmd) Run(kctx *kong.Context, builder *application.Builder) error {
	ctx := context.Background()

	var cont container.Container
	var validate *validator.Validate
	var logger *zerolog.Logger
	app, err := builder.Start(ctx, &cont, &validate, &logger)
	if err != nil {
		return err
	}
	defer app.Stop(ctx) // nolint: errcheck

	sheet, err := keysheet.LoadFile(c.File, validate)
	if err != nil {
		return err
	}

	failed := 0
	for _, entry := range sheet.Profiles {
		req := saveprofile.Request{
			Name:      entry.Name,
			Key:       entry.Key,
			Overwrite: c.Overwrite,
		}
		prof, err := cont.SaveProfile.Execute(ctx, req)
		switch {
		case err == nil:
			fmt.Fprintf(kctx.Stdout, "saved %s (version %d)\n", prof.Slug, prof.Version)
		case errors.Is(err, saveprofile.ErrProfileExists):
			fmt.Fprintf(kctx.Stdout, "skipped %s: already exists\n", entry.Name)
		default:
			logger.Error().Err(err).Str("name", entry.Name).Msg("Failed to import key sheet entry")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d failed", ErrImportIncomplete, failed, len(sheet.Profiles))
	}
	return nil
}

type generateCmd struct {
	Days   int    `default:"31" help:"Number of daily keys on the sheet"`
	Model  string `default:"m3" enum:"m3,m4" help:"Machine the keys are drawn for (${enum})"`
	Plugs  int    `default:"10" help:"Number of plug pairs per key"`
	Prefix string `default:"Day" help:"Entry names are the prefix followed by the day"`
	Seed   uint64 `help:"Seed for a reproducible sheet, random when omitted"`
	Output string `short:"o" help:"Write the sheet to this file instead of stdout" type:"path"`
}

func (c *generateCmd) Run(kctx *kong.Context) error {
	src := random.New()
	if c.Seed != 0 {
		src = random.NewSeeded(c.Seed)
	}
	sheet, err := keysheet.Generate(src, keysheet.GenerateOpts{
		Days:   c.Days,
		Model:  c.Model,
		Plugs:  c.Plugs,
		Prefix: c.Prefix,
	})
	if err != nil {
		return err
	}

	var out io.Writer = kctx.Stdout
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close() // nolint: errcheck
		out = f
	}
	return keysheet.Write(out, sheet)
}

type CLI struct {
	Keysheet struct {
		Check    checkCmd    `cmd:"" help:"Validate a key sheet and list its entries"`
		Import   importCmd   `cmd:"" help:"Store the entries of a key sheet as profiles"`
		Generate generateCmd `cmd:"" help:"Draw a random key sheet"`
	} `cmd:"" help:"Work with YAML key sheets"`
}
