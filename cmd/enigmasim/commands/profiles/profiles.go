package profiles

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/container"
)

type listCmd struct{}

func (c *listCmd) Run(kctx *kong.Context, builder *application.Builder) error {
	ctx := context.Background()

	var cont container.Container
	app, err := builder.Start(ctx, &cont)
	if err != nil {
		return err
	}
	defer app.Stop(ctx) // nolint: errcheck

	items, err := cont.ListProfiles.Execute(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(kctx.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tKEY\tVERSION\tUPDATED")
	for _, prof := range items {
		fmt.Fprintf(
			w, "%s\t%s\t%s\t%d\t%s\n",
			prof.Slug, prof.Name, prof.Key, prof.Version, prof.UpdatedAt.Format(time.RFC3339),
		)
	}
	return w.Flush()
}

type showCmd struct {
	Name string `arg:"" help:"Profile name or slug"`
}

func (c *showCmd) Run(kctx *kong.Context, builder *application.Builder) error {
	ctx := context.Background()

	var cont container.Container
	app, err := builder.Start(ctx, &cont)
	if err != nil {
		return err
	}
	defer app.Stop(ctx) // nolint: errcheck

	prof, err := cont.GetProfile.Execute(ctx, c.Name)
	if err != nil {
		return err
	}

	fmt.Fprintln(kctx.Stdout, prof.Key)
	return nil
}

type removeCmd struct {
	Name string `arg:"" help:"Profile name or slug"`
}

func (c *removeCmd) Run(kctx *kong.Context, builder *application.Builder) error {
	ctx := context.Background()

	var cont container.Container
	app, err := builder.Start(ctx, &cont)
	if err != nil {
		return err
	}
	defer app.Stop(ctx) // nolint: errcheck

	if err := cont.RemoveProfile.Execute(ctx, c.Name); err != nil {
		return err
	}

	fmt.Fprintf(kctx.Stdout, "removed %s\n", c.Name)
	return nil
}

type CLI struct {
	Profile struct {
		List   listCmd   `cmd:"" help:"List stored profiles"`
		Show   showCmd   `cmd:"" help:"Print the key of a stored profile"`
		Remove removeCmd `cmd:"" help:"Remove a stored profile"`
	} `cmd:"" help:"Manage stored key profiles"`
}
