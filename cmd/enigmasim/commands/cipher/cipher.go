package cipher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/profile"

	"github.com/sergeii/enigmasim/cmd/enigmasim/application"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commander"
	"github.com/sergeii/enigmasim/cmd/enigmasim/container"
	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/internal/core/usecases/encipher"
	"github.com/sergeii/enigmasim/internal/keysheet"
)

var (
	ErrNoInput          = errors.New("nothing to encipher: pass the text as arguments, with --file or through standard input")
	ErrConflictingKeys  = errors.New("choose one key source: --key, key flags, --profile or --key-sheet with --profile")
	ErrProfileRequired  = errors.New("--key-sheet requires --profile")
	ErrConflictingInput = errors.New("text arguments cannot be combined with --file")
)

type command struct {
	Text   []string `arg:""   help:"Text to encipher, read from --file or standard input when omitted" optional:""`
	File   string   `help:"Reads the text from a file"                        short:"f" type:"existingfile"`
	Output string   `help:"Writes the result to a file instead of standard output" short:"o" type:"path"`

	Key       string   `help:"Sets the key in compact form, e.g. \"B I-II-III AAA ADU AZ BY\"" short:"k"`
	Reflector string   `help:"Sets the reflector (A, B, C, B-Thin, C-Thin)"`
	Rotors    []string `help:"Sets the rotors left to right, e.g. I,II,III or Beta,II,IV,I"`
	Rings     string   `help:"Sets the ring settings as letters (AAA) or numbers (\"1 1 1\")"`
	Plugs     []string `help:"Sets the plugboard pairs, e.g. AZ,BY"`
	KeySheet  string   `help:"Reads the key named by --profile from a YAML key sheet" type:"existingfile"`
	Profile   string   `help:"Uses a named key from the key sheet or from the profile storage" short:"p"`
	Positions string   `help:"Sets the message key, the letters in the window before the first key press"`

	Group      int    `default:"-1" help:"Splits the output into groups of this many letters, 0 disables grouping. Defaults to --group-size"` // nolint:lll
	Summary    bool   `help:"Prints the key, the letter count and the final window after the text"`
	CPUProfile string `help:"Writes a CPU profile into the directory" name:"cpu-profile" type:"path"`
}

func (c *command) Run(
	kctx *kong.Context,
	globals *commander.Globals,
	builder *application.Builder,
	stdin io.Reader,
) error {
	if c.CPUProfile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(c.CPUProfile),
			profile.Quiet,
			profile.NoShutdownHook,
		).Stop()
	}

	text, err := c.readText(stdin)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var cont container.Container
	var validate *validator.Validate
	app, err := builder.Start(ctx, &cont, &validate)
	if err != nil {
		return err
	}
	defer app.Stop(ctx) // nolint: errcheck

	req, err := c.makeRequest(validate)
	if err != nil {
		return err
	}
	req.Text = text
	req.Group = globals.GroupSize
	if c.Group >= 0 {
		req.Group = c.Group
	}

	result, err := cont.Encipher.Execute(ctx, req)
	if err != nil {
		return err
	}

	return c.writeResult(kctx.Stdout, result)
}

func (c *command) readText(stdin io.Reader) (string, error) {
	if len(c.Text) > 0 {
		if c.File != "" {
			return "", ErrConflictingInput
		}
		return strings.Join(c.Text, " "), nil
	}

	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", c.File, err)
		}
		return string(data), nil
	}

	if stdin == nil {
		return "", ErrNoInput
	}
	// an interactive terminal is not treated as input
	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", ErrNoInput
		}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoInput
	}
	return string(data), nil
}

func (c *command) makeRequest(validate *validator.Validate) (encipher.Request, error) {
	req := encipher.Request{
		Positions: c.Positions,
		Source:    encipher.SourceCLI,
	}

	hasKeyFlags := c.Reflector != "" || len(c.Rotors) > 0 || c.Rings != "" || len(c.Plugs) > 0
	hasInlineKey := c.Key != "" || hasKeyFlags

	switch {
	case c.Key != "" && hasKeyFlags:
		return encipher.Request{}, ErrConflictingKeys
	// with a key sheet --profile names an entry on the sheet
	case hasInlineKey && (c.Profile != "" || c.KeySheet != ""):
		return encipher.Request{}, ErrConflictingKeys
	case c.KeySheet != "":
		if c.Profile == "" {
			return encipher.Request{}, ErrProfileRequired
		}
		sheet, err := keysheet.LoadFile(c.KeySheet, validate)
		if err != nil {
			return encipher.Request{}, err
		}
		entry, err := sheet.Find(c.Profile)
		if err != nil {
			return encipher.Request{}, err
		}
		req.Key = entry.Key
	case c.Key != "":
		key, err := keysetting.Parse(c.Key)
		if err != nil {
			return encipher.Request{}, err
		}
		req.Key = key
	case hasKeyFlags:
		req.Key = keysetting.KeySetting{
			Reflector: c.Reflector,
			Rotors:    c.Rotors,
			Rings:     c.Rings,
			Plugs:     c.Plugs,
		}
	default:
		// stored profile, resolved by the use case
		req.Profile = c.Profile
	}

	return req, nil
}

func (c *command) writeResult(stdout io.Writer, result encipher.Result) error {
	var b strings.Builder
	b.WriteString(result.Text)
	b.WriteByte('\n')
	if c.Summary {
		fmt.Fprintf(&b, "Key: %s\n", result.Key)
		fmt.Fprintf(&b, "Letters: %d (dropped %d)\n", result.Letters, result.Dropped)
		fmt.Fprintf(&b, "Window: %s\n", result.Window)
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(b.String()), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}
		return nil
	}

	_, err := io.WriteString(stdout, b.String())
	return err
}

type CLI struct {
	Encipher command `cmd:"" help:"Encipher or decipher text"`
}
