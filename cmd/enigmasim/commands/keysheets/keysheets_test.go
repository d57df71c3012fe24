package keysheets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/keysheets"
	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/profiles"
	"github.com/sergeii/enigmasim/internal/keysheet"
	"github.com/sergeii/enigmasim/internal/testutils/testapp"
	"github.com/sergeii/enigmasim/internal/validation"
)

const sheet = `
profiles:
  - name: Heer 1930
    key:
      reflector: A
      rotors: [II, I, III]
      rings: 24 13 22
      positions: ABL
      plugs: [AM, FI, NV, PS, TU, WZ]
  - name: U-534
    key: B-Thin Beta-II-IV-I AAAV VJNA AT BL DF GJ HM NW OP QY RZ VX
`

func writeSheet(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKeysheet_Check(t *testing.T) {
	out, err := testapp.RunCommand(
		t, kong.Plugins{&keysheets.CLI{}}, "",
		"keysheet", "check", writeSheet(t, sheet),
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"NAME       KEY\n"+
			"Heer 1930  A II-I-III XMV ABL AM FI NV PS TU WZ\n"+
			"U-534      B-Thin Beta-II-IV-I AAAV VJNA AT BL DF GJ HM NW OP QY RZ VX\n",
		out,
	)
}

func TestKeysheet_Check_Invalid(t *testing.T) {
	invalid := `
profiles:
  - name: Broken
    key: B-Thin I-II-III
`
	_, err := testapp.RunCommand(
		t, kong.Plugins{&keysheets.CLI{}}, "",
		"keysheet", "check", writeSheet(t, invalid),
	)
	assert.ErrorIs(t, err, keysheet.ErrInvalidSheet)
}

func TestKeysheet_Import(t *testing.T) {
	storage := testapp.ProvidePersistence(t)
	globals := []string{"--storage=redis", "--redis-url=" + storage.RedisURL}
	plugins := kong.Plugins{&keysheets.CLI{}, &profiles.CLI{}}
	path := writeSheet(t, sheet)

	out, err := testapp.RunCommand(t, plugins, "", append(globals, "keysheet", "import", path)...)
	require.NoError(t, err)
	assert.Equal(t, "saved heer-1930 (version 1)\nsaved u-534 (version 1)\n", out)

	// existing profiles are left alone unless asked otherwise
	out, err = testapp.RunCommand(t, plugins, "", append(globals, "keysheet", "import", path)...)
	require.NoError(t, err)
	assert.Equal(t, "skipped Heer 1930: already exists\nskipped U-534: already exists\n", out)

	out, err = testapp.RunCommand(t, plugins, "", append(globals, "keysheet", "import", "--overwrite", path)...)
	require.NoError(t, err)
	assert.Equal(t, "saved heer-1930 (version 2)\nsaved u-534 (version 2)\n", out)

	out, err = testapp.RunCommand(t, plugins, "", append(globals, "profile", "show", "U-534")...)
	require.NoError(t, err)
	assert.Equal(t, "B-Thin Beta-II-IV-I AAAV VJNA AT BL DF GJ HM NW OP QY RZ VX\n", out)
}

func TestKeysheet_Import_InvalidSheet(t *testing.T) {
	storage := testapp.ProvidePersistence(t)
	globals := []string{"--storage=redis", "--redis-url=" + storage.RedisURL}
	plugins := kong.Plugins{&keysheets.CLI{}, &profiles.CLI{}}

	invalid := sheet + `
  - name: heer-1930
    key: B I-II-III
`
	_, err := testapp.RunCommand(t, plugins, "", append(globals, "keysheet", "import", writeSheet(t, invalid))...)
	assert.ErrorIs(t, err, keysheet.ErrInvalidSheet)

	// nothing is imported from a sheet that fails validation
	out, err := testapp.RunCommand(t, plugins, "", append(globals, "profile", "list")...)
	require.NoError(t, err)
	assert.Equal(t, "SLUG  NAME  KEY  VERSION  UPDATED\n", out)
}

func TestKeysheet_Generate(t *testing.T) {
	out, err := testapp.RunCommand(
		t, kong.Plugins{&keysheets.CLI{}}, "",
		"keysheet", "generate", "--days=7", "--model=m4", "--plugs=10", "--seed=1945",
	)
	require.NoError(t, err)

	generated, err := keysheet.Load(strings.NewReader(out), validation.MustNew())
	require.NoError(t, err)
	require.Len(t, generated.Profiles, 7)
	assert.Equal(t, "Day 01", generated.Profiles[0].Name)
	for _, entry := range generated.Profiles {
		assert.Len(t, entry.Key.Rotors, 4)
		assert.Len(t, entry.Key.Plugs, 10)
	}

	// the same seed draws the same sheet
	again, err := testapp.RunCommand(
		t, kong.Plugins{&keysheets.CLI{}}, "",
		"keysheet", "generate", "--days=7", "--model=m4", "--plugs=10", "--seed=1945",
	)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestKeysheet_Generate_ToFileThenImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.yaml")
	out, err := testapp.RunCommand(
		t, kong.Plugins{&keysheets.CLI{}}, "",
		"keysheet", "generate", "--days=3", "--prefix=Luftwaffe", "-o", path,
	)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = testapp.RunCommand(
		t, kong.Plugins{&keysheets.CLI{}}, "",
		"--storage=memory", "keysheet", "import", path,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"saved luftwaffe-01 (version 1)\n"+
			"saved luftwaffe-02 (version 1)\n"+
			"saved luftwaffe-03 (version 1)\n",
		out,
	)
}

func TestKeysheet_Generate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many days", []string{"--days=40"}},
		{"too many plugs", []string{"--plugs=14"}},
		{"unknown model", []string{"--model=k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"keysheet", "generate"}, tt.args...)
			_, err := testapp.RunCommand(t, kong.Plugins{&keysheets.CLI{}}, "", args...)
			assert.Error(t, err)
		})
	}
}
