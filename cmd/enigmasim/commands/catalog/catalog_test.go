package catalog_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigmasim/cmd/enigmasim/commands/catalog"
	"github.com/sergeii/enigmasim/internal/testutils/testapp"
)

func TestCatalog_All(t *testing.T) {
	out, err := testapp.RunCommand(t, kong.Plugins{&catalog.CLI{}}, "", "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header and 10 rotors, a blank line, header and 5 reflectors
	require.Len(t, lines, 18)

	assert.Equal(t, []string{"ROTOR", "WIRING", "NOTCHES", "THIN"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q", "no"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM", "no"}, strings.Fields(lines[8]))
	assert.Equal(t, []string{"Gamma", "FSOKANUERHMBTIYCWLQPZXVGJD", "-", "yes"}, strings.Fields(lines[10]))
	assert.Empty(t, strings.TrimSpace(lines[11]))
	assert.Equal(t, []string{"REFLECTOR", "WIRING", "THIN"}, strings.Fields(lines[12]))
	assert.Equal(t, []string{"B-Thin", "ENKQAUYWJICOPBLMDXZVFTHRGS", "yes"}, strings.Fields(lines[16]))
}

func TestCatalog_Parts(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		wantLines int
		wantFirst string
	}{
		{"rotors only", "--rotors", 11, "ROTOR"},
		{"reflectors only", "--reflectors", 6, "REFLECTOR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := testapp.RunCommand(t, kong.Plugins{&catalog.CLI{}}, "", "catalog", tt.flag)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			assert.Len(t, lines, tt.wantLines)
			assert.Equal(t, tt.wantFirst, strings.Fields(lines[0])[0])
		})
	}
}

func TestCatalog_ExclusiveFlags(t *testing.T) {
	_, err := testapp.RunCommand(t, kong.Plugins{&catalog.CLI{}}, "", "catalog", "--rotors", "--reflectors")
	assert.Error(t, err)
}
