package logutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigmasim/pkg/logutils"
)

func TestShortCallerFormatter(t *testing.T) {
	tests := []struct {
		file string
		line int
		want string
	}{
		{"/home/user/enigmasim/pkg/enigma/machine/machine.go", 52, "machine/machine.go:52"},
		{"machine/machine.go", 7, "machine/machine.go:7"},
		{"enigma/machine/machine.go", 8, "machine/machine.go:8"},
		{"./main.go", 3, "./main.go:3"},
		{"/main.go", 1, "/main.go:1"},
		{"main.go", 10, "main.go:10"},
		{"", 0, ":0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, logutils.ShortCallerFormatter(0, tt.file, tt.line))
		})
	}
}
