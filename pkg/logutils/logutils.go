package logutils

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter trims the caller down to the file name and its parent directory,
// e.g. machine/machine.go:52
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	short := file
	if idx := strings.LastIndexByte(file, '/'); idx > 0 {
		// a path with a single separator is already short enough
		if parent := strings.LastIndexByte(file[:idx], '/'); parent >= 0 {
			short = file[parent+1:]
		}
	}
	return short + ":" + strconv.Itoa(line)
}
