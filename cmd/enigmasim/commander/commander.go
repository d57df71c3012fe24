package commander

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/enigmasim/cmd/enigmasim/build"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error"       help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,stderr,json" help:"Specifies the format for log output"`

	Storage  string `default:"memory"                 enum:"memory,redis" help:"Selects where key profiles are stored"`
	RedisURL string `default:"redis://localhost:6379" help:"Defines the Redis URL connection"`

	ExporterHTTPListenAddress   string        `default:":9000" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll

	GroupSize     int `default:"5"     help:"Splits enciphered text into groups of this many letters, 0 disables grouping"` // nolint:lll
	MaxTextLength int `default:"10000" help:"Limits the number of letters enciphered in one go, 0 removes the limit"`       // nolint:lll
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd     `cmd:"" help:"Start a long running component"`

	kong.Plugins
}
