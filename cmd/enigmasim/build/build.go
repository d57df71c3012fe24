package build

// Overridden at link time with -ldflags "-X ...".
var (
	Version = "development"
	Commit  = "unknown"
	Time    = "unknown"
)
