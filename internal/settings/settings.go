package settings

const (
	DefaultGroupSize     = 5
	DefaultMaxTextLength = 10000
)

type Settings struct {
	// GroupSize splits enciphered text into groups of letters, 0 disables grouping
	GroupSize int
	// MaxTextLength limits the number of letters accepted in a single request, 0 means no limit
	MaxTextLength int
}

func Default() Settings {
	return Settings{
		GroupSize:     DefaultGroupSize,
		MaxTextLength: DefaultMaxTextLength,
	}
}
