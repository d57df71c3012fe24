package encipher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/metrics"
	"github.com/sergeii/enigmasim/internal/settings"
	"github.com/sergeii/enigmasim/pkg/textcodec"
)

var (
	ErrEmptyText             = errors.New("text contains no letters")
	ErrTextTooLong           = errors.New("text is too long")
	ErrNoKey                 = errors.New("either a key or a profile is required")
	ErrInvalidKey            = errors.New("invalid key")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrUnableToObtainProfile = errors.New("unable to obtain profile from repository")
)

const (
	SourceAPI = "api"
	SourceCLI = "cli"
)

type Request struct {
	Text string
	// Key is used unless Profile is set
	Key     keysetting.KeySetting
	Profile string
	// Positions overrides the starting positions of the key, i.e. the message key
	Positions string
	// Group splits the output into groups of letters, 0 disables grouping
	Group  int
	Source string
}

type Result struct {
	Text    string
	Letters int
	Dropped int
	Key     keysetting.KeySetting
	// Window shows the rotor positions after the last letter
	Window string
}

type UseCase struct {
	profileRepo repositories.ProfileRepository
	metrics     *metrics.Collector
	clock       clockwork.Clock
	settings    settings.Settings
	logger      *zerolog.Logger
}

func New(
	profileRepo repositories.ProfileRepository,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	settings settings.Settings,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		profileRepo: profileRepo,
		metrics:     metrics,
		clock:       clock,
		settings:    settings,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Result, error) {
	started := uc.clock.Now()

	letters, dropped := textcodec.Sanitize(req.Text)
	if len(letters) == 0 {
		return Result{}, uc.reject("empty_text", ErrEmptyText)
	}
	if uc.settings.MaxTextLength > 0 && len(letters) > uc.settings.MaxTextLength {
		return Result{}, uc.reject(
			"text_too_long",
			fmt.Errorf("%w: %d letters, at most %d allowed", ErrTextTooLong, len(letters), uc.settings.MaxTextLength),
		)
	}

	key, err := uc.resolveKey(ctx, req)
	if err != nil {
		return Result{}, err
	}

	m, err := key.Build()
	if err != nil {
		return Result{}, uc.reject("invalid_key", fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}

	out, err := m.EncipherText(letters)
	if err != nil {
		return Result{}, uc.reject("invalid_key", fmt.Errorf("%w: %w", ErrInvalidKey, err))
	}

	result := Result{
		Text:    textcodec.Render(out, req.Group),
		Letters: len(out),
		Dropped: dropped,
		Key:     key,
		Window:  m.Window(),
	}

	uc.record(req, result, started)

	return result, nil
}

func (uc UseCase) resolveKey(ctx context.Context, req Request) (keysetting.KeySetting, error) {
	var key keysetting.KeySetting
	switch {
	case req.Profile != "":
		prof, err := uc.profileRepo.Get(ctx, profile.Slugify(req.Profile))
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return keysetting.Blank, uc.reject("profile_not_found", ErrProfileNotFound)
			}
			uc.logger.Error().Err(err).Str("profile", req.Profile).Msg("Unable to obtain profile")
			return keysetting.Blank, uc.reject("profile_unavailable", ErrUnableToObtainProfile)
		}
		key = prof.Key
	case !req.Key.IsBlank():
		key = req.Key
	default:
		return keysetting.Blank, uc.reject("no_key", ErrNoKey)
	}

	if req.Positions != "" {
		key = key.WithPositions(req.Positions)
	}

	return key, nil
}

func (uc UseCase) reject(reason string, err error) error {
	uc.metrics.EncipherErrors.WithLabelValues(reason).Inc()
	return err
}

func (uc UseCase) record(req Request, result Result, started time.Time) {
	source := req.Source
	if source == "" {
		source = SourceAPI
	}
	elapsed := uc.clock.Since(started)

	uc.metrics.EncipherRequests.WithLabelValues(source).Inc()
	uc.metrics.EncipherLetters.Add(float64(result.Letters))
	uc.metrics.EncipherDropped.Add(float64(result.Dropped))
	uc.metrics.EncipherDurations.Observe(elapsed.Seconds())

	uc.logger.Debug().
		Str("source", source).Stringer("key", result.Key).
		Int("letters", result.Letters).Int("dropped", result.Dropped).
		Str("window", result.Window).Dur("elapsed", elapsed).
		Msg("Enciphered text")
}
