package getprofile

import (
	"context"
	"errors"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
)

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrUnableToObtainProfile = errors.New("unable to obtain profile from repository")
)

type UseCase struct {
	profileRepo repositories.ProfileRepository
}

func New(profileRepo repositories.ProfileRepository) UseCase {
	return UseCase{
		profileRepo: profileRepo,
	}
}

// Execute looks up a profile either by its slug or by its name.
func (uc UseCase) Execute(ctx context.Context, name string) (profile.Profile, error) {
	prof, err := uc.profileRepo.Get(ctx, profile.Slugify(name))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProfileNotFound):
			return profile.Blank, ErrProfileNotFound
		default:
			return profile.Blank, ErrUnableToObtainProfile
		}
	}
	return prof, nil
}
