package listprofiles

import (
	"context"
	"errors"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
)

var ErrUnableToObtainProfiles = errors.New("unable to obtain profiles from repository")

type UseCase struct {
	profileRepo repositories.ProfileRepository
}

func New(profileRepo repositories.ProfileRepository) UseCase {
	return UseCase{
		profileRepo: profileRepo,
	}
}

func (uc UseCase) Execute(ctx context.Context) ([]profile.Profile, error) {
	items, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, ErrUnableToObtainProfiles
	}
	return items, nil
}
