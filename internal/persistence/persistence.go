package persistence

import (
	"github.com/sergeii/enigmasim/internal/core/repositories"
)

type Repositories struct {
	Profiles repositories.ProfileRepository
}
