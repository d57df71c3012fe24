package memory

import (
	"github.com/sergeii/enigmasim/internal/persistence"
	"github.com/sergeii/enigmasim/internal/persistence/memory/profiles"
)

func New() persistence.Repositories {
	return persistence.Repositories{
		Profiles: profiles.New(),
	}
}
