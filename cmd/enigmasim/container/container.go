package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/internal/core/usecases/encipher"
	"github.com/sergeii/enigmasim/internal/core/usecases/getprofile"
	"github.com/sergeii/enigmasim/internal/core/usecases/listprofiles"
	"github.com/sergeii/enigmasim/internal/core/usecases/removeprofile"
	"github.com/sergeii/enigmasim/internal/core/usecases/saveprofile"
)

type Container struct {
	Encipher      encipher.UseCase
	GetProfile    getprofile.UseCase
	ListProfiles  listprofiles.UseCase
	SaveProfile   saveprofile.UseCase
	RemoveProfile removeprofile.UseCase
}

func New(
	encipherUseCase encipher.UseCase,
	getProfileUseCase getprofile.UseCase,
	listProfilesUseCase listprofiles.UseCase,
	saveProfileUseCase saveprofile.UseCase,
	removeProfileUseCase removeprofile.UseCase,
) Container {
	return Container{
		Encipher:      encipherUseCase,
		GetProfile:    getProfileUseCase,
		ListProfiles:  listProfilesUseCase,
		SaveProfile:   saveProfileUseCase,
		RemoveProfile: removeProfileUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(encipher.New),
	fx.Provide(getprofile.New),
	fx.Provide(listprofiles.New),
	fx.Provide(saveprofile.New),
	fx.Provide(removeprofile.New),
	fx.Provide(New),
)
