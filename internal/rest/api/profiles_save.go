package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/internal/core/usecases/saveprofile"
	"github.com/sergeii/enigmasim/internal/rest/model"
)

// AddProfile godoc
// @Summary      Add profile
// @Description  Store a new key setting under a name. The key is checked by setting up a machine.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile body      model.NewProfile  true  "Profile name and key"
// @Success      201     {object}  model.Profile
// @Failure      400     {object}  Error
// @Failure      409     {object}  Error
// @Router       /profiles [post]
func (a *API) AddProfile(c *gin.Context) {
	var form model.NewProfile
	if err := c.ShouldBindJSON(&form); err != nil {
		a.logger.Debug().Err(err).Msg("Invalid profile")
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	a.saveProfile(c, saveprofile.Request{
		Name: form.Name,
		Key:  form.Key.ToDomain(),
	}, http.StatusCreated)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Replace the key of a stored profile, creating the profile when it does not exist
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        name    path      string               true  "Profile name or slug"
// @Param        profile body      model.UpdateProfile  true  "Profile key"
// @Success      200     {object}  model.Profile
// @Failure      400     {object}  Error
// @Router       /profiles/{name} [put]
func (a *API) UpdateProfile(c *gin.Context) {
	var form model.UpdateProfile
	if err := c.ShouldBindJSON(&form); err != nil {
		a.logger.Debug().Err(err).Msg("Invalid profile")
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	a.saveProfile(c, saveprofile.Request{
		Name:      c.Param("name"),
		Key:       form.Key.ToDomain(),
		Overwrite: true,
	}, http.StatusOK)
}

func (a *API) saveProfile(c *gin.Context, req saveprofile.Request, status int) {
	prof, err := a.container.SaveProfile.Execute(c, req)
	if err != nil {
		switch {
		case errors.Is(err, saveprofile.ErrProfileExists):
			abortWithError(c, http.StatusConflict, err)
		case errors.Is(err, saveprofile.ErrInvalidName), errors.Is(err, saveprofile.ErrInvalidKey):
			abortWithError(c, http.StatusBadRequest, err)
		default:
			abortWithStatus(c, http.StatusInternalServerError)
		}
		return
	}

	c.JSON(status, model.NewProfileFromDomain(prof))
}
