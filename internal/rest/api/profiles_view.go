package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/internal/core/usecases/getprofile"
	"github.com/sergeii/enigmasim/internal/rest/model"
)

// ViewProfile godoc
// @Summary      View profile
// @Description  Return a stored key setting by its name or slug
// @Tags         profiles
// @Produce      json
// @Param        name path     string  true  "Profile name or slug"
// @Success      200  {object} model.Profile
// @Failure      404  {object} Error
// @Router       /profiles/{name} [get]
func (a *API) ViewProfile(c *gin.Context) {
	name := c.Param("name")

	prof, err := a.container.GetProfile.Execute(c, name)
	if err != nil {
		switch {
		case errors.Is(err, getprofile.ErrProfileNotFound):
			a.logger.Debug().Str("name", name).Msg("Requested profile not found")
			abortWithStatus(c, http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Str("name", name).Msg("Failed to obtain profile")
			abortWithStatus(c, http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewProfileFromDomain(prof))
}
