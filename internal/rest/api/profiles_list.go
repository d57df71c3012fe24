package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/internal/rest/model"
)

// ListProfiles godoc
// @Summary      List profiles
// @Description  List stored key settings ordered by slug
// @Tags         profiles
// @Produce      json
// @Success      200 {array} model.Profile
// @Router       /profiles [get]
func (a *API) ListProfiles(c *gin.Context) {
	items, err := a.container.ListProfiles.Execute(c)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to obtain profiles")
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	result := make([]model.Profile, 0, len(items))
	for _, prof := range items {
		result = append(result, model.NewProfileFromDomain(prof))
	}
	c.JSON(http.StatusOK, result)
}
