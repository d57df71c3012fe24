package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/internal/core/usecases/removeprofile"
)

// RemoveProfile godoc
// @Summary      Remove profile
// @Tags         profiles
// @Param        name path string true "Profile name or slug"
// @Success      204 "No Content"
// @Failure      404 {object} Error
// @Router       /profiles/{name} [delete]
func (a *API) RemoveProfile(c *gin.Context) {
	name := c.Param("name")

	if err := a.container.RemoveProfile.Execute(c, name); err != nil {
		switch {
		case errors.Is(err, removeprofile.ErrProfileNotFound):
			abortWithStatus(c, http.StatusNotFound)
		default:
			abortWithStatus(c, http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
