package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/internal/rest/model"
)

// Catalog godoc
// @Summary      List machine parts
// @Description  List the rotors and reflectors that can be used in a key
// @Tags         catalog
// @Produce      json
// @Success      200 {object} model.Catalog
// @Router       /catalog [get]
func (a *API) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewCatalog())
}
