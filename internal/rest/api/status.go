package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigmasim/cmd/enigmasim/build"
)

func (a *API) Status(c *gin.Context) {
	status := map[string]string{
		"BuildTime":    build.Time,
		"BuildCommit":  build.Commit,
		"BuildVersion": build.Version,
	}
	c.JSON(http.StatusOK, status)
}
