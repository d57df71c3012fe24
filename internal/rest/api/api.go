package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/cmd/enigmasim/container"
	"github.com/sergeii/enigmasim/internal/settings"
)

type API struct {
	settings  settings.Settings
	container container.Container
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	settings settings.Settings,
	logger *zerolog.Logger,
	container container.Container,
) *API {
	return &API{
		container: container,
		settings:  settings,
		logger:    logger,
	}
}

func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, Error{Error: err.Error()})
}

func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, Error{Error: http.StatusText(status)})
}
