package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/enigmasim/api/docs" // nolint: revive
	"github.com/sergeii/enigmasim/internal/rest/api"
)

func NewRouter(a *api.API) *gin.Engine {
	router := gin.Default()
	router.GET("/status", a.Status)
	router.GET("/api/catalog", a.Catalog)
	router.POST("/api/encipher", a.Encipher)
	router.GET("/api/profiles", a.ListProfiles)
	router.POST("/api/profiles", a.AddProfile)
	router.GET("/api/profiles/:name", a.ViewProfile)
	router.PUT("/api/profiles/:name", a.UpdateProfile)
	router.DELETE("/api/profiles/:name", a.RemoveProfile)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
