package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/astrumlab/tzbrief/internal/middleware"
)

type RouterDeps struct {
	Documents  *DocumentHandler
	Upload     *UploadHandler
	Send       *SendHandler
	Production bool
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	// Detail reads stay open so documents shared by link resolve without a
	// session.
	api.GET("/documents/:id", deps.Documents.Get)
	api.GET("/resolve", deps.Documents.Resolve)

	authGroup := api.Group("")
	authGroup.Use(middleware.InitDataAuth(deps.Production))
	authGroup.GET("/documents", deps.Documents.List)
	authGroup.POST("/documents", deps.Documents.Create)
	authGroup.PUT("/documents/:id", deps.Documents.Update)
	authGroup.DELETE("/documents/:id", deps.Documents.Delete)
	authGroup.POST("/upload", deps.Upload.Upload)
	authGroup.POST("/send", deps.Send.Send)
}
