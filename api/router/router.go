package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resume-folio/api/handlers"
	"resume-folio/api/middleware"
	_ "resume-folio/docs"
	"resume-folio/services"
)

// New assembles the gateway routes. The three application routes are a frozen
// wire surface, trailing slashes included.
func New(svc *services.SiteService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	r.GET("/health", handlers.HealthHandler(handlers.HealthKeyCheck()))
	r.POST("/upload-resume/", handlers.UploadResumeHandler(svc))
	r.POST("/deploy-site/", handlers.DeploySiteHandler(svc))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
