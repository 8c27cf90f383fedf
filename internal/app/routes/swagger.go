package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/cohorttools/cohort-api/docs" // This is required for swagger docs
)

// SetupSwagger serves the interactive API documentation under /docs.
// A request to /docs itself is redirected to /docs/ by the router.
func SetupSwagger(router *gin.Engine) {
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
