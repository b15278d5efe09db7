package apiconfig

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/configs")
	{
		group.GET("", ListConfigs)
		group.POST("", CreateConfig)
		group.GET("/:id", GetConfig)
		group.PUT("/:id", UpdateConfig)
		group.DELETE("/:id", DeleteConfig)
	}
}
