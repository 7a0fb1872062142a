package router

import (
	"net/http"

	"newsline/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	apiHandler := handlers.NewAPIHandler()
	topicHandler := handlers.NewTopicHandler()
	articleHandler := handlers.NewArticleHandler()
	commentHandler := handlers.NewCommentHandler()
	userHandler := handlers.NewUserHandler()

	api := r.Group("/api")
	{
		api.GET("", apiHandler.Directory)

		api.GET("/topics", topicHandler.List)
		api.GET("/topics/:slug", topicHandler.Detail)
		api.POST("/topics", topicHandler.Create)
		api.PATCH("/topics/:slug", topicHandler.Update)
		api.DELETE("/topics/:slug", topicHandler.Delete)

		api.GET("/articles", articleHandler.List)
		api.GET("/articles/:article_id", articleHandler.Detail)
		api.POST("/articles", articleHandler.Create)
		api.PATCH("/articles/:article_id", articleHandler.Patch)
		api.DELETE("/articles/:article_id", articleHandler.Delete)
		api.GET("/articles/:article_id/comments", articleHandler.ListComments)
		api.POST("/articles/:article_id/comments", articleHandler.CreateComment)

		api.GET("/comments", commentHandler.List)
		api.PATCH("/comments/:comment_id", commentHandler.Patch)
		api.DELETE("/comments/:comment_id", commentHandler.Delete)

		api.GET("/users", userHandler.List)
		api.GET("/users/:username", userHandler.Detail)
		api.POST("/users", userHandler.Create)
		api.PATCH("/users/:username", userHandler.Patch)
		api.DELETE("/users/:username", userHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Invalid input"})
	})
}
