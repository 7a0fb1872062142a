package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// endpoints is the static directory served at GET /api.
var endpoints = gin.H{
	"GET /api": gin.H{
		"description": "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": gin.H{
		"description": "serves an array of all topics",
	},
	"GET /api/topics/:slug": gin.H{
		"description": "serves a single topic by its slug",
	},
	"POST /api/topics": gin.H{
		"description": "adds a new topic",
		"requestBody": []string{"slug", "description"},
	},
	"PATCH /api/topics/:slug": gin.H{
		"description": "updates a topic's description",
		"requestBody": []string{"description"},
	},
	"DELETE /api/topics/:slug": gin.H{
		"description": "deletes a topic along with its articles and their comments",
	},
	"GET /api/articles": gin.H{
		"description": "serves an array of all articles with a total_count",
		"queries":     []string{"sort_by", "order", "topic", "limit", "p"},
	},
	"GET /api/articles/:article_id": gin.H{
		"description": "serves a single article including its comment_count",
	},
	"POST /api/articles": gin.H{
		"description": "adds a new article",
		"requestBody": []string{"title", "topic", "author", "body", "article_img_url"},
	},
	"PATCH /api/articles/:article_id": gin.H{
		"description": "applies a vote delta to an article",
		"requestBody": []string{"inc_votes"},
	},
	"DELETE /api/articles/:article_id": gin.H{
		"description": "deletes an article along with its comments",
	},
	"GET /api/articles/:article_id/comments": gin.H{
		"description": "serves an article's comments, newest first",
	},
	"POST /api/articles/:article_id/comments": gin.H{
		"description": "adds a comment to an article",
		"requestBody": []string{"username", "body"},
	},
	"GET /api/comments": gin.H{
		"description": "serves an array of all comments",
	},
	"PATCH /api/comments/:comment_id": gin.H{
		"description": "applies a vote delta to a comment",
		"requestBody": []string{"inc_votes"},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes a comment",
	},
	"GET /api/users": gin.H{
		"description": "serves an array of all users",
	},
	"GET /api/users/:username": gin.H{
		"description": "serves a single user by username",
	},
	"POST /api/users": gin.H{
		"description": "adds a new user",
		"requestBody": []string{"username", "name", "avatar_url"},
	},
	"PATCH /api/users/:username": gin.H{
		"description": "updates a user's profile, optionally renaming them",
		"requestBody": []string{"username", "name", "avatar_url"},
	},
	"DELETE /api/users/:username": gin.H{
		"description": "deletes a user, leaving their authored content in place",
	},
}

func (h *APIHandler) Directory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}
