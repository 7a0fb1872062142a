package handlers

import (
	"net/http"

	"newsline/internal/models"
	"newsline/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Detail(c *gin.Context) {
	user, err := services.GetUserByUsername(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Create(c *gin.Context) {
	var body struct {
		Username  string `json:"username" binding:"required"`
		Name      string `json:"name" binding:"required"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}

	user, err := services.CreateUser(models.User{
		Username:  body.Username,
		Name:      body.Name,
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *UserHandler) Patch(c *gin.Context) {
	var body struct {
		Username  *string `json:"username"`
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}
	// No recognized field present: reject before touching the store.
	if body.Username == nil && body.Name == nil && body.AvatarURL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data to update"})
		return
	}

	user, err := services.UpdateUser(c.Param("username"), services.UserUpdates{
		Username:  body.Username,
		Name:      body.Name,
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := services.DeleteUser(c.Param("username")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
