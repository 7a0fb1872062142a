package handlers

import (
	"net/http"

	"newsline/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := services.ListComments()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) Patch(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	delta, ok := voteDelta(c)
	if !ok {
		return
	}

	comment, err := services.IncrementCommentVotes(commentID, delta)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := services.DeleteComment(commentID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
