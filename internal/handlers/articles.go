package handlers

import (
	"net/http"

	"newsline/internal/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct{}

func NewArticleHandler() *ArticleHandler {
	return &ArticleHandler{}
}

func (h *ArticleHandler) List(c *gin.Context) {
	limit, ok := positiveQueryInt(c, "limit", 10)
	if !ok {
		return
	}
	page, ok := positiveQueryInt(c, "p", 1)
	if !ok {
		return
	}

	articles, total, err := services.ListArticles(
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("topic"),
		limit,
		page,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "total_count": total})
}

func (h *ArticleHandler) Detail(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	article, err := services.GetArticleByID(articleID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var body struct {
		Title         string `json:"title" binding:"required"`
		Topic         string `json:"topic" binding:"required"`
		Author        string `json:"author" binding:"required"`
		Body          string `json:"body" binding:"required"`
		ArticleImgURL string `json:"article_img_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}

	article, err := services.CreateArticle(services.NewArticle{
		Title:         body.Title,
		Topic:         body.Topic,
		Author:        body.Author,
		Body:          body.Body,
		ArticleImgURL: body.ArticleImgURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) Patch(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	delta, ok := voteDelta(c)
	if !ok {
		return
	}

	article, err := services.IncrementArticleVotes(articleID, delta)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"article": article})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	if err := services.DeleteArticle(articleID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) ListComments(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	comments, err := services.ListArticleComments(articleID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *ArticleHandler) CreateComment(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	var body struct {
		Username string `json:"username" binding:"required"`
		Body     string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}

	comment, err := services.CreateComment(articleID, body.Username, body.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
