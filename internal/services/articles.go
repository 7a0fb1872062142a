package services

import (
	"errors"
	"strings"
	"time"

	"newsline/internal/db"
	"newsline/internal/models"

	"gorm.io/gorm"
)

// ArticleSummary is the listing projection: body excluded, comment_count
// folded in by the query itself so it can also serve as a sort key.
type ArticleSummary struct {
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	ArticleID     int       `json:"article_id"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// Sort columns are interpolated into ORDER BY and can never be bound as
// parameters, so the key must come from this closed set.
var articleSortColumns = map[string]string{
	"created_at":      "articles.created_at",
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// ListArticles returns one page of articles plus the total matching count
// ignoring pagination. sort_by and order are case-insensitive; an unknown
// topic rejects the whole request rather than returning an empty page.
func ListArticles(sortBy, order, topic string, limit, page int) ([]ArticleSummary, int64, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "DESC"
	}
	sortBy = strings.ToLower(sortBy)
	order = strings.ToUpper(order)

	column, ok := articleSortColumns[sortBy]
	if !ok {
		return nil, 0, BadRequest()
	}
	if order != "ASC" && order != "DESC" {
		return nil, 0, BadRequest()
	}

	if topic != "" {
		topic = strings.ToLower(topic)
		if err := topicMustExist(topic); err != nil {
			return nil, 0, err
		}
	}

	query := db.DB.Model(&models.Article{}).
		Select("articles.author, articles.title, articles.article_id, articles.topic, articles.created_at, articles.votes, articles.article_img_url, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
	countQuery := db.DB.Model(&models.Article{})

	if topic != "" {
		query = query.Where("articles.topic = ?", topic)
		countQuery = countQuery.Where("articles.topic = ?", topic)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := make([]ArticleSummary, 0)
	err := query.
		Order(column + " " + order).
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// GetArticleByID fetches the full article including body and a freshly
// computed comment_count.
func GetArticleByID(articleID int) (*models.Article, error) {
	var article models.Article
	if err := db.DB.First(&article, "article_id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Article does not exist")
		}
		return nil, err
	}
	fillCommentCount(&article)
	return &article, nil
}

// fillCommentCount recomputes the derived count; it is never stored.
func fillCommentCount(article *models.Article) {
	var count int64
	db.DB.Model(&models.Comment{}).Where("article_id = ?", article.ArticleID).Count(&count)
	article.CommentCount = int(count)
}

type NewArticle struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	ArticleImgURL string
}

// CreateArticle inserts a new article after checking its topic and author
// references. created_at and votes are server-assigned.
func CreateArticle(input NewArticle) (*models.Article, error) {
	if err := topicMustExist(input.Topic); err != nil {
		return nil, err
	}
	if err := userMustExist(input.Author); err != nil {
		return nil, err
	}

	article := models.Article{
		Title:         input.Title,
		Topic:         input.Topic,
		Author:        input.Author,
		Body:          input.Body,
		ArticleImgURL: input.ArticleImgURL,
	}
	if err := db.DB.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// IncrementArticleVotes applies a signed delta as a single atomic UPDATE so
// concurrent increments on the same row never lose updates. Zero affected
// rows means the article does not exist, not a silent success.
func IncrementArticleVotes(articleID, delta int) (*models.Article, error) {
	res := db.DB.Model(&models.Article{}).
		Where("article_id = ?", articleID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, NotFound("Article does not exist")
	}
	return GetArticleByID(articleID)
}

// DeleteArticle removes an article and its comments in one transaction, so
// a comment can never outlive its article.
func DeleteArticle(articleID int) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("article_id = ?", articleID).Delete(&models.Article{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("Article does not exist")
		}
		return nil
	})
}

// ListArticleComments returns an article's comments newest first. The
// article must exist; an empty list is a valid result.
func ListArticleComments(articleID int) ([]models.Comment, error) {
	if err := articleMustExist(articleID); err != nil {
		return nil, err
	}
	comments := make([]models.Comment, 0)
	err := db.DB.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment posts a comment under an article. Both the article and the
// authoring user are checked before the insert.
func CreateComment(articleID int, username, body string) (*models.Comment, error) {
	if err := articleMustExist(articleID); err != nil {
		return nil, err
	}
	if err := userMustExist(username); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ArticleID: articleID,
		Author:    username,
		Body:      body,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func articleMustExist(articleID int) error {
	var count int64
	if err := db.DB.Model(&models.Article{}).Where("article_id = ?", articleID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Article does not exist")
	}
	return nil
}
