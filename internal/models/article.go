package models

import (
	"time"
)

type Article struct {
	ArticleID     int       `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title         string    `gorm:"not null" json:"title"`
	Topic         string    `gorm:"not null;index" json:"topic"`
	Author        string    `gorm:"not null;index" json:"author"`
	Body          string    `gorm:"type:text" json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `gorm:"default:0" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`

	// 非数据库字段，查询时填充
	CommentCount int `gorm:"-" json:"comment_count"`
}
