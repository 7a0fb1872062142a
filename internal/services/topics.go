package services

import (
	"errors"

	"newsline/internal/db"
	"newsline/internal/models"

	"gorm.io/gorm"
)

func ListTopics() ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	err := db.DB.Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func GetTopicBySlug(slug string) (*models.Topic, error) {
	var topic models.Topic
	if err := db.DB.First(&topic, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Topic doesn't exist")
		}
		return nil, err
	}
	return &topic, nil
}

// CreateTopic rejects duplicate slugs with a conflict, same policy as
// duplicate usernames.
func CreateTopic(slug, description string) (*models.Topic, error) {
	var count int64
	if err := db.DB.Model(&models.Topic{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Topic already exists")
	}

	topic := models.Topic{Slug: slug, Description: description}
	if err := db.DB.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func UpdateTopic(slug, description string) (*models.Topic, error) {
	topic, err := GetTopicBySlug(slug)
	if err != nil {
		return nil, err
	}
	topic.Description = description
	if err := db.DB.Save(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

// DeleteTopic removes a topic, its articles and their comments as one
// transactional unit. The comment set is resolved through a subquery on the
// still-present articles, so dependents are computed against pre-delete
// membership.
func DeleteTopic(slug string) error {
	if _, err := GetTopicBySlug(slug); err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		memberArticles := tx.Model(&models.Article{}).Select("article_id").Where("topic = ?", slug)
		if err := tx.Where("article_id IN (?)", memberArticles).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic = ?", slug).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		res := tx.Where("slug = ?", slug).Delete(&models.Topic{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("Topic doesn't exist")
		}
		return nil
	})
}

func topicMustExist(slug string) error {
	var count int64
	if err := db.DB.Model(&models.Topic{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("Topic doesn't exist")
	}
	return nil
}
