package services

import (
	"newsline/internal/db"
	"newsline/internal/models"

	"gorm.io/gorm"
)

func ListComments() ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := db.DB.Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// IncrementCommentVotes applies a signed delta in the store, mirroring the
// article variant. Zero affected rows reports not found.
func IncrementCommentVotes(commentID, delta int) (*models.Comment, error) {
	res := db.DB.Model(&models.Comment{}).
		Where("comment_id = ?", commentID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, NotFound("Comment does not exist")
	}

	var comment models.Comment
	if err := db.DB.First(&comment, "comment_id = ?", commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func DeleteComment(commentID int) error {
	res := db.DB.Where("comment_id = ?", commentID).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("Comment does not exist")
	}
	return nil
}
