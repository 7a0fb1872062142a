package services

import (
	"errors"

	"newsline/internal/db"
	"newsline/internal/models"

	"gorm.io/gorm"
)

func ListUsers() ([]models.User, error) {
	users := make([]models.User, 0)
	err := db.DB.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("User does not exist")
		}
		return nil, err
	}
	return &user, nil
}

func CreateUser(user models.User) (*models.User, error) {
	var count int64
	if err := db.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Username already exists")
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserUpdates carries the recognized mutable fields; nil means untouched.
type UserUpdates struct {
	Username  *string
	Name      *string
	AvatarURL *string
}

// UpdateUser patches profile fields and optionally renames the user. The
// target lookup runs first so a missing user reports not found even when a
// rename could also collide; a rename colliding with a different existing
// user rejects before any field changes.
func UpdateUser(username string, updates UserUpdates) (*models.User, error) {
	user, err := GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.AvatarURL != nil {
		fields["avatar_url"] = *updates.AvatarURL
	}
	if updates.Username != nil && *updates.Username != user.Username {
		var count int64
		if err := db.DB.Model(&models.User{}).Where("username = ?", *updates.Username).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, Conflict("Username already exists")
		}
		fields["username"] = *updates.Username
	}
	if len(fields) == 0 {
		return user, nil
	}

	if err := db.DB.Model(&models.User{}).Where("username = ?", username).Updates(fields).Error; err != nil {
		return nil, err
	}

	finalUsername := username
	if name, ok := fields["username"]; ok {
		finalUsername = name.(string)
	}
	return GetUserByUsername(finalUsername)
}

func DeleteUser(username string) error {
	// Authored articles and comments are left in place with dangling
	// author references.
	res := db.DB.Where("username = ?", username).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("User does not exist")
	}
	return nil
}

func userMustExist(username string) error {
	var count int64
	if err := db.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound("User does not exist")
	}
	return nil
}
