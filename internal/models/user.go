package models

// User rows are keyed by username. Deleting a user leaves authored
// articles and comments with dangling author strings; that is accepted.
type User struct {
	Username  string `gorm:"primaryKey;size:100" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}
