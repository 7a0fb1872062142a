package models

// Topic is a category articles are filed under. The slug doubles as the
// primary key, so topic references on articles are plain strings.
type Topic struct {
	Slug        string `gorm:"primaryKey;size:100" json:"slug"`
	Description string `json:"description"`
}
