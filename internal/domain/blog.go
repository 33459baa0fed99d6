package domain

import "time"

// Blog - статья о городе
type Blog struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Thumbnail   string    `json:"thumbnail" db:"thumbnail"`
	CityName    string    `json:"city_name" db:"city_name"`
	Content     string    `json:"content" db:"content"`
	IsPublished bool      `json:"-" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Images      []string  `json:"images"`
}
