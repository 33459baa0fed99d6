package domain

import "time"

// Advertisement - рекламный баннер в мобильном приложении
type Advertisement struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Subtitle   string    `json:"subtitle" db:"subtitle"`
	Image      string    `json:"image" db:"image"`
	ButtonText string    `json:"button_text" db:"button_text"`
	ButtonURL  string    `json:"button_url" db:"button_url"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	IsActive   bool      `json:"-" db:"is_active"`
	Priority   int       `json:"priority" db:"priority"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
}
