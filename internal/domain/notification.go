package domain

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a site announcement shown on the public pages once published.
type Notification struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Body        string         `gorm:"column:body;type:text;not null" json:"body"`
	Published   bool           `gorm:"column:published;not null;default:false" json:"published"`
	PublishedAt *time.Time     `gorm:"column:published_at" json:"publishedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
