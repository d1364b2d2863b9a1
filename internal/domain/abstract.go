package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Abstract review statuses.
const (
	AbstractStatusPending  = "pending"
	AbstractStatusAccepted = "accepted"
	AbstractStatusRejected = "rejected"
)

// Abstract is a submitted conference abstract awaiting committee review.
// Authors is a JSON array of {name, affiliation}; Keywords a JSON string array.
type Abstract struct {
	ID         uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Title      string         `gorm:"column:title;not null" json:"title"`
	Body       string         `gorm:"column:body;type:text;not null" json:"body"`
	Category   string         `gorm:"column:category;not null" json:"category"`
	Authors    datatypes.JSON `gorm:"column:authors" json:"authors"`
	Keywords   datatypes.JSON `gorm:"column:keywords" json:"keywords"`
	Status     string         `gorm:"column:status;not null;default:'pending'" json:"status"`
	ReviewNote string         `gorm:"column:review_note" json:"review_note"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Abstract) TableName() string {
	return "abstracts"
}
