package domain

import (
	"time"

	"gorm.io/gorm"
)

// Award is a conference award; Recipient stays empty until awarded.
type Award struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Category    string         `gorm:"column:category" json:"category"`
	Year        int            `gorm:"column:year;not null" json:"year"`
	Recipient   string         `gorm:"column:recipient" json:"recipient"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Award) TableName() string {
	return "awards"
}
