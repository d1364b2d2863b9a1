package domain

import (
	"time"

	"gorm.io/gorm"
)

// CommitteeMember is listed on the public committee page, ordered by DisplayOrder.
type CommitteeMember struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Title        string         `gorm:"column:title;not null" json:"title"`
	Affiliation  string         `gorm:"column:affiliation" json:"affiliation"`
	Bio          string         `gorm:"column:bio;type:text" json:"bio"`
	PhotoURL     string         `gorm:"column:photo_url" json:"photo_url"`
	DisplayOrder int            `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CommitteeMember) TableName() string {
	return "committee_members"
}
