package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation kinds. Account invitations create a user account on acceptance;
// attendance invitations only record an RSVP.
const (
	InvitationTypeAccount    = "account"
	InvitationTypeAttendance = "attendance"
)

// Invitation statuses. Pending is the only mutable state: a record moves to
// accepted or rejected exactly once and never back.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusRejected = "rejected"
)

// Invitation is an offer to join the platform or confirm attendance. The
// token is the only public lookup key; the numeric ID is internal and only
// used by the admin panel.
type Invitation struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Email       string         `gorm:"column:email;not null" json:"email"`
	Token       string         `gorm:"column:token;not null;uniqueIndex" json:"token"`
	Role        string         `gorm:"column:role" json:"role"`
	Type        string         `gorm:"column:type;not null" json:"type"`
	Status      string         `gorm:"column:status;not null;default:'pending'" json:"status"`
	Message     string         `gorm:"column:message" json:"message"`
	Institution string         `gorm:"column:institution" json:"institution"`
	Position    string         `gorm:"column:position" json:"position"`
	SenderID    uuid.UUID      `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	ExpiresAt   time.Time      `gorm:"column:expires_at;not null" json:"expiresAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Invitation) TableName() string {
	return "invitations"
}
