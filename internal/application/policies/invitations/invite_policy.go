package policies

import (
	"errors"
	"strings"

	"confera-backend/internal/domain"

	"gorm.io/gorm"
)

// ValidateInviteCreation rejects self-invites and duplicate pending
// invitations for the same recipient and type. Email is already normalized.
func ValidateInviteCreation(db *gorm.DB, email, inviteType, senderEmail string) error {
	if senderEmail != "" && email == strings.ToLower(senderEmail) {
		return errors.New("You cannot invite yourself")
	}

	if inviteType == domain.InvitationTypeAccount {
		var user domain.User
		if err := db.Where("email = ?", email).First(&user).Error; err == nil {
			return errors.New("A user with this email already exists")
		}
	}

	var invite domain.Invitation
	if err := db.Where("email = ? AND type = ? AND status = ?", email, inviteType, domain.InvitationStatusPending).
		First(&invite).Error; err == nil {
		return errors.New("A pending invitation already exists for this email")
	}

	return nil
}
