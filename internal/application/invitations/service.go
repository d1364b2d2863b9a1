package invitations

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"confera-backend/internal/application/emails"
	policies "confera-backend/internal/application/policies/invitations"
	"confera-backend/internal/domain"
	"confera-backend/internal/pkg/constants"
	"confera-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default invitation lifetime when the issuer does not set an expiration.
const defaultLifetime = 14 * 24 * time.Hour

type Service struct {
	DB            *gorm.DB
	EmailSender   emails.Sender // nil disables outgoing mail
	InviteBaseURL string
}

// CreateInput carries issuer input. Role is required for account invitations;
// institution and position only apply to attendance invitations.
type CreateInput struct {
	Name        string `validate:"required,max=200"`
	Email       string `validate:"required,email"`
	Type        string `validate:"required,oneof=account attendance"`
	Role        string
	Message     string `validate:"max=2000"`
	Institution string `validate:"max=200"`
	Position    string `validate:"max=200"`
	ExpiresAt   *time.Time
	SenderID    uuid.UUID
	SenderEmail string
}

// Create issues a new pending invitation with a fresh token. The expiration
// defaults to 14 days from now when the issuer does not provide one; the
// default is materialized on the row so the responder check is uniform.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Invitation, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, invalid(err)
	}
	if in.Type == domain.InvitationTypeAccount {
		if in.Role == "" {
			return nil, invalid(errors.New("role is required for account invitations"))
		}
		if !constants.IsValidRole(in.Role) {
			return nil, invalid(errors.New("role must be one of: user, admin"))
		}
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if err := policies.ValidateInviteCreation(s.DB, email, in.Type, in.SenderEmail); err != nil {
		return nil, invalid(err)
	}

	expiresAt := time.Now().Add(defaultLifetime)
	if in.ExpiresAt != nil {
		if in.ExpiresAt.Before(time.Now()) {
			return nil, invalid(errors.New("expiresAt must be in the future"))
		}
		expiresAt = *in.ExpiresAt
	}

	inv := &domain.Invitation{
		Name:        strings.TrimSpace(in.Name),
		Email:       email,
		Token:       randomHex(32),
		Role:        in.Role,
		Type:        in.Type,
		Status:      domain.InvitationStatusPending,
		Message:     in.Message,
		Institution: in.Institution,
		Position:    in.Position,
		SenderID:    in.SenderID,
		ExpiresAt:   expiresAt,
	}
	if err := s.DB.WithContext(ctx).Create(inv).Error; err != nil {
		// A unique-token collision surfaces here; the caller retries with a
		// freshly generated token.
		return nil, err
	}

	s.sendInviteEmail(ctx, inv)
	return inv, nil
}

// VerifyToken looks up an invitation by token. Read-only: non-pending records
// are returned as-is so the caller can render an "already responded" view.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.Invitation, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var inv domain.Invitation
	if err := s.DB.WithContext(ctx).Where("token = ?", token).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// RespondAttendance records the invitee's accept/reject decision for an
// attendance invitation. Checks run in order (existence, type, status,
// expiration) and the status write is a single conditional update so that of
// two concurrent responses only the first wins; the loser observes
// ErrAlreadyResponded.
func (s *Service) RespondAttendance(ctx context.Context, token string, accept bool) (string, error) {
	inv, err := s.VerifyToken(ctx, token)
	if err != nil {
		return "", err
	}
	if inv.Type != domain.InvitationTypeAttendance {
		return "", ErrInvalidType
	}
	if inv.Status != domain.InvitationStatusPending {
		return "", ErrAlreadyResponded
	}
	if inv.ExpiresAt.Before(time.Now()) {
		return "", ErrExpired
	}

	status := domain.InvitationStatusRejected
	if accept {
		status = domain.InvitationStatusAccepted
	}
	res := s.DB.WithContext(ctx).Model(&domain.Invitation{}).
		Where("token = ? AND status = ?", token, domain.InvitationStatusPending).
		Update("status", status)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race against a concurrent response.
		return "", ErrAlreadyResponded
	}
	return status, nil
}

// AcceptAccountInput carries the account-invitation acceptance form.
type AcceptAccountInput struct {
	Token    string `validate:"required"`
	Password string `validate:"required"`
	Fullname string `validate:"max=200"`
}

// AcceptAccount redeems an account invitation: it creates the user with the
// invited role and email, then flips the invitation to accepted with the same
// conditional update discipline as the attendance responder.
func (s *Service) AcceptAccount(ctx context.Context, in AcceptAccountInput) (*domain.User, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, invalid(err)
	}
	inv, err := s.VerifyToken(ctx, in.Token)
	if err != nil {
		return nil, err
	}
	if inv.Type != domain.InvitationTypeAccount {
		return nil, ErrInvalidType
	}
	if inv.Status != domain.InvitationStatusPending {
		return nil, ErrAlreadyResponded
	}
	if inv.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpired
	}
	if !validation.IsValidPassword(in.Password) {
		return nil, invalid(errors.New("password must be at least 8 characters with a letter, a number, and a special character"))
	}

	fullname := strings.TrimSpace(in.Fullname)
	if fullname == "" {
		fullname = inv.Name
	}

	var existing domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", inv.Email).First(&existing).Error; err == nil {
		return nil, invalid(errors.New("Email already registered"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Fullname:     fullname,
		Email:        inv.Email,
		PasswordHash: string(hash),
		Role:         inv.Role,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		res := tx.Model(&domain.Invitation{}).
			Where("token = ? AND status = ?", inv.Token, domain.InvitationStatusPending).
			Update("status", domain.InvitationStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyResponded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.EmailSender != nil {
		if err := s.EmailSender.SendWelcome(ctx, user.Email, user.Fullname); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("welcome email failed")
		}
	}
	return user, nil
}

// ListInput filters the admin invitation list.
type ListInput struct {
	Status string
	Type   string
}

// List returns invitations newest first, optionally filtered by status/type.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Invitation, error) {
	q := s.DB.WithContext(ctx).Model(&domain.Invitation{})
	if in.Status != "" {
		q = q.Where("status = ?", in.Status)
	}
	if in.Type != "" {
		q = q.Where("type = ?", in.Type)
	}
	var invitations []domain.Invitation
	if err := q.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// Delete removes an invitation by numeric id, regardless of status.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.Invitation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) sendInviteEmail(ctx context.Context, inv *domain.Invitation) {
	if s.EmailSender == nil {
		return
	}
	var err error
	if inv.Type == domain.InvitationTypeAccount {
		link := s.InviteBaseURL + "/invitations/accept?token=" + inv.Token
		err = s.EmailSender.SendAccountInvite(ctx, inv.Email, inv.Name, link, inv.Role, inv.Message)
	} else {
		link := s.InviteBaseURL + "/invitations/respond?token=" + inv.Token
		err = s.EmailSender.SendAttendanceInvite(ctx, inv.Email, inv.Name, link, inv.Message)
	}
	if err != nil {
		log.Warn().Err(err).Str("email", inv.Email).Str("type", inv.Type).Msg("invite email failed")
	}
}

func randomHex(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
