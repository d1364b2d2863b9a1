package user

import (
	"context"
	"errors"
	"strings"

	"confera-backend/internal/application/emails"
	"confera-backend/internal/domain"
	"confera-backend/internal/middleware"
	"confera-backend/internal/pkg/constants"
	"confera-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const userSessionsPrefix = "user_sessions:"

// Service holds DB and Redis for user operations. Rdb is needed to destroy
// sessions when an admin deletes an account.
type Service struct {
	DB          *gorm.DB
	Rdb         *redis.Client
	EmailSender emails.Sender
}

// RegisterInput is the public registration form.
type RegisterInput struct {
	Fullname    string `json:"fullname" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	Affiliation string `json:"affiliation" validate:"max=200"`
	Country     string `json:"country" validate:"max=100"`
}

// Register creates a user account with the default role. The welcome email is
// best-effort.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	var existing domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, errors.New("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Fullname:     strings.TrimSpace(in.Fullname),
		Email:        email,
		PasswordHash: string(hash),
		Affiliation:  strings.TrimSpace(in.Affiliation),
		Country:      strings.TrimSpace(in.Country),
		Role:         constants.User,
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}

	if s.EmailSender != nil {
		if err := s.EmailSender.SendWelcome(ctx, u.Email, u.Fullname); err != nil {
			log.Warn().Err(err).Str("email", u.Email).Msg("welcome email failed")
		}
	}
	return u, nil
}

// UpdateProfileInput is the subset of fields a user may change on their own
// account. Empty strings leave the field untouched; password changes require
// the strength rule.
type UpdateProfileInput struct {
	Fullname    string `json:"fullname" validate:"max=200"`
	Affiliation string `json:"affiliation" validate:"max=200"`
	Country     string `json:"country" validate:"max=100"`
	Password    string `json:"password"`
}

// UpdateProfile updates the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	upd := map[string]interface{}{}
	if strings.TrimSpace(in.Fullname) != "" {
		upd["fullname"] = strings.TrimSpace(in.Fullname)
	}
	if in.Affiliation != "" {
		upd["affiliation"] = strings.TrimSpace(in.Affiliation)
	}
	if in.Country != "" {
		upd["country"] = strings.TrimSpace(in.Country)
	}
	if in.Password != "" {
		if !validation.IsValidPassword(in.Password) {
			return nil, errors.New("password must be at least 8 characters with a letter, a number, and a special character")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
		if err != nil {
			return nil, err
		}
		upd["password_hash"] = string(hash)
	}
	if len(upd) == 0 {
		return nil, errors.New("No update fields provided")
	}

	res := s.DB.WithContext(ctx).Model(&domain.User{}).Where("user_id = ?", userID).Updates(upd)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errors.New("User not found")
	}

	var u domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// View returns a user by ID.
func (s *Service) View(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, errors.New("Missing user ID")
	}
	var u domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("User not found")
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users, newest first (admin panel).
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user (admin panel) and destroys their sessions so a
// deleted account cannot keep an authenticated cookie alive.
func (s *Service) Delete(ctx context.Context, actorUserID, targetUserID string) error {
	if actorUserID == targetUserID {
		return errors.New("You cannot delete your own account")
	}
	res := s.DB.WithContext(ctx).Where("user_id = ?", targetUserID).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("User not found")
	}
	s.destroySessions(ctx, targetUserID)
	return nil
}

func (s *Service) destroySessions(ctx context.Context, userID string) {
	if s.Rdb == nil {
		return
	}
	key := userSessionsPrefix + userID
	sessionIDs, err := s.Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return
	}
	for _, sid := range sessionIDs {
		_ = s.Rdb.Del(ctx, middleware.SessionRedisPrefix+sid).Err()
	}
	_ = s.Rdb.Del(ctx, key).Err()
}
