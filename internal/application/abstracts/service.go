package abstracts

import (
	"context"
	"encoding/json"
	"errors"

	"confera-backend/internal/application/emails"
	"confera-backend/internal/domain"
	"confera-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("Abstract not found")
	ErrNotOwner   = errors.New("Abstract belongs to another user")
	ErrNotPending = errors.New("Abstract has already been reviewed")
)

type Service struct {
	DB          *gorm.DB
	EmailSender emails.Sender
}

// Author is one entry of the authors JSON column.
type Author struct {
	Name        string `json:"name" validate:"required,max=200"`
	Affiliation string `json:"affiliation" validate:"max=200"`
}

// SubmitInput is the abstract submission form.
type SubmitInput struct {
	Title    string   `json:"title" validate:"required,max=300"`
	Body     string   `json:"body" validate:"required,max=10000"`
	Category string   `json:"category" validate:"required,max=100"`
	Authors  []Author `json:"authors" validate:"omitempty,dive"`
	Keywords []string `json:"keywords" validate:"omitempty,max=10,dive,max=50"`
}

// Submit stores a new abstract with status pending.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (*domain.Abstract, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	authors, _ := json.Marshal(in.Authors)
	keywords, _ := json.Marshal(in.Keywords)

	a := &domain.Abstract{
		UserID:   userID,
		Title:    in.Title,
		Body:     in.Body,
		Category: in.Category,
		Authors:  datatypes.JSON(authors),
		Keywords: datatypes.JSON(keywords),
		Status:   domain.AbstractStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// ListMine returns the caller's abstracts, newest first.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.Abstract, error) {
	var abstracts []domain.Abstract
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&abstracts).Error; err != nil {
		return nil, err
	}
	return abstracts, nil
}

func (s *Service) ownedPending(ctx context.Context, id uint, userID uuid.UUID) (*domain.Abstract, error) {
	var a domain.Abstract
	if err := s.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrNotOwner
	}
	if a.Status != domain.AbstractStatusPending {
		return nil, ErrNotPending
	}
	return &a, nil
}

// Update replaces the submission fields of the caller's own abstract while it
// is still pending review.
func (s *Service) Update(ctx context.Context, id uint, userID uuid.UUID, in SubmitInput) (*domain.Abstract, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	a, err := s.ownedPending(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	authors, _ := json.Marshal(in.Authors)
	keywords, _ := json.Marshal(in.Keywords)
	a.Title = in.Title
	a.Body = in.Body
	a.Category = in.Category
	a.Authors = datatypes.JSON(authors)
	a.Keywords = datatypes.JSON(keywords)
	if err := s.DB.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Withdraw soft-deletes the caller's own pending abstract.
func (s *Service) Withdraw(ctx context.Context, id uint, userID uuid.UUID) error {
	a, err := s.ownedPending(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(a).Error
}

// ListAll returns every abstract for the admin review queue, optionally
// filtered by status.
func (s *Service) ListAll(ctx context.Context, status string) ([]domain.Abstract, error) {
	q := s.DB.WithContext(ctx).Model(&domain.Abstract{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var abstracts []domain.Abstract
	if err := q.Order("created_at DESC").Find(&abstracts).Error; err != nil {
		return nil, err
	}
	return abstracts, nil
}

// ReviewInput is the admin review decision.
type ReviewInput struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
	Note   string `json:"note" validate:"max=2000"`
}

// Review records the committee decision. The write is conditioned on the row
// still being pending so two reviewers cannot both decide the same abstract.
func (s *Service) Review(ctx context.Context, id uint, in ReviewInput) (*domain.Abstract, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	var a domain.Abstract
	if err := s.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	res := s.DB.WithContext(ctx).Model(&domain.Abstract{}).
		Where("id = ? AND status = ?", id, domain.AbstractStatusPending).
		Updates(map[string]interface{}{"status": in.Status, "review_note": in.Note})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotPending
	}

	if err := s.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	s.sendDecisionEmail(ctx, &a)
	return &a, nil
}

func (s *Service) sendDecisionEmail(ctx context.Context, a *domain.Abstract) {
	if s.EmailSender == nil {
		return
	}
	var owner domain.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", a.UserID).First(&owner).Error; err != nil {
		return
	}
	if err := s.EmailSender.SendAbstractDecision(ctx, owner.Email, owner.Fullname, a.Title, a.Status, a.ReviewNote); err != nil {
		log.Warn().Err(err).Str("email", owner.Email).Msg("abstract decision email failed")
	}
}
