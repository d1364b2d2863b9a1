package notifications

import (
	"context"
	"errors"
	"time"

	"confera-backend/internal/domain"
	"confera-backend/internal/pkg/validation"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("Notification not found")

type Service struct {
	DB *gorm.DB
}

// Input is the admin create/update form. Published controls visibility on the
// public site.
type Input struct {
	Title     string `json:"title" validate:"required,max=300"`
	Body      string `json:"body" validate:"required,max=10000"`
	Published bool   `json:"published"`
}

// ListPublished returns published notifications for the public pages, newest
// first.
func (s *Service) ListPublished(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := s.DB.WithContext(ctx).Where("published = ?", true).
		Order("published_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every notification for the admin panel.
func (s *Service) ListAll(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores a notification; PublishedAt is stamped when it goes out
// published.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Notification, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	n := &domain.Notification{
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
	}
	if in.Published {
		now := time.Now()
		n.PublishedAt = &now
	}
	if err := s.DB.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// Update replaces title/body/published. Publishing for the first time stamps
// PublishedAt; unpublishing clears it.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*domain.Notification, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	var n domain.Notification
	if err := s.DB.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	n.Title = in.Title
	n.Body = in.Body
	if in.Published && !n.Published {
		now := time.Now()
		n.PublishedAt = &now
	}
	if !in.Published {
		n.PublishedAt = nil
	}
	n.Published = in.Published
	if err := s.DB.WithContext(ctx).Save(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete removes a notification.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.Notification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
