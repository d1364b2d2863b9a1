package awards

import (
	"context"
	"errors"

	"confera-backend/internal/domain"
	"confera-backend/internal/pkg/validation"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("Award not found")

type Service struct {
	DB *gorm.DB
}

// Input is the admin create/update form for an award.
type Input struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"max=100"`
	Year        int    `json:"year" validate:"required,min=2000,max=2100"`
	Recipient   string `json:"recipient" validate:"max=200"`
}

// List returns awards for the public page, most recent year first.
func (s *Service) List(ctx context.Context) ([]domain.Award, error) {
	var awards []domain.Award
	if err := s.DB.WithContext(ctx).Order("year DESC, name ASC").Find(&awards).Error; err != nil {
		return nil, err
	}
	return awards, nil
}

// Create adds an award.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Award, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	a := &domain.Award{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Year:        in.Year,
		Recipient:   in.Recipient,
	}
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces an award's fields.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*domain.Award, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	var a domain.Award
	if err := s.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a.Name = in.Name
	a.Description = in.Description
	a.Category = in.Category
	a.Year = in.Year
	a.Recipient = in.Recipient
	if err := s.DB.WithContext(ctx).Save(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an award.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.Award{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
