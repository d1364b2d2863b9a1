package committee

import (
	"context"
	"errors"

	"confera-backend/internal/domain"
	"confera-backend/internal/pkg/validation"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("Committee member not found")

type Service struct {
	DB *gorm.DB
}

// Input is the admin create/update form for a committee member.
type Input struct {
	Name         string `json:"name" validate:"required,max=200"`
	Title        string `json:"title" validate:"required,max=200"`
	Affiliation  string `json:"affiliation" validate:"max=200"`
	Bio          string `json:"bio" validate:"max=5000"`
	PhotoURL     string `json:"photo_url" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order"`
}

// List returns committee members in display order for the public page.
func (s *Service) List(ctx context.Context) ([]domain.CommitteeMember, error) {
	var members []domain.CommitteeMember
	if err := s.DB.WithContext(ctx).Order("display_order ASC, name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Create adds a committee member.
func (s *Service) Create(ctx context.Context, in Input) (*domain.CommitteeMember, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	m := &domain.CommitteeMember{
		Name:         in.Name,
		Title:        in.Title,
		Affiliation:  in.Affiliation,
		Bio:          in.Bio,
		PhotoURL:     in.PhotoURL,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces a committee member's fields.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*domain.CommitteeMember, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	var m domain.CommitteeMember
	if err := s.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m.Name = in.Name
	m.Title = in.Title
	m.Affiliation = in.Affiliation
	m.Bio = in.Bio
	m.PhotoURL = in.PhotoURL
	m.DisplayOrder = in.DisplayOrder
	if err := s.DB.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a committee member.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.CommitteeMember{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
