package committee

import (
	"context"
	"testing"

	"confera-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCommitteeService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.CommitteeMember{}))
	return &Service{DB: db}
}

func TestCreate_RequiresNameAndTitle(t *testing.T) {
	svc := setupCommitteeService(t)

	_, err := svc.Create(context.Background(), Input{Name: "Jane Doe"})
	assert.Error(t, err)

	m, err := svc.Create(context.Background(), Input{Name: "Jane Doe", Title: "General Chair"})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
}

func TestList_DisplayOrder(t *testing.T) {
	svc := setupCommitteeService(t)

	_, err := svc.Create(context.Background(), Input{Name: "Bob", Title: "Member", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), Input{Name: "Alice", Title: "Chair", DisplayOrder: 1})
	require.NoError(t, err)

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, "Bob", members[1].Name)
}

func TestUpdate_CommitteeMember(t *testing.T) {
	svc := setupCommitteeService(t)
	m, err := svc.Create(context.Background(), Input{Name: "Jane", Title: "Member"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), m.ID, Input{Name: "Jane", Title: "Program Chair"})
	require.NoError(t, err)
	assert.Equal(t, "Program Chair", updated.Title)

	_, err = svc.Update(context.Background(), 999, Input{Name: "X", Title: "Y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_CommitteeMember(t *testing.T) {
	svc := setupCommitteeService(t)
	m, err := svc.Create(context.Background(), Input{Name: "Jane", Title: "Member"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), m.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), m.ID), ErrNotFound)
}
