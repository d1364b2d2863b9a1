package notifications

import (
	"context"
	"testing"

	"confera-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupNotificationsService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Notification{}))
	return &Service{DB: db}
}

func TestCreate_PublishedStampsTimestamp(t *testing.T) {
	svc := setupNotificationsService(t)

	draft, err := svc.Create(context.Background(), Input{Title: "Draft", Body: "Soon."})
	require.NoError(t, err)
	assert.False(t, draft.Published)
	assert.Nil(t, draft.PublishedAt)

	live, err := svc.Create(context.Background(), Input{Title: "CFP open", Body: "Submit now.", Published: true})
	require.NoError(t, err)
	assert.True(t, live.Published)
	require.NotNil(t, live.PublishedAt)
}

func TestCreate_MissingTitle(t *testing.T) {
	svc := setupNotificationsService(t)

	_, err := svc.Create(context.Background(), Input{Body: "No title."})
	assert.Error(t, err)
}

func TestListPublished_ExcludesDrafts(t *testing.T) {
	svc := setupNotificationsService(t)
	_, err := svc.Create(context.Background(), Input{Title: "Draft", Body: "x"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), Input{Title: "Live", Body: "x", Published: true})
	require.NoError(t, err)

	public, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Live", public[0].Title)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdate_PublishAndUnpublish(t *testing.T) {
	svc := setupNotificationsService(t)
	n, err := svc.Create(context.Background(), Input{Title: "Draft", Body: "x"})
	require.NoError(t, err)

	published, err := svc.Update(context.Background(), n.ID, Input{Title: "Draft", Body: "x", Published: true})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)

	unpublished, err := svc.Update(context.Background(), n.ID, Input{Title: "Draft", Body: "x"})
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
	assert.Nil(t, unpublished.PublishedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := setupNotificationsService(t)

	_, err := svc.Update(context.Background(), 42, Input{Title: "x", Body: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Notification(t *testing.T) {
	svc := setupNotificationsService(t)
	n, err := svc.Create(context.Background(), Input{Title: "Gone", Body: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), n.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), n.ID), ErrNotFound)
}
