package invitations

import (
	"context"
	"errors"
	"testing"
	"time"

	"confera-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Invitation{}))
	return &Service{DB: db, InviteBaseURL: "https://confera.app"}, db
}

func seedAttendance(t *testing.T, db *gorm.DB, token string, expiresAt time.Time) *domain.Invitation {
	t.Helper()
	inv := &domain.Invitation{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Token:     token,
		Type:      domain.InvitationTypeAttendance,
		Status:    domain.InvitationStatusPending,
		SenderID:  uuid.New(),
		ExpiresAt: expiresAt,
	}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func TestCreate_AttendanceDefaults(t *testing.T) {
	svc, _ := setupService(t)

	inv, err := svc.Create(context.Background(), CreateInput{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Type:     domain.InvitationTypeAttendance,
		SenderID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.InvitationStatusPending, inv.Status)
	assert.NotEmpty(t, inv.Token)
	assert.Len(t, inv.Token, 64) // 32 random bytes, hex encoded
	assert.Equal(t, "jane@example.com", inv.Email)
	// default lifetime materialized on the row
	assert.WithinDuration(t, time.Now().Add(defaultLifetime), inv.ExpiresAt, time.Minute)
}

func TestCreate_TokensAreUnique(t *testing.T) {
	svc, _ := setupService(t)

	a, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "a@example.com", Type: domain.InvitationTypeAttendance, SenderID: uuid.New(),
	})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), CreateInput{
		Name: "B", Email: "b@example.com", Type: domain.InvitationTypeAttendance, SenderID: uuid.New(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestCreate_AccountRequiresValidRole(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "a@example.com", Type: domain.InvitationTypeAccount, SenderID: uuid.New(),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "a@example.com", Type: domain.InvitationTypeAccount,
		Role: "superuser", SenderID: uuid.New(),
	})
	require.ErrorAs(t, err, &verr)
}

func TestCreate_SelfInviteRejected(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Me", Email: "me@example.com", Type: domain.InvitationTypeAttendance,
		SenderID: uuid.New(), SenderEmail: "me@example.com",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "You cannot invite yourself", err.Error())
}

func TestCreate_DuplicatePendingRejected(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "a@example.com", Type: domain.InvitationTypeAttendance, SenderID: uuid.New(),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "a@example.com", Type: domain.InvitationTypeAttendance, SenderID: uuid.New(),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreate_PastExpirationRejected(t *testing.T) {
	svc, _ := setupService(t)

	past := time.Now().Add(-time.Hour)
	_, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "a@example.com", Type: domain.InvitationTypeAttendance,
		SenderID: uuid.New(), ExpiresAt: &past,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestVerifyToken_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.VerifyToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.VerifyToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyToken_ReturnsNonPending(t *testing.T) {
	svc, db := setupService(t)
	inv := seedAttendance(t, db, "tok-responded", time.Now().Add(24*time.Hour))
	require.NoError(t, db.Model(inv).Update("status", domain.InvitationStatusAccepted).Error)

	got, err := svc.VerifyToken(context.Background(), "tok-responded")
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationStatusAccepted, got.Status)
}

func TestRespondAttendance_Accept(t *testing.T) {
	svc, db := setupService(t)
	seedAttendance(t, db, "tok-1", time.Now().Add(24*time.Hour))

	status, err := svc.RespondAttendance(context.Background(), "tok-1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationStatusAccepted, status)

	var inv domain.Invitation
	require.NoError(t, db.Where("token = ?", "tok-1").First(&inv).Error)
	assert.Equal(t, domain.InvitationStatusAccepted, inv.Status)
}

func TestRespondAttendance_Reject(t *testing.T) {
	svc, db := setupService(t)
	seedAttendance(t, db, "tok-2", time.Now().Add(24*time.Hour))

	status, err := svc.RespondAttendance(context.Background(), "tok-2", false)
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationStatusRejected, status)
}

func TestRespondAttendance_SecondResponseLoses(t *testing.T) {
	svc, db := setupService(t)
	seedAttendance(t, db, "tok-3", time.Now().Add(24*time.Hour))

	_, err := svc.RespondAttendance(context.Background(), "tok-3", false)
	require.NoError(t, err)

	_, err = svc.RespondAttendance(context.Background(), "tok-3", true)
	assert.ErrorIs(t, err, ErrAlreadyResponded)

	// first decision stands
	var inv domain.Invitation
	require.NoError(t, db.Where("token = ?", "tok-3").First(&inv).Error)
	assert.Equal(t, domain.InvitationStatusRejected, inv.Status)
}

func TestRespondAttendance_TypeMismatch(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, db.Create(&domain.Invitation{
		Name: "A", Email: "a@example.com", Token: "tok-acct",
		Type: domain.InvitationTypeAccount, Role: "user",
		Status: domain.InvitationStatusPending, SenderID: uuid.New(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	_, err := svc.RespondAttendance(context.Background(), "tok-acct", true)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestRespondAttendance_Expired(t *testing.T) {
	svc, db := setupService(t)
	seedAttendance(t, db, "tok-old", time.Now().Add(-time.Hour))

	_, err := svc.RespondAttendance(context.Background(), "tok-old", true)
	assert.ErrorIs(t, err, ErrExpired)

	// row untouched
	var inv domain.Invitation
	require.NoError(t, db.Where("token = ?", "tok-old").First(&inv).Error)
	assert.Equal(t, domain.InvitationStatusPending, inv.Status)
}

func TestRespondAttendance_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.RespondAttendance(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptAccount_CreatesUserAndAcceptsInvite(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, db.Create(&domain.Invitation{
		Name: "New Admin", Email: "admin@example.com", Token: "tok-acct",
		Type: domain.InvitationTypeAccount, Role: "admin",
		Status: domain.InvitationStatusPending, SenderID: uuid.New(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	user, err := svc.AcceptAccount(context.Background(), AcceptAccountInput{
		Token:    "tok-acct",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "New Admin", user.Fullname)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Str0ng!pass", user.PasswordHash)

	var inv domain.Invitation
	require.NoError(t, db.Where("token = ?", "tok-acct").First(&inv).Error)
	assert.Equal(t, domain.InvitationStatusAccepted, inv.Status)
}

func TestAcceptAccount_WeakPassword(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, db.Create(&domain.Invitation{
		Name: "A", Email: "a@example.com", Token: "tok-weak",
		Type: domain.InvitationTypeAccount, Role: "user",
		Status: domain.InvitationStatusPending, SenderID: uuid.New(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	_, err := svc.AcceptAccount(context.Background(), AcceptAccountInput{
		Token: "tok-weak", Password: "short",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// invitation stays pending on failure
	var inv domain.Invitation
	require.NoError(t, db.Where("token = ?", "tok-weak").First(&inv).Error)
	assert.Equal(t, domain.InvitationStatusPending, inv.Status)
}

func TestAcceptAccount_AttendanceTokenRejected(t *testing.T) {
	svc, db := setupService(t)
	seedAttendance(t, db, "tok-att", time.Now().Add(24*time.Hour))

	_, err := svc.AcceptAccount(context.Background(), AcceptAccountInput{
		Token: "tok-att", Password: "Str0ng!pass",
	})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestList_Filters(t *testing.T) {
	svc, db := setupService(t)
	seedAttendance(t, db, "tok-a", time.Now().Add(24*time.Hour))
	require.NoError(t, db.Create(&domain.Invitation{
		Name: "B", Email: "b@example.com", Token: "tok-b",
		Type: domain.InvitationTypeAccount, Role: "user",
		Status: domain.InvitationStatusAccepted, SenderID: uuid.New(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	all, err := svc.List(context.Background(), ListInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.List(context.Background(), ListInput{Status: domain.InvitationStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "tok-a", pending[0].Token)

	accounts, err := svc.List(context.Background(), ListInput{Type: domain.InvitationTypeAccount})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "tok-b", accounts[0].Token)
}

func TestDelete(t *testing.T) {
	svc, db := setupService(t)
	inv := seedAttendance(t, db, "tok-del", time.Now().Add(24*time.Hour))

	require.NoError(t, svc.Delete(context.Background(), inv.ID))

	err := svc.Delete(context.Background(), inv.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
