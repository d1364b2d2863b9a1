package user

import (
	"context"
	"testing"

	"confera-backend/internal/domain"
	"confera-backend/internal/pkg/constants"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return &Service{DB: db}, db
}

func TestRegister_Success(t *testing.T) {
	svc, _ := setupUserService(t)

	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname:    "Jane Doe",
		Email:       "Jane@Example.com",
		Password:    "Str0ng!pass",
		Affiliation: "MIT",
		Country:     "US",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, constants.User, u.Role)
	assert.NotEmpty(t, u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Str0ng!pass")))
}

func TestRegister_WeakPassword(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Jane Doe", Email: "jane@example.com", Password: "weakpass",
	})
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Jane Doe", Email: "jane@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		Fullname: "Other Jane", Email: "JANE@example.com", Password: "Str0ng!pass",
	})
	require.Error(t, err)
	assert.Equal(t, "Email already registered", err.Error())
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := setupUserService(t)
	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Jane Doe", Email: "jane@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), u.UserID.String(), UpdateProfileInput{
		Fullname: "Jane D.", Affiliation: "Stanford",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", updated.Fullname)
	assert.Equal(t, "Stanford", updated.Affiliation)
	assert.Equal(t, "jane@example.com", updated.Email)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	svc, _ := setupUserService(t)
	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Jane Doe", Email: "jane@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), u.UserID.String(), UpdateProfileInput{})
	assert.Error(t, err)
}

func TestUpdateProfile_WeakNewPassword(t *testing.T) {
	svc, _ := setupUserService(t)
	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Jane Doe", Email: "jane@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), u.UserID.String(), UpdateProfileInput{Password: "weak"})
	assert.Error(t, err)
}

func TestView(t *testing.T) {
	svc, _ := setupUserService(t)
	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Jane Doe", Email: "jane@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	got, err := svc.View(context.Background(), u.UserID.String())
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = svc.View(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())
}

func TestDelete_SelfDeleteRejected(t *testing.T) {
	svc, _ := setupUserService(t)
	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Admin", Email: "admin@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), u.UserID.String(), u.UserID.String())
	require.Error(t, err)
	assert.Equal(t, "You cannot delete your own account", err.Error())
}

func TestDelete(t *testing.T) {
	svc, db := setupUserService(t)
	admin, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Admin", Email: "admin@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	target, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Target", Email: "target@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), admin.UserID.String(), target.UserID.String()))

	err = db.Where("user_id = ?", target.UserID).First(&domain.User{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(context.Background(), admin.UserID.String(), target.UserID.String())
	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())
}
