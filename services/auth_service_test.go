package services

import (
	"testing"

	"headless-cms/config"
	"headless-cms/i18n"
	"headless-cms/models"
	"headless-cms/validators"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

// PromoteFirstAdmin mirrors the SQL contract: the account is promoted iff it
// is the oldest live one and no admin exists yet.
func (f *fakeUserRepo) PromoteFirstAdmin(id uint) (bool, error) {
	user, ok := f.users[id]
	if !ok {
		return false, nil
	}
	for _, other := range f.users {
		if other.ID < id || other.IsAdmin() {
			return false, nil
		}
	}
	user.Roles = models.RoleList{models.RoleAdmin}
	return true, nil
}

func newAuthServiceForTest(repo *fakeUserRepo) AuthService {
	config.InitJWT("test-secret")
	return NewAuthService(repo, validators.New(i18n.LocaleES), zerolog.Nop())
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo)

	resp, err := svc.Register(models.RegisterRequest{Email: "first@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsAdmin())
	assert.True(t, repo.users[resp.User.ID].IsAdmin())
}

func TestRegisterSecondUserStaysEditor(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo)

	_, err := svc.Register(models.RegisterRequest{Email: "first@example.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Register(models.RegisterRequest{Email: "second@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.False(t, resp.User.IsAdmin())
	assert.True(t, resp.User.Roles.Has(models.RoleEditor))
}

func TestFirstAdminPromotionPicksOneWinnerAfterConcurrentSignups(t *testing.T) {
	// Two signups land before either promotion runs. The older row must win
	// and the other must not, regardless of which promotion runs first.
	repo := newFakeUserRepo()
	older := &models.User{Email: "older@example.com", Roles: models.RoleList{models.RoleEditor}}
	newer := &models.User{Email: "newer@example.com", Roles: models.RoleList{models.RoleEditor}}
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(newer))

	promoted, err := repo.PromoteFirstAdmin(older.ID)
	require.NoError(t, err)
	assert.True(t, promoted)

	promoted, err = repo.PromoteFirstAdmin(newer.ID)
	require.NoError(t, err)
	assert.False(t, promoted)

	assert.True(t, repo.users[older.ID].IsAdmin())
	assert.False(t, repo.users[newer.ID].IsAdmin())
}

func TestFirstAdminPromotionNewerRowNeverWins(t *testing.T) {
	// Same interleaving with the promotion order reversed: the newer row asks
	// first and is refused, so an admin still exists once the older row asks.
	repo := newFakeUserRepo()
	older := &models.User{Email: "older@example.com", Roles: models.RoleList{models.RoleEditor}}
	newer := &models.User{Email: "newer@example.com", Roles: models.RoleList{models.RoleEditor}}
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(newer))

	promoted, err := repo.PromoteFirstAdmin(newer.ID)
	require.NoError(t, err)
	assert.False(t, promoted)

	promoted, err = repo.PromoteFirstAdmin(older.ID)
	require.NoError(t, err)
	assert.True(t, promoted)

	assert.True(t, repo.users[older.ID].IsAdmin())
	assert.False(t, repo.users[newer.ID].IsAdmin())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo)

	_, err := svc.Register(models.RegisterRequest{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{Email: "dup@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo())

	_, err := svc.Register(models.RegisterRequest{Email: "not-an-email", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, "Por favor ingresa un email válido", err.Error())

	_, err = svc.Register(models.RegisterRequest{Email: "ok@example.com", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", err.Error())
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo)

	resp, err := svc.Register(models.RegisterRequest{Email: "hash@example.com", Password: "password123"})
	require.NoError(t, err)

	stored := repo.users[resp.User.ID]
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo)

	_, err := svc.Register(models.RegisterRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "login@example.com", resp.User.Email)

	_, err = svc.Login(models.LoginRequest{Email: "login@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	_, err = svc.Login(models.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}
