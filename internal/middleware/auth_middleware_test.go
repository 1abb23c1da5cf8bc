package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(*model.User) error       { return nil }
func (f *fakeUserRepo) Update(*model.User) error       { return nil }
func (f *fakeUserRepo) Delete(uuid.UUID) error         { return nil }
func (f *fakeUserRepo) FindAll() ([]model.User, error) { return nil, nil }

func newAuthApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(repo), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals("username"), "role": c.Locals("user_role")})
	})
	app.Get("/admin-only", RequireAuth(repo), RequireRole(model.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func seedUser(role string, active bool) (*fakeUserRepo, *model.User, string) {
	user := &model.User{Username: "alice", Role: role, IsActive: active}
	user.ID = uuid.New()
	token, _ := jwt.GenerateToken(user.ID, user.Username, user.Role)
	repo := &fakeUserRepo{users: map[uuid.UUID]*model.User{user.ID: user}}
	return repo, user, token
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	repo, _, _ := seedUser(model.RoleStaff, true)
	app := newAuthApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	repo, _, token := seedUser(model.RoleStaff, true)
	app := newAuthApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token) // missing the Bearer prefix
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	repo, _, token := seedUser(model.RoleStaff, true)
	app := newAuthApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_InactiveUser(t *testing.T) {
	repo, _, token := seedUser(model.RoleStaff, false)
	app := newAuthApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	repo, _, _ := seedUser(model.RoleStaff, true)
	app := newAuthApp(repo)

	strangerToken, err := jwt.GenerateToken(uuid.New(), "stranger", model.RoleStaff)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+strangerToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_StaffBlocked(t *testing.T) {
	repo, _, token := seedUser(model.RoleStaff, true)
	app := newAuthApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	repo, _, token := seedUser(model.RoleAdmin, true)
	app := newAuthApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
