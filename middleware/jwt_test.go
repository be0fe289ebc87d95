package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nadeemahmad9/real-estate/models"
	"github.com/nadeemahmad9/real-estate/utils"
)

func runAdminOnly(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/properties", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AdminOnly()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestAdminOnly_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	rec := runAdminOnly(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_MalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	rec := runAdminOnly(t, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	rec := runAdminOnly(t, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_NonAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateJWT(primitive.NewObjectID(), models.RoleUser)
	require.NoError(t, err)

	rec := runAdminOnly(t, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(userID, models.RoleAdmin)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID primitive.ObjectID
	var gotRole models.Role
	handler := AdminOnly()(func(c echo.Context) error {
		gotID = c.Get("user_id").(primitive.ObjectID)
		gotRole = c.Get("user_role").(models.Role)
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, models.RoleAdmin, gotRole)
}
