package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annberg/bookmart/internal/backend"
	"github.com/annberg/bookmart/internal/domain/models"
	"github.com/annberg/bookmart/internal/server/mocks"
)

func TestServer_register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := map[string]any{
		"username":   "alice",
		"password":   "secret-pass",
		"email":      "alice@example.com",
		"first_name": "Alice",
		"last_name":  "Liddell",
	}

	t.Run("success", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(t, http.MethodPost, "/register", payload)
		s.Register(ctx)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "success")
	})

	t.Run("short password rejected locally", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		bad := map[string]any{
			"username":   "alice",
			"password":   "short",
			"email":      "alice@example.com",
			"first_name": "Alice",
			"last_name":  "Liddell",
		}
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(t, http.MethodPost, "/register", bad)
		s.Register(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password")
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&backend.APIError{Status: http.StatusConflict, Message: "username already exists"})

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(t, http.MethodPost, "/register", payload)
		s.Register(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "username already exists")
	})
}

func TestServer_login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().Login(gomock.Any(), "alice", "secret-pass").
			Return(backend.LoginResult{Token: "tok123", Role: models.RoleCustomer}, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(t, http.MethodPost, "/login",
			map[string]any{"username": "alice", "password": "secret-pass"})
		s.Login(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok123", w.Header().Get("Authorization"))
		assert.Contains(t, w.Body.String(), `"access_token":"tok123"`)
		assert.Contains(t, w.Body.String(), models.RoleCustomer)
	})

	t.Run("missing password", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(t, http.MethodPost, "/login", map[string]any{"username": "alice"})
		s.Login(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockGW := mocks.NewMockGateway(ctrl)
		s := newTestServer(mockGW)
		defer s.Debounce.Stop()

		mockGW.EXPECT().Login(gomock.Any(), "alice", "wrong-pass").
			Return(backend.LoginResult{}, &backend.APIError{Status: http.StatusUnauthorized, Message: "wrong credentials"})

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(t, http.MethodPost, "/login",
			map[string]any{"username": "alice", "password": "wrong-pass"})
		s.Login(ctx)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "wrong credentials")
	})
}

func TestServer_jwtMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGateway(ctrl)
	s := newTestServer(mockGW)
	defer s.Debounce.Stop()

	router := gin.New()
	router.GET("/me", s.JWTAuthMiddleware(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString("username"))
	})
	router.GET("/admin/ping", s.JWTAuthRoleMiddleware(models.RoleAdmin), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "alice", models.RoleCustomer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("customer blocked from admin surface", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "alice", models.RoleCustomer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Access denied")
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "boss", models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
