package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authRepo "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/repository"
	authUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"
	submissionRepo "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/repository"
	submissionUsecase "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/usecase"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/config"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	cfg := &config.Config{Env: "test", JWTSecret: "test-secret"}
	authUc := authUsecase.NewAuthUsecase(authRepo.NewUserRepository(db), authRepo.NewPasswordHasher(bcrypt.MinCost), authUsecase.NewTokenService(cfg.JWTSecret))
	submissionUc := submissionUsecase.NewSubmissionUsecase(submissionRepo.NewGormSubmissionRepository(db))

	return &testServer{engine: NewHandler(authUc, submissionUc, cfg).Engine(), db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var parsed map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func (s *testServer) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	w, _ := s.do(t, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
		"phone":     "555-0100",
		"password":  "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := s.do(t, http.MethodPost, "/login", "", map[string]string{"email": email, "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}

func testDriveBody() map[string]string {
	return map[string]string{
		"carModel":      "Tesla Model 3",
		"name":          "Ada Lovelace",
		"email":         "ada@example.com",
		"phone":         "555-0100",
		"preferredDate": "2026-11-02",
		"preferredTime": "10:30",
	}
}

func TestEndToEnd_TestDriveFlow(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"phone":     "555-0100",
		"password":  "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully", body["message"])

	w, body = s.do(t, http.MethodPost, "/login", "", map[string]string{"email": "ada@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", body["message"])
	token := body["token"].(string)
	user := body["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "Ada", user["firstName"])
	assert.NotContains(t, user, "password")

	w, _ = s.do(t, http.MethodGet, "/my-test-drives", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w, body = s.do(t, http.MethodPost, "/test-drive", token, testDriveBody())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Test drive scheduled successfully", body["message"])
	id, ok := body["testDriveId"].(float64)
	require.True(t, ok, "testDriveId should be numeric")
	assert.NotZero(t, id)

	w, _ = s.do(t, http.MethodGet, "/my-test-drives", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var drives []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drives))
	require.Len(t, drives, 1)
	assert.Equal(t, id, drives[0]["id"])
	assert.Equal(t, "Tesla Model 3", drives[0]["carModel"])
	assert.Equal(t, "2026-11-02", drives[0]["preferredDate"])
	assert.Equal(t, "10:30", drives[0]["preferredTime"])
	assert.NotEmpty(t, drives[0]["createdAt"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t, "ada@example.com")

	w, body := s.do(t, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Ada",
		"lastName":  "Again",
		"email":     "ada@example.com",
		"phone":     "555-0101",
		"password":  "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestRegister_MissingField(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/register", "", map[string]string{
		"firstName": "Ada",
		"email":     "ada@example.com",
		"phone":     "555",
		"password":  "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: lastName", body["message"])
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin(t, "ada@example.com")

	w, body := s.do(t, http.MethodPost, "/login", "", map[string]string{"email": "ada@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "ada@example.com")
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	flipped := "A"
	if parts[2][0] == 'A' {
		flipped = "B"
	}
	tampered := parts[0] + "." + parts[1] + "." + flipped + parts[2][1:]

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/my-test-drives"},
		{http.MethodPost, "/test-drive"},
		{http.MethodPost, "/contact"},
		{http.MethodPost, "/financing-request"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w, body := s.do(t, rt.method, rt.path, "", map[string]string{})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Authentication token required", body["message"])

			w, body = s.do(t, rt.method, rt.path, tampered, map[string]string{})
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "Invalid or expired token", body["message"])
		})
	}
}

func TestTestDrive_MissingFieldCreatesNothing(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "ada@example.com")

	payload := testDriveBody()
	delete(payload, "preferredTime")

	w, body := s.do(t, http.MethodPost, "/test-drive", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "preferredTime")

	var count int64
	require.NoError(t, s.db.Model(&domain.TestDrive{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContact(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "ada@example.com")

	w, body := s.do(t, http.MethodPost, "/contact", token, map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"phone":    "555",
		"interest": "SUV",
		"message":  "Do you have a blue one?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Message sent successfully", body["message"])
	assert.NotZero(t, body["messageId"])
}

func TestFinancingRequest(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "ada@example.com")

	base := func(amount, term any) map[string]any {
		return map[string]any{"name": "Ada", "email": "ada@example.com", "phone": "555", "amount": amount, "term": term}
	}

	w, body := s.do(t, http.MethodPost, "/financing-request", token, base(-5, 36))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid loan amount", body["message"])

	w, body = s.do(t, http.MethodPost, "/financing-request", token, base(1000, "zero"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid loan term", body["message"])

	var count int64
	require.NoError(t, s.db.Model(&domain.FinancingRequest{}).Count(&count).Error)
	assert.Zero(t, count)

	w, body = s.do(t, http.MethodPost, "/financing-request", token, base(1000, 36))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Financing request submitted successfully. A specialist will contact you soon.", body["message"])
	assert.NotZero(t, body["financingRequestId"])

	var stored domain.FinancingRequest
	require.NoError(t, s.db.First(&stored).Error)
	assert.Equal(t, 1000.0, stored.Amount)
	assert.Equal(t, 36, stored.Term)
}

func TestInvalidJSONBody(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin(t, "ada@example.com")

	req := httptest.NewRequest(http.MethodPost, "/test-drive", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, w.Body.String())
}

func TestRootAndMisc(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AutoHub Backend is running!", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w, body := s.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", body["message"])

	req := httptest.NewRequest(http.MethodOptions, "/test-drive", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5500", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(requestIDMiddleware(), recoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Something went wrong on the server!"}`, w.Body.String())
}
