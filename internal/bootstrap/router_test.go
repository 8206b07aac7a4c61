package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/repositories/memory"
	"github.com/wmad/library-backend/internal/config"
	"github.com/wmad/library-backend/internal/pkg/auth"
)

const testSecret = "router-test-secret"

const validMember = `{
	"fullname": "Jane Doe",
	"date_of_birth": "1990-05-17",
	"address": "12 Library Lane",
	"phone_number": "555-0100",
	"email": "jane@example.com",
	"start_date": "2024-01-01",
	"expiry_date": "2025-01-01",
	"is_active": true
}`

type testApp struct {
	router *gin.Engine
	store  *memory.Store
	deps   *Dependencies
}

func testConfig() *config.Config {
	cfg := &config.Config{Env: config.EnvTest}
	cfg.JWT.Secret = testSecret
	cfg.JWT.Expiration = "1h"
	cfg.JWT.Issuer = "library.test"
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()
	store := memory.NewStore()
	stores := Stores{
		Members:    store.Members,
		Accounts:   store.Accounts,
		Books:      store.Books,
		Authors:    store.Authors,
		BookIssues: store.BookIssues,
	}
	deps := BuildDependencies(cfg, stores, zerolog.Nop())
	return &testApp{
		router: SetupRouter(cfg, deps, zerolog.Nop()),
		store:  store,
		deps:   deps,
	}
}

func (a *testApp) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// register creates a librarian account and returns its token and id
func (a *testApp) register(t *testing.T, email string) (string, int64) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"hunter2","userRoleId":2}`, strings.Split(email, "@")[0], email)
	rec := a.do(http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestCreateMemberEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/members", validMember, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Regexp(t, `^[0-9A-Z]{6}$`, body["member_code"])
	assert.Equal(t, "Jane Doe", body["fullname"])
	assert.Equal(t, "12 Library Lane", body["address"])
	assert.Equal(t, "555-0100", body["phone_number"])
	assert.Equal(t, "jane@example.com", body["email"])
	assert.Equal(t, "1990-05-17T00:00:00Z", body["date_of_birth"])
	assert.Equal(t, true, body["is_active"])
}

func TestCreateMemberRejectsInvalidPayload(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	payloads := map[string]string{
		"missing is_active": strings.Replace(validMember, `,
	"is_active": true`, "", 1),
		"numeric fullname":  strings.Replace(validMember, `"Jane Doe"`, `42`, 1),
		"string is_active":  strings.Replace(validMember, `"is_active": true`, `"is_active": "yes"`, 1),
		"bad date":          strings.Replace(validMember, `"2024-01-01"`, `"someday"`, 1),
		"not json":          `{"fullname":`,
	}

	for name, payload := range payloads {
		rec := app.do(http.MethodPost, "/api/members", payload, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Equal(t, "Invalid member data", decode(t, rec)["error"], name)
	}
	assert.Equal(t, 0, app.store.Members.Creates())
}

func TestMemberRoutesAuthPlacement(t *testing.T) {
	app := newTestApp(t, testConfig())

	rec := app.do(http.MethodGet, "/api/members", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(http.MethodPost, "/api/members", validMember, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decode(t, rec)["error"])

	for _, path := range []string{"/api/members/1", "/api/books", "/api/user_accounts", "/api/book_issues", "/api/authors", "/api/books/pagination"} {
		rec = app.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAuthGateRejectsBadTokens(t *testing.T) {
	app := newTestApp(t, testConfig())

	rec := app.do(http.MethodGet, "/api/books", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec = app.do(http.MethodGet, "/api/books", "", signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decode(t, rec)["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("Authorization", "Bearer")
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMemberNotFound(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodGet, "/api/members/999", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Member not found", decode(t, rec)["error"])

	rec = app.do(http.MethodGet, "/api/members/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid member ID", decode(t, rec)["error"])
}

func TestMemberUpdateAndDelete(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/members", validMember, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	id := int64(created["id"].(float64))
	path := fmt.Sprintf("/api/members/%d", id)

	update := strings.Replace(validMember, `"Jane Doe"`, `"Jane Q. Doe"`, 1)
	rec = app.do(http.MethodPut, path, update, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode(t, rec)
	assert.Equal(t, "Jane Q. Doe", updated["fullname"])
	assert.Equal(t, created["member_code"], updated["member_code"])

	code := strings.ToLower(created["member_code"].(string))
	rec = app.do(http.MethodGet, "/api/members/code/"+code, "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodDelete, path, "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = app.do(http.MethodDelete, path, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	_, userID := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/auth/login", `{"email":"lib@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])

	rec = app.do(http.MethodPost, "/auth/login", `{"email":"nobody@example.com","password":"hunter2"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])

	rec = app.do(http.MethodPost, "/auth/login", `{"email":"lib@example.com","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	claims, err := app.deps.JWTService.ValidateToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "lib@example.com", user["email"])
	assert.Equal(t, true, user["active"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t, testConfig())
	app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/auth/register", `{"username":"other","email":"lib@example.com","password":"x","userRoleId":2}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists", decode(t, rec)["error"])

	rec = app.do(http.MethodPost, "/auth/register", `{"username":"other","email":"other@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBooksPaginationEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	for i := 1; i <= 25; i++ {
		book := &models.Book{Title: fmt.Sprintf("Book %02d", i), ISBN: fmt.Sprintf("isbn-%02d", i)}
		require.NoError(t, app.store.Books.Create(context.Background(), book))
	}

	rec := app.do(http.MethodGet, "/api/books/pagination?page=1&pageSize=10", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["data"], 10)
	assert.Equal(t, float64(25), body["totalCount"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Equal(t, float64(1), body["currentPage"])

	rec = app.do(http.MethodGet, "/api/books/pagination?page=3&pageSize=10", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["data"], 5)

	rec = app.do(http.MethodGet, "/api/books/pagination?page=abc&pageSize=-4", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, float64(1), body["currentPage"])
	assert.Len(t, body["data"], 10)

	rec = app.do(http.MethodGet, "/api/books/isbn/isbn-07", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Book 07", decode(t, rec)["title"])
}

func TestBookCrudEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/books", `{"title":"Dune","isbn":"9780441013593","genre":"SF"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := int64(decode(t, rec)["id"].(float64))
	path := fmt.Sprintf("/api/books/%d", id)

	rec = app.do(http.MethodPost, "/api/books", `{"title":"Dune","isbn":"9780441013593"}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.do(http.MethodPut, path, `{"publication_year":1965}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Dune", body["title"])
	assert.Equal(t, float64(1965), body["publication_year"])
	assert.Equal(t, "SF", body["genre"])

	rec = app.do(http.MethodDelete, path, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Book deleted"}`, rec.Body.String())

	rec = app.do(http.MethodGet, path, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found", decode(t, rec)["error"])
}

func TestUserAccountProjection(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/user_accounts",
		`{"user_role_id":1,"email":"admin@example.com","username":"admin","password":"s3cret"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.NotContains(t, body, "password")
	assert.Equal(t, false, body["is_activated"])
	assert.Equal(t, true, body["is_active"])
	role := body["user_role"].(map[string]interface{})
	assert.Equal(t, models.RoleAdmin, role["user_role_name"])

	rec = app.do(http.MethodGet, "/api/user_accounts", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	id := int64(body["id"].(float64))
	rec = app.do(http.MethodPut, fmt.Sprintf("/api/user_accounts/%d", id), `{"is_active":false}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["is_active"])

	rec = app.do(http.MethodPost, "/api/user_accounts",
		`{"user_role_id":9,"email":"x@example.com","username":"x","password":"p"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid reference", decode(t, rec)["error"])

	rec = app.do(http.MethodDelete, fmt.Sprintf("/api/user_accounts/%d", id), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User account deleted"}`, rec.Body.String())
}

func TestBookIssueEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, staffID := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/members", validMember, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	member := decode(t, rec)

	rec = app.do(http.MethodPost, "/api/books", `{"title":"Dune","isbn":"9780441013593"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	book := decode(t, rec)

	payload := fmt.Sprintf(`{"member_id":%d,"book_id":%d,"issue_date":"2024-03-01","due_date":"2024-03-15","status_id":1}`,
		int64(member["id"].(float64)), int64(book["id"].(float64)))
	rec = app.do(http.MethodPost, "/api/book_issues", payload, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	issue := decode(t, rec)
	assert.Regexp(t, `^[0-9A-Z]{6}$`, issue["transaction_code"])
	assert.Equal(t, float64(staffID), issue["processed_by_id"])
	assert.Nil(t, issue["return_date"])

	path := fmt.Sprintf("/api/book_issues/%d", int64(issue["id"].(float64)))
	rec = app.do(http.MethodGet, path, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode(t, rec)
	assert.Equal(t, map[string]interface{}{"id": book["id"], "isbn": "9780441013593", "title": "Dune"}, detail["book"])
	assert.Equal(t, member["member_code"], detail["member"].(map[string]interface{})["member_code"])
	assert.Equal(t, "librarian", detail["processed_by"].(map[string]interface{})["user_role_name"])
	assert.Equal(t, map[string]interface{}{"id": float64(1), "name": models.StatusCheckedOut}, detail["status"])

	rec = app.do(http.MethodPut, path, `{"return_date":"2024-03-10","transaction_code":"ZZZZZZ"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.NotNil(t, updated["return_date"])
	assert.Equal(t, float64(1), updated["status_id"])
	assert.Equal(t, issue["transaction_code"], updated["transaction_code"])

	rec = app.do(http.MethodPut, path, `{"return_date":null}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["return_date"])

	rec = app.do(http.MethodGet, "/api/book_issues", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodPost, "/api/book_issues", `{"member_id":1,"book_id":999,"issue_date":"2024-03-01","due_date":"2024-03-15","status_id":1}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodDelete, path, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Book issue deleted"}`, rec.Body.String())
}

func TestAuthorsEndToEnd(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/authors", `{"firstName":"Ursula","lastName":"Le Guin"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := int64(decode(t, rec)["id"].(float64))

	rec = app.do(http.MethodGet, fmt.Sprintf("/api/authors/%d", id), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Le Guin", decode(t, rec)["lastName"])

	rec = app.do(http.MethodGet, "/api/authors/42", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found", decode(t, rec)["error"])
}

func TestAuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 2
	app := newTestApp(t, cfg)

	body := `{"email":"nobody@example.com","password":"x"}`
	for i := 0; i < 2; i++ {
		rec := app.do(http.MethodPost, "/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := app.do(http.MethodPost, "/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests", decode(t, rec)["error"])

	// Only /auth is throttled.
	rec = app.do(http.MethodGet, "/api/members", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	app := newTestApp(t, testConfig())

	rec := app.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])

	rec = app.do(http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", decode(t, rec)["message"])

	rec = app.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "library_http_requests_total")

	rec = app.do(http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decode(t, rec)["error"])

	rec = app.do(http.MethodGet, "/ping", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSwaggerOnlyOutsideProduction(t *testing.T) {
	app := newTestApp(t, testConfig())
	rec := app.do(http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	cfg := testConfig()
	cfg.Env = config.EnvProduction
	prod := newTestApp(t, cfg)
	rec = prod.do(http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmptyStringsReachTheStore(t *testing.T) {
	app := newTestApp(t, testConfig())
	token, _ := app.register(t, "lib@example.com")

	rec := app.do(http.MethodPost, "/api/books", `{"title":"","isbn":"X"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "", decode(t, rec)["title"])

	rec = app.do(http.MethodPost, "/api/books", `{"title":"No ISBN"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/api/user_accounts",
		`{"user_role_id":2,"email":"blank@example.com","username":"","password":"p"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "", decode(t, rec)["username"])

	rec = app.do(http.MethodPost, "/api/user_accounts",
		`{"user_role_id":2,"email":"absent@example.com","password":"p"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/auth/register", `{"username":"reg","email":"","password":"","userRoleId":2}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
