package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/phixelforge/internal/auth"
	"github.com/sbilibin2017/phixelforge/internal/config"
	"github.com/sbilibin2017/phixelforge/internal/events"
	"github.com/sbilibin2017/phixelforge/internal/genai"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestNewVerifier_HMAC(t *testing.T) {
	verifier, err := newVerifier(context.Background(), config.AuthConfig{
		Mode:       config.AuthModeHMAC,
		HMACSecret: "secret",
		TokenTTL:   time.Minute,
	})
	require.NoError(t, err)
	assert.IsType(t, &auth.JWT{}, verifier)
}

const testSecret = "router_test_secret"

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		App:    config.AppConfig{BaseURL: "http://localhost:8080"},
		Upload: config.UploadConfig{MaxBytes: 1 << 20},
	}
	deps := dependencies{
		verifier:  auth.New(auth.WithSecretKey(testSecret)),
		publisher: events.NewPublisher(nil),
		generator: genai.New(genai.Options{BaseURL: "http://127.0.0.1:1"}),
	}
	return newRouter(cfg, sqlx.NewDb(sqlDB, "sqlmock"), deps), mock
}

func TestRouter_Health(t *testing.T) {
	router, mock := newTestRouter(t)
	mock.ExpectPing()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Metrics(t *testing.T) {
	router, mock := newTestRouter(t)
	mock.ExpectPing()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `phixelforge_http_requests_total{method="GET",route="/healthz",status="200"}`))
}

func TestRouter_PublicCollections(t *testing.T) {
	router, mock := newTestRouter(t)

	id := uuid.New()
	mock.ExpectQuery("FROM collections c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "is_featured", "created_at", "image_count"}).
			AddRow(id.String(), "Nature", nil, true, time.Now(), 3))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/collections", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Collections []models.Collection `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Collections, 1)
	assert.Equal(t, "Nature", body.Collections[0].Name)
	assert.Equal(t, 3, body.Collections[0].ImageCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/images"},
		{http.MethodGet, "/api/images/user"},
		{http.MethodPost, "/api/likes"},
		{http.MethodGet, "/api/albums"},
		{http.MethodPost, "/api/generate"},
		{http.MethodPost, "/api/search/similar"},
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_UploadsDisabledWithoutStorage(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/uploads", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_UserImagesRunInTransaction(t *testing.T) {
	router, mock := newTestRouter(t)

	token, err := auth.New(auth.WithSecretKey(testSecret)).Generate(context.Background(), models.Identity{UID: "uid-1"})
	require.NoError(t, err)

	userID := uuid.New()
	now := time.Now()
	mock.ExpectQuery("FROM users").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "email", "display_name", "avatar_url", "created_at", "updated_at"}).
			AddRow(userID.String(), "uid-1", nil, nil, nil, now, now))
	mock.ExpectBegin()
	mock.ExpectQuery("FROM images").
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "file_path", "file_size",
			"mime_type", "width", "height", "tags", "is_public", "created_at", "updated_at"}))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodGet, "/api/images/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"images":[]}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
