package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"mnp-portal/internal/adapters/http/middleware"
	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/config"
	"mnp-portal/internal/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "5002",
		JWT:     config.JWTConfig{Secret: testSecret},
	}
	config.AppConfig = cfg

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	Setup(app, db, cfg)

	return app, db
}

// request performs a JSON request and decodes the response body into out
func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func registerUser(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	var body struct {
		Token string `json:"token"`
	}
	status := request(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	}, &body)
	require.Equal(t, fiber.StatusCreated, status)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Asha", "asha@example.com", "portability")

	var errBody struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	status := request(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     "Imposter",
		"email":    "asha@example.com",
		"password": "other",
	}, &errBody)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "User already exists", errBody.Message)
	assert.Empty(t, errBody.Token)

	// first account still works
	var login struct {
		Token string `json:"token"`
	}
	status = request(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "portability",
	}, &login)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, login.Token)
}

func TestLoginFailures(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Asha", "asha@example.com", "portability")

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}

	status := request(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrong",
	}, &body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid credentials", body.Message)
	assert.Empty(t, body.Token)

	status = request(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "ghost@example.com",
		"password": "whatever",
	}, &body)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestLoginTokenSubjectMatchesUser(t *testing.T) {
	app, db := newTestApp(t)

	registerUser(t, app, "Asha", "asha@example.com", "portability")

	var login struct {
		Token string `json:"token"`
	}
	status := request(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "portability",
	}, &login)
	require.Equal(t, fiber.StatusOK, status)

	var user models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)

	claims, err := jwt.ValidateToken(login.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	app, db := newTestApp(t)

	// no token
	status := request(t, app, "GET", "/complaints", "", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// malformed token
	status = request(t, app, "GET", "/complaints", "garbage", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// expired token for a real user
	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	expired, err := jwt.GenerateTokenWithLifetime(user.ID, testSecret, -time.Hour)
	require.NoError(t, err)
	status = request(t, app, "GET", "/complaints", expired, nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// valid token for a user that no longer exists
	orphan, err := jwt.GenerateToken(user.ID+1000, testSecret)
	require.NoError(t, err)
	status = request(t, app, "GET", "/complaints", orphan, nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestComplaintFlowIsOwnerScoped(t *testing.T) {
	app, _ := newTestApp(t)

	tokenA := registerUser(t, app, "Asha", "asha@example.com", "portability")
	tokenB := registerUser(t, app, "Ravi", "ravi@example.com", "snapback")

	var created models.Complaint
	status := request(t, app, "POST", "/complaints", tokenA, fiber.Map{
		"reason": "billing",
		"user":   9999, // must be ignored
	}, &created)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "billing", created.Reason)
	assert.Equal(t, "pending", created.Status)
	assert.NotEqual(t, uint(9999), created.UserID)

	var mine []models.Complaint
	status = request(t, app, "GET", "/complaints", tokenA, nil, &mine)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, mine, 1)
	assert.Equal(t, "billing", mine[0].Reason)
	assert.Equal(t, "pending", mine[0].Status)

	var theirs []models.Complaint
	status = request(t, app, "GET", "/complaints", tokenB, nil, &theirs)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, theirs)
}

func TestComplaintStatusUpdateMovesStats(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "Asha", "asha@example.com", "portability")

	var created models.Complaint
	status := request(t, app, "POST", "/complaints", token, fiber.Map{"reason": "billing"}, &created)
	require.Equal(t, fiber.StatusCreated, status)

	var stats struct {
		PendingComplaints  int64 `json:"pendingComplaints"`
		ResolvedComplaints int64 `json:"resolvedComplaints"`
		FailedComplaints   int64 `json:"failedComplaints"`
	}
	status = request(t, app, "GET", "/dashboard/stats", token, nil, &stats)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int64(1), stats.PendingComplaints)
	assert.Equal(t, int64(0), stats.ResolvedComplaints)

	var updated models.Complaint
	status = request(t, app, "PUT", "/complaints/"+itoa(created.ID), token, fiber.Map{"status": "resolved"}, &updated)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "resolved", updated.Status)

	status = request(t, app, "GET", "/dashboard/stats", token, nil, &stats)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int64(0), stats.PendingComplaints)
	assert.Equal(t, int64(1), stats.ResolvedComplaints)
	assert.Equal(t, int64(0), stats.FailedComplaints)
}

func TestReasonAnalysisOrdering(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "Asha", "asha@example.com", "portability")
	for _, reason := range []string{"billing", "billing", "network"} {
		status := request(t, app, "POST", "/complaints", token, fiber.Map{"reason": reason}, nil)
		require.Equal(t, fiber.StatusCreated, status)
	}

	var analysis []struct {
		Reason string `json:"_id"`
		Count  int64  `json:"count"`
	}
	status := request(t, app, "GET", "/dashboard/reasons/analysis", token, nil, &analysis)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, analysis, 2)
	assert.Equal(t, "billing", analysis[0].Reason)
	assert.Equal(t, int64(2), analysis[0].Count)
	assert.Equal(t, "network", analysis[1].Reason)
	assert.Equal(t, int64(1), analysis[1].Count)
}

func TestPortInCreateAndList(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "Asha", "asha@example.com", "portability")

	// missing required field
	var errBody struct {
		Message string `json:"message"`
	}
	status := request(t, app, "POST", "/port-in", token, fiber.Map{
		"number": "9876543210",
		"circle": "Delhi",
		"date":   "2024-05-01",
	}, &errBody)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Operator is required", errBody.Message)

	status = request(t, app, "POST", "/port-in", token, fiber.Map{
		"number":   "9876543210",
		"operator": "AirWave",
		"circle":   "Delhi",
		"date":     "2024-05-01",
	}, nil)
	require.Equal(t, fiber.StatusCreated, status)

	var records []models.PortIn
	status = request(t, app, "GET", "/port-in", token, nil, &records)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, records, 1)
	assert.Equal(t, "AirWave", records[0].Operator)

	// the export route serves the same raw dump
	var exported []models.PortIn
	status = request(t, app, "GET", "/export/port-in", token, nil, &exported)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, exported, 1)
}

func TestSubscribersListViaPostAndSearch(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "Asha", "asha@example.com", "portability")

	status := request(t, app, "POST", "/subscribers/create", token, fiber.Map{
		"MSISDN": 9876543210,
		"ZONE":   4,
		"LSA":    "DL",
		"STATUS": "ACTIVE",
	}, nil)
	require.Equal(t, fiber.StatusCreated, status)

	status = request(t, app, "POST", "/subscribers/create", token, fiber.Map{
		"MSISDN": 9876543211,
		"ZONE":   4,
		"LSA":    "MH",
		"STATUS": "PORTED",
	}, nil)
	require.Equal(t, fiber.StatusCreated, status)

	// list is exposed via POST, matching the shipped frontend
	var all []models.Subscriber
	status = request(t, app, "POST", "/subscribers", token, nil, &all)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, all, 2)

	var filtered []models.Subscriber
	status = request(t, app, "GET", "/subscribers/search?status=ACTIVE", token, nil, &filtered)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, filtered, 1)
	assert.Equal(t, "DL", filtered[0].LSA)

	// pagination caps the page size
	var paged []models.Subscriber
	status = request(t, app, "GET", "/subscribers/search?limit=1&page=2", token, nil, &paged)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, paged, 1)
}

func TestLogoutIsStateless(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "Asha", "asha@example.com", "portability")

	var ack struct {
		Message string `json:"message"`
	}
	status := request(t, app, "POST", "/auth/logout", "", nil, &ack)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Logged out successfully", ack.Message)

	// the token is still valid until it expires
	status = request(t, app, "GET", "/complaints", token, nil, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
