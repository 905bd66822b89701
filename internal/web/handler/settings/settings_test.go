package settings

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.AdminSettings{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	app := fiber.New()

	service := &Service{}
	require.NoError(t, service.Init(app, &config.Config{}, db))

	return app, db
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(data)
}

func TestGetBeforeFirstSave(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{}`, readBody(t, resp))
}

func TestPutThenGet(t *testing.T) {
	app, db := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, Path,
		`{"name":"Jane","email":"jane@x.com","bio":"dev","email_notifications":true}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, readBody(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var settings models.AdminSettings
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &settings))
	assert.Equal(t, "Jane", settings.Name)
	assert.True(t, settings.EmailNotifications)
	assert.False(t, settings.PushNotifications)

	// exactly one row, fixed ID
	var count int64
	require.NoError(t, db.Model(&models.AdminSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPutReplacesWholeRecord(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.AdminSettings{
		ID:                 models.AdminSettingsID,
		Name:               "Old",
		EmailNotifications: true,
		WeeklyDigest:       true,
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodPut, Path, `{"name":"New"}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved models.AdminSettings
	require.NoError(t, db.First(&saved, models.AdminSettingsID).Error)
	assert.Equal(t, "New", saved.Name)
	assert.False(t, saved.EmailNotifications, "absent flags reset to false")
	assert.False(t, saved.WeeklyDigest)
}

func TestPutValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad email", body: `{"email":"not-an-email"}`},
		{name: "bad website", body: `{"website":"not a url"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupApp(t)

			resp, err := app.Test(jsonRequest(http.MethodPut, Path, tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
