package applicationController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"visafy/config"
	"visafy/database"
	"visafy/middleware"
	"visafy/models"
	"visafy/repository"
	applicationRoutes "visafy/routers/applicationRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 6}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Application{},
		&models.ApplicationFieldValue{},
		&models.Document{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	applicationRoutes.SetupApplicationRoutes(app)
	return app, db
}

func authedUser(t *testing.T, db *gorm.DB, email string) (*models.User, string) {
	t.Helper()

	user := models.User{FullName: "Test User", Email: email, Password: "hashed", Role: models.RoleClient}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	require.NoError(t, err)
	return &user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*apiResponse, int) {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return &parsed, resp.StatusCode
}

func TestListApplicationsRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/applications", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSaveStepThenList(t *testing.T) {
	app, db := setupApp(t)
	_, token := authedUser(t, db, "alice@example.com")

	resp, code := doJSON(t, app, "POST", "/applications", token, fiber.Map{
		"step":        1,
		"fields":      fiber.Map{"visaType": "work_visa"},
		"visaType":    "work_visa",
		"currentStep": 2,
	})
	require.Equal(t, fiber.StatusOK, code)

	var saved struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &saved))
	require.NotZero(t, saved.ApplicationID)

	resp, code = doJSON(t, app, "GET", "/applications", token, nil)
	require.Equal(t, fiber.StatusOK, code)

	var apps []repository.ApplicationWithData
	require.NoError(t, json.Unmarshal(resp.Data, &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, saved.ApplicationID, apps[0].ID)
	assert.Equal(t, "work_visa", apps[0].Fields["visaType"])
	assert.Equal(t, 2, apps[0].CurrentStep)
	assert.Equal(t, models.StatusDraft, apps[0].Status)
}

func TestSaveStepStaleIDReturns404(t *testing.T) {
	app, db := setupApp(t)
	_, token := authedUser(t, db, "alice@example.com")

	_, code := doJSON(t, app, "POST", "/applications", token, fiber.Map{
		"applicationId": 9999,
		"step":          2,
		"fields":        fiber.Map{"nationality": "France"},
	})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestSaveStepForeignApplicationReturns404(t *testing.T) {
	app, db := setupApp(t)
	_, aliceToken := authedUser(t, db, "alice@example.com")
	_, bobToken := authedUser(t, db, "bob@example.com")

	resp, code := doJSON(t, app, "POST", "/applications", aliceToken, fiber.Map{
		"step":   1,
		"fields": fiber.Map{"visaType": "student_visa"},
	})
	require.Equal(t, fiber.StatusOK, code)

	var saved struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &saved))

	_, code = doJSON(t, app, "POST", "/applications", bobToken, fiber.Map{
		"applicationId": saved.ApplicationID,
		"step":          1,
		"fields":        fiber.Map{"visaType": "golden_visa"},
	})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestSaveStepRejectsBadVisaType(t *testing.T) {
	app, db := setupApp(t)
	_, token := authedUser(t, db, "alice@example.com")

	_, code := doJSON(t, app, "POST", "/applications", token, fiber.Map{
		"step":     1,
		"fields":   fiber.Map{"visaType": "space_visa"},
		"visaType": "space_visa",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestSubmitFlow(t *testing.T) {
	app, db := setupApp(t)
	_, token := authedUser(t, db, "alice@example.com")

	resp, code := doJSON(t, app, "POST", "/applications", token, fiber.Map{
		"step":   1,
		"fields": fiber.Map{"visaType": "work_visa"},
	})
	require.Equal(t, fiber.StatusOK, code)

	var saved struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &saved))

	_, code = doJSON(t, app, "POST", "/applications/submit", token, fiber.Map{
		"applicationId": saved.ApplicationID,
	})
	require.Equal(t, fiber.StatusOK, code)

	var submitted models.Application
	require.NoError(t, db.First(&submitted, saved.ApplicationID).Error)
	assert.Equal(t, models.StatusSubmitted, submitted.Status)
	assert.Equal(t, models.MaxStep, submitted.CurrentStep)

	// Submitting again is idempotent in effect
	_, code = doJSON(t, app, "POST", "/applications/submit", token, fiber.Map{
		"applicationId": saved.ApplicationID,
	})
	assert.Equal(t, fiber.StatusOK, code)
}

func TestSubmitMissingIDReturns400(t *testing.T) {
	app, db := setupApp(t)
	_, token := authedUser(t, db, "alice@example.com")

	_, code := doJSON(t, app, "POST", "/applications/submit", token, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestSubmitForeignApplicationReturns404(t *testing.T) {
	app, db := setupApp(t)
	_, aliceToken := authedUser(t, db, "alice@example.com")
	_, bobToken := authedUser(t, db, "bob@example.com")

	resp, code := doJSON(t, app, "POST", "/applications", aliceToken, fiber.Map{
		"step":   1,
		"fields": fiber.Map{},
	})
	require.Equal(t, fiber.StatusOK, code)

	var saved struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &saved))

	_, code = doJSON(t, app, "POST", "/applications/submit", bobToken, fiber.Map{
		"applicationId": saved.ApplicationID,
	})
	assert.Equal(t, fiber.StatusNotFound, code)
}
