package paymentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/config"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/middleware"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"
	routers "github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/routers/paymentRoutes"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var emailSeq int

func nextEmail(prefix string) string {
	emailSeq++
	return fmt.Sprintf("%s%d@test.llpmm.com", prefix, emailSeq)
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	routers.SetupPaymentRoutes(app)
	return app, db
}

func authToken(t *testing.T, db *gorm.DB, role string) string {
	t.Helper()
	user := models.User{Name: "Test " + role, Email: nextEmail("auth"), Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, user.Mobile)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
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

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

// seedInstallmentPlan enrolls a student on a two-installment plan and returns
// the pending ledger rows
func seedInstallmentPlan(t *testing.T, db *gorm.DB, fee int64) (models.Payment, []models.Installment) {
	t.Helper()

	instructor := models.User{Name: "Instructor", Email: nextEmail("instructor"), Role: models.RoleInstructor}
	require.NoError(t, db.Create(&instructor).Error)

	course := models.Course{Title: "Go Backend Development", Fee: fee, DurationWeeks: 12}
	require.NoError(t, db.Create(&course).Error)

	batch := models.Batch{
		CourseID:     course.ID,
		InstructorID: instructor.ID,
		Name:         "Batch 1",
		MaxStudents:  30,
		StartDate:    time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&batch).Error)

	student := models.User{Name: "Student", Email: nextEmail("student"), Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	result, err := services.EnrollStudent(db, services.EnrollRequest{
		BatchID: batch.ID, StudentID: student.ID, PlanType: models.PlanTypeInstallment2,
	})
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, db.Where("enrollment_id = ?", result.EnrollmentID).First(&payment).Error)

	var installments []models.Installment
	require.NoError(t, db.Where("payment_id = ?", payment.ID).Order("number asc").Find(&installments).Error)
	require.Len(t, installments, 2)

	return payment, installments
}

func TestRecordPayment_Success(t *testing.T) {
	app, db := setupTestApp(t)
	token := authToken(t, db, models.RoleAdmin)
	payment, installments := seedInstallmentPlan(t, db, 200000)

	code, payload := doRequest(t, app, "POST", "/payments/record", token, fiber.Map{
		"installment_id": installments[0].ID,
		"payment_id":     payment.ID,
		"payment_method": "CASH",
		"paid_date":      "2026-10-05",
	})

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, payload["status"])
	assert.Equal(t, "Payment recorded successfully!", payload["message"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(100000), data["paid_amount"])
	assert.Equal(t, string(models.PaymentStatusPartial), data["payment_status"])
	assert.NotEmpty(t, data["receipt_ref"])
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	app, db := setupTestApp(t)
	token := authToken(t, db, models.RoleAdmin)
	payment, installments := seedInstallmentPlan(t, db, 200000)

	body := fiber.Map{
		"installment_id": installments[0].ID,
		"payment_id":     payment.ID,
		"payment_method": "CASH",
	}

	code, _ := doRequest(t, app, "POST", "/payments/record", token, body)
	require.Equal(t, fiber.StatusOK, code)

	code, payload := doRequest(t, app, "POST", "/payments/record", token, body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, false, payload["status"])
}

func TestRecordPayment_InstallmentNotFound(t *testing.T) {
	app, db := setupTestApp(t)
	token := authToken(t, db, models.RoleAdmin)

	code, _ := doRequest(t, app, "POST", "/payments/record", token, fiber.Map{
		"installment_id": 9999,
		"payment_id":     1,
		"payment_method": "CASH",
	})

	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestRecordPayment_MissingIDsRejected(t *testing.T) {
	app, db := setupTestApp(t)
	token := authToken(t, db, models.RoleAdmin)

	code, payload := doRequest(t, app, "POST", "/payments/record", token, fiber.Map{
		"payment_method": "CASH",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Installment ID is required!", payload["message"])

	code, payload = doRequest(t, app, "POST", "/payments/record", token, fiber.Map{
		"installment_id": 1,
		"payment_method": "CASH",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Payment ID is required!", payload["message"])
}

func TestRecordPayment_ValidationErrors(t *testing.T) {
	app, db := setupTestApp(t)
	token := authToken(t, db, models.RoleAdmin)

	code, payload := doRequest(t, app, "POST", "/payments/record", token, fiber.Map{
		"installment_id": 1,
		"payment_id":     1,
		"paid_date":      "05-10-2026",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	errs := payload["data"].(map[string]interface{})
	assert.Contains(t, errs, "payment_method")
	assert.Contains(t, errs, "paid_date")
}

func TestRecordPayment_NonAdminForbidden(t *testing.T) {
	app, db := setupTestApp(t)
	token := authToken(t, db, models.RoleInstructor)
	payment, installments := seedInstallmentPlan(t, db, 200000)

	code, _ := doRequest(t, app, "POST", "/payments/record", token, fiber.Map{
		"installment_id": installments[0].ID,
		"payment_id":     payment.ID,
		"payment_method": "CASH",
	})

	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestRecordPayment_RequiresToken(t *testing.T) {
	app, _ := setupTestApp(t)

	code, _ := doRequest(t, app, "POST", "/payments/record", "", fiber.Map{
		"installment_id": 1,
		"payment_id":     1,
		"payment_method": "CASH",
	})

	assert.Equal(t, fiber.StatusUnauthorized, code)
}
