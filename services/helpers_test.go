package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

var emailSeq int

func nextEmail(prefix string) string {
	emailSeq++
	return fmt.Sprintf("%s%d@test.llpmm.com", prefix, emailSeq)
}

func createStudent(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	student := models.User{
		Name:  name,
		Email: nextEmail("student"),
		Role:  models.RoleStudent,
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func createInstructor(t *testing.T, db *gorm.DB, model models.PaymentModel, pct float64) models.User {
	t.Helper()
	instructor := models.User{
		Name:               "Instructor",
		Email:              nextEmail("instructor"),
		Role:               models.RoleInstructor,
		PaymentModel:       model,
		ProfitSharePercent: pct,
	}
	require.NoError(t, db.Create(&instructor).Error)
	return instructor
}

func createCourse(t *testing.T, db *gorm.DB, fee int64) models.Course {
	t.Helper()
	course := models.Course{Title: "Go Backend Development", Fee: fee, DurationWeeks: 12}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func createBatch(t *testing.T, db *gorm.DB, courseID, instructorID uint, maxStudents int, start time.Time) models.Batch {
	t.Helper()
	batch := models.Batch{
		CourseID:     courseID,
		InstructorID: instructorID,
		Name:         "Batch 1",
		MaxStudents:  maxStudents,
		StartDate:    start,
	}
	require.NoError(t, db.Create(&batch).Error)
	return batch
}

// newLedgerFixture seeds a course, batch and instructor in one call
func newLedgerFixture(t *testing.T, db *gorm.DB, fee int64, maxStudents int, model models.PaymentModel, pct float64) models.Batch {
	t.Helper()
	instructor := createInstructor(t, db, model, pct)
	course := createCourse(t, db, fee)
	return createBatch(t, db, course.ID, instructor.ID, maxStudents, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
}
