package utils

import (
	"testing"
	"time"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/config"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/database"
	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSchedulerDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func seedInstallment(t *testing.T, db *gorm.DB, status models.InstallmentStatus, due time.Time) models.Installment {
	t.Helper()
	inst := models.Installment{
		PaymentID: 1,
		Number:    1,
		Amount:    50000,
		DueType:   models.DueTypeEnrollment,
		DueDate:   due,
		Status:    status,
	}
	require.NoError(t, db.Create(&inst).Error)
	return inst
}

func TestMarkOverdueInstallments(t *testing.T) {
	db := setupSchedulerDB(t)

	pastPending := seedInstallment(t, db, models.InstallmentStatusPending, time.Now().AddDate(0, 0, -3))
	futurePending := seedInstallment(t, db, models.InstallmentStatusPending, time.Now().AddDate(0, 0, 7))
	pastPaid := seedInstallment(t, db, models.InstallmentStatusPaid, time.Now().AddDate(0, 0, -3))

	flipped := MarkOverdueInstallments()
	assert.Equal(t, 1, flipped)

	var inst models.Installment
	require.NoError(t, db.First(&inst, pastPending.ID).Error)
	assert.Equal(t, models.InstallmentStatusOverdue, inst.Status)

	inst = models.Installment{}
	require.NoError(t, db.First(&inst, futurePending.ID).Error)
	assert.Equal(t, models.InstallmentStatusPending, inst.Status)

	inst = models.Installment{}
	require.NoError(t, db.First(&inst, pastPaid.ID).Error)
	assert.Equal(t, models.InstallmentStatusPaid, inst.Status)
}

func TestMarkOverdueInstallments_Idempotent(t *testing.T) {
	db := setupSchedulerDB(t)

	seedInstallment(t, db, models.InstallmentStatusPending, time.Now().AddDate(0, 0, -1))

	assert.Equal(t, 1, MarkOverdueInstallments())
	assert.Equal(t, 0, MarkOverdueInstallments())
}

func TestMarkOverdueInstallments_EmptyLedger(t *testing.T) {
	setupSchedulerDB(t)
	assert.Equal(t, 0, MarkOverdueInstallments())
}
