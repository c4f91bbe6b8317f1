package repositories

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"HospitalRecords/database"
	"HospitalRecords/models"
)

// testDB opens an isolated in-memory store with the duplicate-key
// translation the repositories rely on, migrated to the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seed inserts a row directly, bypassing repository validation.
func seed(t *testing.T, db *gorm.DB, row any) {
	t.Helper()
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", row, err)
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count %T rows: %v", model, err)
	}
	return n
}

func seedPatient(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	seed(t, db, &models.Patient{
		PatientID:     id,
		Name:          "Seed Patient",
		Age:           30,
		Gender:        "F",
		AdmissionDate: "2024-01-01",
		ContactNo:     "0123456789",
	})
}

func seedDoctor(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	seed(t, db, &models.Doctor{
		DoctorID:       id,
		Name:           "Seed Doctor",
		Specialization: "General",
		ContactNo:      "0123456789",
	})
}
