package repositories

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"HospitalRecords/models"
	"HospitalRecords/utils"
)

func newTestAppointment(id, patientID, doctorID, date string) *models.Appointment {
	return &models.Appointment{
		ApptID:           id,
		PatientID:        patientID,
		DoctorID:         doctorID,
		Date:             date,
		Diagnosis:        "Flu",
		ConsultingCharge: 100,
	}
}

func TestAppointmentCreate(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)
	ctx := context.Background()

	a := newTestAppointment("A1", "1", "D1", "2024-03-01")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "A1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *a {
		t.Errorf("GetByID = %+v, want %+v", got, a)
	}
}

func TestAppointmentCreateMissingPatient(t *testing.T) {
	db := testDB(t)
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)

	err := repo.Create(context.Background(), newTestAppointment("A1", "9", "D1", "2024-03-01"))
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Entity != "Patient" || refErr.ID != "9" {
		t.Errorf("ReferenceError = %+v", refErr)
	}
	if n := countRows(t, db, &models.Appointment{}); n != 0 {
		t.Errorf("appointments table has %d rows, want 0", n)
	}
}

func TestAppointmentCreateMissingDoctor(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	repo := NewAppointmentRepository(db, nil)

	err := repo.Create(context.Background(), newTestAppointment("A1", "1", "D9", "2024-03-01"))
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Entity != "Doctor" {
		t.Errorf("ReferenceError.Entity = %q, want Doctor", refErr.Entity)
	}
}

func TestAppointmentDeleteLeavesNoOrphanCheck(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)
	ctx := context.Background()

	if err := repo.Create(ctx, newTestAppointment("A1", "1", "D1", "2024-03-01")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Existence is checked only on insert; removing the patient leaves
	// the appointment behind.
	if err := db.Delete(&models.Patient{}, "patient_id = ?", "1").Error; err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if _, err := repo.GetByID(ctx, "A1"); err != nil {
		t.Fatalf("GetByID after patient delete: %v", err)
	}
}

func TestAppointmentFilterByDateRange(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)
	ctx := context.Background()

	for _, a := range []*models.Appointment{
		newTestAppointment("A1", "1", "D1", "2024-01-05"),
		newTestAppointment("A2", "1", "D1", "2024-01-10"),
		newTestAppointment("A3", "1", "D1", "2024-02-01"),
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s): %v", a.ApptID, err)
		}
	}

	rows, err := repo.FilterByDateRange(ctx, "2024-01-05", "2024-01-10")
	if err != nil {
		t.Fatalf("FilterByDateRange: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (range is inclusive)", len(rows))
	}
	if rows[0].ApptID != "A1" || rows[1].ApptID != "A2" {
		t.Errorf("rows = %+v, want A1 then A2", rows)
	}
}

func TestAppointmentFilterByDateRangeInvalidDate(t *testing.T) {
	repo := NewAppointmentRepository(testDB(t), nil)
	_, err := repo.FilterByDateRange(context.Background(), "05/01/2024", "2024-01-10")
	var vErr *utils.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Message != "Invalid Date. Use YYYY-MM-DD format." {
		t.Errorf("message = %q", vErr.Message)
	}
}

func TestAppointmentDaysBetween(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)
	ctx := context.Background()

	// Inserted out of order; gaps follow ascending date order.
	for _, a := range []*models.Appointment{
		newTestAppointment("A2", "1", "D1", "2024-01-10"),
		newTestAppointment("A1", "1", "D1", "2024-01-01"),
		newTestAppointment("A3", "1", "D1", "2024-02-01"),
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s): %v", a.ApptID, err)
		}
	}

	gaps, err := repo.DaysBetween(ctx, "1")
	if err != nil {
		t.Fatalf("DaysBetween: %v", err)
	}
	if want := []int{9, 22}; !reflect.DeepEqual(gaps, want) {
		t.Errorf("DaysBetween = %v, want %v", gaps, want)
	}
}

func TestAppointmentDaysBetweenTooFew(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)
	ctx := context.Background()

	gaps, err := repo.DaysBetween(ctx, "1")
	if err != nil {
		t.Fatalf("DaysBetween with no appointments: %v", err)
	}
	if len(gaps) != 0 {
		t.Errorf("gaps = %v, want empty", gaps)
	}

	if err := repo.Create(ctx, newTestAppointment("A1", "1", "D1", "2024-01-01")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	gaps, err = repo.DaysBetween(ctx, "1")
	if err != nil {
		t.Fatalf("DaysBetween with one appointment: %v", err)
	}
	if len(gaps) != 0 {
		t.Errorf("gaps = %v, want empty", gaps)
	}
}

func TestAppointmentGetAllIdempotent(t *testing.T) {
	db := testDB(t)
	seedPatient(t, db, "1")
	seedDoctor(t, db, "D1")
	repo := NewAppointmentRepository(db, nil)
	ctx := context.Background()

	for _, id := range []string{"A2", "A1"} {
		if err := repo.Create(ctx, newTestAppointment(id, "1", "D1", "2024-03-01")); err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
	}

	first, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	second, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated GetAll differs: %+v vs %+v", first, second)
	}
	if first[0].ApptID != "A1" {
		t.Errorf("rows not in key order: %+v", first)
	}
}
