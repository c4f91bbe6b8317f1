package services

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

func newExportService(t *testing.T) (*ExportService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	staging := repositories.NewServiceUsageRepository(db)
	billing := repositories.NewBillingRepository(db, nil, staging)
	appointments := repositories.NewAppointmentRepository(db, nil)
	return NewExportService(billing, appointments), db
}

func readCSV(t *testing.T, filename string) [][]string {
	t.Helper()
	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	return rows
}

func TestExportBillingSummary(t *testing.T) {
	svc, db := newExportService(t)
	ctx := context.Background()

	seed(t, db, &models.Bill{BillID: "B1", PatientID: "1", TotalAmount: 50, BillingDate: "2024-03-01"})
	seed(t, db, &models.Bill{BillID: "B2", PatientID: "2", TotalAmount: 120.5, BillingDate: "2024-03-02"})

	filename := filepath.Join(t.TempDir(), "billing_summary.csv")
	n, err := svc.BillingSummary(ctx, filename)
	if err != nil {
		t.Fatalf("BillingSummary: %v", err)
	}
	if n != 2 {
		t.Errorf("rows written = %d, want 2", n)
	}

	rows := readCSV(t, filename)
	want := [][]string{
		{"Bill ID", "Patient ID", "Total Amount", "Billing Date"},
		{"B1", "1", "50", "2024-03-01"},
		{"B2", "2", "120.5", "2024-03-02"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("csv = %v, want %v", rows, want)
	}
}

func TestExportBillingSummaryEmpty(t *testing.T) {
	svc, _ := newExportService(t)
	filename := filepath.Join(t.TempDir(), "billing_summary.csv")

	n, err := svc.BillingSummary(context.Background(), filename)
	if err != nil {
		t.Fatalf("BillingSummary: %v", err)
	}
	if n != 0 {
		t.Errorf("rows written = %d, want 0", n)
	}
	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		t.Errorf("no file should be created for an empty export")
	}
}

func TestExportAppointmentSummary(t *testing.T) {
	svc, db := newExportService(t)
	ctx := context.Background()

	seed(t, db, &models.Appointment{ApptID: "A1", PatientID: "1", DoctorID: "D1", Date: "2024-03-01", Diagnosis: "Flu", ConsultingCharge: 100})

	filename := filepath.Join(t.TempDir(), "appointment_summary.csv")
	n, err := svc.AppointmentSummary(ctx, filename)
	if err != nil {
		t.Fatalf("AppointmentSummary: %v", err)
	}
	if n != 1 {
		t.Errorf("rows written = %d, want 1", n)
	}

	rows := readCSV(t, filename)
	want := [][]string{
		{"Appointment ID", "Patient ID", "Doctor ID", "Date", "Diagnosis", "Consulting Charge"},
		{"A1", "1", "D1", "2024-03-01", "Flu", "100"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("csv = %v, want %v", rows, want)
	}
}

func TestExportAppointmentSummaryEmpty(t *testing.T) {
	svc, _ := newExportService(t)
	filename := filepath.Join(t.TempDir(), "appointment_summary.csv")

	n, err := svc.AppointmentSummary(context.Background(), filename)
	if err != nil {
		t.Fatalf("AppointmentSummary: %v", err)
	}
	if n != 0 {
		t.Errorf("rows written = %d, want 0", n)
	}
	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		t.Errorf("no file should be created for an empty export")
	}
}
