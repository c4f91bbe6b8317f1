package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"HospitalRecords/database"
	"HospitalRecords/repositories"
	"HospitalRecords/services"
)

// runMenu feeds the given lines to a fully wired menu over an isolated
// in-memory store and returns everything it printed.
func runMenu(t *testing.T, lines ...string) string {
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

	patientRepo := repositories.NewPatientRepository(db, nil)
	doctorRepo := repositories.NewDoctorRepository(db, nil)
	serviceRepo := repositories.NewServiceRepository(db, nil)
	usageRepo := repositories.NewServiceUsageRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db, nil)
	billingRepo := repositories.NewBillingRepository(db, nil, usageRepo)

	var out bytes.Buffer
	menu := NewMenu(
		strings.NewReader(strings.Join(lines, "\n")+"\n"),
		&out,
		services.NewPatientService(patientRepo),
		services.NewDoctorService(doctorRepo),
		services.NewCatalogService(serviceRepo),
		services.NewServiceUsageService(usageRepo),
		services.NewAppointmentService(appointmentRepo),
		services.NewBillingService(billingRepo),
		services.NewInvoiceService(billingRepo, patientRepo, t.TempDir(), services.SMTPSettings{}),
		services.NewExportService(billingRepo, appointmentRepo),
	)
	menu.Run(context.Background())
	return out.String()
}

func TestMenuAddAndViewPatient(t *testing.T) {
	out := runMenu(t,
		"1", // patients
		"2", // add
		"1", "John Doe", "42", "M", "2024-01-15", "0123456789",
		"3", // view
		"8", // back
		"7", // exit
	)

	for _, want := range []string{
		"Patient added successfully.",
		"1 | John Doe | 42 | M | 2024-01-15 | 0123456789",
		"Exiting Hospital Management CLI. Bye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMenuAddPatientValidationMessage(t *testing.T) {
	out := runMenu(t,
		"1",
		"2",
		"1", "John Doe", "42", "X", "2024-01-15", "0123456789",
		"8",
		"7",
	)
	if !strings.Contains(out, "Invalid Gender. Choose from M, F, Other.") {
		t.Errorf("output missing gender diagnostic:\n%s", out)
	}
}

func TestMenuBillingWithoutStagedServices(t *testing.T) {
	out := runMenu(t,
		"1",
		"2",
		"1", "John Doe", "42", "M", "2024-01-15", "0123456789",
		"8",
		"5",      // billing
		"1",      // add bill
		"B1", "1", // bill id, patient id
		"8",
		"7",
	)
	if !strings.Contains(out, "No services to bill for this patient.") {
		t.Errorf("output missing empty-staging diagnostic:\n%s", out)
	}
}

func TestMenuServiceUsageAndBillingFlow(t *testing.T) {
	out := runMenu(t,
		"3", // services catalog
		"1", // add service
		"S1", "XRay", "200",
		"5", // main menu
		"1", // patients
		"2", // add patient
		"1", "John Doe", "42", "M", "2024-01-15", "0123456789",
		"6", // service usage
		"1", // patient id
		"1", // add usage
		"S1",
		"2", // view usage
		"4", // back
		"8", // main menu
		"5", // billing
		"1", // add bill
		"B1", "1",
		"2", // view bills
		"8",
		"7",
	)

	for _, want := range []string{
		"Service added successfully.",
		"Added XRay (ID: S1, Cost: 200) for patient 1",
		"- XRay (ID: S1, Cost: 200)",
		"Bill added successfully.",
		"B1 | 1 | 200 | ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMenuInvalidChoice(t *testing.T) {
	out := runMenu(t, "9", "7")
	if !strings.Contains(out, "Invalid choice. Please try again.") {
		t.Errorf("output missing invalid-choice diagnostic:\n%s", out)
	}
}

func TestMenuExitsOnInputEnd(t *testing.T) {
	out := runMenu(t, "1")
	if !strings.Contains(out, "=== Patients Management ===") {
		t.Errorf("output missing patients menu:\n%s", out)
	}
}
