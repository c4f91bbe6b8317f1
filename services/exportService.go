package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"HospitalRecords/repositories"
)

// ExportService dumps billing and appointment summaries to CSV files.
// Files are overwritten; nothing is written when there are no rows.
type ExportService struct {
	billing      *repositories.BillingRepository
	appointments *repositories.AppointmentRepository
}

func NewExportService(billing *repositories.BillingRepository, appointments *repositories.AppointmentRepository) *ExportService {
	return &ExportService{billing: billing, appointments: appointments}
}

// BillingSummary writes every bill to filename and returns the number
// of data rows written. Zero means no file was created.
func (s *ExportService) BillingSummary(ctx context.Context, filename string) (int, error) {
	bills, err := s.billing.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(bills) == 0 {
		return 0, nil
	}

	records := [][]string{{"Bill ID", "Patient ID", "Total Amount", "Billing Date"}}
	for _, b := range bills {
		records = append(records, []string{b.BillID, b.PatientID, formatAmount(b.TotalAmount), b.BillingDate})
	}
	if err := writeCSV(filename, records); err != nil {
		return 0, err
	}
	return len(bills), nil
}

// AppointmentSummary writes every appointment to filename and returns
// the number of data rows written.
func (s *ExportService) AppointmentSummary(ctx context.Context, filename string) (int, error) {
	appts, err := s.appointments.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(appts) == 0 {
		return 0, nil
	}

	records := [][]string{{"Appointment ID", "Patient ID", "Doctor ID", "Date", "Diagnosis", "Consulting Charge"}}
	for _, a := range appts {
		records = append(records, []string{a.ApptID, a.PatientID, a.DoctorID, a.Date, a.Diagnosis, formatAmount(a.ConsultingCharge)})
	}
	if err := writeCSV(filename, records); err != nil {
		return 0, err
	}
	return len(appts), nil
}

func writeCSV(filename string, records [][]string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
