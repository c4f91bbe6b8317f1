package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

// SMTPSettings carries optional invoice email delivery configuration.
type SMTPSettings struct {
	Host string
	Port int
	User string
	Pass string
}

// InvoiceService renders a bill into a flat text invoice, writes it to
// the per-patient file under the output directory, and optionally
// emails it.
type InvoiceService struct {
	billing  *repositories.BillingRepository
	patients *repositories.PatientRepository
	dir      string
	smtp     SMTPSettings
}

func NewInvoiceService(billing *repositories.BillingRepository, patients *repositories.PatientRepository, dir string, smtp SMTPSettings) *InvoiceService {
	return &InvoiceService{billing: billing, patients: patients, dir: dir, smtp: smtp}
}

// Generate renders the invoice for a bill and writes it to
// <dir>/bill_<patient_id>.txt, overwriting any previous invoice for
// that patient. It returns the written path.
func (s *InvoiceService) Generate(ctx context.Context, bill *models.Bill) (string, error) {
	content, err := s.Render(ctx, bill)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create invoice directory: %w", err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("bill_%s.txt", bill.PatientID))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write invoice: %w", err)
	}
	return path, nil
}

// GenerateByID looks the bill up first, for the menu path where only
// the bill id is known.
func (s *InvoiceService) GenerateByID(ctx context.Context, billID string) (string, error) {
	bill, err := s.billing.GetByID(ctx, billID)
	if err != nil {
		return "", err
	}
	return s.Generate(ctx, bill)
}

// Render builds the invoice document: header, patient identity, the
// most recent appointment's doctor and consulting charge, itemized
// line items, service total, grand total (service total + consulting
// charge) and footer.
func (s *InvoiceService) Render(ctx context.Context, bill *models.Bill) (string, error) {
	patientName := "N/A"
	patient, err := s.patients.GetByID(ctx, bill.PatientID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}
	if patient != nil {
		patientName = patient.Name
	}

	appt, doctor, err := s.billing.LatestAppointment(ctx, bill.PatientID)
	if err != nil {
		return "", err
	}

	items, err := s.billing.LineItems(ctx, bill.BillID)
	if err != nil {
		return "", err
	}

	var lines []string
	lines = append(lines, "=== Hospital Invoice ===\n")
	lines = append(lines, fmt.Sprintf("Bill ID: %s", bill.BillID))
	lines = append(lines, fmt.Sprintf("Patient ID: %s", bill.PatientID))
	lines = append(lines, fmt.Sprintf("Patient Name: %s", patientName))
	lines = append(lines, fmt.Sprintf("Date: %s\n", bill.BillingDate))

	consultingCharge := 0.0
	if appt != nil && doctor != nil {
		lines = append(lines, fmt.Sprintf("Doctor: %s (%s)", doctor.Name, doctor.Specialization))
		lines = append(lines, fmt.Sprintf("Consulting Charge: %s\n", formatAmount(appt.ConsultingCharge)))
		consultingCharge = appt.ConsultingCharge
	} else {
		lines = append(lines, "Doctor: N/A\nConsulting Charge: 0\n")
	}

	lines = append(lines, "Services Used:")
	serviceTotal := 0.0
	if len(items) > 0 {
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("  - %s: %s", item.ServiceName, formatAmount(item.Cost)))
			serviceTotal += item.Cost
		}
	} else {
		lines = append(lines, " None")
	}

	lines = append(lines, fmt.Sprintf("\nService Total: %s", formatAmount(serviceTotal)))
	lines = append(lines, fmt.Sprintf("Total Amount: %s\n", formatAmount(serviceTotal+consultingCharge)))
	lines = append(lines, "Thank you for choosing our hospital!\n")

	return strings.Join(lines, "\n"), nil
}

// Email generates the invoice for a bill and sends it as an attachment.
// Requires SMTP settings to be configured.
func (s *InvoiceService) Email(ctx context.Context, billID, to string) error {
	if s.smtp.Host == "" {
		return errors.New("SMTP is not configured")
	}

	bill, err := s.billing.GetByID(ctx, billID)
	if err != nil {
		return err
	}
	path, err := s.Generate(ctx, bill)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.smtp.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Hospital Invoice %s", bill.BillID))
	m.SetBody("text/plain", fmt.Sprintf("Please find attached the invoice for bill %s.", bill.BillID))
	m.Attach(path)

	d := gomail.NewDialer(s.smtp.Host, s.smtp.Port, s.smtp.User, s.smtp.Pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	log.Info().Str("bill_id", bill.BillID).Str("to", to).Msg("invoice emailed")
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
