package cli

import (
	"context"
	"fmt"

	"HospitalRecords/models"
)

func (m *Menu) billingMenu(ctx context.Context) {
	for {
		m.println("\n=== Billing Management ===")
		m.println("1. Add Bill")
		m.println("2. View Bills")
		m.println("3. Update Bill")
		m.println("4. Delete Bill")
		m.println("5. Compute Total Billing for Patient")
		m.println("6. Generate Invoice")
		m.println("7. Email Invoice")
		m.println("8. Main Menu")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			b, ok := m.promptBill(false)
			if !ok {
				continue
			}
			err := m.billing.Create(ctx, b)
			m.report(err,
				"Bill added successfully.",
				fmt.Sprintf("No patient found with ID '%s'.", b.PatientID),
				fmt.Sprintf("Error: Duplicate Bill ID '%s'. Please use a unique ID.", b.BillID))
			if err != nil {
				continue
			}
			path, err := m.invoices.Generate(ctx, b)
			if err != nil {
				m.printf("Failed to generate invoice: %v\n", err)
				continue
			}
			m.printf("Invoice written to %s\n", path)
		case "2":
			m.viewBills(ctx)
		case "3":
			b, ok := m.promptBill(true)
			if !ok {
				continue
			}
			m.report(m.billing.Update(ctx, b),
				"Bill updated successfully.",
				"Bill ID not found.",
				"")
		case "4":
			id, _ := m.prompt("Enter Bill ID to delete: ")
			m.report(m.billing.Delete(ctx, id),
				"Bill deleted successfully.",
				"Bill ID not found.",
				"")
		case "5":
			patientID, _ := m.prompt("Enter Patient ID: ")
			totals, err := m.billing.ComputeTotalBilling(ctx, patientID)
			if err != nil {
				m.reportFailure(err, "")
				continue
			}
			m.printf("Service Total: %s\n", formatAmount(totals.ServiceTotal))
			m.printf("Consulting Total: %s\n", formatAmount(totals.ConsultingTotal))
			m.printf("Total Billing: %s\n", formatAmount(totals.Total()))
			m.printf("Total bill for patient %s: %s\n", patientID, formatAmount(totals.Total()))
		case "6":
			id, _ := m.prompt("Enter Bill ID: ")
			path, err := m.invoices.GenerateByID(ctx, id)
			if err != nil {
				m.reportFailure(err, "Bill not found.")
				continue
			}
			m.printf("Invoice written to %s\n", path)
		case "7":
			id, _ := m.prompt("Enter Bill ID: ")
			to, _ := m.prompt("Enter recipient email: ")
			if err := m.invoices.Email(ctx, id, to); err != nil {
				m.reportFailure(err, "Bill not found.")
				continue
			}
			m.printf("Invoice for bill %s emailed to %s\n", id, to)
		case "8":
			return
		default:
			m.println("Invalid Choice. Please try again.")
		}
	}
}

// promptBill leaves BillingDate empty on add so the store can default
// it to today; the update path asks for it explicitly.
func (m *Menu) promptBill(update bool) (*models.Bill, bool) {
	idLabel := "Enter Bill ID: "
	if update {
		idLabel = "Enter Bill ID to update: "
	}
	id, ok := m.prompt(idLabel)
	if !ok {
		return nil, false
	}
	patientID, _ := m.prompt("Enter Patient ID: ")

	date := ""
	if update {
		date, _ = m.prompt("Enter New Billing Date (YYYY-MM-DD) [leave blank for today]: ")
	}

	return &models.Bill{BillID: id, PatientID: patientID, BillingDate: date}, true
}

func (m *Menu) viewBills(ctx context.Context) {
	rows, err := m.billing.GetAll(ctx)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	m.println("ID | Patient ID | Total Amount | Billing Date")
	for _, b := range rows {
		m.printf("%s | %s | %s | %s\n", b.BillID, b.PatientID, formatAmount(b.TotalAmount), b.BillingDate)
	}
}
