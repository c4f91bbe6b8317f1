package cli

import "context"

func (m *Menu) exportMenu(ctx context.Context) {
	for {
		m.println("\n=== Export Management ===")
		m.println("1. Export Billing Summary (CSV)")
		m.println("2. Export Appointment Summary (CSV)")
		m.println("3. Main Menu")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			filename, _ := m.prompt("Enter filename [billing_summary.csv]: ")
			if filename == "" {
				filename = "billing_summary.csv"
			}
			n, err := m.exports.BillingSummary(ctx, filename)
			if err != nil {
				m.printf("Database error: %v\n", err)
				continue
			}
			if n == 0 {
				m.println("No billing records to export.")
				continue
			}
			m.printf("%d billing records exported to %s\n", n, filename)
		case "2":
			filename, _ := m.prompt("Enter filename [appointment_summary.csv]: ")
			if filename == "" {
				filename = "appointment_summary.csv"
			}
			n, err := m.exports.AppointmentSummary(ctx, filename)
			if err != nil {
				m.printf("Database error: %v\n", err)
				continue
			}
			if n == 0 {
				m.println("No appointment records to export.")
				continue
			}
			m.printf("%d appointment records exported to %s\n", n, filename)
		case "3":
			return
		default:
			m.println("Invalid Choice. Please try again.")
		}
	}
}
