package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

func (m *Menu) servicesMenu(ctx context.Context) {
	for {
		m.println("\n=== Services Management ===")
		m.println("1. Add Service")
		m.println("2. View Services")
		m.println("3. Update Service")
		m.println("4. Delete Service")
		m.println("5. Main Menu")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s, ok := m.promptService(false)
			if !ok {
				continue
			}
			m.report(m.catalog.Create(ctx, s),
				"Service added successfully.",
				"",
				fmt.Sprintf("Error: Duplicate Service ID '%s'. Please use a unique ID.", s.ServiceID))
		case "2":
			m.viewServices(ctx)
		case "3":
			s, ok := m.promptService(true)
			if !ok {
				continue
			}
			m.report(m.catalog.Update(ctx, s),
				"Service updated successfully.",
				"Service ID not found.",
				"")
		case "4":
			id, _ := m.prompt("Enter Service ID to delete: ")
			m.report(m.catalog.Delete(ctx, id),
				"Service deleted successfully.",
				"Service ID not found.",
				"")
		case "5":
			return
		default:
			m.println("Invalid Choice. Please try again.")
		}
	}
}

func (m *Menu) promptService(update bool) (*models.Service, bool) {
	prefix := ""
	idLabel := "Enter Service ID: "
	if update {
		prefix = "New "
		idLabel = "Enter Service ID to update: "
	}
	id, ok := m.prompt(idLabel)
	if !ok {
		return nil, false
	}
	name, _ := m.prompt("Enter " + prefix + "Service Name: ")
	costStr, _ := m.prompt("Enter " + prefix + "Cost: ")
	cost, err := strconv.ParseFloat(costStr, 64)
	if err != nil {
		m.println("Invalid Cost. Enter a valid number.")
		return nil, false
	}

	return &models.Service{ServiceID: id, ServiceName: name, Cost: cost}, true
}

func (m *Menu) viewServices(ctx context.Context) {
	rows, err := m.catalog.GetAll(ctx)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	m.println("ID | Name | Cost")
	for _, s := range rows {
		m.printf("%s | %s | %s\n", s.ServiceID, s.ServiceName, formatAmount(s.Cost))
	}
}

// serviceUsageMenu is scoped to one patient: stage catalog snapshots,
// view the pending list, or clear it.
func (m *Menu) serviceUsageMenu(ctx context.Context, patientID string) {
	for {
		m.printf("\nService Usage of Patient: %s\n", patientID)
		m.println("1. Add Service Usage")
		m.println("2. View Services Used")
		m.println("3. Clear Services (after billing)")
		m.println("4. Back to Patients Management")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			id, _ := m.prompt("Enter Service ID: ")
			svc, err := m.catalog.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					m.println("Service ID not found.")
				} else {
					m.printf("Database error: %v\n", err)
				}
				continue
			}
			err = m.usage.AddForPatient(ctx, patientID, svc)
			m.report(err,
				fmt.Sprintf("Added %s (ID: %s, Cost: %s) for patient %s",
					svc.ServiceName, svc.ServiceID, formatAmount(svc.Cost), patientID),
				"",
				fmt.Sprintf("Error: Duplicate service usage entry for patient %s and service %s.", patientID, id))
		case "2":
			rows, err := m.usage.GetForPatient(ctx, patientID)
			if err != nil {
				m.printf("Database error: %v\n", err)
				continue
			}
			if len(rows) == 0 {
				m.println("No services recorded for this patient.")
				continue
			}
			m.printf("Services used by %s:\n", patientID)
			for _, u := range rows {
				m.printf("- %s (ID: %s, Cost: %s)\n", u.ServiceName, u.ServiceID, formatAmount(u.Cost))
			}
		case "3":
			if err := m.usage.ClearForPatient(ctx, patientID); err != nil {
				m.printf("Database error: %v\n", err)
				continue
			}
			m.printf("Cleared services for patient %s\n", patientID)
		case "4":
			return
		default:
			m.println("Invalid choice. Please try again.")
		}
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
