package cli

import (
	"context"
	"fmt"
	"strconv"

	"HospitalRecords/models"
)

func (m *Menu) appointmentsMenu(ctx context.Context) {
	for {
		m.println("\n=== Appointments Management ===")
		m.println("1. Add Appointment")
		m.println("2. View Appointments")
		m.println("3. Update Appointment")
		m.println("4. Delete Appointment")
		m.println("5. Filter Appointments by Date")
		m.println("6. Total Days between Appointments of Patient")
		m.println("7. Main Menu")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			a, ok := m.promptAppointment(false)
			if !ok {
				continue
			}
			m.report(m.appointments.Create(ctx, a),
				"Appointment added successfully.",
				"",
				fmt.Sprintf("Error: Duplicate Appointment ID '%s'. Please use a unique ID.", a.ApptID))
		case "2":
			m.viewAppointments(ctx)
		case "3":
			a, ok := m.promptAppointment(true)
			if !ok {
				continue
			}
			m.report(m.appointments.Update(ctx, a),
				"Appointment updated successfully.",
				"Appointment ID not found.",
				"")
		case "4":
			id, _ := m.prompt("Enter Appointment ID to delete: ")
			m.report(m.appointments.Delete(ctx, id),
				"Appointment deleted successfully.",
				"Appointment ID not found.",
				"")
		case "5":
			start, _ := m.prompt("Enter start date (YYYY-MM-DD): ")
			end, _ := m.prompt("Enter end date (YYYY-MM-DD): ")
			rows, err := m.appointments.FilterByDateRange(ctx, start, end)
			if err != nil {
				m.reportFailure(err, "")
				continue
			}
			for _, a := range rows {
				m.printf("%s | %s | %s | %s | %s | %s\n",
					a.ApptID, a.PatientID, a.DoctorID, a.Date, a.Diagnosis, formatAmount(a.ConsultingCharge))
			}
		case "6":
			patientID, _ := m.prompt("Enter Patient ID: ")
			gaps, err := m.appointments.DaysBetween(ctx, patientID)
			if err != nil {
				m.printf("Database error: %v\n", err)
				continue
			}
			if len(gaps) == 0 {
				m.println("Not enough appointments to calculate days between.")
				continue
			}
			for i, days := range gaps {
				m.printf("Days between appointment %d and %d: %d\n", i+1, i+2, days)
			}
		case "7":
			return
		default:
			m.println("Invalid Choice. Please try again.")
		}
	}
}

func (m *Menu) promptAppointment(update bool) (*models.Appointment, bool) {
	prefix := ""
	idLabel := "Enter Appointment ID: "
	if update {
		prefix = "New "
		idLabel = "Enter Appointment ID to update: "
	}
	id, ok := m.prompt(idLabel)
	if !ok {
		return nil, false
	}
	patientID, _ := m.prompt("Enter " + prefix + "Patient ID: ")
	doctorID, _ := m.prompt("Enter " + prefix + "Doctor ID: ")
	date, _ := m.prompt("Enter " + prefix + "Appointment Date (YYYY-MM-DD): ")
	diagnosis, _ := m.prompt("Enter " + prefix + "Diagnosis: ")
	chargeStr, _ := m.prompt("Enter " + prefix + "Consulting Charge [leave blank for 0]: ")

	charge := 0.0
	if chargeStr != "" {
		var err error
		charge, err = strconv.ParseFloat(chargeStr, 64)
		if err != nil {
			m.println("Invalid Consulting Charge. Enter a valid number.")
			return nil, false
		}
	}

	return &models.Appointment{
		ApptID:           id,
		PatientID:        patientID,
		DoctorID:         doctorID,
		Date:             date,
		Diagnosis:        diagnosis,
		ConsultingCharge: charge,
	}, true
}

func (m *Menu) viewAppointments(ctx context.Context) {
	rows, err := m.appointments.GetAll(ctx)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	m.println("ID | Patient ID | Doctor ID | Date | Diagnosis | Consulting Charge")
	for _, a := range rows {
		m.printf("%s | %s | %s | %s | %s | %s\n",
			a.ApptID, a.PatientID, a.DoctorID, a.Date, a.Diagnosis, formatAmount(a.ConsultingCharge))
	}
}
