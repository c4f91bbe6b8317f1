package cli

import (
	"context"
	"fmt"

	"HospitalRecords/models"
)

func (m *Menu) doctorsMenu(ctx context.Context) {
	for {
		m.println("\n=== Doctors Management ===")
		m.println("1. Search Doctor")
		m.println("2. Add Doctor")
		m.println("3. View Doctors")
		m.println("4. Update Doctor")
		m.println("5. Delete Doctor")
		m.println("6. Main Menu")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			name, _ := m.prompt("Enter part or full doctor name: ")
			m.searchDoctors(ctx, name)
		case "2":
			d := m.promptDoctor(false)
			m.report(m.doctors.Create(ctx, d),
				"Doctor added successfully.",
				"",
				fmt.Sprintf("Error: Duplicate Doctor ID '%s'. Please use a unique ID.", d.DoctorID))
		case "3":
			m.viewDoctors(ctx)
		case "4":
			d := m.promptDoctor(true)
			m.report(m.doctors.Update(ctx, d),
				"Doctor updated successfully.",
				fmt.Sprintf("Doctor ID '%s' not found.", d.DoctorID),
				"")
		case "5":
			id, _ := m.prompt("Enter Doctor ID to delete: ")
			m.report(m.doctors.Delete(ctx, id),
				"Doctor deleted successfully.",
				fmt.Sprintf("Doctor ID '%s' not found.", id),
				"")
		case "6":
			return
		default:
			m.println("Invalid Choice. Please try again.")
		}
	}
}

func (m *Menu) promptDoctor(update bool) *models.Doctor {
	prefix := ""
	idLabel := "Enter Doctor ID: "
	if update {
		prefix = "New "
		idLabel = "Enter Doctor ID to update: "
	}
	id, _ := m.prompt(idLabel)
	name, _ := m.prompt("Enter " + prefix + "Name: ")
	specialization, _ := m.prompt("Enter " + prefix + "Specialization: ")
	contact, _ := m.prompt("Enter " + prefix + "Contact No: ")

	return &models.Doctor{
		DoctorID:       id,
		Name:           name,
		Specialization: specialization,
		ContactNo:      contact,
	}
}

func (m *Menu) viewDoctors(ctx context.Context) {
	rows, err := m.doctors.GetAll(ctx)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	m.println("ID | Name | Specialization | Contact No")
	for _, d := range rows {
		m.printf("%s | %s | %s | %s\n", d.DoctorID, d.Name, d.Specialization, d.ContactNo)
	}
}

func (m *Menu) searchDoctors(ctx context.Context, name string) {
	rows, err := m.doctors.SearchByName(ctx, name)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		m.println("No doctors found matching that name.")
		return
	}
	m.println("Doctor ID | Name | Specialization | Contact No")
	for _, d := range rows {
		m.printf("%s | %s | %s | %s\n", d.DoctorID, d.Name, d.Specialization, d.ContactNo)
	}
}
