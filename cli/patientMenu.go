package cli

import (
	"context"
	"fmt"
	"strconv"

	"HospitalRecords/models"
)

func (m *Menu) patientsMenu(ctx context.Context) {
	for {
		m.println("\n=== Patients Management ===")
		m.println("1. Search Patient")
		m.println("2. Add Patient")
		m.println("3. View Patients")
		m.println("4. Update Patient")
		m.println("5. Delete Patient")
		m.println("6. Service Usage of Patient")
		m.println("7. Days Admitted for a Patient")
		m.println("8. Main Menu")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			name, _ := m.prompt("Enter part or full patient name: ")
			m.searchPatients(ctx, name)
		case "2":
			p, ok := m.promptPatient(false)
			if !ok {
				continue
			}
			m.report(m.patients.Create(ctx, p),
				"Patient added successfully.",
				"",
				fmt.Sprintf("Error: Duplicate Patient ID '%s'. Please use a unique ID.", p.PatientID))
		case "3":
			m.viewPatients(ctx)
		case "4":
			p, ok := m.promptPatient(true)
			if !ok {
				continue
			}
			m.report(m.patients.Update(ctx, p),
				"Patient updated successfully.",
				fmt.Sprintf("No patient found with ID '%s'.", p.PatientID),
				"")
		case "5":
			id, _ := m.prompt("Enter Patient ID to delete: ")
			m.report(m.patients.Delete(ctx, id),
				"Patient deleted successfully.",
				fmt.Sprintf("No patient found with ID '%s'.", id),
				"")
		case "6":
			id, _ := m.prompt("Enter Patient ID: ")
			m.serviceUsageMenu(ctx, id)
		case "7":
			id, _ := m.prompt("Enter Patient ID: ")
			days, err := m.patients.DaysAdmitted(ctx, id)
			if err != nil {
				m.reportFailure(err, "Patient not found or admission date missing.")
				continue
			}
			m.printf("Patient %s has been admitted for %d days.\n", id, days)
		case "8":
			return
		default:
			m.println("Invalid Choice. Please try again.")
		}
	}
}

func (m *Menu) promptPatient(update bool) (*models.Patient, bool) {
	prefix := ""
	idLabel := "Enter Patient ID: "
	if update {
		prefix = "New "
		idLabel = "Enter Patient ID to update: "
	}
	id, ok := m.prompt(idLabel)
	if !ok {
		return nil, false
	}
	name, _ := m.prompt("Enter " + prefix + "Name: ")
	ageStr, _ := m.prompt("Enter " + prefix + "Age: ")
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		m.println("Invalid Age. Must be a number.")
		return nil, false
	}
	gender, _ := m.prompt("Enter " + prefix + "Gender (M/F/Other): ")
	admission, _ := m.prompt("Enter " + prefix + "Admission Date (YYYY-MM-DD): ")
	contact, _ := m.prompt("Enter " + prefix + "Contact No: ")

	return &models.Patient{
		PatientID:     id,
		Name:          name,
		Age:           age,
		Gender:        gender,
		AdmissionDate: admission,
		ContactNo:     contact,
	}, true
}

func (m *Menu) viewPatients(ctx context.Context) {
	rows, err := m.patients.GetAll(ctx)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	m.println("patient_ID | Name | Age | Gender | Admission Date | Contact No")
	for _, p := range rows {
		m.printf("%s | %s | %d | %s | %s | %s\n",
			p.PatientID, p.Name, p.Age, p.Gender, p.AdmissionDate, p.ContactNo)
	}
}

func (m *Menu) searchPatients(ctx context.Context, name string) {
	rows, err := m.patients.SearchByName(ctx, name)
	if err != nil {
		m.printf("Database error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		m.println("No patients found matching that name.")
		return
	}
	m.println("patient_ID | Name | Age | Gender | Admission Date | Contact No")
	for _, p := range rows {
		m.printf("%s | %s | %d | %s | %s | %s\n",
			p.PatientID, p.Name, p.Age, p.Gender, p.AdmissionDate, p.ContactNo)
	}
}
