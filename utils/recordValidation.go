package utils

import (
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"HospitalRecords/models"
)

// DateLayout is the only accepted date format for record fields.
const DateLayout = "2006-01-02"

var (
	alnumRegex       = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	letterRegex      = regexp.MustCompile(`[A-Za-z]`)
	alphaSpaceRegex  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	serviceNameRegex = regexp.MustCompile(`^[A-Za-z0-9\s\-_]+$`)
)

// ValidationError carries the field that failed and the exact
// user-facing diagnostic. Operations returning it never touched the
// database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidatePatient checks patient fields in declaration order; the first
// failing field wins.
func ValidatePatient(p *models.Patient) error {
	if err := ValidatePatientID(p.PatientID); err != nil {
		return err
	}
	if err := validation.Validate(p.Name, validation.Required, validation.Match(alphaSpaceRegex)); err != nil {
		return invalid("name", "Invalid Name. Name must contain only letters and spaces.")
	}
	if p.Age < 0 || p.Age > 120 {
		return invalid("age", "Invalid Age. Must be between 0 and 120.")
	}
	if err := validation.Validate(p.Gender, validation.Required, validation.In("M", "F", "Other")); err != nil {
		return invalid("gender", "Invalid Gender. Choose from M, F, Other.")
	}
	if err := validation.Validate(p.AdmissionDate, validation.Required, validation.Date(DateLayout)); err != nil {
		return invalid("admission_date", "Invalid Admission Date. Use YYYY-MM-DD format.")
	}
	if err := validation.Validate(p.ContactNo, validation.Required, is.Digit, validation.Length(10, 0)); err != nil {
		return invalid("contact_no", "Invalid Contact Number. Must be at least 10 digits.")
	}
	return nil
}

// ValidatePatientID requires a positive integer in string form.
func ValidatePatientID(id string) error {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return invalid("patient_id", "Invalid Patient ID. Must be a positive integer.")
	}
	return nil
}

func ValidateDoctor(d *models.Doctor) error {
	if err := ValidateDoctorID(d.DoctorID); err != nil {
		return err
	}
	if err := validation.Validate(d.Name, validation.Required, validation.Match(alphaSpaceRegex)); err != nil {
		return invalid("name", "Invalid Name. Only letters and spaces allowed.")
	}
	if err := validation.Validate(d.Specialization, validation.Required, validation.Match(alphaSpaceRegex)); err != nil {
		return invalid("specialization", "Invalid Specialization. Only letters and spaces allowed.")
	}
	if err := validation.Validate(d.ContactNo, validation.Required, is.Digit, validation.Length(10, 0)); err != nil {
		return invalid("contact_no", "Invalid Contact Number. Only digits allowed, minimum 10 digits.")
	}
	return nil
}

// ValidateDoctorID requires an alphanumeric id containing at least one
// letter, so doctor ids can never collide with the numeric patient ids.
func ValidateDoctorID(id string) error {
	if err := validation.Validate(id, validation.Required, validation.Match(alnumRegex)); err != nil || !letterRegex.MatchString(id) {
		return invalid("doctor_id", "Invalid Doctor ID. It must be alphanumeric and contain at least one letter (no spaces or special characters).")
	}
	return nil
}

func ValidateService(s *models.Service) error {
	if err := ValidateServiceID(s.ServiceID); err != nil {
		return err
	}
	if err := validation.Validate(s.ServiceName, validation.Required, validation.Match(serviceNameRegex)); err != nil {
		return invalid("service_name", "Invalid Service Name.")
	}
	if s.Cost < 0 || s.Cost > 5000 {
		return invalid("cost", "Cost must be between 0 and 5000.")
	}
	return nil
}

func ValidateServiceID(id string) error {
	if err := validation.Validate(id, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("service_id", "Invalid Service ID. It must be alphanumeric (no spaces or special characters).")
	}
	return nil
}

func ValidateAppointment(a *models.Appointment) error {
	if err := ValidateAppointmentID(a.ApptID); err != nil {
		return err
	}
	if err := validation.Validate(a.PatientID, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("patient_id", "Invalid Patient ID. It must be alphanumeric (no spaces or special characters).")
	}
	if err := validation.Validate(a.DoctorID, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("doctor_id", "Invalid Doctor ID. It must be alphanumeric (no spaces or special characters).")
	}
	if err := validation.Validate(a.Date, validation.Required, validation.Date(DateLayout)); err != nil {
		return invalid("date", "Invalid Date. Use YYYY-MM-DD format.")
	}
	if err := validation.Validate(a.Diagnosis, validation.Required, validation.Match(alphaSpaceRegex)); err != nil {
		return invalid("diagnosis", "Invalid Diagnosis. Only letters and spaces allowed.")
	}
	return nil
}

func ValidateAppointmentID(id string) error {
	if err := validation.Validate(id, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("appt_id", "Invalid Appointment ID. It must be alphanumeric (no spaces or special characters).")
	}
	return nil
}

func ValidateBill(b *models.Bill) error {
	if err := ValidateBillID(b.BillID); err != nil {
		return err
	}
	if err := validation.Validate(b.PatientID, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("patient_id", "Invalid Patient ID. It must be alphanumeric (no spaces or special characters).")
	}
	if err := validation.Validate(b.BillingDate, validation.Required, validation.Date(DateLayout)); err != nil {
		return invalid("billing_date", "Invalid Billing Date. Use YYYY-MM-DD format.")
	}
	return nil
}

func ValidateBillID(id string) error {
	if err := validation.Validate(id, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("bill_id", "Invalid Bill ID. It must be alphanumeric (no spaces or special characters).")
	}
	return nil
}

// ValidateServiceUsage checks a staged usage snapshot. Messages are
// terser than the catalog ones since the snapshot is built from an
// already-persisted service row.
func ValidateServiceUsage(u *models.ServiceUsage) error {
	if err := validation.Validate(u.PatientID, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("patient_id", "Invalid Patient ID.")
	}
	if err := validation.Validate(u.ServiceID, validation.Required, validation.Match(alnumRegex)); err != nil {
		return invalid("service_id", "Invalid Service ID.")
	}
	if err := validation.Validate(u.ServiceName, validation.Required, validation.Match(serviceNameRegex)); err != nil {
		return invalid("service_name", "Invalid Service Name.")
	}
	if u.Cost < 0 || u.Cost > 5000 {
		return invalid("cost", "Invalid Cost.")
	}
	return nil
}

// ValidateDate rejects anything that is not a calendar-valid
// YYYY-MM-DD value, with a caller-supplied field message.
func ValidateDate(field, value, message string) error {
	if err := validation.Validate(value, validation.Required, validation.Date(DateLayout)); err != nil {
		return invalid(field, message)
	}
	return nil
}
