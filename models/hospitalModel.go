package models

// Patient model. The primary key is stored as a string so that bills,
// appointments and staged service usage can reference it the same way
// they reference the other alphanumeric record ids; patient validation
// additionally requires the value to be a positive integer.
type Patient struct {
	PatientID     string `gorm:"primaryKey;column:patient_id" json:"patient_id"`
	Name          string `gorm:"column:name;not null;index" json:"name"`
	Age           int    `gorm:"column:age;not null" json:"age"`
	Gender        string `gorm:"column:gender;not null" json:"gender"`
	AdmissionDate string `gorm:"column:admission_date;not null" json:"admission_date"`
	ContactNo     string `gorm:"column:contact_no;not null" json:"contact_no"`
}

func (Patient) TableName() string {
	return "patients"
}

// Doctor model
type Doctor struct {
	DoctorID       string `gorm:"primaryKey;column:doctor_id" json:"doctor_id"`
	Name           string `gorm:"column:name;not null;index" json:"name"`
	Specialization string `gorm:"column:specialization;not null" json:"specialization"`
	ContactNo      string `gorm:"column:contact_no;not null" json:"contact_no"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Service is a catalog entry for a billable hospital service.
type Service struct {
	ServiceID   string  `gorm:"primaryKey;column:service_id" json:"service_id"`
	ServiceName string  `gorm:"column:service_name;not null" json:"service_name"`
	Cost        float64 `gorm:"column:cost;not null" json:"cost"`
}

func (Service) TableName() string {
	return "services"
}

// Appointment model. Referenced patient and doctor ids are verified by
// explicit existence lookups before insert, not database constraints,
// so deleting a patient or doctor leaves appointments in place.
type Appointment struct {
	ApptID           string  `gorm:"primaryKey;column:appt_id" json:"appt_id"`
	PatientID        string  `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID         string  `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Date             string  `gorm:"column:date;not null;index" json:"date"`
	Diagnosis        string  `gorm:"column:diagnosis;not null" json:"diagnosis"`
	ConsultingCharge float64 `gorm:"column:consulting_charge" json:"consulting_charge"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Bill model. TotalAmount is a snapshot of the staged service costs at
// billing time; later staging changes do not touch it.
type Bill struct {
	BillID      string  `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	PatientID   string  `gorm:"column:patient_id;not null;index" json:"patient_id"`
	TotalAmount float64 `gorm:"column:total_amount;not null" json:"total_amount"`
	BillingDate string  `gorm:"column:billing_date;not null" json:"billing_date"`
}

func (Bill) TableName() string {
	return "billing"
}

// BilledService is a line item: the permanent snapshot of one staged
// usage row, attached to a bill.
type BilledService struct {
	BillID      string  `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	ServiceID   string  `gorm:"primaryKey;column:service_id" json:"service_id"`
	ServiceName string  `gorm:"column:service_name;not null" json:"service_name"`
	Cost        float64 `gorm:"column:cost;not null" json:"cost"`
}

func (BilledService) TableName() string {
	return "billed_services"
}

// ServiceUsage is a staged, denormalized snapshot of a service consumed
// by a patient, pending inclusion in a bill. Catalog changes after the
// snapshot do not propagate here.
type ServiceUsage struct {
	PatientID   string  `gorm:"primaryKey;column:patient_id" json:"patient_id"`
	ServiceID   string  `gorm:"primaryKey;column:service_id" json:"service_id"`
	ServiceName string  `gorm:"column:service_name;not null" json:"service_name"`
	Cost        float64 `gorm:"column:cost;not null" json:"cost"`
}

func (ServiceUsage) TableName() string {
	return "temp_service_usage"
}
