package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"HospitalRecords/cache"
	"HospitalRecords/models"
	"HospitalRecords/utils"
)

type AppointmentRepository struct {
	crud[models.Appointment]
}

func NewAppointmentRepository(db *gorm.DB, c *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{crud: crud[models.Appointment]{
		db:          db,
		cache:       c,
		entity:      "appointment",
		keyColumn:   "appt_id",
		cachePrefix: "appointment",
		validate:    utils.ValidateAppointment,
		validateID:  utils.ValidateAppointmentID,
		keyOf:       func(a *models.Appointment) string { return a.ApptID },
		refChecks: []func(db *gorm.DB, a *models.Appointment) error{
			func(db *gorm.DB, a *models.Appointment) error {
				return requireExists(db, &models.Patient{}, "patient_id", "Patient", a.PatientID)
			},
			func(db *gorm.DB, a *models.Appointment) error {
				return requireExists(db, &models.Doctor{}, "doctor_id", "Doctor", a.DoctorID)
			},
		},
	}}
}

func requireExists(db *gorm.DB, model any, column, entity, id string) error {
	ok, err := exists(db, model, column, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Entity: entity, ID: id}
	}
	return nil
}

// FilterByDateRange returns appointments with dates inside [start, end]
// inclusive.
func (r *AppointmentRepository) FilterByDateRange(ctx context.Context, start, end string) ([]models.Appointment, error) {
	if err := utils.ValidateDate("start_date", start, "Invalid Date. Use YYYY-MM-DD format."); err != nil {
		return nil, err
	}
	if err := utils.ValidateDate("end_date", end, "Invalid Date. Use YYYY-MM-DD format."); err != nil {
		return nil, err
	}
	var rows []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter appointments: %w", err)
	}
	return rows, nil
}

// ListByPatient returns a patient's appointments in ascending date
// order.
func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var rows []models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return rows, nil
}

// DaysBetween returns the day gaps between a patient's consecutive
// appointments in ascending date order. Fewer than two appointments
// yields an empty slice.
func (r *AppointmentRepository) DaysBetween(ctx context.Context, patientID string) ([]int, error) {
	appts, err := r.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(appts))
	for _, a := range appts {
		d, err := time.Parse(utils.DateLayout, a.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse appointment date %q: %w", a.Date, err)
		}
		dates = append(dates, d)
	}
	if len(dates) < 2 {
		return []int{}, nil
	}
	gaps := make([]int, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, int(dates[i].Sub(dates[i-1]).Hours()/24))
	}
	return gaps, nil
}
