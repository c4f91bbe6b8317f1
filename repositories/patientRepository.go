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

type PatientRepository struct {
	crud[models.Patient]
}

func NewPatientRepository(db *gorm.DB, c *cache.Cache) *PatientRepository {
	return &PatientRepository{crud: crud[models.Patient]{
		db:          db,
		cache:       c,
		entity:      "patient",
		keyColumn:   "patient_id",
		nameColumn:  "name",
		cachePrefix: "patient",
		validate:    utils.ValidatePatient,
		validateID:  utils.ValidatePatientID,
		keyOf:       func(p *models.Patient) string { return p.PatientID },
	}}
}

// DaysAdmitted returns today minus the admission date in whole days.
// Future admission dates yield negative counts.
func (r *PatientRepository) DaysAdmitted(ctx context.Context, id string) (int, error) {
	if err := utils.ValidatePatientID(id); err != nil {
		return 0, err
	}
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	admitted, err := time.Parse(utils.DateLayout, p.AdmissionDate)
	if err != nil {
		return 0, fmt.Errorf("failed to parse admission date %q: %w", p.AdmissionDate, err)
	}
	return daysSince(admitted), nil
}

func daysSince(t time.Time) int {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(t).Hours() / 24)
}
