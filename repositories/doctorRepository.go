package repositories

import (
	"gorm.io/gorm"

	"HospitalRecords/cache"
	"HospitalRecords/models"
	"HospitalRecords/utils"
)

type DoctorRepository struct {
	crud[models.Doctor]
}

func NewDoctorRepository(db *gorm.DB, c *cache.Cache) *DoctorRepository {
	return &DoctorRepository{crud: crud[models.Doctor]{
		db:          db,
		cache:       c,
		entity:      "doctor",
		keyColumn:   "doctor_id",
		nameColumn:  "name",
		cachePrefix: "doctor",
		validate:    utils.ValidateDoctor,
		validateID:  utils.ValidateDoctorID,
		keyOf:       func(d *models.Doctor) string { return d.DoctorID },
	}}
}
