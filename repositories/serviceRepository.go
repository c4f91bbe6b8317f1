package repositories

import (
	"gorm.io/gorm"

	"HospitalRecords/cache"
	"HospitalRecords/models"
	"HospitalRecords/utils"
)

// ServiceRepository manages the catalog of billable services.
type ServiceRepository struct {
	crud[models.Service]
}

func NewServiceRepository(db *gorm.DB, c *cache.Cache) *ServiceRepository {
	return &ServiceRepository{crud: crud[models.Service]{
		db:          db,
		cache:       c,
		entity:      "service",
		keyColumn:   "service_id",
		nameColumn:  "service_name",
		cachePrefix: "service",
		validate:    utils.ValidateService,
		validateID:  utils.ValidateServiceID,
		keyOf:       func(s *models.Service) string { return s.ServiceID },
	}}
}
