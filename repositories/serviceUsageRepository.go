package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"HospitalRecords/models"
	"HospitalRecords/utils"
)

// ServiceUsageRepository owns the per-patient staging list of consumed
// services pending billing. Rows here are denormalized snapshots of
// catalog entries, not foreign keys; catalog edits after staging do
// not propagate. The billing repository receives this component
// explicitly rather than reaching for shared state.
type ServiceUsageRepository struct {
	db *gorm.DB
}

func NewServiceUsageRepository(db *gorm.DB) *ServiceUsageRepository {
	return &ServiceUsageRepository{db: db}
}

// AddForPatient stages a service snapshot for the patient. A repeated
// (patient, service) pair is reported as a duplicate, not fatal.
func (r *ServiceUsageRepository) AddForPatient(ctx context.Context, patientID string, svc *models.Service) error {
	usage := models.ServiceUsage{
		PatientID:   patientID,
		ServiceID:   svc.ServiceID,
		ServiceName: svc.ServiceName,
		Cost:        svc.Cost,
	}
	if err := utils.ValidateServiceUsage(&usage); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&usage).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to add service usage: %w", err)
	}
	return nil
}

// GetForPatient returns every staged row for the patient, unfiltered.
func (r *ServiceUsageRepository) GetForPatient(ctx context.Context, patientID string) ([]models.ServiceUsage, error) {
	var rows []models.ServiceUsage
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("service_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service usage: %w", err)
	}
	return rows, nil
}

// ClearForPatient wipes the patient's staging list. Clearing an already
// empty list is not an error.
func (r *ServiceUsageRepository) ClearForPatient(ctx context.Context, patientID string) error {
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Delete(&models.ServiceUsage{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear service usage: %w", err)
	}
	return nil
}
