package services

import (
	"context"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

// ServiceUsageService fronts the per-patient staging list.
type ServiceUsageService struct {
	repository *repositories.ServiceUsageRepository
}

func NewServiceUsageService(repository *repositories.ServiceUsageRepository) *ServiceUsageService {
	return &ServiceUsageService{repository: repository}
}

func (s *ServiceUsageService) AddForPatient(ctx context.Context, patientID string, svc *models.Service) error {
	return s.repository.AddForPatient(ctx, patientID, svc)
}

func (s *ServiceUsageService) GetForPatient(ctx context.Context, patientID string) ([]models.ServiceUsage, error) {
	return s.repository.GetForPatient(ctx, patientID)
}

func (s *ServiceUsageService) ClearForPatient(ctx context.Context, patientID string) error {
	return s.repository.ClearForPatient(ctx, patientID)
}
