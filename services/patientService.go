package services

import (
	"context"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	return s.repository.Update(ctx, patient)
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientService) SearchByName(ctx context.Context, substring string) ([]models.Patient, error) {
	return s.repository.SearchByName(ctx, substring)
}

func (s *PatientService) DaysAdmitted(ctx context.Context, id string) (int, error) {
	return s.repository.DaysAdmitted(ctx, id)
}
