package services

import (
	"context"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

type BillingService struct {
	repository *repositories.BillingRepository
}

func NewBillingService(repository *repositories.BillingRepository) *BillingService {
	return &BillingService{repository: repository}
}

func (s *BillingService) Create(ctx context.Context, bill *models.Bill) error {
	return s.repository.Create(ctx, bill)
}

func (s *BillingService) Update(ctx context.Context, bill *models.Bill) error {
	return s.repository.Update(ctx, bill)
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *BillingService) GetAll(ctx context.Context) ([]models.Bill, error) {
	return s.repository.GetAll(ctx)
}

func (s *BillingService) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *BillingService) ComputeTotalBilling(ctx context.Context, patientID string) (repositories.BillingTotals, error) {
	return s.repository.ComputeTotalBilling(ctx, patientID)
}
