package services

import (
	"context"

	"HospitalRecords/models"
	"HospitalRecords/repositories"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx)
}

func (s *AppointmentService) FilterByDateRange(ctx context.Context, start, end string) ([]models.Appointment, error) {
	return s.repository.FilterByDateRange(ctx, start, end)
}

func (s *AppointmentService) DaysBetween(ctx context.Context, patientID string) ([]int, error) {
	return s.repository.DaysBetween(ctx, patientID)
}
