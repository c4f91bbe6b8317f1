package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"HospitalRecords/cache"
	"HospitalRecords/models"
	"HospitalRecords/utils"
)

// BillingRepository folds a patient's staged service usage into a bill
// with snapshotted line items. The staging component is injected; the
// billing flow is its only writer besides the usage menu itself.
type BillingRepository struct {
	crud[models.Bill]
	staging *ServiceUsageRepository
}

func NewBillingRepository(db *gorm.DB, c *cache.Cache, staging *ServiceUsageRepository) *BillingRepository {
	return &BillingRepository{
		crud: crud[models.Bill]{
			db:          db,
			cache:       c,
			entity:      "bill",
			keyColumn:   "bill_id",
			cachePrefix: "billing",
			validate:    utils.ValidateBill,
			validateID:  utils.ValidateBillID,
			keyOf:       func(b *models.Bill) string { return b.BillID },
		},
		staging: staging,
	}
}

// Create validates the bill, totals the patient's staged usage, and
// writes the bill row plus one line item per staged row in a single
// transaction. The staging list is cleared on success and on generic
// store errors alike, but kept intact when the bill id is a duplicate
// or any pre-insert gate fails, so a corrected retry can still bill
// the same usage.
func (r *BillingRepository) Create(ctx context.Context, bill *models.Bill) error {
	if bill.BillingDate == "" {
		bill.BillingDate = time.Now().Format(utils.DateLayout)
	}
	if err := utils.ValidateBill(bill); err != nil {
		return err
	}

	usage, err := r.staging.GetForPatient(ctx, bill.PatientID)
	if err != nil {
		return err
	}
	if len(usage) == 0 {
		return ErrNoServicesToBill
	}

	total := 0.0
	for _, u := range usage {
		total += u.Cost
	}
	bill.TotalAmount = total

	db := r.db.WithContext(ctx)
	if err := requireExists(db, &models.Patient{}, "patient_id", "Patient", bill.PatientID); err != nil {
		return err
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return err
		}
		for _, u := range usage {
			item := models.BilledService{
				BillID:      bill.BillID,
				ServiceID:   u.ServiceID,
				ServiceName: u.ServiceName,
				Cost:        u.Cost,
			}
			// Existence probe instead of relying on the duplicate-key
			// signal: a failed insert would poison the transaction.
			var count int64
			if err := tx.Model(&models.BilledService{}).
				Where("bill_id = ? AND service_id = ?", bill.BillID, u.ServiceID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				log.Warn().
					Str("bill_id", bill.BillID).
					Str("service_id", u.ServiceID).
					Msg("duplicate billed service entry, skipping")
				continue
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(txErr, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	if cerr := r.staging.ClearForPatient(ctx, bill.PatientID); cerr != nil {
		log.Error().Err(cerr).Str("patient_id", bill.PatientID).Msg("failed to clear staged service usage")
	}

	if txErr != nil {
		return fmt.Errorf("failed to create bill: %w", txErr)
	}
	r.invalidate(ctx, bill.BillID)
	return nil
}

// Update re-derives the total from the patient's current staging list
// (not from the bill's recorded line items) and replaces the bill row.
// Line items are left untouched. The staging list is cleared whether
// the replace succeeded, missed, or failed.
func (r *BillingRepository) Update(ctx context.Context, bill *models.Bill) error {
	if bill.BillingDate == "" {
		bill.BillingDate = time.Now().Format(utils.DateLayout)
	}
	if err := utils.ValidateBill(bill); err != nil {
		return err
	}

	usage, err := r.staging.GetForPatient(ctx, bill.PatientID)
	if err != nil {
		return err
	}
	if len(usage) == 0 {
		return ErrNoServicesToBill
	}

	total := 0.0
	for _, u := range usage {
		total += u.Cost
	}
	bill.TotalAmount = total

	db := r.db.WithContext(ctx)
	if err := requireExists(db, &models.Patient{}, "patient_id", "Patient", bill.PatientID); err != nil {
		return err
	}

	var opErr error
	res := db.Model(&models.Bill{}).
		Where("bill_id = ?", bill.BillID).
		Select("*").
		Updates(bill)
	if res.Error != nil {
		opErr = fmt.Errorf("failed to update bill: %w", res.Error)
	} else if res.RowsAffected == 0 {
		opErr = ErrNotFound
	}

	if cerr := r.staging.ClearForPatient(ctx, bill.PatientID); cerr != nil {
		log.Error().Err(cerr).Str("patient_id", bill.PatientID).Msg("failed to clear staged service usage")
	}

	if opErr == nil {
		r.invalidate(ctx, bill.BillID)
	}
	return opErr
}

// LineItems returns the permanent service snapshots attached to a bill.
func (r *BillingRepository) LineItems(ctx context.Context, billID string) ([]models.BilledService, error) {
	var rows []models.BilledService
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("service_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch billed services: %w", err)
	}
	return rows, nil
}

// LatestAppointment returns the patient's most recent appointment and
// its doctor, or (nil, nil, nil) when the patient has none.
func (r *BillingRepository) LatestAppointment(ctx context.Context, patientID string) (*models.Appointment, *models.Doctor, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to fetch latest appointment: %w", err)
	}

	var doctor models.Doctor
	err = r.db.WithContext(ctx).
		First(&doctor, "doctor_id = ?", appt.DoctorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &appt, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to fetch appointment doctor: %w", err)
	}
	return &appt, &doctor, nil
}

// BillingTotals breaks down ComputeTotalBilling's read-only aggregate.
type BillingTotals struct {
	ServiceTotal    float64
	ConsultingTotal float64
}

// Total is the sum of currently staged service costs and the
// consulting charges of every appointment the patient has, which is a
// different basis from an invoice's total.
func (t BillingTotals) Total() float64 {
	return t.ServiceTotal + t.ConsultingTotal
}

// ComputeTotalBilling sums the patient's staged usage costs and the
// consulting charges across all of their appointments without writing
// anything.
func (r *BillingRepository) ComputeTotalBilling(ctx context.Context, patientID string) (BillingTotals, error) {
	var totals BillingTotals
	db := r.db.WithContext(ctx)

	err := db.Model(&models.ServiceUsage{}).
		Where("patient_id = ?", patientID).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&totals.ServiceTotal).Error
	if err != nil {
		return BillingTotals{}, fmt.Errorf("failed to sum staged service costs: %w", err)
	}

	err = db.Model(&models.Appointment{}).
		Where("patient_id = ?", patientID).
		Select("COALESCE(SUM(consulting_charge), 0)").
		Scan(&totals.ConsultingTotal).Error
	if err != nil {
		return BillingTotals{}, fmt.Errorf("failed to sum consulting charges: %w", err)
	}

	return totals, nil
}
