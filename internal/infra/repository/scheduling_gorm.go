package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// liveFilter keeps cancelled and soft-deleted appointments out of every
// conflict and availability query.
const liveFilter = "is_cancelled = false AND is_deleted = false"

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *SchedulingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *SchedulingGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment (conflict reads)
// --------------------------------------------------

func (r *SchedulingGormRepository) ListAppointmentsOverlapping(
	ctx context.Context,
	serviceID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"service_id = ? AND "+liveFilter+" AND start_time < ? AND end_time > ?",
			serviceID, end, start,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SchedulingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"staff_id = ? AND "+liveFilter+" AND start_time >= ? AND start_time < ?",
			staffID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (guarded writes)
// --------------------------------------------------

func (r *SchedulingGormRepository) BookAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflict(tx, ap.ServiceID, ap.StartTime, ap.EndTime, nil); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *SchedulingGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
	newStart time.Time,
	newEnd time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflict(tx, ap.ServiceID, newStart, newEnd, &ap.ID); err != nil {
			return err
		}

		ap.StartTime = newStart
		ap.EndTime = newEnd
		return tx.Save(ap).Error
	})
}

// assertNoConflict fetches the overlapping rows FOR UPDATE inside the caller's
// transaction. Postgres refuses FOR UPDATE on aggregates, so this selects the
// ids instead of counting, and locking finds nothing when the window is still
// empty. The appointments_no_overlap exclusion constraint is the guard that
// actually stops two concurrent inserts.
func assertNoConflict(
	tx *gorm.DB,
	serviceID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) error {

	var rows []models.Appointment
	if err := lockedConflictQuery(tx, serviceID, start, end, excludeID).Find(&rows).Error; err != nil {
		return err
	}

	if len(rows) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func lockedConflictQuery(
	tx *gorm.DB,
	serviceID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) *gorm.DB {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where(
			"service_id = ? AND "+liveFilter+" AND start_time < ? AND end_time > ?",
			serviceID, end, start,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	return q
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAppointmentForStaff(
	ctx context.Context,
	appointmentID uint,
	staffID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND staff_id = ? AND is_deleted = false", appointmentID, staffID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"staff_id = ? AND is_deleted = false AND start_time >= ? AND start_time < ?",
			staffID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
