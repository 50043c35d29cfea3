package scheduling

import (
	"context"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (conflict reads) --------

	// ListAppointmentsOverlapping returns the live appointments of a service
	// that intersect [start, end), start_time ascending, minus excludeID.
	ListAppointmentsOverlapping(
		ctx context.Context,
		serviceID uint,
		start time.Time,
		end time.Time,
		excludeID *uint,
	) ([]models.Appointment, error)

	// ListAppointmentsForDay returns the live appointments of one staff
	// member inside [dayStart, dayEnd), start_time ascending.
	ListAppointmentsForDay(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (guarded writes) --------

	// BookAppointment re-checks conflicts and inserts inside one transaction
	// with row locks, so two concurrent bookings cannot both pass the check.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RescheduleAppointment moves ap to [newStart, newEnd) under the same
	// transactional guard, ignoring ap's own row in the conflict check.
	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
		newStart time.Time,
		newEnd time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForStaff(
		ctx context.Context,
		appointmentID uint,
		staffID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
