package scheduling

import (
	"context"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

type fakeRepo struct {
	getSalonFn        func(ctx context.Context, id uint) (*models.Salon, error)
	getServiceFn      func(ctx context.Context, salonID, serviceID uint) (*models.Service, error)
	getOrCreateClient func(ctx context.Context, salonID uint, name, phone, email string) (*models.Client, error)

	listOverlappingFn func(ctx context.Context, serviceID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error)
	listForDayFn      func(ctx context.Context, staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	bookFn       func(ctx context.Context, ap *models.Appointment) error
	rescheduleFn func(ctx context.Context, ap *models.Appointment, newStart, newEnd time.Time) error

	getForStaffFn   func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error)
	updateFn        func(ctx context.Context, ap *models.Appointment) error
	listForPeriodFn func(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error)
}

func (f *fakeRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	if f.getSalonFn == nil {
		return &models.Salon{ID: id, Timezone: "UTC"}, nil
	}
	return f.getSalonFn(ctx, id)
}

func (f *fakeRepo) GetService(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, salonID, serviceID)
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	if f.getOrCreateClient == nil {
		return &models.Client{ID: 1, SalonID: salonID, Name: name, Phone: phone, Email: email}, nil
	}
	return f.getOrCreateClient(ctx, salonID, name, phone, email)
}

func (f *fakeRepo) ListAppointmentsOverlapping(ctx context.Context, serviceID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error) {
	if f.listOverlappingFn == nil {
		panic("ListAppointmentsOverlapping not configured")
	}
	return f.listOverlappingFn(ctx, serviceID, start, end, excludeID)
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if f.listForDayFn == nil {
		panic("ListAppointmentsForDay not configured")
	}
	return f.listForDayFn(ctx, staffID, dayStart, dayEnd)
}

func (f *fakeRepo) BookAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.bookFn == nil {
		panic("BookAppointment not configured")
	}
	return f.bookFn(ctx, ap)
}

func (f *fakeRepo) RescheduleAppointment(ctx context.Context, ap *models.Appointment, newStart, newEnd time.Time) error {
	if f.rescheduleFn == nil {
		panic("RescheduleAppointment not configured")
	}
	return f.rescheduleFn(ctx, ap, newStart, newEnd)
}

func (f *fakeRepo) GetAppointmentForStaff(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
	if f.getForStaffFn == nil {
		panic("GetAppointmentForStaff not configured")
	}
	return f.getForStaffFn(ctx, appointmentID, staffID)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateFn == nil {
		panic("UpdateAppointment not configured")
	}
	return f.updateFn(ctx, ap)
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	if f.listForPeriodFn == nil {
		panic("ListAppointmentsForPeriod not configured")
	}
	return f.listForPeriodFn(ctx, staffID, start, end)
}

// utcService is bookable on weekdays 09:00-17:00.
func utcService(durationMin int) *models.Service {
	return &models.Service{
		ID:                 1,
		SalonID:            1,
		Name:               "Haircut",
		DurationMin:        durationMin,
		IsAvailable:        true,
		AvailableDays:      []int{0, 1, 2, 3, 4, 5, 6},
		AvailableTimeStart: 9,
		AvailableTimeEnd:   17,
	}
}
