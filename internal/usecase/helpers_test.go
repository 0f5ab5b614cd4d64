package usecase

import (
	"context"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
)

// In-memory repository fakes for service tests.

type fakeCounterRepo struct {
	current map[string]int64
	err     error
}

func (f *fakeCounterRepo) Next(ctx context.Context, key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.current == nil {
		f.current = make(map[string]int64)
	}
	f.current[key]++
	return f.current[key], nil
}

type fakeServiceRepo struct {
	byID map[string]*entity.Service
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	return f.byID[id], nil
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]*entity.Service, error) {
	var services []*entity.Service
	for _, svc := range f.byID {
		services = append(services, svc)
	}
	return services, nil
}

type fakeDoctorRepo struct {
	byID map[string]*entity.Doctor
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	if f.byID == nil {
		f.byID = make(map[string]*entity.Doctor)
	}
	f.byID[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	return f.byID[id], nil
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	for _, doc := range f.byID {
		doctors = append(doctors, doc)
	}
	return doctors, nil
}

func (f *fakeDoctorRepo) FindByServiceID(ctx context.Context, serviceID string) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	for _, doc := range f.byID {
		if doc.ProvidesService(serviceID) {
			doctors = append(doctors, doc)
		}
	}
	return doctors, nil
}

type fakePaymentRepo struct {
	byBooking map[string]*entity.Payment
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) FindByBookingID(ctx context.Context, bookingID string) (*entity.Payment, error) {
	return f.byBooking[bookingID], nil
}

func (f *fakePaymentRepo) SumCompleted(ctx context.Context) (float64, error) {
	var sum float64
	for _, p := range f.byBooking {
		if p.Status == entity.PaymentStatusCompleted {
			sum += p.Amount
		}
	}
	return sum, nil
}

type fakeTimeOffRepo struct {
	records []*entity.TimeOff
}

func (f *fakeTimeOffRepo) Create(ctx context.Context, off *entity.TimeOff) error {
	f.records = append(f.records, off)
	return nil
}

func (f *fakeTimeOffRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]*entity.TimeOff, error) {
	var offs []*entity.TimeOff
	for _, off := range f.records {
		if off.DoctorID == doctorID {
			offs = append(offs, off)
		}
	}
	return offs, nil
}

func (f *fakeTimeOffRepo) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]*entity.TimeOff, error) {
	var offs []*entity.TimeOff
	for _, off := range f.records {
		if off.DoctorID == doctorID && off.Date == date {
			offs = append(offs, off)
		}
	}
	return offs, nil
}

func (f *fakeTimeOffRepo) Delete(ctx context.Context, id string) error {
	for i, off := range f.records {
		if off.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.byEmail == nil {
		f.byEmail = make(map[string]*entity.User)
	}
	if f.byID == nil {
		f.byID = make(map[string]*entity.User)
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

type fakeSessionRepo struct {
	created []*entity.Session
	revoked []string
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.created = append(f.created, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, s := range f.created {
		if s.Token.String() == token && s.RevokedAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

type fakeAppointmentRepo struct {
	byID     map[string]*entity.Appointment
	upcoming []*entity.Appointment

	createdAppt *entity.Appointment
	createdPay  *entity.Payment
	createErr   error

	cancelledID  string
	cancelReason string
	cancelOff    *entity.TimeOff
	cancelErr    error

	batchIDs    []string
	batchStatus entity.AppointmentStatus
}

func (f *fakeAppointmentRepo) CreateWithPayment(ctx context.Context, appt *entity.Appointment, payment *entity.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdAppt = appt
	f.createdPay = payment
	if f.byID == nil {
		f.byID = make(map[string]*entity.Appointment)
	}
	f.byID[appt.ID] = appt
	return nil
}

func (f *fakeAppointmentRepo) CancelWithTimeOff(ctx context.Context, id, reason string, off *entity.TimeOff) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelReason = reason
	f.cancelOff = off
	if appt, ok := f.byID[id]; ok {
		appt.IsCancelled = true
		appt.CancellationReason = reason
	}
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return f.byID[id], nil
}

func (f *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID string, limit, offset int) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	for _, appt := range f.byID {
		if appt.PatientID == patientID {
			appts = append(appts, appt)
		}
	}
	return page(appts, limit, offset), nil
}

func page(appts []*entity.Appointment, limit, offset int) []*entity.Appointment {
	if offset >= len(appts) {
		return nil
	}
	appts = appts[offset:]
	if limit > 0 && len(appts) > limit {
		appts = appts[:limit]
	}
	return appts
}

func (f *fakeAppointmentRepo) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	appts, _ := f.FindByPatientID(ctx, patientID, 0, 0)
	return int64(len(appts)), nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID string, limit, offset int) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	for _, appt := range f.byID {
		if appt.DoctorID == doctorID {
			appts = append(appts, appt)
		}
	}
	return page(appts, limit, offset), nil
}

func (f *fakeAppointmentRepo) CountByDoctorID(ctx context.Context, doctorID string) (int64, error) {
	appts, _ := f.FindByDoctorID(ctx, doctorID, 0, 0)
	return int64(len(appts)), nil
}

func (f *fakeAppointmentRepo) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	for _, appt := range f.byID {
		if appt.DoctorID == doctorID && appt.Date == date && !appt.IsCancelled {
			appts = append(appts, appt)
		}
	}
	return appts, nil
}

func (f *fakeAppointmentRepo) FindUpcoming(ctx context.Context) ([]*entity.Appointment, error) {
	return f.upcoming, nil
}

func (f *fakeAppointmentRepo) UpdateStatusBatch(ctx context.Context, ids []string, status entity.AppointmentStatus) (int64, error) {
	f.batchIDs = ids
	f.batchStatus = status
	return int64(len(ids)), nil
}

func (f *fakeAppointmentRepo) CountByService(ctx context.Context) ([]repository.ServiceCount, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) CountByMonth(ctx context.Context) ([]repository.MonthCount, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) CountTotals(ctx context.Context) (int64, int64, error) {
	var total, cancelled int64
	for _, appt := range f.byID {
		total++
		if appt.IsCancelled {
			cancelled++
		}
	}
	return total, cancelled, nil
}
