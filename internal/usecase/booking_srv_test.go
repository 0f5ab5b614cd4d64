package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sequentialBookingID = regexp.MustCompile(`^B\d{7}$`)

func newBookingFixture() (*repository.Repository, *fakeAppointmentRepo, *fakeCounterRepo) {
	appts := &fakeAppointmentRepo{}
	counter := &fakeCounterRepo{}

	repo := &repository.Repository{
		Service: &fakeServiceRepo{byID: map[string]*entity.Service{
			"S001": {ID: "S001", Specialization: "Dermatology", Price: 300},
		}},
		Doctor: &fakeDoctorRepo{byID: map[string]*entity.Doctor{
			"D001": {ID: "D001", Name: "Dr. Tan", ServiceIDs: []string{"S001"}},
		}},
		Appointment: appts,
		Payment:     &fakePaymentRepo{},
		Counter:     counter,
	}

	return repo, appts, counter
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceID:     "S001",
		DoctorID:      "D001",
		Date:          "15/09/2026",
		Time:          "9:30am",
		PatientName:   "Alice Wong",
		PatientAge:    34,
		PaymentMethod: "card",
	}
}

func TestCreateBookingSequentialID(t *testing.T) {
	repo, appts, counter := newBookingFixture()
	svc := NewBookingService(repo, zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), "U001", validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, "B0000001", resp.ID)
	assert.Equal(t, int64(1), counter.current[entity.BookingCounter])

	// Second booking gets the next value in the sequence.
	resp2, err := svc.CreateBooking(context.Background(), "U001", validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, "B0000002", resp2.ID)

	require.NotNil(t, appts.createdAppt)
	assert.Equal(t, entity.AppointmentStatusUpcoming, appts.createdAppt.Status)
}

func TestCreateBookingDepositIsHalfPrice(t *testing.T) {
	repo, appts, _ := newBookingFixture()
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), "U001", validBookingRequest())
	require.NoError(t, err)

	require.NotNil(t, appts.createdPay)
	assert.Equal(t, 150.0, appts.createdPay.Amount)
	assert.Equal(t, entity.PaymentStatusCompleted, appts.createdPay.Status)
	assert.Equal(t, entity.PaymentMethodCard, appts.createdPay.Method)
	assert.NotEmpty(t, appts.createdPay.TransactionID)
	assert.Equal(t, appts.createdAppt.ID, appts.createdPay.BookingID)
}

func TestCreateBookingFallbackIDWhenCounterFails(t *testing.T) {
	repo, appts, counter := newBookingFixture()
	counter.err = errors.New("counter unreachable")
	svc := NewBookingService(repo, zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), "U001", validBookingRequest())
	require.NoError(t, err)

	// Fallback IDs never collide with the sequential namespace.
	assert.False(t, sequentialBookingID.MatchString(resp.ID))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, resp.ID, appts.createdAppt.ID)
}

func TestCreateBookingServerClockStampsCreatedAt(t *testing.T) {
	repo, appts, _ := newBookingFixture()
	svc := NewBookingService(repo, zap.NewNop())

	before := time.Now()
	_, err := svc.CreateBooking(context.Background(), "U001", validBookingRequest())
	require.NoError(t, err)
	after := time.Now()

	created := appts.createdAppt.CreatedAt
	assert.False(t, created.Before(before))
	assert.False(t, created.After(after))
	assert.Equal(t, created, appts.createdPay.CreatedAt)
}

func TestCreateBookingRejectsUnknownDoctor(t *testing.T) {
	repo, _, _ := newBookingFixture()
	svc := NewBookingService(repo, zap.NewNop())

	req := validBookingRequest()
	req.DoctorID = "D999"

	_, err := svc.CreateBooking(context.Background(), "U001", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingRejectsServiceMismatch(t *testing.T) {
	repo, _, _ := newBookingFixture()
	repo.Service.(*fakeServiceRepo).byID["S002"] = &entity.Service{ID: "S002", Specialization: "Cardiology", Price: 500}
	svc := NewBookingService(repo, zap.NewNop())

	req := validBookingRequest()
	req.ServiceID = "S002"

	_, err := svc.CreateBooking(context.Background(), "U001", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not provide")
}

func TestCreateBookingConfirmFailurePropagates(t *testing.T) {
	repo, appts, _ := newBookingFixture()
	appts.createErr = errors.New("db down")
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), "U001", validBookingRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirm booking")
}

func TestGetDoctorBookingsPaginationMeta(t *testing.T) {
	repo, appts, _ := newBookingFixture()
	appts.byID = map[string]*entity.Appointment{
		"B0000001": {ID: "B0000001", DoctorID: "D001"},
		"B0000002": {ID: "B0000002", DoctorID: "D001"},
		"B0000003": {ID: "B0000003", DoctorID: "D001"},
		"B0000004": {ID: "B0000004", DoctorID: "D002"},
	}
	svc := NewBookingService(repo, zap.NewNop())

	resp, err := svc.GetDoctorBookings(context.Background(), "D001", &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	// The total counts every booking for the doctor, not just this page.
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	resp2, err := svc.GetDoctorBookings(context.Background(), "D001", &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, resp2.Data, 1)
	assert.Equal(t, int64(3), resp2.Pagination.Total)
}

func TestCancelBookingCreatesTimeOff(t *testing.T) {
	repo, appts, _ := newBookingFixture()
	appts.byID = map[string]*entity.Appointment{
		"B0000042": {
			ID:       "B0000042",
			DoctorID: "D001", DoctorName: "Dr. Tan",
			Date: "15/09/2026", Time: "9:30am",
			Status: entity.AppointmentStatusUpcoming,
		},
	}
	svc := NewBookingService(repo, zap.NewNop())

	err := svc.CancelBooking(context.Background(), "B0000042", "patient request")
	require.NoError(t, err)

	assert.Equal(t, "B0000042", appts.cancelledID)
	assert.Equal(t, "patient request", appts.cancelReason)

	off := appts.cancelOff
	require.NotNil(t, off)
	assert.Regexp(t, `^O\d{8}$`, off.ID)
	assert.Equal(t, "B0000042", off.BookingID)
	assert.Equal(t, "D001", off.DoctorID)
	// The freed slot mirrors the booking's schedule.
	assert.Equal(t, "15/09/2026", off.Date)
	assert.Equal(t, "9:30am", off.Time)
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	repo, appts, _ := newBookingFixture()
	appts.byID = map[string]*entity.Appointment{
		"B0000042": {ID: "B0000042", IsCancelled: true},
	}
	svc := NewBookingService(repo, zap.NewNop())

	err := svc.CancelBooking(context.Background(), "B0000042", "again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already cancelled")
	assert.Empty(t, appts.cancelledID)
}

func TestCancelBookingNotFound(t *testing.T) {
	repo, _, _ := newBookingFixture()
	svc := NewBookingService(repo, zap.NewNop())

	err := svc.CancelBooking(context.Background(), "B9999999", "reason")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
