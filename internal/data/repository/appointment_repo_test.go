package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/data/entity"
	"clinic-booking/pkg/utils"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// anyArgs builds n pgxmock.AnyArg() placeholders: pgxmock treats an
// expectation without WithArgs as expecting zero arguments, so "don't care
// about the values" must be spelled out per argument.
func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func newAppointmentMock(t *testing.T) (pgxmock.PgxPoolIface, AppointmentRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewAppointmentRepository(mock, zap.NewNop())
}

func fixtureAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:          "B0000042",
		PatientID:   "U001",
		PatientName: "Alice Wong",
		PatientAge:  34,
		DoctorID:    "D001",
		DoctorName:  "Dr. Tan",
		ServiceID:   "S001",
		ServiceName: "Dermatology",
		Date:        "15/09/2026",
		Time:        "9:30am",
		Status:      entity.AppointmentStatusUpcoming,
		Price:       300,
		CreatedAt:   time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func fixturePayment() *entity.Payment {
	return &entity.Payment{
		ID:            "pay-1",
		BookingID:     "B0000042",
		Amount:        150,
		Method:        entity.PaymentMethodCard,
		Status:        entity.PaymentStatusCompleted,
		TransactionID: "txn-1",
		CreatedAt:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateWithPaymentCommitsBoth(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(anyArgs(15)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(anyArgs(7)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.CreateWithPayment(context.Background(), fixtureAppointment(), fixturePayment())
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithPaymentBookingFailureRollsBack(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(anyArgs(15)...).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.CreateWithPayment(context.Background(), fixtureAppointment(), fixturePayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrWrite)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithPaymentPaymentFailureRollsBack(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	// Booking insert succeeds, payment insert fails: the whole batch must
	// roll back, leaving no booking without its payment.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(anyArgs(15)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(anyArgs(7)...).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.CreateWithPayment(context.Background(), fixtureAppointment(), fixturePayment())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrWrite)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelWithTimeOffCommitsBoth(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	off := &entity.TimeOff{
		ID:        "O00000007",
		DoctorID:  "D001",
		BookingID: "B0000042",
		Date:      "15/09/2026",
		Time:      "9:30am",
		Reason:    "patient request",
		CreatedAt: time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET is_cancelled").
		WithArgs("B0000042", "patient request").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO time_off").
		WithArgs(anyArgs(8)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.CancelWithTimeOff(context.Background(), "B0000042", "patient request", off)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelWithTimeOffUnknownBooking(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET is_cancelled").
		WithArgs("B9999999", "reason").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.CancelWithTimeOff(context.Background(), "B9999999", "reason", &entity.TimeOff{ID: "O00000008"})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelWithTimeOffInsertFailureRollsBack(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET is_cancelled").
		WithArgs("B0000042", "reason").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO time_off").
		WithArgs(anyArgs(8)...).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.CancelWithTimeOff(context.Background(), "B0000042", "reason", &entity.TimeOff{ID: "O00000009"})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrWrite)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusBatch(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	ids := []string{"B0000001", "B0000002"}
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(ids, entity.AppointmentStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	updated, err := repo.UpdateStatusBatch(context.Background(), ids, entity.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusBatchEmptyIsNoop(t *testing.T) {
	mock, repo := newAppointmentMock(t)

	updated, err := repo.UpdateStatusBatch(context.Background(), nil, entity.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	require.NoError(t, mock.ExpectationsWereMet())
}
