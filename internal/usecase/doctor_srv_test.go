package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDoctorFixture() (*repository.Repository, *fakeDoctorRepo, *fakeCounterRepo, *fakeTimeOffRepo) {
	doctors := &fakeDoctorRepo{byID: map[string]*entity.Doctor{}}
	counter := &fakeCounterRepo{}
	offs := &fakeTimeOffRepo{}

	repo := &repository.Repository{
		Doctor: doctors,
		Service: &fakeServiceRepo{byID: map[string]*entity.Service{
			"S001": {ID: "S001", Specialization: "Dermatology", Price: 300},
		}},
		Counter: counter,
		TimeOff: offs,
	}

	return repo, doctors, counter, offs
}

func validDoctorRequest() *request.CreateDoctorRequest {
	return &request.CreateDoctorRequest{
		Name:           "Dr. Tan",
		Specialization: "Dermatology",
		Gender:         "Female",
		ServiceIDs:     []string{"S001"},
	}
}

func TestCreateDoctorSequentialID(t *testing.T) {
	repo, doctors, _, _ := newDoctorFixture()
	svc := NewDoctorService(repo, zap.NewNop())

	resp, err := svc.CreateDoctor(context.Background(), validDoctorRequest())
	require.NoError(t, err)

	assert.Equal(t, "D001", resp.ID)
	require.NotNil(t, doctors.byID["D001"])
	assert.Equal(t, 5.0, doctors.byID["D001"].Rating)
}

func TestCreateDoctorCounterFailureIsFatal(t *testing.T) {
	repo, doctors, counter, _ := newDoctorFixture()
	counter.err = errors.New("counter unreachable")
	svc := NewDoctorService(repo, zap.NewNop())

	// No random fallback for doctor IDs.
	_, err := svc.CreateDoctor(context.Background(), validDoctorRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocate doctor ID")
	assert.Empty(t, doctors.byID)
}

func TestCreateDoctorUnknownService(t *testing.T) {
	repo, _, _, _ := newDoctorFixture()
	svc := NewDoctorService(repo, zap.NewNop())

	req := validDoctorRequest()
	req.ServiceIDs = []string{"S999"}

	_, err := svc.CreateDoctor(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAddTimeOffSequentialID(t *testing.T) {
	repo, doctors, _, offs := newDoctorFixture()
	doctors.byID["D001"] = &entity.Doctor{ID: "D001", Name: "Dr. Tan"}
	svc := NewDoctorService(repo, zap.NewNop())

	resp, err := svc.AddTimeOff(context.Background(), &request.AddTimeOffRequest{
		DoctorID: "D001",
		Date:     "15/09/2026",
		Reason:   "conference",
	})
	require.NoError(t, err)

	assert.Equal(t, "O00000001", resp.ID)
	require.Len(t, offs.records, 1)
	assert.Equal(t, "D001", offs.records[0].DoctorID)
	assert.Empty(t, offs.records[0].BookingID)
}

func TestAddTimeOffUnknownDoctor(t *testing.T) {
	repo, _, _, _ := newDoctorFixture()
	svc := NewDoctorService(repo, zap.NewNop())

	_, err := svc.AddTimeOff(context.Background(), &request.AddTimeOffRequest{
		DoctorID: "D999",
		Date:     "15/09/2026",
		Reason:   "conference",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetDoctorsByService(t *testing.T) {
	repo, doctors, _, _ := newDoctorFixture()
	doctors.byID["D001"] = &entity.Doctor{ID: "D001", ServiceIDs: []string{"S001"}}
	doctors.byID["D002"] = &entity.Doctor{ID: "D002", ServiceIDs: []string{"S002"}}
	svc := NewDoctorService(repo, zap.NewNop())

	found, err := svc.GetDoctorsByService(context.Background(), "S001")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "D001", found[0].ID)
}
