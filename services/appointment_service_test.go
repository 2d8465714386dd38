package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

func TestAppointmentListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	now := time.Now().UTC().Truncate(time.Second)
	for _, offset := range []time.Duration{time.Hour, 72 * time.Hour, 24 * time.Hour} {
		_, err := svc.Create(owner.ID, AppointmentInput{
			DoctorName:          "Dr. Lin",
			AppointmentDatetime: now.Add(offset),
		})
		require.NoError(t, err)
	}

	appts, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, appts, 3)
	assert.True(t, appts[0].AppointmentDatetime.After(appts[1].AppointmentDatetime))
	assert.True(t, appts[1].AppointmentDatetime.After(appts[2].AppointmentDatetime))
}

func TestAppointmentUpcomingWeekWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	now := time.Now().UTC().Truncate(time.Second)
	inWeek, err := svc.Create(owner.ID, AppointmentInput{
		DoctorName: "soon", AppointmentDatetime: now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	_, err = svc.Create(owner.ID, AppointmentInput{
		DoctorName: "next-month", AppointmentDatetime: now.Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	_, err = svc.Create(owner.ID, AppointmentInput{
		DoctorName: "past", AppointmentDatetime: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	appts, err := svc.Upcoming(owner.ID, now)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, inWeek.ID, appts[0].ID)
}

func TestAppointmentUpdateVanishedRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	_, err := svc.Update(owner.ID, 777, AppointmentInput{
		DoctorName: "Dr. Gone", AppointmentDatetime: time.Now(),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAppointmentDeleteVanishedRowIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	assert.NoError(t, svc.Delete(owner.ID, 777))
}

func TestAppointmentCannotTouchForeignRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	alice := models.User{Username: "alice", Email: "alice@x.com"}
	bob := models.User{Username: "bob", Email: "bob@x.com"}
	mustCreate(t, db, &alice)
	mustCreate(t, db, &bob)

	appt, err := svc.Create(alice.ID, AppointmentInput{
		DoctorName: "Dr. Lin", AppointmentDatetime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Update(bob.ID, appt.ID, AppointmentInput{
		DoctorName: "hijack", AppointmentDatetime: time.Now(),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.Delete(bob.ID, appt.ID)) // no-op, not a leak
	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
