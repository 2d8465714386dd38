package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

const (
	// AppointmentWindow is how far ahead an appointment may be and still
	// trigger a reminder. Both bounds are inclusive.
	AppointmentWindow = 24 * time.Hour

	SubjectAppointment = "Upcoming Appointment Reminder"
	SubjectMedication  = "Medication Reminder"
)

// Dispatcher delivers one rendered reminder to one recipient address.
// utils.Mailer satisfies it.
type Dispatcher interface {
	Send(to, subject, body string) error
}

// ScheduleMatcher decides which medication schedules are due at an instant,
// expressed as a SQL LIKE pattern against the free-text schedule column. The
// indirection exists so a real recurrence parser can replace the legacy
// heuristic without touching the query engine.
type ScheduleMatcher interface {
	DuePattern(t time.Time) string
}

// HourSubstringMatcher keeps the legacy semantics: a medication is due
// whenever its schedule text contains the current wall-clock hour as "HH:00".
// It re-fires on every run within the same hour; there is no sent-state
// tracking, so a 10-minute cadence emails the same medication up to six times
// an hour. Known gap, preserved for compatibility.
type HourSubstringMatcher struct{}

func (HourSubstringMatcher) DuePattern(t time.Time) string {
	return fmt.Sprintf("%%%02d:00%%", t.Hour())
}

// ReminderService selects due appointments and medications and dispatches one
// message per matched row, synchronously, within the same run.
type ReminderService struct {
	db         *gorm.DB
	dispatcher Dispatcher
	matcher    ScheduleMatcher
}

func NewReminderService(db *gorm.DB, dispatcher Dispatcher, matcher ScheduleMatcher) *ReminderService {
	if matcher == nil {
		matcher = HourSubstringMatcher{}
	}
	return &ReminderService{db: db, dispatcher: dispatcher, matcher: matcher}
}

type appointmentMatch struct {
	models.Appointment
	OwnerName  string
	OwnerEmail string
}

type medicationMatch struct {
	models.Medication
	OwnerName  string
	OwnerEmail string
}

// Run performs one reminder pass for the given instant. A failed send is
// logged and the loop moves to the next candidate; query errors are reported
// but never stop the other category from being checked.
func (s *ReminderService) Run(now time.Time) error {
	log.Printf("--- running reminder check at %s ---", now.Format("2006-01-02 15:04:05"))

	var errs []error

	appts, err := s.dueAppointments(now)
	if err != nil {
		errs = append(errs, fmt.Errorf("appointment query: %w", err))
	}
	for _, m := range appts {
		s.dispatch(m.OwnerEmail, SubjectAppointment, appointmentBody(m))
	}

	meds, err := s.dueMedications(now)
	if err != nil {
		errs = append(errs, fmt.Errorf("medication query: %w", err))
	}
	for _, m := range meds {
		s.dispatch(m.OwnerEmail, SubjectMedication, medicationBody(m))
	}

	log.Printf("--- reminder check finished ---")
	return errors.Join(errs...)
}

func (s *ReminderService) dueAppointments(now time.Time) ([]appointmentMatch, error) {
	var rows []appointmentMatch
	err := s.db.Model(&models.Appointment{}).
		Select("appointments.*, users.name AS owner_name, users.email AS owner_email").
		Joins("JOIN users ON users.id = appointments.owner_id").
		Where("appointments.appointment_datetime BETWEEN ? AND ?", now, now.Add(AppointmentWindow)).
		Scan(&rows).Error
	return rows, err
}

func (s *ReminderService) dueMedications(now time.Time) ([]medicationMatch, error) {
	var rows []medicationMatch
	err := s.db.Model(&models.Medication{}).
		Select("medications.*, users.name AS owner_name, users.email AS owner_email").
		Joins("JOIN users ON users.id = medications.owner_id").
		Where("medications.schedule LIKE ?", s.matcher.DuePattern(now)).
		Scan(&rows).Error
	return rows, err
}

// dispatch makes at most one delivery attempt and never propagates failure.
func (s *ReminderService) dispatch(to, subject, body string) {
	log.Printf("sending %q to %s", subject, to)
	if err := s.dispatcher.Send(to, subject, body); err != nil {
		log.Printf("failed to send reminder to %s: %v", to, err)
	}
}

func appointmentBody(m appointmentMatch) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"This is a reminder for your upcoming appointment:\n"+
			"Doctor: %s (%s)\n"+
			"Date & Time: %s\n"+
			"Location: %s\n\n"+
			"Have a great day!\nYour Personal Health Manager",
		m.OwnerName,
		m.DoctorName,
		m.Specialty,
		m.AppointmentDatetime.Format("Monday, January 02, 2006 at 03:04 PM"),
		m.Location,
	)
}

func medicationBody(m medicationMatch) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"It's time to take your medication:\n"+
			"Medication: %s\n"+
			"Dosage: %s\n"+
			"Schedule Info: %s\n\n"+
			"Stay healthy!\nYour Personal Health Manager",
		m.OwnerName,
		m.Name,
		m.Dosage,
		m.Schedule,
	)
}
