package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"docconnect/internal/domain/entity"
)

var (
	ErrWeekdayMismatch = errors.New("weekday does not match the date")
	ErrNoVisitingHours = errors.New("no visiting hours defined for the selected day")
	ErrInvalidDate     = errors.New("invalid date format")
)

// ClinicTimeZone is the fixed local timezone of the clinic. Every date
// comparison for duplicate detection and capacity counting uses this
// zone, so bookings near midnight land in the right day.
const ClinicTimeZone = "Asia/Dhaka"

var weekdayNames = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// SlotResolver normalizes booking dates to the clinic timezone and
// resolves chamber visiting hours for a weekday.
type SlotResolver struct {
	loc *time.Location
}

func NewSlotResolver() (*SlotResolver, error) {
	loc, err := time.LoadLocation(ClinicTimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic timezone: %w", err)
	}
	return &SlotResolver{loc: loc}, nil
}

// ResolveDate parses dateStr (RFC 3339 or YYYY-MM-DD), checks that the
// supplied weekday label matches the actual day-of-week in the clinic
// timezone, and returns midnight of that day in the clinic zone as a
// UTC instant.
func (r *SlotResolver) ResolveDate(dateStr, weekday string) (time.Time, error) {
	parsed, err := r.parse(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	zoned := parsed.In(r.loc)
	if weekdayNames[int(zoned.Weekday())] != strings.ToLower(weekday) {
		return time.Time{}, ErrWeekdayMismatch
	}

	normalized := time.Date(zoned.Year(), zoned.Month(), zoned.Day(), 0, 0, 0, 0, r.loc)
	return normalized.UTC(), nil
}

// NormalizeDate is ResolveDate without the weekday check, used for
// list filters that bucket by clinic-local day.
func (r *SlotResolver) NormalizeDate(dateStr string) (time.Time, error) {
	parsed, err := r.parse(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	zoned := parsed.In(r.loc)
	normalized := time.Date(zoned.Year(), zoned.Month(), zoned.Day(), 0, 0, 0, 0, r.loc)
	return normalized.UTC(), nil
}

// ResolveVisitingHour returns the configured window for the weekday, or
// ErrNoVisitingHours when the chamber is closed that day.
func (r *SlotResolver) ResolveVisitingHour(hours entity.VisitingHours, weekday string) (entity.VisitingHour, error) {
	hour, ok := hours.For(weekday)
	if !ok || hour.IsClosed() {
		return entity.VisitingHour{}, ErrNoVisitingHours
	}
	return hour, nil
}

// InClinicZone converts a stored instant back to clinic-local time,
// for display purposes.
func (r *SlotResolver) InClinicZone(t time.Time) time.Time {
	return t.In(r.loc)
}

// ParseInstant parses an RFC 3339 timestamp, used for client-supplied
// currentTime values.
func (r *SlotResolver) ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (r *SlotResolver) parse(dateStr string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}
	// Date-only values are interpreted as clinic-local days.
	if t, err := time.ParseInLocation("2006-01-02", dateStr, r.loc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
