package queryparams

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Appointment filter validation errors.
var (
	ErrDateRangeRequired = errors.New("dateFrom and dateTo are required")
	ErrDateRangeInvalid  = errors.New("dateFrom must not be after dateTo")
	ErrBarberIDsInvalid  = errors.New("barberIds must be a comma separated list of integers")
	ErrClientIDInvalid   = errors.New("clientId must be a positive integer")
)

// AppointmentParams is the parsed filter set of the list-style appointment
// endpoints. ClientID is inclusive for List and exclusive for TakenSlots;
// the polarity is decided by the caller, not here.
type AppointmentParams struct {
	DateFrom  time.Time
	DateTo    time.Time
	BarberIDs []uint
	ClientID  *uint
}

// ParseAppointmentParams parses raw query-string values. Dates accept
// RFC 3339 or plain YYYY-MM-DD.
func ParseAppointmentParams(dateFrom, dateTo, barberIDs, clientID string) (AppointmentParams, error) {
	var params AppointmentParams

	if strings.TrimSpace(dateFrom) == "" || strings.TrimSpace(dateTo) == "" {
		return params, ErrDateRangeRequired
	}

	from, err := parseDate(dateFrom)
	if err != nil {
		return params, err
	}
	to, err := parseDate(dateTo)
	if err != nil {
		return params, err
	}
	if from.After(to) {
		return params, ErrDateRangeInvalid
	}
	params.DateFrom = from
	params.DateTo = to

	if ids := strings.TrimSpace(barberIDs); ids != "" {
		for _, part := range strings.Split(ids, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil || id == 0 {
				return AppointmentParams{}, ErrBarberIDsInvalid
			}
			params.BarberIDs = append(params.BarberIDs, uint(id))
		}
	}

	if raw := strings.TrimSpace(clientID); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return AppointmentParams{}, ErrClientIDInvalid
		}
		cid := uint(id)
		params.ClientID = &cid
	}

	return params, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
