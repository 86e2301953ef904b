package domain

import "errors"

type ReservationStatus string

// remember to add new statuses to the validReservationStatuses map
const (
	ReservationStatusOpen   ReservationStatus = "open"
	ReservationStatusClosed ReservationStatus = "closed"
)

var validReservationStatuses = map[ReservationStatus]struct{}{
	ReservationStatusOpen:   {},
	ReservationStatusClosed: {},
}

func ToReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if _, ok := validReservationStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid reservation status")
}
