package vendors

import (
	"strings"

	"pmshub/pkg/model"
)

// MapReservationStatus folds a vendor status label onto the canonical
// reservation status set. Matching is case-insensitive and substring
// based so "CheckedIn", "Checked In" and "CHECK_IN" all land on the
// same value. Unrecognized and empty labels map to confirmed.
func MapReservationStatus(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "confirm") || strings.Contains(s, "booked"):
		return model.ReservationConfirmed
	case strings.Contains(s, "check") && strings.Contains(s, "in"):
		return model.ReservationCheckedIn
	case strings.Contains(s, "check") && strings.Contains(s, "out"):
		return model.ReservationCheckedOut
	case strings.Contains(s, "cancel"):
		return model.ReservationCancelled
	case strings.Contains(s, "no") && strings.Contains(s, "show"):
		return model.ReservationNoShow
	default:
		return model.ReservationConfirmed
	}
}

// MapRoomStatus folds a vendor room status label onto the canonical
// room status set, treating housekeeping labels ("clean", "dirty") as
// availability signals. Unrecognized and empty labels map to available.
func MapRoomStatus(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "available") || strings.Contains(s, "clean"):
		return model.RoomAvailable
	case strings.Contains(s, "occupied") || strings.Contains(s, "dirty"):
		return model.RoomOccupied
	case strings.Contains(s, "maintenance") || strings.Contains(s, "repair"):
		return model.RoomMaintenance
	case strings.Contains(s, "out") || strings.Contains(s, "order"):
		return model.RoomOutOfOrder
	default:
		return model.RoomAvailable
	}
}
