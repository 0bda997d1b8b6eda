package vendors

import (
	"testing"

	"pmshub/pkg/model"
)

func TestMapReservationStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"confirmed lowercase", "confirmed", model.ReservationConfirmed},
		{"booked", "Booked", model.ReservationConfirmed},
		{"checked in with space", "Checked In", model.ReservationCheckedIn},
		{"checked in camel case", "CheckedIn", model.ReservationCheckedIn},
		{"check in underscore", "CHECK_IN", model.ReservationCheckedIn},
		{"checked out", "Checked Out", model.ReservationCheckedOut},
		{"checkout compact", "checkout", model.ReservationCheckedOut},
		{"cancelled", "Cancelled", model.ReservationCancelled},
		{"canceled american spelling", "canceled", model.ReservationCancelled},
		{"no show with space", "No Show", model.ReservationNoShow},
		{"no show underscore", "no_show", model.ReservationNoShow},
		{"empty defaults to confirmed", "", model.ReservationConfirmed},
		{"unknown defaults to confirmed", "pending-review", model.ReservationConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapReservationStatus(tt.input)
			if got != tt.want {
				t.Errorf("MapReservationStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapReservationStatusIdempotent(t *testing.T) {
	canonical := []string{
		model.ReservationConfirmed,
		model.ReservationCheckedIn,
		model.ReservationCheckedOut,
		model.ReservationCancelled,
		model.ReservationNoShow,
	}
	for _, status := range canonical {
		if got := MapReservationStatus(status); got != status {
			t.Errorf("MapReservationStatus(%q) = %q, expected canonical value to map to itself", status, got)
		}
	}
}

func TestMapRoomStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"available", "Available", model.RoomAvailable},
		{"clean maps to available", "Clean", model.RoomAvailable},
		{"occupied", "occupied", model.RoomOccupied},
		{"dirty maps to occupied", "Dirty", model.RoomOccupied},
		{"maintenance", "Under Maintenance", model.RoomMaintenance},
		{"repair maps to maintenance", "in repair", model.RoomMaintenance},
		{"out of order upper snake", "OUT_OF_ORDER", model.RoomOutOfOrder},
		{"out of order with spaces", "Out of Order", model.RoomOutOfOrder},
		{"out of service", "Out of Service", model.RoomOutOfOrder},
		{"on order", "on order", model.RoomOutOfOrder},
		{"empty defaults to available", "", model.RoomAvailable},
		{"unknown defaults to available", "inspected", model.RoomAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRoomStatus(tt.input)
			if got != tt.want {
				t.Errorf("MapRoomStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapRoomStatusIdempotent(t *testing.T) {
	canonical := []string{
		model.RoomAvailable,
		model.RoomOccupied,
		model.RoomMaintenance,
		model.RoomOutOfOrder,
	}
	for _, status := range canonical {
		if got := MapRoomStatus(status); got != status {
			t.Errorf("MapRoomStatus(%q) = %q, expected canonical value to map to itself", status, got)
		}
	}
}
