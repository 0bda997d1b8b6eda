package demo

import (
	"testing"

	"pmshub/pkg/model"
)

func TestConnectionsCoverDistinctVendors(t *testing.T) {
	connections := Connections()
	if len(connections) != 3 {
		t.Fatalf("expected 3 demo connections, got %d", len(connections))
	}

	vendors := map[string]bool{}
	for _, conn := range connections {
		vendors[conn.Type] = true
		if conn.ID == "" || conn.Name == "" || conn.APIEndpoint == "" {
			t.Errorf("incomplete demo connection: %+v", conn)
		}
	}
	for _, vendor := range []string{model.VendorOpera, model.VendorMews, model.VendorCustom} {
		if !vendors[vendor] {
			t.Errorf("demo connections missing vendor %q", vendor)
		}
	}
}

func TestDataIsInternallyConsistent(t *testing.T) {
	data := Data()

	if len(data.Reservations) == 0 || len(data.Guests) == 0 || len(data.Rooms) == 0 ||
		len(data.Revenue) == 0 || len(data.Occupancy) == 0 {
		t.Fatal("every demo resource collection should be populated")
	}

	guests := map[string]bool{}
	for _, g := range data.Guests {
		guests[g.ID] = true
	}
	for _, r := range data.Reservations {
		if !guests[r.GuestID] {
			t.Errorf("reservation %s references unknown guest %s", r.ID, r.GuestID)
		}
	}

	for _, rev := range data.Revenue {
		sum := rev.RoomRevenue + rev.FBRevenue + rev.OtherRevenue
		if rev.TotalRevenue != sum {
			t.Errorf("revenue %s: total %v != components %v", rev.Date, rev.TotalRevenue, sum)
		}
	}

	for _, occ := range data.Occupancy {
		if occ.OccupiedRooms > occ.TotalRooms {
			t.Errorf("occupancy %s: occupied %d > total %d", occ.Date, occ.OccupiedRooms, occ.TotalRooms)
		}
	}
}

func TestDataReturnsIndependentCopies(t *testing.T) {
	first := Data()
	first.Reservations[0].Status = model.ReservationCancelled

	second := Data()
	if second.Reservations[0].Status == model.ReservationCancelled {
		t.Error("mutating one copy must not affect later copies")
	}
}
