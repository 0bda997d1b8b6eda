package vendors

import (
	"testing"

	"pmshub/pkg/model"
)

func TestLookupKnownVendors(t *testing.T) {
	for _, vendorType := range []string{
		model.VendorOpera,
		model.VendorMews,
		model.VendorFidelio,
		model.VendorProtel,
		model.VendorCloudbeds,
		model.VendorRMS,
		model.VendorCustom,
	} {
		adapter := Lookup(vendorType)
		if adapter == nil {
			t.Fatalf("Lookup(%q) returned nil", vendorType)
		}
		if adapter.Type() != vendorType {
			t.Errorf("Lookup(%q).Type() = %q", vendorType, adapter.Type())
		}
	}
}

func TestLookupUnknownVendorFallsBackToCustom(t *testing.T) {
	adapter := Lookup("hotelsoft-3000")
	if adapter.Type() != model.VendorCustom {
		t.Errorf("expected custom fallback, got %q", adapter.Type())
	}
}

func TestEndpointTables(t *testing.T) {
	tests := []struct {
		vendor   string
		resource string
		want     string
	}{
		{model.VendorOpera, ResourceGuests, "/profiles"},
		{model.VendorOpera, ResourceReservations, "/reservations"},
		{model.VendorMews, ResourceReservations, "/api/connector/v1/reservations/getAll"},
		{model.VendorMews, ResourceOccupancy, "/api/connector/v1/reports/getOccupancy"},
		{model.VendorFidelio, ResourceRooms, "/fidelio/v1/rooms"},
		{model.VendorProtel, ResourceRevenue, "/pms/v1/revenue"},
		{model.VendorCloudbeds, ResourceGuests, "/api/v1.1/getGuests"},
		{model.VendorRMS, ResourceOccupancy, "/api/occupancy"},
		{model.VendorCustom, ResourceGuests, "/guests"},
	}

	for _, tt := range tests {
		t.Run(tt.vendor+"/"+tt.resource, func(t *testing.T) {
			got := Lookup(tt.vendor).Endpoint(tt.resource)
			if got != tt.want {
				t.Errorf("Endpoint(%q) = %q, want %q", tt.resource, got, tt.want)
			}
		})
	}
}

func TestEndpointUnknownResourceFallback(t *testing.T) {
	got := Lookup(model.VendorOpera).Endpoint("folios")
	if got != "/folios" {
		t.Errorf("expected /folios fallback, got %q", got)
	}
}

func TestNormalizeMalformedInput(t *testing.T) {
	adapter := Lookup(model.VendorCustom)

	tests := []struct {
		name string
		raw  any
	}{
		{"nil body", nil},
		{"object body", map[string]any{"error": "rate limited"}},
		{"string body", "service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.NormalizeReservations(tt.raw); len(got) != 0 {
				t.Errorf("NormalizeReservations(%v) returned %d records, want 0", tt.raw, len(got))
			}
			if got := adapter.NormalizeGuests(tt.raw); len(got) != 0 {
				t.Errorf("NormalizeGuests(%v) returned %d records, want 0", tt.raw, len(got))
			}
			if got := adapter.NormalizeRooms(tt.raw); len(got) != 0 {
				t.Errorf("NormalizeRooms(%v) returned %d records, want 0", tt.raw, len(got))
			}
		})
	}
}

func TestNormalizeNonObjectArrayEntriesGetDefaults(t *testing.T) {
	adapter := Lookup(model.VendorCustom)
	rooms := adapter.NormalizeRooms([]any{"garbage", 42})
	if len(rooms) != 2 {
		t.Fatalf("expected 2 records, got %d", len(rooms))
	}
	for i, room := range rooms {
		if room.Status != model.RoomAvailable {
			t.Errorf("room %d status = %q, want default available", i, room.Status)
		}
		if room.Floor != 1 || room.Capacity != 2 {
			t.Errorf("room %d floor/capacity = %d/%d, want defaults 1/2", i, room.Floor, room.Capacity)
		}
	}
}

func TestGenericReservationDefaults(t *testing.T) {
	adapter := Lookup(model.VendorCustom)
	got := adapter.NormalizeReservations([]any{
		map[string]any{"reservation_id": "r-9", "guestId": "g-2", "roomNumber": "410"},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	r := got[0]
	if r.ID != "r-9" || r.GuestID != "g-2" || r.RoomNumber != "410" {
		t.Errorf("alias mapping failed: %+v", r)
	}
	if r.Status != model.ReservationConfirmed {
		t.Errorf("missing status should default to confirmed, got %q", r.Status)
	}
	if r.Currency != "USD" || r.Source != "Direct" {
		t.Errorf("currency/source defaults = %q/%q", r.Currency, r.Source)
	}
	if r.CreatedAt == "" || r.UpdatedAt == "" {
		t.Error("created/updated timestamps should default to now")
	}
}

func TestOperaReservationAliases(t *testing.T) {
	adapter := Lookup(model.VendorOpera)
	got := adapter.NormalizeReservations([]any{
		map[string]any{
			"ReservationId":     "OP-100",
			"ProfileId":         "P-7",
			"RoomNumber":        "212",
			"ArrivalDate":       "2026-09-01",
			"DepartureDate":     "2026-09-04",
			"ReservationStatus": "CHECKED IN",
			"TotalAmount":       640.50,
			"Currency":          "EUR",
			"Source":            "GDS",
		},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	r := got[0]
	if r.ID != "OP-100" || r.GuestID != "P-7" || r.CheckIn != "2026-09-01" || r.CheckOut != "2026-09-04" {
		t.Errorf("opera alias mapping failed: %+v", r)
	}
	if r.Status != model.ReservationCheckedIn {
		t.Errorf("status = %q, want checked_in", r.Status)
	}
	if r.TotalAmount != 640.50 || r.Currency != "EUR" || r.Source != "GDS" {
		t.Errorf("amount fields wrong: %+v", r)
	}
}

func TestOperaGuestAliases(t *testing.T) {
	adapter := Lookup(model.VendorOpera)
	got := adapter.NormalizeGuests([]any{
		map[string]any{
			"ProfileId":    "P-7",
			"FirstName":    "Maria",
			"LastName":     "Santos",
			"EmailAddress": "maria@example.com",
			"Nationality":  "Portugal",
			"VipStatus":    true,
			"TotalStays":   float64(12),
			"TotalRevenue": 8400.0,
		},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 guest, got %d", len(got))
	}
	g := got[0]
	if g.ID != "P-7" || g.Email != "maria@example.com" {
		t.Errorf("opera guest aliases failed: %+v", g)
	}
	if !g.VIPStatus || g.TotalStays != 12 || g.TotalSpent != 8400 {
		t.Errorf("vip/stays/spent = %v/%d/%v", g.VIPStatus, g.TotalStays, g.TotalSpent)
	}
	if g.Nationality != "PT" {
		t.Errorf("nationality %q should normalize to PT", g.Nationality)
	}
}

func TestMewsReservationNestedAmount(t *testing.T) {
	adapter := Lookup(model.VendorMews)
	got := adapter.NormalizeReservations([]any{
		map[string]any{
			"Id":         "MW-1",
			"CustomerId": "C-3",
			"StartUtc":   "2026-08-10T14:00:00Z",
			"EndUtc":     "2026-08-12T10:00:00Z",
			"State":      "Started",
			"TotalAmount": map[string]any{
				"Value":    220.0,
				"Currency": "GBP",
			},
			"Origin": "Booking.com",
		},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	r := got[0]
	if r.TotalAmount != 220 || r.Currency != "GBP" {
		t.Errorf("nested amount mapping failed: amount=%v currency=%q", r.TotalAmount, r.Currency)
	}
	if r.Source != "Booking.com" {
		t.Errorf("source = %q", r.Source)
	}
}

func TestMewsReservationFlatFallback(t *testing.T) {
	adapter := Lookup(model.VendorMews)
	got := adapter.NormalizeReservations([]any{
		map[string]any{"id": "MW-2", "total_amount": 99.0},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	if got[0].ID != "MW-2" || got[0].TotalAmount != 99 {
		t.Errorf("flat fallback failed: %+v", got[0])
	}
	if got[0].Currency != "USD" {
		t.Errorf("currency default = %q", got[0].Currency)
	}
}

func TestMewsGuestVIPClassification(t *testing.T) {
	adapter := Lookup(model.VendorMews)
	got := adapter.NormalizeGuests([]any{
		map[string]any{
			"Id":              "C-3",
			"FirstName":       "Jonas",
			"NationalityCode": "DE",
			"Classifications": []any{"Returning", "Vip"},
		},
		map[string]any{
			"Id":              "C-4",
			"Classifications": []any{"Returning"},
		},
		map[string]any{"Id": "C-5"},
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 guests, got %d", len(got))
	}
	if !got[0].VIPStatus {
		t.Error("guest with Vip classification should be flagged")
	}
	if got[1].VIPStatus || got[2].VIPStatus {
		t.Error("guests without Vip classification should not be flagged")
	}
	if got[0].Nationality != "DE" {
		t.Errorf("nationality = %q", got[0].Nationality)
	}
	if got[2].Nationality != "Unknown" {
		t.Errorf("missing nationality should default to Unknown, got %q", got[2].Nationality)
	}
}

func TestNormalizeRevenueRecomputesTotal(t *testing.T) {
	adapter := Lookup(model.VendorCustom)
	got := adapter.NormalizeRevenue([]any{
		map[string]any{
			"date":          "2026-08-01",
			"room_revenue":  1000.0,
			"fb_revenue":    250.0,
			"other_revenue": 50.0,
		},
		map[string]any{
			"date":          "2026-08-02",
			"room_revenue":  500.0,
			"total_revenue": 900.0,
		},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].TotalRevenue != 1300 {
		t.Errorf("missing total should be recomputed from components, got %v", got[0].TotalRevenue)
	}
	if got[1].TotalRevenue != 900 {
		t.Errorf("reported total must win over components, got %v", got[1].TotalRevenue)
	}
}

func TestNormalizeOccupancyRecomputesRate(t *testing.T) {
	adapter := Lookup(model.VendorCustom)
	got := adapter.NormalizeOccupancy([]any{
		map[string]any{
			"date":           "2026-08-01",
			"total_rooms":    float64(200),
			"occupied_rooms": float64(150),
		},
		map[string]any{
			"date":           "2026-08-02",
			"total_rooms":    float64(200),
			"occupied_rooms": float64(150),
			"occupancy_rate": 74.5,
		},
		map[string]any{
			"date": "2026-08-03",
		},
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].OccupancyRate != 75 {
		t.Errorf("missing rate should be derived, got %v", got[0].OccupancyRate)
	}
	if got[1].OccupancyRate != 74.5 {
		t.Errorf("reported rate must win, got %v", got[1].OccupancyRate)
	}
	if got[2].OccupancyRate != 0 {
		t.Errorf("rate with zero rooms stays zero, got %v", got[2].OccupancyRate)
	}
}

func TestNormalizeAmountFromString(t *testing.T) {
	adapter := Lookup(model.VendorCustom)
	got := adapter.NormalizeReservations([]any{
		map[string]any{"id": "r-1", "total_amount": "149.99"},
	})
	if len(got) != 1 || got[0].TotalAmount != 149.99 {
		t.Fatalf("string amount should parse, got %+v", got)
	}
}
