package vendors

import (
	"time"

	"pmshub/pkg/locale"
	"pmshub/pkg/model"
	"pmshub/pkg/sanitizer"
)

// Literal defaults substituted for fields a vendor response omits.
const (
	defaultCurrency    = "USD"
	defaultSource      = "Direct"
	defaultNationality = locale.UnknownNationality
	defaultFloor       = 1
	defaultCapacity    = 2
)

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// genericAdapter implements the canonical field-alias mapping shared by
// vendors without bespoke schemas (Fidelio, Protel, Cloudbeds, RMS and
// custom endpoints). Opera and Mews embed it for rooms, revenue and
// occupancy, which no vendor shapes differently.
type genericAdapter struct {
	vendorType string
	endpoints  map[string]string
}

func (a *genericAdapter) Type() string {
	return a.vendorType
}

func (a *genericAdapter) Endpoint(resource string) string {
	if path, ok := a.endpoints[resource]; ok {
		return path
	}
	return "/" + resource
}

func (a *genericAdapter) NormalizeReservations(raw any) []model.Reservation {
	records := asRecords(raw)
	reservations := make([]model.Reservation, 0, len(records))
	now := nowStamp()
	for _, rec := range records {
		reservations = append(reservations, model.Reservation{
			ID:          stringField(rec, "id", "reservation_id"),
			GuestID:     stringField(rec, "guest_id", "guestId"),
			RoomNumber:  stringField(rec, "room_number", "roomNumber"),
			CheckIn:     stringField(rec, "check_in", "checkIn"),
			CheckOut:    stringField(rec, "check_out", "checkOut"),
			Status:      MapReservationStatus(stringField(rec, "status")),
			TotalAmount: numField(rec, "total_amount", "totalAmount"),
			Currency:    stringFieldOr(rec, defaultCurrency, "currency"),
			Source:      stringFieldOr(rec, defaultSource, "source"),
			CreatedAt:   stringFieldOr(rec, now, "created_at", "createdAt"),
			UpdatedAt:   stringFieldOr(rec, now, "updated_at", "updatedAt"),
		})
	}
	return reservations
}

func (a *genericAdapter) NormalizeGuests(raw any) []model.Guest {
	records := asRecords(raw)
	guests := make([]model.Guest, 0, len(records))
	now := nowStamp()
	for _, rec := range records {
		guests = append(guests, model.Guest{
			ID:          stringField(rec, "id", "guest_id"),
			FirstName:   stringField(rec, "first_name", "firstName"),
			LastName:    stringField(rec, "last_name", "lastName"),
			Email:       stringField(rec, "email"),
			Phone:       sanitizer.NormalizePhone(stringField(rec, "phone")),
			Nationality: locale.NormalizeNationality(stringFieldOr(rec, defaultNationality, "nationality")),
			VIPStatus:   boolField(rec, "vip_status", "vipStatus"),
			TotalStays:  intField(rec, "total_stays", "totalStays"),
			TotalSpent:  numField(rec, "total_spent", "totalSpent"),
			LastStay:    stringFieldOr(rec, now, "last_stay", "lastStay"),
		})
	}
	return guests
}

func (a *genericAdapter) NormalizeRooms(raw any) []model.Room {
	records := asRecords(raw)
	rooms := make([]model.Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, model.Room{
			ID:       stringField(rec, "id", "room_id", "Id"),
			Number:   stringField(rec, "number", "room_number", "Number"),
			Type:     stringField(rec, "type", "room_type", "Type"),
			Status:   MapRoomStatus(stringField(rec, "status", "Status")),
			Floor:    intFieldOr(rec, defaultFloor, "floor", "Floor"),
			Capacity: intFieldOr(rec, defaultCapacity, "capacity", "Capacity"),
			Rate:     numField(rec, "rate", "Rate"),
		})
	}
	return rooms
}

func (a *genericAdapter) NormalizeRevenue(raw any) []model.RevenueData {
	records := asRecords(raw)
	revenue := make([]model.RevenueData, 0, len(records))
	for _, rec := range records {
		entry := model.RevenueData{
			Date:         stringField(rec, "date", "Date"),
			RoomRevenue:  numField(rec, "room_revenue", "roomRevenue", "RoomRevenue"),
			FBRevenue:    numField(rec, "fb_revenue", "fbRevenue", "FBRevenue"),
			OtherRevenue: numField(rec, "other_revenue", "otherRevenue", "OtherRevenue"),
			TotalRevenue: numField(rec, "total_revenue", "totalRevenue", "TotalRevenue"),
			Currency:     stringFieldOr(rec, defaultCurrency, "currency", "Currency"),
		}
		// Vendors that report only components leave the total at zero.
		if entry.TotalRevenue == 0 {
			entry.TotalRevenue = entry.RoomRevenue + entry.FBRevenue + entry.OtherRevenue
		}
		revenue = append(revenue, entry)
	}
	return revenue
}

func (a *genericAdapter) NormalizeOccupancy(raw any) []model.OccupancyData {
	records := asRecords(raw)
	occupancy := make([]model.OccupancyData, 0, len(records))
	for _, rec := range records {
		entry := model.OccupancyData{
			Date:          stringField(rec, "date", "Date"),
			TotalRooms:    intField(rec, "total_rooms", "totalRooms", "TotalRooms"),
			OccupiedRooms: intField(rec, "occupied_rooms", "occupiedRooms", "OccupiedRooms"),
			OccupancyRate: numField(rec, "occupancy_rate", "occupancyRate", "OccupancyRate"),
			ADR:           numField(rec, "adr", "ADR"),
			RevPAR:        numField(rec, "revpar", "RevPAR"),
		}
		if entry.OccupancyRate == 0 && entry.TotalRooms > 0 {
			entry.OccupancyRate = float64(entry.OccupiedRooms) / float64(entry.TotalRooms) * 100
		}
		occupancy = append(occupancy, entry)
	}
	return occupancy
}
