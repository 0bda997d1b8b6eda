package vendors

import (
	"pmshub/pkg/locale"
	"pmshub/pkg/model"
	"pmshub/pkg/sanitizer"
)

// operaAdapter handles Oracle Opera's PascalCase schema. Rooms, revenue
// and occupancy use the shared mapping from the embedded generic adapter.
type operaAdapter struct {
	genericAdapter
}

func newOperaAdapter() *operaAdapter {
	return &operaAdapter{genericAdapter{
		vendorType: model.VendorOpera,
		endpoints: map[string]string{
			ResourceReservations: "/reservations",
			ResourceGuests:       "/profiles",
			ResourceRooms:        "/rooms",
			ResourceRevenue:      "/revenue",
			ResourceOccupancy:    "/occupancy",
		},
	}}
}

func (a *operaAdapter) NormalizeReservations(raw any) []model.Reservation {
	records := asRecords(raw)
	reservations := make([]model.Reservation, 0, len(records))
	now := nowStamp()
	for _, rec := range records {
		reservations = append(reservations, model.Reservation{
			ID:          stringField(rec, "ReservationId", "id"),
			GuestID:     stringField(rec, "ProfileId", "guest_id"),
			RoomNumber:  stringField(rec, "RoomNumber", "room_number"),
			CheckIn:     stringField(rec, "ArrivalDate", "check_in"),
			CheckOut:    stringField(rec, "DepartureDate", "check_out"),
			Status:      MapReservationStatus(stringField(rec, "ReservationStatus", "status")),
			TotalAmount: numField(rec, "TotalAmount", "total_amount"),
			Currency:    stringFieldOr(rec, defaultCurrency, "Currency", "currency"),
			Source:      stringFieldOr(rec, defaultSource, "Source", "source"),
			CreatedAt:   stringFieldOr(rec, now, "CreatedDate", "created_at"),
			UpdatedAt:   stringFieldOr(rec, now, "ModifiedDate", "updated_at"),
		})
	}
	return reservations
}

func (a *operaAdapter) NormalizeGuests(raw any) []model.Guest {
	records := asRecords(raw)
	guests := make([]model.Guest, 0, len(records))
	now := nowStamp()
	for _, rec := range records {
		guests = append(guests, model.Guest{
			ID:          stringField(rec, "ProfileId", "id"),
			FirstName:   stringField(rec, "FirstName", "first_name"),
			LastName:    stringField(rec, "LastName", "last_name"),
			Email:       stringField(rec, "EmailAddress", "email"),
			Phone:       sanitizer.NormalizePhone(stringField(rec, "PhoneNumber", "phone")),
			Nationality: locale.NormalizeNationality(stringFieldOr(rec, defaultNationality, "Nationality", "nationality")),
			VIPStatus:   boolField(rec, "VipStatus"),
			TotalStays:  intField(rec, "TotalStays"),
			TotalSpent:  numField(rec, "TotalRevenue"),
			LastStay:    stringFieldOr(rec, now, "LastStayDate"),
		})
	}
	return guests
}
