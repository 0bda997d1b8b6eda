package vendors

import (
	"pmshub/pkg/locale"
	"pmshub/pkg/model"
	"pmshub/pkg/sanitizer"
)

// mewsAdapter handles the Mews Connector API schema: UTC-suffixed
// timestamps, amounts nested as {Value, Currency}, and VIP flags carried
// as a "Vip" entry in the Classifications array.
type mewsAdapter struct {
	genericAdapter
}

func newMewsAdapter() *mewsAdapter {
	return &mewsAdapter{genericAdapter{
		vendorType: model.VendorMews,
		endpoints: map[string]string{
			ResourceReservations: "/api/connector/v1/reservations/getAll",
			ResourceGuests:       "/api/connector/v1/customers/getAll",
			ResourceRooms:        "/api/connector/v1/spaces/getAll",
			ResourceRevenue:      "/api/connector/v1/accountingItems/getAll",
			ResourceOccupancy:    "/api/connector/v1/reports/getOccupancy",
		},
	}}
}

func (a *mewsAdapter) NormalizeReservations(raw any) []model.Reservation {
	records := asRecords(raw)
	reservations := make([]model.Reservation, 0, len(records))
	now := nowStamp()
	for _, rec := range records {
		amount := nestedNum(rec, "TotalAmount", "Value")
		if amount == 0 {
			amount = numField(rec, "total_amount")
		}
		currency := nestedString(rec, "TotalAmount", "Currency")
		if currency == "" {
			currency = stringFieldOr(rec, defaultCurrency, "currency")
		}
		reservations = append(reservations, model.Reservation{
			ID:          stringField(rec, "Id", "id"),
			GuestID:     stringField(rec, "CustomerId", "customer_id"),
			RoomNumber:  stringField(rec, "AssignedSpaceNumber", "room_number"),
			CheckIn:     stringField(rec, "StartUtc", "check_in"),
			CheckOut:    stringField(rec, "EndUtc", "check_out"),
			Status:      MapReservationStatus(stringField(rec, "State", "status")),
			TotalAmount: amount,
			Currency:    currency,
			Source:      stringFieldOr(rec, defaultSource, "Origin", "source"),
			CreatedAt:   stringFieldOr(rec, now, "CreatedUtc", "created_at"),
			UpdatedAt:   stringFieldOr(rec, now, "UpdatedUtc", "updated_at"),
		})
	}
	return reservations
}

func (a *mewsAdapter) NormalizeGuests(raw any) []model.Guest {
	records := asRecords(raw)
	guests := make([]model.Guest, 0, len(records))
	now := nowStamp()
	for _, rec := range records {
		guests = append(guests, model.Guest{
			ID:          stringField(rec, "Id", "id"),
			FirstName:   stringField(rec, "FirstName", "first_name"),
			LastName:    stringField(rec, "LastName", "last_name"),
			Email:       stringField(rec, "Email", "email"),
			Phone:       sanitizer.NormalizePhone(stringField(rec, "Phone", "phone")),
			Nationality: locale.NormalizeNationality(stringFieldOr(rec, defaultNationality, "NationalityCode", "nationality")),
			VIPStatus:   sliceContains(rec, "Classifications", "Vip"),
			TotalStays:  intField(rec, "TotalStays"),
			TotalSpent:  numField(rec, "TotalSpent"),
			LastStay:    stringFieldOr(rec, now, "LastStay"),
		})
	}
	return guests
}
