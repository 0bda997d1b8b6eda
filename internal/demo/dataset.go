// Package demo provides the built-in dataset served when a user has no
// synced records yet, so dashboards render something meaningful before
// the first connection is configured.
package demo

import (
	"time"

	"pmshub/pkg/model"
)

// Connections returns the demo connection list. LastSync values are
// computed relative to now so the list always looks fresh.
func Connections() []model.Connection {
	now := time.Now().UTC()
	return []model.Connection{
		{
			ID:            "conn_1",
			Name:          "Main Hotel Opera PMS",
			Type:          model.VendorOpera,
			Status:        model.StatusConnected,
			LastSync:      now,
			APIEndpoint:   "https://api.opera.example.com/v1",
			AuthType:      model.AuthAPIKey,
			SyncFrequency: model.SyncHourly,
		},
		{
			ID:            "conn_2",
			Name:          "Resort Mews System",
			Type:          model.VendorMews,
			Status:        model.StatusConnected,
			LastSync:      now.Add(-1 * time.Hour),
			APIEndpoint:   "https://api.mews.com/v1",
			AuthType:      model.AuthOAuth,
			SyncFrequency: model.SyncRealTime,
		},
		{
			ID:            "conn_3",
			Name:          "Boutique Hotel Custom API",
			Type:          model.VendorCustom,
			Status:        model.StatusError,
			LastSync:      now.Add(-24 * time.Hour),
			APIEndpoint:   "https://api.boutique-hotel.com/pms",
			AuthType:      model.AuthBasicAuth,
			SyncFrequency: model.SyncDaily,
		},
	}
}

// Data returns a fresh copy of the demo dataset. Callers may mutate the
// result freely.
func Data() *model.PMSData {
	return &model.PMSData{
		Reservations: []model.Reservation{
			{ID: "res_1", GuestID: "guest_1", RoomNumber: "101", CheckIn: "2024-01-15", CheckOut: "2024-01-18", Status: model.ReservationConfirmed, TotalAmount: 450, Currency: "USD", Source: "Booking.com", CreatedAt: "2024-01-10T10:00:00Z", UpdatedAt: "2024-01-10T10:00:00Z"},
			{ID: "res_2", GuestID: "guest_2", RoomNumber: "205", CheckIn: "2024-01-16", CheckOut: "2024-01-20", Status: model.ReservationCheckedIn, TotalAmount: 680, Currency: "USD", Source: "Direct", CreatedAt: "2024-01-12T14:30:00Z", UpdatedAt: "2024-01-16T15:00:00Z"},
			{ID: "res_3", GuestID: "guest_3", RoomNumber: "312", CheckIn: "2024-01-14", CheckOut: "2024-01-16", Status: model.ReservationCheckedOut, TotalAmount: 320, Currency: "USD", Source: "Expedia", CreatedAt: "2024-01-08T09:15:00Z", UpdatedAt: "2024-01-16T11:00:00Z"},
			{ID: "res_4", GuestID: "guest_4", RoomNumber: "408", CheckIn: "2024-01-17", CheckOut: "2024-01-19", Status: model.ReservationConfirmed, TotalAmount: 380, Currency: "USD", Source: "Airbnb", CreatedAt: "2024-01-13T16:45:00Z", UpdatedAt: "2024-01-13T16:45:00Z"},
			{ID: "res_5", GuestID: "guest_5", RoomNumber: "501", CheckIn: "2024-01-18", CheckOut: "2024-01-22", Status: model.ReservationConfirmed, TotalAmount: 720, Currency: "USD", Source: "Direct", CreatedAt: "2024-01-14T11:20:00Z", UpdatedAt: "2024-01-14T11:20:00Z"},
		},
		Guests: []model.Guest{
			{ID: "guest_1", FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Phone: "+15550123", Nationality: "US", VIPStatus: false, TotalStays: 3, TotalSpent: 1250, LastStay: "2024-01-18"},
			{ID: "guest_2", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@email.com", Phone: "+15550456", Nationality: "CA", VIPStatus: true, TotalStays: 8, TotalSpent: 4200, LastStay: "2024-01-20"},
			{ID: "guest_3", FirstName: "Michael", LastName: "Brown", Email: "mike.brown@email.com", Phone: "+442079460958", Nationality: "GB", VIPStatus: false, TotalStays: 1, TotalSpent: 320, LastStay: "2024-01-16"},
			{ID: "guest_4", FirstName: "Emma", LastName: "Davis", Email: "emma.davis@email.com", Phone: "+33142868326", Nationality: "FR", VIPStatus: false, TotalStays: 2, TotalSpent: 760, LastStay: "2024-01-19"},
			{ID: "guest_5", FirstName: "David", LastName: "Wilson", Email: "david.wilson@email.com", Phone: "+15550789", Nationality: "US", VIPStatus: true, TotalStays: 12, TotalSpent: 8900, LastStay: "2024-01-22"},
		},
		Rooms: []model.Room{
			{ID: "room_1", Number: "101", Type: "Standard", Status: model.RoomAvailable, Floor: 1, Capacity: 2, Rate: 150},
			{ID: "room_2", Number: "102", Type: "Standard", Status: model.RoomOccupied, Floor: 1, Capacity: 2, Rate: 150},
			{ID: "room_3", Number: "201", Type: "Deluxe", Status: model.RoomOccupied, Floor: 2, Capacity: 3, Rate: 200},
			{ID: "room_4", Number: "202", Type: "Deluxe", Status: model.RoomAvailable, Floor: 2, Capacity: 3, Rate: 200},
			{ID: "room_5", Number: "205", Type: "Deluxe", Status: model.RoomOccupied, Floor: 2, Capacity: 3, Rate: 200},
			{ID: "room_6", Number: "301", Type: "Suite", Status: model.RoomAvailable, Floor: 3, Capacity: 4, Rate: 300},
			{ID: "room_7", Number: "312", Type: "Suite", Status: model.RoomMaintenance, Floor: 3, Capacity: 4, Rate: 300},
			{ID: "room_8", Number: "401", Type: "Premium", Status: model.RoomAvailable, Floor: 4, Capacity: 2, Rate: 250},
			{ID: "room_9", Number: "408", Type: "Premium", Status: model.RoomOccupied, Floor: 4, Capacity: 2, Rate: 250},
			{ID: "room_10", Number: "501", Type: "Penthouse", Status: model.RoomOccupied, Floor: 5, Capacity: 6, Rate: 500},
			{ID: "room_11", Number: "502", Type: "Penthouse", Status: model.RoomOutOfOrder, Floor: 5, Capacity: 6, Rate: 500},
			{ID: "room_12", Number: "103", Type: "Standard", Status: model.RoomAvailable, Floor: 1, Capacity: 2, Rate: 150},
		},
		Revenue: []model.RevenueData{
			{Date: "2024-01-16", RoomRevenue: 2400, FBRevenue: 800, OtherRevenue: 200, TotalRevenue: 3400, Currency: "USD"},
			{Date: "2024-01-15", RoomRevenue: 2200, FBRevenue: 750, OtherRevenue: 150, TotalRevenue: 3100, Currency: "USD"},
			{Date: "2024-01-14", RoomRevenue: 2600, FBRevenue: 900, OtherRevenue: 300, TotalRevenue: 3800, Currency: "USD"},
			{Date: "2024-01-13", RoomRevenue: 2100, FBRevenue: 650, OtherRevenue: 100, TotalRevenue: 2850, Currency: "USD"},
			{Date: "2024-01-12", RoomRevenue: 2800, FBRevenue: 950, OtherRevenue: 250, TotalRevenue: 4000, Currency: "USD"},
			{Date: "2024-01-11", RoomRevenue: 2300, FBRevenue: 700, OtherRevenue: 180, TotalRevenue: 3180, Currency: "USD"},
			{Date: "2024-01-10", RoomRevenue: 2500, FBRevenue: 820, OtherRevenue: 220, TotalRevenue: 3540, Currency: "USD"},
		},
		Occupancy: []model.OccupancyData{
			{Date: "2024-01-16", TotalRooms: 12, OccupiedRooms: 8, OccupancyRate: 66.7, ADR: 225, RevPAR: 150},
			{Date: "2024-01-15", TotalRooms: 12, OccupiedRooms: 7, OccupancyRate: 58.3, ADR: 210, RevPAR: 122.5},
			{Date: "2024-01-14", TotalRooms: 12, OccupiedRooms: 9, OccupancyRate: 75, ADR: 240, RevPAR: 180},
			{Date: "2024-01-13", TotalRooms: 12, OccupiedRooms: 6, OccupancyRate: 50, ADR: 195, RevPAR: 97.5},
			{Date: "2024-01-12", TotalRooms: 12, OccupiedRooms: 10, OccupancyRate: 83.3, ADR: 260, RevPAR: 216.7},
			{Date: "2024-01-11", TotalRooms: 12, OccupiedRooms: 7, OccupancyRate: 58.3, ADR: 215, RevPAR: 125.4},
			{Date: "2024-01-10", TotalRooms: 12, OccupiedRooms: 8, OccupancyRate: 66.7, ADR: 230, RevPAR: 153.3},
		},
	}
}
