package model

// Canonical reservation statuses.
const (
	ReservationConfirmed  = "confirmed"
	ReservationCheckedIn  = "checked_in"
	ReservationCheckedOut = "checked_out"
	ReservationCancelled  = "cancelled"
	ReservationNoShow     = "no_show"
)

// Canonical room statuses.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
	RoomOutOfOrder  = "out_of_order"
)

// Reservation is an immutable snapshot produced by normalization.
// Date and timestamp fields stay as the vendor's strings; normalization
// never parses them, only substitutes defaults when they are absent.
type Reservation struct {
	ID          string  `json:"id" bson:"id"`
	GuestID     string  `json:"guest_id" bson:"guest_id"`
	RoomNumber  string  `json:"room_number" bson:"room_number"`
	CheckIn     string  `json:"check_in" bson:"check_in"`
	CheckOut    string  `json:"check_out" bson:"check_out"`
	Status      string  `json:"status" bson:"status"`
	TotalAmount float64 `json:"total_amount" bson:"total_amount"`
	Currency    string  `json:"currency" bson:"currency"`
	Source      string  `json:"source" bson:"source"`
	CreatedAt   string  `json:"created_at" bson:"created_at"`
	UpdatedAt   string  `json:"updated_at" bson:"updated_at"`
}

type Guest struct {
	ID          string  `json:"id" bson:"id"`
	FirstName   string  `json:"first_name" bson:"first_name"`
	LastName    string  `json:"last_name" bson:"last_name"`
	Email       string  `json:"email" bson:"email"`
	Phone       string  `json:"phone" bson:"phone"`
	Nationality string  `json:"nationality" bson:"nationality"`
	VIPStatus   bool    `json:"vip_status" bson:"vip_status"`
	TotalStays  int     `json:"total_stays" bson:"total_stays"`
	TotalSpent  float64 `json:"total_spent" bson:"total_spent"`
	LastStay    string  `json:"last_stay" bson:"last_stay"`
}

type Room struct {
	ID       string  `json:"id" bson:"id"`
	Number   string  `json:"number" bson:"number"`
	Type     string  `json:"type" bson:"type"`
	Status   string  `json:"status" bson:"status"`
	Floor    int     `json:"floor" bson:"floor"`
	Capacity int     `json:"capacity" bson:"capacity"`
	Rate     float64 `json:"rate" bson:"rate"`
}

// RevenueData is keyed by date, one record per day.
type RevenueData struct {
	Date         string  `json:"date" bson:"date"`
	RoomRevenue  float64 `json:"room_revenue" bson:"room_revenue"`
	FBRevenue    float64 `json:"fb_revenue" bson:"fb_revenue"`
	OtherRevenue float64 `json:"other_revenue" bson:"other_revenue"`
	TotalRevenue float64 `json:"total_revenue" bson:"total_revenue"`
	Currency     string  `json:"currency" bson:"currency"`
}

// OccupancyData is keyed by date.
type OccupancyData struct {
	Date          string  `json:"date" bson:"date"`
	TotalRooms    int     `json:"total_rooms" bson:"total_rooms"`
	OccupiedRooms int     `json:"occupied_rooms" bson:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate" bson:"occupancy_rate"`
	ADR           float64 `json:"adr" bson:"adr"`
	RevPAR        float64 `json:"revpar" bson:"revpar"`
}

// PMSData bundles the five resource collections produced by one sync,
// or the aggregate of several connections' syncs.
type PMSData struct {
	Reservations []Reservation   `json:"reservations"`
	Guests       []Guest         `json:"guests"`
	Rooms        []Room          `json:"rooms"`
	Revenue      []RevenueData   `json:"revenue"`
	Occupancy    []OccupancyData `json:"occupancy"`
}

// Merge concatenates other's resource slices onto d.
func (d *PMSData) Merge(other *PMSData) {
	if other == nil {
		return
	}
	d.Reservations = append(d.Reservations, other.Reservations...)
	d.Guests = append(d.Guests, other.Guests...)
	d.Rooms = append(d.Rooms, other.Rooms...)
	d.Revenue = append(d.Revenue, other.Revenue...)
	d.Occupancy = append(d.Occupancy, other.Occupancy...)
}
