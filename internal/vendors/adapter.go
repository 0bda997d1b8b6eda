package vendors

import (
	"pmshub/pkg/model"
)

// Resource types fetched from every vendor on each sync.
const (
	ResourceReservations = "reservations"
	ResourceGuests       = "guests"
	ResourceRooms        = "rooms"
	ResourceRevenue      = "revenue"
	ResourceOccupancy    = "occupancy"
)

// Resources lists the five resource types in fetch order.
var Resources = []string{
	ResourceReservations,
	ResourceGuests,
	ResourceRooms,
	ResourceRevenue,
	ResourceOccupancy,
}

// Adapter maps one vendor's API surface onto the canonical schema.
// Normalization is total: adapters accept whatever the decoded response
// body happens to be and produce best-effort records, substituting
// literal defaults for fields the vendor omitted. They never return an
// error and never panic on malformed input.
type Adapter interface {
	Type() string

	// Endpoint returns the vendor-relative URL path for a resource type.
	// Unknown resource types fall back to "/{resourceType}".
	Endpoint(resource string) string

	NormalizeReservations(raw any) []model.Reservation
	NormalizeGuests(raw any) []model.Guest
	NormalizeRooms(raw any) []model.Room
	NormalizeRevenue(raw any) []model.RevenueData
	NormalizeOccupancy(raw any) []model.OccupancyData
}
