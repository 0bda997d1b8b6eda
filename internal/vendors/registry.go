package vendors

import (
	"pmshub/pkg/model"
)

func newGenericAdapter(vendorType, prefix string) *genericAdapter {
	return &genericAdapter{
		vendorType: vendorType,
		endpoints: map[string]string{
			ResourceReservations: prefix + "/reservations",
			ResourceGuests:       prefix + "/guests",
			ResourceRooms:        prefix + "/rooms",
			ResourceRevenue:      prefix + "/revenue",
			ResourceOccupancy:    prefix + "/occupancy",
		},
	}
}

func newCloudbedsAdapter() *genericAdapter {
	return &genericAdapter{
		vendorType: model.VendorCloudbeds,
		endpoints: map[string]string{
			ResourceReservations: "/api/v1.1/getReservations",
			ResourceGuests:       "/api/v1.1/getGuests",
			ResourceRooms:        "/api/v1.1/getRooms",
			ResourceRevenue:      "/api/v1.1/getRevenue",
			ResourceOccupancy:    "/api/v1.1/getOccupancy",
		},
	}
}

var adapters = map[string]Adapter{
	model.VendorOpera:     newOperaAdapter(),
	model.VendorMews:      newMewsAdapter(),
	model.VendorFidelio:   newGenericAdapter(model.VendorFidelio, "/fidelio/v1"),
	model.VendorProtel:    newGenericAdapter(model.VendorProtel, "/pms/v1"),
	model.VendorCloudbeds: newCloudbedsAdapter(),
	model.VendorRMS:       newGenericAdapter(model.VendorRMS, "/api"),
	model.VendorCustom:    newGenericAdapter(model.VendorCustom, ""),
}

// Lookup returns the adapter for a vendor type. Unknown vendor types
// fall back to the custom adapter so a sync never fails on dispatch.
func Lookup(vendorType string) Adapter {
	if adapter, ok := adapters[vendorType]; ok {
		return adapter
	}
	return adapters[model.VendorCustom]
}
