package sync

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"pmshub/internal/vendors"
	"pmshub/pkg/client"
	"pmshub/pkg/config"
	"pmshub/pkg/model"
	"pmshub/pkg/secrets"
)

// Fetcher issues vendor API calls for one connection. It exists as an
// interface so the sync service can be tested without a live vendor.
type Fetcher interface {
	Health(ctx context.Context, conn *model.Connection) error
	FetchResource(ctx context.Context, conn *model.Connection, resource string) (any, error)
}

type pmsFetcher struct {
	cfg      *config.Config
	resolver secrets.Resolver
}

func NewFetcher(cfg *config.Config, resolver secrets.Resolver) Fetcher {
	return &pmsFetcher{cfg: cfg, resolver: resolver}
}

func (f *pmsFetcher) Health(ctx context.Context, conn *model.Connection) error {
	pms := client.NewPMSClient(conn.APIEndpoint, vendors.AuthHeaders(conn), f.resolver, f.cfg.HealthCheckTimeout)
	return pms.Health(ctx)
}

func (f *pmsFetcher) FetchResource(ctx context.Context, conn *model.Connection, resource string) (any, error) {
	adapter := vendors.Lookup(conn.Type)
	pms := client.NewPMSClient(conn.APIEndpoint, vendors.AuthHeaders(conn), f.resolver, f.cfg.FetchTimeout)
	return pms.FetchResource(ctx, adapter.Endpoint(resource), f.queryFor(resource))
}

// queryFor builds the per-resource query parameters: reservations span
// the sync window on both sides of now, the daily metrics cover the
// trailing window, guests are capped, and rooms take no parameters.
func (f *pmsFetcher) queryFor(resource string) url.Values {
	now := time.Now().UTC()
	window := time.Duration(f.cfg.SyncWindowDays) * 24 * time.Hour

	switch resource {
	case vendors.ResourceReservations:
		return url.Values{
			"from": {now.Add(-window).Format(time.RFC3339)},
			"to":   {now.Add(window).Format(time.RFC3339)},
		}
	case vendors.ResourceGuests:
		return url.Values{
			"limit":  {strconv.Itoa(f.cfg.GuestFetchLimit)},
			"active": {"true"},
		}
	case vendors.ResourceRevenue:
		return url.Values{
			"from":    {now.Add(-window).Format(time.RFC3339)},
			"to":      {now.Format(time.RFC3339)},
			"groupBy": {"day"},
		}
	case vendors.ResourceOccupancy:
		return url.Values{
			"from": {now.Add(-window).Format(time.RFC3339)},
			"to":   {now.Format(time.RFC3339)},
		}
	default:
		return nil
	}
}
