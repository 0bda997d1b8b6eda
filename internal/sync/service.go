package sync

import (
	"context"
	"errors"
	gosync "sync"
	"time"

	connerrors "pmshub/internal/connections/errors"
	connrepo "pmshub/internal/connections/repository"
	recordsrepo "pmshub/internal/records/repository"
	"pmshub/internal/vendors"
	apperrors "pmshub/pkg/errors"
	"pmshub/pkg/logger"
	"pmshub/pkg/model"
)

// ConnectionResult is the per-connection outcome of an aggregate sync.
type ConnectionResult struct {
	ConnectionID string `json:"connection_id"`
	Name         string `json:"name"`
	Vendor       string `json:"vendor"`
	Status       string `json:"status"`
	Records      int    `json:"records"`
	Error        string `json:"error,omitempty"`
}

// AggregateResult bundles the merged dataset of every successful
// connection sync with a per-connection report. Record ids in the
// merged dataset are namespaced as "{connectionID}_{id}" so records
// from different vendors never collide.
type AggregateResult struct {
	Results []ConnectionResult `json:"results"`
	Data    *model.PMSData     `json:"data"`
}

type SyncService interface {
	SyncConnection(ctx context.Context, userID, connectionID string) (*model.PMSData, error)
	SyncAll(ctx context.Context, userID string) (*AggregateResult, error)
}

type syncService struct {
	connections connrepo.ConnectionRepository
	records     recordsrepo.RecordsRepository
	fetcher     Fetcher
	events      EventPublisher
	log         *logger.Logger
}

func NewSyncService(
	connections connrepo.ConnectionRepository,
	records recordsrepo.RecordsRepository,
	fetcher Fetcher,
	events EventPublisher,
	log *logger.Logger,
) SyncService {
	return &syncService{
		connections: connections,
		records:     records,
		fetcher:     fetcher,
		events:      events,
		log:         log,
	}
}

// SyncConnection runs the full lifecycle for one connection: mark it
// syncing, probe health, fetch the five resources concurrently,
// normalize, persist, and settle the status on connected or error. The
// status always lands on a terminal value, even when a step fails.
func (s *syncService) SyncConnection(ctx context.Context, userID, connectionID string) (*model.PMSData, error) {
	conn, err := s.connections.FindByID(ctx, userID, connectionID)
	if err != nil {
		if errors.Is(err, connerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("connection", connectionID)
		}
		return nil, apperrors.Internal("failed to load connection", err)
	}

	if err := s.connections.UpdateStatus(ctx, userID, connectionID, model.StatusSyncing, nil); err != nil {
		return nil, apperrors.Internal("failed to mark connection syncing", err)
	}

	data, syncErr := s.runSync(ctx, conn)
	if syncErr == nil {
		syncErr = s.persist(ctx, userID, conn, data)
	}

	if syncErr != nil {
		now := time.Now().UTC()
		if statusErr := s.connections.UpdateStatus(ctx, userID, connectionID, model.StatusError, &now); statusErr != nil {
			s.log.Error("failed to mark connection errored", "connection_id", connectionID, "error", statusErr)
		}
		s.events.PublishFailed(ctx, userID, conn, syncErr)
		s.log.Warn("sync failed",
			"user_id", userID,
			"connection_id", connectionID,
			"vendor", conn.Type,
			"error", syncErr,
		)
		return nil, syncErr
	}

	now := time.Now().UTC()
	if statusErr := s.connections.UpdateStatus(ctx, userID, connectionID, model.StatusConnected, &now); statusErr != nil {
		s.log.Error("failed to mark connection connected", "connection_id", connectionID, "error", statusErr)
	}
	s.events.PublishCompleted(ctx, userID, conn, data)
	s.log.Info("sync completed",
		"user_id", userID,
		"connection_id", connectionID,
		"vendor", conn.Type,
		"reservations", len(data.Reservations),
		"guests", len(data.Guests),
		"rooms", len(data.Rooms),
	)
	return data, nil
}

// runSync probes the vendor and fetches all five resources in parallel.
// The first failure wins; remaining fetches still run to completion.
func (s *syncService) runSync(ctx context.Context, conn *model.Connection) (*model.PMSData, error) {
	if err := s.fetcher.Health(ctx, conn); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeUnavailable, "vendor health check failed", 503)
	}

	adapter := vendors.Lookup(conn.Type)
	bodies := make(map[string]any, len(vendors.Resources))
	errs := make(map[string]error, len(vendors.Resources))

	var wg gosync.WaitGroup
	var mu gosync.Mutex
	for _, resource := range vendors.Resources {
		wg.Add(1)
		go func(resource string) {
			defer wg.Done()
			raw, err := s.fetcher.FetchResource(ctx, conn, resource)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[resource] = err
				return
			}
			bodies[resource] = raw
		}(resource)
	}
	wg.Wait()

	for _, resource := range vendors.Resources {
		if err := errs[resource]; err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to fetch "+resource, 502)
		}
	}

	return &model.PMSData{
		Reservations: adapter.NormalizeReservations(bodies[vendors.ResourceReservations]),
		Guests:       adapter.NormalizeGuests(bodies[vendors.ResourceGuests]),
		Rooms:        adapter.NormalizeRooms(bodies[vendors.ResourceRooms]),
		Revenue:      adapter.NormalizeRevenue(bodies[vendors.ResourceRevenue]),
		Occupancy:    adapter.NormalizeOccupancy(bodies[vendors.ResourceOccupancy]),
	}, nil
}

func (s *syncService) persist(ctx context.Context, userID string, conn *model.Connection, data *model.PMSData) error {
	if err := s.records.UpsertConnectionData(ctx, userID, conn.ID, data); err != nil {
		return apperrors.Internal("failed to store synced data", err)
	}
	return nil
}

// SyncAll runs SyncConnection for every stored connection in parallel
// and merges the successful results. Individual failures are reported
// per connection; the aggregate call itself only fails when the
// connection list cannot be loaded.
func (s *syncService) SyncAll(ctx context.Context, userID string) (*AggregateResult, error) {
	connections, err := s.connections.FindAll(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load connections", err)
	}

	result := &AggregateResult{
		Results: make([]ConnectionResult, len(connections)),
		Data: &model.PMSData{
			Reservations: []model.Reservation{},
			Guests:       []model.Guest{},
			Rooms:        []model.Room{},
			Revenue:      []model.RevenueData{},
			Occupancy:    []model.OccupancyData{},
		},
	}

	datasets := make([]*model.PMSData, len(connections))

	var wg gosync.WaitGroup
	for i := range connections {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn := connections[i]
			data, syncErr := s.SyncConnection(ctx, userID, conn.ID)
			entry := ConnectionResult{
				ConnectionID: conn.ID,
				Name:         conn.Name,
				Vendor:       conn.Type,
			}
			if syncErr != nil {
				entry.Status = model.StatusError
				entry.Error = syncErr.Error()
			} else {
				entry.Status = model.StatusConnected
				entry.Records = len(data.Reservations) + len(data.Guests) + len(data.Rooms) +
					len(data.Revenue) + len(data.Occupancy)
				datasets[i] = data
			}
			result.Results[i] = entry
		}(i)
	}
	wg.Wait()

	for i := range connections {
		if datasets[i] != nil {
			result.Data.Merge(namespaced(connections[i].ID, datasets[i]))
		}
	}

	return result, nil
}

// namespaced prefixes every record id (and cross-record guest
// references) with the owning connection id so the merged dataset stays
// collision free.
func namespaced(connectionID string, data *model.PMSData) *model.PMSData {
	prefix := func(id string) string {
		if id == "" {
			return id
		}
		return connectionID + "_" + id
	}

	out := &model.PMSData{
		Reservations: make([]model.Reservation, len(data.Reservations)),
		Guests:       make([]model.Guest, len(data.Guests)),
		Rooms:        make([]model.Room, len(data.Rooms)),
		Revenue:      data.Revenue,
		Occupancy:    data.Occupancy,
	}
	for i, r := range data.Reservations {
		r.ID = prefix(r.ID)
		r.GuestID = prefix(r.GuestID)
		out.Reservations[i] = r
	}
	for i, g := range data.Guests {
		g.ID = prefix(g.ID)
		out.Guests[i] = g
	}
	for i, room := range data.Rooms {
		room.ID = prefix(room.ID)
		out.Rooms[i] = room
	}
	return out
}
