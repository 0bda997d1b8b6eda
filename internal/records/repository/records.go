package repository

import (
	"context"
	"fmt"
	"time"

	"pmshub/pkg/config"
	mongotx "pmshub/pkg/db/mongo"
	"pmshub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionReservations = "Reservations"
	CollectionGuests       = "Guests"
	CollectionRooms        = "Rooms"
	CollectionRevenue      = "Revenue"
	CollectionOccupancy    = "Occupancy"
)

// Documents are keyed by "{connectionID}_{recordID}" (or the date for
// daily metrics) so re-syncing a connection overwrites its own records
// without touching other connections' rows in the same collections.
type reservationDoc struct {
	DocID        string            `bson:"_id"`
	ConnectionID string            `bson:"connection_id"`
	UserID       string            `bson:"user_id"`
	SyncedAt     time.Time         `bson:"synced_at"`
	Record       model.Reservation `bson:"record"`
}

type guestDoc struct {
	DocID        string      `bson:"_id"`
	ConnectionID string      `bson:"connection_id"`
	UserID       string      `bson:"user_id"`
	SyncedAt     time.Time   `bson:"synced_at"`
	Record       model.Guest `bson:"record"`
}

type roomDoc struct {
	DocID        string     `bson:"_id"`
	ConnectionID string     `bson:"connection_id"`
	UserID       string     `bson:"user_id"`
	SyncedAt     time.Time  `bson:"synced_at"`
	Record       model.Room `bson:"record"`
}

type revenueDoc struct {
	DocID        string            `bson:"_id"`
	ConnectionID string            `bson:"connection_id"`
	UserID       string            `bson:"user_id"`
	SyncedAt     time.Time         `bson:"synced_at"`
	Record       model.RevenueData `bson:"record"`
}

type occupancyDoc struct {
	DocID        string              `bson:"_id"`
	ConnectionID string              `bson:"connection_id"`
	UserID       string              `bson:"user_id"`
	SyncedAt     time.Time           `bson:"synced_at"`
	Record       model.OccupancyData `bson:"record"`
}

type RecordsRepository interface {
	UpsertConnectionData(ctx context.Context, userID, connectionID string, data *model.PMSData) error
	FindByUser(ctx context.Context, userID string, from, to *time.Time) (*model.PMSData, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoRecordsRepository struct {
	cfg       *config.Config
	db        *mongo.Database
	txManager mongotx.TransactionManager
}

func NewMongoRecordsRepository(cfg *config.Config) RecordsRepository {
	return &mongoRecordsRepository{
		cfg:       cfg,
		db:        cfg.Client.Mongo.Database(cfg.MongoDatabaseName),
		txManager: mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoRecordsRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRecordsRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}

// UpsertConnectionData writes all five resource collections for one
// connection inside a single transaction. Each record replaces any
// previous version of itself from an earlier sync of the same
// connection.
func (r *mongoRecordsRepository) UpsertConnectionData(ctx context.Context, userID, connectionID string, data *model.PMSData) error {
	if data == nil {
		return nil
	}

	return r.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		syncedAt := time.Now().UTC().Truncate(time.Millisecond)

		reservations := make([]mongo.WriteModel, 0, len(data.Reservations))
		for _, rec := range data.Reservations {
			doc := reservationDoc{
				DocID:        compositeKey(connectionID, rec.ID),
				ConnectionID: connectionID,
				UserID:       userID,
				SyncedAt:     syncedAt,
				Record:       rec,
			}
			reservations = append(reservations, upsertModel(doc.DocID, doc))
		}
		if err := r.bulkWrite(sessCtx, CollectionReservations, reservations); err != nil {
			return err
		}

		guests := make([]mongo.WriteModel, 0, len(data.Guests))
		for _, rec := range data.Guests {
			doc := guestDoc{
				DocID:        compositeKey(connectionID, rec.ID),
				ConnectionID: connectionID,
				UserID:       userID,
				SyncedAt:     syncedAt,
				Record:       rec,
			}
			guests = append(guests, upsertModel(doc.DocID, doc))
		}
		if err := r.bulkWrite(sessCtx, CollectionGuests, guests); err != nil {
			return err
		}

		rooms := make([]mongo.WriteModel, 0, len(data.Rooms))
		for _, rec := range data.Rooms {
			doc := roomDoc{
				DocID:        compositeKey(connectionID, rec.ID),
				ConnectionID: connectionID,
				UserID:       userID,
				SyncedAt:     syncedAt,
				Record:       rec,
			}
			rooms = append(rooms, upsertModel(doc.DocID, doc))
		}
		if err := r.bulkWrite(sessCtx, CollectionRooms, rooms); err != nil {
			return err
		}

		revenue := make([]mongo.WriteModel, 0, len(data.Revenue))
		for _, rec := range data.Revenue {
			doc := revenueDoc{
				DocID:        compositeKey(connectionID, rec.Date),
				ConnectionID: connectionID,
				UserID:       userID,
				SyncedAt:     syncedAt,
				Record:       rec,
			}
			revenue = append(revenue, upsertModel(doc.DocID, doc))
		}
		if err := r.bulkWrite(sessCtx, CollectionRevenue, revenue); err != nil {
			return err
		}

		occupancy := make([]mongo.WriteModel, 0, len(data.Occupancy))
		for _, rec := range data.Occupancy {
			doc := occupancyDoc{
				DocID:        compositeKey(connectionID, rec.Date),
				ConnectionID: connectionID,
				UserID:       userID,
				SyncedAt:     syncedAt,
				Record:       rec,
			}
			occupancy = append(occupancy, upsertModel(doc.DocID, doc))
		}
		return r.bulkWrite(sessCtx, CollectionOccupancy, occupancy)
	})
}

func compositeKey(connectionID, recordID string) string {
	return fmt.Sprintf("%s_%s", connectionID, recordID)
}

func upsertModel(docID string, doc any) mongo.WriteModel {
	return mongo.NewReplaceOneModel().
		SetFilter(bson.M{"_id": docID}).
		SetReplacement(doc).
		SetUpsert(true)
}

func (r *mongoRecordsRepository) bulkWrite(ctx context.Context, collection string, models []mongo.WriteModel) error {
	if len(models) == 0 {
		return nil
	}
	_, err := r.db.Collection(collection).BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", collection, err)
	}
	return nil
}

// FindByUser assembles the aggregate dataset across all of a user's
// connections. An optional date range narrows reservations by check-in
// and the daily metrics by date; guests and rooms are point-in-time
// snapshots and ignore the range.
func (r *mongoRecordsRepository) FindByUser(ctx context.Context, userID string, from, to *time.Time) (*model.PMSData, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	data := &model.PMSData{
		Reservations: []model.Reservation{},
		Guests:       []model.Guest{},
		Rooms:        []model.Room{},
		Revenue:      []model.RevenueData{},
		Occupancy:    []model.OccupancyData{},
	}

	reservationFilter := dateFilter(userID, "record.check_in", from, to)
	if err := r.findInto(ctx, CollectionReservations, reservationFilter, func(cur *mongo.Cursor) error {
		var doc reservationDoc
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		data.Reservations = append(data.Reservations, doc.Record)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.findInto(ctx, CollectionGuests, bson.M{"user_id": userID}, func(cur *mongo.Cursor) error {
		var doc guestDoc
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		data.Guests = append(data.Guests, doc.Record)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.findInto(ctx, CollectionRooms, bson.M{"user_id": userID}, func(cur *mongo.Cursor) error {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		data.Rooms = append(data.Rooms, doc.Record)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.findInto(ctx, CollectionRevenue, dateFilter(userID, "record.date", from, to), func(cur *mongo.Cursor) error {
		var doc revenueDoc
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		data.Revenue = append(data.Revenue, doc.Record)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := r.findInto(ctx, CollectionOccupancy, dateFilter(userID, "record.date", from, to), func(cur *mongo.Cursor) error {
		var doc occupancyDoc
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		data.Occupancy = append(data.Occupancy, doc.Record)
		return nil
	}); err != nil {
		return nil, err
	}

	return data, nil
}

// dateFilter builds a user filter with an optional range on a stored
// date string. Dates are ISO formatted, so lexicographic comparison
// matches chronological order.
func dateFilter(userID, field string, from, to *time.Time) bson.M {
	filter := bson.M{"user_id": userID}
	dateRange := bson.M{}
	if from != nil {
		dateRange["$gte"] = from.UTC().Format("2006-01-02")
	}
	if to != nil {
		// Lexicographic upper bound that admits both bare dates and
		// full timestamps on the final day.
		dateRange["$lte"] = to.UTC().Format("2006-01-02") + "~"
	}
	if len(dateRange) > 0 {
		filter[field] = dateRange
	}
	return filter
}

func (r *mongoRecordsRepository) findInto(ctx context.Context, collection string, filter bson.M, decode func(*mongo.Cursor) error) error {
	cur, err := r.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		if err := decode(cur); err != nil {
			return fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
	}
	return cur.Err()
}

