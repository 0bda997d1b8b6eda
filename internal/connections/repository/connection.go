package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	connerrors "pmshub/internal/connections/errors"
	"pmshub/pkg/config"
	mongotx "pmshub/pkg/db/mongo"
	"pmshub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Connections"

	listKeyPrefix = "pms_connections_"
)

// connectionListDoc holds one user's entire connection list as a single
// document so listing is a point read and ordering survives round-trips.
type connectionListDoc struct {
	DocID       string             `bson:"_id"`
	UserID      string             `bson:"user_id"`
	Connections []model.Connection `bson:"connections"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func listKey(userID string) string {
	return listKeyPrefix + userID
}

type ConnectionRepository interface {
	FindAll(ctx context.Context, userID string) ([]model.Connection, error)
	FindByID(ctx context.Context, userID, connectionID string) (*model.Connection, error)
	Append(ctx context.Context, userID string, conn *model.Connection) error
	Remove(ctx context.Context, userID, connectionID string) error
	UpdateStatus(ctx context.Context, userID, connectionID, status string, lastSync *time.Time) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoConnectionRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoConnectionRepository(cfg *config.Config) ConnectionRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoConnectionRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoConnectionRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoConnectionRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}

func (r *mongoConnectionRepository) FindAll(ctx context.Context, userID string) ([]model.Connection, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doc connectionListDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": listKey(userID)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []model.Connection{}, nil
		}
		return nil, fmt.Errorf("failed to load connection list: %w", err)
	}
	if doc.Connections == nil {
		return []model.Connection{}, nil
	}
	return doc.Connections, nil
}

func (r *mongoConnectionRepository) FindByID(ctx context.Context, userID, connectionID string) (*model.Connection, error) {
	connections, err := r.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range connections {
		if connections[i].ID == connectionID {
			return &connections[i], nil
		}
	}
	return nil, connerrors.ErrNotFound
}

// Append adds a connection to the tail of the user's list, creating the
// list document on first use.
func (r *mongoConnectionRepository) Append(ctx context.Context, userID string, conn *model.Connection) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{
		"$push":        bson.M{"connections": conn},
		"$set":         bson.M{"updated_at": time.Now().UTC()},
		"$setOnInsert": bson.M{"user_id": userID},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listKey(userID)}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to append connection: %w", err)
	}
	return nil
}

// Remove deletes a connection from the user's list. Removing an id that
// is not present is a no-op, not an error.
func (r *mongoConnectionRepository) Remove(ctx context.Context, userID, connectionID string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"connections": bson.M{"id": connectionID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listKey(userID)}, update)
	if err != nil {
		return fmt.Errorf("failed to remove connection: %w", err)
	}
	return nil
}

// UpdateStatus sets one connection's status in place, optionally moving
// its last_sync marker. The rest of the list is untouched.
func (r *mongoConnectionRepository) UpdateStatus(ctx context.Context, userID, connectionID, status string, lastSync *time.Time) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	set := bson.M{
		"connections.$.status": status,
		"updated_at":           time.Now().UTC(),
	}
	if lastSync != nil {
		set["connections.$.last_sync"] = lastSync.UTC()
	}

	filter := bson.M{"_id": listKey(userID), "connections.id": connectionID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update connection status: %w", err)
	}
	if result.MatchedCount == 0 {
		return connerrors.ErrNotFound
	}
	return nil
}
