package service

import (
	"context"
	"strings"
	"testing"
	"time"

	connerrors "pmshub/internal/connections/errors"
	"pmshub/internal/connections/validator"
	mongotx "pmshub/pkg/db/mongo"
	apperrors "pmshub/pkg/errors"
	"pmshub/pkg/logger"
	"pmshub/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type mockConnectionRepository struct {
	FindAllFunc      func(ctx context.Context, userID string) ([]model.Connection, error)
	FindByIDFunc     func(ctx context.Context, userID, connectionID string) (*model.Connection, error)
	AppendFunc       func(ctx context.Context, userID string, conn *model.Connection) error
	RemoveFunc       func(ctx context.Context, userID, connectionID string) error
	UpdateStatusFunc func(ctx context.Context, userID, connectionID, status string, lastSync *time.Time) error
}

func (m *mockConnectionRepository) FindAll(ctx context.Context, userID string) ([]model.Connection, error) {
	return m.FindAllFunc(ctx, userID)
}

func (m *mockConnectionRepository) FindByID(ctx context.Context, userID, connectionID string) (*model.Connection, error) {
	return m.FindByIDFunc(ctx, userID, connectionID)
}

func (m *mockConnectionRepository) Append(ctx context.Context, userID string, conn *model.Connection) error {
	return m.AppendFunc(ctx, userID, conn)
}

func (m *mockConnectionRepository) Remove(ctx context.Context, userID, connectionID string) error {
	return m.RemoveFunc(ctx, userID, connectionID)
}

func (m *mockConnectionRepository) UpdateStatus(ctx context.Context, userID, connectionID, status string, lastSync *time.Time) error {
	return m.UpdateStatusFunc(ctx, userID, connectionID, status, lastSync)
}

func (m *mockConnectionRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.SessionContext(nil))
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})
}

func newTestService(repo *mockConnectionRepository) ConnectionService {
	log := testLogger()
	return NewConnectionService(repo, validator.NewConnectionValidator(log), log)
}

func TestCreateAssignsServerOwnedFields(t *testing.T) {
	var stored *model.Connection
	repo := &mockConnectionRepository{
		AppendFunc: func(ctx context.Context, userID string, conn *model.Connection) error {
			stored = conn
			return nil
		},
	}

	svc := newTestService(repo)
	conn := &model.Connection{
		Name:          "  Main   Hotel  Opera ",
		Type:          model.VendorOpera,
		Status:        model.StatusConnected, // client-supplied, must be ignored
		APIEndpoint:   "http://API.Opera.Example.com/v1/",
		AuthType:      model.AuthAPIKey,
		SyncFrequency: model.SyncHourly,
	}

	if err := svc.Create(context.Background(), "user-1", conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("connection was not stored")
	}
	if !strings.HasPrefix(stored.ID, "conn_") {
		t.Errorf("id = %q, want conn_ prefix", stored.ID)
	}
	if stored.Status != model.StatusDisconnected {
		t.Errorf("status = %q, new connections must start disconnected", stored.Status)
	}
	if stored.Name != "Main Hotel Opera" {
		t.Errorf("name = %q, whitespace should be collapsed", stored.Name)
	}
	if stored.APIEndpoint != "https://api.opera.example.com/v1" {
		t.Errorf("endpoint = %q, should be normalized to https without trailing slash", stored.APIEndpoint)
	}
}

func TestCreateRejectsInvalidConnection(t *testing.T) {
	repo := &mockConnectionRepository{
		AppendFunc: func(ctx context.Context, userID string, conn *model.Connection) error {
			t.Fatal("invalid connection must not be stored")
			return nil
		},
	}

	svc := newTestService(repo)
	err := svc.Create(context.Background(), "user-1", &model.Connection{
		Name:          "X",
		Type:          "winhotel",
		APIEndpoint:   "not-a-url",
		AuthType:      model.AuthAPIKey,
		SyncFrequency: model.SyncHourly,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation AppError, got %v", err)
	}
	if len(appErr.Details) == 0 {
		t.Error("validation error should carry per-field details")
	}
}

func TestGetAllFallsBackToDemoConnections(t *testing.T) {
	repo := &mockConnectionRepository{
		FindAllFunc: func(ctx context.Context, userID string) ([]model.Connection, error) {
			return []model.Connection{}, nil
		},
	}

	svc := newTestService(repo)
	connections, isDemo, err := svc.GetAll(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isDemo {
		t.Error("empty list should fall back to demo connections")
	}
	if len(connections) != 3 {
		t.Errorf("expected 3 demo connections, got %d", len(connections))
	}
}

func TestGetAllReturnsStoredConnections(t *testing.T) {
	repo := &mockConnectionRepository{
		FindAllFunc: func(ctx context.Context, userID string) ([]model.Connection, error) {
			return []model.Connection{{ID: "conn_abc", Name: "City Hotel Mews"}}, nil
		},
	}

	svc := newTestService(repo)
	connections, isDemo, err := svc.GetAll(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDemo {
		t.Error("stored connections must not be flagged as demo")
	}
	if len(connections) != 1 || connections[0].ID != "conn_abc" {
		t.Errorf("unexpected list: %+v", connections)
	}
}

func TestGetByIDMapsNotFound(t *testing.T) {
	repo := &mockConnectionRepository{
		FindByIDFunc: func(ctx context.Context, userID, connectionID string) (*model.Connection, error) {
			return nil, connerrors.ErrNotFound
		},
	}

	svc := newTestService(repo)
	_, err := svc.GetByID(context.Background(), "user-1", "conn_missing")
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected not found AppError, got %v", err)
	}
}

func TestDeleteNonexistentIsNoOp(t *testing.T) {
	repo := &mockConnectionRepository{
		RemoveFunc: func(ctx context.Context, userID, connectionID string) error {
			return nil
		},
	}

	svc := newTestService(repo)
	if err := svc.Delete(context.Background(), "user-1", "conn_missing"); err != nil {
		t.Errorf("deleting a nonexistent connection should succeed, got %v", err)
	}
}
