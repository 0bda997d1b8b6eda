package service

import (
	"context"
	"errors"

	connerrors "pmshub/internal/connections/errors"
	"pmshub/internal/connections/repository"
	"pmshub/internal/connections/validator"
	"pmshub/internal/demo"
	apperrors "pmshub/pkg/errors"
	"pmshub/pkg/logger"
	"pmshub/pkg/model"
	"pmshub/pkg/sanitizer"

	"github.com/google/uuid"
)

type ConnectionService interface {
	Create(ctx context.Context, userID string, conn *model.Connection) error
	GetAll(ctx context.Context, userID string) ([]model.Connection, bool, error)
	GetByID(ctx context.Context, userID, connectionID string) (*model.Connection, error)
	Delete(ctx context.Context, userID, connectionID string) error
}

type connectionService struct {
	repo      repository.ConnectionRepository
	validator *validator.ConnectionValidator
	log       *logger.Logger
}

func NewConnectionService(repo repository.ConnectionRepository, v *validator.ConnectionValidator, log *logger.Logger) ConnectionService {
	return &connectionService{
		repo:      repo,
		validator: v,
		log:       log,
	}
}

// Create sanitizes, validates and stores a new connection. Server-owned
// fields (id, status, last_sync) are always assigned here, never taken
// from the request.
func (s *connectionService) Create(ctx context.Context, userID string, conn *model.Connection) error {
	conn.Name = sanitizer.NormalizeName(conn.Name)
	conn.APIEndpoint = sanitizer.NormalizeEndpoint(conn.APIEndpoint)
	conn.Status = model.StatusDisconnected

	if err := s.validator.Validate(conn); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make(map[string]any, len(validationErrs))
			for _, ve := range validationErrs {
				details[ve.Field] = ve.Message
			}
			return apperrors.Validation("connection validation failed", details)
		}
		return apperrors.Internal("connection validation failed", err)
	}

	conn.ID = "conn_" + uuid.New().String()

	if err := s.repo.Append(ctx, userID, conn); err != nil {
		return apperrors.Internal("failed to store connection", err)
	}

	s.log.Info("connection created",
		"user_id", userID,
		"connection_id", conn.ID,
		"vendor", conn.Type,
	)
	return nil
}

// GetAll returns the user's connections. Users with no stored
// connections get the demo list, flagged by the second return value.
func (s *connectionService) GetAll(ctx context.Context, userID string) ([]model.Connection, bool, error) {
	connections, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, false, apperrors.Internal("failed to load connections", err)
	}
	if len(connections) == 0 {
		return demo.Connections(), true, nil
	}
	return connections, false, nil
}

func (s *connectionService) GetByID(ctx context.Context, userID, connectionID string) (*model.Connection, error) {
	conn, err := s.repo.FindByID(ctx, userID, connectionID)
	if err != nil {
		if errors.Is(err, connerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("connection", connectionID)
		}
		return nil, apperrors.Internal("failed to load connection", err)
	}
	return conn, nil
}

// Delete removes a connection. Deleting an id that does not exist is a
// no-op; previously synced records stay queryable either way.
func (s *connectionService) Delete(ctx context.Context, userID, connectionID string) error {
	if err := s.repo.Remove(ctx, userID, connectionID); err != nil {
		return apperrors.Internal("failed to remove connection", err)
	}
	s.log.Info("connection removed", "user_id", userID, "connection_id", connectionID)
	return nil
}
