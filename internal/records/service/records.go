package service

import (
	"context"
	"time"

	connrepo "pmshub/internal/connections/repository"
	"pmshub/internal/demo"
	"pmshub/internal/records/repository"
	apperrors "pmshub/pkg/errors"
	"pmshub/pkg/logger"
	"pmshub/pkg/model"
)

// Dataset is the aggregate returned to dashboards. Demo marks datasets
// served from the built-in sample instead of synced records.
type Dataset struct {
	Demo bool `json:"demo"`
	model.PMSData
}

type RecordsService interface {
	GetData(ctx context.Context, userID string, from, to time.Time) (*Dataset, error)
}

type recordsService struct {
	repo        repository.RecordsRepository
	connections connrepo.ConnectionRepository
	log         *logger.Logger
}

func NewRecordsService(repo repository.RecordsRepository, connections connrepo.ConnectionRepository, log *logger.Logger) RecordsService {
	return &recordsService{repo: repo, connections: connections, log: log}
}

// GetData returns the user's aggregate dataset across all connections.
// Users with no connection in connected state get the demo dataset so
// the dashboard is populated before any vendor is wired up. A connected
// vendor always serves its synced records, even when a resource came
// back empty.
func (s *recordsService) GetData(ctx context.Context, userID string, from, to time.Time) (*Dataset, error) {
	connections, err := s.connections.FindAll(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load connections", err)
	}

	if !anyConnected(connections) {
		s.log.Debug("no connected vendor, serving demo dataset", "user_id", userID)
		return &Dataset{Demo: true, PMSData: *demo.Data()}, nil
	}

	var fromPtr, toPtr *time.Time
	if !from.IsZero() {
		fromPtr = &from
	}
	if !to.IsZero() {
		toPtr = &to
	}

	data, err := s.repo.FindByUser(ctx, userID, fromPtr, toPtr)
	if err != nil {
		return nil, apperrors.Internal("failed to load synced data", err)
	}

	return &Dataset{PMSData: *data}, nil
}

func anyConnected(connections []model.Connection) bool {
	for _, conn := range connections {
		if conn.Status == model.StatusConnected {
			return true
		}
	}
	return false
}
