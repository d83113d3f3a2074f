package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"parkpost/internal/api/models"
)

// HistoryRepository persists parking-reservation history.
type HistoryRepository interface {
	AddEntry(ctx context.Context, entry *models.HistoryEntry) error
	ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

type sqliteHistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new SQLite-based HistoryRepository.
func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &sqliteHistoryRepository{db: db}
}

// AddEntry inserts one reservation row. CustomerID must already carry the
// session identity.
func (r *sqliteHistoryRepository) AddEntry(ctx context.Context, entry *models.HistoryEntry) error {
	query := `INSERT INTO history (visiteddate, places, parkingspot, spotleft, rating, customerid)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		entry.VisitedDate, entry.Places, entry.ParkingSpot, entry.SpotLeft, entry.Rating, entry.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	return nil
}

// ListByUser returns the user's reservation history, most recent first.
// An anonymous caller (userID 0) gets an empty slice, never an error.
func (r *sqliteHistoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	if userID == 0 {
		return []models.HistoryEntry{}, nil
	}

	history := []models.HistoryEntry{}
	query := `SELECT visiteddate, places, parkingspot, spotleft, rating, customerid
		FROM history WHERE customerid = ? ORDER BY visiteddate DESC`
	if err := r.db.SelectContext(ctx, &history, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return history, nil
}
