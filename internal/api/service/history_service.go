package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"parkpost/internal/api/models"
	"parkpost/internal/api/repository"
	"parkpost/internal/auth"
	"parkpost/internal/sanitize"
)

// ErrBadReservation marks a reservation body that doesn't parse. The
// delimited wire format is kept for client compatibility, but malformed
// input is rejected instead of inserted verbatim.
var ErrBadReservation = errors.New("malformed reservation data")

// HistoryService implements reservation recording and history lookup.
type HistoryService interface {
	Reserve(ctx context.Context, identity *auth.Identity, req *models.ReserveRequest) error
	UserHistory(ctx context.Context, identity *auth.Identity) ([]models.HistoryEntry, error)
}

type historyService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo repository.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

// Reserve parses the packed park field ("place,spot,left,rating"), stamps
// the entry with the session identity and the server clock, and persists
// it. The customer id never comes from the request.
func (s *historyService) Reserve(ctx context.Context, identity *auth.Identity, req *models.ReserveRequest) error {
	parts := strings.Split(req.Park, ",")
	if len(parts) != 4 {
		return ErrBadReservation
	}

	place := sanitize.Strip(parts[0])
	if place == "" {
		return ErrBadReservation
	}

	numbers := make([]int, 3)
	for i, raw := range parts[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return ErrBadReservation
		}
		numbers[i] = n
	}

	entry := &models.HistoryEntry{
		VisitedDate: time.Now().UTC().Format(time.RFC3339),
		Places:      place,
		ParkingSpot: numbers[0],
		SpotLeft:    numbers[1],
		Rating:      numbers[2],
		CustomerID:  identity.UserID,
	}
	return s.historyRepo.AddEntry(ctx, entry)
}

// UserHistory returns the acting identity's reservation history, most
// recent first. Anonymous callers get an empty slice, never an error.
func (s *historyService) UserHistory(ctx context.Context, identity *auth.Identity) ([]models.HistoryEntry, error) {
	var userID int64
	if identity != nil {
		userID = identity.UserID
	}
	return s.historyRepo.ListByUser(ctx, userID)
}
