package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mywallet/backend/internal/database"
	"github.com/mywallet/backend/internal/models"
	log "github.com/sirupsen/logrus"
)

// DateLayout is the day/month stamp put on every entry.
const DateLayout = "02/01"

type userFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type EntryServiceConfig struct {
	// EnforceOwnership scopes update and delete to the caller's entries.
	// When false any entry id is accepted and an update that matches nothing
	// still succeeds.
	EnforceOwnership bool
	// Clock is read once, at construction.
	Clock func() time.Time
}

// EntryService stores financial entries ("values") per user.
type EntryService struct {
	gw               *database.Gateway
	users            userFinder
	enforceOwnership bool
	date             string
}

func NewEntryService(gw *database.Gateway, users userFinder, cfg EntryServiceConfig) *EntryService {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &EntryService{
		gw:               gw,
		users:            users,
		enforceOwnership: cfg.EnforceOwnership,
		date:             clock().Format(DateLayout),
	}
}

// Create stores a new entry for userID stamped with the service date.
func (s *EntryService) Create(ctx context.Context, userID string, in models.EntryInput) (*models.Entry, error) {
	entry := &models.Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Value:     in.Value,
		Text:      in.Text,
		Type:      in.Type,
		Date:      s.date,
		CreatedAt: time.Now().UnixNano(),
	}

	db := s.gw.DB()
	_, err := db.ExecContext(ctx, db.Rebind(`
		INSERT INTO "values" (id, user_id, value, text, type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		entry.ID, entry.UserID, entry.Value, entry.Text, string(entry.Type), entry.Date, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	log.WithField("entry_id", entry.ID).
		WithField("user_id", userID).
		Info("entry created")
	return entry, nil
}

// ListByUser returns the entries owned by userID in insertion order. A
// session whose user no longer exists is rejected with ErrUnauthorized.
func (s *EntryService) ListByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	db := s.gw.DB()
	entries := []models.Entry{}
	err := db.SelectContext(ctx, &entries, db.Rebind(`
		SELECT id, user_id, value, text, type, date, created_at
		FROM "values"
		WHERE user_id = ?
		ORDER BY created_at`), userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Update replaces value, text and type of an entry.
func (s *EntryService) Update(ctx context.Context, userID, entryID string, in models.EntryInput) error {
	db := s.gw.DB()
	query := `UPDATE "values" SET value = ?, text = ?, type = ? WHERE id = ?`
	args := []any{in.Value, in.Text, string(in.Type), entryID}
	if s.enforceOwnership {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	if s.enforceOwnership {
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
	}

	log.WithField("entry_id", entryID).
		WithField("user_id", userID).
		Info("entry updated")
	return nil
}

// Delete removes an entry after checking it exists.
func (s *EntryService) Delete(ctx context.Context, userID, entryID string) error {
	db := s.gw.DB()
	where := ` WHERE id = ?`
	args := []any{entryID}
	if s.enforceOwnership {
		where += ` AND user_id = ?`
		args = append(args, userID)
	}

	var id string
	err := db.GetContext(ctx, &id, db.Rebind(`SELECT id FROM "values"`+where), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find entry: %w", err)
	}

	if _, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM "values"`+where), args...); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	log.WithField("entry_id", entryID).
		WithField("user_id", userID).
		Info("entry deleted")
	return nil
}
