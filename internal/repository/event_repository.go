package repository

import (
	"context"
	"fmt"
	"strings"

	"go-event-booking/internal/model"
	apperrors "go-event-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, limit, offset int) ([]*model.Event, error)
	Count(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Update(ctx context.Context, id, ownerID int, params model.UpdateEventParams) (*model.Event, error)
	ListLocations(ctx context.Context) ([]*model.LocationStats, error)
	RenameLocation(ctx context.Context, ownerID int, from, to string) (int, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error)
	DecrementSeats(ctx context.Context, tx pgx.Tx, id int, seats int) error
	RestoreSeats(ctx context.Context, tx pgx.Tx, id int, seats int) error
	Delete(ctx context.Context, tx pgx.Tx, id, ownerID int) error
	DeleteByLocation(ctx context.Context, tx pgx.Tx, ownerID int, location string) (int, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = "id, title, description, date, location, available_seats, user_id, created_at"

func prefixedEventColumns(alias string) string {
	return fmt.Sprintf("%[1]s.id, %[1]s.title, %[1]s.description, %[1]s.date, %[1]s.location, %[1]s.available_seats, %[1]s.user_id, %[1]s.created_at", alias)
}

func scanEvent(row pgx.Row, event *model.Event) error {
	return row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.AvailableSeats,
		&event.UserID,
		&event.CreatedAt,
	)
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (title, description, date, location, available_seats, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, eventColumns)

	err := scanEvent(r.pool.QueryRow(ctx, query,
		event.Title, event.Description, event.Date,
		event.Location, event.AvailableSeats, event.UserID,
	), event)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		if err := scanEvent(rows, &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, id), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// FindByIDWithLock reads the event row under FOR UPDATE so concurrent seat
// accounting on the same event serializes on the row lock.
func (r *EventRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
		FOR UPDATE
	`, eventColumns)

	var event model.Event
	err := scanEvent(tx.QueryRow(ctx, query, id), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// Update mutates an event through a predicate on both id and owner, so a
// missing event and a foreign event are indistinguishable to the caller.
func (r *EventRepositoryImpl) Update(ctx context.Context, id, ownerID int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.Date != nil {
		sets = append(sets, fmt.Sprintf("date = $%d", argPos))
		args = append(args, *params.Date)
		argPos++
	}

	if params.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argPos))
		args = append(args, *params.Location)
		argPos++
	}

	if params.AvailableSeats != nil {
		sets = append(sets, fmt.Sprintf("available_seats = $%d", argPos))
		args = append(args, *params.AvailableSeats)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id, ownerID)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, argPos+1, eventColumns)

	var event model.Event
	err := scanEvent(r.pool.QueryRow(ctx, query, args...), &event)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) DecrementSeats(ctx context.Context, tx pgx.Tx, id int, seats int) error {
	query := `
		UPDATE events
		SET available_seats = available_seats - $1
		WHERE id = $2 AND available_seats >= $1
	`

	result, err := tx.Exec(ctx, query, seats, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInsufficientSeats
	}

	return nil
}

func (r *EventRepositoryImpl) RestoreSeats(ctx context.Context, tx pgx.Tx, id int, seats int) error {
	query := `
		UPDATE events
		SET available_seats = available_seats + $1
		WHERE id = $2
	`

	result, err := tx.Exec(ctx, query, seats, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id, ownerID int) error {
	query := `
		DELETE FROM events
		WHERE id = $1 AND user_id = $2
	`

	result, err := tx.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) ListLocations(ctx context.Context) ([]*model.LocationStats, error) {
	query := `
		SELECT location,
		       COUNT(*) AS events,
		       COUNT(*) FILTER (WHERE date >= now()) AS upcoming_events
		FROM events
		GROUP BY location
		ORDER BY location
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]*model.LocationStats, 0)
	for rows.Next() {
		var loc model.LocationStats
		if err := rows.Scan(&loc.Location, &loc.Events, &loc.UpcomingEvents); err != nil {
			return nil, err
		}
		locations = append(locations, &loc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *EventRepositoryImpl) RenameLocation(ctx context.Context, ownerID int, from, to string) (int, error) {
	query := `
		UPDATE events
		SET location = $1
		WHERE location = $2 AND user_id = $3
	`

	result, err := r.pool.Exec(ctx, query, to, from, ownerID)
	if err != nil {
		return 0, err
	}

	return int(result.RowsAffected()), nil
}

func (r *EventRepositoryImpl) DeleteByLocation(ctx context.Context, tx pgx.Tx, ownerID int, location string) (int, error) {
	query := `
		DELETE FROM events
		WHERE location = $1 AND user_id = $2
	`

	result, err := tx.Exec(ctx, query, location, ownerID)
	if err != nil {
		return 0, err
	}

	return int(result.RowsAffected()), nil
}
