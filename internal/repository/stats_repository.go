package repository

import (
	"context"
	"fmt"

	"go-event-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository serves the read-only profile and dashboard aggregations.
type StatsRepository interface {
	EventsByOwner(ctx context.Context, ownerID int) ([]*model.Event, error)
	CountEventsByOwner(ctx context.Context, ownerID int) (int, error)
	UpcomingEvents(ctx context.Context, userID, limit int) ([]*model.Event, error)
	LocationTallies(ctx context.Context, ownerID int) ([]*model.LocationStats, error)
}

type StatsRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &StatsRepositoryImpl{
		pool: pool,
	}
}

func (r *StatsRepositoryImpl) EventsByOwner(ctx context.Context, ownerID int) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE user_id = $1
		ORDER BY date DESC
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, ownerID)
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

func (r *StatsRepositoryImpl) CountEventsByOwner(ctx context.Context, ownerID int) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE user_id = $1`, ownerID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// UpcomingEvents returns the next events the user either created or booked,
// soonest first.
func (r *StatsRepositoryImpl) UpcomingEvents(ctx context.Context, userID, limit int) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM events e
		LEFT JOIN bookings b ON b.event_id = e.id AND b.user_id = $1
		WHERE e.date >= now() AND (e.user_id = $1 OR b.id IS NOT NULL)
		ORDER BY e.date ASC
		LIMIT $2
	`, prefixedEventColumns("e"))

	rows, err := r.pool.Query(ctx, query, userID, limit)
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

func (r *StatsRepositoryImpl) LocationTallies(ctx context.Context, ownerID int) ([]*model.LocationStats, error) {
	query := `
		SELECT location,
		       COUNT(*) AS events,
		       COUNT(*) FILTER (WHERE date >= now()) AS upcoming_events
		FROM events
		WHERE user_id = $1
		GROUP BY location
		ORDER BY location
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tallies := make([]*model.LocationStats, 0)
	for rows.Next() {
		var loc model.LocationStats
		if err := rows.Scan(&loc.Location, &loc.Events, &loc.UpcomingEvents); err != nil {
			return nil, err
		}
		tallies = append(tallies, &loc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tallies, nil
}
