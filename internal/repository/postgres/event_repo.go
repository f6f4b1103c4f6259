package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventpulse/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, time, location, organizer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.OrganizerID, e.Status, e.CreatedAt, e.UpdatedAt).
		Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, time, location, organizer_id, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.OrganizerID, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.EventWithOrganizer, error) {
	query := `
		SELECT e.id, e.title, e.description, e.date, e.time, e.location, e.organizer_id, e.status, e.created_at, e.updated_at,
		       u.id, u.name
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		ORDER BY e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEventsWithOrganizer(rows)
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.EventWithOrganizer, error) {
	query := `
		SELECT e.id, e.title, e.description, e.date, e.time, e.location, e.organizer_id, e.status, e.created_at, e.updated_at,
		       u.id, u.name
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.date >= $1 AND e.status = $2
		ORDER BY e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, from, domain.EventStatusUpcoming)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEventsWithOrganizer(rows)
}

func scanEventsWithOrganizer(rows *sql.Rows) ([]*domain.EventWithOrganizer, error) {
	var events []*domain.EventWithOrganizer
	for rows.Next() {
		e := &domain.Event{}
		org := &domain.UserRef{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location,
			&e.OrganizerID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
			&org.ID, &org.Name,
		); err != nil {
			return nil, err
		}
		events = append(events, &domain.EventWithOrganizer{Event: e, Organizer: org})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.EventWithOrganizer{}
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	// COALESCE keeps the stored value wherever the caller passed nil, so one
	// statement covers every partial-update combination.
	query := `
		UPDATE events
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    date        = COALESCE($4, date),
		    time        = COALESCE($5, time),
		    location    = COALESCE($6, location),
		    status      = COALESCE($7, status),
		    updated_at  = $8
		WHERE id = $1
		RETURNING id, title, description, date, time, location, organizer_id, status, created_at, updated_at
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id,
		update.Title, update.Description, update.Date, update.Time, update.Location, update.Status, time.Now()).
		Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.OrganizerID, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
