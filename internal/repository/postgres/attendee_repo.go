package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventpulse/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

// Add inserts the (event, user) pair. ON CONFLICT DO NOTHING makes the
// duplicate check atomic against concurrent registrations; zero affected
// rows means the pair already existed.
func (r *attendeeRepository) Add(ctx context.Context, eventID, userID string, registeredAt time.Time) error {
	query := `
		INSERT INTO event_attendees (event_id, user_id, registered_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, eventID, userID, registeredAt)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyRegistered
	}
	return nil
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.UserRef, error) {
	query := `
		SELECT u.id, u.name
		FROM event_attendees a
		JOIN users u ON u.id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.registered_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendees []*domain.UserRef
	for rows.Next() {
		u := &domain.UserRef{}
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		attendees = append(attendees, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []*domain.UserRef{}
	}
	return attendees, nil
}
