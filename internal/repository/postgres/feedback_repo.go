package postgres

import (
	"context"
	"database/sql"

	"eventpulse/internal/domain"
)

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{DB: db}
}

const feedbackColumns = `f.id, f.user_id, f.event_id, f.rating, f.comment, f.mood, f.sentiment_score, f.sentiment_label, f.created_at`

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `
		INSERT INTO feedback (user_id, event_id, rating, comment, mood, sentiment_score, sentiment_label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		fb.UserID, fb.EventID, fb.Rating, fb.Comment, fb.Mood, fb.SentimentScore, fb.SentimentLabel, fb.CreatedAt).
		Scan(&fb.ID)
}

// ListByEventID returns feedback for one event, newest first. The submitter
// is resolved with a LEFT JOIN so rows survive a deleted user.
func (r *feedbackRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.FeedbackWithUser, error) {
	query := `
		SELECT ` + feedbackColumns + `, u.id, u.name
		FROM feedback f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.event_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.FeedbackWithUser
	for rows.Next() {
		fb := &domain.Feedback{}
		var userID, userName sql.NullString
		if err := rows.Scan(
			&fb.ID, &fb.UserID, &fb.EventID, &fb.Rating, &fb.Comment, &fb.Mood,
			&fb.SentimentScore, &fb.SentimentLabel, &fb.CreatedAt,
			&userID, &userName,
		); err != nil {
			return nil, err
		}
		item := &domain.FeedbackWithUser{Feedback: fb}
		if userID.Valid {
			item.User = &domain.UserRef{ID: userID.String, Name: userName.String}
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.FeedbackWithUser{}
	}
	return list, nil
}

// ListByUserID returns one user's feedback, newest first, with the event
// resolved to title and date where it still exists.
func (r *feedbackRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.FeedbackWithEvent, error) {
	query := `
		SELECT ` + feedbackColumns + `, e.id, e.title, e.date
		FROM feedback f
		LEFT JOIN events e ON e.id = f.event_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.FeedbackWithEvent
	for rows.Next() {
		fb := &domain.Feedback{}
		var eventID, eventTitle sql.NullString
		var eventDate sql.NullTime
		if err := rows.Scan(
			&fb.ID, &fb.UserID, &fb.EventID, &fb.Rating, &fb.Comment, &fb.Mood,
			&fb.SentimentScore, &fb.SentimentLabel, &fb.CreatedAt,
			&eventID, &eventTitle, &eventDate,
		); err != nil {
			return nil, err
		}
		item := &domain.FeedbackWithEvent{Feedback: fb}
		if eventID.Valid {
			item.Event = &domain.EventRef{ID: eventID.String, Title: eventTitle.String, Date: eventDate.Time}
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.FeedbackWithEvent{}
	}
	return list, nil
}

func (r *feedbackRepository) ListAll(ctx context.Context) ([]*domain.FeedbackDetail, error) {
	query := `
		SELECT ` + feedbackColumns + `, u.id, u.name, e.id, e.title, e.date
		FROM feedback f
		LEFT JOIN users u ON u.id = f.user_id
		LEFT JOIN events e ON e.id = f.event_id
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.FeedbackDetail
	for rows.Next() {
		fb := &domain.Feedback{}
		var userID, userName, eventID, eventTitle sql.NullString
		var eventDate sql.NullTime
		if err := rows.Scan(
			&fb.ID, &fb.UserID, &fb.EventID, &fb.Rating, &fb.Comment, &fb.Mood,
			&fb.SentimentScore, &fb.SentimentLabel, &fb.CreatedAt,
			&userID, &userName, &eventID, &eventTitle, &eventDate,
		); err != nil {
			return nil, err
		}
		item := &domain.FeedbackDetail{Feedback: fb}
		if userID.Valid {
			item.User = &domain.UserRef{ID: userID.String, Name: userName.String}
		}
		if eventID.Valid {
			item.Event = &domain.EventRef{ID: eventID.String, Title: eventTitle.String, Date: eventDate.Time}
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.FeedbackDetail{}
	}
	return list, nil
}
