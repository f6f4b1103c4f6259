package domain

import (
	"context"
	"time"
)

// Feedback moods accepted on submission.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

// ValidMood reports whether mood is one of the accepted values.
func ValidMood(mood string) bool {
	return mood == MoodHappy || mood == MoodNeutral || mood == MoodSad
}

// Feedback represents one feedback submission for an event. The sentiment
// fields are derived from the comment at submission time and are never
// recomputed.
// swagger:model Feedback
type Feedback struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	EventID        string    `json:"event_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	Mood           string    `json:"mood"`
	SentimentScore float64   `json:"sentiment_score"`
	SentimentLabel string    `json:"sentiment_label"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventRef is an event reference resolved for display on feedback listings.
// swagger:model EventRef
type EventRef struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// FeedbackWithUser is feedback with the submitter resolved. User is nil when
// the referenced user no longer exists.
// swagger:model FeedbackWithUser
type FeedbackWithUser struct {
	*Feedback
	User *UserRef `json:"user"`
}

// FeedbackWithEvent is feedback with the event resolved. Event is nil when
// the referenced event no longer exists.
// swagger:model FeedbackWithEvent
type FeedbackWithEvent struct {
	*Feedback
	Event *EventRef `json:"event"`
}

// FeedbackDetail is feedback with both submitter and event resolved.
// swagger:model FeedbackDetail
type FeedbackDetail struct {
	*Feedback
	User  *UserRef  `json:"user"`
	Event *EventRef `json:"event"`
}

// FeedbackRepository defines the interface for feedback storage.
// All listings are ordered by creation time, newest first.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
	ListByEventID(ctx context.Context, eventID string) ([]*FeedbackWithUser, error)
	ListByUserID(ctx context.Context, userID string) ([]*FeedbackWithEvent, error)
	ListAll(ctx context.Context) ([]*FeedbackDetail, error)
}

// SentimentAnalyzer scores free text; Analyze returns a polarity in [-1, 1]
// and a label (Positive, Negative, Neutral).
type SentimentAnalyzer interface {
	Analyze(text string) (score float64, label string)
}

// FeedbackService defines the business logic for feedback.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, userID, eventID string, rating int, comment, mood string) (*Feedback, error)
	ListFeedbackForEvent(ctx context.Context, eventID string) ([]*FeedbackWithUser, error)
	ListMyFeedback(ctx context.Context, userID string) ([]*FeedbackWithEvent, error)
	ListAllFeedback(ctx context.Context) ([]*FeedbackDetail, error)
}
