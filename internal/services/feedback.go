package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventpulse/internal/domain"
)

type feedbackService struct {
	feedbackRepo domain.FeedbackRepository
	analyzer     domain.SentimentAnalyzer
}

// NewFeedbackService creates a FeedbackService with the given repository and
// sentiment analyzer.
func NewFeedbackService(feedbackRepo domain.FeedbackRepository, analyzer domain.SentimentAnalyzer) domain.FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		analyzer:     analyzer,
	}
}

// SubmitFeedback persists one feedback record. The event id is deliberately
// not checked against the events table, and a user may submit any number of
// records for the same event; both match the upstream API contract.
func (s *feedbackService) SubmitFeedback(ctx context.Context, userID, eventID string, rating int, comment, mood string) (*domain.Feedback, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", domain.ErrInvalidInput)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	}
	mood = strings.TrimSpace(strings.ToLower(mood))
	if !domain.ValidMood(mood) {
		return nil, fmt.Errorf("%w: mood must be happy, neutral, or sad", domain.ErrInvalidInput)
	}

	score, label := s.analyzer.Analyze(comment)
	fb := &domain.Feedback{
		UserID:         userID,
		EventID:        eventID,
		Rating:         rating,
		Comment:        comment,
		Mood:           mood,
		SentimentScore: score,
		SentimentLabel: label,
		CreatedAt:      time.Now(),
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) ListFeedbackForEvent(ctx context.Context, eventID string) ([]*domain.FeedbackWithUser, error) {
	list, err := s.feedbackRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list feedback for event: %w", err)
	}
	return list, nil
}

func (s *feedbackService) ListMyFeedback(ctx context.Context, userID string) ([]*domain.FeedbackWithEvent, error) {
	list, err := s.feedbackRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list my feedback: %w", err)
	}
	return list, nil
}

func (s *feedbackService) ListAllFeedback(ctx context.Context) ([]*domain.FeedbackDetail, error) {
	list, err := s.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all feedback: %w", err)
	}
	return list, nil
}
