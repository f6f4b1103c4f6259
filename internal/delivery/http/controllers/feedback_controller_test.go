package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventpulse/internal/domain"

	"github.com/stretchr/testify/require"
)

type mockFeedbackService struct {
	SubmitFeedbackFn       func(ctx context.Context, userID, eventID string, rating int, comment, mood string) (*domain.Feedback, error)
	ListFeedbackForEventFn func(ctx context.Context, eventID string) ([]*domain.FeedbackWithUser, error)
	ListMyFeedbackFn       func(ctx context.Context, userID string) ([]*domain.FeedbackWithEvent, error)
	ListAllFeedbackFn      func(ctx context.Context) ([]*domain.FeedbackDetail, error)
}

func (m *mockFeedbackService) SubmitFeedback(ctx context.Context, userID, eventID string, rating int, comment, mood string) (*domain.Feedback, error) {
	return m.SubmitFeedbackFn(ctx, userID, eventID, rating, comment, mood)
}

func (m *mockFeedbackService) ListFeedbackForEvent(ctx context.Context, eventID string) ([]*domain.FeedbackWithUser, error) {
	return m.ListFeedbackForEventFn(ctx, eventID)
}

func (m *mockFeedbackService) ListMyFeedback(ctx context.Context, userID string) ([]*domain.FeedbackWithEvent, error) {
	return m.ListMyFeedbackFn(ctx, userID)
}

func (m *mockFeedbackService) ListAllFeedback(ctx context.Context) ([]*domain.FeedbackDetail, error) {
	return m.ListAllFeedbackFn(ctx)
}

func TestFeedbackController_SubmitFeedback(t *testing.T) {
	svc := &mockFeedbackService{
		SubmitFeedbackFn: func(_ context.Context, userID, eventID string, rating int, comment, mood string) (*domain.Feedback, error) {
			require.Equal(t, "u-2", userID)
			require.Equal(t, "ev-1", eventID)
			require.Equal(t, 5, rating)
			return &domain.Feedback{
				ID:             "fb-1",
				UserID:         userID,
				EventID:        eventID,
				Rating:         rating,
				Comment:        comment,
				Mood:           mood,
				SentimentScore: 0.8,
				SentimentLabel: "Positive",
			}, nil
		},
	}
	ctrl := NewFeedbackController(testLogger, svc)

	body := `{"eventId":"ev-1","rating":5,"comment":"Great event","mood":"happy"}`
	req := authedRequest(http.MethodPost, "/api/feedback", body, "u-2", domain.RoleUser)
	rec := httptest.NewRecorder()
	ctrl.SubmitFeedback(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var fb domain.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
	require.Equal(t, "fb-1", fb.ID)
	require.Equal(t, "Positive", fb.SentimentLabel)
}

func TestFeedbackController_SubmitFeedback_badRequests(t *testing.T) {
	ctrl := NewFeedbackController(testLogger, &mockFeedbackService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing event id", `{"rating":5,"comment":"Great","mood":"happy"}`},
		{"rating out of range", `{"eventId":"ev-1","rating":6,"comment":"Great","mood":"happy"}`},
		{"blank comment", `{"eventId":"ev-1","rating":5,"comment":"  ","mood":"happy"}`},
		{"unknown mood", `{"eventId":"ev-1","rating":5,"comment":"Great","mood":"ecstatic"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(http.MethodPost, "/api/feedback", tt.body, "u-2", domain.RoleUser)
			rec := httptest.NewRecorder()
			ctrl.SubmitFeedback(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFeedbackController_ListFeedbackForEvent(t *testing.T) {
	svc := &mockFeedbackService{
		ListFeedbackForEventFn: func(_ context.Context, eventID string) ([]*domain.FeedbackWithUser, error) {
			require.Equal(t, "ev-1", eventID)
			return []*domain.FeedbackWithUser{
				{
					Feedback: &domain.Feedback{ID: "fb-1", EventID: eventID, Rating: 4},
					User:     &domain.UserRef{ID: "u-2", Name: "Bob"},
				},
			}, nil
		},
	}
	ctrl := NewFeedbackController(testLogger, svc)

	req := authedRequest(http.MethodGet, "/api/feedback/event/ev-1", "", "u-2", domain.RoleUser)
	req.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	ctrl.ListFeedbackForEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []*domain.FeedbackWithUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Bob", list[0].User.Name)
}

func TestFeedbackController_ListMyFeedback(t *testing.T) {
	svc := &mockFeedbackService{
		ListMyFeedbackFn: func(_ context.Context, userID string) ([]*domain.FeedbackWithEvent, error) {
			require.Equal(t, "u-2", userID)
			return []*domain.FeedbackWithEvent{}, nil
		},
	}
	ctrl := NewFeedbackController(testLogger, svc)

	req := authedRequest(http.MethodGet, "/api/feedback/my-feedback", "", "u-2", domain.RoleUser)
	rec := httptest.NewRecorder()
	ctrl.ListMyFeedback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestFeedbackController_ListAllFeedback(t *testing.T) {
	svc := &mockFeedbackService{
		ListAllFeedbackFn: func(context.Context) ([]*domain.FeedbackDetail, error) {
			return []*domain.FeedbackDetail{
				{
					Feedback: &domain.Feedback{ID: "fb-1", Rating: 3},
					User:     &domain.UserRef{ID: "u-2", Name: "Bob"},
					Event:    &domain.EventRef{ID: "ev-1", Title: "GopherCon"},
				},
			}, nil
		},
	}
	ctrl := NewFeedbackController(testLogger, svc)

	req := authedRequest(http.MethodGet, "/api/feedback/all", "", "u-admin", domain.RoleAdmin)
	rec := httptest.NewRecorder()
	ctrl.ListAllFeedback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []*domain.FeedbackDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "GopherCon", list[0].Event.Title)
}
