package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventpulse/internal/domain"
)

type eventService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
	userRepo     domain.UserRepository
	mailer       domain.Mailer
	logger       *slog.Logger
}

// NewEventService creates an EventService with the given repositories.
// The mailer is used for best-effort registration confirmations.
func NewEventService(
	eventRepo domain.EventRepository,
	attendeeRepo domain.AttendeeRepository,
	userRepo domain.UserRepository,
	mailer domain.Mailer,
	logger *slog.Logger,
) domain.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID string, event *domain.Event) (*domain.Event, error) {
	if organizerID == "" {
		return nil, fmt.Errorf("%w: organizer is required", domain.ErrInvalidInput)
	}
	if event.Title == "" || event.Description == "" || event.Date.IsZero() || event.Time == "" || event.Location == "" {
		return nil, fmt.Errorf("%w: title, description, date, time, and location are required", domain.ErrInvalidInput)
	}
	// Organizer must resolve to an existing user at creation time.
	if _, err := s.userRepo.GetByID(ctx, organizerID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: organizer does not exist", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get organizer: %w", err)
	}

	now := time.Now()
	event.OrganizerID = organizerID
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventWithOrganizer, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]*domain.EventWithOrganizer, error) {
	events, err := s.eventRepo.ListUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.EventDetail, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.resolveDetail(ctx, event)
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	if update.Status != nil {
		status := strings.TrimSpace(strings.ToLower(*update.Status))
		switch status {
		case domain.EventStatusUpcoming, domain.EventStatusCompleted, domain.EventStatusCancelled:
			update.Status = &status
		default:
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, *update.Status)
		}
	}
	event, err := s.eventRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) RegisterForEvent(ctx context.Context, eventID, userID string) (*domain.EventDetail, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// The attendee table's primary key makes this atomic; a concurrent
	// duplicate registration loses and surfaces as ErrAlreadyRegistered.
	if err := s.attendeeRepo.Add(ctx, eventID, userID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("add attendee: %w", err)
	}

	s.sendConfirmation(ctx, event, userID)

	return s.resolveDetail(ctx, event)
}

// sendConfirmation emails the attendee about their registration. Failures are
// logged and never surfaced; the registration already succeeded.
func (s *eventService) sendConfirmation(ctx context.Context, event *domain.Event, userID string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email skipped", "event_id", event.ID, "user_id", userID, "err", err)
		return
	}
	subject := fmt.Sprintf("You're registered for %s", event.Title)
	text := fmt.Sprintf("Hi %s,\n\nYou are registered for %s on %s at %s, %s.\n\nSee you there!",
		user.Name, event.Title, event.Date.Format("January 2, 2006"), event.Time, event.Location)
	if err := s.mailer.Send(ctx, user.Email, subject, "", text); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "event_id", event.ID, "user_id", userID, "err", err)
	}
}

func (s *eventService) resolveDetail(ctx context.Context, event *domain.Event) (*domain.EventDetail, error) {
	organizer, err := s.userRepo.GetByID(ctx, event.OrganizerID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get organizer: %w", err)
	}
	attendees, err := s.attendeeRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	detail := &domain.EventDetail{Event: event, Attendees: attendees}
	if organizer != nil {
		detail.Organizer = &domain.UserRef{ID: organizer.ID, Name: organizer.Name}
	}
	return detail, nil
}
