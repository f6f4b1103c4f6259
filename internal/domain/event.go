package domain

import (
	"context"
	"time"
)

// Event lifecycle statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event represents a scheduled event
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	OrganizerID string    `json:"organizer_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description string, date time.Time, startTime, location, organizerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        startTime,
		Location:    location,
		OrganizerID: organizerID,
		Status:      EventStatusUpcoming,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventWithOrganizer is an event with its organizer resolved for display.
// swagger:model EventWithOrganizer
type EventWithOrganizer struct {
	*Event
	Organizer *UserRef `json:"organizer"`
}

// EventDetail is an event with organizer and attendees resolved for display.
// swagger:model EventDetail
type EventDetail struct {
	*Event
	Organizer *UserRef   `json:"organizer"`
	Attendees []*UserRef `json:"attendees"`
}

// EventUpdate carries a partial update; nil fields are left unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	Location    *string
	Status      *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*EventWithOrganizer, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*EventWithOrganizer, error)
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// AttendeeRepository defines the interface for event attendee storage.
// Add must be atomic against concurrent duplicate registrations and return
// ErrAlreadyRegistered when the (event, user) pair already exists.
type AttendeeRepository interface {
	Add(ctx context.Context, eventID, userID string, registeredAt time.Time) error
	ListByEventID(ctx context.Context, eventID string) ([]*UserRef, error)
}

// EventService defines the business logic for events and registrations.
type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, event *Event) (*Event, error)
	ListEvents(ctx context.Context) ([]*EventWithOrganizer, error)
	ListUpcoming(ctx context.Context) ([]*EventWithOrganizer, error)
	GetEvent(ctx context.Context, id string) (*EventDetail, error)
	UpdateEvent(ctx context.Context, id string, update EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	RegisterForEvent(ctx context.Context, eventID, userID string) (*EventDetail, error)
}
