package models

// DateTimeZone is the wire representation of an event boundary: a local
// date-time string paired with the time zone it is expressed in.
type DateTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// EmailAddress identifies a meeting participant.
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Attendee is one invited participant of a calendar event.
type Attendee struct {
	Type         string       `json:"type,omitempty"`
	EmailAddress EmailAddress `json:"emailAddress"`
}

// Recipient wraps the organizer field of a calendar event.
type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// Location is the display location of a calendar event.
type Location struct {
	DisplayName string `json:"displayName"`
}

// RemovedInfo is the tombstone marker the change feed emits in place of a
// full record when an event has been deleted. Its presence is the only thing
// the sync engine inspects; the reason string is passed through untouched.
type RemovedInfo struct {
	Reason string `json:"reason"`
}

// CalendarEvent is one event record as emitted by the remote change feed.
//
// The payload is opaque to the sync engine: apart from ID (identity) and
// Removed (tombstone marker) no field is interpreted, only carried through to
// the caller. Field names follow the Microsoft Graph event resource.
type CalendarEvent struct {
	ID          string        `json:"id"`
	Subject     string        `json:"subject,omitempty"`
	Start       *DateTimeZone `json:"start,omitempty"`
	End         *DateTimeZone `json:"end,omitempty"`
	Attendees   []Attendee    `json:"attendees,omitempty"`
	Organizer   *Recipient    `json:"organizer,omitempty"`
	IsOrganizer bool          `json:"isOrganizer,omitempty"`
	UID         string        `json:"iCalUId,omitempty"`
	BodyPreview string        `json:"bodyPreview,omitempty"`
	WebLink     string        `json:"webLink,omitempty"`
	Location    *Location     `json:"location,omitempty"`

	// Removed is non-nil when the entry is a tombstone.
	Removed *RemovedInfo `json:"@removed,omitempty"`
}

// IsRemoved reports whether the entry is a tombstone rather than a live event.
func (e CalendarEvent) IsRemoved() bool {
	return e.Removed != nil
}
