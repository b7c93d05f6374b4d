package models

// DeltaPage is one decoded response unit of the paginated change feed.
//
// Invariant: a page carries exactly one of NextLink (more pages follow) or
// DeltaLink (terminal page of the walk), never both and never neither. The
// fetcher rejects pages violating this as malformed.
type DeltaPage struct {
	Value     []CalendarEvent `json:"value"`
	NextLink  string          `json:"@odata.nextLink,omitempty"`
	DeltaLink string          `json:"@odata.deltaLink,omitempty"`
}

// WalkResult aggregates one complete page walk: every live event and
// tombstone id in server emission order, plus the continuation token returned
// by the terminal page.
type WalkResult struct {
	UpdatedEvents   []CalendarEvent
	DeletedEventIDs []string
	DeltaToken      string
	Pages           int
}
