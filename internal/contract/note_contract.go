package contract

import "time"

// NoteRequest is the full field set for both create and update; updates
// are full replacements, a payload missing required fields is rejected
// the same way a create would be.
type NoteRequest struct {
	CompanyName  string `json:"companyName"`
	Subject      string `json:"subject"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Participants string `json:"participants"`
	AISummary    string `json:"aiSummary"`
	Notes        string `json:"notes"`
}

type NoteResponse struct {
	ID           int       `json:"id"`
	CompanyName  string    `json:"companyName"`
	Subject      string    `json:"subject"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Participants string    `json:"participants"`
	AISummary    string    `json:"aiSummary"`
	Notes        string    `json:"notes"`
	Duration     int       `json:"duration"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListNotesQuery carries the already-parsed listing parameters. Page
// and Limit at zero or below mean "use the default".
type ListNotesQuery struct {
	Page         int
	Limit        int
	CompanyName  string
	Subject      string
	Date         string
	Participants string
}

type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

type ListNotesResponse struct {
	Notes      []*NoteResponse    `json:"notes"`
	Pagination PaginationResponse `json:"pagination"`
}

type SearchNotesResponse struct {
	Notes        []*NoteResponse `json:"notes"`
	SearchQuery  string          `json:"searchQuery"`
	TotalResults int             `json:"totalResults"`
}

// NoteEnvelope wraps a note with a confirmation message on the write
// paths.
type NoteEnvelope struct {
	Message string        `json:"message"`
	Note    *NoteResponse `json:"note"`
}
