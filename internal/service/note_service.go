package service

import (
	"net/http"

	"github.com/labstack/gommon/log"

	"sachify/internal/contract"
	"sachify/internal/domain/entity"
	"sachify/internal/utils/apierror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type NoteRepository interface {
	Insert(note *entity.Note) error
	FindByID(id int) (*entity.Note, error)
	Update(note *entity.Note) error
	Delete(note *entity.Note) error
	Count(filter entity.NoteFilter) (int64, error)
	FindAll(filter entity.NoteFilter, offset, limit int) ([]*entity.Note, error)
	Search(q string) ([]*entity.Note, error)
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
}

func NewNoteService(noteRepo NoteRepository) *DefaultNoteService {
	return &DefaultNoteService{NoteRepo: noteRepo}
}

// ListNotes returns one page of notes plus pagination metadata. All
// supplied filters are ANDed, ordering is fixed to newest first. A page
// past the end yields an empty page with metadata computed from the
// true total.
func (n *DefaultNoteService) ListNotes(query *contract.ListNotesQuery) (*contract.ListNotesResponse, apierror.ErrorResponse) {
	page := query.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filter := entity.NoteFilter{
		CompanyName:  query.CompanyName,
		Subject:      query.Subject,
		Date:         query.Date,
		Participants: query.Participants,
	}

	total, err := n.NoteRepo.Count(filter)
	if err != nil {
		log.Errorf("failed to count notes: %v", err)
		return nil, apierror.NewStoreError("fetch notes")
	}

	offset := (page - 1) * limit
	notes, err := n.NoteRepo.FindAll(filter, offset, limit)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.NewStoreError("fetch notes")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &contract.ListNotesResponse{
		Notes: toNoteResponses(notes),
		Pagination: contract.PaginationResponse{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}, nil
}

func (n *DefaultNoteService) GetNote(noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.NewStoreError("fetch note")
	}

	if note == nil {
		return nil, apierror.NoteNotFoundError
	}
	return toNoteResponse(note), nil
}

// CreateNote validates the full field set and inserts a new note. No
// store call is made when validation fails at the boundary.
func (n *DefaultNoteService) CreateNote(req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	note := newNote(req)
	if apierr := validateNote(note); apierr != nil {
		return nil, apierr
	}

	if err := n.NoteRepo.Insert(note); err != nil {
		return nil, storeFailure("create note", err)
	}
	return toNoteResponse(note), nil
}

// UpdateNote replaces every field of an existing note. ID and CreatedAt
// are kept, UpdatedAt is refreshed by the store.
func (n *DefaultNoteService) UpdateNote(noteId int, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	replacement := newNote(req)
	if apierr := validateNote(replacement); apierr != nil {
		return nil, apierr
	}

	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.NewStoreError("update note")
	}
	if note == nil {
		return nil, apierror.NoteNotFoundError
	}

	replacement.ID = note.ID
	replacement.CreatedAt = note.CreatedAt
	if err := n.NoteRepo.Update(replacement); err != nil {
		return nil, storeFailure("update note", err)
	}
	return toNoteResponse(replacement), nil
}

// DeleteNote removes the note and returns its last snapshot so clients
// can confirm what was deleted.
func (n *DefaultNoteService) DeleteNote(noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.NewStoreError("delete note")
	}
	if note == nil {
		return nil, apierror.NoteNotFoundError
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return nil, apierror.NewStoreError("delete note")
	}
	return toNoteResponse(note), nil
}

// SearchNotes matches q against every text field of every note,
// unpaginated. An empty q never reaches the store.
func (n *DefaultNoteService) SearchNotes(q string) (*contract.SearchNotesResponse, apierror.ErrorResponse) {
	if q == "" {
		return nil, apierror.MissingSearchQueryError
	}

	notes, err := n.NoteRepo.Search(q)
	if err != nil {
		log.Errorf("failed to search notes: %v", err)
		return nil, apierror.NewStoreError("search notes")
	}

	return &contract.SearchNotesResponse{
		Notes:        toNoteResponses(notes),
		SearchQuery:  q,
		TotalResults: len(notes),
	}, nil
}

func newNote(req *contract.NoteRequest) *entity.Note {
	return &entity.Note{
		CompanyName:  req.CompanyName,
		Subject:      req.Subject,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: req.Participants,
		AISummary:    req.AISummary,
		Notes:        req.Notes,
	}
}

func validateNote(note *entity.Note) apierror.ErrorResponse {
	err := note.Validate()
	if err == nil {
		return nil
	}

	if verr := apierror.FromValidationError(err); verr != nil {
		return verr
	}
	log.Errorf("unexpected validation failure: %v", err)
	return apierror.NewStoreError("validate note")
}

// storeFailure distinguishes store-level validation rejections, which
// are the caller's fault, from genuine persistence failures.
func storeFailure(action string, err error) apierror.ErrorResponse {
	if verr := apierror.FromValidationError(err); verr != nil {
		return apierror.NewSimple(http.StatusBadRequest, "Validation error", verr.Messages())
	}
	log.Errorf("failed to %s: %v", action, err)
	return apierror.NewStoreError(action)
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:           note.ID,
		CompanyName:  note.CompanyName,
		Subject:      note.Subject,
		Date:         note.Date,
		StartTime:    note.StartTime,
		EndTime:      note.EndTime,
		Participants: note.Participants,
		AISummary:    note.AISummary,
		Notes:        note.Notes,
		Duration:     note.Duration(),
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*contract.NoteResponse {
	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp
}
