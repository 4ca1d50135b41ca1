package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sachify/internal/contract"
	"sachify/internal/utils/apierror"
)

type NoteService interface {
	ListNotes(query *contract.ListNotesQuery) (*contract.ListNotesResponse, apierror.ErrorResponse)
	GetNote(noteId int) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(noteId int, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(noteId int) (*contract.NoteResponse, apierror.ErrorResponse)
	SearchNotes(q string) (*contract.SearchNotesResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	query := &contract.ListNotesQuery{
		Page:         intParam(c, "page"),
		Limit:        intParam(c, "limit"),
		CompanyName:  c.QueryParam("companyName"),
		Subject:      c.QueryParam("subject"),
		Date:         c.QueryParam("date"),
		Participants: c.QueryParam("participants"),
	}

	resp, apierr := n.NoteService.ListNotes(query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (n *DefaultNoteRoute) SearchNotes(c echo.Context) error {
	resp, apierr := n.NoteService.SearchNotes(c.QueryParam("q"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	note, apierr := n.NoteService.GetNote(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.CreateNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &contract.NoteEnvelope{
		Message: "Note created successfully",
		Note:    note,
	})
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.NoteRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.UpdateNote(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.NoteEnvelope{
		Message: "Note updated successfully",
		Note:    note,
	})
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	note, apierr := n.NoteService.DeleteNote(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.NoteEnvelope{
		Message: "Note deleted successfully",
		Note:    note,
	})
}

// intParam parses an integer query parameter. Missing or unparsable
// values come back as zero and fall through to the service defaults.
func intParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
