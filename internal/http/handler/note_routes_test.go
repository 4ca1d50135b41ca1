package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sachify/internal/contract"
	"sachify/internal/utils/apierror"
)

// stubNoteService records the last call and replays canned responses.
type stubNoteService struct {
	lastQuery  *contract.ListNotesQuery
	lastNoteID int
	lastReq    *contract.NoteRequest
	lastSearch string

	note   *contract.NoteResponse
	list   *contract.ListNotesResponse
	search *contract.SearchNotesResponse
	err    apierror.ErrorResponse
}

func (s *stubNoteService) ListNotes(query *contract.ListNotesQuery) (*contract.ListNotesResponse, apierror.ErrorResponse) {
	s.lastQuery = query
	return s.list, s.err
}

func (s *stubNoteService) GetNote(noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	s.lastNoteID = noteId
	return s.note, s.err
}

func (s *stubNoteService) CreateNote(req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	s.lastReq = req
	return s.note, s.err
}

func (s *stubNoteService) UpdateNote(noteId int, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	s.lastNoteID = noteId
	s.lastReq = req
	return s.note, s.err
}

func (s *stubNoteService) DeleteNote(noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	s.lastNoteID = noteId
	return s.note, s.err
}

func (s *stubNoteService) SearchNotes(q string) (*contract.SearchNotesResponse, apierror.ErrorResponse) {
	s.lastSearch = q
	return s.search, s.err
}

func request(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req, httptest.NewRecorder()
}

func TestGetNotes_ParsesQueryParams(t *testing.T) {
	stub := &stubNoteService{list: &contract.ListNotesResponse{}}
	route := NewNoteDefault(stub)

	req, rec := request(http.MethodGet, "/api/notes?page=2&limit=5&companyName=Acme&date=2024-01-01", "")
	c := echo.New().NewContext(req, rec)

	require.NoError(t, route.GetNotes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.lastQuery)
	assert.Equal(t, 2, stub.lastQuery.Page)
	assert.Equal(t, 5, stub.lastQuery.Limit)
	assert.Equal(t, "Acme", stub.lastQuery.CompanyName)
	assert.Equal(t, "2024-01-01", stub.lastQuery.Date)
}

func TestGetNotes_NonNumericPagingFallsThrough(t *testing.T) {
	stub := &stubNoteService{list: &contract.ListNotesResponse{}}
	route := NewNoteDefault(stub)

	req, rec := request(http.MethodGet, "/api/notes?page=abc&limit=", "")
	c := echo.New().NewContext(req, rec)

	require.NoError(t, route.GetNotes(c))
	assert.Equal(t, 0, stub.lastQuery.Page)
	assert.Equal(t, 0, stub.lastQuery.Limit)
}

func TestGetNote_InvalidID(t *testing.T) {
	route := NewNoteDefault(&stubNoteService{})

	req, rec := request(http.MethodGet, "/api/notes/abc", "")
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, route.GetNote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid ID", body["error"])
}

func TestGetNote_NotFoundPassesThrough(t *testing.T) {
	stub := &stubNoteService{err: apierror.NoteNotFoundError}
	route := NewNoteDefault(stub)

	req, rec := request(http.MethodGet, "/api/notes/7", "")
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, route.GetNote(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 7, stub.lastNoteID)
}

func TestCreateNote_Created(t *testing.T) {
	stub := &stubNoteService{note: &contract.NoteResponse{ID: 1, CompanyName: "Acme"}}
	route := NewNoteDefault(stub)

	body := `{"companyName":"Acme","subject":"Sync","date":"2024-01-01","startTime":"09:00","endTime":"09:30","participants":"A,B","aiSummary":"","notes":"x"}`
	req, rec := request(http.MethodPost, "/api/notes", body)
	c := echo.New().NewContext(req, rec)

	require.NoError(t, route.CreateNote(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "Acme", stub.lastReq.CompanyName)

	var envelope contract.NoteEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Note created successfully", envelope.Message)
	require.NotNil(t, envelope.Note)
	assert.Equal(t, 1, envelope.Note.ID)
}

func TestCreateNote_MalformedJSON(t *testing.T) {
	route := NewNoteDefault(&stubNoteService{})

	req, rec := request(http.MethodPost, "/api/notes", `{"companyName":`)
	c := echo.New().NewContext(req, rec)

	require.NoError(t, route.CreateNote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNote_Updated(t *testing.T) {
	stub := &stubNoteService{note: &contract.NoteResponse{ID: 3}}
	route := NewNoteDefault(stub)

	body := `{"companyName":"Acme","subject":"Moved","date":"2024-01-01","startTime":"09:00","endTime":"10:00","participants":"A","aiSummary":"","notes":"x"}`
	req, rec := request(http.MethodPut, "/api/notes/3", body)
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, route.UpdateNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, stub.lastNoteID)

	var envelope contract.NoteEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Note updated successfully", envelope.Message)
}

func TestDeleteNote_ReturnsSnapshot(t *testing.T) {
	stub := &stubNoteService{note: &contract.NoteResponse{ID: 9, CompanyName: "Acme"}}
	route := NewNoteDefault(stub)

	req, rec := request(http.MethodDelete, "/api/notes/9", "")
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, route.DeleteNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope contract.NoteEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Note deleted successfully", envelope.Message)
	require.NotNil(t, envelope.Note)
	assert.Equal(t, 9, envelope.Note.ID)
}

func TestSearchNotes_PassesQueryThrough(t *testing.T) {
	stub := &stubNoteService{search: &contract.SearchNotesResponse{SearchQuery: "acme"}}
	route := NewNoteDefault(stub)

	req, rec := request(http.MethodGet, "/api/notes/search?q=acme", "")
	c := echo.New().NewContext(req, rec)

	require.NoError(t, route.SearchNotes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", stub.lastSearch)
}

func TestSearchNotes_MissingQuery(t *testing.T) {
	stub := &stubNoteService{err: apierror.MissingSearchQueryError}
	route := NewNoteDefault(stub)

	req, rec := request(http.MethodGet, "/api/notes/search", "")
	c := echo.New().NewContext(req, rec)

	require.NoError(t, route.SearchNotes(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Search query required", body["error"])
}
