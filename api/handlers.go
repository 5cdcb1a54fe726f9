/*
handlers.go - HTTP handlers for the federal calendar API

PURPOSE:
  Exposes the resolution engine over REST. Handlers parse and validate
  input, call the engine, and serialize DateFacts and friends to JSON.

ENDPOINTS:
  GET /api/dates/{date}                      Full facts for one date
  GET /api/dates?start=&end=                 Batch facts for a range
  GET /api/departments                       Department roster
  GET /api/departments/{abbrev}/status?date= One status resolution
  GET /api/holidays?year=                    Observed holidays for a year
  GET /api/paydays?start=&end=&population=   Payday occurrences

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: out-of-coverage dates, malformed input, invalid periods
  - 404: unknown department
  - 409: conflicting fact-table records (ambiguous history)
  - 500: internal errors

SEE ALSO:
  - dto.go: response shapes
  - server.go: router and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/govcal/fedcal-engine/fedcal"
)

// Handler holds the engine and request validation.
type Handler struct {
	Engine *fedcal.Engine

	validate *validator.Validate
}

// NewHandler creates a handler bound to a resolution engine.
func NewHandler(engine *fedcal.Engine) *Handler {
	return &Handler{
		Engine:   engine,
		validate: validator.New(),
	}
}

// =============================================================================
// DATE FACTS
// =============================================================================

// GetDateFacts returns the full fact set for one date.
// GET /api/dates/{date}
func (h *Handler) GetDateFacts(w http.ResponseWriter, r *http.Request) {
	date, err := fedcal.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	facts, err := h.Engine.Facts(date)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDateFactsDTO(facts))
}

// GetDateRangeFacts returns facts for every date in [start, end].
// GET /api/dates?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) GetDateRangeFacts(w http.ResponseWriter, r *http.Request) {
	q := rangeQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if err := h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid range query", err)
		return
	}

	rng, err := h.parseRange(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid range", err)
		return
	}

	facts, err := rng.Facts()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	dtos := make([]DateFactsDTO, len(facts))
	for i, f := range facts {
		dtos[i] = toDateFactsDTO(f)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) parseRange(q rangeQuery) (fedcal.Range, error) {
	start, err := fedcal.ParseDate(q.Start)
	if err != nil {
		return fedcal.Range{}, err
	}
	end, err := fedcal.ParseDate(q.End)
	if err != nil {
		return fedcal.Range{}, err
	}
	return h.Engine.Range(start, end)
}

// =============================================================================
// DEPARTMENTS
// =============================================================================

// ListDepartments returns the department roster.
// GET /api/departments
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	depts := fedcal.AllDepartments()
	dtos := make([]DepartmentDTO, len(depts))
	for i, d := range depts {
		dtos[i] = DepartmentDTO{Abbrev: d.Abbrev(), Full: d.Full(), Short: d.Short()}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetDepartmentStatus resolves one department's status on a date.
// GET /api/departments/{abbrev}/status?date=YYYY-MM-DD
// An omitted date resolves against today.
func (h *Handler) GetDepartmentStatus(w http.ResponseWriter, r *http.Request) {
	dept, err := fedcal.DepartmentFromAbbrev(chi.URLParam(r, "abbrev"))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	date := fedcal.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = fedcal.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date", err)
			return
		}
	}

	status, period, err := h.Engine.ResolvePeriod(date, dept)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	dto := StatusDTO{Date: date.String(), Entity: dept.Abbrev(), Status: status.String()}
	if period != nil {
		dto.Citation = period.Citation
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// ListHolidays returns the observed holidays of a year.
// GET /api/holidays?year=2024
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	if err := h.validate.Struct(yearQuery{Year: year}); err != nil {
		writeError(w, http.StatusBadRequest, "Year out of range", err)
		return
	}

	hols := h.Engine.HolidaysInYear(year)
	dtos := make([]HolidayDTO, len(hols))
	for i, hol := range hols {
		dtos[i] = toHolidayDTO(hol)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PAYDAYS
// =============================================================================

// ListPaydays returns payday occurrences inside a range, optionally
// filtered by population.
// GET /api/paydays?start=&end=&population=civilian|military
func (h *Handler) ListPaydays(w http.ResponseWriter, r *http.Request) {
	q := paydayQuery{
		rangeQuery: rangeQuery{
			Start: r.URL.Query().Get("start"),
			End:   r.URL.Query().Get("end"),
		},
		Population: r.URL.Query().Get("population"),
	}
	if err := h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payday query", err)
		return
	}

	rng, err := h.parseRange(q.rangeQuery)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid range", err)
		return
	}

	var dtos []PaydayDTO
	if q.Population == "" || q.Population == "civilian" {
		for _, d := range rng.CivilianPaydays() {
			dtos = append(dtos, PaydayDTO{Date: d.String(), Population: "civilian"})
		}
	}
	if q.Population == "" || q.Population == "military" {
		for _, mp := range rng.MilitaryPaydays() {
			dtos = append(dtos, PaydayDTO{
				Date:       mp.Actual.String(),
				Population: "military",
				Scheduled:  mp.Scheduled.String(),
				Shifted:    mp.Shifted,
			})
		}
	}
	if dtos == nil {
		dtos = []PaydayDTO{}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps engine error taxonomy onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fedcal.ErrInvalidEntity):
		writeError(w, http.StatusNotFound, "Unknown department", err)
	case errors.Is(err, fedcal.ErrDataConflict):
		writeError(w, http.StatusConflict, "Conflicting fact-table records", err)
	case fedcal.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Unresolvable query", err)
	default:
		writeError(w, http.StatusInternalServerError, "Resolution failed", err)
	}
}
