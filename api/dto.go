/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  JSON shapes for the HTTP surface, decoupled from the engine's domain
  types. Dates are ISO strings; statuses and kinds are their lowercase
  names; estimate confidences are decimal strings so clients never read
  float artifacts.

NAMING CONVENTION:
  - *DTO: response types returned to clients
  - *Query: validated query-parameter carriers

SEE ALSO:
  - handlers.go: builds these from engine output
*/
package api

import (
	"github.com/govcal/fedcal-engine/fedcal"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// DepartmentDTO is one executive department.
type DepartmentDTO struct {
	Abbrev string `json:"abbrev"`
	Full   string `json:"full_name"`
	Short  string `json:"short_name"`
}

// StatusDTO is a single entity status resolution.
type StatusDTO struct {
	Date     string `json:"date"`
	Entity   string `json:"entity"`
	Status   string `json:"status"`
	Citation string `json:"citation,omitempty"`
}

// HolidayDTO is one observed holiday.
type HolidayDTO struct {
	Date     string `json:"date"`
	Observed string `json:"observed"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
}

// MilPaydayDTO is a confirmed military payday determination.
type MilPaydayDTO struct {
	IsPayday  bool   `json:"is_payday"`
	Scheduled string `json:"scheduled,omitempty"`
	Actual    string `json:"actual,omitempty"`
	Shifted   bool   `json:"shifted,omitempty"`
}

// EstimateDTO is a speculative result; confidence is a decimal string.
type EstimateDTO struct {
	Likely     bool   `json:"likely"`
	Confidence string `json:"confidence"`
	Basis      string `json:"basis,omitempty"`
}

// DateFactsDTO is the full per-date resolution.
type DateFactsDTO struct {
	Date           string            `json:"date"`
	Statuses       map[string]string `json:"statuses"`
	DataIncomplete bool              `json:"data_incomplete,omitempty"`
	IsHoliday      bool              `json:"is_holiday"`
	Holiday        *HolidayDTO       `json:"holiday,omitempty"`
	IsBusinessDay  bool              `json:"is_business_day"`
	FiscalYear     int               `json:"fiscal_year"`
	FiscalQuarter  int               `json:"fiscal_quarter"`
	CivilianPayday bool              `json:"is_civilian_payday"`
	MilitaryPayday MilPaydayDTO      `json:"military_payday"`
	Passday        EstimateDTO       `json:"passday_estimate"`
}

// PaydayDTO is one payday occurrence in a range listing.
type PaydayDTO struct {
	Date       string `json:"date"`
	Population string `json:"population"`
	Scheduled  string `json:"scheduled,omitempty"`
	Shifted    bool   `json:"shifted,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// QUERY TYPES - validated with go-playground/validator
// =============================================================================

type rangeQuery struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

type paydayQuery struct {
	rangeQuery
	Population string `validate:"omitempty,oneof=civilian military"`
}

type yearQuery struct {
	Year int `validate:"required,min=1970,max=2100"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toHolidayDTO(h fedcal.HolidayRecord) HolidayDTO {
	return HolidayDTO{
		Date:     h.Date.String(),
		Observed: h.Observed.String(),
		Name:     h.Name,
		Kind:     h.Kind.String(),
	}
}

func toMilPaydayDTO(mp fedcal.MilPayday) MilPaydayDTO {
	dto := MilPaydayDTO{IsPayday: mp.IsPayday, Shifted: mp.Shifted}
	if !mp.Scheduled.IsZero() {
		dto.Scheduled = mp.Scheduled.String()
	}
	if !mp.Actual.IsZero() {
		dto.Actual = mp.Actual.String()
	}
	return dto
}

func toEstimateDTO(e fedcal.Estimate) EstimateDTO {
	return EstimateDTO{
		Likely:     e.Likely,
		Confidence: e.Confidence.String(),
		Basis:      e.Basis,
	}
}

func toDateFactsDTO(f fedcal.DateFacts) DateFactsDTO {
	dto := DateFactsDTO{
		Date:           f.Date.String(),
		Statuses:       make(map[string]string, len(f.Statuses)),
		DataIncomplete: f.DataIncomplete,
		IsHoliday:      f.IsHoliday,
		IsBusinessDay:  f.IsBusinessDay,
		FiscalYear:     f.FiscalYear,
		FiscalQuarter:  f.FiscalQuarter,
		CivilianPayday: f.IsCivilianPayday,
		MilitaryPayday: toMilPaydayDTO(f.MilitaryPayday),
		Passday:        toEstimateDTO(f.Passday),
	}
	for dept, status := range f.Statuses {
		dto.Statuses[dept.Abbrev()] = status.String()
	}
	if f.Holiday != nil {
		h := toHolidayDTO(*f.Holiday)
		dto.Holiday = &h
	}
	return dto
}
