/*
errors.go - Centralized error types for the resolution engine

PURPOSE:
  All engine error types in one place. The engine never silently defaults a
  failed resolution: its value is factual accuracy, so ambiguity and
  out-of-coverage queries surface as errors the caller must handle.

ERROR CATEGORIES:
  1. Coverage errors  - query outside the span of the fact tables
  2. Conflict errors  - ambiguous overlapping fact-table records
  3. Input errors     - unknown entities, malformed periods

USAGE:
  Callers can branch on sentinels:

    if errors.Is(err, fedcal.ErrOutOfCoverage) { ... }

  or unwrap structured details:

    var conflict *fedcal.DataConflictError
    if errors.As(err, &conflict) { log conflict.Citations }
*/
package fedcal

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrOutOfCoverage is returned for dates before the fact tables begin.
	ErrOutOfCoverage = errors.New("date outside fact-table coverage")

	// ErrDataConflict is returned when overlapping fact-table records of
	// equal precedence disagree. Ambiguous history is surfaced, not guessed.
	ErrDataConflict = errors.New("conflicting fact-table records")

	// ErrInvalidEntity is returned for unknown department identifiers.
	ErrInvalidEntity = errors.New("unknown department")

	// ErrInvalidPeriod is returned when a period ends before it starts.
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrInvalidTables is returned when fact tables fail load-time validation.
	ErrInvalidTables = errors.New("invalid fact tables")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// OutOfCoverageError reports a query before the coverage floor.
type OutOfCoverageError struct {
	Date          Date
	CoverageStart Date
}

func (e *OutOfCoverageError) Error() string {
	return fmt.Sprintf("date %s precedes coverage start %s", e.Date, e.CoverageStart)
}

func (e *OutOfCoverageError) Unwrap() error { return ErrOutOfCoverage }

// DataConflictError reports overlapping status periods of equal precedence
// whose citations disagree for a single entity and date.
type DataConflictError struct {
	Date      Date
	Entity    Department
	Status    Status
	Citations []string
}

func (e *DataConflictError) Error() string {
	return fmt.Sprintf("conflicting %s records for %s on %s: %s",
		e.Status, e.Entity, e.Date, strings.Join(e.Citations, " vs "))
}

func (e *DataConflictError) Unwrap() error { return ErrDataConflict }

// InvalidEntityError reports an unrecognized department identifier.
type InvalidEntityError struct {
	Identifier string
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("unknown department %q", e.Identifier)
}

func (e *InvalidEntityError) Unwrap() error { return ErrInvalidEntity }

// InvalidPeriodError reports a malformed period.
type InvalidPeriodError struct {
	Start Date
	End   Date
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period: end %s before start %s", e.End, e.Start)
}

func (e *InvalidPeriodError) Unwrap() error { return ErrInvalidPeriod }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than a defect in the fact tables.
func IsClientError(err error) bool {
	return errors.Is(err, ErrOutOfCoverage) ||
		errors.Is(err, ErrInvalidPeriod)
}

// IsNotFound returns true if the error indicates an unknown entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInvalidEntity)
}
