package models

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Well-known problem statuses. The status column is an open string set:
// authorities may write values outside this list and filtering treats the
// value as an opaque exact match.
const (
	StatusPending  = "Pending"
	StatusResolved = "Resolved"
)

// Problem represents a citizen-filed civic issue report
type Problem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CitizenID   uuid.UUID `json:"citizen_id" db:"citizen_id"`
	Description string    `json:"description" db:"description"`
	FilePath    *string   `json:"file_path" db:"file_path"`
	Location    string    `json:"location" db:"location"`
	Latitude    *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64  `json:"longitude,omitempty" db:"longitude"`
	Geohash     *string   `json:"-" db:"geohash"`
	Category    string    `json:"category" db:"category"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Reporter identifies the citizen who filed a problem
type Reporter struct {
	Name   string `json:"name" db:"reporter_name"`
	Mobile string `json:"mobile" db:"reporter_mobile"`
}

// ProblemWithReporter is a problem row joined with its owning citizen,
// as returned to authorities
type ProblemWithReporter struct {
	Problem
	Reporter Reporter `json:"reporter"`
}

// ProblemFilter holds optional exact-match filters for authority listings.
// Empty fields are ignored; both set means logical AND.
type ProblemFilter struct {
	Status   string
	Category string
}

// ReportProblemInput carries the decoded multipart fields of a
// report-problem request. File is nil when no attachment was uploaded.
type ReportProblemInput struct {
	Description string
	Location    string
	Category    string
	Latitude    *float64
	Longitude   *float64
	FileName    string
	File        io.Reader
}

// UpdateStatusRequest represents an authority request to overwrite a problem's status
type UpdateStatusRequest struct {
	ProblemID string `json:"problem_id"`
	Status    string `json:"status"`
}

// Analytics is a point-in-time aggregate snapshot over all problems
type Analytics struct {
	TotalReports      int64            `json:"total_reports"`
	ResolvedReports   int64            `json:"resolved_reports"`
	PendingReports    int64            `json:"pending_reports"`
	CategoryWiseCount map[string]int64 `json:"category_wise_count"`
}
