package domain

import (
	"context"
	"errors"
)

// IngestRequest is the inbound callback body posted by the scanning provider.
// Data and Metadata are open-ended documents and are stored verbatim.
type IngestRequest struct {
	CustomerID string         `json:"customerID"`
	ScanID     string         `json:"scanID"`
	Status     string         `json:"status,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  string         `json:"timestamp,omitempty"`
}

type IngestResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}

type ListResultsRequest struct {
	Limit  int
	Offset int
}

type ListResultsResponse struct {
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Results []CallbackRecord `json:"results"`
}

type CustomerResultsResponse struct {
	CustomerID string           `json:"customer_id"`
	TotalScans int              `json:"total_scans"`
	Results    []CallbackRecord `json:"results"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Service interface {
	Ingest(context.Context, IngestRequest) (IngestResponse, error)
	ListResults(context.Context, ListResultsRequest) (ListResultsResponse, error)
	ListByCustomer(ctx context.Context, customerID string) (CustomerResultsResponse, error)
	Delete(ctx context.Context, id int64) (DeleteResponse, error)
}

var (
	ErrInvalidCustomerID = errors.New("invalid_customer_id")
	ErrInvalidScanID     = errors.New("invalid_scan_id")
	ErrNotFound          = errors.New("not_found")
)

// NotFoundError carries the caller-facing description for a missing record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
