package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/consint/callbackd/internal/callback/domain"
	"github.com/consint/callbackd/internal/metrics"
	"github.com/consint/callbackd/internal/mirror"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Repo   domain.Repository
	Mirror *mirror.Log
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   domain.Repository
	mirror *mirror.Log
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("callback.service"),
		repo:   p.Repo,
		mirror: p.Mirror,
	}
}

// Ingest validates and persists one inbound callback: first into the record
// store, then into the mirror log. The two writes are not transactional; a
// failure between them leaves the mirror behind the store and the caller only
// sees a generic error either way.
func (s *Service) Ingest(ctx context.Context, req domain.IngestRequest) (domain.IngestResponse, error) {
	metrics.CallbacksReceivedTotal.Inc()

	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" {
		return domain.IngestResponse{}, domain.ErrInvalidCustomerID
	}
	scanID := strings.TrimSpace(req.ScanID)
	if scanID == "" {
		return domain.IngestResponse{}, domain.ErrInvalidScanID
	}

	receivedAt := time.Now().UTC()
	receivedAtStr := receivedAt.Format(time.RFC3339Nano)

	s.log.Info("received callback",
		zap.String("customer_id", customerID),
		zap.String("scan_id", scanID),
	)

	// The inbound body is stored verbatim, before defaulting.
	payload, err := json.Marshal(req)
	if err != nil {
		return domain.IngestResponse{}, fmt.Errorf("encode callback payload: %w", err)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusReceived
	}
	timestamp := strings.TrimSpace(req.Timestamp)
	if timestamp == "" {
		timestamp = receivedAtStr
	}

	record := domain.CallbackRecord{
		CustomerID: customerID,
		ScanID:     scanID,
		Timestamp:  timestamp,
		Status:     status,
		Payload:    datatypes.JSON(payload),
		CreatedAt:  receivedAt,
	}

	if err := s.repo.Insert(ctx, s.db, &record); err != nil {
		metrics.CallbacksFailedTotal.Inc()
		s.log.Error("store callback",
			zap.String("customer_id", customerID),
			zap.String("scan_id", scanID),
			zap.Error(err),
		)
		return domain.IngestResponse{}, fmt.Errorf("store callback: %w", err)
	}

	entry := mirror.Entry{
		ReceivedAt: receivedAtStr,
		CustomerID: req.CustomerID,
		ScanID:     req.ScanID,
		Status:     req.Status,
		Data:       req.Data,
		Metadata:   req.Metadata,
		Timestamp:  req.Timestamp,
	}
	if err := s.mirror.Append(entry); err != nil {
		metrics.CallbacksFailedTotal.Inc()
		s.log.Error("mirror callback",
			zap.String("customer_id", customerID),
			zap.String("scan_id", scanID),
			zap.Int64("callback_id", record.ID),
			zap.Error(err),
		)
		return domain.IngestResponse{}, fmt.Errorf("mirror callback: %w", err)
	}

	metrics.CallbacksStoredTotal.Inc()
	s.log.Info("stored callback",
		zap.String("customer_id", customerID),
		zap.String("scan_id", scanID),
		zap.Int64("callback_id", record.ID),
	)

	return domain.IngestResponse{
		Success:    true,
		Message:    "Callback received and stored successfully",
		ReceivedAt: receivedAtStr,
	}, nil
}

// ListResults serves one page of all records, newest first. Limit and offset
// are reported back as requested; out-of-range values yield an empty page
// with the correct total.
func (s *Service) ListResults(ctx context.Context, req domain.ListResultsRequest) (domain.ListResultsResponse, error) {
	records, total, err := s.repo.List(ctx, s.db, req.Limit, req.Offset)
	if err != nil {
		s.log.Error("list callbacks", zap.Error(err))
		return domain.ListResultsResponse{}, fmt.Errorf("list callbacks: %w", err)
	}

	return domain.ListResultsResponse{
		Total:   total,
		Limit:   req.Limit,
		Offset:  req.Offset,
		Results: records,
	}, nil
}

// ListByCustomer returns the full history for one customer. A customer with
// zero records is a not-found condition, unlike the paginated listing.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) (domain.CustomerResultsResponse, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return domain.CustomerResultsResponse{}, domain.ErrInvalidCustomerID
	}

	records, err := s.repo.ListByCustomer(ctx, s.db, customerID)
	if err != nil {
		s.log.Error("list callbacks by customer",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return domain.CustomerResultsResponse{}, fmt.Errorf("list callbacks for customer %s: %w", customerID, err)
	}

	if len(records) == 0 {
		return domain.CustomerResultsResponse{}, &domain.NotFoundError{
			Message: fmt.Sprintf("No results found for customer %s", customerID),
		}
	}

	return domain.CustomerResultsResponse{
		CustomerID: customerID,
		TotalScans: len(records),
		Results:    records,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (domain.DeleteResponse, error) {
	removed, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		s.log.Error("delete callback", zap.Int64("callback_id", id), zap.Error(err))
		return domain.DeleteResponse{}, fmt.Errorf("delete callback %d: %w", id, err)
	}
	if !removed {
		return domain.DeleteResponse{}, &domain.NotFoundError{
			Message: fmt.Sprintf("Result with ID %d not found", id),
		}
	}

	s.log.Info("deleted callback", zap.Int64("callback_id", id))
	return domain.DeleteResponse{
		Success: true,
		Message: fmt.Sprintf("Result %d deleted successfully", id),
	}, nil
}
