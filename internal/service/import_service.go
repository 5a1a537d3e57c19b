package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/importer"
	"salesanalytics/internal/logger"
	"salesanalytics/internal/metrics"
	"salesanalytics/internal/model"
	"salesanalytics/internal/repository"
	ws "salesanalytics/internal/websocket"
	"salesanalytics/pkg/pagination"

	"github.com/google/uuid"
)

// --- DTOs ---

type ImportResult struct {
	ImportID   string `json:"importId"`
	SourceFile string `json:"sourceFile"`
	Format     string `json:"format"`
	RowCount   int    `json:"rowCount"`
}

// Notifier pushes events to connected dashboards
type Notifier interface {
	Publish(evt ws.Event) error
}

// --- Interface ---

type ImportService interface {
	// ImportFile parses the stored upload at path; originalName picks the format
	ImportFile(ctx context.Context, path, originalName string) (ImportResult, error)
	Import(ctx context.Context, r io.Reader, sourceFile, originalName string) (ImportResult, error)
	ListImports(ctx context.Context, page pagination.Params) ([]model.ImportLog, int64, error)
	// Seed replaces every stored record with records
	Seed(ctx context.Context, records []model.SalesRecord) (int, error)
}

type importService struct {
	salesRepo  repository.SalesRepository
	importRepo repository.ImportRepository
	txManager  repository.TransactionManager
	notifier   Notifier
	log        *logger.Logger
}

func NewImportService(
	salesRepo repository.SalesRepository,
	importRepo repository.ImportRepository,
	txManager repository.TransactionManager,
	notifier Notifier,
	log *logger.Logger,
) ImportService {
	return &importService{
		salesRepo:  salesRepo,
		importRepo: importRepo,
		txManager:  txManager,
		notifier:   notifier,
		log:        log.WithComponent("import_service"),
	}
}

// --- Implementation ---

func (s *importService) ImportFile(ctx context.Context, path, originalName string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if originalName == "" {
		originalName = filepath.Base(path)
	}
	return s.Import(ctx, f, path, originalName)
}

func (s *importService) Import(ctx context.Context, r io.Reader, sourceFile, originalName string) (ImportResult, error) {
	format, err := importer.FormatFromName(originalName)
	if err != nil {
		metrics.ObserveImport("unknown", metrics.OutcomeInvalid, 0)
		return ImportResult{}, err
	}

	records, err := importer.Parse(r, format, sourceFile)
	if err == nil && len(records) == 0 {
		err = &analytics.ValidationError{Field: "file", Err: importer.ErrNoDataRows}
	}
	if err != nil {
		metrics.ObserveImport(format, metrics.OutcomeInvalid, 0)
		s.log.WarnContext(ctx, "import rejected", "file", originalName, "error", err)
		return ImportResult{}, err
	}

	entry := &model.ImportLog{
		ID:           uuid.New(),
		SourceFile:   sourceFile,
		OriginalName: originalName,
		Format:       format,
		RowCount:     len(records),
	}
	for i := range records {
		records[i].ImportID = &entry.ID
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.importRepo.Log(txCtx, entry); err != nil {
			return fmt.Errorf("failed to write import log: %w", err)
		}
		if err := s.salesRepo.CreateBatch(txCtx, records); err != nil {
			return fmt.Errorf("failed to insert sales records: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.ObserveImport(format, metrics.OutcomeStorageError, 0)
		s.log.ErrorContext(ctx, "import failed", "file", originalName, "error", err)
		return ImportResult{}, fmt.Errorf("%w: %w", analytics.ErrStorageUnavailable, err)
	}

	result := ImportResult{
		ImportID:   entry.ID.String(),
		SourceFile: sourceFile,
		Format:     format,
		RowCount:   len(records),
	}
	metrics.ObserveImport(format, metrics.OutcomeOK, len(records))
	s.log.InfoContext(ctx, "sales data imported", "file", originalName, "rows", len(records), "import_id", result.ImportID)
	s.notify(ctx, ws.Event{Event: ws.EventSalesImported, Data: result})
	return result, nil
}

func (s *importService) ListImports(ctx context.Context, page pagination.Params) ([]model.ImportLog, int64, error) {
	logs, total, err := s.importRepo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to list imports: %w", analytics.ErrStorageUnavailable, err)
	}
	return logs, total, nil
}

func (s *importService) Seed(ctx context.Context, records []model.SalesRecord) (int, error) {
	var removed int64
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if removed, err = s.salesRepo.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("failed to clear sales records: %w", err)
		}
		if err = s.salesRepo.CreateBatch(txCtx, records); err != nil {
			return fmt.Errorf("failed to insert seed records: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", analytics.ErrStorageUnavailable, err)
	}

	s.log.InfoContext(ctx, "sales data seeded", "removed", removed, "inserted", len(records))
	s.notify(ctx, ws.Event{Event: ws.EventSalesReset, Data: map[string]int{"rowCount": len(records)}})
	return len(records), nil
}

// notify never fails the import; a missed event only delays a dashboard refresh
func (s *importService) notify(ctx context.Context, evt ws.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(evt); err != nil {
		s.log.WarnContext(ctx, "dashboard notification dropped", "event", evt.Event, "error", err)
	}
}
