package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/logger"
	"salesanalytics/internal/metrics"
	"salesanalytics/internal/model"
	"salesanalytics/internal/repository"

	"github.com/samber/lo"
)

// --- DTOs ---

type CategoryResponse struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// --- Interface ---

type SalesService interface {
	QueryByRegion(ctx context.Context, raw analytics.RawQuery) ([]model.RegionRevenue, error)
	QueryByProduct(ctx context.Context, raw analytics.RawQuery) ([]model.ProductQuantity, error)
	QueryTrends(ctx context.Context, raw analytics.RawQuery, period string) ([]model.TrendPoint, error)
	QueryFiltered(ctx context.Context, raw analytics.RawQuery) (model.FilteredSales, error)
	QuerySummary(ctx context.Context, raw analytics.RawQuery) (model.SalesSummary, error)
	QueryGrouped(ctx context.Context, raw analytics.RawQuery, groupBy, period string) (analytics.Result, error)
	Categories() []CategoryResponse
}

type salesService struct {
	salesRepo  repository.SalesRepository
	normalizer *analytics.Normalizer
	categories analytics.CategoryMap
	timeout    time.Duration
	log        *logger.Logger
}

func NewSalesService(
	salesRepo repository.SalesRepository,
	categories analytics.CategoryMap,
	timeout time.Duration,
	log *logger.Logger,
) SalesService {
	return &salesService{
		salesRepo:  salesRepo,
		normalizer: analytics.NewNormalizer(categories),
		categories: categories,
		timeout:    timeout,
		log:        log.WithComponent("sales_service"),
	}
}

// --- Implementation ---

func (s *salesService) QueryByRegion(ctx context.Context, raw analytics.RawQuery) ([]model.RegionRevenue, error) {
	var out []model.RegionRevenue
	err := s.run(ctx, "regions", raw, analytics.DateLenient, func(records []model.SalesRecord, spec analytics.FilterSpec) error {
		out = analytics.RevenueByRegion(records, spec)
		return nil
	})
	return out, err
}

// QueryByProduct ranks products inside a date range; other filters are ignored
func (s *salesService) QueryByProduct(ctx context.Context, raw analytics.RawQuery) ([]model.ProductQuantity, error) {
	var out []model.ProductQuantity
	err := s.run(ctx, "products", datesOnly(raw), analytics.DateLenient, func(records []model.SalesRecord, spec analytics.FilterSpec) error {
		out = analytics.QuantityByProduct(records, spec)
		return nil
	})
	return out, err
}

// QueryTrends requires both dates and fails with ErrNoDataInRange on an empty range
func (s *salesService) QueryTrends(ctx context.Context, raw analytics.RawQuery, period string) ([]model.TrendPoint, error) {
	var out []model.TrendPoint
	err := s.run(ctx, "trends", datesOnly(raw), analytics.DateStrict, func(records []model.SalesRecord, spec analytics.FilterSpec) error {
		var err error
		out, err = analytics.Trends(records, spec, analytics.ParsePeriod(period))
		return err
	})
	return out, err
}

func (s *salesService) QueryFiltered(ctx context.Context, raw analytics.RawQuery) (model.FilteredSales, error) {
	var out model.FilteredSales
	err := s.run(ctx, "filtered", raw, analytics.DateLenient, func(records []model.SalesRecord, spec analytics.FilterSpec) error {
		out = analytics.FilterWithSummary(records, spec)
		return nil
	})
	return out, err
}

func (s *salesService) QuerySummary(ctx context.Context, raw analytics.RawQuery) (model.SalesSummary, error) {
	var out model.SalesSummary
	err := s.run(ctx, "summary", raw, analytics.DateLenient, func(records []model.SalesRecord, spec analytics.FilterSpec) error {
		out = analytics.Summarize(records, spec)
		return nil
	})
	return out, err
}

func (s *salesService) QueryGrouped(ctx context.Context, raw analytics.RawQuery, groupBy, period string) (analytics.Result, error) {
	strategy, err := analytics.ParseStrategy(groupBy)
	if err != nil {
		metrics.ObserveQuery("grouped", metrics.OutcomeInvalid, 0, 0)
		return analytics.Result{}, err
	}
	grouping := analytics.Grouping{Strategy: strategy, Period: analytics.ParsePeriod(period)}

	var out analytics.Result
	err = s.run(ctx, "grouped", raw, analytics.DateLenient, func(records []model.SalesRecord, spec analytics.FilterSpec) error {
		var err error
		out, err = analytics.Aggregate(records, spec, grouping)
		return err
	})
	return out, err
}

func (s *salesService) Categories() []CategoryResponse {
	return lo.Map(s.categories.Categories(), func(name string, _ int) CategoryResponse {
		products, _ := s.categories.Products(name)
		return CategoryResponse{Name: name, Products: products}
	})
}

// run normalizes raw, fetches a snapshot from the store and hands both to aggregate
func (s *salesService) run(
	ctx context.Context,
	query string,
	raw analytics.RawQuery,
	mode analytics.DateMode,
	aggregate func(records []model.SalesRecord, spec analytics.FilterSpec) error,
) error {
	start := time.Now()

	spec, err := s.normalizer.Normalize(raw, mode)
	if err != nil {
		metrics.ObserveQuery(query, metrics.OutcomeInvalid, time.Since(start), 0)
		return err
	}

	fetchCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	records, err := s.salesRepo.Fetch(fetchCtx, spec)
	if err != nil {
		s.log.ErrorContext(ctx, "sales fetch failed", "query", query, "error", err)
		metrics.ObserveQuery(query, metrics.OutcomeStorageError, time.Since(start), 0)
		return fmt.Errorf("%w: %w", analytics.ErrStorageUnavailable, err)
	}

	err = aggregate(records, spec)
	switch {
	case errors.Is(err, analytics.ErrNoDataInRange):
		metrics.ObserveQuery(query, metrics.OutcomeNoData, time.Since(start), len(records))
	case err != nil:
		metrics.ObserveQuery(query, metrics.OutcomeInvalid, time.Since(start), len(records))
	default:
		metrics.ObserveQuery(query, metrics.OutcomeOK, time.Since(start), len(records))
		s.log.DebugContext(ctx, "query served", "query", query, "records", len(records), "elapsed", time.Since(start))
	}
	return err
}

func datesOnly(raw analytics.RawQuery) analytics.RawQuery {
	return analytics.RawQuery{StartDate: raw.StartDate, EndDate: raw.EndDate}
}
