package company

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"normalro/internal/company/metrics"
	dErrors "normalro/pkg/domain-errors"
	"normalro/pkg/platform/circuit"
	"normalro/pkg/platform/sentinel"
	"normalro/pkg/requestcontext"
)

const defaultCallTimeout = 10 * time.Second

// Provider fetches a company record from the upstream registry.
type Provider interface {
	Lookup(ctx context.Context, cui, date string) (*Company, error)
}

// Cache stores successful lookups. Get returns sentinel.ErrNotFound on a miss.
type Cache interface {
	Get(ctx context.Context, key LookupKey) (*Company, error)
	Set(ctx context.Context, key LookupKey, record *Company) error
}

// Service resolves fiscal codes through the cache and the upstream provider.
// Concurrent lookups for the same key share one upstream call, and a circuit
// breaker stops calling ANAF while it keeps failing.
type Service struct {
	provider    Provider
	cache       Cache
	breaker     *circuit.Breaker
	group       singleflight.Group
	logger      *slog.Logger
	metrics     *metrics.Metrics
	callTimeout time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCache enables caching of found companies.
func WithCache(cache Cache) ServiceOption {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithMetrics attaches lookup metrics.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCallTimeout bounds a shared upstream call.
func WithCallTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

// NewService builds a lookup service. A nil breaker gets the default one.
func NewService(provider Provider, breaker *circuit.Breaker, logger *slog.Logger, opts ...ServiceOption) *Service {
	if breaker == nil {
		breaker = circuit.New("anaf")
	}
	s := &Service{
		provider:    provider,
		breaker:     breaker,
		logger:      logger,
		callTimeout: defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup returns the company registered under cui on date. cui must already
// be digits only and date must use DateLayout.
func (s *Service) Lookup(ctx context.Context, cui, date string) (*Company, error) {
	key := LookupKey{CUI: cui, Date: date}

	if cached, ok := s.fromCache(ctx, key); ok {
		s.metrics.IncrementLookup("cache_hit")
		return cached, nil
	}

	if !s.breaker.Allow() {
		s.metrics.IncrementLookup("rejected")
		return nil, dErrors.New(dErrors.CodeANAFUnavailable, "ANAF is temporarily unavailable, try again later")
	}

	ch := s.group.DoChan(key.String(), func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.callTimeout)
		defer cancel()
		return s.fetch(callCtx, key)
	})

	select {
	case <-ctx.Done():
		s.metrics.IncrementLookup("error")
		return nil, dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "company lookup cancelled")
	case res := <-ch:
		if res.Err != nil {
			if GetCategory(res.Err) == ErrorNotFound {
				s.metrics.IncrementLookup("not_found")
			} else {
				s.metrics.IncrementLookup("error")
			}
			return nil, toDomainError(res.Err)
		}
		s.metrics.IncrementLookup("found")
		record := *res.Val.(*Company)
		return &record, nil
	}
}

func (s *Service) fromCache(ctx context.Context, key LookupKey) (*Company, bool) {
	if s.cache == nil {
		return nil, false
	}
	start := time.Now()
	record, err := s.cache.Get(ctx, key)
	s.metrics.ObserveCacheRead(time.Since(start))
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "company cache read failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		}
		return nil, false
	}
	return record, true
}

func (s *Service) fetch(ctx context.Context, key LookupKey) (*Company, error) {
	start := time.Now()
	record, err := s.provider.Lookup(ctx, key.CUI, key.Date)
	category := "ok"
	if err != nil {
		category = string(GetCategory(err))
	}
	s.metrics.ObserveANAF(category, time.Since(start))

	if err != nil && countsAsFailure(err) {
		_, change := s.breaker.RecordFailure()
		if change.Opened {
			s.metrics.SetBreakerOpen(true)
			s.logger.ErrorContext(ctx, "ANAF circuit opened",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		} else {
			s.logger.WarnContext(ctx, "ANAF lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"category", category,
				"error", err.Error(),
			)
		}
		return nil, err
	}

	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.metrics.SetBreakerOpen(false)
		s.logger.InfoContext(ctx, "ANAF circuit closed",
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, record); err != nil {
			s.logger.WarnContext(ctx, "company cache write failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		}
	}
	return record, nil
}
