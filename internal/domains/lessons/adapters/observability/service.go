package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	lessondomain "github.com/Apurer/afterschool-api/internal/domains/lessons/domain"
	lessonports "github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
)

const tracerName = "github.com/Apurer/afterschool-api/internal/domains/lessons/adapters/observability/service"

// Service decorates the lessons service with tracing, logging, and metrics.
type Service struct {
	inner   lessonports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core lessons service.
func New(inner lessonports.Service, opts ...Option) lessonports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) SeedIfEmpty(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "LessonService.SeedIfEmpty")
	defer span.End()

	inserted, err := s.inner.SeedIfEmpty(ctx)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to seed lessons")
	}
	span.SetAttributes(attribute.Int("lessons.seeded", inserted))
	s.metrics.recordSeeded(ctx, inserted)
	if inserted > 0 {
		s.logInfo(ctx, "sample lessons inserted", slog.Int("lessons.seeded", inserted))
	} else {
		s.logInfo(ctx, "lessons already present, seeding skipped")
	}
	return inserted, nil
}

func (s *Service) ListLessons(ctx context.Context) ([]*lessondomain.Lesson, error) {
	ctx, span := s.tracer.Start(ctx, "LessonService.ListLessons")
	defer span.End()

	result, err := s.inner.ListLessons(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list lessons")
	}
	span.SetAttributes(attribute.Int("lessons.count", len(result)))
	return result, nil
}

func (s *Service) SearchLessons(ctx context.Context, query string) ([]*lessondomain.Lesson, error) {
	ctx, span := s.tracer.Start(ctx, "LessonService.SearchLessons", trace.WithAttributes(attribute.String("lessons.query", query)))
	defer span.End()

	result, err := s.inner.SearchLessons(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search lessons", slog.String("lessons.query", query))
	}
	span.SetAttributes(attribute.Int("lessons.count", len(result)))
	s.metrics.recordSearch(ctx, len(result))
	return result, nil
}

func (s *Service) UpdateLessonSpaces(ctx context.Context, id string, spaces int) error {
	ctx, span := s.tracer.Start(ctx, "LessonService.UpdateLessonSpaces",
		trace.WithAttributes(attribute.String("lesson.id", id), attribute.Int("lesson.spaces", spaces)))
	defer span.End()

	s.logInfo(ctx, "updating lesson spaces", slog.String("lesson.id", id), slog.Int("lesson.spaces", spaces))
	if err := s.inner.UpdateLessonSpaces(ctx, id, spaces); err != nil {
		return s.handleError(ctx, span, err, "failed to update lesson spaces", slog.String("lesson.id", id))
	}
	s.metrics.recordSpacesUpdated(ctx)
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	searches      metric.Int64Counter
	searchResults metric.Int64Histogram
	spacesUpdated metric.Int64Counter
	seeded        metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	searches, _ := m.Int64Counter("lessons.service.searches", metric.WithDescription("Number of lesson searches"))
	searchResults, _ := m.Int64Histogram("lessons.service.search_results", metric.WithDescription("Lessons returned per search"))
	spacesUpdated, _ := m.Int64Counter("lessons.service.spaces_updated", metric.WithDescription("Number of lesson capacity overwrites"))
	seeded, _ := m.Int64Counter("lessons.service.seeded", metric.WithDescription("Number of lessons inserted by startup seeding"))
	return serviceMetrics{searches: searches, searchResults: searchResults, spacesUpdated: spacesUpdated, seeded: seeded}
}

func (m serviceMetrics) recordSearch(ctx context.Context, results int) {
	if m.searches != nil {
		m.searches.Add(ctx, 1)
	}
	if m.searchResults != nil {
		m.searchResults.Record(ctx, int64(results))
	}
}

func (m serviceMetrics) recordSpacesUpdated(ctx context.Context) {
	if m.spacesUpdated != nil {
		m.spacesUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordSeeded(ctx context.Context, n int) {
	if m.seeded != nil && n > 0 {
		m.seeded.Add(ctx, int64(n))
	}
}

var _ lessonports.Service = (*Service)(nil)
