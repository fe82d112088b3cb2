package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "warsoracle/metrics"

// AnalysisMetric summarizes one analysis call.
type AnalysisMetric struct {
	Side       int
	Goroutines int
	StartTime  time.Time
	Duration   time.Duration
	Searches   int // reachability searches run
	Cells      int // reachable cells over all searches
	Threats    int
	Captures   int
}

type Collector interface {
	Start(side, goroutines int)
	AddSearch(cells int)
	SetThreats(n int)
	SetCaptures(n int)
	Complete() AnalysisMetric
}

type collector struct {
	side       int
	goroutines int
	startTime  time.Time
	searches   atomic.Int32
	cells      atomic.Int64
	threats    atomic.Int32
	captures   atomic.Int32

	searchCounter metric.Int64Counter
	cellCounter   metric.Int64Counter
	duration      metric.Float64Histogram
}

// NewCollector returns a collector that also reports to the global OpenTelemetry meter.
// Without an installed meter provider the instruments are no-ops.
func NewCollector() Collector {
	m := otel.Meter(instrumentationName)
	c := &collector{}

	var err error
	c.searchCounter, err = m.Int64Counter(
		"analysis.searches",
		metric.WithDescription("Reachability searches run"),
	)
	if err != nil {
		log.Warn().Err(err).Msg("creating search counter, falling back to no-op")
		c.searchCounter = noop.Int64Counter{}
	}
	c.cellCounter, err = m.Int64Counter(
		"analysis.cells",
		metric.WithDescription("Cells found reachable"),
	)
	if err != nil {
		log.Warn().Err(err).Msg("creating cell counter, falling back to no-op")
		c.cellCounter = noop.Int64Counter{}
	}
	c.duration, err = m.Float64Histogram(
		"analysis.duration",
		metric.WithDescription("Wall time of one analysis call"),
		metric.WithUnit("s"),
	)
	if err != nil {
		log.Warn().Err(err).Msg("creating duration histogram, falling back to no-op")
		c.duration = noop.Float64Histogram{}
	}
	return c
}

func (c *collector) Start(side, goroutines int) {
	c.side = side
	c.goroutines = goroutines
	c.startTime = time.Now()
	c.searches.Store(0)
	c.cells.Store(0)
	c.threats.Store(0)
	c.captures.Store(0)
}

func (c *collector) AddSearch(cells int) {
	c.searches.Add(1)
	c.cells.Add(int64(cells))
	attrs := metric.WithAttributes(attribute.Int("side", c.side))
	c.searchCounter.Add(context.Background(), 1, attrs)
	c.cellCounter.Add(context.Background(), int64(cells), attrs)
}

func (c *collector) SetThreats(n int) {
	c.threats.Store(int32(n))
}

func (c *collector) SetCaptures(n int) {
	c.captures.Store(int32(n))
}

func (c *collector) Complete() AnalysisMetric {
	elapsed := time.Since(c.startTime)
	c.duration.Record(context.Background(), elapsed.Seconds(),
		metric.WithAttributes(attribute.Int("side", c.side)))
	return AnalysisMetric{
		Side:       c.side,
		Goroutines: c.goroutines,
		StartTime:  c.startTime,
		Duration:   elapsed,
		Searches:   int(c.searches.Load()),
		Cells:      int(c.cells.Load()),
		Threats:    int(c.threats.Load()),
		Captures:   int(c.captures.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(side, goroutines int) {}
func (m *dummyCollector) AddSearch(cells int)        {}
func (m *dummyCollector) SetThreats(n int)           {}
func (m *dummyCollector) SetCaptures(n int)          {}
func (m *dummyCollector) Complete() AnalysisMetric   { return AnalysisMetric{} }
