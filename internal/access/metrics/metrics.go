package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Favorite kinds used as label values.
const (
	KindPerson = "person"
	KindPlanet = "planet"
)

// Metrics provides observability for catalog and favorites operations.
type Metrics struct {
	PeopleCreated    prometheus.Counter
	PlanetsCreated   prometheus.Counter
	FavoritesAdded   *prometheus.CounterVec
	FavoritesRemoved *prometheus.CounterVec

	// Store round-trip latency by operation name
	StoreLatency *prometheus.HistogramVec
}

// New registers on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PeopleCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "holocron_people_created_total",
			Help: "Total number of people created",
		}),
		PlanetsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "holocron_planets_created_total",
			Help: "Total number of planets created",
		}),
		FavoritesAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "holocron_favorites_added_total",
			Help: "Total favorite links added by kind",
		}, []string{"kind"}),
		FavoritesRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "holocron_favorites_removed_total",
			Help: "Total favorite links removed by kind",
		}, []string{"kind"}),
		StoreLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "holocron_store_duration_seconds",
			Help:    "Duration of store operations by operation name",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementPeopleCreated() {
	if m != nil {
		m.PeopleCreated.Inc()
	}
}

func (m *Metrics) IncrementPlanetsCreated() {
	if m != nil {
		m.PlanetsCreated.Inc()
	}
}

func (m *Metrics) IncrementFavoriteAdded(kind string) {
	if m != nil {
		m.FavoritesAdded.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementFavoriteRemoved(kind string) {
	if m != nil {
		m.FavoritesRemoved.WithLabelValues(kind).Inc()
	}
}

// ObserveStore records the time since start for operation.
func (m *Metrics) ObserveStore(operation string, start time.Time) {
	if m != nil {
		m.StoreLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
