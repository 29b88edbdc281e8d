package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges shared by the
// ETL pipeline and the dashboard API.
type Metrics struct {
	RecordsRead          prometheus.Counter
	RecordsSkipped       prometheus.Counter
	MeasurementsProduced prometheus.Counter
	PipelineRunning      prometheus.Gauge
	PhaseDuration        *prometheus.HistogramVec // label: phase={extract,flatten,classify,normalize,load}

	// Land/sea classification metrics.
	LandSeaLookups *prometheus.CounterVec // labels: outcome={oceanic,terrestrial,unknown}
	LandSeaCache   *prometheus.CounterVec // labels: result={hit,miss}

	// Dashboard query metrics.
	TableRows     prometheus.Gauge
	QueryCache    *prometheus.CounterVec   // labels: result={hit,miss}
	QueryDuration *prometheus.HistogramVec // label: endpoint
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pfas",
			Name:      "records_read_total",
			Help:      "Total source records read from the input artifact.",
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pfas",
			Name:      "records_skipped_total",
			Help:      "Source records excluded for carrying an empty pfas_values array.",
		}),
		MeasurementsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pfas",
			Name:      "measurements_produced_total",
			Help:      "Flattened measurement rows written to the output artifacts.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pfas",
			Name:      "pipeline_running",
			Help:      "1 while the batch pipeline is active, 0 otherwise.",
		}),
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pfas",
			Name:      "phase_duration_seconds",
			Help:      "Duration of each pipeline phase.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"phase"}),
		LandSeaLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pfas",
			Name:      "landsea_lookups_total",
			Help:      "Land/sea classifications by outcome.",
		}, []string{"outcome"}),
		LandSeaCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pfas",
			Name:      "landsea_cache_total",
			Help:      "Land/sea lookup cache results.",
		}, []string{"result"}),
		TableRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pfas",
			Name:      "table_rows",
			Help:      "Rows in the loaded measurement table.",
		}),
		QueryCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pfas",
			Name:      "query_cache_total",
			Help:      "Dashboard aggregate cache results.",
		}, []string{"result"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pfas",
			Name:      "query_duration_seconds",
			Help:      "Dashboard aggregate query duration by endpoint.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"endpoint"}),
	}

	prometheus.MustRegister(
		m.RecordsRead,
		m.RecordsSkipped,
		m.MeasurementsProduced,
		m.PipelineRunning,
		m.PhaseDuration,
		m.LandSeaLookups,
		m.LandSeaCache,
		m.TableRows,
		m.QueryCache,
		m.QueryDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsRead:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pfas", Name: "records_read_total"}),
		RecordsSkipped:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pfas", Name: "records_skipped_total"}),
		MeasurementsProduced: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "pfas", Name: "measurements_produced_total"}),
		PipelineRunning:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "pfas", Name: "pipeline_running"}),
		PhaseDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "pfas", Name: "phase_duration_seconds"}, []string{"phase"}),
		LandSeaLookups:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pfas", Name: "landsea_lookups_total"}, []string{"outcome"}),
		LandSeaCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pfas", Name: "landsea_cache_total"}, []string{"result"}),
		TableRows:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "pfas", Name: "table_rows"}),
		QueryCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "pfas", Name: "query_cache_total"}, []string{"result"}),
		QueryDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "pfas", Name: "query_duration_seconds"}, []string{"endpoint"}),
	}
}
