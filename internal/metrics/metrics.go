// Package metrics exposes Prometheus instruments for persistence and the
// current aggregate totals. A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Recorder struct {
	registry *prometheus.Registry

	Saves        *prometheus.CounterVec
	SaveDuration prometheus.Histogram
	Loads        *prometheus.CounterVec
	Actions      *prometheus.CounterVec

	TotalAssets      prometheus.Gauge
	TotalLiabilities prometheus.Gauge
	NetWorth         prometheus.Gauge
	Accounts         prometheus.Gauge
	Snapshots        prometheus.Gauge
}

// NewRecorder registers all instruments on a private registry so multiple
// recorders can coexist in one process.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		Saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "networth_state_saves_total",
				Help: "Total number of full-state saves by result",
			},
			[]string{"result"},
		),

		SaveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "networth_state_save_duration_seconds",
				Help:    "Duration of full-state saves in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
		),

		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "networth_state_loads_total",
				Help: "Total number of state loads by result",
			},
			[]string{"result"},
		),

		Actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "networth_actions_total",
				Help: "Total number of state actions applied by action name",
			},
			[]string{"action"},
		),

		TotalAssets: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "networth_total_assets",
			Help: "Sum of all asset account values",
		}),
		TotalLiabilities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "networth_total_liabilities",
			Help: "Sum of all liability account values",
		}),
		NetWorth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "networth_net_worth",
			Help: "Total assets minus total liabilities",
		}),
		Accounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "networth_accounts",
			Help: "Number of tracked accounts",
		}),
		Snapshots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "networth_snapshots",
			Help: "Number of stored snapshots",
		}),
	}

	r.registry.MustRegister(
		r.Saves, r.SaveDuration, r.Loads, r.Actions,
		r.TotalAssets, r.TotalLiabilities, r.NetWorth, r.Accounts, r.Snapshots,
	)
	return r
}

func (r *Recorder) ObserveSave(d time.Duration, err error) {
	if r == nil {
		return
	}
	r.SaveDuration.Observe(d.Seconds())
	r.Saves.WithLabelValues(result(err)).Inc()
}

func (r *Recorder) ObserveLoad(err error) {
	if r == nil {
		return
	}
	r.Loads.WithLabelValues(result(err)).Inc()
}

func (r *Recorder) ObserveAction(action string) {
	if r == nil {
		return
	}
	r.Actions.WithLabelValues(action).Inc()
}

// ObserveState publishes the current totals and collection sizes.
func (r *Recorder) ObserveState(totals models.Totals, accounts, snapshots int) {
	if r == nil {
		return
	}
	r.TotalAssets.Set(totals.TotalAssets.InexactFloat64())
	r.TotalLiabilities.Set(totals.TotalLiabilities.InexactFloat64())
	r.NetWorth.Set(totals.NetWorth.InexactFloat64())
	r.Accounts.Set(float64(accounts))
	r.Snapshots.Set(float64(snapshots))
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
