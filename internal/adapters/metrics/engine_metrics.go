package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sporelab/fungal-evolution/internal/application/engine"
	"github.com/sporelab/fungal-evolution/internal/domain/game"
)

const (
	// Namespace for all metrics
	namespace = "fungal"
	// Subsystem for engine metrics
	subsystem = "engine"
)

// EngineMetricsCollector exposes engine snapshot gauges to Prometheus. It
// refreshes on a fixed cadence from the current immutable state.
type EngineMetricsCollector struct {
	engine   *engine.Engine
	interval time.Duration

	resourceTotal  *prometheus.GaugeVec
	clickLevel     prometheus.Gauge
	totalClicks    prometheus.Gauge
	passiveRate    prometheus.Gauge
	activeMissions *prometheus.GaugeVec
	achievements   prometheus.Gauge
	unlockedModes  prometheus.Gauge
}

// NewEngineMetricsCollector creates a collector reading from the given engine
func NewEngineMetricsCollector(e *engine.Engine, interval time.Duration) *EngineMetricsCollector {
	return &EngineMetricsCollector{
		engine:   e,
		interval: interval,

		resourceTotal: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "resource_total",
				Help:      "Current resource balance by kind",
			},
			[]string{"kind"},
		),
		clickLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "click_level",
			Help:      "Current manual click level",
		}),
		totalClicks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "clicks_total",
			Help:      "Lifetime manual click count",
		}),
		passiveRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "passive_rate",
			Help:      "Spores produced per second by upgrades",
		}),
		activeMissions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "missions",
				Help:      "Mission instances by status",
			},
			[]string{"status"},
		),
		achievements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "achievements_unlocked",
			Help:      "Number of unlocked achievements",
		}),
		unlockedModes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "modes_unlocked",
			Help:      "Number of unlocked gameplay modes",
		}),
	}
}

// Register registers all metrics with the given Prometheus registry
func (c *EngineMetricsCollector) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		c.resourceTotal,
		c.clickLevel,
		c.totalClicks,
		c.passiveRate,
		c.activeMissions,
		c.achievements,
		c.unlockedModes,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// Run refreshes the gauges until the context is cancelled
func (c *EngineMetricsCollector) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.collect()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.collect()
		}
	}
}

func (c *EngineMetricsCollector) collect() {
	state := c.engine.CurrentState()
	stats := c.engine.Stats()

	for kind, amount := range state.Resources {
		c.resourceTotal.WithLabelValues(string(kind)).Set(amount)
	}
	c.clickLevel.Set(float64(state.ClickLevel))
	c.totalClicks.Set(float64(state.Stats.TotalClicks))
	c.passiveRate.Set(stats.PassiveRate)

	active, completed := 0, 0
	for _, m := range state.ActiveMissions {
		if m.Status == game.MissionCompleted {
			completed++
		} else {
			active++
		}
	}
	c.activeMissions.WithLabelValues("active").Set(float64(active))
	c.activeMissions.WithLabelValues("completed").Set(float64(completed))

	c.achievements.Set(float64(len(state.Achievements)))
	c.unlockedModes.Set(float64(len(state.UnlockedModes)))
}

// Handler returns an HTTP handler serving the registry in exposition format
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
