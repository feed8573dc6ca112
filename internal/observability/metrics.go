package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-path-defense/internal/event"
)

// SessionCollector bundles Prometheus metrics for one simulation session.
// It listens on the event dispatcher for counters; gauges are pushed by the
// driver once per frame through SetSession.
type SessionCollector struct {
	gatherer prometheus.Gatherer

	UnitsSpawned      *prometheus.CounterVec
	UnitsDestroyed    *prometheus.CounterVec
	UnitsLeaked       prometheus.Counter
	ProjectilesFired  prometheus.Counter
	ProjectileHits    prometheus.Counter
	DefendersPlaced   *prometheus.CounterVec
	PlacementRejected prometheus.Counter
	WavesCleared      prometheus.Counter
	Outcomes          *prometheus.CounterVec

	Lives       prometheus.Gauge
	Score       prometheus.Gauge
	Wave        prometheus.Gauge
	LiveUnits   prometheus.Gauge
	Projectiles prometheus.Gauge

	TickDuration prometheus.Histogram
}

// NewSessionCollector registers session metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewSessionCollector(reg prometheus.Registerer) (*SessionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &SessionCollector{gatherer: gatherer}
	var err error

	if c.UnitsSpawned, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "td_units_spawned_total",
		Help: "Units released onto the path, labeled by variant.",
	}, []string{"variant"}), "td_units_spawned_total"); err != nil {
		return nil, err
	}
	if c.UnitsDestroyed, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "td_units_destroyed_total",
		Help: "Units destroyed by projectiles, labeled by variant.",
	}, []string{"variant"}), "td_units_destroyed_total"); err != nil {
		return nil, err
	}
	if c.UnitsLeaked, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "td_units_leaked_total",
		Help: "Units that reached the end of the path.",
	}), "td_units_leaked_total"); err != nil {
		return nil, err
	}
	if c.ProjectilesFired, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "td_projectiles_fired_total",
		Help: "Projectiles fired by defenders.",
	}), "td_projectiles_fired_total"); err != nil {
		return nil, err
	}
	if c.ProjectileHits, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "td_projectile_hits_total",
		Help: "Projectiles that reached their target.",
	}), "td_projectile_hits_total"); err != nil {
		return nil, err
	}
	if c.DefendersPlaced, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "td_defenders_placed_total",
		Help: "Defenders placed, labeled by archetype.",
	}, []string{"archetype"}), "td_defenders_placed_total"); err != nil {
		return nil, err
	}
	if c.PlacementRejected, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "td_placements_rejected_total",
		Help: "Placement requests refused by the validator.",
	}), "td_placements_rejected_total"); err != nil {
		return nil, err
	}
	if c.WavesCleared, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "td_waves_cleared_total",
		Help: "Waves fully spawned and cleared from the field.",
	}), "td_waves_cleared_total"); err != nil {
		return nil, err
	}
	if c.Outcomes, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "td_sessions_finished_total",
		Help: "Finished sessions, labeled by outcome.",
	}, []string{"outcome"}), "td_sessions_finished_total"); err != nil {
		return nil, err
	}

	if c.Lives, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "td_lives",
		Help: "Lives left in the current session.",
	}), "td_lives"); err != nil {
		return nil, err
	}
	if c.Score, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "td_score",
		Help: "Score of the current session.",
	}), "td_score"); err != nil {
		return nil, err
	}
	if c.Wave, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "td_wave",
		Help: "Current wave number.",
	}), "td_wave"); err != nil {
		return nil, err
	}
	if c.LiveUnits, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "td_live_units",
		Help: "Units currently on the path.",
	}), "td_live_units"); err != nil {
		return nil, err
	}
	if c.Projectiles, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "td_projectiles_in_flight",
		Help: "Projectiles currently in flight.",
	}), "td_projectiles_in_flight"); err != nil {
		return nil, err
	}

	if c.TickDuration, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "td_tick_duration_seconds",
		Help:    "Wall time spent advancing one simulation tick.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}), "td_tick_duration_seconds"); err != nil {
		return nil, err
	}

	return c, nil
}

// Subscribe attaches the collector to every event it counts.
func (c *SessionCollector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.UnitSpawned, event.UnitDestroyed, event.UnitLeaked,
		event.ProjectileFired, event.ProjectileHit,
		event.DefenderPlaced, event.PlacementRejected,
		event.WaveEnded, event.GameWon, event.GameLost)
}

// OnEvent implements event.Listener.
func (c *SessionCollector) OnEvent(e event.Event) {
	if c == nil {
		return
	}
	switch e.Type {
	case event.UnitSpawned:
		if data, ok := e.Data.(event.UnitData); ok {
			c.UnitsSpawned.WithLabelValues(data.Variant.String()).Inc()
		}
	case event.UnitDestroyed:
		if data, ok := e.Data.(event.UnitData); ok {
			c.UnitsDestroyed.WithLabelValues(data.Variant.String()).Inc()
		}
	case event.UnitLeaked:
		c.UnitsLeaked.Inc()
	case event.ProjectileFired:
		c.ProjectilesFired.Inc()
	case event.ProjectileHit:
		c.ProjectileHits.Inc()
	case event.DefenderPlaced:
		if data, ok := e.Data.(event.DefenderData); ok {
			c.DefendersPlaced.WithLabelValues(data.Archetype.String()).Inc()
		}
	case event.PlacementRejected:
		c.PlacementRejected.Inc()
	case event.WaveEnded:
		c.WavesCleared.Inc()
	case event.GameWon:
		c.Outcomes.WithLabelValues("won").Inc()
	case event.GameLost:
		c.Outcomes.WithLabelValues("lost").Inc()
	}
}

// SetSession updates the per-frame gauges.
func (c *SessionCollector) SetSession(lives, score, wave, units, projectiles int) {
	if c == nil {
		return
	}
	c.Lives.Set(float64(lives))
	c.Score.Set(float64(score))
	c.Wave.Set(float64(wave))
	c.LiveUnits.Set(float64(units))
	c.Projectiles.Set(float64(projectiles))
}

// ObserveTick runs advance and records how long it took.
func (c *SessionCollector) ObserveTick(advance func()) {
	start := time.Now()
	advance()
	if c == nil || c.TickDuration == nil {
		return
	}
	c.TickDuration.Observe(time.Since(start).Seconds())
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *SessionCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SessionCollector) Handler() http.Handler {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
