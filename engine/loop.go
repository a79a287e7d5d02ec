// Package engine drives the particle pipeline: one Loop per mounted surface,
// scheduled frame by frame through the host's repaint primitive.
package engine

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particlefx/particle"
	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
	"github.com/lixenwraith/particlefx/spatial"
	"github.com/lixenwraith/particlefx/status"
)

// State is the loop lifecycle state
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// fpsSmoothing is the weight of the newest frame in the fps average
const fpsSmoothing = 0.1

// Loop owns one particle store and draws it onto one surface, one pass per scheduled frame
type Loop struct {
	mu      sync.Mutex
	state   State
	mounted bool
	cfg     Config
	sched   Scheduler
	handle  Handle

	// epoch invalidates callbacks fired after a pause or stop
	epoch   uint64
	frameFn func(now time.Time)

	surface  *SurfaceManager
	pointer  *PointerTracker
	store    *particle.Store
	renderer *render.Renderer
	rng      physics.Rand
	removers []func()
	err      error

	// Per-frame scratch, allocated once at mount
	projected []projection.Projected
	points    []spatial.Point
	edges     []spatial.Edge
	bounds    particle.Bounds
	ptr       particle.Pointer
	view      projection.View
	seedFn    func(i int, p *particle.Particle)
	stepFn    func(i int, p *particle.Particle)
	seeded    bool
	projectFn func(i int, p *particle.Particle)

	lastFrame time.Time
	fps       float64

	metrics       *status.Registry
	statFrames    *atomic.Int64
	statSkipped   *atomic.Int64
	statEdges     *atomic.Int64
	statParticles *atomic.Int64
	statFPS       *status.AtomicFloat
}

// Start validates cfg and mounts a loop onto the host's surface
// Configuration errors return before anything is scheduled
// A host without a surface yields an Idle loop and no error
func Start(host Host, cfg Config, sched Scheduler) (*Loop, error) {
	if sched == nil {
		return nil, ErrNilScheduler
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("start %q: %w", cfg.Name, err)
	}

	l := &Loop{cfg: cfg, sched: sched, state: StateIdle}
	if host == nil {
		return l, nil
	}
	s, ok := host.Surface()
	if !ok || s == nil {
		return l, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.mount(host, s)
	return l, nil
}

// mount seeds the store from the current surface size, registers listeners and schedules the first frame
func (l *Loop) mount(host Host, s render.Surface) {
	cfg := &l.cfg

	l.rng = cfg.Rand
	if l.rng == nil {
		l.rng = physics.NewRand()
	}
	l.metrics = cfg.Metrics
	if l.metrics == nil {
		l.metrics = status.NewRegistry()
	}
	l.statFrames = l.metrics.Ints.Get("engine.frames")
	l.statSkipped = l.metrics.Ints.Get("engine.skipped")
	l.statEdges = l.metrics.Ints.Get("engine.edges")
	l.statParticles = l.metrics.Ints.Get("engine.particles")
	l.statFPS = l.metrics.Floats.Get("engine.fps")

	l.surface = NewSurfaceManager(s)
	w, h := l.surface.Size()
	bounds := particle.Bounds{Width: float64(w), Height: float64(h), Depth: cfg.Depth}
	l.seedFn = func(i int, p *particle.Particle) {
		l.cfg.Integrator.Seed(p, i, l.store.Bounds(), l.rng)
	}
	// Seeding waits for the first drawable size so nothing spawns on an empty surface
	l.store = particle.NewStore(cfg.Count, bounds, nil)
	if l.surface.Drawable() {
		l.store.ForEach(l.seedFn)
		l.seeded = true
	}
	l.statParticles.Store(int64(l.store.Len()))

	n := l.store.Len()
	l.projected = make([]projection.Projected, n)
	if cfg.Neighbors != nil {
		l.points = make([]spatial.Point, n)
		l.edges = make([]spatial.Edge, 0, n*2)
	}

	l.renderer = render.NewRenderer(cfg.Render)
	for _, ls := range cfg.Layers {
		l.renderer.Register(ls.Layer, ls.Priority)
	}

	l.pointer = NewPointerTracker(cfg.Pointer)
	l.stepFn = func(i int, p *particle.Particle) {
		l.cfg.Integrator.Step(p, 1, l.bounds, l.ptr, l.rng)
	}
	l.projectFn = func(i int, p *particle.Particle) {
		pr := l.cfg.Projector.Project(*p, l.view)
		l.projected[i] = pr
		if l.points != nil {
			l.points[i] = spatial.Point{X: pr.X, Y: pr.Y, Valid: pr.Visible && pr.Finite()}
		}
	}

	surface, pointer := l.surface, l.pointer
	l.removers = append(l.removers,
		host.OnResize(func(sz Size) { surface.Notify(sz.Width, sz.Height) }),
		host.OnPointer(func(p Point) { pointer.Notify(p.X, p.Y) }),
	)

	l.mounted = true
	l.state = StateRunning
	l.arm()
	log.Printf("engine: %s mounted, %d particles on %dx%d", cfg.Name, n, w, h)
}

// arm starts a new callback epoch and schedules the next frame
func (l *Loop) arm() {
	l.epoch++
	epoch := l.epoch
	l.frameFn = func(now time.Time) { l.frame(now, epoch) }
	l.lastFrame = time.Time{}
	l.schedule()
}

func (l *Loop) schedule() {
	l.handle = l.sched.Request(l.frameFn)
}

func (l *Loop) cancel() {
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
	l.epoch++
}

func (l *Loop) frame(now time.Time, epoch uint64) {
	err := l.tick(now, epoch)
	if err != nil && l.cfg.OnError != nil {
		l.cfg.OnError(err)
	}
}

// tick runs one integrate, project, neighbor, render, present pass and reschedules
func (l *Loop) tick(now time.Time, epoch uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if epoch != l.epoch || l.state != StateRunning {
		return nil
	}
	l.handle = 0

	l.surface.Sync(l.store)
	if !l.surface.Drawable() {
		l.schedule()
		return nil
	}
	if !l.seeded {
		l.store.ForEach(l.seedFn)
		l.seeded = true
	}
	w, h := l.surface.Size()

	l.ptr = l.pointer.Sample(float64(w), float64(h))
	l.bounds = l.store.Bounds()
	l.store.ForEach(l.stepFn)

	l.view = projection.View{Width: float64(w), Height: float64(h), MaxDepth: l.cfg.Depth, Pointer: l.ptr}
	l.store.ForEach(l.projectFn)

	edges := l.edges[:0]
	if l.cfg.Neighbors != nil {
		edges = l.cfg.Neighbors.Edges(l.points, l.cfg.NeighborThreshold, edges)
		l.edges = edges
	}

	surface := l.surface.Surface()
	st := l.renderer.Render(surface, l.store, l.projected, edges)
	if err := surface.Present(); err != nil {
		l.err = fmt.Errorf("present %q: %w", l.cfg.Name, err)
		log.Printf("engine: %s stopped: %v", l.cfg.Name, err)
		l.unmount()
		return l.err
	}

	l.statFrames.Add(1)
	l.statSkipped.Add(int64(st.Malformed))
	l.statEdges.Store(int64(st.Edges))
	l.updateFPS(now)

	l.schedule()
	return nil
}

func (l *Loop) updateFPS(now time.Time) {
	if !l.lastFrame.IsZero() {
		if dt := now.Sub(l.lastFrame).Seconds(); dt > 0 {
			inst := 1 / dt
			if l.fps == 0 {
				l.fps = inst
			} else {
				l.fps += (inst - l.fps) * fpsSmoothing
			}
			l.statFPS.Set(l.fps)
		}
	}
	l.lastFrame = now
}

// unmount cancels the pending frame and removes every listener
func (l *Loop) unmount() {
	l.cancel()
	for _, remove := range l.removers {
		remove()
	}
	l.removers = nil
	l.mounted = false
	l.state = StateStopped
}

// Stop unmounts the loop; safe to call repeatedly and from any state
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mounted {
		return
	}
	l.unmount()
	log.Printf("engine: %s stopped", l.cfg.Name)
}

// Pause stops scheduling frames but keeps the loop mounted
func (l *Loop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateRunning {
		return
	}
	l.cancel()
	l.state = StateStopped
}

// Resume restarts a paused loop; a stopped or never-mounted loop stays as it is
func (l *Loop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mounted || l.state != StateStopped {
		return
	}
	l.state = StateRunning
	l.arm()
}

// State returns the lifecycle state
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error that stopped the loop, if any
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Count returns the live particle count, zero when never mounted
func (l *Loop) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return 0
	}
	return l.store.Len()
}

// Particle returns a copy of particle i, the zero particle when never mounted
func (l *Loop) Particle(i int) particle.Particle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return particle.Particle{}
	}
	return l.store.Get(i)
}

// Size returns the applied surface size
func (l *Loop) Size() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.surface == nil {
		return 0, 0
	}
	return l.surface.Size()
}

// Metrics returns the registry the loop reports to, nil when never mounted
func (l *Loop) Metrics() *status.Registry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.metrics
}

// Name returns the configured variant name
func (l *Loop) Name() string {
	return l.cfg.Name
}
