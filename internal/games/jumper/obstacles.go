package jumper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Kind distinguishes obstacles that sit on the ground from drones in the air.
type Kind int

const (
	KindGround Kind = iota
	KindFlying
)

// Obstacle is a box the runner must avoid. Coordinates are world units.
type Obstacle struct {
	Kind Kind
	X, Y float64
	W, H float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       *config.JumperConfig
	timer     time.Duration // simulated time since the last spawn
	next      time.Duration // delay before the next spawn
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg *config.JumperConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
	om.Reset()
	return om
}

// Reset clears all obstacles and draws a fresh spawn delay.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
	om.timer = 0
	om.next = om.drawDelay()
}

func (om *ObstacleManager) drawDelay() time.Duration {
	ms := om.randInt(om.cfg.Obstacles.SpawnMinMS, om.cfg.Obstacles.SpawnMaxMS)
	return time.Duration(ms) * time.Millisecond
}

// randInt returns an integer in [lo, hi].
func (om *ObstacleManager) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + om.rng.Intn(hi-lo+1)
}

func (om *ObstacleManager) randSpan(lo, hi float64) float64 {
	return float64(om.randInt(int(lo), int(hi)))
}

// Update spawns when due, then moves obstacles left by speed*f and culls
// those that left the world.
func (om *ObstacleManager) Update(dt time.Duration, f, speed float64) {
	om.timer += dt
	if om.timer > om.next {
		om.timer = 0
		om.next = om.drawDelay()
		om.Spawn(speed)
	}

	for i := range om.obstacles {
		om.obstacles[i].X -= speed * f
	}

	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.X+o.W > -om.cfg.Obstacles.CullMargin {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept
}

// Spawn appends a ground or flying obstacle past the right edge.
// Above PairMinSpeed a copy may follow at a random gap.
func (om *ObstacleManager) Spawn(speed float64) {
	oc := om.cfg.Obstacles
	x := om.cfg.World.Width + oc.SpawnOffset
	ground := om.cfg.World.Height - om.cfg.Player.GroundOffset

	var o Obstacle
	if om.rng.Float64() < oc.GroundChance {
		h := om.randSpan(oc.Ground.MinH, oc.Ground.MaxH)
		w := om.randSpan(oc.Ground.MinW, oc.Ground.MaxW)
		o = Obstacle{Kind: KindGround, X: x, Y: ground - h, W: w, H: h}
	} else {
		w := om.randSpan(oc.Flying.MinW, oc.Flying.MaxW)
		h := om.randSpan(oc.Flying.MinH, oc.Flying.MaxH)
		jitter := om.randSpan(-oc.FlyingJitter, oc.FlyingJitter)
		y := om.cfg.World.Height - oc.FlyingLift + jitter
		o = Obstacle{Kind: KindFlying, X: x, Y: y, W: w, H: h}
	}
	om.obstacles = append(om.obstacles, o)

	if speed > oc.PairMinSpeed && om.rng.Float64() < oc.PairChance {
		pair := o
		pair.X += om.randSpan(oc.PairGapMin, oc.PairGapMax)
		om.obstacles = append(om.obstacles, pair)
	}
}

// Add places an obstacle directly.
func (om *ObstacleManager) Add(o Obstacle) {
	om.obstacles = append(om.obstacles, o)
}

// Obstacles returns the current obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// CheckCollision tests if the given rectangle overlaps any obstacle.
func (om *ObstacleManager) CheckCollision(r core.RectF) bool {
	for _, o := range om.obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
