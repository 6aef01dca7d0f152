package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/run-for-love/internal/config"
	"github.com/vovakirdan/run-for-love/internal/core"
)

// Obstacle is a ground hazard the runner must jump over.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Variant int // Visual variant only
}

// Rect returns the collision rectangle.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Collectible is a floating pickup. X, Y is the top-left of its bounding box
// of size 2R x 2R.
type Collectible struct {
	X, Y float64
	R    float64
}

// Rect returns the bounding box used for pickup tests.
func (c Collectible) Rect() core.RectF {
	return core.NewRectF(c.X, c.Y, 2*c.R, 2*c.R)
}

// Spawner owns obstacles and collectibles: it creates them with a hybrid
// deterministic/random cadence, scrolls them and drops them once they leave
// the world on the left.
type Spawner struct {
	obstacles    []Obstacle
	collectibles []Collectible
	rng          *rand.Rand
	cfg          *config.RunnerConfig

	lastObstacle       time.Duration
	lastCollectible    time.Duration
	spawnedObstacle    bool
	spawnedCollectible bool
}

// NewSpawner creates a spawner whose random draws are reproducible from seed.
func NewSpawner(seed int64, cfg *config.RunnerConfig) *Spawner {
	return &Spawner{
		obstacles:    make([]Obstacle, 0, 8),
		collectibles: make([]Collectible, 0, 8),
		rng:          rand.New(rand.NewSource(seed)),
		cfg:          cfg,
	}
}

// Scroll moves every entity left by dx and removes the ones fully past the
// left edge.
func (s *Spawner) Scroll(dx float64) {
	obstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= dx
		if o.X+o.W >= 0 {
			obstacles = append(obstacles, o)
		}
	}
	s.obstacles = obstacles

	collectibles := s.collectibles[:0]
	for _, c := range s.collectibles {
		c.X -= dx
		if c.X+2*c.R >= 0 {
			collectibles = append(collectibles, c)
		}
	}
	s.collectibles = collectibles
}

// Spawn adds at most one obstacle and one collectible.
// now is the run time; obstacles are held back during the start delay
// unless allowEarly is set.
func (s *Spawner) Spawn(now time.Duration, allowEarly bool) {
	oc := s.cfg.Obstacles
	if (allowEarly || now >= oc.StartDelay()) && s.obstacleSpacingOK() {
		if s.due(now, s.lastObstacle, s.spawnedObstacle, oc.MaxInterval(), oc.SpawnChance) {
			s.spawnObstacle()
			s.lastObstacle = now
			s.spawnedObstacle = true
		}
	}

	cc := s.cfg.Collectibles
	if s.collectibleSpacingOK() {
		if s.due(now, s.lastCollectible, s.spawnedCollectible, cc.MaxInterval(), cc.SpawnChance) {
			s.spawnCollectible()
			s.lastCollectible = now
			s.spawnedCollectible = true
		}
	}
}

// due reports whether a spawn should happen: always for the first one, when
// the interval since the previous spawn has passed, or on a lucky draw.
func (s *Spawner) due(now, last time.Duration, spawnedBefore bool, interval time.Duration, chance float64) bool {
	if !spawnedBefore || now-last > interval {
		return true
	}
	return s.rng.Float64() < chance
}

func (s *Spawner) obstacleSpacingOK() bool {
	if len(s.obstacles) == 0 {
		return true
	}
	last := s.obstacles[len(s.obstacles)-1]
	return last.X < s.cfg.World.Width-s.cfg.Obstacles.MinSpacing
}

func (s *Spawner) collectibleSpacingOK() bool {
	if len(s.collectibles) == 0 {
		return true
	}
	last := s.collectibles[len(s.collectibles)-1]
	return last.X < s.cfg.World.Width-s.cfg.Collectibles.MinSpacing
}

func (s *Spawner) spawnObstacle() {
	oc := s.cfg.Obstacles
	s.obstacles = append(s.obstacles, Obstacle{
		X:       s.cfg.World.Width + oc.SpawnOffset,
		Y:       s.cfg.World.GroundY - oc.Height,
		W:       oc.Width,
		H:       oc.Height,
		Variant: s.rng.Intn(oc.Variants),
	})
}

func (s *Spawner) spawnCollectible() {
	cc := s.cfg.Collectibles
	s.collectibles = append(s.collectibles, Collectible{
		X: s.cfg.World.Width + cc.SpawnOffset,
		Y: s.cfg.World.GroundY - cc.MinHeight - s.rng.Float64()*cc.HeightBand,
		R: cc.Radius,
	})
}

// RemoveObstacle drops the obstacle at index i, keeping order.
func (s *Spawner) RemoveObstacle(i int) {
	s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
}

// RemoveCollectible drops the collectible at index i, keeping order.
func (s *Spawner) RemoveCollectible(i int) {
	s.collectibles = append(s.collectibles[:i], s.collectibles[i+1:]...)
}

// Obstacles returns the live obstacles, oldest first.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Collectibles returns the live collectibles, oldest first.
func (s *Spawner) Collectibles() []Collectible {
	return s.collectibles
}
