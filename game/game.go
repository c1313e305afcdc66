package game

import (
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// State is the lifecycle of a game. GameOver is terminal.
type State int

const (
	Active State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game-over"
	}
	return "active"
}

// Snapshot is a copy of everything a renderer needs after a tick.
type Snapshot struct {
	Turn      int
	Snake     []types.Point
	Food      types.Point
	Score     int
	Direction types.Direction
	State     State
	Cause     manager.CollisionType
	Ate       bool // Food was consumed by the tick that produced the snapshot
}

// Over reports whether the snapshot shows a finished game.
func (s Snapshot) Over() bool {
	return s.State == GameOver
}

// Game owns the snake, the food and the score and advances them one tick at
// a time. It is not safe for concurrent use; a single loop owns it.
type Game struct {
	UUID   string
	Config Config

	snake        *entity.Snake
	food         types.Point
	score        int
	turn         int
	state        State
	cause        manager.CollisionType
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	logger       *log.Logger
	log          *log.Entry
}

// Option customises a game at construction.
type Option func(*Game)

// WithLogger routes the game's log lines to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame validates cfg, places the starting snake and the first food.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		UUID:   uuid.New().String(),
		Config: cfg,
		snake:  entity.NewSnake(cfg.InitialSnake, cfg.InitialDirection),
		state:  Active,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.collisionMgr = manager.NewCollisionManager(cfg.Field)
	g.foodMgr = manager.NewFoodManager(cfg.Field, cfg.Step, rand.New(rand.NewSource(seed)), g.collisionMgr)
	g.foodMgr.SetMaxAttempts(cfg.MaxFoodAttempts)
	g.log = g.logger.WithField("GameID", g.UUID)

	food, err := g.foodMgr.GenerateFood(g.snake)
	if err != nil {
		return nil, errors.Wrap(err, "game: placing initial food")
	}
	g.food = food

	g.log.WithFields(log.Fields{
		"Snake":     g.snake.Body,
		"Food":      g.food,
		"Direction": g.snake.Direction,
	}).Info("game started")
	return g, nil
}

// Tick advances the game by one step and returns the resulting snapshot.
// Once the game is over Tick changes nothing and keeps returning the final
// snapshot.
func (g *Game) Tick() Snapshot {
	if g.state == GameOver {
		return g.Snapshot()
	}

	g.turn++
	dir := g.snake.Turn()
	newHead := g.calculateNewPosition(dir)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.end(collision, newHead)
		return g.Snapshot()
	}

	ate := g.collisionMgr.IsFoodCollision(newHead, g.food)
	if ate {
		g.snake.Grow()
	}
	g.snake.Move(newHead)
	g.snake.RemoveTail()

	if ate {
		g.score++
		g.log.WithFields(log.Fields{
			"Turn":  g.turn,
			"Food":  g.food,
			"Score": g.score,
		}).Info("snake ate")

		food, err := g.foodMgr.GenerateFood(g.snake)
		if err != nil {
			g.end(manager.BoardFullCollision, newHead)
			snap := g.Snapshot()
			snap.Ate = true
			return snap
		}
		g.food = food
	}

	snap := g.Snapshot()
	snap.Ate = ate
	return snap
}

func (g *Game) calculateNewPosition(dir types.Direction) types.Point {
	return g.snake.GetHead().Add(dir.Delta(g.Config.Step))
}

func (g *Game) end(cause manager.CollisionType, at types.Point) {
	g.state = GameOver
	g.cause = cause
	g.log.WithFields(log.Fields{
		"Turn":  g.turn,
		"Score": g.score,
		"Cause": cause,
		"At":    at,
	}).Info("game over")
}

// SetDirection queues dir for the next tick. It returns false, and changes
// nothing, for invalid directions, for the reverse of the last tick's
// heading and once the game is over.
func (g *Game) SetDirection(dir types.Direction) bool {
	if g.state == GameOver {
		return false
	}
	if !g.snake.SetDirection(dir) {
		g.log.WithFields(log.Fields{
			"Turn":      g.turn,
			"Direction": dir,
			"Heading":   g.snake.Direction,
		}).Debug("direction ignored")
		return false
	}
	return true
}

// HandleKey applies a key name such as "Up" or "Left". Unknown keys are
// ignored.
func (g *Game) HandleKey(name string) bool {
	dir, ok := types.ParseDirection(name)
	if !ok {
		return false
	}
	return g.SetDirection(dir)
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Turn:      g.turn,
		Snake:     g.snake.Positions(),
		Food:      g.food,
		Score:     g.score,
		Direction: g.snake.Direction,
		State:     g.state,
		Cause:     g.cause,
	}
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Cause() manager.CollisionType {
	return g.cause
}

func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) GetSnake() []types.Point {
	return g.snake.Positions()
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// Direction returns the heading used by the last tick.
func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// NextDirection returns the heading the next tick will use.
func (g *Game) NextDirection() types.Direction {
	return g.snake.NextDirection()
}
