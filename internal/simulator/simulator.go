// Package simulator bowls random legal games. Every game is derived from its
// own seed so any single game can be reproduced from the log.
package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/internal/game"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Config holds configuration for running simulations
type Config struct {
	Games  int
	Seed   int64
	Style  string // uniform, league or pro
	Logger *log.Logger
}

// Result is one simulated game
type Result struct {
	Seed  int64
	Rolls []int
	Score int
}

// Bowler decides how many of the standing pins the next ball knocks down
type Bowler interface {
	Next(rng *rand.Rand, standing int) int
}

// BowlerFunc adapts a function to the Bowler interface
type BowlerFunc func(rng *rand.Rand, standing int) int

func (f BowlerFunc) Next(rng *rand.Rand, standing int) int { return f(rng, standing) }

// Uniform picks any count from 0 to the pins standing with equal weight
var Uniform = BowlerFunc(func(rng *rand.Rand, standing int) int {
	return rng.IntN(standing + 1)
})

// Skilled returns a bowler that clears the standing pins with probability
// clear and otherwise leaves between one and three pins up.
func Skilled(clear float64) Bowler {
	return BowlerFunc(func(rng *rand.Rand, standing int) int {
		if standing == 0 || rng.Float64() < clear {
			return standing
		}
		left := 1 + rng.IntN(3)
		if left > standing {
			left = standing
		}
		return standing - left
	})
}

// BowlerForStyle returns the bowler for a style name
func BowlerForStyle(style string) (Bowler, error) {
	switch strings.ToLower(style) {
	case "", "uniform":
		return Uniform, nil
	case "league":
		return Skilled(0.35), nil
	case "pro":
		return Skilled(0.7), nil
	}
	return nil, fmt.Errorf("unknown bowler style %q (want uniform, league or pro)", style)
}

// Simulator bowls games
type Simulator struct {
	config Config
	bowler Bowler
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Games <= 0 {
		return nil, fmt.Errorf("games must be > 0, got %d", config.Games)
	}
	bowler, err := BowlerForStyle(config.Style)
	if err != nil {
		return nil, err
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config, bowler: bowler}, nil
}

// Run bowls the configured number of games, stopping early if ctx is done.
func (s *Simulator) Run(ctx context.Context) ([]Result, error) {
	logger := s.config.Logger.WithPrefix("simulator")
	results := make([]Result, 0, s.config.Games)

	for i := 0; i < s.config.Games; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		seed := s.config.Seed + int64(i)
		rolls, err := Play(NewRand(seed), s.bowler)
		if err != nil {
			return results, fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
		}
		g, err := game.FromRolls(rolls)
		if err != nil {
			return results, fmt.Errorf("replay game %d (seed %d): %w", i+1, seed, err)
		}

		result := Result{Seed: seed, Rolls: rolls, Score: g.Score()}
		logger.Debug("Game bowled", "game", i+1, "seed", seed, "rolls", rolls, "score", result.Score)
		results = append(results, result)
	}
	return results, nil
}

// Play bowls one game to completion, drawing each ball from bowler. An
// error means the bowler offered a count the game refused.
func Play(rng *rand.Rand, bowler Bowler) ([]int, error) {
	g := game.New()
	for !g.IsComplete() {
		if g.Len() >= game.MaxRolls {
			return nil, fmt.Errorf("game not complete after %d rolls", g.Len())
		}
		if err := g.Roll(bowler.Next(rng, g.Standing())); err != nil {
			return nil, err
		}
	}
	return g.Rolls(), nil
}

// NewRand returns a generator seeded deterministically from seed. The seed is
// spread over both PCG words so nearby seeds give unrelated streams.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
