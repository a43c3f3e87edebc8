// Package session implements the maze game state machine: it owns the
// current maze, the player, the timer, the move counter and the score, and
// moves between the Menu, Playing, Paused, GameOver and Credits phases.
//
// A Session is driven by discrete events and is not safe for concurrent use.
// It holds no reference to rendering or timing singletons; time comes from
// an injected Clock and randomness from an injected seed source.
package session

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-escape/internal/maze"
)

// Clock supplies timestamps at transition boundaries.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// SeedSource returns the seed for the next generated maze.
type SeedSource func() int64

// TimeSeeds seeds every maze from the current time.
func TimeSeeds() SeedSource {
	return func() int64 {
		return time.Now().UnixNano()
	}
}

// FixedSeeds returns seed for the first maze and then a deterministic
// sequence derived from it, so a whole session can be replayed.
func FixedSeeds(seed int64) SeedSource {
	rng := rand.New(rand.NewSource(seed))
	first := true
	return func() int64 {
		if first {
			first = false
			return seed
		}
		return rng.Int63()
	}
}

// MoveOutcome reports the result of a move event.
type MoveOutcome struct {
	Moved bool // the player changed cell
	Won   bool // the move reached the exit and ended the run
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithSeedSource replaces the time-based seed source.
func WithSeedSource(src SeedSource) Option {
	return func(s *Session) {
		s.seeds = src
	}
}

// WithDifficulty sets the initially selected difficulty.
func WithDifficulty(d Difficulty) Option {
	return func(s *Session) {
		s.difficulty = d
	}
}

// Session is one player's game: the phase plus the maze run it owns.
type Session struct {
	phase      Phase
	difficulty Difficulty
	clock      Clock
	seeds      SeedSource

	// Current run. grid and player are nil outside Playing/Paused/GameOver.
	grid      *maze.Grid
	player    *maze.Player
	seed      int64
	solution  int
	moves     int
	startedAt time.Time
	endedAt   time.Time // zero until the run is won
	pausedAt  time.Time // zero unless paused
	pausedFor time.Duration
	score     int
}

// New creates a session in the Menu phase with Easy selected.
func New(opts ...Option) *Session {
	s := &Session{
		phase:      PhaseMenu,
		difficulty: DefaultDifficulties()[0],
		clock:      SystemClock{},
		seeds:      TimeSeeds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Handle applies one event. Inputs with no transition from the current phase
// are ignored and return a zero outcome. The only error is a maze generation
// failure on start or restart, which leaves the session unchanged.
func (s *Session) Handle(e Event) (MoveOutcome, error) {
	next, ok := Next(s.phase, e.Kind)
	if !ok {
		return MoveOutcome{}, nil
	}

	var outcome MoveOutcome
	switch e.Kind {
	case EventSelectDifficulty:
		s.difficulty = e.Difficulty

	case EventStart, EventRestart:
		if err := s.begin(); err != nil {
			return MoveOutcome{}, err
		}

	case EventMove:
		outcome.Moved = s.player.Move(e.Direction, s.grid)
		if outcome.Moved {
			s.moves++
		}

	case EventPause:
		if s.phase == PhasePlaying {
			s.pausedAt = s.clock.Now()
		} else {
			s.pausedFor += s.clock.Now().Sub(s.pausedAt)
			s.pausedAt = time.Time{}
		}

	case EventEscape:
		s.clear()

	case EventReachExit:
		if !maze.IsExit(s.player.Position(), s.grid) {
			return MoveOutcome{}, nil
		}
		s.finish()

	case EventOpenCredits:
		// Phase change only.
	}

	s.phase = next

	if outcome.Moved && maze.IsExit(s.player.Position(), s.grid) {
		// Cannot fail: Playing always accepts EventReachExit.
		_, _ = s.Handle(Event{Kind: EventReachExit})
		outcome.Won = true
	}

	return outcome, nil
}

// Start generates a fresh maze for the selected difficulty and begins
// playing. Ignored outside the Menu phase.
func (s *Session) Start() error {
	_, err := s.Handle(Event{Kind: EventStart})
	return err
}

// Restart replaces the current maze with a new one and resets the run
// statistics. Ignored outside Playing, Paused and GameOver.
func (s *Session) Restart() error {
	_, err := s.Handle(Event{Kind: EventRestart})
	return err
}

// ApplyMove moves the player one cell. Ignored unless Playing.
func (s *Session) ApplyMove(d maze.Direction) MoveOutcome {
	outcome, _ := s.Handle(MoveEvent(d))
	return outcome
}

// SelectDifficulty changes the pending difficulty. Only honored in the Menu.
func (s *Session) SelectDifficulty(d Difficulty) {
	_, _ = s.Handle(SelectEvent(d))
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	_, _ = s.Handle(Event{Kind: EventPause})
}

// Escape returns to the menu from any phase that allows it, discarding the
// current run.
func (s *Session) Escape() {
	_, _ = s.Handle(Event{Kind: EventEscape})
}

// OpenCredits switches from the menu to the credits screen.
func (s *Session) OpenCredits() {
	_, _ = s.Handle(Event{Kind: EventOpenCredits})
}

// CloseCredits returns from the credits screen to the menu.
func (s *Session) CloseCredits() {
	if s.phase == PhaseCredits {
		s.Escape()
	}
}

// begin generates the maze and resets the run.
func (s *Session) begin() error {
	seed := s.seeds()
	grid, err := maze.Generate(s.difficulty.Size, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	s.grid = grid
	s.player = maze.NewPlayer()
	s.seed = seed
	s.solution = maze.SolutionLength(grid)
	s.moves = 0
	s.startedAt = s.clock.Now()
	s.endedAt = time.Time{}
	s.pausedAt = time.Time{}
	s.pausedFor = 0
	s.score = 0
	return nil
}

// finish stops the clock and fixes the score.
func (s *Session) finish() {
	s.endedAt = s.clock.Now()
	s.score = Score(s.elapsed(), s.moves, s.difficulty)
}

// clear drops the current run.
func (s *Session) clear() {
	s.grid = nil
	s.player = nil
	s.seed = 0
	s.solution = 0
	s.moves = 0
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.pausedAt = time.Time{}
	s.pausedFor = 0
	s.score = 0
}

// elapsed returns playing time, excluding paused intervals.
func (s *Session) elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}

	end := s.clock.Now()
	switch {
	case !s.endedAt.IsZero():
		end = s.endedAt
	case !s.pausedAt.IsZero():
		end = s.pausedAt
	}

	d := end.Sub(s.startedAt) - s.pausedFor
	if d < 0 {
		return 0
	}
	return d
}

// View is a read-only snapshot of the session for the presentation layer.
type View struct {
	Phase        Phase
	Difficulty   Difficulty
	Grid         *maze.Grid // nil when no run is active
	Player       maze.Position
	Exit         maze.Position
	Moves        int
	Elapsed      time.Duration
	Score        int
	Seed         int64
	ShortestPath int // minimum moves from start to exit
}

// ElapsedSeconds returns the elapsed time in fractional seconds.
func (v View) ElapsedSeconds() float64 {
	return v.Elapsed.Seconds()
}

// HasRun reports whether the view carries a maze.
func (v View) HasRun() bool {
	return v.Grid != nil
}

// State returns the current snapshot.
func (s *Session) State() View {
	v := View{
		Phase:      s.phase,
		Difficulty: s.difficulty,
	}
	if s.grid == nil {
		return v
	}

	v.Grid = s.grid
	v.Player = s.player.Position()
	v.Exit = s.grid.Exit()
	v.Moves = s.moves
	v.Elapsed = s.elapsed()
	v.Score = s.score
	v.Seed = s.seed
	v.ShortestPath = s.solution
	return v
}
