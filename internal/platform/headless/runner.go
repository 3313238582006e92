// Package headless steps a garden session without a terminal, optionally
// steering the gardener with a simple autopilot. It backs the sim command
// and is handy for balancing config changes.
package headless

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/garden-defense/internal/core"
	"github.com/vovakirdan/garden-defense/internal/game"
)

// RoundResult is the score reached when a round handed over to the next.
type RoundResult struct {
	Round int
	Score int
}

// Result describes a finished run.
type Result struct {
	Frames  int
	Elapsed time.Duration
	State   core.GameState
	Rounds  []RoundResult
	Summary *game.Summary // Set when the game ended
	Hash    uint64        // Snapshot hash of the final frame
}

// Recorder is a game.Presenter that logs announcements and tracks round
// handovers for a Result.
type Recorder struct {
	log     *log.Logger
	clock   time.Duration
	last    core.GameState
	rounds  []RoundResult
	summary *game.Summary
}

var _ game.Presenter = (*Recorder)(nil)

// NewRecorder creates a recorder that writes announcements to logger.
func NewRecorder(logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{log: logger}
}

// StateChanged implements game.Presenter.
func (r *Recorder) StateChanged(state core.GameState) {
	if r.last.Round > 0 && state.Round > r.last.Round {
		r.rounds = append(r.rounds, RoundResult{Round: r.last.Round, Score: r.last.Score})
	}
	r.last = state
}

// Message implements game.Presenter.
func (r *Recorder) Message(text string, _ time.Duration) {
	r.log.Info(text, "t", r.clock.Round(time.Millisecond), "round", r.last.Round)
}

// GameOver implements game.Presenter.
func (r *Recorder) GameOver(summary game.Summary) {
	r.summary = &summary
	r.log.Info("game over", "score", summary.Score, "round", summary.Round)
}

// Options controls a run.
type Options struct {
	FPS       int
	Duration  time.Duration
	Autopilot bool
}

// Run starts a new game on session and steps it until the game ends or
// opts.Duration of simulated time has passed. rec must be the presenter the
// session was created with.
func Run(session *game.Session, rec *Recorder, opts Options) Result {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)

	var pilot *Autopilot
	if opts.Autopilot {
		pilot = NewAutopilot(session.Config())
	}

	session.NewGame()
	var res Result
	for res.Elapsed < opts.Duration {
		var in core.Input
		if pilot != nil {
			in = pilot.Next(session)
		}
		st := session.Step(dt, in).State
		res.Frames++
		res.Elapsed += dt
		rec.clock = res.Elapsed
		if st.GameOver {
			break
		}
	}

	snap := session.Snapshot()
	res.State = session.State()
	res.Rounds = append(res.Rounds, rec.rounds...)
	res.Summary = rec.summary
	res.Hash = snap.Hash()
	return res
}
