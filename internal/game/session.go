// Package game implements the garden simulation: a gardener with a hose
// defends vegetables from squirrels and raccoons across timed rounds.
//
// Session is the single entry point. Frontends call Step at a fixed rate with
// the elapsed time and a normalized input snapshot, and observe the game
// through the Presenter and Audio ports.
package game

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/garden-defense/internal/config"
	"github.com/vovakirdan/garden-defense/internal/core"
)

// Option configures a Session.
type Option func(*Session)

// WithPersistence attaches a save and score store.
func WithPersistence(p Persistence) Option {
	return func(s *Session) { s.store = p }
}

// WithPresenter attaches a presenter.
func WithPresenter(p Presenter) Option {
	return func(s *Session) { s.presenter = p }
}

// WithAudio attaches a sound cue player.
func WithAudio(a Audio) Option {
	return func(s *Session) { s.audio = a }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithSeed sets the RNG seed used for spawns and tap-seeking rolls.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithPlayerName sets the name recorded with high scores.
func WithPlayerName(name string) Option {
	return func(s *Session) { s.playerName = name }
}

// Session owns all state of one game. It is not safe for concurrent use.
type Session struct {
	cfg   config.GameConfig
	field core.Bounds
	diff  *config.DifficultyManager
	seed  int64
	rng   *rand.Rand
	log   *log.Logger

	store      Persistence
	presenter  Presenter
	audio      Audio
	playerName string

	reg      *Registry
	veg      *Vegetables
	tap      *Tap
	timer    *RoundTimer
	sched    *Scheduler
	resolver *Resolver
	orch     Orchestrator

	gardener   Gardener
	spawnClock [2]time.Duration // Indexed by AnimalKind

	tick        uint64
	score       int
	round       int
	paused      bool
	gameStarted bool

	lastState core.GameState
	published bool
}

// New creates an idle session. Call NewGame or LoadGame to begin playing.
func New(cfg config.GameConfig, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		field:      core.NewBounds(0, 0, cfg.Field.Width, cfg.Field.Height),
		diff:       config.NewDifficultyManager(cfg.Difficulty),
		presenter:  noopPresenter{},
		audio:      noopAudio{},
		playerName: "Player",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.presenter == nil {
		s.presenter = noopPresenter{}
	}
	if s.audio == nil {
		s.audio = noopAudio{}
	}

	s.rng = rand.New(rand.NewSource(s.seed)) //#nosec G404 -- game randomness, not security
	s.reg = NewRegistry()
	s.veg = NewVegetables(s.reg, s.log)
	s.tap = NewTap(core.V(cfg.Tap.X, cfg.Tap.Y))
	s.timer = NewRoundTimer(cfg.Round.Seconds)
	s.sched = NewScheduler()
	s.resolver = &Resolver{
		reg:   s.reg,
		veg:   s.veg,
		tap:   s.tap,
		flags: &s.orch.flags,
		field: s.field,
		params: map[AnimalKind]AnimalParams{
			KindSquirrel: paramsFrom(cfg.Squirrel),
			KindRaccoon:  paramsFrom(cfg.Raccoon),
		},
		tapCfg: cfg.Tap,
		cue:    s.cue,
		say:    s.say,
	}
	s.reset()
	return s
}

// reset returns every collection and flag to its initial state and drops
// anything still scheduled.
func (s *Session) reset() {
	s.sched.Cancel()
	s.reg.Clear()
	s.veg.Reset()
	s.tap.Reset()
	s.timer.Reset(s.cfg.Round.Seconds)
	s.orch.reset()
	s.rng.Seed(s.seed)

	s.gardener = Gardener{
		Pos:    core.V(s.cfg.Gardener.StartX, s.cfg.Gardener.StartY),
		Facing: -math.Pi / 2,
	}
	s.spawnClock = [2]time.Duration{}
	s.tick = 0
	s.score = 0
	s.round = 1
	s.paused = false
	s.gameStarted = false
}

// NewGame discards the current game and starts round 1.
func (s *Session) NewGame() {
	s.reset()
	s.gameStarted = true
	s.startRound(1, true)
	s.publish()
}

// Quit abandons the current game. Pending round transitions are cancelled.
func (s *Session) Quit() {
	s.reset()
	s.publish()
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	switch s.orch.phase {
	case PhaseStarting, PhaseActive, PhaseEnding:
	default:
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.say("Paused")
	} else {
		s.say("Resumed")
	}
	s.publish()
}

// Step advances the simulation by dt.
func (s *Session) Step(dt time.Duration, in core.Input) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	if in.QuitRequested {
		s.Quit()
		return core.StepResult{State: s.State()}
	}
	if in.PauseToggled {
		s.TogglePause()
	}
	if s.paused || !s.gameStarted || s.orch.phase == PhaseGameOver {
		return core.StepResult{State: s.State()}
	}

	s.tick++
	s.timer.Advance(dt, s.orch.flags.Active)
	// Events queued later in this tick start counting from the next one
	due := s.sched.Advance(dt)

	s.updateGardener(dt, in)
	s.updateDroplets(dt)
	if s.orch.phase == PhaseActive {
		s.updateSpawns(dt)
	}

	for _, a := range s.reg.Squirrels() {
		s.updateAnimal(a, dt)
	}
	for _, a := range s.reg.Raccoons() {
		s.updateAnimal(a, dt)
	}
	s.reg.Compact()

	s.checkRoundEnd()

	for _, ev := range due {
		s.handleEvent(ev)
	}

	s.publish()
	return core.StepResult{State: s.State()}
}

// updateGardener moves the gardener and handles the hose and the tap.
func (s *Session) updateGardener(dt time.Duration, in core.Input) {
	g := &s.gardener
	if angle, ok := in.Facing(); ok {
		g.Facing = angle
		move := in.Move()
		g.Pos = s.field.Clamp(g.Pos.Add(move.Scale(s.cfg.Gardener.Speed * dt.Seconds())))
	}

	s.resolver.GardenerAtTap(g, in.SprayJustPressed)

	if g.sprayCooldown > 0 {
		g.sprayCooldown -= dt
	}
	if !in.SprayHeld || !s.tap.IsOn() || !s.orch.flags.Active || g.sprayCooldown > 0 {
		return
	}
	s.fireBurst()
	g.sprayCooldown = s.cfg.Gardener.SprayInterval()
}

// fireBurst releases a fan of droplets along the gardener's facing.
func (s *Session) fireBurst() {
	g := s.gardener
	n := s.cfg.Gardener.BurstSize
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * s.cfg.Gardener.BurstSpread
		vel := core.FromAngle(g.Facing + offset).Scale(s.cfg.Gardener.DropletSpeed)
		s.reg.AddDroplet(g.Pos, vel, s.cfg.Gardener.DropletLife())
	}
	s.cue(CueSpray)
}

func (s *Session) updateDroplets(dt time.Duration) {
	bounds := s.escapeBounds()
	for _, d := range s.reg.Droplets() {
		d.Move(dt)
		if !bounds.Contains(d.Pos) {
			d.Dead = true
		}
	}
}

// updateSpawns releases animals on each kind's interval.
func (s *Session) updateSpawns(dt time.Duration) {
	for _, kind := range []AnimalKind{KindSquirrel, KindRaccoon} {
		ac := s.animalConfig(kind)
		if s.round < ac.FirstRound {
			continue
		}
		interval := s.diff.SpawnInterval(ac, s.round)
		if interval <= 0 {
			continue
		}
		s.spawnClock[kind] += dt
		for s.spawnClock[kind] >= interval {
			s.spawnClock[kind] -= interval
			s.spawnAnimal(kind, s.randomEdgePoint())
		}
	}
}

// spawnAnimal places a seeking animal with speeds scaled for the current round.
func (s *Session) spawnAnimal(kind AnimalKind, pos core.Vec) *Animal {
	ac := s.animalConfig(kind)
	factor := s.diff.SpeedFactor(s.round)
	a := s.reg.AddAnimal(kind, pos)
	a.SeekSpeed = ac.SeekSpeed * factor
	a.CarrySpeed = ac.CarrySpeed * factor
	a.FleeSpeed = ac.FleeSpeed * factor
	s.log.Debug("animal spawned", "kind", kind, "id", a.ID, "x", pos.X, "y", pos.Y)
	return a
}

func (s *Session) randomEdgePoint() core.Vec {
	w, h := s.field.Width(), s.field.Height()
	t := s.rng.Float64()
	switch s.rng.Intn(4) {
	case 0:
		return core.V(t*w, 0)
	case 1:
		return core.V(w, t*h)
	case 2:
		return core.V(t*w, h)
	default:
		return core.V(0, t*h)
	}
}

func (s *Session) animalConfig(kind AnimalKind) config.AnimalConfig {
	if kind == KindRaccoon {
		return s.cfg.Raccoon
	}
	return s.cfg.Squirrel
}

// State returns the externally readable state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:          s.score,
		Round:          s.round,
		TimeLeft:       s.timer.TimeLeft(),
		VegetablesLeft: s.veg.Left(),
		Phase:          s.orch.phase.String(),
		GameOver:       s.orch.phase == PhaseGameOver,
		Paused:         s.paused,
	}
}

// Phase returns the orchestrator phase.
func (s *Session) Phase() Phase {
	return s.orch.phase
}

// Started reports whether a game is in progress or finished.
func (s *Session) Started() bool {
	return s.gameStarted
}

// WaterOn reports whether the tap is open.
func (s *Session) WaterOn() bool {
	return s.tap.IsOn()
}

// Registry exposes the live entities for rendering and inspection.
func (s *Session) Registry() *Registry {
	return s.reg
}

// Gardener returns a copy of the player character.
func (s *Session) Gardener() Gardener {
	return s.gardener
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// publish notifies the presenter when the readable state changed.
func (s *Session) publish() {
	st := s.State()
	if s.published && st == s.lastState {
		return
	}
	s.lastState = st
	s.published = true
	s.presenter.StateChanged(st)
}

func (s *Session) say(text string) {
	s.presenter.Message(text, s.cfg.Round.Message())
}

func (s *Session) cue(c Cue) {
	s.audio.Play(c)
}

// SaveGame stores the current game under name. Once a round has been
// scored the save resumes from the next round, so its points are never
// counted twice. Saving is refused while there is nothing to resume.
func (s *Session) SaveGame(name string) error {
	if s.store == nil {
		return ErrNoPersistence
	}
	var st SaveState
	switch {
	case !s.gameStarted || s.orch.phase == PhaseIdle || s.orch.phase == PhaseGameOver:
		s.say("Nothing to save")
		return fmt.Errorf("game: save %q: %w", name, ErrCannotSave)
	case s.orch.phase == PhaseEnding && !s.orch.scored:
		s.say("Can't save while the round is ending")
		return fmt.Errorf("game: save %q: %w", name, ErrCannotSave)
	case s.orch.phase == PhaseEnding:
		st = s.nextRoundState()
	default:
		st = s.saveState()
	}
	if err := s.store.SaveGameState(st, name); err != nil {
		s.log.Warn("save failed", "slot", name, "err", err)
		s.say("Save failed")
		return fmt.Errorf("game: save %q: %w", name, err)
	}
	s.say("Game saved")
	return nil
}

// LoadGame resumes the game stored under name. An unusable save starts a
// fresh game and returns ErrInvalidSave.
func (s *Session) LoadGame(name string) error {
	if s.store == nil {
		return ErrNoPersistence
	}
	st, err := s.store.LoadGameState(name)
	if err != nil {
		s.log.Warn("load failed", "slot", name, "err", err)
		s.say("Load failed")
		return fmt.Errorf("game: load %q: %w", name, err)
	}
	if err := st.Validate(); err != nil {
		if errors.Is(err, ErrNoSave) {
			s.say("No saved game found")
			return fmt.Errorf("game: load %q: %w", name, err)
		}
		s.log.Warn("save rejected, starting new game", "slot", name, "err", err)
		s.NewGame()
		s.say("Saved game was invalid, starting fresh")
		return fmt.Errorf("game: load %q: %w", name, err)
	}

	s.restore(st)
	s.say("Game loaded")
	s.publish()
	return nil
}

// autosave writes the state the next round will start from.
func (s *Session) autosave() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveGameState(s.nextRoundState(), AutosaveSlot); err != nil {
		s.log.Warn("autosave failed", "err", err)
		s.say("Autosave failed")
	}
}

// nextRoundState is the state the round after a scored one starts from.
func (s *Session) nextRoundState() SaveState {
	st := s.saveState()
	st.Round = s.round + 1
	st.TimeLeft = s.cfg.Round.Seconds
	st.RoundActive = false
	st.WaterEnabled = true
	return st
}

func (s *Session) saveState() SaveState {
	st := SaveState{
		Score:          s.score,
		Round:          s.round,
		TimeLeft:       s.timer.TimeLeft(),
		VegetablesLeft: s.veg.Left(),
		GameStarted:    s.gameStarted,
		RoundActive:    s.orch.flags.Active,
		GardenerX:      s.gardener.Pos.X,
		GardenerY:      s.gardener.Pos.Y,
		GardenerAngle:  s.gardener.Facing,
		WaterEnabled:   s.tap.IsOn(),
		SavedAt:        time.Now(),
	}
	for _, v := range s.reg.Vegetables() {
		st.Vegetables = append(st.Vegetables, SavedVegetable{
			X:       v.Pos.X,
			Y:       v.Pos.Y,
			Variety: int(v.Variety),
			InPlay:  v.InPlay(),
		})
	}
	return st
}

// restore rebuilds the session from a validated save. Only vegetables that
// were in play come back; the round restarts with its grace period.
func (s *Session) restore(st *SaveState) {
	s.reset()
	s.gameStarted = true
	s.score = st.Score
	for _, sv := range st.Vegetables {
		if !sv.InPlay {
			continue
		}
		variety := Variety(sv.Variety)
		if variety < 0 || variety >= VarietyCount {
			variety = VarietyCarrot
		}
		s.reg.AddVegetable(s.field.Clamp(core.V(sv.X, sv.Y)), variety)
	}
	s.gardener.Pos = s.field.Clamp(core.V(st.GardenerX, st.GardenerY))
	s.gardener.Facing = st.GardenerAngle

	s.startRound(st.Round, false)
	if st.TimeLeft > 0 && st.TimeLeft < s.cfg.Round.Seconds {
		s.timer.Set(st.TimeLeft)
	}
	s.tap.Restore(st.WaterEnabled)
	if st.VegetablesLeft != s.veg.Left() {
		s.log.Warn("saved vegetable count disagrees with saved vegetables", "saved", st.VegetablesLeft, "actual", s.veg.Left())
	}
}
