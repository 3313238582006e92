package game

import "math"

// Snapshot captures the session state for determinism testing and replay.
// Positions are quantized to hundredths of a unit.
type Snapshot struct {
	Tick           uint64
	Score          int
	Round          int
	TimeLeft       int
	VegetablesLeft int
	Phase          Phase
	Paused         bool
	WaterOn        bool
	Pending        int // Scheduled phase events

	GardenerX int
	GardenerY int

	// Flattened entity data: id, kind or status, state, x, y
	VegetableData []int
	AnimalData    []int
	DropletData   []int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.tick,
		Score:          s.score,
		Round:          s.round,
		TimeLeft:       s.timer.TimeLeft(),
		VegetablesLeft: s.veg.Left(),
		Phase:          s.orch.phase,
		Paused:         s.paused,
		WaterOn:        s.tap.IsOn(),
		Pending:        s.sched.Pending(),
		GardenerX:      quantize(s.gardener.Pos.X),
		GardenerY:      quantize(s.gardener.Pos.Y),
	}
	for _, v := range s.reg.Vegetables() {
		snap.VegetableData = append(snap.VegetableData,
			v.ID, int(v.Status), v.CarrierID, quantize(v.Pos.X), quantize(v.Pos.Y))
	}
	for _, a := range s.reg.Animals() {
		snap.AnimalData = append(snap.AnimalData,
			a.ID, int(a.Kind), int(a.State), quantize(a.Pos.X), quantize(a.Pos.Y), len(a.Cargo))
	}
	for _, d := range s.reg.Droplets() {
		snap.DropletData = append(snap.DropletData, d.ID, quantize(d.Pos.X), quantize(d.Pos.Y))
	}
	return snap
}

func quantize(f float64) int {
	return int(math.Round(f * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VegetablesLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GardenerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GardenerY)      //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.WaterOn {
		h = h*31 + 2
	}

	for _, v := range snap.VegetableData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.AnimalData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.DropletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
