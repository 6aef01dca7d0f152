package runner

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/run-for-love/internal/config"
)

func world() config.WorldConfig {
	return config.DefaultRunnerConfig().World
}

func TestWinChoreographyIsPure(t *testing.T) {
	w := world()
	for _, ms := range []int{0, 1200, 2500, 3100, 3900, 5364, 5500, 5800, 9000, 13999, 14000, 20000} {
		e := time.Duration(ms) * time.Millisecond
		a := WinChoreography(e, w, 120)
		b := WinChoreography(e, w, 120)
		if a != b {
			t.Errorf("elapsed %v: frames differ\n%+v\n%+v", e, a, b)
		}
	}
}

func TestWinChoreographySnapshotStable(t *testing.T) {
	g, _ := startedGame(t, 21)
	stepFor(g, 29*time.Second)
	stepFor(g, 6*time.Second)
	if g.State() != StateWinAnimation {
		t.Fatalf("state = %v, expected win_animation", g.State())
	}

	a := g.Snapshot().Win
	b := g.Snapshot().Win
	if a != b {
		t.Errorf("snapshot without a tick changed the win frame:\n%+v\n%+v", a, b)
	}
}

func TestWinRunnerMovesAtFixedSpeed(t *testing.T) {
	w := world()
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 120},
		{1250 * time.Millisecond, 520},
		{WinRunDuration, 920},
		{10 * time.Second, 920},
	}
	for _, tc := range tests {
		if got := WinChoreography(tc.elapsed, w, 120).RunnerX; got != tc.want {
			t.Errorf("RunnerX(%v) = %v, expected %v", tc.elapsed, got, tc.want)
		}
	}
}

func TestWinTrophy(t *testing.T) {
	w := world()

	if f := WinChoreography(PodiumStart-time.Millisecond, w, 120); f.TrophyVisible {
		t.Error("trophy visible before the podium")
	}

	f := WinChoreography(PodiumStart, w, 120)
	if !f.TrophyVisible || f.TrophyX != w.Width+120 || f.TrophyY != -100 {
		t.Errorf("trophy at podium start = (%v, %v), expected (%v, -100)", f.TrophyX, f.TrophyY, w.Width+120)
	}

	f = WinChoreography(PodiumStart+TrophyDuration, w, 120)
	if f.TrophyX != w.Width*0.5 || f.TrophyY != 340 {
		t.Errorf("trophy at rest = (%v, %v), expected (%v, 340)", f.TrophyX, f.TrophyY, w.Width*0.5)
	}

	mid := WinChoreography(PodiumStart+TrophyDuration/2, w, 120)
	// Out-quad covers three quarters of the way at half time.
	if mid.TrophyY < 229 || mid.TrophyY > 231 {
		t.Errorf("trophy Y at half time = %v, expected about 230", mid.TrophyY)
	}
}

func TestWinTrumpets(t *testing.T) {
	w := world()
	if got := WinChoreography(PodiumStart+250*time.Millisecond, w, 120).TrumpetAngle; got != 90 {
		t.Errorf("TrumpetAngle = %v, expected 90", got)
	}
	if got := WinChoreography(PodiumStart+2*time.Second, w, 120).TrumpetAngle; got != 180 {
		t.Errorf("TrumpetAngle = %v, expected 180", got)
	}
}

func TestWinCompanionEntrance(t *testing.T) {
	w := world()
	start := PodiumStart + CompanionDelay
	target := w.Width*0.5 - 72

	if f := WinChoreography(start-time.Millisecond, w, 120); f.CompanionVisible {
		t.Error("companion visible before its delay")
	}
	if f := WinChoreography(start, w, 120); !f.CompanionVisible || f.CompanionX != -90 {
		t.Errorf("companion at entrance start: visible=%v x=%v", f.CompanionVisible, f.CompanionX)
	}
	if f := WinChoreography(start+CompanionDuration, w, 120); f.CompanionX != target {
		t.Errorf("companion at end = %v, expected %v", f.CompanionX, target)
	}

	arrival := CompanionArrivalAt(w)
	if arrival < 5360*time.Millisecond || arrival > 5370*time.Millisecond {
		t.Errorf("CompanionArrivalAt = %v, expected about 5364ms", arrival)
	}
	before := WinChoreography(arrival-time.Millisecond, w, 120)
	at := WinChoreography(arrival, w, 120)
	if before.CompanionArrived || !at.CompanionArrived {
		t.Errorf("arrival flag wrong: before=%v at=%v", before.CompanionArrived, at.CompanionArrived)
	}
	if at.CompanionX < target-3 {
		t.Errorf("arrived companion X = %v, expected >= %v", at.CompanionX, target-3)
	}
	if at.CompanionHop != 0 {
		t.Errorf("hop at arrival = %v, expected 0", at.CompanionHop)
	}
}

func TestWinSign(t *testing.T) {
	w := world()
	if f := WinChoreography(SignPopAt-time.Millisecond, w, 120); f.SignVisible {
		t.Error("sign visible before its pop time")
	}
	if f := WinChoreography(SignPopAt, w, 120); !f.SignVisible || f.SignScale != 0 {
		t.Errorf("sign at pop = visible %v scale %v, expected scale 0", f.SignVisible, f.SignScale)
	}
	if f := WinChoreography(SignPopAt+SignPopDuration, w, 120); f.SignScale != 1 {
		t.Errorf("sign scale after pop = %v, expected 1", f.SignScale)
	}
	if f := WinChoreography(ReplayHintAt-time.Millisecond, w, 120); f.ShowReplayHint {
		t.Error("replay hint shown early")
	}
	if f := WinChoreography(WinScreenAt, w, 120); !f.Done || !f.ShowReplayHint || f.Stage != WinStageDone {
		t.Errorf("frame at win screen = %+v", f)
	}
}

func TestWinStagesCrossed(t *testing.T) {
	w := world()
	got := winStagesCrossed(0, WinScreenAt, w)
	want := []WinStage{WinStagePodium, WinStageCompanion, WinStageCelebrate, WinStageSign, WinStageReplayHint, WinStageDone}
	if !slices.Equal(got, want) {
		t.Errorf("winStagesCrossed = %v, expected %v", got, want)
	}
	if got := winStagesCrossed(SignPopAt, SignPopAt+time.Second, w); len(got) != 0 {
		t.Errorf("re-crossing from the threshold itself reported %v", got)
	}
}

func TestWinHeartsSpawnOnce(t *testing.T) {
	w := world()
	s := newWinAnimState(120, rand.New(rand.NewSource(1)))
	scale := float64(tick) / float64(16*time.Millisecond)

	for s.elapsed < PodiumStart+heartsAfter {
		s.advance(tick, scale, w)
	}
	if s.heartsSpawned || len(s.hearts) != 0 {
		t.Fatalf("hearts spawned at %v", s.elapsed)
	}
	s.advance(tick, scale, w)
	if !s.heartsSpawned || len(s.hearts) != winHeartCount {
		t.Fatalf("hearts = %d, expected %d", len(s.hearts), winHeartCount)
	}

	peak := len(s.hearts)
	for s.elapsed < WinScreenAt {
		s.advance(tick, scale, w)
		if len(s.hearts) > peak {
			t.Fatalf("hearts respawned at %v", s.elapsed)
		}
		peak = len(s.hearts)
	}
}

func TestWinFireworksAfterArrival(t *testing.T) {
	w := world()
	s := newWinAnimState(120, rand.New(rand.NewSource(2)))
	scale := float64(tick) / float64(16*time.Millisecond)
	arrival := CompanionArrivalAt(w)

	sawSparks := false
	for s.elapsed < WinScreenAt {
		s.advance(tick, scale, w)
		if s.elapsed < arrival && len(s.sparks) > 0 {
			t.Fatalf("fireworks before the companion arrived at %v", s.elapsed)
		}
		if len(s.sparks) > maxSparks+sparksPerBurst-1 {
			t.Fatalf("sparks = %d exceeds the cap", len(s.sparks))
		}
		if len(s.sparks) > 0 {
			sawSparks = true
		}
	}
	if !sawSparks {
		t.Error("expected fireworks after arrival")
	}
}

func TestWinStageString(t *testing.T) {
	if WinStageCelebrate.String() != "celebrate" || WinStage(42).String() != "unknown" {
		t.Error("unexpected WinStage names")
	}
}
