package leap

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/purrfect-leap/internal/core"
)

type fakeStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (s *fakeStore) LoadBest() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.best, nil
}

func (s *fakeStore) SaveBest(score int) error {
	s.saves = append(s.saves, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.best = score
	return nil
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: seed}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(t *testing.T, store *fakeStore) (*Game, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	opts := Options{Audio: audio}
	if store != nil {
		opts.Store = store
	}
	g := New(opts)
	g.Reset(testRuntime(42))
	return g, audio
}

// finishRun forces the active run to end on the next tick with the given score.
func finishRun(g *Game, score int) {
	w := g.World()
	w.started = true
	w.bonus = score - int(w.scrollY)
	w.cat.Box.Y = 900
	g.Step(core.NewInputFrame())
}

func TestNewLoadsBest(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
		want  int
	}{
		{"no store", nil, 0},
		{"stored best", &fakeStore{best: 250}, 250},
		{"load error", &fakeStore{best: 250, loadErr: errors.New("corrupt")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, tt.store)
			if g.BestScore() != tt.want {
				t.Errorf("BestScore = %d, want %d", g.BestScore(), tt.want)
			}
		})
	}
}

func TestGameIdentity(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if g.ID() != "leap" || g.Title() != "Purr-fect Leap" {
		t.Errorf("ID=%q Title=%q", g.ID(), g.Title())
	}
}

func TestStartMenu(t *testing.T) {
	g, _ := newTestGame(t, nil)

	if g.Phase() != PhaseStartMenu || g.World() != nil {
		t.Fatalf("after reset phase=%v world=%v", g.Phase(), g.World())
	}

	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionCancel))
	if g.Phase() != PhaseStartMenu {
		t.Fatalf("only confirm should leave the start menu, phase=%v", g.Phase())
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying || g.World() == nil {
		t.Fatalf("confirm should start playing, phase=%v", g.Phase())
	}
	if g.World().Started() {
		t.Error("the start press must not also launch the cat")
	}

	g.Step(press(core.ActionConfirm))
	if !g.World().Started() {
		t.Error("second confirm should perform the first jump")
	}
}

func TestInertUntilFirstJump(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(press(core.ActionConfirm))
	y := g.World().Cat().Box.Y

	for i := 0; i < 200; i++ {
		res := g.Step(core.NewInputFrame())
		if res.State.Score != 0 || res.State.GameOver {
			t.Fatalf("tick %d: score=%d over=%v before first jump", i, res.State.Score, res.State.GameOver)
		}
	}
	if g.World().Cat().Box.Y != y {
		t.Errorf("cat fell before the first jump: %g -> %g", y, g.World().Cat().Box.Y)
	}
}

func TestPauseResume(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionCancel))
	if g.Phase() != PhasePaused || !g.State().Paused {
		t.Fatalf("cancel should pause, phase=%v", g.Phase())
	}

	y := g.World().Cat().Box.Y
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionConfirm, core.ActionRight))
	}
	if g.World().Cat().Box.Y != y {
		t.Error("world advanced while paused")
	}

	g.Step(press(core.ActionCancel))
	if g.Phase() != PhasePlaying {
		t.Errorf("cancel should resume to playing, phase=%v", g.Phase())
	}
}

func TestGameOverPersistsNewBest(t *testing.T) {
	store := &fakeStore{best: 100}
	g, audio := newTestGame(t, store)
	g.Step(press(core.ActionConfirm))

	finishRun(g, 500)

	if g.Phase() != PhaseGameOver || !g.State().GameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
	if g.Score() != 500 || g.BestScore() != 500 {
		t.Errorf("score=%d best=%d, want 500 and 500", g.Score(), g.BestScore())
	}
	if len(store.saves) != 1 || store.saves[0] != 500 {
		t.Errorf("saves = %v, want [500]", store.saves)
	}
	if audio.count(CueGameOver) != 1 {
		t.Errorf("gameover cues = %d, want 1", audio.count(CueGameOver))
	}

	// Further ticks in game over do not save again.
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(store.saves) != 1 {
		t.Errorf("saves = %v, want exactly one", store.saves)
	}
}

func TestGameOverKeepsHigherBest(t *testing.T) {
	store := &fakeStore{best: 1000}
	g, _ := newTestGame(t, store)
	g.Step(press(core.ActionConfirm))

	finishRun(g, 500)

	if g.BestScore() != 1000 {
		t.Errorf("best = %d, want 1000", g.BestScore())
	}
	if len(store.saves) != 0 {
		t.Errorf("saves = %v, want none", store.saves)
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	g, _ := newTestGame(t, store)
	g.Step(press(core.ActionConfirm))

	finishRun(g, 300)

	if g.Phase() != PhaseGameOver || g.BestScore() != 300 {
		t.Errorf("phase=%v best=%d, want game over with in-memory best 300", g.Phase(), g.BestScore())
	}
}

func TestReplayStartsFreshWorld(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(press(core.ActionConfirm))
	first := g.World()
	finishRun(g, 50)

	g.Step(press(core.ActionLeft))
	if g.Phase() != PhaseGameOver {
		t.Fatal("only confirm should restart")
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase())
	}
	if g.World() == first {
		t.Error("replay should build a new world")
	}
	if g.World().Started() || g.World().Score() != 0 || g.Score() != 0 {
		t.Error("new world should be unstarted with zero score")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, float64) {
		g := New(Options{})
		g.Reset(testRuntime(777))
		g.Step(press(core.ActionConfirm))
		g.Step(press(core.ActionConfirm))
		for i := 0; i < 3000 && g.Phase() == PhasePlaying; i++ {
			in := core.NewInputFrame()
			if (i/25)%2 == 0 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Score(), g.World().Cat().Box.X
	}

	s1, x1 := run()
	s2, x2 := run()
	if s1 != s2 || x1 != x2 {
		t.Errorf("runs diverged: score %d vs %d, x %g vs %g", s1, s2, x1, x2)
	}
}

func TestStateReportsPhase(t *testing.T) {
	g, _ := newTestGame(t, &fakeStore{best: 42})
	st := g.State()
	if st.Phase != "start-menu" || st.BestScore != 42 || st.Score != 0 {
		t.Errorf("state = %+v", st)
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, &fakeStore{best: 42})
	scr := core.NewScreen(60, 30)

	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Purr-fect Leap") || !strings.Contains(out, "Best: 42") {
		t.Errorf("start menu missing title or best:\n%s", out)
	}

	g.Step(press(core.ActionConfirm))
	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "Press SPACE to jump") || !strings.Contains(out, "Score: 0") {
		t.Errorf("playing screen missing hint or score:\n%s", out)
	}

	g.Step(press(core.ActionCancel))
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Errorf("pause panel missing:\n%s", scr.String())
	}

	g.Step(press(core.ActionCancel))
	finishRun(g, 120)
	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "New best!") {
		t.Errorf("game over panel missing:\n%s", out)
	}
}
