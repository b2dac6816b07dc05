package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id string) Factory {
	return func() (Game, error) { return &stubGame{id: id}, nil }
}

func TestRegisterAndCreate(t *testing.T) {
	r := New()
	if err := r.Register("b", "Bravo", stubFactory("b")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("a", "Alpha", stubFactory("a")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].Title != "Bravo" {
		t.Errorf("List() = %+v", list)
	}

	g, err := r.Create("b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("created %q", g.ID())
	}
	if !r.Exists("a") || r.Exists("c") {
		t.Error("Exists mismatch")
	}
}

func TestRegisterErrors(t *testing.T) {
	r := New()
	if err := r.Register("a", "Alpha", stubFactory("a")); err != nil {
		t.Fatal(err)
	}

	if err := r.Register("a", "Again", stubFactory("a")); !errors.Is(err, ErrDuplicateGame) {
		t.Errorf("duplicate register error = %v", err)
	}
	if err := r.Register("", "Empty", stubFactory("")); err == nil {
		t.Error("empty id should fail")
	}
	if err := r.Register("n", "Nil", nil); err == nil {
		t.Error("nil factory should fail")
	}
}

func TestCreateErrors(t *testing.T) {
	r := New()
	boom := errors.New("boom")
	if err := r.Register("bad", "Bad", func() (Game, error) { return nil, boom }); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("unknown game error = %v", err)
	}
	if _, err := r.Create("bad"); !errors.Is(err, boom) {
		t.Errorf("factory error = %v, expected it wrapped", err)
	}
}
