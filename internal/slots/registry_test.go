package slots

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/clickplay/clickplay/internal/canvas"
	"github.com/clickplay/clickplay/internal/glyph"
)

type call struct {
	op      string
	id      ID
	tooltip string
}

type fakePublisher struct {
	calls   []call
	failing map[ID]bool
}

func (f *fakePublisher) Publish(id ID, icon *canvas.Buffer, tooltip string) error {
	f.calls = append(f.calls, call{"publish", id, tooltip})
	if f.failing[id] {
		return errors.New("tray rejected icon")
	}
	return nil
}

func (f *fakePublisher) Withdraw(id ID) error {
	f.calls = append(f.calls, call{"withdraw", id, ""})
	return nil
}

func (f *fakePublisher) reset() { f.calls = nil }

func TestDesiredEitherOr(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		v := Visibility{Previous: mask&1 != 0, PlayPause: mask&2 != 0, Next: mask&4 != 0}
		for _, playing := range []bool{false, true} {
			t.Run(fmt.Sprintf("%+v/playing=%v", v, playing), func(t *testing.T) {
				var got []ID
				for _, s := range Desired(v, playing) {
					got = append(got, s.ID)
				}

				var want []ID
				if v.Previous {
					want = append(want, Previous)
				}
				if v.PlayPause {
					want = append(want, PlayPause)
				}
				if v.Next {
					want = append(want, Next)
				}
				if len(want) == 0 {
					want = []ID{Default}
				}
				if !reflect.DeepEqual(got, want) {
					t.Errorf("Desired = %v, want %v", got, want)
				}
			})
		}
	}
}

func TestPlayPauseSlot(t *testing.T) {
	if s := PlayPauseSlot(false); s.Glyph != glyph.Play || s.Tooltip != "Play" {
		t.Errorf("not playing: %+v", s)
	}
	if s := PlayPauseSlot(true); s.Glyph != glyph.Pause || s.Tooltip != "Pause" {
		t.Errorf("playing: %+v", s)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	pub := &fakePublisher{}
	r := NewRegistry(pub)
	p := glyph.Palette{DarkForeground: true}
	desired := Desired(Visibility{Previous: true, PlayPause: true, Next: true}, false)

	if n := r.Reconcile(desired, p); n != 3 {
		t.Fatalf("first reconcile made %d calls, want 3", n)
	}
	pub.reset()
	if n := r.Reconcile(desired, p); n != 0 {
		t.Fatalf("second reconcile made %d calls, want 0", n)
	}
	if len(pub.calls) != 0 {
		t.Errorf("publisher saw %v", pub.calls)
	}
}

func TestReconcileSwitchesFromDefault(t *testing.T) {
	pub := &fakePublisher{}
	r := NewRegistry(pub)
	p := glyph.Palette{DarkForeground: true}

	r.Reconcile(Desired(Visibility{}, false), p)
	if got := r.Published(); !reflect.DeepEqual(got, []ID{Default}) {
		t.Fatalf("Published = %v, want [default]", got)
	}

	pub.reset()
	r.Reconcile(Desired(Visibility{PlayPause: true}, false), p)

	want := []call{
		{"withdraw", Default, ""},
		{"publish", PlayPause, "Play"},
	}
	if !reflect.DeepEqual(pub.calls, want) {
		t.Errorf("calls = %v, want %v", pub.calls, want)
	}
	s, icon, ok := r.Lookup(PlayPause)
	if !ok || s.Glyph != glyph.Play {
		t.Fatalf("Lookup(PlayPause) = %+v, %v", s, ok)
	}
	if !icon.Equal(glyph.Render(glyph.Play, p)) {
		t.Error("published bitmap is not the play glyph")
	}
}

func TestReconcilePlaybackTouchesOnlyPlayPause(t *testing.T) {
	pub := &fakePublisher{}
	r := NewRegistry(pub)
	p := glyph.Palette{}
	v := Visibility{Previous: true, PlayPause: true, Next: true}

	r.Reconcile(Desired(v, false), p)
	pub.reset()
	r.Reconcile(Desired(v, true), p)

	want := []call{{"publish", PlayPause, "Pause"}}
	if !reflect.DeepEqual(pub.calls, want) {
		t.Errorf("calls = %v, want %v", pub.calls, want)
	}
}

func TestReconcilePaletteChangeRepublishesAll(t *testing.T) {
	pub := &fakePublisher{}
	r := NewRegistry(pub)
	v := Visibility{Previous: true, Next: true}

	r.Reconcile(Desired(v, false), glyph.Palette{DarkForeground: false})
	pub.reset()
	r.Reconcile(Desired(v, false), glyph.Palette{DarkForeground: true})

	want := []call{
		{"publish", Previous, "Previous"},
		{"publish", Next, "Next"},
	}
	if !reflect.DeepEqual(pub.calls, want) {
		t.Errorf("calls = %v, want %v", pub.calls, want)
	}
	_, icon, _ := r.Lookup(Next)
	if !icon.Equal(glyph.Render(glyph.Next, glyph.Palette{DarkForeground: true})) {
		t.Error("next slot still holds the old palette")
	}
}

func TestReconcileRetriesFailedPublish(t *testing.T) {
	pub := &fakePublisher{failing: map[ID]bool{Next: true}}
	r := NewRegistry(pub)
	p := glyph.Palette{}
	desired := Desired(Visibility{Previous: true, Next: true}, false)

	r.Reconcile(desired, p)
	if got := r.Published(); !reflect.DeepEqual(got, []ID{Previous}) {
		t.Fatalf("Published = %v, want [previous]", got)
	}

	pub.failing = nil
	pub.reset()
	r.Reconcile(desired, p)
	want := []call{{"publish", Next, "Next"}}
	if !reflect.DeepEqual(pub.calls, want) {
		t.Errorf("calls = %v, want %v", pub.calls, want)
	}
}

func TestRefreshTouchesOnlyOneSlot(t *testing.T) {
	pub := &fakePublisher{failing: map[ID]bool{Next: true}}
	r := NewRegistry(pub)
	p := glyph.Palette{}
	v := Visibility{PlayPause: true, Next: true}

	r.Reconcile(Desired(v, false), p)
	pub.failing = nil
	pub.reset()

	if n := r.Refresh(PlayPauseSlot(true), p); n != 1 {
		t.Errorf("Refresh made %d calls, want 1", n)
	}
	want := []call{{"publish", PlayPause, "Pause"}}
	if !reflect.DeepEqual(pub.calls, want) {
		t.Errorf("calls = %v, want %v", pub.calls, want)
	}
	if got := r.Published(); !reflect.DeepEqual(got, []ID{PlayPause}) {
		t.Errorf("Published = %v, want [play-pause]", got)
	}
}

func TestRefreshSkipsUnpublishedAndUnchanged(t *testing.T) {
	pub := &fakePublisher{}
	r := NewRegistry(pub)
	p := glyph.Palette{}

	if n := r.Refresh(PlayPauseSlot(true), p); n != 0 {
		t.Errorf("Refresh of an unpublished slot made %d calls", n)
	}
	r.Reconcile(Desired(Visibility{PlayPause: true}, false), p)
	pub.reset()
	if n := r.Refresh(PlayPauseSlot(false), p); n != 0 {
		t.Errorf("Refresh of an unchanged slot made %d calls", n)
	}
	if len(pub.calls) != 0 {
		t.Errorf("calls = %v", pub.calls)
	}
}

func TestWithdrawAll(t *testing.T) {
	pub := &fakePublisher{}
	r := NewRegistry(pub)
	r.Reconcile(Desired(Visibility{Previous: true, Next: true}, false), glyph.Palette{})

	pub.reset()
	r.WithdrawAll()

	want := []call{
		{"withdraw", Previous, ""},
		{"withdraw", Next, ""},
	}
	if !reflect.DeepEqual(pub.calls, want) {
		t.Errorf("calls = %v, want %v", pub.calls, want)
	}
	if got := r.Published(); len(got) != 0 {
		t.Errorf("Published = %v after WithdrawAll", got)
	}
}
