package tray

import (
	"testing"

	"github.com/clickplay/clickplay/internal/app"
	"github.com/clickplay/clickplay/internal/slots"
)

func TestChecked(t *testing.T) {
	v := slots.Visibility{Previous: true, Next: true}
	tests := []struct {
		id   slots.ID
		want bool
	}{
		{slots.Previous, true},
		{slots.PlayPause, false},
		{slots.Next, true},
		{slots.Default, false},
	}
	for _, tt := range tests {
		if got := checked(v, tt.id); got != tt.want {
			t.Errorf("checked(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestToggleLabels(t *testing.T) {
	want := []string{"Show Previous", "Show Play/Pause", "Show Next"}
	for i, id := range toggleOrder {
		if got := toggleLabel(id); got != want[i] {
			t.Errorf("toggleLabel(%s) = %q, want %q", id, got, want[i])
		}
	}
	if got := aboutLabel("1.2.3"); got != "About ClickPlay v1.2.3" {
		t.Errorf("aboutLabel = %q", got)
	}
}

func TestPostDropsWhenFull(t *testing.T) {
	events := make(chan app.Event, 1)
	post(events, app.Click(slots.Next))
	post(events, app.Click(slots.Previous))

	if got := <-events; got != app.Click(slots.Next) {
		t.Errorf("first event = %+v", got)
	}
	select {
	case ev := <-events:
		t.Errorf("unexpected queued event %+v", ev)
	default:
	}
}

func TestMenuItems(t *testing.T) {
	items := menuItems(slots.Visibility{PlayPause: true}, "1.0.0")

	var labels []string
	for _, it := range items {
		if it.separator {
			labels = append(labels, "-")
			continue
		}
		labels = append(labels, it.label)
	}
	want := []string{
		"Show Previous", "Show Play/Pause", "Show Next", "-",
		"Open Settings File...", "About ClickPlay v1.0.0", "-", "Exit",
	}
	if len(labels) != len(want) {
		t.Fatalf("labels = %q, want %q", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, labels[i], want[i])
		}
	}
	if items[0].checked || !items[1].checked || items[2].checked {
		t.Errorf("checkmarks = %v %v %v, want only play/pause", items[0].checked, items[1].checked, items[2].checked)
	}
}

func TestToggleEvent(t *testing.T) {
	for _, it := range menuItems(slots.Visibility{}, "") {
		ev, ok := toggleEvent(it.cmd)
		switch it.cmd {
		case cmdShowPrevious, cmdShowPlayPause, cmdShowNext:
			if !ok || ev.Kind != app.EventToggle {
				t.Errorf("toggleEvent(%d) = %+v, %v", it.cmd, ev, ok)
			}
		default:
			if ok {
				t.Errorf("toggleEvent(%d) for %q = %+v, want none", it.cmd, it.label, ev)
			}
		}
	}
	if ev, _ := toggleEvent(cmdShowNext); ev != app.Toggle(slots.Next) {
		t.Errorf("toggleEvent(cmdShowNext) = %+v", ev)
	}
}
