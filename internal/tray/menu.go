// Package tray presents the published slots in the notification area and
// turns clicks into machine events. Windows gets one notification icon per
// slot; elsewhere getlantern/systray owns a single icon showing every slot.
package tray

import (
	"fmt"
	"log"

	"github.com/ncruces/zenity"

	"github.com/clickplay/clickplay/internal/app"
	"github.com/clickplay/clickplay/internal/slots"
)

// Callbacks holds function references for menu actions that do not go
// through the state machine.
type Callbacks struct {
	OnOpenSettings func()
	OnQuit         func()
	Version        string
}

// Menu labels.
const (
	labelShowPrevious  = "Show Previous"
	labelShowPlayPause = "Show Play/Pause"
	labelShowNext      = "Show Next"
	labelOpenSettings  = "Open Settings File..."
	labelExit          = "Exit"
)

func aboutLabel(version string) string {
	return fmt.Sprintf("About ClickPlay v%s", version)
}

// toggleOrder is the order of the visibility checkboxes.
var toggleOrder = []slots.ID{slots.Previous, slots.PlayPause, slots.Next}

func toggleLabel(id slots.ID) string {
	switch id {
	case slots.Previous:
		return labelShowPrevious
	case slots.PlayPause:
		return labelShowPlayPause
	default:
		return labelShowNext
	}
}

func checked(v slots.Visibility, id slots.ID) bool {
	switch id {
	case slots.Previous:
		return v.Previous
	case slots.PlayPause:
		return v.PlayPause
	case slots.Next:
		return v.Next
	}
	return false
}

// post queues ev without blocking the UI thread. Events are dropped once
// the machine has stopped reading.
func post(events chan<- app.Event, ev app.Event) {
	select {
	case events <- ev:
	default:
		log.Printf("Event queue full, dropping %+v", ev)
	}
}

func showAbout(version string) {
	err := zenity.Info(
		fmt.Sprintf("ClickPlay v%s\n\nMedia controls in the notification area.", version),
		zenity.Title("About ClickPlay"),
		zenity.OKLabel("OK"),
	)
	if err != nil && err != zenity.ErrCanceled {
		log.Printf("About dialog failed: %v", err)
	}
}

// Popup menu command ids used by the Windows tray.
const (
	cmdShowPrevious uintptr = 1001 + iota
	cmdShowPlayPause
	cmdShowNext
	cmdOpenSettings
	cmdAbout
	cmdExit
)

type menuItem struct {
	cmd       uintptr
	label     string
	checked   bool
	separator bool
}

// menuItems lays out the context menu for the current visibility.
func menuItems(v slots.Visibility, version string) []menuItem {
	var items []menuItem
	for i, id := range toggleOrder {
		items = append(items, menuItem{
			cmd:     cmdShowPrevious + uintptr(i),
			label:   toggleLabel(id),
			checked: checked(v, id),
		})
	}
	return append(items,
		menuItem{separator: true},
		menuItem{cmd: cmdOpenSettings, label: labelOpenSettings},
		menuItem{cmd: cmdAbout, label: aboutLabel(version)},
		menuItem{separator: true},
		menuItem{cmd: cmdExit, label: labelExit},
	)
}

// toggleEvent maps a visibility command to its machine event.
func toggleEvent(cmd uintptr) (app.Event, bool) {
	i := int(cmd - cmdShowPrevious)
	if cmd < cmdShowPrevious || i >= len(toggleOrder) {
		return app.Event{}, false
	}
	return app.Toggle(toggleOrder[i]), true
}
