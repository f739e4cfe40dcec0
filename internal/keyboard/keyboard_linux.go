//go:build linux

package keyboard

import (
	"fmt"
	"os/exec"
)

var keysyms = map[MediaKey]string{
	MediaPrevious:  "XF86AudioPrev",
	MediaPlayPause: "XF86AudioPlay",
	MediaNext:      "XF86AudioNext",
}

// SendMediaKey presses and releases a media key through xdotool.
func SendMediaKey(k MediaKey) error {
	sym, ok := keysyms[k]
	if !ok {
		return fmt.Errorf("unknown media key %d", k)
	}
	out, err := exec.Command("xdotool", "key", sym).CombinedOutput()
	if err != nil {
		return fmt.Errorf("xdotool key %s failed: %w (output: %s)", sym, err, string(out))
	}
	return nil
}

// OpenFile opens a file in the default application.
func OpenFile(path string) error {
	return exec.Command("xdg-open", path).Start()
}
