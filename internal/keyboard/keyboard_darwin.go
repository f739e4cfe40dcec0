//go:build darwin

package keyboard

import (
	"fmt"
	"os/exec"
)

var musicCommands = map[MediaKey]string{
	MediaPrevious:  "previous track",
	MediaPlayPause: "playpause",
	MediaNext:      "next track",
}

// SendMediaKey forwards the key to the Music app via AppleScript. Synthetic
// hardware media keys need a CGEvent tap, which is not available here.
func SendMediaKey(k MediaKey) error {
	cmd, ok := musicCommands[k]
	if !ok {
		return fmt.Errorf("unknown media key %d", k)
	}
	script := fmt.Sprintf(`if application "Music" is running then tell application "Music" to %s`, cmd)
	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("media key failed: %w (output: %s)", err, string(out))
	}
	return nil
}

// OpenFile opens a file in the default text editor.
func OpenFile(path string) error {
	return exec.Command("open", "-t", path).Run()
}
