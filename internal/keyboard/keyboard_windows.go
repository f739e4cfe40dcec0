//go:build windows

package keyboard

import (
	"fmt"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procKeyboardEvent = user32.NewProc("keybd_event")
)

const (
	vkMediaNextTrack = 0xB0
	vkMediaPrevTrack = 0xB1
	vkMediaPlayPause = 0xB3

	keyEventFExtendedKey = 0x0001
	keyEventFKeyUp       = 0x0002
)

func virtualKey(k MediaKey) (uintptr, error) {
	switch k {
	case MediaPrevious:
		return vkMediaPrevTrack, nil
	case MediaPlayPause:
		return vkMediaPlayPause, nil
	case MediaNext:
		return vkMediaNextTrack, nil
	}
	return 0, fmt.Errorf("unknown media key %d", k)
}

// SendMediaKey presses and releases a media key.
func SendMediaKey(k MediaKey) error {
	vk, err := virtualKey(k)
	if err != nil {
		return err
	}
	if err := procKeyboardEvent.Find(); err != nil {
		return err
	}
	procKeyboardEvent.Call(vk, 0, keyEventFExtendedKey, 0)
	procKeyboardEvent.Call(vk, 0, keyEventFExtendedKey|keyEventFKeyUp, 0)
	return nil
}

// OpenFile opens a file in the default text editor.
func OpenFile(path string) error {
	cmd := exec.Command("notepad", path)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd.Start()
}
