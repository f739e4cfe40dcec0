package media

import (
	"errors"
	"fmt"
)

// sessionStatus is the playback status reported by the Windows media
// session manager for the current session.
type sessionStatus int32

const (
	sessionClosed sessionStatus = iota
	sessionOpened
	sessionChanging
	sessionStopped
	sessionPlaying
	sessionPaused
)

// playing reports whether the status counts as playback.
func (s sessionStatus) playing() bool {
	return s == sessionPlaying
}

// asyncStatus is the state of a pending WinRT async operation.
type asyncStatus int32

const (
	asyncStarted asyncStatus = iota
	asyncCompleted
	asyncCanceled
	asyncError
)

var errAsyncTimeout = errors.New("async operation timed out")

// asyncDone reports whether an operation has finished, and fails when it
// finished without a result.
func asyncDone(s asyncStatus) (bool, error) {
	switch s {
	case asyncStarted:
		return false, nil
	case asyncCompleted:
		return true, nil
	case asyncCanceled:
		return true, errors.New("async operation canceled")
	case asyncError:
		return true, errors.New("async operation failed")
	}
	return true, fmt.Errorf("unknown async status %d", s)
}
