//go:build windows

package media

import (
	"log"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"github.com/go-ole/go-ole"

	"github.com/clickplay/clickplay/internal/keyboard"
)

const (
	managerClass = "Windows.Media.Control.GlobalSystemMediaTransportControlsSessionManager"

	asyncPoll    = 10 * time.Millisecond
	asyncTimeout = 2 * time.Second
)

var (
	iidManagerStatics = ole.NewGUID("{2050C4EE-11A0-57DE-AED7-C97C70338245}")
	iidAsyncInfo      = ole.NewGUID("{00000036-0000-0000-C000-000000000046}")
)

// vtable slots after the six IInspectable methods.
const (
	vtQueryInterface = 0

	vtRequestAsync      = 6 // manager statics
	vtGetCurrentSession = 6 // manager
	vtGetPlaybackInfo   = 9 // session
	vtPlaybackStatus    = 7 // playback info
	vtAsyncStatus       = 7 // IAsyncInfo
	vtGetResults        = 8 // IAsyncOperation
)

// Session reads playback state from the system media transport controls
// and injects media keys for commands. WinRT calls run on one goroutine
// locked to a multithreaded apartment.
type Session struct {
	queries chan chan bool
}

// NewSession starts the WinRT query goroutine.
func NewSession() *Session {
	s := &Session{queries: make(chan chan bool)}
	go s.serve()
	return s
}

// PlaybackActive reports whether the current media session is playing.
// Any WinRT failure counts as not playing.
func (s *Session) PlaybackActive() bool {
	reply := make(chan bool, 1)
	s.queries <- reply
	return <-reply
}

// Send presses the media key for c.
func (s *Session) Send(c Command) error {
	return keyboard.SendMediaKey(c.key())
}

func (s *Session) serve() {
	runtime.LockOSThread()

	if err := ole.RoInitialize(1); err != nil {
		log.Printf("RoInitialize failed: %v", err)
	}

	var (
		manager *ole.IUnknown
		lastErr string
	)
	for reply := range s.queries {
		var err error
		if manager == nil {
			manager, err = requestManager()
		}
		playing := false
		if err == nil {
			playing, err = currentPlaying(manager)
		}
		switch {
		case err == nil:
			lastErr = ""
		case err.Error() != lastErr:
			lastErr = err.Error()
			log.Printf("Media session query failed: %v", err)
		}
		reply <- playing
	}
}

func requestManager() (*ole.IUnknown, error) {
	factory, err := ole.RoGetActivationFactory(managerClass, iidManagerStatics)
	if err != nil {
		return nil, err
	}
	defer factory.Release()

	var op *ole.IUnknown
	if err := vcall(&factory.IUnknown, vtRequestAsync, uintptr(unsafe.Pointer(&op))); err != nil {
		return nil, err
	}
	defer op.Release()
	return await(op)
}

func currentPlaying(manager *ole.IUnknown) (bool, error) {
	var session *ole.IUnknown
	if err := vcall(manager, vtGetCurrentSession, uintptr(unsafe.Pointer(&session))); err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}
	defer session.Release()

	var info *ole.IUnknown
	if err := vcall(session, vtGetPlaybackInfo, uintptr(unsafe.Pointer(&info))); err != nil {
		return false, err
	}
	defer info.Release()

	var status sessionStatus
	if err := vcall(info, vtPlaybackStatus, uintptr(unsafe.Pointer(&status))); err != nil {
		return false, err
	}
	return status.playing(), nil
}

// await polls an IAsyncOperation until it finishes and returns its result.
func await(op *ole.IUnknown) (*ole.IUnknown, error) {
	var info *ole.IUnknown
	if err := vcall(op, vtQueryInterface, uintptr(unsafe.Pointer(iidAsyncInfo)), uintptr(unsafe.Pointer(&info))); err != nil {
		return nil, err
	}
	defer info.Release()

	deadline := time.Now().Add(asyncTimeout)
	for {
		var status asyncStatus
		if err := vcall(info, vtAsyncStatus, uintptr(unsafe.Pointer(&status))); err != nil {
			return nil, err
		}
		done, err := asyncDone(status)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if time.Now().After(deadline) {
			return nil, errAsyncTimeout
		}
		time.Sleep(asyncPoll)
	}

	var result *ole.IUnknown
	if err := vcall(op, vtGetResults, uintptr(unsafe.Pointer(&result))); err != nil {
		return nil, err
	}
	return result, nil
}

// vcall invokes the method in slot idx of obj's vtable.
func vcall(obj *ole.IUnknown, idx int, args ...uintptr) error {
	vtbl := (*[16]uintptr)(unsafe.Pointer(obj.RawVTable))
	hr, _, _ := syscall.SyscallN(vtbl[idx], append([]uintptr{uintptr(unsafe.Pointer(obj))}, args...)...)
	if int32(hr) < 0 {
		return ole.NewError(hr)
	}
	return nil
}
