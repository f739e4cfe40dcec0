//go:build windows

package tray

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/clickplay/clickplay/internal/app"
	"github.com/clickplay/clickplay/internal/canvas"
	"github.com/clickplay/clickplay/internal/slots"
)

const (
	wmApp          = 0x8000
	wmTrayCallback = wmApp + 10 // Shell_NotifyIcon callback
	wmShowMenu     = wmApp + 11

	wmLButtonUp   = 0x0202
	wmRButtonUp   = 0x0205
	wmContextMenu = 0x007B

	mfChecked = 0x0008
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	appendMenuW    = user32.NewProc("AppendMenuW")
	trackPopupMenu = user32.NewProc("TrackPopupMenu")

	taskbarCreated = win.RegisterWindowMessage(windows.StringToUTF16Ptr("TaskbarCreated"))
)

var (
	hwnd    win.HWND
	current *Tray
)

// Run creates the hidden window that owns the notification icons and pumps
// its messages until Quit is called.
func Run(onReady, onExit func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := createWindow(); err != nil {
		log.Printf("Failed to create tray window: %v", err)
		return
	}
	onReady()

	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
	if onExit != nil {
		onExit()
	}
}

// Quit closes the tray window, which ends Run.
func Quit() {
	if hwnd != 0 {
		win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
	}
}

func createWindow() error {
	hInst := win.GetModuleHandle(nil)
	className := windows.StringToUTF16Ptr("ClickPlayTray")

	wc := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		LpfnWndProc:   syscall.NewCallback(wndProc),
		HInstance:     hInst,
		LpszClassName: className,
	}
	if win.RegisterClassEx(&wc) == 0 {
		return errors.New("RegisterClassEx failed")
	}

	hwnd = win.CreateWindowEx(0, className, windows.StringToUTF16Ptr("ClickPlay"), 0, 0, 0, 0, 0, 0, 0, hInst, nil)
	if hwnd == 0 {
		return errors.New("CreateWindowEx failed")
	}
	return nil
}

// Tray is the Windows slot publisher. Every slot is its own notification
// icon; left-click acts on that slot and right-click opens the menu.
type Tray struct {
	events chan<- app.Event
	cb     Callbacks
	hwnd   win.HWND

	mu    sync.Mutex
	icons map[slots.ID]*win.NOTIFYICONDATA
	vis   slots.Visibility
}

// SetupMenu returns the tray bound to the window created by Run. It must
// be called from the ready callback.
func SetupMenu(events chan<- app.Event, cb Callbacks) *Tray {
	t := &Tray{
		events: events,
		cb:     cb,
		hwnd:   hwnd,
		icons:  make(map[slots.ID]*win.NOTIFYICONDATA),
	}
	current = t
	return t
}

// Publish adds the slot's notification icon or replaces its image and
// tooltip.
func (t *Tray) Publish(id slots.ID, icon *canvas.Buffer, tooltip string) error {
	h, err := createIcon(icon)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	nid, ok := t.icons[id]
	op := uint32(win.NIM_MODIFY)
	if !ok {
		nid = &win.NOTIFYICONDATA{
			HWnd:             t.hwnd,
			UID:              notifyID(id),
			UFlags:           win.NIF_ICON | win.NIF_MESSAGE | win.NIF_TIP,
			UCallbackMessage: wmTrayCallback,
		}
		nid.CbSize = uint32(unsafe.Sizeof(*nid))
		op = win.NIM_ADD
	}

	old := nid.HIcon
	nid.HIcon = h
	nid.SzTip = [tipLen]uint16{}
	copy(nid.SzTip[:], tipUTF16(tooltip))

	if !win.Shell_NotifyIcon(op, nid) {
		nid.HIcon = old
		win.DestroyIcon(h)
		return fmt.Errorf("Shell_NotifyIcon failed for %s", id)
	}
	if old != 0 {
		win.DestroyIcon(old)
	}
	t.icons[id] = nid
	return nil
}

// Withdraw deletes the slot's notification icon.
func (t *Tray) Withdraw(id slots.ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	nid, ok := t.icons[id]
	if !ok {
		return nil
	}
	if !win.Shell_NotifyIcon(win.NIM_DELETE, nid) {
		return fmt.Errorf("Shell_NotifyIcon delete failed for %s", id)
	}
	win.DestroyIcon(nid.HIcon)
	delete(t.icons, id)
	return nil
}

// OpenMenu shows the context menu at the cursor. It is safe to call from
// any goroutine.
func (t *Tray) OpenMenu() {
	win.PostMessage(t.hwnd, wmShowMenu, 0, 0)
}

// StateChanged records the visibility flags for the next menu.
func (t *Tray) StateChanged(s app.State) {
	t.mu.Lock()
	t.vis = s.Visibility
	t.mu.Unlock()
}

// restore re-adds every icon after Explorer restarts.
func (t *Tray) restore() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range slots.Order {
		if nid, ok := t.icons[id]; ok {
			win.Shell_NotifyIcon(win.NIM_ADD, nid)
		}
	}
}

func (t *Tray) removeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, nid := range t.icons {
		win.Shell_NotifyIcon(win.NIM_DELETE, nid)
		win.DestroyIcon(nid.HIcon)
		delete(t.icons, id)
	}
}

func (t *Tray) showMenu() {
	t.mu.Lock()
	items := menuItems(t.vis, t.cb.Version)
	t.mu.Unlock()

	hMenu := win.CreatePopupMenu()
	if hMenu == 0 {
		return
	}
	defer win.DestroyMenu(hMenu)

	for _, it := range items {
		if it.separator {
			appendMenuW.Call(uintptr(hMenu), uintptr(win.MF_SEPARATOR), 0, 0)
			continue
		}
		flags := uintptr(win.MF_STRING)
		if it.checked {
			flags |= mfChecked
		}
		label := windows.StringToUTF16Ptr(it.label)
		appendMenuW.Call(uintptr(hMenu), flags, it.cmd, uintptr(unsafe.Pointer(label)))
	}

	var pt win.POINT
	win.GetCursorPos(&pt)
	win.SetForegroundWindow(t.hwnd)

	cmd, _, _ := trackPopupMenu.Call(
		uintptr(hMenu),
		uintptr(win.TPM_RETURNCMD|win.TPM_RIGHTBUTTON),
		uintptr(pt.X),
		uintptr(pt.Y),
		0,
		uintptr(t.hwnd),
		0,
	)
	win.PostMessage(t.hwnd, 0, 0, 0) // WM_NULL

	t.command(cmd)
}

func (t *Tray) command(cmd uintptr) {
	if ev, ok := toggleEvent(cmd); ok {
		post(t.events, ev)
		return
	}
	switch cmd {
	case cmdOpenSettings:
		if t.cb.OnOpenSettings != nil {
			go t.cb.OnOpenSettings()
		}
	case cmdAbout:
		go showAbout(t.cb.Version)
	case cmdExit:
		if t.cb.OnQuit != nil {
			go t.cb.OnQuit()
		}
	}
}

func wndProc(h win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	t := current
	if msg == taskbarCreated && t != nil {
		t.restore()
		return 0
	}

	switch msg {
	case wmTrayCallback:
		if t == nil {
			return 0
		}
		id, ok := slotFromNotifyID(wParam)
		if !ok {
			return 0
		}
		switch uint32(lParam) & 0xFFFF {
		case wmLButtonUp:
			post(t.events, app.Click(id))
		case wmRButtonUp, wmContextMenu:
			t.showMenu()
		}
		return 0

	case wmShowMenu:
		if t != nil {
			t.showMenu()
		}
		return 0

	case win.WM_CLOSE:
		win.DestroyWindow(h)
		return 0

	case win.WM_DESTROY:
		if t != nil {
			t.removeAll()
		}
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(h, msg, wParam, lParam)
}

// createIcon converts a premultiplied ARGB buffer into an HICON. The
// buffer's texel layout matches a top-down 32-bit BGRA bitmap.
func createIcon(buf *canvas.Buffer) (win.HICON, error) {
	size := int32(buf.Size)
	color := win.CreateBitmap(size, size, 1, 32, unsafe.Pointer(&buf.Pix[0]))
	if color == 0 {
		return 0, errors.New("CreateBitmap(color) failed")
	}
	defer win.DeleteObject(win.HGDIOBJ(color))

	mask := win.CreateBitmap(size, size, 1, 1, nil)
	if mask == 0 {
		return 0, errors.New("CreateBitmap(mask) failed")
	}
	defer win.DeleteObject(win.HGDIOBJ(mask))

	info := win.ICONINFO{
		FIcon:    1,
		HbmColor: color,
		HbmMask:  mask,
	}
	h := win.CreateIconIndirect(&info)
	if h == 0 {
		return 0, errors.New("CreateIconIndirect failed")
	}
	return h, nil
}
