package tray

import (
	"unicode/utf16"

	"github.com/clickplay/clickplay/internal/slots"
)

// tipLen is the size of the notification tooltip buffer, terminator included.
const tipLen = 128

// notifyID is the notification icon uID for a slot. Zero is left unused.
func notifyID(id slots.ID) uint32 {
	return uint32(id) + 1
}

func slotFromNotifyID(uid uintptr) (slots.ID, bool) {
	if uid == 0 || uid > uintptr(len(slots.Order)) {
		return 0, false
	}
	return slots.ID(uid - 1), true
}

// tipUTF16 encodes s for the tooltip buffer, truncating on a rune boundary
// so the terminator always fits.
func tipUTF16(s string) []uint16 {
	var out []uint16
	for _, r := range s {
		enc := utf16.Encode([]rune{r})
		if len(out)+len(enc) > tipLen-1 {
			break
		}
		out = append(out, enc...)
	}
	return append(out, 0)
}
