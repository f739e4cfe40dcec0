// Package keyboard injects media keys and opens files with the desktop's
// default handler.
package keyboard

// MediaKey is a transport key.
type MediaKey int

const (
	MediaPrevious MediaKey = iota
	MediaPlayPause
	MediaNext
)

func (k MediaKey) String() string {
	switch k {
	case MediaPrevious:
		return "previous"
	case MediaPlayPause:
		return "play-pause"
	case MediaNext:
		return "next"
	default:
		return "unknown"
	}
}
