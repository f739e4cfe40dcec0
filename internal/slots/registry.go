package slots

import (
	"log"

	"github.com/clickplay/clickplay/internal/canvas"
	"github.com/clickplay/clickplay/internal/glyph"
)

// Publisher is the notification-area API. Publish both adds and updates.
type Publisher interface {
	Publish(id ID, icon *canvas.Buffer, tooltip string) error
	Withdraw(id ID) error
}

type entry struct {
	slot    Slot
	palette glyph.Palette
	icon    *canvas.Buffer
}

// Registry remembers what has been published so that reconciling an
// unchanged desired set makes no calls.
type Registry struct {
	pub       Publisher
	published map[ID]entry

	// Verbose logs every publish, withdraw and skip.
	Verbose bool
}

// NewRegistry returns an empty registry publishing through p.
func NewRegistry(p Publisher) *Registry {
	return &Registry{pub: p, published: make(map[ID]entry)}
}

// Reconcile withdraws slots that are no longer desired, then renders and
// publishes slots that are new or whose glyph, tooltip or palette changed.
// It returns the number of calls made. Failures are logged, not returned; a
// failed publish is retried by the next reconcile.
func (r *Registry) Reconcile(desired []Slot, p glyph.Palette) int {
	want := make(map[ID]Slot, len(desired))
	for _, s := range desired {
		want[s.ID] = s
	}

	calls := 0
	for _, id := range Order {
		if _, ok := r.published[id]; !ok {
			continue
		}
		if _, ok := want[id]; ok {
			continue
		}
		calls++
		r.withdraw(id)
	}

	for _, id := range Order {
		s, ok := want[id]
		if !ok {
			continue
		}
		if cur, ok := r.published[id]; ok && cur.slot == s && cur.palette == p {
			if r.Verbose {
				log.Printf("Slot %s unchanged", id)
			}
			continue
		}
		calls++
		r.publish(s, p)
	}
	return calls
}

// Refresh re-renders a single slot that is already published and leaves
// every other slot alone. It returns the number of calls made.
func (r *Registry) Refresh(s Slot, p glyph.Palette) int {
	cur, ok := r.published[s.ID]
	if !ok || (cur.slot == s && cur.palette == p) {
		return 0
	}
	r.publish(s, p)
	return 1
}

func (r *Registry) publish(s Slot, p glyph.Palette) {
	icon := glyph.Render(s.Glyph, p)
	if err := r.pub.Publish(s.ID, icon, s.Tooltip); err != nil {
		log.Printf("Failed to publish %s icon: %v", s.ID, err)
		return
	}
	if r.Verbose {
		log.Printf("Published %s as %s (%s)", s.ID, s.Glyph, p)
	}
	// Replacing the entry drops the previous bitmap for this slot.
	r.published[s.ID] = entry{slot: s, palette: p, icon: icon}
}

// WithdrawAll removes every published slot.
func (r *Registry) WithdrawAll() {
	for _, id := range Order {
		if _, ok := r.published[id]; ok {
			r.withdraw(id)
		}
	}
}

func (r *Registry) withdraw(id ID) {
	if err := r.pub.Withdraw(id); err != nil {
		log.Printf("Failed to withdraw %s icon: %v", id, err)
		return
	}
	if r.Verbose {
		log.Printf("Withdrew %s", id)
	}
	delete(r.published, id)
}

// Published returns the published slot ids in publishing order.
func (r *Registry) Published() []ID {
	var ids []ID
	for _, id := range Order {
		if _, ok := r.published[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Lookup returns the published slot and its bitmap.
func (r *Registry) Lookup(id ID) (Slot, *canvas.Buffer, bool) {
	e, ok := r.published[id]
	return e.slot, e.icon, ok
}
