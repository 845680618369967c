package wm

import (
	"sort"

	"github.com/wundara/folio-desktop/internal/model"
)

// ChangeType describes what happened to a registry entry.
type ChangeType int

const (
	ChangeOpened ChangeType = iota
	ChangeFocused
	ChangeClosed
	ChangeMoved
	ChangeResized
)

// String returns a short name for the change
func (ct ChangeType) String() string {
	switch ct {
	case ChangeOpened:
		return "opened"
	case ChangeFocused:
		return "focused"
	case ChangeClosed:
		return "closed"
	case ChangeMoved:
		return "moved"
	case ChangeResized:
		return "resized"
	default:
		return "unknown"
	}
}

// Change is delivered to the update callback after every mutation.
type Change struct {
	Type  ChangeType
	Entry model.WindowEntry
}

// Registry tracks the open windows of one desktop. It is not safe for
// concurrent use: every call is expected to come from the UI goroutine.
type Registry struct {
	counter  *StackCounter
	entries  []*model.WindowEntry
	onUpdate func(Change)
}

// NewRegistry creates an empty registry drawing stack orders from counter.
// A nil counter gets a private one based at zero.
func NewRegistry(counter *StackCounter) *Registry {
	if counter == nil {
		counter = NewStackCounter(0)
	}
	return &Registry{counter: counter}
}

// SetUpdateCallback sets the callback invoked after each mutation
func (r *Registry) SetUpdateCallback(callback func(Change)) {
	r.onUpdate = callback
}

// Counter returns the stack counter backing the registry
func (r *Registry) Counter() *StackCounter {
	return r.counter
}

// Open inserts a window, or focuses it if one with id is already open.
// It always succeeds and returns the resulting entry.
func (r *Registry) Open(id, title string, content model.Content, pos model.Point, size *model.Size) model.WindowEntry {
	if e := r.find(id); e != nil {
		r.focus(e)
		return *e
	}

	entry := &model.WindowEntry{
		ID:         id,
		Title:      title,
		Content:    content,
		StackOrder: r.counter.Next(),
		Position:   pos,
	}
	if size != nil {
		s := *size
		entry.Size = &s
	}
	r.entries = append(r.entries, entry)
	r.notify(ChangeOpened, entry)
	return *entry
}

// Focus brings the window to the front. Absent ids are ignored and do not
// consume a stack order.
func (r *Registry) Focus(id string) bool {
	e := r.find(id)
	if e == nil {
		return false
	}
	r.focus(e)
	return true
}

// Close removes the window with id
func (r *Registry) Close(id string) bool {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.notify(ChangeClosed, e)
			return true
		}
	}
	return false
}

// Reposition moves the window with id
func (r *Registry) Reposition(id string, pos model.Point) bool {
	e := r.find(id)
	if e == nil {
		return false
	}
	e.Position = pos
	r.notify(ChangeMoved, e)
	return true
}

// Resize sets an explicit size on the window with id
func (r *Registry) Resize(id string, size model.Size) bool {
	e := r.find(id)
	if e == nil {
		return false
	}
	e.Size = &size
	r.notify(ChangeResized, e)
	return true
}

// Get returns a copy of the entry with id
func (r *Registry) Get(id string) (model.WindowEntry, bool) {
	e := r.find(id)
	if e == nil {
		return model.WindowEntry{}, false
	}
	return *e, true
}

// Has reports whether a window with id is open
func (r *Registry) Has(id string) bool {
	return r.find(id) != nil
}

// Len returns the number of open windows
func (r *Registry) Len() int {
	return len(r.entries)
}

// Ordered returns copies of all entries in paint order: ascending stack
// order, so the last element is the frontmost window.
func (r *Registry) Ordered() []model.WindowEntry {
	out := make([]model.WindowEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StackOrder < out[j].StackOrder
	})
	return out
}

// Front returns the frontmost window
func (r *Registry) Front() (model.WindowEntry, bool) {
	var front *model.WindowEntry
	for _, e := range r.entries {
		if front == nil || e.StackOrder > front.StackOrder {
			front = e
		}
	}
	if front == nil {
		return model.WindowEntry{}, false
	}
	return *front, true
}

func (r *Registry) focus(e *model.WindowEntry) {
	e.StackOrder = r.counter.Next()
	r.notify(ChangeFocused, e)
}

func (r *Registry) find(id string) *model.WindowEntry {
	for _, e := range r.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// notify calls the update callback if set
func (r *Registry) notify(ct ChangeType, e *model.WindowEntry) {
	if r.onUpdate != nil {
		r.onUpdate(Change{Type: ct, Entry: *e})
	}
}
