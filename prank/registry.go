package prank

// Registry owns the live windows. It is only touched from the event loop.
type Registry struct {
	windows []*Window
	nextID  int
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) add(w *Window) {
	r.nextID++
	w.id = r.nextID
	r.windows = append(r.windows, w)
}

// Remove drops w and reports whether it was registered.
func (r *Registry) Remove(w *Window) bool {
	for i, other := range r.windows {
		if other == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) Len() int {
	return len(r.windows)
}

// Windows returns a snapshot of the live windows in spawn order.
func (r *Registry) Windows() []*Window {
	out := make([]*Window, len(r.windows))
	copy(out, r.windows)
	return out
}

// CloseAll closes every live window.
func (r *Registry) CloseAll() {
	for _, w := range r.Windows() {
		w.Close()
	}
}
