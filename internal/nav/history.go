package nav

// Entry is one navigation record pushed when a view is entered.
type Entry struct {
	View View
}

// History is the navigation stack behind the back gesture. Listeners
// registered with OnBack run after each Back call.
type History struct {
	items     []Entry
	listeners []func(Entry)
}

func (h *History) Push(e Entry) {
	h.items = append(h.items, e)
}

func (h *History) Pop() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last, true
}

func (h *History) Top() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}
	return h.items[len(h.items)-1], true
}

func (h *History) Len() int {
	return len(h.items)
}

func (h *History) Reset() {
	h.items = nil
}

// OnBack subscribes fn to back events.
func (h *History) OnBack(fn func(Entry)) {
	if fn == nil {
		return
	}
	h.listeners = append(h.listeners, fn)
}

// Back pops the top entry, if any, and notifies listeners with it.
// The zero Entry is delivered when the stack was empty.
func (h *History) Back() (Entry, bool) {
	e, ok := h.Pop()
	for _, fn := range h.listeners {
		fn(e)
	}
	return e, ok
}
