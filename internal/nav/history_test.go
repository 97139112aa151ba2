package nav

import "testing"

func TestHistoryPushPop(t *testing.T) {
	var h History
	if _, ok := h.Pop(); ok {
		t.Fatalf("pop on empty stack should report false")
	}
	h.Push(Entry{View: Profile})
	h.Push(Entry{View: Calendar})
	if top, ok := h.Top(); !ok || top.View != Calendar {
		t.Fatalf("top = %+v, %v", top, ok)
	}
	if e, ok := h.Pop(); !ok || e.View != Calendar {
		t.Fatalf("pop = %+v, %v", e, ok)
	}
	if h.Len() != 1 {
		t.Fatalf("len = %d, want 1", h.Len())
	}
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("reset left %d entries", h.Len())
	}
}

func TestHistoryBackNotifiesListeners(t *testing.T) {
	var h History
	var got []Entry
	h.OnBack(func(e Entry) { got = append(got, e) })
	h.OnBack(nil)
	h.Push(Entry{View: Services})

	if e, ok := h.Back(); !ok || e.View != Services {
		t.Fatalf("back = %+v, %v", e, ok)
	}
	if _, ok := h.Back(); ok {
		t.Fatalf("back on empty stack should report false")
	}
	if len(got) != 2 || got[0].View != Services || got[1] != (Entry{}) {
		t.Fatalf("listener saw %+v", got)
	}
}
