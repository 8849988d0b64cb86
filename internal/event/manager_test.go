package event

import "testing"

func TestDispatchOrder(t *testing.T) {
	m := NewManager()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		m.Subscribe(TypeBufferChanged, func(e Event) bool {
			order = append(order, i)
			return false
		})
	}

	m.Dispatch(TypeBufferChanged, BufferChangedData{Content: "x"})

	if len(order) != 3 {
		t.Fatalf("delivered to %d handlers, want 3", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("delivery order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestDispatchPayload(t *testing.T) {
	m := NewManager()
	var got BufferChangedData
	m.Subscribe(TypeBufferChanged, func(e Event) bool {
		data, ok := e.Data.(BufferChangedData)
		if !ok {
			t.Fatalf("payload type = %T, want BufferChangedData", e.Data)
		}
		got = data
		return false
	})

	want := BufferChangedData{Content: "abc", IsModified: true, FilePath: "notes.md"}
	m.Dispatch(TypeBufferChanged, want)

	if got != want {
		t.Errorf("payload = %+v, want %+v", got, want)
	}
}

func TestDispatchTypeIsolation(t *testing.T) {
	m := NewManager()
	called := false
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		called = true
		return false
	})

	m.Dispatch(TypeBufferChanged, nil)

	if called {
		t.Error("handler for TypeBufferSaved received a TypeBufferChanged event")
	}
}

func TestDispatchNoHandlers(t *testing.T) {
	m := NewManager()
	// Must not panic.
	m.Dispatch(TypeAppQuit, AppQuitData{})
}
