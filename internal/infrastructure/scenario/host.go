package scenario

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
)

var _ port.WindowHost = (*Host)(nil)

// Host is an in-memory window host. It owns the live window set and keeps the
// frames most recently applied to it.
type Host struct {
	mu      sync.RWMutex
	screen  entity.Rect
	windows []entity.WindowID
	focused entity.WindowID
	frames  map[entity.WindowID]entity.Frame
}

// NewHost creates a host showing no windows on screen.
func NewHost(screen entity.Rect) *Host {
	return &Host{
		screen: screen,
		frames: make(map[entity.WindowID]entity.Frame),
	}
}

// Windows returns the live windows in host order.
func (h *Host) Windows(_ context.Context) ([]entity.Window, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]entity.Window, len(h.windows))
	for i, id := range h.windows {
		out[i] = entity.Window{
			ID:        id,
			IsFocused: id == h.focused,
		}
		if f, ok := h.frames[id]; ok {
			out[i].Frame = entity.Rect{
				X:      float64(f.X),
				Y:      float64(f.Y),
				Width:  float64(f.Width),
				Height: float64(f.Height),
			}
		}
	}
	return out, nil
}

// Screen returns the screen rectangle.
func (h *Host) Screen(_ context.Context) (entity.Rect, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.screen, nil
}

// ApplyFrames replaces the applied frames.
func (h *Host) ApplyFrames(_ context.Context, frames map[entity.WindowID]entity.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = maps.Clone(frames)
	if h.frames == nil {
		h.frames = make(map[entity.WindowID]entity.Frame)
	}
	return nil
}

// Frames returns a copy of the frames most recently applied.
func (h *Host) Frames() map[entity.WindowID]entity.Frame {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return maps.Clone(h.frames)
}

// Focused returns the window the host considers focused.
func (h *Host) Focused() entity.WindowID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.focused
}

// SetScreen replaces the screen rectangle.
func (h *Host) SetScreen(screen entity.Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.screen = screen
}

// SetWindows replaces the live window set, keeping the given order.
func (h *Host) SetWindows(ids []entity.WindowID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.windows = slices.Clone(ids)
	if !slices.Contains(h.windows, h.focused) {
		h.focused = ""
	}
}

// Apply mirrors a change in the live window set, the way a real host would
// before notifying the layout.
func (h *Host) Apply(change entity.Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch c := change.(type) {
	case entity.AddChange:
		if c.WindowID != "" && !slices.Contains(h.windows, c.WindowID) {
			h.windows = append(h.windows, c.WindowID)
		}
	case entity.RemoveChange:
		h.windows = slices.DeleteFunc(h.windows, func(id entity.WindowID) bool {
			return id == c.WindowID
		})
		delete(h.frames, c.WindowID)
		if h.focused == c.WindowID {
			h.focused = ""
		}
	case entity.FocusChangedChange:
		h.focused = c.WindowID
	case entity.WindowSwapChange:
		a := slices.Index(h.windows, c.WindowID)
		b := slices.Index(h.windows, c.OtherWindowID)
		if a >= 0 && b >= 0 {
			h.windows[a], h.windows[b] = h.windows[b], h.windows[a]
		}
	}
}
