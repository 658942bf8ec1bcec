package usecase

import (
	"context"
	"math"
	"slices"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/bsp"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/logging"
)

// LayoutName identifies this layout to the host.
const LayoutName = "bspwm-like"

// Fallback frame size for windows the tree failed to place.
const (
	DefaultFallbackWidth  = 100
	DefaultFallbackHeight = 100
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// FallbackSize is the size of the frame given to orphaned windows.
type FallbackSize struct {
	Width  int
	Height int
}

// LayoutCommand is a host-invokable command exposed by a layout.
type LayoutCommand struct {
	Description string
	Run         func(ctx context.Context, state *entity.LayoutState) *entity.LayoutState
}

// FrameAssignment is the result of one frame computation.
type FrameAssignment struct {
	Frames map[entity.WindowID]entity.Frame
	// Orphans lists tracked windows the tree did not place; they hold the fallback frame.
	Orphans []entity.WindowID
	// Rebuilt is set when the tree was rebuilt during this computation.
	Rebuilt bool
}

// ManageLayoutUseCase keeps a binary space partitioning layout in sync with
// host windows and lifecycle changes. Calls on one LayoutState must not overlap.
type ManageLayoutUseCase struct {
	metrics  port.LayoutMetrics
	fallback FallbackSize
}

// NewManageLayoutUseCase creates a new layout use case.
// A nil metrics discards observations; a zero fallback uses the default size.
func NewManageLayoutUseCase(metrics port.LayoutMetrics, fallback FallbackSize) *ManageLayoutUseCase {
	if metrics == nil {
		metrics = port.NopLayoutMetrics{}
	}
	if fallback.Width <= 0 {
		fallback.Width = DefaultFallbackWidth
	}
	if fallback.Height <= 0 {
		fallback.Height = DefaultFallbackHeight
	}
	return &ManageLayoutUseCase{
		metrics:  metrics,
		fallback: fallback,
	}
}

// Name returns the layout name.
func (*ManageLayoutUseCase) Name() string {
	return LayoutName
}

// Commands returns the custom commands of this layout. There are none.
func (*ManageLayoutUseCase) Commands() map[string]LayoutCommand {
	return map[string]LayoutCommand{}
}

// FallbackSize returns the orphan frame size in use.
func (uc *ManageLayoutUseCase) FallbackSize() FallbackSize {
	return uc.fallback
}

// ComputeFrames returns the frame of every given window.
// See Assign for the full contract.
func (uc *ManageLayoutUseCase) ComputeFrames(
	ctx context.Context,
	windows []entity.Window,
	screen entity.Rect,
	state *entity.LayoutState,
) map[entity.WindowID]entity.Frame {
	return uc.Assign(ctx, windows, screen, state).Frames
}

// Assign resynchronizes state with the host windows, then computes frames.
//
// When the host list differs from the tracked list (content or order) the
// tracked list is replaced and the tree rebuilt. A single window fills the
// screen. Every requested window is present in the result; windows the tree
// did not place get the fallback frame at the screen origin.
func (uc *ManageLayoutUseCase) Assign(
	ctx context.Context,
	windows []entity.Window,
	screen entity.Rect,
	state *entity.LayoutState,
) FrameAssignment {
	log := logging.FromContext(ctx)

	if state == nil {
		log.Debug().Msg("no layout state, computing with a throwaway state")
		state = entity.NewLayoutState()
	}

	result := FrameAssignment{Frames: make(map[entity.WindowID]entity.Frame, len(windows))}

	current := trackableIDs(windows)
	if !state.SameWindows(current) {
		log.Debug().
			Int("tracked", len(state.Windows)).
			Int("current", len(current)).
			Msg("window list out of sync, rebuilding tree")
		state.Windows = current
		state.Root = bsp.RebuildFromWindows(state.Windows, state.LastFocused)
		uc.metrics.ObserveRebuild(port.RebuildResync)
		result.Rebuilt = true
	}

	switch {
	case len(state.Windows) == 1:
		result.Frames[state.Windows[0]] = screen.Round()
	case len(state.Windows) > 1:
		if state.Root == nil {
			log.Debug().Msg("tree missing, rebuilding from tracked windows")
			state.Root = bsp.RebuildFromWindows(state.Windows, state.LastFocused)
			uc.metrics.ObserveRebuild(port.RebuildMissingTree)
			result.Rebuilt = true
		}
		bsp.TraverseInto(state.Root, screen, result.Frames)
	}

	origin := screen.Round()
	for _, w := range windows {
		if _, ok := result.Frames[w.ID]; ok {
			continue
		}
		result.Frames[w.ID] = entity.Frame{
			X:                      origin.X,
			Y:                      origin.Y,
			Width:                  uc.fallback.Width,
			Height:                 uc.fallback.Height,
			UnconstrainedDimension: entity.DimensionHorizontal,
		}
		result.Orphans = append(result.Orphans, w.ID)
	}
	if len(result.Orphans) > 0 {
		uc.metrics.ObserveOrphans(len(result.Orphans))
	}

	log.Debug().
		Int("windows", len(windows)).
		Str("tree", state.Root.String()).
		Msg("frames computed")

	return result
}

// trackableIDs returns the host window ids in order, without empty ids or repeats.
func trackableIDs(windows []entity.Window) []entity.WindowID {
	ids := make([]entity.WindowID, 0, len(windows))
	for _, w := range windows {
		if w.ID == "" || slices.Contains(ids, w.ID) {
			continue
		}
		ids = append(ids, w.ID)
	}
	return ids
}

// ApplyChange updates state for one host change and returns it.
//
//   - add: track the window and split the focused leaf, or append at the end
//   - remove: untrack the window and rebuild the tree
//   - focus_changed: remember the focused window (empty clears it)
//   - window_swap: swap both windows in the tracked list and rebuild the tree
//
// Every other kind, and changes naming untracked windows, leave state as is.
func (uc *ManageLayoutUseCase) ApplyChange(
	ctx context.Context,
	change entity.Change,
	state *entity.LayoutState,
) *entity.LayoutState {
	log := logging.FromContext(ctx)

	if state == nil {
		state = entity.NewLayoutState()
	}
	if change == nil {
		return state
	}

	uc.metrics.ObserveChange(change.Kind())

	switch c := change.(type) {
	case entity.AddChange:
		if c.WindowID == "" {
			log.Debug().Msg("add without window id ignored")
			return state
		}
		log := logging.FromContext(logging.WithWindowID(ctx, string(c.WindowID)))
		if state.HasWindow(c.WindowID) {
			log.Debug().Msg("window already tracked")
			return state
		}
		state.Windows = append(state.Windows, c.WindowID)
		state.Root = bsp.Insert(state.Root, state.LastFocused, c.WindowID)
		log.Debug().
			Str("focused", string(state.LastFocused)).
			Str("tree", state.Root.String()).
			Msg("window added")

	case entity.RemoveChange:
		log := logging.FromContext(logging.WithWindowID(ctx, string(c.WindowID)))
		state.Windows = slices.DeleteFunc(state.Windows, func(id entity.WindowID) bool {
			return id == c.WindowID
		})
		state.Root = bsp.RebuildFromWindows(state.Windows, state.LastFocused)
		uc.metrics.ObserveRebuild(port.RebuildRemove)
		log.Debug().
			Str("tree", state.Root.String()).
			Msg("window removed")

	case entity.FocusChangedChange:
		state.LastFocused = c.WindowID
		log.Debug().Str("window_id", string(c.WindowID)).Msg("focus changed")

	case entity.WindowSwapChange:
		log := logging.FromContext(logging.WithWindowID(ctx, string(c.WindowID)))
		a := state.IndexOf(c.WindowID)
		b := state.IndexOf(c.OtherWindowID)
		if a < 0 || b < 0 {
			log.Debug().
				Str("other_window_id", string(c.OtherWindowID)).
				Msg("swap with untracked window ignored")
			return state
		}
		state.Windows[a], state.Windows[b] = state.Windows[b], state.Windows[a]
		state.Root = bsp.RebuildFromWindows(state.Windows, state.LastFocused)
		uc.metrics.ObserveRebuild(port.RebuildSwap)
		log.Debug().
			Str("other_window_id", string(c.OtherWindowID)).
			Str("tree", state.Root.String()).
			Msg("windows swapped")

	default:
		log.Trace().Str("kind", string(change.Kind())).Msg("change ignored")
	}

	return state
}

// RecommendMainPaneRatio stores value clamped to [0,1] as the ratio hint.
// It does not affect frames. NaN resets the hint to the default ratio.
func (*ManageLayoutUseCase) RecommendMainPaneRatio(
	ctx context.Context,
	value float64,
	state *entity.LayoutState,
) *entity.LayoutState {
	if state == nil {
		state = entity.NewLayoutState()
	}

	ratio := value
	if math.IsNaN(ratio) {
		ratio = entity.DefaultRatio
	}
	state.Ratio = clampFloat64(ratio, 0, 1)

	logging.FromContext(ctx).Debug().
		Float64("requested", value).
		Float64("ratio", state.Ratio).
		Msg("ratio hint stored")

	return state
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
