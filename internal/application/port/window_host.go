// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the host environment that owns real windows, allowing the
// layout use cases to remain independent of any specific window system.
package port

import (
	"context"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

//go:generate mockgen -source=window_host.go -destination=mocks/mock_window_host.go -package=mock_port

// WindowHost is the environment a layout runs in.
// It owns the real windows, knows the screen geometry and moves windows
// to the frames the layout assigns.
type WindowHost interface {
	// Windows returns the current windows of the space, in host order.
	Windows(ctx context.Context) ([]entity.Window, error)
	// Screen returns the rectangle available to the layout.
	Screen(ctx context.Context) (entity.Rect, error)
	// ApplyFrames moves and resizes windows to the given frames.
	ApplyFrames(ctx context.Context, frames map[entity.WindowID]entity.Frame) error
}

// LayoutMetrics records layout activity.
type LayoutMetrics interface {
	// ObserveChange counts one applied host change.
	ObserveChange(kind entity.ChangeKind)
	// ObserveRebuild counts one full tree rebuild and why it happened.
	ObserveRebuild(reason RebuildReason)
	// ObserveOrphans counts windows that fell back to the orphan frame.
	ObserveOrphans(count int)
}

// RebuildReason explains why a tree was rebuilt from the window list.
type RebuildReason string

const (
	RebuildResync      RebuildReason = "resync"
	RebuildRemove      RebuildReason = "remove"
	RebuildSwap        RebuildReason = "swap"
	RebuildMissingTree RebuildReason = "missing_tree"
)

// NopLayoutMetrics discards all observations.
type NopLayoutMetrics struct{}

func (NopLayoutMetrics) ObserveChange(entity.ChangeKind) {}
func (NopLayoutMetrics) ObserveRebuild(RebuildReason)    {}
func (NopLayoutMetrics) ObserveOrphans(int)              {}
