package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/logging"
)

// SyncLayoutUseCase drives a layout against a window host: it reads the
// host's windows and screen, computes frames and pushes them back.
type SyncLayoutUseCase struct {
	host   port.WindowHost
	layout *ManageLayoutUseCase
}

// NewSyncLayoutUseCase creates a new host sync use case.
func NewSyncLayoutUseCase(host port.WindowHost, layout *ManageLayoutUseCase) *SyncLayoutUseCase {
	return &SyncLayoutUseCase{
		host:   host,
		layout: layout,
	}
}

// Sync computes and applies frames for the host's current windows.
func (uc *SyncLayoutUseCase) Sync(ctx context.Context, state *entity.LayoutState) (*FrameAssignment, error) {
	log := logging.FromContext(ctx)
	if uc == nil || uc.host == nil || uc.layout == nil {
		return nil, fmt.Errorf("sync layout use case is not initialized")
	}

	windows, err := uc.host.Windows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list host windows: %w", err)
	}
	screen, err := uc.host.Screen(ctx)
	if err != nil {
		return nil, fmt.Errorf("read host screen: %w", err)
	}

	assignment := uc.layout.Assign(ctx, windows, screen, state)

	if len(assignment.Orphans) > 0 {
		orphans := make([]string, len(assignment.Orphans))
		for i, id := range assignment.Orphans {
			orphans[i] = string(id)
		}
		log.Warn().
			Strs("window_ids", orphans).
			Msg("windows missing from layout tree, placed at screen origin")
	}

	if err := uc.host.ApplyFrames(ctx, assignment.Frames); err != nil {
		return nil, fmt.Errorf("apply frames: %w", err)
	}

	log.Debug().
		Int("windows", len(windows)).
		Bool("rebuilt", assignment.Rebuilt).
		Msg("layout synced")

	return &assignment, nil
}

// HandleChange applies a host change to state and then syncs frames.
func (uc *SyncLayoutUseCase) HandleChange(
	ctx context.Context,
	change entity.Change,
	state *entity.LayoutState,
) (*entity.LayoutState, *FrameAssignment, error) {
	if uc == nil || uc.layout == nil {
		return state, nil, fmt.Errorf("sync layout use case is not initialized")
	}

	state = uc.layout.ApplyChange(ctx, change, state)
	assignment, err := uc.Sync(ctx, state)
	if err != nil {
		return state, nil, err
	}
	return state, assignment, nil
}
