package scenario

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/logging"
)

// StepResult records the frames applied after one step.
type StepResult struct {
	Index  int
	Kind   StepKind
	Frames map[entity.WindowID]entity.Frame
}

// Mismatch is a window whose frame differs from an expect step.
// Got is nil when the window received no frame.
type Mismatch struct {
	Step     int
	WindowID entity.WindowID
	Want     entity.Frame
	Got      *entity.Frame
}

func (m Mismatch) String() string {
	if m.Got == nil {
		return fmt.Sprintf("step %d: window %s: want %s, got no frame", m.Step, m.WindowID, formatFrame(m.Want))
	}
	return fmt.Sprintf("step %d: window %s: want %s, got %s", m.Step, m.WindowID, formatFrame(m.Want), formatFrame(*m.Got))
}

func formatFrame(f entity.Frame) string {
	return fmt.Sprintf("{%d,%d %dx%d}", f.X, f.Y, f.Width, f.Height)
}

// Result is the outcome of one scenario run.
type Result struct {
	Name       string
	Steps      []StepResult
	Mismatches []Mismatch
	State      *entity.LayoutState
}

// Err returns ErrExpectationFailed with the mismatches, or nil.
func (r *Result) Err() error {
	if r == nil || len(r.Mismatches) == 0 {
		return nil
	}
	lines := make([]string, len(r.Mismatches))
	for i, m := range r.Mismatches {
		lines[i] = m.String()
	}
	return fmt.Errorf("%s: %w:\n  %s", r.Name, ErrExpectationFailed, strings.Join(lines, "\n  "))
}

// Frames returns the frames applied by the last step, or nil.
func (r *Result) Frames() map[entity.WindowID]entity.Frame {
	if r == nil || len(r.Steps) == 0 {
		return nil
	}
	return r.Steps[len(r.Steps)-1].Frames
}

// Run executes sc on a fresh host and layout state.
// Expectation mismatches are collected in the result, not returned as errors.
func Run(ctx context.Context, sc *Scenario, layout *usecase.ManageLayoutUseCase) (*Result, error) {
	if sc == nil {
		return nil, fmt.Errorf("nil scenario")
	}
	if layout == nil {
		return nil, fmt.Errorf("nil layout")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	ctx = logging.WithSpace(logging.WithComponent(ctx, "scenario"), sc.Name)
	log := logging.FromContext(ctx)

	host := NewHost(sc.Screen)
	driver := usecase.NewSyncLayoutUseCase(host, layout)
	state := entity.NewLayoutState()
	result := &Result{Name: sc.Name, Steps: make([]StepResult, 0, len(sc.Steps))}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		index := i + 1
		kind, _ := step.Kind()

		switch kind {
		case StepEvent:
			change := entity.ParseChange(step.Event.Change, step.Event.WindowID, step.Event.OtherWindowID)
			host.Apply(change)
			var err error
			state, _, err = driver.HandleChange(ctx, change, state)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", index, err)
			}

		case StepWindows:
			ids := make([]entity.WindowID, len(step.Windows))
			for j, id := range step.Windows {
				ids[j] = entity.WindowID(id)
			}
			host.SetWindows(ids)
			if _, err := driver.Sync(ctx, state); err != nil {
				return nil, fmt.Errorf("step %d: %w", index, err)
			}

		case StepRatio:
			state = layout.RecommendMainPaneRatio(ctx, *step.Ratio, state)

		case StepExpect:
			result.Mismatches = append(result.Mismatches, compare(index, step.Expect, host.Frames())...)
		}

		result.Steps = append(result.Steps, StepResult{
			Index:  index,
			Kind:   kind,
			Frames: host.Frames(),
		})
	}

	result.State = state
	log.Debug().
		Int("steps", len(result.Steps)).
		Int("mismatches", len(result.Mismatches)).
		Msg("scenario finished")

	return result, nil
}

func compare(step int, expect map[string]ExpectedFrame, frames map[entity.WindowID]entity.Frame) []Mismatch {
	ids := make([]string, 0, len(expect))
	for id := range expect {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []Mismatch
	for _, id := range ids {
		want := expect[id].Frame()
		got, ok := frames[entity.WindowID(id)]
		switch {
		case !ok:
			out = append(out, Mismatch{Step: step, WindowID: entity.WindowID(id), Want: want})
		case !got.SameGeometry(want):
			out = append(out, Mismatch{Step: step, WindowID: entity.WindowID(id), Want: want, Got: &got})
		}
	}
	return out
}
