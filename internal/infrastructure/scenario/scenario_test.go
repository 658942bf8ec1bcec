package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/logging"
)

func newLayout() *usecase.ManageLayoutUseCase {
	return usecase.NewManageLayoutUseCase(nil, usecase.FallbackSize{})
}

func TestLoad_TestdataScenariosPass(t *testing.T) {
	for _, path := range []string{"testdata/session.yaml", "testdata/odd_width.yaml"} {
		t.Run(path, func(t *testing.T) {
			sc, err := Load(path)
			require.NoError(t, err)

			result, err := Run(context.Background(), sc, newLayout())
			require.NoError(t, err)
			assert.NoError(t, result.Err())
			assert.Len(t, result.Steps, len(sc.Steps))
		})
	}
}

func TestLoad_NameDefaultsToFileName(t *testing.T) {
	sc, err := Load("testdata/odd_width.yaml")
	require.NoError(t, err)
	assert.Equal(t, "odd_width", sc.Name)

	sc, err = Load("testdata/session.yaml")
	require.NoError(t, err)
	assert.Equal(t, "session", sc.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "empty step",
			doc:     "screen: {width: 10, height: 10}\nsteps:\n  - {}\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "two actions",
			doc:     "screen: {width: 10, height: 10}\nsteps:\n  - {ratio: 0.5, windows: [a]}\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "event without change",
			doc:     "screen: {width: 10, height: 10}\nsteps:\n  - event: {window_id: a}\n",
			wantErr: ErrInvalidStep,
		},
		{
			name:    "zero screen",
			doc:     "screen: {width: 0, height: 10}\nsteps: []\n",
			wantErr: ErrInvalidScreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("screen: {width: 10, height: 10}\nstepz: []\n"))
	require.Error(t, err)

	_, err = Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParse_EmptyWindowsIsAnAction(t *testing.T) {
	sc, err := Parse(strings.NewReader("screen: {width: 10, height: 10}\nsteps:\n  - windows: []\n"))
	require.NoError(t, err)

	kind, err := sc.Steps[0].Kind()
	require.NoError(t, err)
	assert.Equal(t, StepWindows, kind)
}

func TestRun_ReportsMismatches(t *testing.T) {
	doc := `
name: wrong
screen: {x: 0, y: 0, width: 1000, height: 800}
steps:
  - windows: ["1", "2"]
  - expect:
      "1": {x: 0, y: 0, width: 1000, height: 800}
      "9": {x: 0, y: 0, width: 10, height: 10}
`
	sc, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	result, err := Run(context.Background(), sc, newLayout())
	require.NoError(t, err)

	require.Len(t, result.Mismatches, 2)
	assert.Equal(t, entity.WindowID("1"), result.Mismatches[0].WindowID)
	require.NotNil(t, result.Mismatches[0].Got)
	assert.Equal(t, 500, result.Mismatches[0].Got.Width)
	assert.Nil(t, result.Mismatches[1].Got)

	err = result.Err()
	require.ErrorIs(t, err, ErrExpectationFailed)
	assert.Contains(t, err.Error(), "window 9")
}

func TestRun_RatioIsStoredWithoutChangingFrames(t *testing.T) {
	doc := `
screen: {x: 0, y: 0, width: 1000, height: 800}
steps:
  - windows: ["1", "2"]
  - ratio: 3
`
	sc, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	result, err := Run(context.Background(), sc, newLayout())
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.State.Ratio)
	assert.Equal(t, result.Steps[0].Frames, result.Steps[1].Frames)
}

func TestRun_CancelledContext(t *testing.T) {
	sc, err := Load("testdata/session.yaml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, sc, newLayout())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSchema(t *testing.T) {
	data, err := json.Marshal(Schema())
	require.NoError(t, err)

	doc := string(data)
	assert.Contains(t, doc, `"steps"`)
	assert.Contains(t, doc, `"window_id"`)
	assert.Contains(t, doc, `"window_swap"`)
	assert.Contains(t, doc, "dumbtile scenario")
}

func TestRun_LogsNameTheSpace(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), logging.New(logging.Config{
		Level:  zerolog.DebugLevel,
		Format: "json",
		Output: &buf,
	}))
	sc := &Scenario{
		Name:   "left-monitor",
		Screen: entity.Rect{X: -1920, Width: 1920, Height: 1080},
		Steps:  []Step{{Windows: []string{"1"}}},
	}

	_, err := Run(ctx, sc, newLayout())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"space":"left-monitor"`)
	assert.Contains(t, buf.String(), `"component":"scenario"`)
}
