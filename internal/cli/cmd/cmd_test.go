package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/build"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
)

func testApp() *cli.App {
	return &cli.App{Config: config.DefaultConfig(), Theme: styles.NewTheme()}
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in      string
		want    entity.Rect
		wantErr bool
	}{
		{in: "0,0,1920,1080", want: entity.Rect{Width: 1920, Height: 1080}},
		{in: " 10, 20, 300.5, 200 ", want: entity.Rect{X: 10, Y: 20, Width: 300.5, Height: 200}},
		{in: "1000x800", want: entity.Rect{Width: 1000, Height: 800}},
		{in: "1000 x 800", want: entity.Rect{Width: 1000, Height: 800}},
		{in: "1,2,3", wantErr: true},
		{in: "0,0,0,100", wantErr: true},
		{in: "0,0,100,-1", wantErr: true},
		{in: "axb", wantErr: true},
		{in: "0,0,wide,100", wantErr: true},
		{in: "", wantErr: true},
		{in: "0,0,NaN,800", wantErr: true},
		{in: "NaN,0,100,100", wantErr: true},
		{in: "0,-Inf,100,100", wantErr: true},
		{in: "Infx800", wantErr: true},
		{in: "1000x+Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseScreen(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWindows(t *testing.T) {
	assert.Empty(t, parseWindows(""))
	assert.Equal(t,
		[]entity.Window{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		parseWindows(" a,,b , c,"),
	)
}

func TestWriteFrames_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeFrames(context.Background(), &buf, testApp(), framesOptions{
		screen:  "1000x800",
		windows: "1,2,3",
		focus:   "1",
		json:    true,
	})
	require.NoError(t, err)

	var frames map[entity.WindowID]entity.Frame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &frames))
	require.Len(t, frames, 3)
	assert.Equal(t, 500, frames["1"].Width)
	assert.Equal(t, 400, frames["1"].Height)
	assert.Equal(t, 500, frames["3"].Width)
	assert.Equal(t, 400, frames["3"].Y)
	assert.Equal(t, 800, frames["2"].Height)
}

func TestWriteFrames_Table(t *testing.T) {
	var buf bytes.Buffer
	err := writeFrames(context.Background(), &buf, testApp(), framesOptions{
		screen:  "0,0,1000,800",
		windows: "term,editor",
		preview: true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "WINDOW")
	assert.Contains(t, out, "term")
	assert.Contains(t, out, "editor")
	assert.Contains(t, out, "(term editor)")
	assert.Contains(t, out, "┌")
}

func TestWriteFrames_NoWindows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFrames(context.Background(), &buf, testApp(), framesOptions{screen: "100x100"}))
	assert.Contains(t, buf.String(), "No windows")
}

func TestWriteFrames_InvalidScreen(t *testing.T) {
	var buf bytes.Buffer
	err := writeFrames(context.Background(), &buf, testApp(), framesOptions{screen: "0x0", windows: "1"})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

const passingScenario = `
name: pair
screen: {x: 0, y: 0, width: 1000, height: 800}
steps:
  - event: {change: add, window_id: "1"}
  - event: {change: add, window_id: "2"}
  - expect:
      "1": {x: 0, y: 0, width: 500, height: 800}
      "2": {x: 500, y: 0, width: 500, height: 800}
`

const failingScenario = `
name: wrong
screen: {x: 0, y: 0, width: 1000, height: 800}
steps:
  - windows: ["1"]
  - expect:
      "1": {x: 0, y: 0, width: 10, height: 10}
`

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReplayFiles(t *testing.T) {
	pass := writeScenario(t, "pass.yaml", passingScenario)
	fail := writeScenario(t, "fail.yaml", failingScenario)

	t.Run("all pass", func(t *testing.T) {
		var buf bytes.Buffer
		err := replayFiles(context.Background(), &buf, testApp(), []string{pass, pass}, replayOptions{jobs: 2, frames: true})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "ok")
		assert.Contains(t, buf.String(), "pair")
	})

	t.Run("mismatch fails", func(t *testing.T) {
		var buf bytes.Buffer
		err := replayFiles(context.Background(), &buf, testApp(), []string{pass, fail}, replayOptions{jobs: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 scenarios failed")
		assert.Contains(t, buf.String(), "FAIL")
		assert.Contains(t, buf.String(), fail)
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		err := replayFiles(context.Background(), &buf, testApp(), []string{filepath.Join(t.TempDir(), "nope.yaml")}, replayOptions{})
		assert.Error(t, err)
	})
}

func TestRenderVersion(t *testing.T) {
	out := renderVersion(styles.NewTheme(), build.Info{Commit: "abc123", GoVersion: "go1.25.3"})

	assert.Contains(t, out, "dumbtile")
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestShortID(t *testing.T) {
	a, b := shortID(), shortID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
