package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/fogleman/gg"
	"github.com/urfave/cli"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"soft scene", "soft", false},
		{"dof scene", "dof", false},
		{"moblur scene", "moblur", false},
		{"trans scene", "trans", false},
		{"spheres scene", "spheres", false},
		{"fuzzy variant", "fuzzy-horizontal", false},

		{"unknown scene", "nonexistent", true},
		{"sheet is not a scene", "fuzzy", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc.Width <= 0 || sc.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", sc.Width, sc.Height)
			}
		})
	}

	if _, err := createScene("nonexistent"); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func contextWithFlags(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("render", flag.ContinueOnError)
	for _, f := range renderFlags {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("Parsing %v: %v", args, err)
	}
	return cli.NewContext(newApp(), set, nil)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, sc, original *scene.Scene)
	}{
		{"no flags keep the scene's settings", nil, func(t *testing.T, sc, original *scene.Scene) {
			if sc.SamplingConfig != original.SamplingConfig || sc.Width != original.Width || sc.Height != original.Height {
				t.Errorf("Expected unchanged scene, got %+v", sc.SamplingConfig)
			}
		}},
		{"size", []string{"--width", "64", "--height", "48"}, func(t *testing.T, sc, _ *scene.Scene) {
			if sc.Width != 64 || sc.Height != 48 {
				t.Errorf("Expected 64x48, got %dx%d", sc.Width, sc.Height)
			}
		}},
		{"samples short flag", []string{"-s", "7"}, func(t *testing.T, sc, _ *scene.Scene) {
			if sc.SamplingConfig.NumSamples != 7 {
				t.Errorf("Expected 7 samples, got %d", sc.SamplingConfig.NumSamples)
			}
		}},
		{"zero max depth", []string{"--max-depth", "0"}, func(t *testing.T, sc, _ *scene.Scene) {
			if sc.SamplingConfig.MaxDepth != 0 {
				t.Errorf("Expected max depth 0, got %d", sc.SamplingConfig.MaxDepth)
			}
		}},
		{"explicit zero seed", []string{"--seed", "0"}, func(t *testing.T, sc, _ *scene.Scene) {
			if sc.SamplingConfig.Seed != 0 {
				t.Errorf("Expected seed 0, got %d", sc.SamplingConfig.Seed)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := scene.NewSoftShadowScene()
			sc := scene.NewSoftShadowScene()
			applyOverrides(contextWithFlags(t, tt.args...), sc)
			tt.check(t, sc, original)
		})
	}
}

func TestRenderOptions(t *testing.T) {
	options := renderOptions(contextWithFlags(t, "-w", "3", "--tile-size", "8"))
	if options.NumWorkers != 3 || options.TileSize != 8 {
		t.Errorf("Expected 3 workers and 8 pixel tiles, got %+v", options)
	}
}

func TestCreateOutputDir(t *testing.T) {
	dir := createOutputDir("soft")
	if dir != filepath.Join("output", "soft") {
		t.Errorf("Expected output/soft, got %s", dir)
	}
}

func TestWriteSceneTable(t *testing.T) {
	var buf bytes.Buffer
	writeSceneTable(&buf)
	out := buf.String()

	for _, info := range scene.List() {
		if !strings.Contains(out, info.ID) {
			t.Errorf("Expected scene %s in the listing", info.ID)
		}
	}
	if !strings.Contains(out, "fuzzy") || !strings.Contains(out, "SHEETS") {
		t.Errorf("Expected the sheets in the footer:\n%s", out)
	}
}

func TestScenesCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"scene listing", []string{"whitted", "scenes"}, "soft"},
		{"verbose flag before the command", []string{"whitted", "-v", "scenes"}, "trans"},
		{"version flag", []string{"whitted", "--version"}, "0.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			var buf bytes.Buffer
			app.Writer = &buf

			if err := app.Run(tt.args); err != nil {
				t.Fatalf("%v failed: %v", tt.args, err)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected %q in the output:\n%s", tt.expected, buf.String())
			}
		})
	}
	log.SetLevel(log.Notice)
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soft.png")
	args := []string{"whitted", "render", "--width", "16", "--height", "12", "-s", "2", "-o", path, "soft"}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("Expected a PNG at %s: %v", path, err)
	}
	if size := img.Bounds().Size(); size.X != 16 || size.Y != 12 {
		t.Errorf("Expected a 16x12 image, got %v", size)
	}
}

func TestRenderCommand_DebugLogsStatsTable(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	defer func() {
		log.SetSink(os.Stdout)
		log.SetLevel(log.Notice)
	}()

	path := filepath.Join(t.TempDir(), "soft.png")
	args := []string{"whitted", "-vv", "render", "--width", "8", "--height", "8", "-s", "1", "-o", path, "soft"}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(buf.String(), "render statistics") || !strings.Contains(buf.String(), "TOTAL") {
		t.Errorf("Expected the stats table at debug level, got:\n%s", buf.String())
	}
}

func TestSheetCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fuzzy.png")
	args := []string{"whitted", "sheet", "--width", "8", "--height", "6", "-s", "1", "-o", path, "fuzzy"}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("sheet failed: %v", err)
	}

	img, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("Expected a PNG at %s: %v", path, err)
	}
	// Five scenes three across.
	if size := img.Bounds().Size(); size.X != 24 || size.Y != 12 {
		t.Errorf("Expected a 24x12 sheet, got %v", size)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"whitted", "render", "-o", filepath.Join(dir, "a.png"), "teapot"}},
		{"missing scene", []string{"whitted", "render"}},
		{"bad encoding", []string{"whitted", "render", "--encoding", "gamma", "soft"}},
		{"unknown sheet", []string{"whitted", "sheet", "teapot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := newApp().Run(tt.args); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("Expected no output from failed renders, found %d files", len(entries))
	}
}
