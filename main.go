package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

// Flags shared by the render and sheet commands. Zero values keep the
// scene's own settings.
var renderFlags = []cli.Flag{
	cli.IntFlag{Name: "width", Usage: "image width (default: the scene's)"},
	cli.IntFlag{Name: "height", Usage: "image height (default: the scene's)"},
	cli.IntFlag{Name: "samples, s", Usage: "samples per pixel (default: the scene's)"},
	cli.IntFlag{Name: "max-depth", Value: -1, Usage: "maximum reflection/transmission depth (default: the scene's)"},
	cli.Int64Flag{Name: "seed", Usage: "base random seed (default: the scene's)"},
	cli.IntFlag{Name: "workers, w", Usage: "number of render workers (0 = one per CPU)"},
	cli.IntFlag{Name: "tile-size", Value: renderer.DefaultOptions().TileSize, Usage: "tile size in pixels"},
	cli.StringFlag{Name: "encoding", Value: "linear", Usage: "8-bit encoding: linear or srgb"},
	cli.StringFlag{Name: "out, o", Usage: "output PNG file (default: output/<scene>/render_<timestamp>.png)"},
	cli.BoolFlag{Name: "stats", Usage: "print per-worker render statistics"},
}

func newApp() *cli.App {
	// The default "version, v" flag would clash with -v.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render demo scenes with a recursive ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a single scene",
			ArgsUsage: "scene",
			Flags:     renderFlags,
			Action:    renderScene,
		},
		{
			Name:  "sheet",
			Usage: "render a set of scenes into one contact sheet",
			Description: `
Render every scene of the sheet at the same size, tone map each one on its
own and lay them out in a grid.`,
			ArgsUsage: "sheet",
			Flags:     renderFlags,
			Action:    renderSheet,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes and sheets",
			Action: listScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// createScene builds the registered scene with the given ID
func createScene(id string) (*scene.Scene, error) {
	if id == "" {
		return nil, errors.New("missing scene argument")
	}
	return scene.Create(id)
}

// applyOverrides copies the sampling flags the user set onto sc
func applyOverrides(ctx *cli.Context, sc *scene.Scene) {
	if n := ctx.Int("samples"); n > 0 {
		sc.SamplingConfig.NumSamples = n
	}
	if d := ctx.Int("max-depth"); d >= 0 {
		sc.SamplingConfig.MaxDepth = d
	}
	if ctx.IsSet("seed") {
		sc.SamplingConfig.Seed = ctx.Int64("seed")
	}
	if w := ctx.Int("width"); w > 0 {
		sc.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		sc.Height = h
	}
}

func renderOptions(ctx *cli.Context) renderer.Options {
	options := renderer.DefaultOptions()
	options.NumWorkers = ctx.Int("workers")
	options.TileSize = ctx.Int("tile-size")
	return options
}

// createOutputDir returns the directory renders of the named scene go to
func createOutputDir(name string) string {
	return filepath.Join("output", name)
}

// outputPath returns the --out flag or a timestamped file in the scene's
// output directory, creating the directory if needed.
func outputPath(ctx *cli.Context, name string) (string, error) {
	path := ctx.String("out")
	if path == "" {
		timestamp := time.Now().Format("20060102_150405")
		path = filepath.Join(createOutputDir(name), fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	return path, nil
}

// interruptible returns a context cancelled by Ctrl-C
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// renderFrame renders sc at its configured size and tone maps the result
func renderFrame(ctx context.Context, cliCtx *cli.Context, sc *scene.Scene, encoding output.Encoding) (image.Image, error) {
	rt, err := renderer.NewRaytracer(sc, sc.Width, sc.Height, renderOptions(cliCtx), log.New("renderer"))
	if err != nil {
		return nil, err
	}

	img, stats, err := rt.Render(ctx)
	if err != nil {
		return nil, err
	}

	logger.Noticef("rendered %s (%dx%d, %d spp) in %v", sc.Name, sc.Width, sc.Height, stats.SamplesPerPixel, stats.RenderTime.Round(time.Millisecond))
	if cliCtx.Bool("stats") || log.IsEnabledFor(log.Debug) {
		var buf bytes.Buffer
		stats.WriteTable(&buf)
		logger.Noticef("render statistics\n%s", buf.String())
	}

	return output.ToneMap(img, encoding), nil
}

// Render a single scene to a PNG file.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	encoding, err := output.ParseEncoding(ctx.String("encoding"))
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	sc, err := createScene(id)
	if err != nil {
		return err
	}
	applyOverrides(ctx, sc)

	runCtx, stop := interruptible()
	defer stop()

	frame, err := renderFrame(runCtx, ctx, sc, encoding)
	if err != nil {
		return err
	}

	path, err := outputPath(ctx, id)
	if err != nil {
		return err
	}
	if err := output.SavePNG(path, frame); err != nil {
		return err
	}
	logger.Noticef("saved %s", path)
	return nil
}

// Render every scene of a sheet and compose them into one PNG file.
func renderSheet(ctx *cli.Context) error {
	setupLogging(ctx)

	encoding, err := output.ParseEncoding(ctx.String("encoding"))
	if err != nil {
		return err
	}

	id := ctx.Args().First()
	if id == "" {
		return errors.New("missing sheet argument")
	}
	sheet, err := scene.CreateSheet(id)
	if err != nil {
		return err
	}

	runCtx, stop := interruptible()
	defer stop()

	frames := make([]image.Image, len(sheet.Scenes))
	for i, sc := range sheet.Scenes {
		applyOverrides(ctx, sc)
		if frames[i], err = renderFrame(runCtx, ctx, sc, encoding); err != nil {
			return fmt.Errorf("rendering %s: %w", sc.Name, err)
		}
	}

	composed, err := output.ContactSheet(frames, sheet.Across)
	if err != nil {
		return err
	}

	path, err := outputPath(ctx, id)
	if err != nil {
		return err
	}
	if err := output.SavePNG(path, composed); err != nil {
		return err
	}
	logger.Noticef("saved %s", path)
	return nil
}

// List the registered scenes and sheets.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	writeSceneTable(&buf)
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func writeSceneTable(buf *bytes.Buffer) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Group", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.Name, info.Group, info.Description})
	}
	table.SetFooter([]string{"SHEETS", strings.Join(scene.SheetIDs(), ", "), "", ""})
	table.Render()
}
