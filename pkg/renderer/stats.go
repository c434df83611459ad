package renderer

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/olekukonko/tablewriter"
)

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for the noise estimate
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the mean of the samples taken so far
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// StdError returns the standard error of the mean luminance
func (ps *PixelStats) StdError() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := math.Max(0, ps.LuminanceSqAccum/n-mean*mean)
	return math.Sqrt(variance / n)
}

// WorkerStats is what a single worker did during a render
type WorkerStats struct {
	WorkerID int
	Tiles    int
	Pixels   int
	Samples  int
	NoiseSum float64 // Sum of the per-pixel standard errors
	Trace    integrator.TraceStats
	Busy     time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int
	TotalSamples    int
	SamplesPerPixel int
	MeanNoise       float64 // Mean per-pixel standard error of the luminance
	Rays            integrator.TraceStats
	Workers         []WorkerStats
	RenderTime      time.Duration
}

func newRenderStats(width, height, samplesPerPixel int, workers []WorkerStats, renderTime time.Duration) RenderStats {
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Workers:         workers,
		RenderTime:      renderTime,
	}

	var noise float64
	for _, w := range workers {
		stats.TotalPixels += w.Pixels
		stats.TotalSamples += w.Samples
		stats.Rays.Add(w.Trace)
		noise += w.NoiseSum
	}
	if stats.TotalPixels > 0 {
		stats.MeanNoise = noise / float64(stats.TotalPixels)
	}
	return stats
}

// WriteTable renders the per-worker statistics as a text table
func (rs RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Camera rays", "Shadow rays", "Reflected", "Transmitted", "Busy"})
	for _, ws := range rs.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.WorkerID),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%d", ws.Trace.CameraRays),
			fmt.Sprintf("%d", ws.Trace.ShadowRays),
			fmt.Sprintf("%d", ws.Trace.ReflectionRays),
			fmt.Sprintf("%d", ws.Trace.TransmissionRays),
			ws.Busy.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		"",
		fmt.Sprintf("%d", rs.TotalPixels),
		fmt.Sprintf("%d", rs.Rays.CameraRays),
		fmt.Sprintf("%d", rs.Rays.ShadowRays),
		fmt.Sprintf("%d", rs.Rays.ReflectionRays),
		fmt.Sprintf("%d", rs.Rays.TransmissionRays),
		rs.RenderTime.Round(time.Millisecond).String(),
	})
	table.Render()
}
