package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a single frame and write it to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := sceneFromFlags(ctx)
	if err != nil {
		return err
	}

	spp := s.SamplingConfig.SamplesPerPixel
	if ctx.Int("spp") > 0 {
		spp = ctx.Int("spp")
	}

	rt, err := renderer.NewRaytracer(s, ctx.Int("workers"), ctx.Int64("seed"), logger)
	if err != nil {
		return err
	}
	logHostInfo(len(rt.Bands()))

	logger.Noticef("rendering scene %q at %dx%d with %d samples per pixel", s.Name, s.SamplingConfig.Width, s.SamplingConfig.Height, spp)
	frame, stats, err := rt.RenderFrame(0, spp)
	if err != nil {
		return err
	}
	displayFrameStats(stats)

	return writeFrame(ctx.String("out"), frame)
}

// Render passes progressively, overwriting the output file after each one.
// An interrupt stops the render after the current pass.
func RenderProgressive(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := sceneFromFlags(ctx)
	if err != nil {
		return err
	}

	config := renderer.DefaultProgressiveConfig()
	config.MaxPasses = ctx.Int("passes")
	config.SamplesPerPass = ctx.Int("spp")
	config.NumWorkers = ctx.Int("workers")
	config.Seed = ctx.Int64("seed")

	pr, err := renderer.NewProgressiveRaytracer(s, config, logger)
	if err != nil {
		return err
	}
	logHostInfo(len(pr.Raytracer().Bands()))

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Noticef("progressively rendering scene %q at %dx%d for up to %d passes", s.Name, s.SamplingConfig.Width, s.SamplingConfig.Height, pr.Config().MaxPasses)
	passes, errs := pr.RenderProgressive(renderCtx)

	var last renderer.PassResult
	for pass := range passes {
		last = pass
		logger.Infof("pass %d: %d spp, %.0f rays/sec", pass.PassNumber, pass.Stats.SamplesPerPixel, pass.Stats.RaysPerSecond())
		if err := writeFrame(ctx.String("out"), pass.Frame); err != nil {
			return err
		}
	}
	if err := <-errs; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if last.PassNumber == 0 {
		logger.Warning("render interrupted before the first pass completed")
		return nil
	}
	if !last.IsLast {
		logger.Noticef("render interrupted after %d passes", last.PassNumber)
	}
	displayFrameStats(last.Stats.LastFrame)
	logger.Noticef("accumulated %d passes (%d spp) in %s", last.Stats.Passes, last.Stats.SamplesPerPixel, last.Stats.RenderTime.Truncate(time.Millisecond))
	return nil
}

func sceneFromFlags(ctx *cli.Context) (*scene.Scene, error) {
	s, err := scene.ByName(ctx.String("scene"), ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return nil, err
	}
	if depth := ctx.Int("depth"); depth > 0 {
		s.SamplingConfig.MaxDepth = depth
	}
	return s, nil
}

func writeFrame(path string, frame *renderer.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer f.Close()

	if err := frame.WritePNG(f); err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}
	logger.Infof("wrote frame to %s", path)
	return f.Close()
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "% of frame", "Rays", "Render time"})

	height := 0
	for _, band := range stats.Bands {
		height += band.Band.Rows()
	}

	for _, band := range stats.Bands {
		table.Append([]string{
			fmt.Sprintf("%d", band.Band.Index),
			fmt.Sprintf("%d-%d", band.Band.Y0, band.Band.Y1-1),
			fmt.Sprintf("%02.1f %%", band.FramePercent(height)),
			fmt.Sprintf("%d", band.Rays),
			band.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"",
		"",
		"TOTAL",
		fmt.Sprintf("%d", stats.TotalRays()),
		stats.RenderTime.String(),
	})
	table.Render()
	return buf.String()
}
