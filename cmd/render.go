package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/renderer"
)

// RenderFrame renders a still frame of one of the built-in scenes.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")

	group, camera, err := buildScene(ctx.String("scene"), float64(width)/float64(height))
	if err != nil {
		return err
	}

	r := renderer.New()
	r.SetResolution(width, height)
	r.SetTileSize(ctx.Int("tile-size"), ctx.Int("tile-size"))
	r.SetPixelSamples(ctx.Int("spp"), ctx.Int("spp"))
	r.SetSampleJitter(ctx.Float64("jitter"))
	r.SetFilterWidth(ctx.Float64("filter-width"), ctx.Float64("filter-width"))
	r.SetShadowEnable(!ctx.Bool("no-shadows"))
	r.SetMaxReflectDepth(ctx.Int("max-reflect-depth"))
	r.SetMaxRefractDepth(ctx.Int("max-refract-depth"))
	r.SetRaymarchStep(ctx.Float64("raymarch-step"))
	r.SetRaymarchShadowStep(ctx.Float64("raymarch-step"))
	r.SetRaymarchReflectStep(ctx.Float64("raymarch-step"))
	r.SetRaymarchRefractStep(ctx.Float64("raymarch-step"))
	r.SetSampleTimeRange(0, ctx.Float64("shutter"))
	r.SetNumWorkers(ctx.Int("workers"))
	r.SetCamera(camera)
	r.SetTargetObjects(group)

	r.SetReportCallbacks(renderer.ReportCallbacks{
		Increment: func(done, total int) {
			logger.Infof("tile %d/%d done", done, total)
		},
	})

	fb, stats, err := r.Render()
	if err != nil {
		return err
	}

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, fb.Image()); err != nil {
		return err
	}

	displayFrameStats(out, stats)
	return nil
}

func displayFrameStats(out string, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Output", "Tiles", "Pixels", "Samples", "Workers", "Render time"})
	table.Append([]string{
		out,
		fmt.Sprintf("%d", stats.TotalTiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Workers),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
