// Package renderer drives tile-parallel rendering of a scene through the
// trace engine and exposes the render configuration surface.
package renderer

import (
	"errors"
	"image"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/log"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/trace"
)

var logger = log.New("renderer")

// Primary rays start slightly off the camera position and are bounded by
// a far limit rather than infinity so the BVH interval tests stay finite
const (
	cameraRayTMin = 0.001
	cameraRayTMax = 1e6
)

// Renderer holds the full render configuration. Configure with the
// setters, then call Render; the scene must be fully built beforehand and
// is treated as read-only for the duration of the render.
type Renderer struct {
	width  int
	height int
	region image.Rectangle

	xPixelSamples int
	yPixelSamples int
	xTileSize     int
	yTileSize     int
	xFilterWidth  float64
	yFilterWidth  float64
	jitter        float64

	startTime float64
	endTime   float64

	castShadow      bool
	maxDiffuseDepth int
	maxReflectDepth int
	maxRefractDepth int

	raymarchStep        float64
	raymarchShadowStep  float64
	raymarchReflectStep float64
	raymarchRefractStep float64

	numWorkers int

	camera *Camera
	target core.TraceTarget

	progress ReportCallbacks
}

// New creates a renderer with default settings
func New() *Renderer {
	r := &Renderer{
		castShadow:      true,
		maxDiffuseDepth: core.DefaultMaxDepth,
		maxReflectDepth: core.DefaultMaxDepth,
		maxRefractDepth: core.DefaultMaxDepth,

		raymarchStep:        core.DefaultRaymarchStep,
		raymarchShadowStep:  core.DefaultRaymarchStep,
		raymarchReflectStep: core.DefaultRaymarchStep,
		raymarchRefractStep: core.DefaultRaymarchStep,

		xPixelSamples: 1,
		yPixelSamples: 1,
		xFilterWidth:  1,
		yFilterWidth:  1,
		jitter:        1,
	}
	r.SetResolution(320, 240)
	r.SetTileSize(64, 64)
	return r
}

// SetResolution sets the output image size and resets the render region
// to the full frame
func (r *Renderer) SetResolution(xres, yres int) {
	r.width = xres
	r.height = yres
	r.region = image.Rect(0, 0, xres, yres)
}

// SetRenderRegion limits rendering to a sub-rectangle of the frame
func (r *Renderer) SetRenderRegion(xmin, ymin, xmax, ymax int) {
	r.region = image.Rect(xmin, ymin, xmax, ymax)
}

// SetPixelSamples sets the per-pixel sample rate along each axis
func (r *Renderer) SetPixelSamples(xrate, yrate int) {
	r.xPixelSamples = max(1, xrate)
	r.yPixelSamples = max(1, yrate)
}

// SetTileSize sets the tile dimensions
func (r *Renderer) SetTileSize(xtilesize, ytilesize int) {
	r.xTileSize = max(1, xtilesize)
	r.yTileSize = max(1, ytilesize)
}

// SetFilterWidth sets the pixel filter extent
func (r *Renderer) SetFilterWidth(xfwidth, yfwidth float64) {
	r.xFilterWidth = xfwidth
	r.yFilterWidth = yfwidth
}

// SetSampleJitter sets the sample jitter amount in [0, 1]
func (r *Renderer) SetSampleJitter(jitter float64) {
	r.jitter = core.Clamp01(jitter)
}

// SetSampleTimeRange sets the shutter interval for motion blur
func (r *Renderer) SetSampleTimeRange(startTime, endTime float64) {
	r.startTime = startTime
	r.endTime = endTime
}

// SetShadowEnable toggles shadow casting
func (r *Renderer) SetShadowEnable(enable bool) {
	r.castShadow = enable
}

// SetMaxDiffuseDepth sets the diffuse ray depth limit
func (r *Renderer) SetMaxDiffuseDepth(maxDepth int) {
	r.maxDiffuseDepth = maxDepth
}

// SetMaxReflectDepth sets the reflection ray depth limit
func (r *Renderer) SetMaxReflectDepth(maxDepth int) {
	r.maxReflectDepth = maxDepth
}

// SetMaxRefractDepth sets the refraction ray depth limit
func (r *Renderer) SetMaxRefractDepth(maxDepth int) {
	r.maxRefractDepth = maxDepth
}

// SetRaymarchStep sets the camera-ray raymarch step
func (r *Renderer) SetRaymarchStep(step float64) {
	r.raymarchStep = step
}

// SetRaymarchShadowStep sets the shadow-ray raymarch step
func (r *Renderer) SetRaymarchShadowStep(step float64) {
	r.raymarchShadowStep = step
}

// SetRaymarchReflectStep sets the reflection-ray raymarch step
func (r *Renderer) SetRaymarchReflectStep(step float64) {
	r.raymarchReflectStep = step
}

// SetRaymarchRefractStep sets the refraction-ray raymarch step
func (r *Renderer) SetRaymarchRefractStep(step float64) {
	r.raymarchRefractStep = step
}

// SetNumWorkers sets the worker thread count (0 = CPU count)
func (r *Renderer) SetNumWorkers(numWorkers int) {
	r.numWorkers = numWorkers
}

// SetCamera binds the camera
func (r *Renderer) SetCamera(camera *Camera) {
	r.camera = camera
}

// SetTargetObjects binds the group camera rays are traced against
func (r *Renderer) SetTargetObjects(target core.TraceTarget) {
	r.target = target
}

// SetReportCallbacks binds the progress callbacks
func (r *Renderer) SetReportCallbacks(callbacks ReportCallbacks) {
	r.progress = callbacks
}

// rootContext builds the camera-ray context for one sample
func (r *Renderer) rootContext(sampleTime float64) core.TraceContext {
	cxt := core.NewCameraContext(r.target)

	cxt.MaxDiffuseDepth = r.maxDiffuseDepth
	cxt.MaxReflectDepth = r.maxReflectDepth
	cxt.MaxRefractDepth = r.maxRefractDepth
	cxt.CastShadow = r.castShadow
	cxt.Time = sampleTime

	cxt.RaymarchStep = r.raymarchStep
	cxt.RaymarchShadowStep = r.raymarchShadowStep
	cxt.RaymarchDiffuseStep = r.raymarchStep
	cxt.RaymarchReflectStep = r.raymarchReflectStep
	cxt.RaymarchRefractStep = r.raymarchRefractStep

	return cxt
}

// Render renders the configured frame and returns the framebuffer
func (r *Renderer) Render() (*Framebuffer, RenderStats, error) {
	if r.camera == nil {
		return nil, RenderStats{}, errors.New("renderer: no camera bound")
	}
	if r.target == nil {
		return nil, RenderStats{}, errors.New("renderer: no target objects bound")
	}

	startedAt := time.Now()

	fb := NewFramebuffer(r.width, r.height)
	tiles := NewTileGrid(r.region, r.xTileSize, r.yTileSize)
	pool := newWorkerPool(r.numWorkers, len(tiles))

	logger.Infof("rendering %dx%d region %v in %d tiles with %d workers",
		r.width, r.height, r.region, len(tiles), pool.numWorkers)

	if r.progress.Start != nil {
		r.progress.Start(len(tiles))
	}

	// The only cross-thread mutable state during the render
	var samplesTraced atomic.Int64

	pool.start(func(tile *Tile, random *rand.Rand) int {
		n := r.renderTile(fb, tile, random)
		samplesTraced.Add(int64(n))
		return n
	})
	for _, tile := range tiles {
		pool.submit(tile)
	}
	go pool.stop()

	tilesDone := 0
	for range pool.resultQueue {
		tilesDone++
		if r.progress.Increment != nil {
			r.progress.Increment(tilesDone, len(tiles))
		}
	}

	if r.progress.Done != nil {
		r.progress.Done()
	}

	stats := RenderStats{
		TotalTiles:   len(tiles),
		TotalPixels:  r.region.Dx() * r.region.Dy(),
		TotalSamples: int(samplesTraced.Load()),
		Workers:      pool.numWorkers,
		RenderTime:   time.Since(startedAt),
	}

	logger.Infof("render finished in %v (%d samples)", stats.RenderTime, stats.TotalSamples)

	return fb, stats, nil
}

// renderTile renders every pixel of one tile sequentially and returns the
// number of samples traced
func (r *Renderer) renderTile(fb *Framebuffer, tile *Tile, random *rand.Rand) int {
	samples := 0

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			fb.SetPixel(x, y, r.renderPixel(x, y, random))
			samples += r.xPixelSamples * r.yPixelSamples
		}
	}

	return samples
}

// renderPixel averages the configured sample grid over one pixel
func (r *Renderer) renderPixel(x, y int, random *rand.Rand) core.Color4 {
	var accum core.Color4

	for sy := 0; sy < r.yPixelSamples; sy++ {
		for sx := 0; sx < r.xPixelSamples; sx++ {
			// Stratified sample position with optional jitter, scaled by
			// the filter width around the pixel center
			jx := 0.5 + r.jitter*(random.Float64()-0.5)
			jy := 0.5 + r.jitter*(random.Float64()-0.5)

			px := float64(x) + 0.5 + r.xFilterWidth*((float64(sx)+jx)/float64(r.xPixelSamples)-0.5)
			py := float64(y) + 0.5 + r.yFilterWidth*((float64(sy)+jy)/float64(r.yPixelSamples)-0.5)

			s := px / float64(r.width)
			t := py / float64(r.height)

			sampleTime := r.startTime
			if r.endTime > r.startTime {
				sampleTime += random.Float64() * (r.endTime - r.startTime)
			}

			cxt := r.rootContext(sampleTime)
			origin, direction := r.camera.GenerateRay(s, t)

			rgba, _, _ := trace.Trace(&cxt, origin, direction, cameraRayTMin, cameraRayTMax)
			accum.R += rgba.R
			accum.G += rgba.G
			accum.B += rgba.B
			accum.A += rgba.A
		}
	}

	inv := 1 / float64(r.xPixelSamples*r.yPixelSamples)
	return core.Color4{R: accum.R * inv, G: accum.G * inv, B: accum.B * inv, A: accum.A * inv}
}
