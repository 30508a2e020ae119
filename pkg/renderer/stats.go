package renderer

import "time"

// BandStats describes the work a single worker did for one frame
type BandStats struct {
	Band       Band
	Pixels     int
	Samples    int
	Rays       int
	RenderTime time.Duration
}

// FramePercent returns the share of the frame's rows that the band covered
func (bs BandStats) FramePercent(height int) float64 {
	if height == 0 {
		return 0
	}
	return 100 * float64(bs.Band.Rows()) / float64(height)
}

// FrameStats contains statistics about a single rendered frame
type FrameStats struct {
	Frame      int
	Bands      []BandStats
	RenderTime time.Duration
}

// TotalRays returns the number of rays cast across all bands
func (fs FrameStats) TotalRays() int {
	total := 0
	for _, b := range fs.Bands {
		total += b.Rays
	}
	return total
}

// TotalSamples returns the number of camera samples taken across all bands
func (fs FrameStats) TotalSamples() int {
	total := 0
	for _, b := range fs.Bands {
		total += b.Samples
	}
	return total
}

// RaysPerSecond returns the frame's ray throughput
func (fs FrameStats) RaysPerSecond() float64 {
	return raysPerSecond(int64(fs.TotalRays()), fs.RenderTime)
}

// RenderStats accumulates statistics over every pass of a progressive render
type RenderStats struct {
	Passes          int           // Frames blended so far
	SamplesPerPixel int           // Total samples per pixel so far
	Rays            int64         // Total rays cast so far
	RenderTime      time.Duration // Total time spent rendering frames
	LastFrame       FrameStats
}

// Add folds a frame's statistics into the running totals
func (rs *RenderStats) Add(frame FrameStats, samplesPerPixel int) {
	rs.Passes++
	rs.SamplesPerPixel += samplesPerPixel
	rs.Rays += int64(frame.TotalRays())
	rs.RenderTime += frame.RenderTime
	rs.LastFrame = frame
}

// RaysPerSecond returns the average ray throughput over all passes
func (rs RenderStats) RaysPerSecond() float64 {
	return raysPerSecond(rs.Rays, rs.RenderTime)
}

func raysPerSecond(rays int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(rays) / elapsed.Seconds()
}
