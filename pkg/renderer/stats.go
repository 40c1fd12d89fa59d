package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Number of scanlines rendered
	Workers     int           // Maximum number of rows rendered concurrently
	Duration    time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (rs RenderStats) PixelsPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalPixels) / rs.Duration.Seconds()
}

func (rs RenderStats) String() string {
	return fmt.Sprintf("%d pixels (%d rows) on %d workers in %v",
		rs.TotalPixels, rs.Rows, rs.Workers, rs.Duration.Round(time.Millisecond))
}
