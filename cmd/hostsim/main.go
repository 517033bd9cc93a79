// Command hostsim stands in for the motion-foreground loop described in §5:
// it drives one complete move through the plug-in's init/produce lifecycle
// and feeds each segment to a stub downstream planner, the way a real
// G-code interpreter would call segment_line until the terminal sentinel.
package main

import (
	"fmt"

	kinematics "rtcpkinematics"
	"rtcpkinematics/internal/fakehost"

	"go.viam.com/rdk/logging"
)

// plannerBlock stands in for the motion-planner ring-buffer entry the
// module annotates with per-segment feed rate and validity (§1's "out of
// scope" motion-planner ring buffer, reduced to its two observable fields).
type plannerBlock struct {
	feedRate       float64
	rateMultiplier float64
	valid          bool
}

func main() {
	logger := logging.NewLogger("hostsim")

	host := fakehost.New()
	host.TLOz = 12.5

	plugin, err := kinematics.Install(host, kinematics.Geometry{
		PivotX: 0, PivotY: 0, PivotZ: 250,
		AxisOffsetY: 0, AxisOffsetZ: -30,
	}, logger)
	if err != nil {
		logger.Errorf("install failed: %v", err)
		return
	}
	plugin.TurnOn()

	programmedFeed := 1200.0 // mm/min
	position := kinematics.Axes{0, 0, 0, 0, 0}
	target := kinematics.Axes{50, 25, 10, 30, 90}

	seg := plugin.SegmentLineInit(target, position, false)
	block := &plannerBlock{valid: seg.Valid()}
	if !block.valid {
		logger.Warn("move rejected: destination outside travel envelope")
		return
	}

	n := 0
	last := position
	for {
		q, ok := plugin.SegmentLineNext()
		if !ok {
			break
		}
		n++
		last = q
		block.feedRate = programmedFeed * seg.FeedMultiplier()
		block.rateMultiplier = seg.RateMultiplier()
		logger.Debugf("segment %d -> joint %v, feed %.1f mm/min (x%.3f)", n, q, block.feedRate, seg.FeedMultiplier())
		// A real host resets feedRate to programmedFeed before the next
		// produce call, per §4.4's "host planner is responsible for
		// restoring the original feed rate before each produce call."
	}

	fmt.Printf("move complete: %d segments emitted, final joint position %v\n", n, last)
}
