// Command rtcpctl is a small debug harness for the RTCP kinematics plug-in,
// in the spirit of cmd/cli/debug_cli.go: it installs the plug-in against an
// in-memory fake host, runs one representative transform, prints a
// $RTCP-style report, and segments a line.
package main

import (
	"fmt"

	kinematics "rtcpkinematics"
	"rtcpkinematics/internal/fakehost"

	"go.viam.com/rdk/logging"
)

func main() {
	logger := logging.NewLogger("rtcpctl")

	host := fakehost.New()
	host.TLOz = 50

	geometry := kinematics.Geometry{PivotX: 100, PivotY: 100, PivotZ: 100}

	plugin, err := kinematics.Install(host, geometry, logger)
	if err != nil {
		logger.Errorf("install failed: %v", err)
		return
	}

	plugin.TurnOn()

	target := kinematics.Axes{100, 100, 100, 45, 0}
	position := kinematics.Axes{100, 100, 100, 0, 0}

	joint := plugin.TransformFromCartesian(target, position)
	fmt.Printf("inverse(%v) = %v\n", target, joint)

	report := plugin.BuildReport(joint)
	fmt.Println(report.String())

	seg := plugin.SegmentLineInit(target, position, false)
	logger.Infof("initialized=%v valid=%v", seg != nil, seg.Valid())

	count := 0
	for {
		q, ok := plugin.SegmentLineNext()
		if !ok {
			break
		}
		count++
		if count <= 3 || count%50 == 0 {
			fmt.Printf("segment %d: %v feed_mult=%.3f\n", count, q, seg.FeedMultiplier())
		}
	}
	fmt.Printf("move complete: %d segments\n", count)
}
