// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/steptime/timeline"
)

// parseSegments turns "count:step" items into segments. An item may hold
// several segments separated by commas, so values coming from a single
// environment variable parse the same way as repeated flags.
func parseSegments(items []string) ([]timeline.Segment[float64], error) {
	var segs []timeline.Segment[float64]
	for _, item := range items {
		for _, raw := range strings.Split(item, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			seg, err := parseSegment(raw)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		}
	}

	return segs, nil
}

func parseSegment(raw string) (timeline.Segment[float64], error) {
	countStr, stepStr, ok := strings.Cut(raw, ":")
	if !ok {
		return timeline.Segment[float64]{}, errors.Newf("segment %q: want count:step", raw)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil {
		return timeline.Segment[float64]{}, errors.Wrapf(err, "segment %q: count", raw)
	}
	step, err := strconv.ParseFloat(strings.TrimSpace(stepStr), 64)
	if err != nil {
		return timeline.Segment[float64]{}, errors.Wrapf(err, "segment %q: step", raw)
	}
	seg, err := timeline.NewSegment(step, count)
	if err != nil {
		return timeline.Segment[float64]{}, errors.Wrapf(err, "segment %q", raw)
	}

	return seg, nil
}
