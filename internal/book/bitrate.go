package book

import "bookbinder/internal/probe"

const fallbackInputBitrate = 128

// TargetBitrate selects the output bitrate in kbps: the max input bitrate
// clamped to [floor, ceiling]. An empty batch or all-unknown bitrates count
// as 128 kbps before clamping.
func TargetBitrate(files []probe.AudioFile, floor, ceiling int) int {
	max := 0
	for _, file := range files {
		if file.BitrateKbps > max {
			max = file.BitrateKbps
		}
	}
	if max == 0 {
		max = fallbackInputBitrate
	}
	if max < floor {
		return floor
	}
	if max > ceiling {
		return ceiling
	}
	return max
}
