package encoding

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"bookbinder/internal/logging"
)

// progressValue extracts the elapsed output time from one line of ffmpeg's
// -progress stream. Returns -1 for lines that carry no time information.
// Modern builds emit out_time_us; older ones emit out_time_ms with the same
// microsecond payload.
func progressValue(line string) int64 {
	key, raw, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return -1
	}
	if key != "out_time_us" && key != "out_time_ms" {
		return -1
	}
	micros, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || micros < 0 {
		return -1
	}
	return micros / 1000
}

// consumeProgress scans the progress stream and invokes update with each
// elapsed-milliseconds value. It drains the reader fully so the child process
// never blocks on a full pipe.
func consumeProgress(r io.Reader, update func(elapsedMS int64)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ms := progressValue(scanner.Text()); ms >= 0 {
			update(ms)
		}
	}
}

// reporter renders encode progress. On a terminal it drives a progress bar;
// otherwise it emits a sampled log line so non-interactive runs still show
// liveness without flooding the output.
type reporter struct {
	totalMS int64
	bar     *progressbar.ProgressBar
	logger  *slog.Logger
	lastLog time.Time
}

const logSampleInterval = 15 * time.Second

func newReporter(totalMS int64, logger *slog.Logger) *reporter {
	r := &reporter{totalMS: totalMS, logger: logger}
	if isatty.IsTerminal(os.Stderr.Fd()) && totalMS > 0 {
		r.bar = progressbar.NewOptions64(totalMS,
			progressbar.OptionSetDescription("encoding"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionThrottle(250*time.Millisecond),
		)
	}
	return r
}

func (r *reporter) update(elapsedMS int64) {
	if elapsedMS > r.totalMS && r.totalMS > 0 {
		elapsedMS = r.totalMS
	}
	if r.bar != nil {
		_ = r.bar.Set64(elapsedMS)
		return
	}
	if r.logger == nil || time.Since(r.lastLog) < logSampleInterval {
		return
	}
	r.lastLog = time.Now()
	percent := 0.0
	if r.totalMS > 0 {
		percent = float64(elapsedMS) / float64(r.totalMS) * 100
	}
	r.logger.Info("encoding",
		logging.Int64("elapsed_ms", elapsedMS),
		logging.Int64("total_ms", r.totalMS),
		logging.Float64("percent", percent))
}

func (r *reporter) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}
