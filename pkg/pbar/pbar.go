// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package pbar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ostafen/gifmaker/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 250

// ProgressBarState tracks a frame-oriented encoding session: how many
// frames have been processed, and how much output has been produced so
// far.
type ProgressBarState struct {
	TotalFrames    int
	DoneFrames     int
	BytesOut       int64
	StartTime      time.Time
	LastUpdateTime time.Time
}

// NewProgressBarState initializes a new ProgressBarState
func NewProgressBarState(totalFrames int) *ProgressBarState {
	return &ProgressBarState{
		TotalFrames: totalFrames,
		StartTime:   time.Now(),
	}
}

// Render updates and prints the progress bar line
func (pbs *ProgressBarState) Render(force bool) {
	if !force && time.Since(pbs.LastUpdateTime) < MinRefreshRate {
		return
	}

	percentage := float64(pbs.DoneFrames) / float64(pbs.TotalFrames) * 100

	barLength := 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen == barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	elapsed := time.Since(pbs.StartTime).Seconds()
	var fps float64
	if elapsed > 0 {
		fps = float64(pbs.DoneFrames) / elapsed
	}

	pbs.LastUpdateTime = time.Now()

	// \r moves the cursor to the beginning of the line; trailing spaces
	// clear leftovers from a previously longer line.
	fmt.Fprintf(os.Stdout, "\r[INFO] Encoding: [%s] %3.0f%% (%d/%d frames) | %s written | @ %.1f fps    ",
		bar,
		percentage,
		pbs.DoneFrames,
		pbs.TotalFrames,
		format.FormatBytes(pbs.BytesOut),
		fps)

	os.Stdout.Sync()
}

// Finish prints a newline, leaving the completed bar on its own line.
func (pbs *ProgressBarState) Finish() {
	fmt.Println()
}
