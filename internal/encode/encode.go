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

// Package encode drives a full encoding session: input decoding,
// optional resizing, the GIF encode itself, and the surrounding
// logging, progress and report plumbing.
package encode

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/ostafen/gifmaker/internal/env"
	"github.com/ostafen/gifmaker/internal/imageio"
	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/ostafen/gifmaker/pkg/pbar"
	"github.com/ostafen/gifmaker/pkg/report"
	fmtutil "github.com/ostafen/gifmaker/pkg/util/format"
)

type Options struct {
	Output      string
	ReportFile  string
	LoopCount   int  // -1 disables the loop record, 0 loops forever
	ResizeWidth uint // 0 keeps the source width
	DisableLog  bool
	LogLevel    slog.Level
}

// Run decodes every input image, encodes the sequence into a single GIF
// (animated when more than one input is given) and writes it to
// opts.Output.
func Run(inputs []string, opts Options) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no input files given")
	}

	session := GenSessionID()

	var logFilePath string
	if !opts.DisableLog {
		logFilePath = absPath(session + ".log")
	}

	logger, logFile, err := setupLogger(logFilePath, opts.LogLevel)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	fmt.Println("[INFO] Starting encoding session...")
	fmt.Printf("[INFO] Frames: \t%d\n", len(inputs))
	fmt.Printf("[INFO] Destination: \t%s\n", absPath(opts.Output))

	outLog := "disabled"
	if !opts.DisableLog {
		outLog = logFilePath
	}
	fmt.Printf("[INFO] Output Log: \t%s\n", outLog)

	start := time.Now()

	bar := pbar.NewProgressBarState(len(inputs))

	var (
		width, height int
		frames        [][]gif.Pixel
	)
	for _, path := range inputs {
		img, err := loadImage(path, opts.ResizeWidth)
		if err != nil {
			return err
		}

		logger.Debug("decoded frame",
			"file", path, "width", img.Width, "height", img.Height)

		if frames == nil {
			width, height = img.Width, img.Height
		} else if img.Width != width || img.Height != height {
			return fmt.Errorf("frame %q is %dx%d, want %dx%d",
				path, img.Width, img.Height, width, height)
		}
		frames = append(frames, img.Pixels)

		bar.DoneFrames++
		bar.Render(false)
	}

	if width > 0xFFFF || height > 0xFFFF {
		return fmt.Errorf("resolution %dx%d exceeds the GIF limit of 65535", width, height)
	}

	e := gif.Encoder{
		Width:     uint16(width),
		Height:    uint16(height),
		Frames:    frames,
		LoopCount: opts.LoopCount,
	}

	data, err := e.Encode()
	if err != nil {
		logger.Error("encoding failed", "err", err)
		return err
	}

	bar.BytesOut = int64(len(data))
	bar.Render(true)
	bar.Finish()

	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", opts.Output, err)
	}

	if opts.ReportFile != "" {
		if err := writeReport(opts.ReportFile, opts, inputs, width, height, len(data)); err != nil {
			logger.Error("unable to write report", "err", err)
		}
	}

	fmt.Printf("[INFO] Encode completed!\n")
	fmt.Printf("[INFO] Resolution: \t%dx%d\n", width, height)
	fmt.Printf("[INFO] Output size: \t%s\n", fmtutil.FormatBytes(int64(len(data))))
	fmt.Printf("[INFO] Duration: \t%s\n", FormatDurationHMS(time.Since(start)))

	if opts.ReportFile != "" {
		fmt.Printf("[INFO] Report saved to: \t%s\n", absPath(opts.ReportFile))
	}
	return nil
}

// loadImage decodes one source image. PPM files go through the native
// reader; everything else through the registered stdlib decoders. A
// nonzero targetWidth rescales the frame, preserving the aspect ratio.
func loadImage(path string, targetWidth uint) (*imageio.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if filepath.Ext(path) == ".ppm" && targetWidth == 0 {
		img, err := imageio.DecodePPM(f)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", path, err)
		}
		return img, nil
	}

	img, err := decodeAny(f, path)
	if err != nil {
		return nil, err
	}

	if targetWidth != 0 {
		img = resize.Resize(targetWidth, 0, img, resize.Bilinear)
	}
	return flatten(img), nil
}

func decodeAny(r io.Reader, path string) (image.Image, error) {
	if filepath.Ext(path) == ".ppm" {
		img, err := imageio.DecodePPM(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", path, err)
		}
		return img.RGBA(), nil
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return img, nil
}

// flatten converts any image into the row-major pixel grid the encoder
// consumes, dropping alpha.
func flatten(img image.Image) *imageio.Image {
	bounds := img.Bounds()

	out := &imageio.Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]gif.Pixel, 0, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out.Pixels = append(out.Pixels, gif.Pixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return out
}

func writeReport(path string, opts Options, inputs []string, width, height, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := report.NewWriter(f)
	defer w.Close()

	err = w.WriteHeader(report.Header{
		Version: report.Version,
		Creator: report.Creator{
			Package:              env.AppName,
			Version:              env.Version,
			ExecutionEnvironment: report.GetExecEnv(),
		},
	})
	if err != nil {
		return err
	}

	return w.WriteOutput(report.Output{
		Filename:  opts.Output,
		FileSize:  uint64(size),
		Width:     width,
		Height:    height,
		Frames:    len(inputs),
		LoopCount: opts.LoopCount,
		Inputs:    report.Inputs{Files: inputs},
	})
}

func absPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// GenSessionID creates a unique name for an encoding session, in the
// form "encode_YYYYMMDD_HHMMSS".
func GenSessionID() string {
	return "encode_" + time.Now().Format("20060102_150405")
}

// FormatDurationHMS formats a time.Duration into a HH:MM:SS string.
// Sub-second durations are printed with two decimals instead.
func FormatDurationHMS(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	totalSeconds := int64(d.Seconds())

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// setupLogger initializes an slog.Logger writing to the given file, or
// discarding output when the path is empty.
func setupLogger(logFilePath string, minLevel slog.Level) (*slog.Logger, *os.File, error) {
	var writer io.Writer
	var file *os.File

	if logFilePath == "" {
		writer = io.Discard
	} else {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
		}
		writer = f
		file = f
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     minLevel,
		AddSource: true,
	})

	return slog.New(handler), file, nil
}
