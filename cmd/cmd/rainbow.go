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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostafen/gifmaker/internal/logger"
	"github.com/ostafen/gifmaker/pkg/gif"
	"github.com/ostafen/gifmaker/pkg/hsv"
	fmtutil "github.com/ostafen/gifmaker/pkg/util/format"
)

func DefineRainbowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rainbow",
		Short: "Generate a rainbow demo GIF",
		Long: `The 'rainbow' command renders a square hue sweep and encodes it.
With --frames greater than one, the hue rotates across frames and the
output is an infinitely looping animation.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunRainbow,
	}

	cmd.Flags().StringP("output", "o", "rainbow.gif", "path of the encoded GIF")
	cmd.Flags().Int("frames", 36, "number of animation frames")
	cmd.Flags().Int("size", 64, "width and height of the square image")

	return cmd
}

func RunRainbow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	frames, _ := cmd.Flags().GetInt("frames")
	size, _ := cmd.Flags().GetInt("size")

	if frames < 1 || size < 1 || size > 0xFFFF {
		return fmt.Errorf("invalid rainbow geometry: %d frames of %dx%d", frames, size, size)
	}

	log := logger.New(os.Stdout, logger.InfoLevel)
	log.Infof("rendering %d rainbow frame(s) at %dx%d", frames, size, size)

	var data []byte
	var err error
	if frames == 1 {
		data, err = gif.EncodeSingle(uint16(size), uint16(size), RainbowFrame(size, 0))
	} else {
		data, err = gif.EncodeAnimated(uint16(size), uint16(size), RainbowFrames(size, frames), true)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	log.Infof("wrote %s (%s)", output, fmtutil.FormatBytes(int64(len(data))))
	return nil
}

// RainbowFrame renders a size x size grid sweeping the full hue circle
// in row-major order, starting at hueOffset degrees.
func RainbowFrame(size int, hueOffset float64) []gif.Pixel {
	n := size * size

	pixels := make([]gif.Pixel, n)
	for i := range pixels {
		h := hueOffset + 360.0*float64(i)/float64(n)
		pixels[i] = hsv.New(h, 1, 1).Pixel()
	}
	return pixels
}

// RainbowFrames renders the rotating-hue animation: each frame shifts
// the sweep by an equal share of the circle.
func RainbowFrames(size, count int) [][]gif.Pixel {
	frames := make([][]gif.Pixel, count)
	for i := range frames {
		frames[i] = RainbowFrame(size, 360.0*float64(i)/float64(count))
	}
	return frames
}
