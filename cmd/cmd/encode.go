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
	"github.com/spf13/cobra"

	"github.com/ostafen/gifmaker/internal/encode"
	"github.com/ostafen/gifmaker/internal/logger"
)

func DefineEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <image>...",
		Short: "Encode one or more images into a GIF",
		Long: `The 'encode' command turns a list of source images into a single GIF file.
A single input produces a still image; multiple inputs become the frames
of an animation, in argument order. PPM (P6/P3), PNG, JPEG and GIF
inputs are accepted; every frame must have the same dimensions.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunEncode,
	}

	cmd.Flags().StringP("output", "o", "out.gif", "path of the encoded GIF")
	cmd.Flags().Int("loop", 0, "animation loop count (0 loops forever)")
	cmd.Flags().Bool("no-loop", false, "omit the loop record, play the animation once")
	cmd.Flags().Uint("width", 0, "resize frames to the given width, keeping aspect ratio")
	cmd.Flags().String("report", "", "write an XML session report to the given path")
	cmd.Flags().Bool("no-log", false, "disable logging")
	cmd.Flags().String("log-level", "INFO", "minimum level for the session log file")

	return cmd
}

func RunEncode(cmd *cobra.Command, args []string) error {
	return encode.Run(args, parseOptions(cmd))
}

func parseOptions(cmd *cobra.Command) encode.Options {
	output, _ := cmd.Flags().GetString("output")
	reportFile, _ := cmd.Flags().GetString("report")
	loop, _ := cmd.Flags().GetInt("loop")
	noLoop, _ := cmd.Flags().GetBool("no-loop")
	width, _ := cmd.Flags().GetUint("width")
	disableLog, _ := cmd.Flags().GetBool("no-log")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if noLoop {
		loop = -1
	}

	return encode.Options{
		Output:      output,
		ReportFile:  reportFile,
		LoopCount:   loop,
		ResizeWidth: width,
		DisableLog:  disableLog,
		LogLevel:    logger.ParseLevel(logLevel).Slog(),
	}
}
