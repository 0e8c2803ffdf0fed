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

	"github.com/ostafen/gifmaker/internal/format"
	"github.com/ostafen/gifmaker/internal/logger"
	fmtutil "github.com/ostafen/gifmaker/pkg/util/format"
)

func DefineInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "info <file.gif>...",
		Short:        "Inspect the structure of GIF files",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}
}

func RunInfo(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stdout, logger.InfoLevel)

	for _, path := range args {
		info, err := inspectFile(path)
		if err != nil {
			log.Errorf("unable to inspect %s: %s", path, err)
			continue
		}

		loop := "none"
		switch {
		case info.LoopCount == 0:
			loop = "forever"
		case info.LoopCount > 0:
			loop = fmt.Sprintf("%d", info.LoopCount)
		}

		fmt.Printf("%s:\n", path)
		fmt.Printf("  Resolution: \t%dx%d\n", info.Width, info.Height)
		fmt.Printf("  Frames: \t%d\n", info.Frames)
		fmt.Printf("  Animated: \t%v\n", info.Animated())
		fmt.Printf("  Palette: \t%d colors\n", info.GlobalColors)
		fmt.Printf("  Loop: \t%s\n", loop)
		fmt.Printf("  Size: \t%s\n", fmtutil.FormatBytes(int64(info.Size)))
	}
	return nil
}

func inspectFile(path string) (*format.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return format.Inspect(f)
}
