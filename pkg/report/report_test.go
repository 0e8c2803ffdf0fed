package report_test

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/ostafen/gifmaker/pkg/report"
	"github.com/stretchr/testify/require"
)

type reportDoc struct {
	XMLName xml.Name `xml:"gifreport"`
	Version string   `xml:"version,attr"`
	Creator struct {
		Package string `xml:"package"`
		Version string `xml:"version"`
		Env     struct {
			OS   string `xml:"os_sysname"`
			Host string `xml:"host"`
		} `xml:"execution_environment"`
	} `xml:"creator"`
	Outputs []struct {
		Filename  string   `xml:"filename"`
		FileSize  uint64   `xml:"filesize"`
		Width     int      `xml:"width"`
		Height    int      `xml:"height"`
		Frames    int      `xml:"frames"`
		LoopCount int      `xml:"loop_count"`
		Inputs    []string `xml:"inputs>file"`
	} `xml:"output"`
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	w := report.NewWriter(&buf)

	err := w.WriteHeader(report.Header{
		Version: report.Version,
		Creator: report.Creator{
			Package:              "gifmaker",
			Version:              "test",
			ExecutionEnvironment: report.GetExecEnv(),
		},
	})
	require.NoError(t, err)

	err = w.WriteOutput(report.Output{
		Filename:  "out.gif",
		FileSize:  1234,
		Width:     64,
		Height:    48,
		Frames:    3,
		LoopCount: 0,
		Inputs:    report.Inputs{Files: []string{"a.ppm", "b.ppm", "c.ppm"}},
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var doc reportDoc
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	require.Equal(t, report.Version, doc.Version)
	require.Equal(t, "gifmaker", doc.Creator.Package)
	require.NotEmpty(t, doc.Creator.Env.OS)

	require.Len(t, doc.Outputs, 1)
	out := doc.Outputs[0]
	require.Equal(t, "out.gif", out.Filename)
	require.Equal(t, uint64(1234), out.FileSize)
	require.Equal(t, 64, out.Width)
	require.Equal(t, 3, out.Frames)
	require.Equal(t, []string{"a.ppm", "b.ppm", "c.ppm"}, out.Inputs)
}
