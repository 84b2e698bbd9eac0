package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

var cli struct {
	Debug bool `help:"Enable debug logging" short:"d"`

	Encode  EncodeCmd  `cmd:"" help:"Encode a payload into a delimited frame"`
	Decode  DecodeCmd  `cmd:"" help:"Decode frames back into payload bytes"`
	Inspect InspectCmd `cmd:"" help:"Describe each frame in the input"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("cobs"),
		kong.Description("Encode and decode byte streams framed with Consistent Overhead Byte Stuffing."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))

	kctx.FatalIfErrorf(kctx.Run(logger))
}

// openInput returns stdin when path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput returns stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
