package main

import (
	"fmt"
	"log/slog"
)

type DecodeCmd struct {
	In  string `help:"Input file (defaults to stdin)" short:"i" placeholder:"FILE"`
	Out string `help:"Output file (defaults to stdout)" short:"o" placeholder:"FILE"`
	All bool   `help:"Decode every frame, not just the first" short:"a"`
}

func (c *DecodeCmd) Run(logger *slog.Logger) error {
	in, err := openInput(c.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := openOutput(c.Out)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	frames, err := decodePipeline(in, out, c.All)
	if err != nil {
		return err
	}
	logger.Debug("decoded", "frames", frames)
	return nil
}
