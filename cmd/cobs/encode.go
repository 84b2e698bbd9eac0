package main

import (
	"fmt"
	"log/slog"
)

type EncodeCmd struct {
	In      string `help:"Input file (defaults to stdin)" short:"i" placeholder:"FILE"`
	Out     string `help:"Output file (defaults to stdout)" short:"o" placeholder:"FILE"`
	NoDelim bool   `help:"Do not append the frame delimiter" name:"no-delim"`
}

func (c *EncodeCmd) Run(logger *slog.Logger) error {
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

	n, err := encodePipeline(in, out, !c.NoDelim)
	if err != nil {
		return err
	}
	logger.Debug("encoded one frame", "payload_bytes", n)
	return nil
}
