package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

type InspectCmd struct {
	In   string `help:"Input file (defaults to stdin)" short:"i" placeholder:"FILE"`
	JSON bool   `help:"Output in JSON format" short:"j"`
}

func (c *InspectCmd) Run(logger *slog.Logger) error {
	in, err := openInput(c.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	infos, err := inspectFrames(in)
	if err != nil {
		return err
	}
	logger.Debug("inspected", "frames", len(infos))

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Printf("Frames (%d)\n", len(infos))
	fmt.Printf("----------\n")
	if len(infos) == 0 {
		fmt.Printf("  (none)\n")
		return nil
	}
	for _, info := range infos {
		if info.Status == "ok" {
			fmt.Printf("  [%d] %d encoded -> %d decoded\n",
				info.Index, info.Encoded, info.Decoded)
		} else {
			fmt.Printf("  [%d] %d encoded -> %d decoded, truncated (%d missing)\n",
				info.Index, info.Encoded, info.Decoded, info.Missing)
		}
	}
	return nil
}
