package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jpfielding/pixfilt.go/pkg/filter"
	"github.com/jpfielding/pixfilt.go/pkg/pngio"
	"github.com/jpfielding/pixfilt.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewApplyCmd creates the apply cobra command
func NewApplyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a filter to a PNG image",
		Long:  "Decodes a PNG, applies the selected filter to its RGB pixels, and writes the result as a new PNG (greyscale output for greyscale/laplace, color otherwise).",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("filter")
			inPath, _ := cmd.Flags().GetString("input-file")
			outPath, _ := cmd.Flags().GetString("output-file")
			strength, _ := cmd.Flags().GetInt("blur-strength")

			if inPath == "" && len(args) > 0 {
				inPath = args[0]
			}
			if inPath == "" {
				return fmt.Errorf("input file is required. Use --input-file flag or provide as argument")
			}
			if outPath == "" {
				outPath = filepath.Join(filepath.Dir(inPath), "out-"+filepath.Base(inPath))
			}

			return runApply(ctx, name, inPath, outPath, strength)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("filter", "F", "greyscale", "Filter to apply (greyscale|invert|gaussian|laplace)")
	pf.StringP("input-file", "I", "", "PNG file to read")
	pf.StringP("output-file", "O", "", "PNG file to write (default out-<input> next to the input)")
	pf.Int("blur-strength", 10, "Gaussian strength; sigma is strength/10")

	return cmd
}

// runApply decodes one PNG, runs the named filter, and re-encodes the result
func runApply(ctx context.Context, name, inPath, outPath string, strength int) error {
	start := time.Now()

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %v", err)
	}
	defer in.Close()

	rgb, width, height, err := pngio.DecodeRGB(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	slog.InfoContext(ctx, "decoded input",
		"file", inPath,
		"width", width,
		"height", height,
		"digest", util.Digest(rgb),
	)

	var out []byte
	grey := false
	switch name {
	case "greyscale":
		out, err = filter.Greyscale(rgb)
		grey = true
	case "invert":
		out, err = filter.Invert(rgb)
	case "gaussian":
		out, err = filter.GaussianBlur(rgb, width, height, strength)
	case "laplace":
		out, err = filter.LaplacianEdges(rgb, width, height)
		grey = true
	default:
		return fmt.Errorf("unknown filter %q (greyscale|invert|gaussian|laplace)", name)
	}
	if err != nil {
		return fmt.Errorf("applying %s: %w", name, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()

	if grey {
		err = pngio.EncodeGrey(f, out, width, height)
	} else {
		err = pngio.EncodeRGB(f, out, width, height)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}

	slog.InfoContext(ctx, "filter applied",
		"filter", name,
		"output", outPath,
		"elapsed", time.Since(start),
	)
	return nil
}
