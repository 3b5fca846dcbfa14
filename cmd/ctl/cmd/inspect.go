package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jpfielding/pixfilt.go/pkg/pngio"
	"github.com/jpfielding/pixfilt.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect cobra command
func NewInspectCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print PNG geometry and channel statistics",
		Long:  "Decodes a PNG the same way apply does and reports the flattened buffer's shape, digest, and per-channel range.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runInspect(filePath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "PNG file path to inspect")

	return cmd
}

// runInspect dumps the decoded buffer's shape and per-channel statistics
func runInspect(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	rgb, width, height, err := pngio.DecodeRGB(f)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Printf("Geometry: %dx%d (%d pixels, %d bytes RGB)\n", width, height, width*height, len(rgb))
	fmt.Printf("Digest: %s\n", util.Digest(rgb))

	if width*height == 0 {
		fmt.Println("No pixel data")
		return nil
	}

	names := [3]string{"R", "G", "B"}
	for c := 0; c < 3; c++ {
		minV, maxV, sum := 255, 0, 0
		for i := c; i < len(rgb); i += 3 {
			v := int(rgb[i])
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			sum += v
		}
		fmt.Printf("%s: min=%d max=%d mean=%.1f\n", names[c], minV, maxV, float64(sum)/float64(width*height))
	}
	return nil
}
