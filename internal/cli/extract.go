package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jlofstedt/swatch/internal/colour"
	"github.com/jlofstedt/swatch/internal/image"
)

var (
	// Extract command flags
	extractColours       int
	extractMaxDimension  int
	extractMaxIterations int
	extractFormat        string
	extractOutput        string
	extractSort          string
	extractSeed          int64
	extractShowPreview   bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract the dominant colours of an image as a hex palette.

The image is downscaled so its longer side is at most --max-dimension,
the distinct fully-opaque pixel colours are collected, and k-means
clustering reduces them to the requested number of swatches. Images with
fewer distinct colours than requested return every colour they contain.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Extract 6 colours (default) from an image
  swatch extract wallpaper.jpg

  # Extract 8 colours with terminal previews
  swatch extract --preview --colours 8 wallpaper.png

  # Extract colours and output as JSON
  swatch extract --format json wallpaper.jpg

  # Reproducible output for scripting
  swatch extract --seed 42 wallpaper.jpg

  # Extract colours sorted dark to light and save to a file
  swatch extract --sort lightness --output palette.txt wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", colour.DefaultColourCount, "number of colours to extract (1-256)")
	extractCmd.Flags().IntVar(&extractMaxDimension, "max-dimension", colour.DefaultMaxDimension, "downscale bound for the longer image side")
	extractCmd.Flags().IntVar(&extractMaxIterations, "max-iterations", colour.DefaultMaxIterations, "iteration cap for clustering")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, hsl, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().StringVar(&extractSort, "sort", "none", "swatch order (none, lightness)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", -1, "random seed for reproducible clustering (-1: random)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:     colour.AlgorithmKMeans,
		ColourCount:   extractColours,
		MaxDimension:  extractMaxDimension,
		MaxIterations: extractMaxIterations,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	img, err = image.Downscale(img, config.MaxDimension)
	if err != nil {
		return fmt.Errorf("failed to downscale image: %w", err)
	}

	bounds = img.Bounds()
	logger.Debug("sampling bounds", "width", bounds.Dx(), "height", bounds.Dy())

	extractor := colour.NewKMeansExtractor()
	extractor.SetMaxIterations(config.MaxIterations)
	if extractSeed >= 0 {
		extractor.Seed(extractSeed)
	}

	palette, err := extractor.Extract(img, config.ColourCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	logger.Debug("extraction complete", "colours", palette.Len())

	switch extractSort {
	case "none":
	case "lightness":
		colour.SortByLightness(palette.Swatches)
	default:
		return fmt.Errorf("invalid sort order: %s (valid: none, lightness)", extractSort)
	}

	// Previews only make sense on a real terminal.
	preview := extractShowPreview && extractOutput == "" && term.IsTerminal(int(os.Stdout.Fd()))

	output, err := formatPalette(palette, extractFormat, preview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput != "" {
		logger.Debug("writing output", "path", extractOutput)
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}
