// Command bmark embeds and recovers invisible text watermarks in still
// images from the command line.
//
// Usage:
//
//	bmark embed -in IMG -text STR [-alpha F] [-carrier dwt|dct] [-sync] -out DIR
//	bmark extract -original IMG -suspect IMG
//	bmark verify -suspect IMG
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blindmark/blindmark"
	"github.com/blindmark/blindmark/internal/artifact"
	"github.com/blindmark/blindmark/internal/imageio"
	"github.com/blindmark/blindmark/internal/logging"
	"github.com/blindmark/blindmark/internal/settings"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "bmark: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bmark: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  bmark embed -in IMG -text STR [-alpha F] [-carrier dwt|dct] [-sync] -out DIR
  bmark extract -original IMG -suspect IMG
  bmark verify -suspect IMG

Run "bmark <command> -h" for command-specific options.
`)
}

func loadConfig(configFile string) (blindmark.Config, *logging.Logger, error) {
	raw, err := settings.Load(configFile)
	if err != nil {
		return blindmark.Config{}, nil, err
	}
	cfg := blindmark.Config{
		K:          raw.K,
		Delta:      raw.Delta,
		Alpha:      raw.Alpha,
		DCTPairRow: raw.DCTPairRow,
		DCTPairCol: raw.DCTPairCol,
		Sync: blindmark.SyncConfig{
			Frequency:    raw.SyncFrequency,
			AngleDegrees: raw.SyncAngle,
			Strength:     raw.SyncStrength,
			PatchRadius:  raw.SyncPatch,
		},
		Align: blindmark.AlignConfig{
			MaxFeatures:       raw.ORBFeatures,
			ScaleFactor:       raw.ORBScale,
			Levels:            raw.ORBLevels,
			PatchSize:         31,
			FASTThreshold:     20,
			ReprojectionPixel: 5.0,
		},
	}
	if err := cfg.Validate(); err != nil {
		return blindmark.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := logging.New(logging.Config{Level: raw.LogLevel})
	return cfg, log, nil
}

func readImage(path string) (*blindmark.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	px, err := imageio.Decode(f)
	if err != nil {
		return nil, err
	}
	return &blindmark.Image{BGR: px.BGR, Width: px.Width, Height: px.Height}, nil
}

func writeImage(dir, ext string, img *blindmark.Image) (string, error) {
	path := artifact.Path(dir, ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	px := &imageio.Pixels{BGR: img.BGR, Width: img.Width, Height: img.Height}
	if err := imageio.EncodePNG(f, px); err != nil {
		return "", err
	}
	return path, nil
}

func runEmbed(args []string) error {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	in := fs.String("in", "", "input image path")
	text := fs.String("text", "", "message text to embed")
	alpha := fs.Float64("alpha", 0, "embedding strength override (0 = use config default)")
	carrierName := fs.String("carrier", "dwt", "carrier: dwt or dct")
	sync := fs.Bool("sync", false, "embed the DFT sync template")
	heatmap := fs.Bool("heatmap", false, "also write a difference heatmap")
	out := fs.String("out", ".", "output directory")
	configFile := fs.String("config", "", "path to config.yaml")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("embed: -in is required")
	}

	cfg, log, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	carrier := blindmark.CarrierDWTQIM
	if *carrierName == "dct" {
		carrier = blindmark.CarrierDCTPair
	}

	original, err := readImage(*in)
	if err != nil {
		return err
	}

	embedder := blindmark.NewEmbedder(cfg, log)
	result, err := embedder.Embed(original, blindmark.EmbedOptions{
		Text:        *text,
		Alpha:       *alpha,
		Carrier:     carrier,
		EmbedSync:   *sync,
		WithHeatmap: *heatmap,
	})
	if err != nil {
		return err
	}

	outPath, err := writeImage(*out, ".png", result.Image)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (psnr=%.2f ssim=%.4f)\n", outPath, result.Quality.PSNR, result.Quality.SSIM)

	if result.Heatmap != nil {
		heatPath, err := writeImage(*out, ".heatmap.png", result.Heatmap)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", heatPath)
	}
	return nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	originalPath := fs.String("original", "", "original (unwatermarked) image path")
	suspectPath := fs.String("suspect", "", "suspect image path")
	configFile := fs.String("config", "", "path to config.yaml")
	fs.Parse(args)

	if *originalPath == "" || *suspectPath == "" {
		return fmt.Errorf("extract: -original and -suspect are required")
	}

	cfg, log, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	original, err := readImage(*originalPath)
	if err != nil {
		return err
	}
	suspect, err := readImage(*suspectPath)
	if err != nil {
		return err
	}

	extractor := blindmark.NewExtractor(cfg, log)
	result := extractor.Extract(original, suspect)
	fmt.Printf("status=%s text=%q\n", result.Status, result.Text)
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	suspectPath := fs.String("suspect", "", "suspect image path")
	configFile := fs.String("config", "", "path to config.yaml")
	fs.Parse(args)

	if *suspectPath == "" {
		return fmt.Errorf("verify: -suspect is required")
	}

	cfg, log, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	suspect, err := readImage(*suspectPath)
	if err != nil {
		return err
	}

	verifier := blindmark.NewVerifier(cfg, log)
	result := verifier.Verify(suspect)
	fmt.Printf("verified=%v confidence=%.2f rotation=%.2f scale=%.2f text=%q\n",
		result.Verified, result.Confidence, result.Geometry.RotationDetected, result.Geometry.ScaleDetected, result.Text)
	return nil
}
