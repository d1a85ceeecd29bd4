package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/patchvision/histogram-tools/internal/gradient"
	"github.com/patchvision/histogram-tools/internal/histogram"
	"github.com/patchvision/histogram-tools/internal/imaging"
	"github.com/patchvision/histogram-tools/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("histogram-tools %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("histogram-tools - color/gradient histogram demo")
			fmt.Println()
			fmt.Println("Usage: histogram-tools [options] <imageA> <imageB>")
			fmt.Println()
			fmt.Println("Computes the default normalized color histogram of both images,")
			fmt.Println("prints their size-weighted intersection score, and prints the")
			fmt.Println("L1 norm of imageA's gradient-orientation descriptor.")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  --plot FILE      Write imageA's histogram as a PNG bar chart")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  HISTOGRAM_TOOLS_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Human-readable logs on stderr; stdout carries only the scores.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if os.Getenv("HISTOGRAM_TOOLS_LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var paths []string
	plotPath := ""
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		if args[i] == "--plot" {
			if i+1 >= len(args) {
				log.Fatal().Msg("--plot requires a file argument")
			}
			i++
			plotPath = args[i]
			continue
		}
		paths = append(paths, args[i])
	}
	if len(paths) != 2 {
		log.Fatal().Msg("expected exactly two image paths (see --help)")
	}

	if err := run(paths[0], paths[1], plotPath); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}

func run(pathA, pathB, plotPath string) error {
	cache := imaging.NewImageCache()

	pxA, err := cache.LoadPixels(pathA)
	if err != nil {
		return err
	}
	pxB, err := cache.LoadPixels(pathB)
	if err != nil {
		return err
	}

	histA, err := histogram.ComputeNormalized(pxA,
		histogram.DefaultChannels(), histogram.DefaultBins(), histogram.DefaultRanges(), nil)
	if err != nil {
		return err
	}
	histB, err := histogram.ComputeNormalized(pxB,
		histogram.DefaultChannels(), histogram.DefaultBins(), histogram.DefaultRanges(), nil)
	if err != nil {
		return err
	}

	score, err := histogram.WeightedIntersection(
		histA, float64(pxA.Height*pxA.Width),
		histB, float64(pxB.Height*pxB.Width))
	if err != nil {
		return err
	}

	fmt.Printf("Histogram comparison value: %v\n", score)
	fmt.Printf("Histogram A bins: %d | Histogram B bins: %d\n", len(histA), len(histB))

	desc, err := gradient.Descriptor(pxA, gradient.DefaultOptions())
	if err != nil {
		return err
	}
	var l1 float64
	for _, v := range desc {
		l1 += math.Abs(float64(v))
	}
	fmt.Printf("L1 norm of descriptor: %v\n", l1)

	if plotPath != "" {
		if err := render.Save(plotPath, histA, 512, 256); err != nil {
			return err
		}
		log.Info().Str("path", plotPath).Msg("wrote histogram chart")
	}
	return nil
}
