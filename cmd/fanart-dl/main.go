package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/tvdb-fanart/internal/config"
	"github.com/handiism/tvdb-fanart/internal/download"
	"github.com/handiism/tvdb-fanart/internal/logging"
)

func main() {
	var (
		inputFlag     = flag.String("input", "", "Series id(s), banners.xml URL(s) or file(s) (comma-separated)")
		configFlag    = flag.String("config", "", "Path to config file")
		outputFlag    = flag.String("output", "", "Output directory (overrides config)")
		apiKeyFlag    = flag.String("api-key", "", "TheTVDB API key (overrides config)")
		thumbsFlag    = flag.Bool("thumbs", true, "Load thumbnails")
		vignettesFlag = flag.Bool("vignettes", false, "Load vignettes")
		saveFlag      = flag.Bool("save", false, "Save loaded images as JPEG files")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag    = flag.Bool("dry-run", false, "List banners without loading images")
	)

	flag.Parse()

	if *inputFlag == "" && flag.NArg() == 0 {
		fmt.Println("TVDB Fan Art - Load fan art from TheTVDB")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  fanart-dl -input <series id | URL | file> [options]")
		fmt.Println("  fanart-dl <series id | URL | file> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: fanart-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *apiKeyFlag != "" {
		settings.APIKey = *apiKeyFlag
	}
	applyBoolFlags(settings, map[string]bool{
		"thumbs":    *thumbsFlag,
		"vignettes": *vignettesFlag,
	}, setFlags())
	if *saveFlag {
		settings.SaveImages = true
	}
	if *verboseFlag {
		settings.Logging.Level = "debug"
	}

	logger, closer := logging.New(settings.Logging, os.Stderr)
	if closer != nil {
		defer closer.Close()
	}

	logger.Debug("settings loaded",
		"config", *configFlag,
		"language", settings.Language,
		"load_thumbs", settings.LoadThumbs,
		"load_vignettes", settings.LoadVignettes,
		"logging", settings.Logging.String())

	input := *inputFlag
	if input == "" {
		input = flag.Arg(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := download.NewManager(settings, logger, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "[error] "
		case download.LevelWarning:
			prefix = "[warn]  "
		case download.LevelSuccess:
			prefix = "[ok]    "
		case download.LevelInfo:
			prefix = "[info]  "
		default:
			prefix = "        "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("TVDB Fan Art")
	fmt.Println("------------------------------------------")
	fmt.Println()

	if err := manager.Initialize(ctx, input); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	for _, name := range manager.GetBannerNames() {
		fmt.Println("  " + name)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not loading images]")
		printSizes(ctx, manager, settings)
		return
	}

	fmt.Println("\nLoading images...")
	fmt.Println()

	if err := manager.StartDownloads(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nLoading cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during loading: %v\n", err)
		os.Exit(1)
	}

	completed, failed, total := manager.GetProgress()
	fmt.Println()
	fmt.Println("------------------------------------------")
	fmt.Printf("Complete! Loaded %d/%d images", completed, total)
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()
	if settings.SaveImages {
		fmt.Printf("Saved to %s\n", settings.OutputPath)
	}
	if failed > 0 {
		os.Exit(2)
	}
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyBoolFlags copies the slot flags into settings, but only those that
// were given explicitly. The others keep their config file values.
func applyBoolFlags(settings *config.Settings, values, set map[string]bool) {
	if set["thumbs"] {
		settings.LoadThumbs = values["thumbs"]
	}
	if set["vignettes"] {
		settings.LoadVignettes = values["vignettes"]
	}
}

func printSizes(ctx context.Context, manager *download.Manager, settings *config.Settings) {
	var slots []download.Slot
	if settings.LoadThumbs {
		slots = append(slots, download.SlotThumb)
	}
	if settings.LoadVignettes {
		slots = append(slots, download.SlotVignette)
	}

	for _, banner := range manager.Banners() {
		for _, slot := range slots {
			size, err := manager.ImageSize(ctx, banner, slot)
			if err != nil {
				fmt.Printf("  #%d %s: %v\n", banner.ID, slot, err)
				continue
			}
			fmt.Printf("  #%d %s: %.1f KB\n", banner.ID, slot, float64(size)/1024)
		}
	}
}
