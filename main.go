package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"ezslider/internal/config"
	"ezslider/internal/domain"
	"ezslider/internal/eventbus"
	"ezslider/internal/markup"
	"ezslider/internal/navigation"
	"ezslider/internal/ui"
)

const localConfigName = ".ezslider.toml"

func main() {
	// Parse command line arguments
	var (
		configPath   string
		target       string
		dots         string
		loop         bool
		rewind       bool
		items        int
		start        int
		transitionMs int
		initConfig   bool
	)
	flag.StringVar(&configPath, "config", "", "Options file (default: "+localConfigName+" next to the page)")
	flag.StringVar(&configPath, "c", "", "Options file (shorthand)")
	flag.StringVar(&target, "target", "", "Selector of the element whose children are the slides")
	flag.StringVar(&target, "t", "", "Target selector (shorthand)")
	flag.StringVar(&dots, "dots", "", "Selector of the dots container")
	flag.BoolVar(&loop, "loop", false, "Wrap around at both ends")
	flag.BoolVar(&rewind, "rewind", false, "Jump to the opposite end when moving past an edge")
	flag.IntVar(&items, "items", 1, "Slides visible at once")
	flag.IntVar(&start, "start", 1, "Slide to start on (1-based)")
	flag.IntVar(&transitionMs, "transition", 250, "Slide animation length in milliseconds")
	flag.BoolVar(&initConfig, "init", false, "Write the effective options to the options file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] page.html\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	page, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Only flags given on the command line override the files
	var flagOpts config.Options
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target", "t":
			flagOpts.Target = target
		case "dots":
			flagOpts.Dots = dots
		case "loop":
			flagOpts.Loop = config.Bool(loop)
		case "rewind":
			flagOpts.Rewind = config.Bool(rewind)
		case "items":
			flagOpts.Items = config.Int(items)
		case "start":
			flagOpts.StartIndex = config.Int(start)
		case "transition":
			flagOpts.TransitionMs = config.Int(transitionMs)
		}
	})

	// Set up logging
	logFile, err := os.OpenFile("ezslider.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded options from %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Options saved to %s", event.Path)
		}
	})

	if configPath == "" {
		configPath = filepath.Join(filepath.Dir(page), localConfigName)
	}
	configSvc := config.NewConfigServiceWithBus(bus)
	opts, err := config.LoadLayered(configSvc, configPath, flagOpts)
	if err != nil {
		fmt.Printf("Error loading options: %v\n", err)
		os.Exit(1)
	}

	if initConfig {
		full := config.Merge(config.Defaults(), opts)
		if err := configSvc.SaveToPath(&full, configPath); err != nil {
			fmt.Printf("Error writing options: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configPath)
		return
	}

	doc, err := markup.ParseFile(page)
	if err != nil {
		fmt.Printf("Error reading page: %v\n", err)
		os.Exit(1)
	}

	res, err := config.Resolve(opts, doc)
	if err != nil {
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Printf("Configuration error on %s: %v", cfgErr.Field, cfgErr.Err)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	nav, err := navigation.New(res.Slider, len(res.Slides), bus)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Slider ready: %d slides, %+v", len(res.Slides), res.Slider)

	// Create UI model
	uiModel := ui.NewModel(bus, nav, res, filepath.Base(page))

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	uiModel.SetProgram(p)

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	if os.Getenv("EZSLIDER_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
