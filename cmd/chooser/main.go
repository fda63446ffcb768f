package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/robottwo/chooser/internal/config"
	"github.com/robottwo/chooser/internal/core"
	"github.com/robottwo/chooser/internal/history"
	"github.com/robottwo/chooser/internal/styles"
	"github.com/robottwo/chooser/pkg/choice"
	"github.com/robottwo/chooser/pkg/prompt"
)

var BUILD_VERSION = "dev"

//go:embed menu.default.yaml
var DEFAULT_MENU embed.FS

const defaultMenuPath = "menu.default.yaml"

// Exit codes: 0 when a choice was confirmed, 1 when the user cancelled,
// 2 when the prompt could not be shown at all.
const (
	exitSelected = 0
	exitCancel   = 1
	exitUnusable = 2
)

var menuFile = flag.String("f", "", "load the menu definition from a YAML file")
var noHistory = flag.Bool("no-history", false, "do not record or resolve answers from the answer history")

var helpFlag bool
var versionFlag bool

func init() {
	flag.BoolVar(&helpFlag, "h", false, "display help information")
	flag.BoolVar(&helpFlag, "help", false, "display help information")

	flag.BoolVar(&versionFlag, "v", false, "display build version")
	flag.BoolVar(&versionFlag, "version", false, "display build version")

	if err := zap.RegisterSink("zstd", newCompressedSink); err != nil {
		panic(fmt.Sprintf("failed to register zstd sink: %v", err))
	}
}

func main() {
	flag.Parse()

	if versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if helpFlag {
		printUsage()
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "chooser: stdin is not a terminal")
		os.Exit(exitUnusable)
	}

	logger, err := initializeLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chooser: failed to initialize logger: %v\n", err)
		os.Exit(exitUnusable)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("-------- new chooser session --------", zap.Any("args", os.Args))

	menu, err := loadMenu()
	if err != nil {
		logger.Error("failed to load menu definition", zap.Error(err))
		fmt.Fprintf(os.Stderr, "chooser: %v\n", err)
		os.Exit(exitUnusable)
	}

	// The answer history is optional; a broken database must not keep the
	// prompt from showing.
	var store *history.Store
	if !*noHistory {
		store, err = history.NewStore(core.AnswersFile())
		if err != nil {
			logger.Warn("failed to open answer history", zap.Error(err))
			store = nil
		} else {
			defer func() {
				if err := store.Close(); err != nil {
					logger.Warn("failed to close answer history", zap.Error(err))
				}
			}()
		}
	}

	os.Exit(run(menu, store, logger))
}

func run(menu *config.Menu, store *history.Store, logger *zap.Logger) int {
	choices := menu.ChoiceList()

	opts := menu.PromptOptions()
	opts.Logger = logger
	if menu.WantsLastAnswer() && store != nil {
		if answer, found, err := store.LastAnswer(menu.HistoryID()); err != nil {
			logger.Warn("failed to look up last answer", zap.Error(err))
		} else if found {
			opts.Default = defaultForAnswer(choices, answer)
		}
	}

	result, err := prompt.Run(choices, opts)
	if errors.Is(err, prompt.ErrInterrupted) {
		return exitCancel
	}
	if err != nil {
		logger.Error("prompt failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "chooser: %v\n", err)
		return exitUnusable
	}

	answer := fmt.Sprint(result.Answer)
	if store != nil {
		if err := store.Record(menu.HistoryID(), answer, result.Action); err != nil {
			logger.Warn("failed to record answer", zap.Error(err))
		}
	}

	if result.Action != "" {
		fmt.Printf("%s\t%s\n", result.Action, answer)
	} else {
		fmt.Println(answer)
	}
	return exitSelected
}

func loadMenu() (*config.Menu, error) {
	if *menuFile != "" {
		return config.Load(*menuFile)
	}
	return config.LoadFS(DEFAULT_MENU, defaultMenuPath)
}

// defaultForAnswer maps a recorded answer string back to the matching
// choice value. Recorded answers are strings while menu values may not
// be, so compare against the rendered form.
func defaultForAnswer(choices []choice.Choice, answer string) any {
	for _, c := range choices {
		if c.Selectable() && fmt.Sprint(c.Value) == answer {
			return c.Value
		}
	}
	return nil
}

func initializeLogger() (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevelAt(zap.WarnLevel)
	if level := os.Getenv("CHOOSER_LOG_LEVEL"); level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid CHOOSER_LOG_LEVEL: %w", err)
		}
		logLevel = parsed
	}
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		"zstd://" + core.LogFile(),
	}
	return loggerConfig.Build()
}

func printUsage() {
	fmt.Println(styles.MESSAGE("Usage:") + " chooser [flags]")
	fmt.Println("\nAn interactive single-select list prompt driven by YAML menus.")
	fmt.Println()
	fmt.Println(styles.MESSAGE("Options:"))

	printed := make(map[string]bool)
	flag.VisitAll(func(f *flag.Flag) {
		if printed[f.Name] {
			return
		}

		aliases := []string{f.Name}
		flag.VisitAll(func(p *flag.Flag) {
			if p.Name == f.Name {
				return
			}
			if p.Usage == f.Usage {
				aliases = append(aliases, p.Name)
				printed[p.Name] = true
			}
		})
		printed[f.Name] = true

		var shortFlags, longFlags []string
		for _, name := range aliases {
			if len(name) == 1 {
				shortFlags = append(shortFlags, "-"+name)
			} else {
				longFlags = append(longFlags, "-"+name)
			}
		}

		flagStr := strings.Join(append(shortFlags, longFlags...), ", ")
		argName, usage := flag.UnquoteUsage(f)
		if argName != "" {
			flagStr += " <" + argName + ">"
		}

		fmt.Printf("  %-24s %s\n", flagStr, usage)
	})

	fmt.Println()
	fmt.Println(styles.MESSAGE("Exit codes:"))
	fmt.Printf("  %-24s %s\n", "0", "a choice was confirmed")
	fmt.Printf("  %-24s %s\n", "1", "the prompt was cancelled")
	fmt.Printf("  %-24s %s\n", "2", "the prompt could not be shown")
}
