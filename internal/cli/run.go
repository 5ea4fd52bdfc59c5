package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eden-eldith/trialhex/internal/blind"
	"github.com/eden-eldith/trialhex/internal/cli/tui"
	"github.com/eden-eldith/trialhex/internal/config"
	"github.com/eden-eldith/trialhex/internal/events"
	"github.com/eden-eldith/trialhex/internal/ledger"
	"github.com/eden-eldith/trialhex/internal/openrouter"
	"github.com/eden-eldith/trialhex/internal/registry"
	"github.com/eden-eldith/trialhex/internal/report"
	"github.com/eden-eldith/trialhex/internal/review"
	"github.com/eden-eldith/trialhex/internal/synthesis"
)

// RunOptions holds flag values for the run command
type RunOptions struct {
	Input       string
	Output      string
	Set         string
	Registry    string
	Concurrency int
	Timeout     string
	MinQuorum   int
	Ledger      string
	NoTUI       bool
}

// NewRunCmd creates the run command
func NewRunCmd(app *App) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <input> <output>",
		Short: "Run a blind peer review on a document",
		Long: `Reads the input document, strips identity markers, collects blind
reviews from every reviewer in the set concurrently, synthesizes them
into a consensus summary with a verdict, and writes a markdown report.

A failed reviewer never aborts the run; the report records what was
and was not reviewed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Output = args[1]

			cfg, err := config.LoadConfig(".")
			if err != nil {
				return err
			}

			// Explicit flags beat config file values
			f := cmd.Flags()
			if f.Changed("set") {
				cfg.Set = opts.Set
			}
			if f.Changed("registry") {
				cfg.RegistryPath = opts.Registry
			}
			if f.Changed("concurrency") {
				cfg.Concurrency = opts.Concurrency
			}
			if f.Changed("timeout") {
				cfg.Timeout = opts.Timeout
			}
			if f.Changed("min-quorum") {
				cfg.MinQuorum = opts.MinQuorum
			}
			if f.Changed("ledger") {
				cfg.LedgerPath = opts.Ledger
			}
			if opts.NoTUI {
				cfg.NoTUI = true
			}
			if app.verbose {
				cfg.Verbose = true
			}

			return app.runReview(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Set, "set", config.DefaultSet,
		"Reviewer set: standard (6) or plus (12)")
	cmd.Flags().StringVar(&opts.Registry, "registry", "",
		"YAML file with a custom reviewer roster")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", config.DefaultConcurrency,
		"Maximum reviewers in flight at once")
	cmd.Flags().StringVar(&opts.Timeout, "timeout", config.DefaultTimeout,
		"Global deadline for the whole run")
	cmd.Flags().IntVar(&opts.MinQuorum, "min-quorum", config.DefaultMinQuorum,
		"Fewest successful reviews worth synthesizing")
	cmd.Flags().StringVar(&opts.Ledger, "ledger", "",
		"SQLite file recording run history")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false,
		"Plain log output instead of the live board")

	return cmd
}

// runReview executes the full pipeline: blind, dispatch, collect,
// synthesize, report. Configuration problems abort before any network
// call; reviewer and synthesis failures degrade the report instead.
func (a *App) runReview(ctx context.Context, cfg *config.Config, opts *RunOptions) error {
	apiKey, err := config.APIKey(".")
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	blinded, err := blind.Apply(string(raw))
	if err != nil {
		return err
	}

	specs, err := loadSpecs(cfg)
	if err != nil {
		return err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	client, err := newClient(apiKey, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sig := NewSignalHandler(cancel)
	sig.Start()
	defer sig.Stop()

	bus := events.NewBus(256)

	useTUI := !cfg.NoTUI && term.IsTerminal(int(os.Stdout.Fd()))

	var board *tui.Bridge
	var program *tea.Program
	tuiDone := make(chan error, 1)
	if useTUI {
		model := tui.NewModel(filepath.Base(opts.Input), specs, cfg.Concurrency)
		program = tea.NewProgram(model)
		board = tui.NewBridge(program)
		bus.Subscribe(board.Handler())
		go func() {
			_, err := program.Run()
			tuiDone <- err
		}()
	} else {
		bus.Subscribe(events.LogHandler(events.LogConfig{IncludePayload: cfg.Verbose}))
	}

	var led *ledger.Ledger
	if cfg.LedgerPath != "" {
		led, err = ledger.Open(cfg.LedgerPath)
		if err != nil {
			// History is best effort; the review itself proceeds
			fmt.Fprintf(os.Stderr, "warning: ledger unavailable: %v\n", err)
			led = nil
		} else {
			defer led.Close()
		}
	}

	runID := ""
	if led != nil {
		if id, err := led.CreateRun(filepath.Base(opts.Input), cfg.Set, len(specs)); err == nil {
			runID = id
		} else {
			fmt.Fprintf(os.Stderr, "warning: ledger write failed: %v\n", err)
		}
	}

	bus.Emit(events.NewEvent(events.RunStarted, "").WithPayload(map[string]any{
		"document":  filepath.Base(opts.Input),
		"reviewers": len(specs),
	}))

	dispatcher := review.NewDispatcher(client,
		review.WithMaxInFlight(cfg.Concurrency),
		review.WithBus(bus),
	)
	results, err := review.Collect(specs, dispatcher.ReviewAll(ctx, blinded, specs))
	if err != nil {
		return err
	}

	if led != nil && runID != "" {
		for _, r := range results {
			if err := led.RecordResult(runID, r); err != nil {
				fmt.Fprintf(os.Stderr, "warning: ledger write failed: %v\n", err)
			}
		}
	}

	engine := synthesis.NewEngine(client,
		synthesis.WithMinQuorum(cfg.MinQuorum),
		synthesis.WithBus(bus),
	)
	syn, synErr := engine.Synthesize(ctx, cfg.Set, results)
	if synErr != nil {
		// The report still carries every individual review
		fmt.Fprintf(os.Stderr, "warning: %v\n", synErr)
		syn = nil
	}

	out := report.Assemble(report.Meta{
		DocumentName:  filepath.Base(opts.Input),
		Date:          timeNow(),
		Set:           cfg.Set,
		ReviewerCount: len(specs),
	}, syn, results)

	if err := writeReport(opts.Output, out); err != nil {
		bus.Emit(events.NewEvent(events.RunFailed, "").WithError(err))
		bus.Close()
		return err
	}

	bus.Emit(events.NewEvent(events.ReportWritten, "").WithPayload(opts.Output))
	bus.Emit(events.NewEvent(events.RunCompleted, ""))
	bus.Close()

	if led != nil && runID != "" {
		if err := led.FinishRun(runID, verdictString(syn), review.SuccessCount(results), synErr); err != nil {
			fmt.Fprintf(os.Stderr, "warning: ledger write failed: %v\n", err)
		}
	}

	if useTUI {
		board.SendDone()
		<-tuiDone
	}

	printSummary(os.Stdout, opts.Output, syn, results)
	return nil
}

// loadSpecs resolves the reviewer roster: a registry file wins over the
// built-in sets
func loadSpecs(cfg *config.Config) ([]registry.ReviewerSpec, error) {
	if cfg.RegistryPath != "" {
		return registry.Load(cfg.RegistryPath)
	}
	return registry.Set(cfg.Set)
}

// newClient builds the OpenRouter client from config
func newClient(apiKey string, cfg *config.Config) (*openrouter.Client, error) {
	opts := []openrouter.Option{
		openrouter.WithMaxRetries(cfg.OpenRouter.MaxRetries),
		openrouter.WithMaxTokens(cfg.OpenRouter.MaxTokens),
	}
	if cfg.OpenRouter.BaseURL != "" {
		opts = append(opts, openrouter.WithBaseURL(cfg.OpenRouter.BaseURL))
	}
	return openrouter.New(apiKey, opts...)
}

// writeReport writes the report, creating parent directories as needed
func writeReport(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// verdictString renders the verdict for the ledger row
func verdictString(syn *synthesis.Result) string {
	if syn == nil {
		return ""
	}
	return string(syn.Verdict)
}
