package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"visionoptics/pkg/ai"
	"visionoptics/pkg/chat"
	"visionoptics/pkg/config"
	"visionoptics/pkg/logging"
	"visionoptics/pkg/optics"
	"visionoptics/pkg/tutor"
	"visionoptics/pkg/ui"
	"visionoptics/pkg/ui/components/lesson"
	"visionoptics/pkg/version"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const (
	programName  = "visionoptics"
	plainWidth   = 80
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

const usage = `Usage:
  visionoptics [flags]                 interactive lesson with the AI tutor
  visionoptics lesson [flags]          print the lesson and exit
  visionoptics ask [flags] QUESTION    ask the tutor one question

Flags:
`

type options struct {
	command    string
	configPath string
	lang       string
	mode       string
	width      int
	version    bool
	args       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitBadUsage
	}

	if opts.version {
		fmt.Fprint(stdout, version.Info(programName))
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitFailure
	}
	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}
	slog.Info("startup",
		"version", version.Summary(),
		"command", commandName(opts.command),
		"llm_provider", cfg.LLMProvider,
		"lang", cfg.Language,
	)

	vm := optics.NewViewModel(startupMode(cfg), startupLanguage(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.command {
	case "lesson":
		printLesson(stdout, vm, outputWidth(stdout, opts.width))
	case "ask":
		t := tutor.NewFromConfig(cfg)
		askOnce(ctx, stdout, t, vm.Language(), strings.Join(opts.args, " "), outputWidth(stdout, opts.width))
	default:
		if !isTerminal(stdout) {
			printLesson(stdout, vm, outputWidth(stdout, opts.width))
			return exitOK
		}
		t := tutor.NewFromConfig(cfg)
		if err := runTUI(ctx, vm, t); err != nil {
			slog.Error("tui_error", "error", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}

	slog.Info("shutdown")
	return exitOK
}

// parseArgs splits an optional subcommand from the flags. Flags may follow
// the subcommand; everything after them is the question for ask.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.command, args = args[0], args[1:]
	}
	switch opts.command {
	case "", "lesson", "ask":
	case "version":
		opts.version = true
		return opts, nil
	default:
		fmt.Fprint(stderr, usage)
		return opts, fmt.Errorf("unknown command %q", opts.command)
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
		printProviders(stderr)
	}
	fs.StringVar(&opts.configPath, "config", config.GetConfigPath(), "config file (.json, .yaml or .yml)")
	fs.StringVar(&opts.lang, "lang", "", "display language: en or zh")
	fs.StringVar(&opts.mode, "mode", "", "initial lighting mode: bright or dark")
	fs.IntVar(&opts.width, "width", 0, "output width for printed lessons and answers")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.args = fs.Args()

	if opts.command == "ask" && !opts.version && strings.TrimSpace(strings.Join(opts.args, " ")) == "" {
		fs.Usage()
		return opts, errors.New("ask needs a question")
	}
	if opts.command != "ask" && len(opts.args) > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(opts.args, " "))
	}
	return opts, nil
}

// printProviders lists the values accepted for llm_provider.
func printProviders(w io.Writer) {
	fmt.Fprintln(w, "\nProviders (llm_provider):")
	for _, p := range ai.ListProviders() {
		note := ""
		if p.RequiresKey {
			note = " (API key required)"
		}
		fmt.Fprintf(w, "  %-8s %s%s\n", p.Type, p.Description, note)
	}
}

// loadConfig reads the file, then the environment, then the flags, each
// layer overriding the one before.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.ApplyEnv(os.Getenv)
	if opts.lang != "" {
		cfg.Language = opts.lang
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func startupLanguage(cfg config.Config) optics.Language {
	lang, err := optics.ParseLanguage(cfg.Language)
	if err != nil {
		return optics.Chinese
	}
	return lang
}

func startupMode(cfg config.Config) optics.Mode {
	if strings.TrimSpace(cfg.Mode) == "" {
		return optics.BrightField
	}
	mode, err := optics.ParseMode(cfg.Mode)
	if err != nil {
		return optics.BrightField
	}
	return mode
}

func runTUI(ctx context.Context, vm *optics.ViewModel, t *tutor.Tutor) error {
	modelName := ""
	if t.Available() {
		modelName = t.Model()
	}
	p := tea.NewProgram(ui.NewModel(ctx, vm, t, modelName), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func printLesson(w io.Writer, vm *optics.ViewModel, width int) {
	fmt.Fprintln(w, lesson.RenderPlain(vm.Content(), vm.Chrome(), width))
}

// askOnce runs a single-question session. The reply is rendered as
// markdown on a terminal and printed as-is otherwise.
func askOnce(ctx context.Context, w io.Writer, asker chat.Asker, lang optics.Language, question string, width int) {
	session := chat.NewSession(lang)
	if !session.Send(ctx, asker, question) {
		return
	}
	msgs := session.Messages()
	reply := msgs[len(msgs)-1].Text

	if isTerminal(w) {
		rendered, err := renderMarkdown(reply, width)
		if err == nil {
			fmt.Fprint(w, rendered)
			return
		}
		slog.Warn("markdown_render_error", "error", err)
	}
	fmt.Fprintln(w, reply)
}

func renderMarkdown(text string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

func outputWidth(w io.Writer, requested int) int {
	if requested > 0 {
		return requested
	}
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return plainWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func commandName(command string) string {
	if command == "" {
		return "tui"
	}
	return command
}
