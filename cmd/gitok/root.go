package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitok/internal/check"
	"gitok/internal/config"
	"gitok/internal/format"
	"gitok/internal/git"
	"gitok/internal/log"
	"gitok/internal/output"
)

// Exit codes.
const (
	exitClean   = 0
	exitUnclean = 1
	exitNotRepo = 2
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Report flags
	showIgnored   bool
	importantOnly bool
	jsonOutput    bool

	// Exit code determined by the evaluation; errors always exit 1.
	exitCode = exitClean
)

// rootCmd is the one and only command: evaluate a single directory.
var rootCmd = &cobra.Command{
	Use:   "gitok [path]",
	Short: "Check whether a repository is safe to delete",
	Long: `gitok inspects a directory and reports whether it is safe to delete
without data loss: whether it is version-controlled, whether all changes
are committed, and whether local history is fully pushed to a remote.

It never modifies repository state; the only network access is a dry-run
fetch to refresh remote-tracking information.`,
	Example: `  gitok                        # Check the current directory
  gitok ~/src/old-project      # Check a specific path
  gitok --show-ignored         # Also list ignored files
  gitok --important-only       # List only sensitive ignored files
  gitok --json                 # Machine-readable report

Exit codes:
  0  Repository is clean and synced
  1  Issues found, or any error
  2  Not a git repository`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Logger and printer go on the context after flags are parsed.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		return git.CheckGit()
	},
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		log.FromContext(ctx).Printf("Warning: %v\n", err)
	}

	target, err := check.ResolveTarget(path)
	if err != nil {
		return err
	}

	report := check.Evaluate(ctx, target, git.NewClient(target.Path), cfg.ClassifierRules())

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		out.Println(string(data))
	} else {
		renderer := format.NewRenderer(colorEnabled(out.Writer()))
		out.Print(renderer.Render(report, format.Options{
			ShowIgnored:   showIgnored,
			ImportantOnly: importantOnly,
		}))
	}

	exitCode = exitCodeFor(report)
	return nil
}

// exitCodeFor maps a report to the process exit code.
func exitCodeFor(report check.Report) int {
	switch {
	case !report.IsRepo:
		return exitNotRepo
	case !report.Clean:
		return exitUnclean
	default:
		return exitClean
	}
}

// colorEnabled reports whether styled output should be used.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command and exits with the mapped code.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUnclean)
	}
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().BoolVar(&showIgnored, "show-ignored", false, "List ignored files")
	rootCmd.Flags().BoolVar(&importantOnly, "important-only", false, "List only ignored files flagged as important")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
