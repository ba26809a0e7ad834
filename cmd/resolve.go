package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/actionfix/internal/config"
	"github.com/CosmoTheDev/actionfix/internal/forge"
	"github.com/CosmoTheDev/actionfix/internal/gitinfo"
	"github.com/CosmoTheDev/actionfix/internal/resolver"
	"github.com/CosmoTheDev/actionfix/models"
)

var (
	resolveOwner   string
	resolveRepo    string
	resolveToken   string
	resolveDir     string
	resolveMaxRuns int
	resolveDryRun  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Analyze recent workflow failures and fix them",
	Long: `Fetches the most recent failed workflow runs, classifies each failed
job's log into known failure patterns, and patches the workflow files
in the working tree accordingly. A markdown resolution report is
written next to the fixed files.

The repository defaults to the origin remote of the current directory.
The token is read from --token, the GITHUB_TOKEN environment variable,
or the config file, in that order.

Examples:
  actionfix resolve
  actionfix resolve --owner octocat --repo octocat --dry-run
  actionfix resolve --max-runs 25`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveOwner, "owner", "", "repository owner (default: origin remote)")
	resolveCmd.Flags().StringVar(&resolveRepo, "repo", "", "repository name (default: origin remote)")
	resolveCmd.Flags().StringVar(&resolveToken, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
	resolveCmd.Flags().StringVar(&resolveDir, "dir", "", "working tree to patch (default: current directory)")
	resolveCmd.Flags().IntVar(&resolveMaxRuns, "max-runs", 0, "max failed runs to analyze (overrides config)")
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "classify and plan only, write nothing")
}

// newResolver builds a Resolver from flags, config, and the local git
// remote, in that order of precedence.
func newResolver(cfgFile string) (*resolver.Resolver, string, string, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, "", "", fmt.Errorf("loading config: %w", err)
	}

	if resolveOwner != "" {
		cfg.GitHub.Owner = resolveOwner
	}
	if resolveRepo != "" {
		cfg.GitHub.Repo = resolveRepo
	}
	if resolveToken != "" {
		cfg.GitHub.Token = resolveToken
	}
	if resolveDir != "" {
		cfg.Resolver.Dir = resolveDir
	}
	if resolveMaxRuns > 0 {
		cfg.Resolver.MaxRuns = resolveMaxRuns
	}

	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		owner, repo, err := gitinfo.Origin(cfg.Resolver.Dir)
		if err != nil {
			return nil, "", "", fmt.Errorf("repository not specified and origin remote not usable: %w", err)
		}
		if cfg.GitHub.Owner == "" {
			cfg.GitHub.Owner = owner
		}
		if cfg.GitHub.Repo == "" {
			cfg.GitHub.Repo = repo
		}
	}

	if cfg.GitHub.Token == "" {
		return nil, "", "", fmt.Errorf("no GitHub token: pass --token, set GITHUB_TOKEN, or run with a config file")
	}

	client, err := forge.New(cfg.GitHub)
	if err != nil {
		return nil, "", "", err
	}
	r := resolver.New(client, cfg.GitHub.Owner, cfg.GitHub.Repo, cfg.Resolver.MaxRuns, cfg.Resolver.Dir)
	return r, cfg.GitHub.Owner, cfg.GitHub.Repo, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	r, owner, repo, err := newResolver(cfgFile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  actionfix — %s/%s", owner, repo)))

	if resolveDryRun {
		return runDryRun(cmd.Context(), r)
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Resolving workflow failures..."
	s.Start()
	text, path, err := r.Cycle(cmd.Context())
	s.Stop()
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Println(successStyle.Render("  " + text))
		return nil
	}
	fmt.Println(text)
	fmt.Printf("Report written to: %s\n", dimStyle.Render(path))
	return nil
}

func runDryRun(ctx context.Context, r *resolver.Resolver) error {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Analyzing recent workflow failures..."
	s.Start()
	a := r.Analyze(ctx)
	s.Stop()

	if len(a.Runs) == 0 {
		fmt.Println(successStyle.Render("  " + resolver.NoFailedRuns))
		return nil
	}

	fmt.Printf("  Failed runs analyzed: %d\n\n", len(a.Runs))

	for _, c := range models.Categories() {
		if !a.Patterns.NonEmpty(c) {
			continue
		}
		fmt.Println(warnStyle.Render("  " + c.Title()))
		for _, diagnosis := range a.Patterns[c] {
			fmt.Println(dimStyle.Render("    - " + diagnosis))
		}
	}
	fmt.Println()

	if len(a.Fixes) == 0 {
		fmt.Println(dimStyle.Render("  No automatic fixes available for these failures."))
		return nil
	}
	fmt.Printf("  Would apply %d fix(es):\n", len(a.Fixes))
	for _, f := range a.Fixes {
		fmt.Printf("    - %s %s\n", f.Description, dimStyle.Render("["+f.Type()+"]"))
	}
	fmt.Println()
	fmt.Println(dimStyle.Render("  Dry run: no files were modified."))
	return nil
}
