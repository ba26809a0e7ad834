package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/actionfix/internal/config"
)

var watchSchedule string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run resolution cycles on a cron schedule",
	Long: `Runs a resolution cycle immediately, then keeps running on the given
cron schedule until interrupted. Standard five-field cron expressions
and the @every / @hourly / @daily shorthands are accepted.

Examples:
  actionfix watch                          # every 6 hours (default)
  actionfix watch --schedule "@every 30m"
  actionfix watch --schedule "0 9 * * 1-5"`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "",
		fmt.Sprintf("cron schedule (default: %q)", config.DefaultSchedule))

	// Repository selection flags are shared with resolve.
	watchCmd.Flags().StringVar(&resolveOwner, "owner", "", "repository owner (default: origin remote)")
	watchCmd.Flags().StringVar(&resolveRepo, "repo", "", "repository name (default: origin remote)")
	watchCmd.Flags().StringVar(&resolveToken, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
	watchCmd.Flags().StringVar(&resolveDir, "dir", "", "working tree to patch (default: current directory)")
	watchCmd.Flags().IntVar(&resolveMaxRuns, "max-runs", 0, "max failed runs to analyze (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	r, owner, repo, err := newResolver(cfgFile)
	if err != nil {
		return err
	}

	schedule := watchSchedule
	if schedule == "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		schedule = cfg.Resolver.Schedule
	}

	cycle := func() {
		if _, path, err := r.Cycle(ctx); err != nil {
			slog.Error("Resolution cycle failed", "repo", owner+"/"+repo, "error", err)
		} else if path != "" {
			fmt.Printf("[%s] Report written to: %s\n",
				time.Now().Format("2006-01-02 15:04:05"), dimStyle.Render(path))
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, cycle); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("  actionfix watch — %s/%s", owner, repo)))
	fmt.Println(dimStyle.Render("  Schedule: " + schedule))
	fmt.Println()

	// First cycle runs right away; the cron entry handles the rest.
	cycle()
	c.Start()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigs:
	case <-ctx.Done():
	}
	fmt.Println("\nShutting down watch gracefully...")
	<-c.Stop().Done()
	return nil
}
