package commands

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vsinha/capplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/capplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/capplan/pkg/interfaces/cli/output"
)

var (
	watchPlanPath   string
	watchDemandPath string
	watchFormat     string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the simulation whenever the plan file changes",
	Long: `Watches the plan file and re-runs the full simulation on every
write, the same recompute-everything cycle as adjusting a capacity and
re-planning. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchPlanPath, "plan", "", "path to TOML plan file")
	watchCmd.Flags().StringVar(&watchDemandPath, "demand", "", "path to demand forecast CSV")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "text", "output format: text, json")
	_ = watchCmd.MarkFlagRequired("plan")
	_ = watchCmd.MarkFlagRequired("demand")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	// The demand series is read-only input; only capacities and chain change
	// between runs, so load demand once up front.
	loader := csv.NewLoader()
	demands, err := loader.LoadDemands(watchDemandPath)
	if err != nil {
		return fmt.Errorf("error loading demand forecast: %w", err)
	}
	demandRepo := memory.NewDemandRepository()
	if err := demandRepo.LoadDemands(demands); err != nil {
		return fmt.Errorf("failed to load demands into repository: %w", err)
	}

	run := func() {
		plan, err := loadPlan(watchPlanPath)
		if err != nil {
			logger.Error().Err(err).Msg("plan reload failed, keeping last report")
			return
		}
		service, err := newPlanningService(plan)
		if err != nil {
			logger.Error().Err(err).Msg("invalid thresholds, keeping last report")
			return
		}
		result, err := service.Plan(cmd.Context(), demandRepo, plan.Chain, plan.Capacities)
		if err != nil {
			logger.Error().Err(err).Msg("simulation failed, keeping last report")
			return
		}
		if err := output.Generate(result, output.Config{
			Format:  watchFormat,
			Verbose: verbose,
			Out:     cmd.OutOrStdout(),
		}); err != nil {
			logger.Error().Err(err).Msg("report rendering failed")
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors typically replace the file
	// on save, which drops a file-level watch.
	planPath, err := filepath.Abs(watchPlanPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(planPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(planPath), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("plan", planPath).Msg("watching plan file, press Ctrl-C to stop")
	run()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != planPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("plan file changed, re-running")
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watcher error")
		}
	}
}
