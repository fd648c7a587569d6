package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/levelio"
	"svw.info/sokoban/internal/render"
	"svw.info/sokoban/internal/usecase"
)

func newCheckCommand() *cobra.Command {
	var stored bool

	cmd := &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Validate level files or stored levels",
		Long: `Validate every level in the given files and print a summary table.

Files ending in .yaml or .yml are read as level packs, anything else as
XSB text holding a single level. With --stored the levels in the
configured storage are checked instead.`,
		Example: `  sokoban check levels/microban.yaml
  sokoban check a.xsb b.xsb --workers 8
  sokoban check --stored`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stored && len(args) == 0 {
				return fmt.Errorf("no level files given")
			}
			return runCheck(cmd, args, stored)
		},
	}
	cmd.Flags().BoolVar(&stored, "stored", false, "check the levels in storage")
	return cmd
}

type checkJob struct {
	source string
	level  domain.Level
}

func runCheck(cmd *cobra.Command, files []string, stored bool) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	logger := getLogger(ctx)

	uc, closeFn, err := newService(ctx, stored)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	var (
		jobs    []checkJob
		results []render.Result
	)
	if stored {
		jobs, err = storedJobs(ctx, uc)
		if err != nil {
			return err
		}
	}
	for _, path := range files {
		levels, err := levelio.LoadFile(path)
		if err != nil {
			results = append(results, render.Result{Source: path, Err: err})
			continue
		}
		for _, lv := range levels {
			jobs = append(jobs, checkJob{source: path, level: lv})
		}
	}
	logger.Debug("checking levels", "count", len(jobs), "workers", cfg.Workers)

	checked := make([]render.Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			res := render.Result{Source: job.source, Level: job.level.Name}
			_, rep, err := uc.Check(gctx, &job.level)
			res.Report, res.Err = rep, err
			checked[i] = res
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	results = append(results, checked...)

	render.Results(cmd.OutOrStdout(), results, render.UseColor(cfg.Color, cmd.OutOrStdout()))

	failed := 0
	for _, r := range results {
		if r.Err != nil || !r.Report.Valid {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, len(results))
	}
	return nil
}

func storedJobs(ctx context.Context, uc *usecase.Service) ([]checkJob, error) {
	metas, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	jobs := make([]checkJob, 0, len(metas))
	for _, m := range metas {
		lv, err := uc.Load(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, checkJob{source: "storage:" + m.ID, level: *lv})
	}
	return jobs, nil
}
