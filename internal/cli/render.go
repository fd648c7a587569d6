package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/levelio"
	"svw.info/sokoban/internal/render"
)

func newRenderCommand() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a level in the terminal",
		Long: `Draw one level as text: '#' wall, '.' target, '@' player, '$' treasure.
For pack files --index selects the level (1-based).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := levelio.LoadFile(args[0])
			if err != nil {
				return err
			}
			if index < 1 || index > len(levels) {
				return fmt.Errorf("%s holds %d levels, index %d is out of range", args[0], len(levels), index)
			}
			return renderLevel(cmd, &levels[index-1])
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 1, "level number within a pack")
	return cmd
}

func renderLevel(cmd *cobra.Command, lv *domain.Level) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	out := cmd.OutOrStdout()

	uc, _, err := newService(ctx, false)
	if err != nil {
		return err
	}
	b, rep, err := uc.Check(ctx, lv)
	if err != nil {
		return err
	}
	if lv.Name != "" {
		fmt.Fprintln(out, lv.Name)
	}
	if err := render.Board(out, b, render.UseColor(cfg.Color, out)); err != nil {
		return err
	}
	res := render.Result{Level: lv.Name, Report: rep}
	if rep.Problem != "" {
		fmt.Fprintf(out, "%s: %s\n", res.Status(), rep.Problem)
	} else {
		fmt.Fprintln(out, res.Status())
	}
	return nil
}
