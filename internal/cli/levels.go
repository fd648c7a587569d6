package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/levelio"
	"svw.info/sokoban/internal/render"
)

func newLevelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Manage the stored level library",
	}
	cmd.AddCommand(newLevelsListCommand())
	cmd.AddCommand(newLevelsImportCommand())
	cmd.AddCommand(newLevelsShowCommand())
	cmd.AddCommand(newLevelsDeleteCommand())
	cmd.AddCommand(newLevelsExportCommand())
	return cmd
}

func newLevelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, closeFn, err := newService(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			metas, err := uc.List(cmd.Context())
			if err != nil {
				return err
			}
			render.Levels(cmd.OutOrStdout(), metas)
			return nil
		},
	}
}

func newLevelsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Store the levels from XSB or pack files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, closeFn, err := newService(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			var levels []domain.Level
			for _, path := range args {
				ls, err := levelio.LoadFile(path)
				if err != nil {
					return err
				}
				levels = append(levels, ls...)
			}
			// Parse everything before storing anything.
			for i := range levels {
				if _, err := levelio.Parse(levels[i].Rows); err != nil {
					return fmt.Errorf("level %q: %w", levels[i].Name, err)
				}
			}
			for i := range levels {
				if err := uc.Save(ctx, &levels[i]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", levels[i].ID, levels[i].Name)
			}
			return nil
		},
	}
}

func newLevelsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Draw a stored level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := newService(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			lv, err := uc.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderLevel(cmd, lv)
		},
	}
}

func newLevelsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Remove stored levels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := newService(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			for _, id := range args {
				if err := uc.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("delete %s: %w", id, err)
				}
			}
			return nil
		},
	}
}

func newLevelsExportCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all stored levels as a YAML pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			uc, closeFn, err := newService(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			metas, err := uc.List(ctx)
			if err != nil {
				return err
			}
			levels := make([]domain.Level, 0, len(metas))
			for _, m := range metas {
				lv, err := uc.Load(ctx, m.ID)
				if err != nil {
					return err
				}
				levels = append(levels, *lv)
			}
			return levelio.WritePack(cmd.OutOrStdout(), name, levels)
		},
	}
	cmd.Flags().StringVar(&name, "name", "library", "pack name")
	return cmd
}
