package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move REF POSITION",
		Short: "Move an item (a section moves with its contents)",
		Long: `Move an item to POSITION, a row number counted as if the moved
item and its contents were already taken out of the list.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[1])
			if err != nil || pos < 1 {
				return fmt.Errorf("invalid position %q", args[1])
			}
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				return app.Data.Move(ctx, id, pos-1)
			})
		},
	}
}

func newIndentCommand(opts *RootOptions, indent bool) *cobra.Command {
	use, short := "indent REF", "Indent a task or demote a section to level 2"
	if !indent {
		use, short = "outdent REF", "Outdent a task or promote a section to level 1"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				if indent {
					return app.Data.Indent(ctx, id)
				}
				return app.Data.Outdent(ctx, id)
			})
		},
	}
}

func newLevelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "level REF LEVEL",
		Short: "Set section level (1 or 2)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid level %q", args[1])
			}
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				return app.Data.SetLevel(ctx, id, level)
			})
		},
	}
}

func newUndoCommand(opts *RootOptions, undo bool) *cobra.Command {
	use, short := "undo", "Undo the last change made on this device"
	if !undo {
		use, short = "redo", "Redo the last undone change"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				if undo && !app.History.CanUndo() {
					opts.io.Println("Nothing to undo.")
					return nil
				}
				if !undo && !app.History.CanRedo() {
					opts.io.Println("Nothing to redo.")
					return nil
				}

				run := app.History.Undo
				if !undo {
					run = app.History.Redo
				}
				view, err := run(ctx)
				if err != nil {
					return fmt.Errorf("%s failed: %w", use, err)
				}
				if view.FocusID != "" {
					opts.io.Printf("Focus: %s\n", shortID(view.FocusID))
				}
				return nil
			})
		},
	}
}
