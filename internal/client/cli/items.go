package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCommand(opts *RootOptions) *cobra.Command {
	var (
		after   string
		section bool
		level   int64
	)

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a task or a section",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				afterID := ""
				if after != "" {
					id, err := resolveID(app.Data, after)
					if err != nil {
						return err
					}
					afterID = id
				}

				var (
					id  string
					err error
				)
				if section {
					id, err = app.Data.AddSection(ctx, text, level, afterID)
				} else {
					id, err = app.Data.AddItem(ctx, text, afterID)
				}
				if err != nil {
					return fmt.Errorf("failed to add item: %w", err)
				}
				opts.io.Printf("Added %s\n", shortID(id))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&after, "after", "", "insert after this item (row number or id prefix)")
	cmd.Flags().BoolVarP(&section, "section", "s", false, "add a section header")
	cmd.Flags().Int64Var(&level, "level", 1, "section level (1 or 2)")
	return cmd
}

func newListCommand(opts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(opts.io, app.Data.List(), all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include archived items")
	return cmd
}

func newShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.App(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveID(app.Data, args[0])
			if err != nil {
				return err
			}
			it, err := app.Data.Get(id)
			if err != nil {
				return err
			}
			return itemTmpl.Execute(opts.io, &it)
		},
	}
}

func newEditCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit REF TEXT...",
		Short: "Replace item text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				return app.Data.SetText(ctx, id, strings.Join(args[1:], " "))
			})
		},
	}
}

func newDoneCommand(opts *RootOptions, done bool) *cobra.Command {
	use, short := "done REF...", "Mark tasks as completed"
	if !done {
		use, short = "undone REF...", "Mark tasks as not completed"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				return eachRef(app, args, func(id string) error {
					return app.Data.SetCompleted(ctx, id, done)
				})
			})
		},
	}
}

func newImportantCommand(opts *RootOptions) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "important REF",
		Short: "Mark a task as important",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				return app.Data.SetImportant(ctx, id, !off)
			})
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "clear the mark")
	return cmd
}

func newArchiveCommand(opts *RootOptions) *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "archive REF...",
		Short: "Archive items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				return eachRef(app, args, func(id string) error {
					return app.Data.SetArchived(ctx, id, !restore)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "bring items back from the archive")
	return cmd
}

func newDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete REF",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				if err := app.Data.Delete(ctx, id); err != nil {
					return fmt.Errorf("failed to delete item: %w", err)
				}
				opts.io.Printf("Deleted %s\n", shortID(id))
				return nil
			})
		},
	}
}

func newSplitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "split REF OFFSET",
		Short: "Split item text at a character offset into two items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid offset %q", args[1])
			}
			return opts.mutate(cmd, func(ctx context.Context, app *App) error {
				id, err := resolveID(app.Data, args[0])
				if err != nil {
					return err
				}
				created, err := app.Data.Split(ctx, id, offset)
				if err != nil {
					return err
				}
				opts.io.Printf("Added %s\n", shortID(created))
				return nil
			})
		},
	}
}

// eachRef разрешает все ссылки до изменений: номера строк сдвигаются
// после первого же изменения
func eachRef(app *App, refs []string, fn func(id string) error) error {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := resolveID(app.Data, ref)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	for _, id := range ids {
		if err := fn(id); err != nil {
			return err
		}
	}
	return nil
}
