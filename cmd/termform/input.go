// ABOUTME: The input subcommand: a single-line editor that scrolls horizontally
// ABOUTME: Prints "Inputted: <text>" on enter; cancelling exits 1

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tflog "github.com/mauromedda/termform/internal/log"
	"github.com/mauromedda/termform/pkg/tui/component"
)

const defaultLabel = "This is a label"

func (a *app) inputCmd() *cobra.Command {
	var label, initial string

	cmd := &cobra.Command{
		Use:   "input",
		Short: "Edit one line of text in a boxed field",
		Long: `Shows a one-line text box under a label. Text longer than the box
scrolls sideways with the cursor. Enter confirms; escape or ctrl+c cancels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInput(cmd.Context(), label, initial)
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", defaultLabel, "label shown above the box")
	cmd.Flags().StringVar(&initial, "initial", "", "text the box starts with")
	return cmd
}

func (a *app) runInput(ctx context.Context, label, initial string) error {
	keys, err := a.editorKeys()
	if err != nil {
		return err
	}
	warnConflicts("editor", keys)

	h, err := a.open(a.settings.BackendOrDefault())
	if err != nil {
		return err
	}
	defer h.Close()

	editor, err := component.NewLineEditor(h.Surface(), label,
		component.WithKeymap(keys),
		component.WithInstructions(a.settings.ShowInstructions()),
		component.WithInitialText(initial),
	)
	if err != nil {
		return err
	}

	err = h.Drive(ctx, editor, func(ctx context.Context) error {
		_, err := editor.Run(ctx)
		return err
	})
	if closeErr := h.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	out := editor.Outcome()
	tflog.Debug("input finished: %v", out)
	v, ok := out.Value()
	if !ok {
		return errCancelled
	}
	fmt.Fprintf(a.stdout, "Inputted: %s\n", v)
	return nil
}
