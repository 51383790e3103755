// ABOUTME: The select subcommand: pick one option from a scrolling, wrap-around list
// ABOUTME: Prints "Form data: <option>" on confirm; cancelling exits 1

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	tflog "github.com/mauromedda/termform/internal/log"
	"github.com/mauromedda/termform/pkg/tui/component"
	"github.com/mauromedda/termform/pkg/tui/fuzzy"
)

const defaultTitle = "Client Form"

// demoOptions is used when no options are given: enough rows to scroll
// on most terminals.
func demoOptions() []string {
	opts := make([]string, 14)
	for i := range opts {
		opts[i] = strconv.Itoa(i + 1)
	}
	return opts
}

func (a *app) selectCmd() *cobra.Command {
	var title, filter string

	cmd := &cobra.Command{
		Use:   "select [option...]",
		Short: "Pick one option from a scrolling list",
		Long: `Shows the options in a boxed list. Move with up/down (or k/j); the list
wraps at both ends. Press space to mark an option and space again on the
same option to confirm it. Escape or ctrl+c cancels.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := args
			if len(options) == 0 {
				options = demoOptions()
			}
			if filter != "" {
				options = fuzzy.Filter(filter, options)
				tflog.Debug("filter %q kept %d options", filter, len(options))
			}
			return a.runSelect(cmd.Context(), title, options)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", defaultTitle, "title shown above the list")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy-filter the options before showing them")
	return cmd
}

func (a *app) runSelect(ctx context.Context, title string, options []string) error {
	keys, err := a.listKeys()
	if err != nil {
		return err
	}
	warnConflicts("list", keys)

	h, err := a.open(a.settings.BackendOrDefault())
	if err != nil {
		return err
	}
	defer h.Close()

	surf := h.Surface()
	list, err := component.NewSelectList(surf, title, options,
		component.WithKeymap(keys),
		component.WithInstructions(a.settings.ShowInstructions()),
	)
	if err != nil {
		return err
	}

	surf.SetCursorVisible(false)
	err = h.Drive(ctx, list, func(ctx context.Context) error {
		_, err := list.Run(ctx)
		return err
	})
	if closeErr := h.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	out := list.Outcome()
	tflog.Debug("select finished: %v", out)
	v, ok := out.Value()
	if !ok {
		return errCancelled
	}
	fmt.Fprintf(a.stdout, "Form data: %s\n", v)
	return nil
}
