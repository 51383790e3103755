// ABOUTME: The keys subcommand prints the active key bindings of both widgets
// ABOUTME: Markdown tables rendered with glamour, or raw with --raw

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func (a *app) keysCmd() *cobra.Command {
	var (
		raw   bool
		style string
		wrap  int
	)

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key bindings, including config overrides",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			md, err := a.keysMarkdown()
			if err != nil {
				return err
			}
			if raw {
				_, err := fmt.Fprint(a.stdout, md)
				return err
			}
			out, err := renderMarkdown(md, style, wrap)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.stdout, out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering it")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light or notty")
	cmd.Flags().IntVar(&wrap, "wrap", 80, "wrap rendered output at this width")
	return cmd
}

func (a *app) keysMarkdown() (string, error) {
	list, err := a.listKeys()
	if err != nil {
		return "", err
	}
	editor, err := a.editorKeys()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# termform key bindings\n\n")
	b.WriteString(list.Markdown("select"))
	b.WriteString("\n")
	b.WriteString(editor.Markdown("input"))
	return b.String(), nil
}

func renderMarkdown(md, style string, wrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering key bindings: %w", err)
	}
	return out, nil
}
