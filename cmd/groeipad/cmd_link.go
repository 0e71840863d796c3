package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"groeipaden_app/internal/viewer"
)

var (
	linkCopy bool

	// terminal is where --copy writes the clipboard sequence
	terminal = os.Stdout
)

// linkCmd prints the share link of a step
var linkCmd = &cobra.Command{
	Use:   "link <route> <step>",
	Short: "Print the share link of a step",
	Long: `Prints <APP_URL>/route/<route>#step-<step>.

With --copy the link is also put on the terminal clipboard (OSC 52).
A failed copy is reported but does not fail the command.`,
	Args: cobra.ExactArgs(2),
	RunE: runLink,
}

func init() {
	linkCmd.Flags().BoolVarP(&linkCopy, "copy", "c", false, "Copy the link to the terminal clipboard")
}

func runLink(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	route, ok := cat.Route(args[0])
	if !ok {
		if s, found := cat.Suggest(args[0]); found {
			return fmt.Errorf("unknown route %q, did you mean %q?", args[0], s.ID)
		}
		return fmt.Errorf("unknown route %q", args[0])
	}
	step, ok := route.Step(args[1])
	if !ok {
		return fmt.Errorf("route %s has no step %q", route.ID, args[1])
	}

	link := viewer.ShareLink(cfg.AppURL, route.ID, step.ID)
	fmt.Fprintln(cmd.OutOrStdout(), link)

	if linkCopy {
		res := viewer.CopyShareLink(cmd.Context(), viewer.NewTerminalClipboard(terminal), link, logger)
		if res.OK() {
			fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "not copied: %v\n", res.Err)
		}
	}
	return nil
}
