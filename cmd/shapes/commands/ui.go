package commands

import (
	"github.com/spf13/cobra"

	"shapes/internal/ui/tui"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Interactive screen (h: hello, s: shape, q: quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wire()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), w.Flows, w.UI, w.Config.Variant)
		},
	}
}
