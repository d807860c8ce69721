package commands

import (
	"os"

	"github.com/spf13/cobra"

	"shapes/internal/ui/console"
)

func shapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shape",
		Short: "Fetch a shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wire()
			if err != nil {
				return err
			}
			defer console.Printer{W: os.Stdout}.Attach(w.UI)()
			_, err = w.Flows.Shape(cmd.Context())
			return err
		},
	}
}
