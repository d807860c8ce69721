package commands

import (
	"os"

	"github.com/spf13/cobra"

	"shapes/internal/ui/console"
)

func helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Call the hello endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wire()
			if err != nil {
				return err
			}
			defer console.Printer{W: os.Stdout}.Attach(w.UI)()
			return w.Flows.Hello(cmd.Context())
		},
	}
}
