package cmd

import (
	"os"
	"os/signal"

	"github.com/odit-bit/spesabot/spesa"
	"github.com/odit-bit/spesabot/spesa/config"
	"github.com/spf13/cobra"
)

func init() {
	ServerCMD.Flags().AddFlagSet(config.FlagSet)
}

var ServerCMD = cobra.Command{
	Use:  "server",
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg, err := config.LoadAndValidate(cmd.Flags())
		if err != nil {
			return err
		}

		srv, err := spesa.NewHttp(ctx, cfg)
		if err != nil {
			return err
		}

		return srv.Start()
	},
}
