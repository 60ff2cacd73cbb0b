package cmd

import (
	"github.com/Daskott/clientdir/server"
	"github.com/spf13/cobra"
)

func createServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start a clientdir server",
		Long:  `The clientdir server exposes every client operation as a JSON http api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, appConfig, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			port, _ := cmd.Flags().GetInt("port")
			if !cmd.Flags().Changed("port") {
				port = appConfig.Server.Port
			}

			server.SetLogger(logg)
			server.Start(store, port)
			return nil
		},
	}

	cmd.Flags().Int("port", 3000, "port to listen on, overrides server.port in config")

	return cmd
}
