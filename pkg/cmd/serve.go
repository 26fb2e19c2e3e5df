package cmd

import (
	"github.com/spf13/cobra"

	"github.com/igorzgk/excel-delivery-sub000/pkg/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewApp(configPath).Run()
	},
}

// registerServeCommand 注册服务启动命令.
func registerServeCommand() {
	rootCmd.AddCommand(serveCmd)
}
