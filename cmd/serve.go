package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-scheduler/api"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		app := api.NewApp(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			logrus.Info("shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.WithError(err).Error("shutdown failed")
			}
		}()

		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 9095, "Port to listen on (overrides config)")
}
