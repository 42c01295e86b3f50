package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/kezya-clinic/internal/config"
	"github.com/BruksfildServices01/kezya-clinic/internal/logger"
)

var (
	cfg *config.Config
	log *logger.Logger

	rootCmd = &cobra.Command{
		Use:   "clinicctl",
		Short: "Ferramentas de operação da agenda da Fga. Kezya Rodrigues",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg = config.Load()
			level, _ := cmd.Flags().GetString("log-level")
			if level == "" {
				level = cfg.LogLevel
			}
			log = logger.New(level)
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(slotsCmd())
	rootCmd.AddCommand(hashPasswordCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
