package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/kezya-clinic/internal/db"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria ou atualiza as tabelas e índices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carrega os dados de demonstração num banco vazio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			seeded, err := dbpkg.Seed(
				cmd.Context(),
				db,
				cfg.AdminEmail,
				cfg.AdminPassword,
				timezone.NowIn(cfg.PracticeTimezone),
			)
			if err != nil {
				return err
			}

			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "dados de demonstração carregados")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "banco já possui clientes; nada a fazer")
			}
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <senha>",
		Short: "Gera o hash bcrypt de uma senha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := dbpkg.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
