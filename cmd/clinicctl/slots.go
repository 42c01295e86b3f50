package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
)

// slotsCmd mostra a grade do dia para uma duração, sem tocar no banco.
func slotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Mostra os horários gerados para uma duração de sessão",
		RunE:  runSlots,
	}

	cmd.Flags().Int("duration", domain.FallbackDuration, "duração da sessão em minutos")
	return cmd
}

func runSlots(cmd *cobra.Command, _ []string) error {
	duration, err := cmd.Flags().GetInt("duration")
	if err != nil {
		return err
	}

	slots := domain.GenerateSlots(duration)
	fmt.Fprintf(cmd.OutOrStdout(), "%d horários (sessão de %d min + %d min de intervalo)\n",
		len(slots), effectiveDuration(duration), domain.BreakMinutes)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(slots, " "))
	return nil
}

func effectiveDuration(d int) int {
	if d <= 0 {
		return domain.FallbackDuration
	}
	return d
}
