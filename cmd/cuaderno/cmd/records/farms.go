package records

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cuaderno/internal/app/client"
	"cuaderno/internal/domain/farm"
)

// NewFarmsGroup is the explotaciones group: the generic CRUD verbs plus
// the use subcommand that remembers the default farm.
func NewFarmsGroup() *cobra.Command {
	group := NewGroup("explotaciones", "Gestión de explotaciones",
		Options{FarmScoped: false},
		func(a *client.App) Service[farm.Farm] { return a.Farms() },
		SearchSpec[farm.Farm]{
			Use:   "rega <codigo>",
			Short: "Buscar por código REGA",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, _ string, args []string) ([]farm.Farm, error) {
				return a.Farms().SearchByREGA(ctx, token, userID, args[0])
			},
		},
	)

	group.AddCommand(&cobra.Command{
		Use:   "use <id>",
		Short: "Seleccionar la explotación por defecto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			token, userID, err := app.Credentials()
			if err != nil {
				return err
			}

			// The id must name a farm the user can actually see.
			selected, err := app.Farms().GetByID(cmd.Context(), token, args[0], userID)
			if err != nil {
				return err
			}

			if err := app.SetCurrentFarm(selected.ID); err != nil {
				return err
			}

			fmt.Println(color.GreenString("Explotación seleccionada: %s (%s)", selected.Nombre, selected.ID))
			return nil
		},
	})

	return group
}
