package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cuaderno/cmd/cuaderno/cmd/types"
	"cuaderno/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cerrar sesión",
	Long:  `Elimina la sesión local. El servidor no invalida el token emitido.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app not initialized")
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		fmt.Println(color.GreenString("Sesión cerrada"))
		return nil
	},
}
