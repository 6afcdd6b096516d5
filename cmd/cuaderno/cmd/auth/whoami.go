package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"cuaderno/cmd/cuaderno/cmd/types"
	"cuaderno/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Mostrar el usuario autenticado",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app not initialized")
		}

		if !app.IsAuthenticated() {
			return client.ErrSessionExpired
		}

		current := app.Session().Current()
		fmt.Printf("ID:       %s\n", current.User.ID)
		fmt.Printf("Email:    %s\n", current.User.Email)
		if current.User.Username != "" {
			fmt.Printf("Usuario:  %s\n", current.User.Username)
		}
		if current.User.Name != "" {
			fmt.Printf("Nombre:   %s\n", current.User.Name)
		}
		fmt.Printf("Caduca:   %s\n", current.ExpiresAt.Format("2006-01-02 15:04:05"))
		if farm := app.CurrentFarm(); farm != "" {
			fmt.Printf("Explotación: %s\n", farm)
		}
		return nil
	},
}
