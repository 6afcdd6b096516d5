package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cuaderno/cmd/cuaderno/cmd/types"
	"cuaderno/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Iniciar sesión",
	Long: `Autenticación contra el servidor del cuaderno.

La sesión se guarda localmente y caduca pasadas 24 horas, tras lo cual
hay que volver a iniciar sesión.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app not initialized")
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Contraseña: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		profile, err := app.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}

		name := profile.Name
		if name == "" {
			name = profile.Email
		}
		fmt.Println(color.GreenString("Sesión iniciada como %s", name))
		return nil
	},
}
