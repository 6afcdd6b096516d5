package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups the user session commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Gestión de la sesión de usuario",
	Long:  `Inicio y cierre de sesión e información del usuario autenticado.`,
}
