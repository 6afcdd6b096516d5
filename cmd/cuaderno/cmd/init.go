package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cuaderno/cmd/cuaderno/cmd/auth"
	"cuaderno/cmd/cuaderno/cmd/records"
	"cuaderno/internal/app/client"
	"cuaderno/internal/domain/cadaverplan"
	"cuaderno/internal/domain/cleaning"
	"cuaderno/internal/domain/maintenanceplan"
	"cuaderno/internal/domain/pestlog"
	"cuaderno/internal/domain/staff"
	"cuaderno/internal/domain/training"
	"cuaderno/internal/domain/wasteplan"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Estado del cliente",
	Long: `Muestra el estado del cliente: conexión con el servidor, sesión
activa y explotación seleccionada.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.CheckConnection(); err != nil {
			fmt.Println(color.RedString("Servidor: no accesible (%v)", err))
		} else {
			fmt.Println(color.GreenString("Servidor: conectado"))
		}

		if app.IsAuthenticated() {
			current := app.Session().Current()
			fmt.Printf("Sesión:   activa (%s, caduca %s)\n",
				current.User.Email,
				current.ExpiresAt.Format("2006-01-02 15:04"))
		} else {
			fmt.Println("Sesión:   no iniciada")
		}

		if farmID := app.CurrentFarm(); farmID != "" {
			fmt.Printf("Explotación: %s\n", farmID)
		} else {
			fmt.Println("Explotación: sin seleccionar")
		}

		return nil
	},
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(records.NewFarmsGroup())
	rootCmd.AddCommand(records.NewDatosGroup())

	rootCmd.AddCommand(records.NewGroup("plagas", "Registro de control de plagas",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[pestlog.Log] { return a.PestLogs() },
		records.SearchSpec[pestlog.Log]{
			Use:   "producto <texto>",
			Short: "Buscar por producto empleado",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]pestlog.Log, error) {
				return a.PestLogs().SearchByProduct(ctx, token, userID, farmID, args[0])
			},
		},
		records.SearchSpec[pestlog.Log]{
			Use:   "fechas <desde> <hasta>",
			Short: "Buscar por rango de fechas",
			Args:  cobra.ExactArgs(2),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]pestlog.Log, error) {
				from, err := parseDate(args[0])
				if err != nil {
					return nil, err
				}
				to, err := parseDate(args[1])
				if err != nil {
					return nil, err
				}
				return a.PestLogs().SearchByDateRange(ctx, token, userID, farmID, from, to)
			},
		}))

	rootCmd.AddCommand(records.NewGroup("limpieza", "Registro de limpieza y desinfección",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[cleaning.Entry] { return a.Cleaning() },
		records.SearchSpec[cleaning.Entry]{
			Use:   "zona <zona>",
			Short: "Buscar por zona tratada",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]cleaning.Entry, error) {
				return a.Cleaning().SearchByZone(ctx, token, userID, farmID, args[0])
			},
		}))

	rootCmd.AddCommand(records.NewGroup("personal", "Registro de personal",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[staff.Member] { return a.Staff() },
		records.SearchSpec[staff.Member]{
			Use:   "dni <dni>",
			Short: "Buscar por DNI",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]staff.Member, error) {
				return a.Staff().SearchByDNI(ctx, token, userID, args[0])
			},
		},
		records.SearchSpec[staff.Member]{
			Use:   "activos",
			Short: "Listar el personal en activo",
			Args:  cobra.NoArgs,
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, _ []string) ([]staff.Member, error) {
				return a.Staff().SearchActive(ctx, token, userID, farmID)
			},
		}))

	rootCmd.AddCommand(records.NewGroup("residuos", "Plan de gestión de residuos",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[wasteplan.Plan] { return a.WastePlans() },
		records.SearchSpec[wasteplan.Plan]{
			Use:   "tipo <tipo>",
			Short: "Buscar por tipo de residuo",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]wasteplan.Plan, error) {
				return a.WastePlans().SearchByType(ctx, token, userID, farmID, args[0])
			},
		}))

	rootCmd.AddCommand(records.NewGroup("cadaveres", "Plan de gestión de cadáveres",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[cadaverplan.Plan] { return a.CadaverPlans() },
		records.SearchSpec[cadaverplan.Plan]{
			Use:   "empresa <empresa>",
			Short: "Buscar por empresa de recogida",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]cadaverplan.Plan, error) {
				return a.CadaverPlans().SearchByCompany(ctx, token, userID, farmID, args[0])
			},
		}))

	rootCmd.AddCommand(records.NewGroup("mantenimiento", "Plan de mantenimiento de instalaciones",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[maintenanceplan.Plan] { return a.MaintenancePlans() },
		records.SearchSpec[maintenanceplan.Plan]{
			Use:   "instalacion <nombre>",
			Short: "Buscar por instalación",
			Args:  cobra.ExactArgs(1),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]maintenanceplan.Plan, error) {
				return a.MaintenancePlans().SearchByInstallation(ctx, token, userID, farmID, args[0])
			},
		}))

	rootCmd.AddCommand(records.NewGroup("cursos", "Cursos de formación del personal",
		records.Options{FarmScoped: true},
		func(a *client.App) records.Service[training.Course] { return a.Training() },
		records.SearchSpec[training.Course]{
			Use:   "fechas <desde> <hasta>",
			Short: "Buscar por rango de fechas de inicio",
			Args:  cobra.ExactArgs(2),
			Run: func(ctx context.Context, a *client.App, token, userID, farmID string, args []string) ([]training.Course, error) {
				from, err := parseDate(args[0])
				if err != nil {
					return nil, err
				}
				to, err := parseDate(args[1])
				if err != nil {
					return nil, err
				}
				return a.Training().SearchByDateRange(ctx, token, userID, farmID, from, to)
			},
		}))
}
