package records

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cuaderno/internal/domain/farmdetail"
)

// NewDatosGroup covers datos_explotacion. There is at most one record
// per farm, so instead of the list/create/update verbs the group reads
// and writes the farm's single record.
func NewDatosGroup() *cobra.Command {
	group := &cobra.Command{
		Use:   "datos",
		Short: "Datos generales de la explotación",
	}

	group.AddCommand(newDatosGetCmd())
	group.AddCommand(newDatosSetCmd())
	return group
}

func newDatosGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Ver los datos de la explotación",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			token, userID, err := app.Credentials()
			if err != nil {
				return err
			}
			farmID, err := resolveFarm(cmd, app, true)
			if err != nil {
				return err
			}

			detail, err := app.FarmDetails().GetByFarm(cmd.Context(), token, userID, farmID)
			if err != nil {
				return err
			}
			if detail == nil {
				fmt.Println("La explotación aún no tiene datos registrados")
				return nil
			}
			return printRecord(cmd, detail)
		},
	}
}

func newDatosSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Guardar los datos de la explotación",
		Long: `Crea el registro de datos si la explotación aún no tiene uno y lo
actualiza en caso contrario.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			token, userID, err := app.Credentials()
			if err != nil {
				return err
			}
			farmID, err := resolveFarm(cmd, app, true)
			if err != nil {
				return err
			}

			data, _ := cmd.Flags().GetString("data")
			rec, err := decodeRecord[farmdetail.Detail](data, userID, farmID, Options{FarmScoped: true})
			if err != nil {
				return err
			}

			existing, err := app.FarmDetails().GetByFarm(cmd.Context(), token, userID, farmID)
			if err != nil {
				return err
			}

			var saved farmdetail.Detail
			if existing == nil {
				saved, err = app.FarmDetails().Create(cmd.Context(), token, rec)
			} else {
				saved, err = app.FarmDetails().Update(cmd.Context(), token, existing.ID, rec, userID)
			}
			if err != nil {
				return err
			}

			fmt.Println(color.GreenString("Datos guardados"))
			return printRecord(cmd, saved)
		},
	}

	cmd.Flags().String("data", "", "campos del registro en JSON")
	return cmd
}
