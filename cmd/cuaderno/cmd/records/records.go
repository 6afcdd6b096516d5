// Package records builds the CRUD command groups for the farm logbook
// collections. Every collection shares the same verbs, so one generic
// factory produces the whole group from its service accessor.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cuaderno/cmd/cuaderno/cmd/types"
	"cuaderno/internal/app/client"
)

// Tabler renders one record as a table row.
type Tabler interface {
	TableHeader() []string
	TableRow() []string
}

// Service is the uniform surface every collection service exposes.
type Service[L Tabler] interface {
	List(ctx context.Context, token, userID, farmID string, page, perPage int) ([]L, error)
	GetByID(ctx context.Context, token, id, userID string) (L, error)
	Create(ctx context.Context, token string, rec L) (L, error)
	Update(ctx context.Context, token, id string, rec L, userID string) (L, error)
	Delete(ctx context.Context, token, id, userID string) error
}

// Options tune the generated group.
type Options struct {
	// FarmScoped records require an explotación; farm records themselves
	// do not.
	FarmScoped bool
}

// SearchSpec declares one entity-specific search subcommand.
type SearchSpec[L Tabler] struct {
	Use   string
	Short string
	Args  cobra.PositionalArgs
	Run   func(ctx context.Context, app *client.App, token, userID, farmID string, args []string) ([]L, error)
}

// NewGroup builds the list/get/create/update/delete command group for
// one collection, plus any entity-specific searches.
func NewGroup[L Tabler](use, short string, opts Options, service func(*client.App) Service[L], searches ...SearchSpec[L]) *cobra.Command {
	group := &cobra.Command{
		Use:   use,
		Short: short,
	}

	group.AddCommand(newListCmd(opts, service))
	group.AddCommand(newGetCmd(service))
	group.AddCommand(newCreateCmd(opts, service))
	group.AddCommand(newUpdateCmd(opts, service))
	group.AddCommand(newDeleteCmd(opts, service))
	for _, spec := range searches {
		group.AddCommand(newSearchCmd(spec))
	}
	return group
}

func newSearchCmd[L Tabler](spec SearchSpec[L]) *cobra.Command {
	return &cobra.Command{
		Use:   spec.Use,
		Short: spec.Short,
		Args:  spec.Args,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			token, userID, err := app.Credentials()
			if err != nil {
				return err
			}
			farmID, err := resolveFarm(cmd, app, false)
			if err != nil {
				return err
			}

			records, err := spec.Run(cmd.Context(), app, token, userID, farmID, args)
			if err != nil {
				return err
			}
			return printList(cmd, records)
		},
	}
}

// reload prints the fresh first page after a mutation so the caller
// sees the collection as the store now holds it.
func reload[L Tabler](cmd *cobra.Command, app *client.App, service func(*client.App) Service[L], token, userID, farmID string) error {
	records, err := service(app).List(cmd.Context(), token, userID, farmID, 1, app.PageSize())
	if err != nil {
		return err
	}
	return printList(cmd, records)
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// resolveFarm picks the farm from --farm or the remembered default.
func resolveFarm(cmd *cobra.Command, app *client.App, required bool) (string, error) {
	farmID, _ := cmd.Flags().GetString("farm")
	if farmID == "" {
		farmID = app.CurrentFarm()
	}
	if farmID == "" && required {
		return "", fmt.Errorf("no hay explotación seleccionada, usa --farm o: cuaderno explotaciones use <id>")
	}
	return farmID, nil
}

// decodeRecord parses the --data JSON and stamps the ownership fields.
func decodeRecord[L Tabler](data, userID, farmID string, opts Options) (L, error) {
	var zero L

	fields := map[string]any{}
	if data != "" {
		if err := json.Unmarshal([]byte(data), &fields); err != nil {
			return zero, fmt.Errorf("invalid JSON in --data: %w", err)
		}
	}
	fields["user"] = userID
	if opts.FarmScoped {
		fields["farm"] = farmID
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}

	var rec L
	if err := json.Unmarshal(merged, &rec); err != nil {
		return zero, fmt.Errorf("invalid record data: %w", err)
	}
	return rec, nil
}

func newListCmd[L Tabler](opts Options, service func(*client.App) Service[L]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar registros",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			token, userID, err := app.Credentials()
			if err != nil {
				return err
			}
			farmID, err := resolveFarm(cmd, app, false)
			if err != nil {
				return err
			}

			page, _ := cmd.Flags().GetInt("page")
			perPage, _ := cmd.Flags().GetInt("per-page")
			if perPage <= 0 {
				perPage = app.PageSize()
			}

			records, err := service(app).List(cmd.Context(), token, userID, farmID, page, perPage)
			if err != nil {
				return err
			}
			return printList(cmd, records)
		},
	}

	cmd.Flags().Int("page", 1, "página a mostrar")
	cmd.Flags().Int("per-page", 0, "registros por página")
	return cmd
}

func newGetCmd[L Tabler](service func(*client.App) Service[L]) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Ver un registro",
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

			rec, err := service(app).GetByID(cmd.Context(), token, args[0], userID)
			if err != nil {
				return err
			}
			return printRecord(cmd, rec)
		},
	}
}

func newCreateCmd[L Tabler](opts Options, service func(*client.App) Service[L]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un registro",
		Long:  `Crea un registro a partir de los campos JSON pasados en --data.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			token, userID, err := app.Credentials()
			if err != nil {
				return err
			}
			farmID, err := resolveFarm(cmd, app, opts.FarmScoped)
			if err != nil {
				return err
			}

			data, _ := cmd.Flags().GetString("data")
			rec, err := decodeRecord[L](data, userID, farmID, opts)
			if err != nil {
				return err
			}

			created, err := service(app).Create(cmd.Context(), token, rec)
			if err != nil {
				return err
			}

			fmt.Println(color.GreenString("Registro creado: %s", recordID(created)))
			return reload(cmd, app, service, token, userID, farmID)
		},
	}

	cmd.Flags().String("data", "", "campos del registro en JSON")
	return cmd
}

func newUpdateCmd[L Tabler](opts Options, service func(*client.App) Service[L]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar un registro",
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
			farmID, err := resolveFarm(cmd, app, false)
			if err != nil {
				return err
			}

			data, _ := cmd.Flags().GetString("data")
			rec, err := decodeRecord[L](data, userID, farmID, opts)
			if err != nil {
				return err
			}

			if _, err := service(app).Update(cmd.Context(), token, args[0], rec, userID); err != nil {
				return err
			}

			fmt.Println(color.GreenString("Registro actualizado"))
			return reload(cmd, app, service, token, userID, farmID)
		},
	}

	cmd.Flags().String("data", "", "campos del registro en JSON")
	return cmd
}

func newDeleteCmd[L Tabler](opts Options, service func(*client.App) Service[L]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un registro",
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

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				fmt.Printf("¿Eliminar el registro %s? (s/N): ", args[0])
				var answer string
				_, _ = fmt.Scanln(&answer)
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "s" && a != "si" {
					fmt.Println("Cancelado")
					return nil
				}
			}

			if err := service(app).Delete(cmd.Context(), token, args[0], userID); err != nil {
				return err
			}

			farmID, err := resolveFarm(cmd, app, false)
			if err != nil {
				return err
			}

			fmt.Println(color.GreenString("Registro eliminado"))
			return reload(cmd, app, service, token, userID, farmID)
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "eliminar sin confirmación")
	return cmd
}

func printList[L Tabler](cmd *cobra.Command, records []L) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No hay registros")
		return nil
	}

	var zero L
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(zero.TableHeader(), "\t"))
	for _, rec := range records {
		fmt.Fprintln(w, strings.Join(rec.TableRow(), "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d\n", len(records))
	return nil
}

func printRecord(cmd *cobra.Command, rec any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rec)
}

// recordID pulls the id out of a record through its JSON form.
func recordID(rec any) string {
	data, err := json.Marshal(rec)
	if err != nil {
		return ""
	}
	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	return envelope.ID
}
