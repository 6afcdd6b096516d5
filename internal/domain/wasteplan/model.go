// Package wasteplan holds the waste-management plan entries of a farm
// (collection plan_residuos).
package wasteplan

import "cuaderno/internal/pocket"

const Collection = "plan_residuos"

type Wire struct {
	pocket.OwnedRecord
	TipoResiduo      string  `json:"tipo_residuo,omitempty"`
	CantidadEstimada float64 `json:"cantidad_estimada,omitempty"`
	Unidad           string  `json:"unidad,omitempty"`
	Destino          string  `json:"destino,omitempty"`
	GestorAutorizado string  `json:"gestor_autorizado,omitempty"`
	FechaRetirada    string  `json:"fecha_retirada,omitempty"`
	Observaciones    string  `json:"observaciones,omitempty"`
}

type Plan struct {
	ID               string  `json:"id,omitempty"`
	TipoResiduo      string  `json:"tipoResiduo,omitempty"`
	CantidadEstimada float64 `json:"cantidadEstimada,omitempty"`
	Unidad           string  `json:"unidad,omitempty"`
	Destino          string  `json:"destino,omitempty"`
	GestorAutorizado string  `json:"gestorAutorizado,omitempty"`
	FechaRetirada    string  `json:"fechaRetirada,omitempty"`
	Observaciones    string  `json:"observaciones,omitempty"`
	User             string  `json:"user,omitempty"`
	Farm             string  `json:"farm,omitempty"`
	Created          string  `json:"created,omitempty"`
	Updated          string  `json:"updated,omitempty"`
}

func toLocal(w Wire) Plan {
	return Plan{
		ID:               w.ID,
		TipoResiduo:      w.TipoResiduo,
		CantidadEstimada: w.CantidadEstimada,
		Unidad:           w.Unidad,
		Destino:          w.Destino,
		GestorAutorizado: w.GestorAutorizado,
		FechaRetirada:    w.FechaRetirada,
		Observaciones:    w.Observaciones,
		User:             w.User,
		Farm:             w.Farm,
		Created:          w.Created,
		Updated:          w.Updated,
	}
}

func toWire(l Plan) Wire {
	return Wire{
		OwnedRecord:      pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		TipoResiduo:      l.TipoResiduo,
		CantidadEstimada: l.CantidadEstimada,
		Unidad:           l.Unidad,
		Destino:          l.Destino,
		GestorAutorizado: l.GestorAutorizado,
		FechaRetirada:    l.FechaRetirada,
		Observaciones:    l.Observaciones,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.TipoResiduo == "" {
		fields = append(fields, "tipo_residuo")
	}
	if w.Destino == "" {
		fields = append(fields, "destino")
	}
	if w.User == "" {
		fields = append(fields, "user")
	}
	if w.Farm == "" {
		fields = append(fields, "farm")
	}
	return fields
}

func (Plan) TableHeader() []string {
	return []string{"ID", "Residuo", "Destino", "Gestor", "Retirada"}
}

func (l Plan) TableRow() []string {
	return []string{l.ID, l.TipoResiduo, l.Destino, l.GestorAutorizado, l.FechaRetirada}
}
