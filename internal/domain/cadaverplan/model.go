// Package cadaverplan holds the cadaver-collection arrangements of a
// farm (collection plan_cadaveres).
package cadaverplan

import "cuaderno/internal/pocket"

const Collection = "plan_cadaveres"

type Wire struct {
	pocket.OwnedRecord
	EmpresaRecogida string `json:"empresa_recogida,omitempty"`
	NumeroContrato  string `json:"numero_contrato,omitempty"`
	Frecuencia      string `json:"frecuencia,omitempty"`
	FechaInicio     string `json:"fecha_inicio,omitempty"`
	FechaFin        string `json:"fecha_fin,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
}

type Plan struct {
	ID              string `json:"id,omitempty"`
	EmpresaRecogida string `json:"empresaRecogida,omitempty"`
	NumeroContrato  string `json:"numeroContrato,omitempty"`
	Frecuencia      string `json:"frecuencia,omitempty"`
	FechaInicio     string `json:"fechaInicio,omitempty"`
	FechaFin        string `json:"fechaFin,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
	User            string `json:"user,omitempty"`
	Farm            string `json:"farm,omitempty"`
	Created         string `json:"created,omitempty"`
	Updated         string `json:"updated,omitempty"`
}

func toLocal(w Wire) Plan {
	return Plan{
		ID:              w.ID,
		EmpresaRecogida: w.EmpresaRecogida,
		NumeroContrato:  w.NumeroContrato,
		Frecuencia:      w.Frecuencia,
		FechaInicio:     w.FechaInicio,
		FechaFin:        w.FechaFin,
		Observaciones:   w.Observaciones,
		User:            w.User,
		Farm:            w.Farm,
		Created:         w.Created,
		Updated:         w.Updated,
	}
}

func toWire(l Plan) Wire {
	return Wire{
		OwnedRecord:     pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		EmpresaRecogida: l.EmpresaRecogida,
		NumeroContrato:  l.NumeroContrato,
		Frecuencia:      l.Frecuencia,
		FechaInicio:     l.FechaInicio,
		FechaFin:        l.FechaFin,
		Observaciones:   l.Observaciones,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.EmpresaRecogida == "" {
		fields = append(fields, "empresa_recogida")
	}
	if w.NumeroContrato == "" {
		fields = append(fields, "numero_contrato")
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
	return []string{"ID", "Empresa", "Contrato", "Frecuencia", "Inicio"}
}

func (l Plan) TableRow() []string {
	return []string{l.ID, l.EmpresaRecogida, l.NumeroContrato, l.Frecuencia, l.FechaInicio}
}
