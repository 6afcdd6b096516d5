// Package pestlog holds the pest-control log entries of a farm
// (collection registro_plagas): which biocide was applied, when, by
// whom and against what.
package pestlog

import "cuaderno/internal/pocket"

const Collection = "registro_plagas"

// Wire is the collection schema as stored.
type Wire struct {
	pocket.OwnedRecord
	ProductoEmpleado string `json:"producto_empleado,omitempty"`
	NumeroRegistro   string `json:"numero_registro,omitempty"`
	Fecha            string `json:"fecha,omitempty"`
	PlagaDetectada   string `json:"plaga_detectada,omitempty"`
	Dosis            string `json:"dosis,omitempty"`
	MetodoAplicacion string `json:"metodo_aplicacion,omitempty"`
	Responsable      string `json:"responsable,omitempty"`
	Observaciones    string `json:"observaciones,omitempty"`
}

// Log is the local shape consumed by the presentation layer.
type Log struct {
	ID               string `json:"id,omitempty"`
	ProductoEmpleado string `json:"productoEmpleado,omitempty"`
	NumeroRegistro   string `json:"numeroRegistro,omitempty"`
	Fecha            string `json:"fecha,omitempty"`
	PlagaDetectada   string `json:"plagaDetectada,omitempty"`
	Dosis            string `json:"dosis,omitempty"`
	MetodoAplicacion string `json:"metodoAplicacion,omitempty"`
	Responsable      string `json:"responsable,omitempty"`
	Observaciones    string `json:"observaciones,omitempty"`
	User             string `json:"user,omitempty"`
	Farm             string `json:"farm,omitempty"`
	Created          string `json:"created,omitempty"`
	Updated          string `json:"updated,omitempty"`
}

func toLocal(w Wire) Log {
	return Log{
		ID:               w.ID,
		ProductoEmpleado: w.ProductoEmpleado,
		NumeroRegistro:   w.NumeroRegistro,
		Fecha:            w.Fecha,
		PlagaDetectada:   w.PlagaDetectada,
		Dosis:            w.Dosis,
		MetodoAplicacion: w.MetodoAplicacion,
		Responsable:      w.Responsable,
		Observaciones:    w.Observaciones,
		User:             w.User,
		Farm:             w.Farm,
		Created:          w.Created,
		Updated:          w.Updated,
	}
}

// toWire builds the payload for create and update calls. Id and
// timestamps are server-assigned and deliberately dropped.
func toWire(l Log) Wire {
	return Wire{
		OwnedRecord:      pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		ProductoEmpleado: l.ProductoEmpleado,
		NumeroRegistro:   l.NumeroRegistro,
		Fecha:            l.Fecha,
		PlagaDetectada:   l.PlagaDetectada,
		Dosis:            l.Dosis,
		MetodoAplicacion: l.MetodoAplicacion,
		Responsable:      l.Responsable,
		Observaciones:    l.Observaciones,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.ProductoEmpleado == "" {
		fields = append(fields, "producto_empleado")
	}
	if w.Fecha == "" {
		fields = append(fields, "fecha")
	}
	if w.Responsable == "" {
		fields = append(fields, "responsable")
	}
	if w.User == "" {
		fields = append(fields, "user")
	}
	if w.Farm == "" {
		fields = append(fields, "farm")
	}
	return fields
}

func (Log) TableHeader() []string {
	return []string{"ID", "Fecha", "Producto", "Plaga", "Responsable"}
}

func (l Log) TableRow() []string {
	return []string{l.ID, l.Fecha, l.ProductoEmpleado, l.PlagaDetectada, l.Responsable}
}
