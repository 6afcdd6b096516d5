// Package cleaning holds the cleaning and disinfection log of a farm
// (collection registro_limpieza).
package cleaning

import "cuaderno/internal/pocket"

const Collection = "registro_limpieza"

type Wire struct {
	pocket.OwnedRecord
	ProductoEmpleado    string `json:"producto_empleado,omitempty"`
	Fecha               string `json:"fecha,omitempty"`
	ZonaTratada         string `json:"zona_tratada,omitempty"`
	Dosis               string `json:"dosis,omitempty"`
	Responsable         string `json:"responsable,omitempty"`
	DesinfeccionArco    bool   `json:"desinfeccion_arco"`
	DesinfeccionVado    bool   `json:"desinfeccion_vado"`
	DesinfeccionMochila bool   `json:"desinfeccion_mochila"`
	Observaciones       string `json:"observaciones,omitempty"`
}

// Equipment groups the three disinfection installations. The store keeps
// them as three flat booleans; locally they travel together.
type Equipment struct {
	Arco    bool `json:"arco"`
	Vado    bool `json:"vado"`
	Mochila bool `json:"mochila"`
}

type Entry struct {
	ID            string    `json:"id,omitempty"`
	Producto      string    `json:"producto,omitempty"`
	Fecha         string    `json:"fecha,omitempty"`
	ZonaTratada   string    `json:"zonaTratada,omitempty"`
	Dosis         string    `json:"dosis,omitempty"`
	Responsable   string    `json:"responsable,omitempty"`
	Equipos       Equipment `json:"equipos"`
	Observaciones string    `json:"observaciones,omitempty"`
	User          string    `json:"user,omitempty"`
	Farm          string    `json:"farm,omitempty"`
	Created       string    `json:"created,omitempty"`
	Updated       string    `json:"updated,omitempty"`
}

func toLocal(w Wire) Entry {
	return Entry{
		ID:          w.ID,
		Producto:    w.ProductoEmpleado,
		Fecha:       w.Fecha,
		ZonaTratada: w.ZonaTratada,
		Dosis:       w.Dosis,
		Responsable: w.Responsable,
		Equipos: Equipment{
			Arco:    w.DesinfeccionArco,
			Vado:    w.DesinfeccionVado,
			Mochila: w.DesinfeccionMochila,
		},
		Observaciones: w.Observaciones,
		User:          w.User,
		Farm:          w.Farm,
		Created:       w.Created,
		Updated:       w.Updated,
	}
}

func toWire(l Entry) Wire {
	return Wire{
		OwnedRecord:         pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		ProductoEmpleado:    l.Producto,
		Fecha:               l.Fecha,
		ZonaTratada:         l.ZonaTratada,
		Dosis:               l.Dosis,
		Responsable:         l.Responsable,
		DesinfeccionArco:    l.Equipos.Arco,
		DesinfeccionVado:    l.Equipos.Vado,
		DesinfeccionMochila: l.Equipos.Mochila,
		Observaciones:       l.Observaciones,
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

func (Entry) TableHeader() []string {
	return []string{"ID", "Fecha", "Producto", "Zona", "Responsable"}
}

func (l Entry) TableRow() []string {
	return []string{l.ID, l.Fecha, l.Producto, l.ZonaTratada, l.Responsable}
}
