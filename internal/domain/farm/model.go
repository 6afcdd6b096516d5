// Package farm holds the registered farms themselves (collection
// explotaciones). Farms scope every other collection and are owned but
// not farm-scoped.
package farm

import "cuaderno/internal/pocket"

const Collection = "explotaciones"

type Wire struct {
	pocket.OwnedRecord
	Nombre     string `json:"nombre,omitempty"`
	CodigoREGA string `json:"codigo_rega,omitempty"`
	Direccion  string `json:"direccion,omitempty"`
	Municipio  string `json:"municipio,omitempty"`
	Provincia  string `json:"provincia,omitempty"`
	Especie    string `json:"especie,omitempty"`
	Capacidad  int    `json:"capacidad,omitempty"`
}

type Farm struct {
	ID         string `json:"id,omitempty"`
	Nombre     string `json:"nombre,omitempty"`
	CodigoREGA string `json:"codigoRega,omitempty"`
	Direccion  string `json:"direccion,omitempty"`
	Municipio  string `json:"municipio,omitempty"`
	Provincia  string `json:"provincia,omitempty"`
	Especie    string `json:"especie,omitempty"`
	Capacidad  int    `json:"capacidad,omitempty"`
	User       string `json:"user,omitempty"`
	Created    string `json:"created,omitempty"`
	Updated    string `json:"updated,omitempty"`
}

func toLocal(w Wire) Farm {
	return Farm{
		ID:         w.ID,
		Nombre:     w.Nombre,
		CodigoREGA: w.CodigoREGA,
		Direccion:  w.Direccion,
		Municipio:  w.Municipio,
		Provincia:  w.Provincia,
		Especie:    w.Especie,
		Capacidad:  w.Capacidad,
		User:       w.User,
		Created:    w.Created,
		Updated:    w.Updated,
	}
}

func toWire(l Farm) Wire {
	return Wire{
		OwnedRecord: pocket.OwnedRecord{User: l.User},
		Nombre:      l.Nombre,
		CodigoREGA:  l.CodigoREGA,
		Direccion:   l.Direccion,
		Municipio:   l.Municipio,
		Provincia:   l.Provincia,
		Especie:     l.Especie,
		Capacidad:   l.Capacidad,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.Nombre == "" {
		fields = append(fields, "nombre")
	}
	if w.CodigoREGA == "" {
		fields = append(fields, "codigo_rega")
	}
	if w.User == "" {
		fields = append(fields, "user")
	}
	return fields
}

func (Farm) TableHeader() []string {
	return []string{"ID", "Nombre", "REGA", "Municipio", "Especie"}
}

func (l Farm) TableRow() []string {
	return []string{l.ID, l.Nombre, l.CodigoREGA, l.Municipio, l.Especie}
}
