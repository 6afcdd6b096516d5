// Package staff is the registry of farm workers (collection personal).
// Staff records back the "responsable" relations of the other modules.
package staff

import "cuaderno/internal/pocket"

const Collection = "personal"

type Wire struct {
	pocket.OwnedRecord
	Nombre    string `json:"nombre,omitempty"`
	Apellidos string `json:"apellidos,omitempty"`
	DNI       string `json:"dni,omitempty"`
	Puesto    string `json:"puesto,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	FechaAlta string `json:"fecha_alta,omitempty"`
	FechaBaja string `json:"fecha_baja,omitempty"`
	// Multi-select: always serialized, nil is coerced to [] before a
	// create call so the store never sees a null.
	Titulaciones []string `json:"titulaciones"`
	Activo       bool     `json:"activo"`
}

type Member struct {
	ID           string   `json:"id,omitempty"`
	Nombre       string   `json:"nombre,omitempty"`
	Apellidos    string   `json:"apellidos,omitempty"`
	DNI          string   `json:"dni,omitempty"`
	Puesto       string   `json:"puesto,omitempty"`
	Telefono     string   `json:"telefono,omitempty"`
	FechaAlta    string   `json:"fechaAlta,omitempty"`
	FechaBaja    string   `json:"fechaBaja,omitempty"`
	Titulaciones []string `json:"titulaciones"`
	Activo       bool     `json:"activo"`
	User         string   `json:"user,omitempty"`
	Farm         string   `json:"farm,omitempty"`
	Created      string   `json:"created,omitempty"`
	Updated      string   `json:"updated,omitempty"`
}

func toLocal(w Wire) Member {
	return Member{
		ID:           w.ID,
		Nombre:       w.Nombre,
		Apellidos:    w.Apellidos,
		DNI:          w.DNI,
		Puesto:       w.Puesto,
		Telefono:     w.Telefono,
		FechaAlta:    w.FechaAlta,
		FechaBaja:    w.FechaBaja,
		Titulaciones: w.Titulaciones,
		Activo:       w.Activo,
		User:         w.User,
		Farm:         w.Farm,
		Created:      w.Created,
		Updated:      w.Updated,
	}
}

func toWire(l Member) Wire {
	return Wire{
		OwnedRecord:  pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		Nombre:       l.Nombre,
		Apellidos:    l.Apellidos,
		DNI:          l.DNI,
		Puesto:       l.Puesto,
		Telefono:     l.Telefono,
		FechaAlta:    l.FechaAlta,
		FechaBaja:    l.FechaBaja,
		Titulaciones: l.Titulaciones,
		Activo:       l.Activo,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.Nombre == "" {
		fields = append(fields, "nombre")
	}
	if w.DNI == "" {
		fields = append(fields, "dni")
	}
	if w.User == "" {
		fields = append(fields, "user")
	}
	if w.Farm == "" {
		fields = append(fields, "farm")
	}
	return fields
}

func normalize(w *Wire) {
	if w.Titulaciones == nil {
		w.Titulaciones = []string{}
	}
}

func (Member) TableHeader() []string {
	return []string{"ID", "Nombre", "Apellidos", "DNI", "Puesto"}
}

func (l Member) TableRow() []string {
	return []string{l.ID, l.Nombre, l.Apellidos, l.DNI, l.Puesto}
}
