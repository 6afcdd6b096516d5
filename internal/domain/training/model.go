// Package training holds the staff training courses of a farm
// (collection cursos_formacion).
package training

import "cuaderno/internal/pocket"

const Collection = "cursos_formacion"

type Wire struct {
	pocket.OwnedRecord
	Titulo              string `json:"titulo,omitempty"`
	EntidadOrganizadora string `json:"entidad_organizadora,omitempty"`
	FechaInicio         string `json:"fecha_inicio,omitempty"`
	FechaFin            string `json:"fecha_fin,omitempty"`
	Horas               int    `json:"horas,omitempty"`
	// Multi-relation to the staff collection; nil is coerced to [].
	Asistentes    []string `json:"asistentes"`
	Observaciones string   `json:"observaciones,omitempty"`
}

type Course struct {
	ID                  string   `json:"id,omitempty"`
	Titulo              string   `json:"titulo,omitempty"`
	EntidadOrganizadora string   `json:"entidadOrganizadora,omitempty"`
	FechaInicio         string   `json:"fechaInicio,omitempty"`
	FechaFin            string   `json:"fechaFin,omitempty"`
	Horas               int      `json:"horas,omitempty"`
	Asistentes          []string `json:"asistentes"`
	Observaciones       string   `json:"observaciones,omitempty"`
	User                string   `json:"user,omitempty"`
	Farm                string   `json:"farm,omitempty"`
	Created             string   `json:"created,omitempty"`
	Updated             string   `json:"updated,omitempty"`
}

func toLocal(w Wire) Course {
	return Course{
		ID:                  w.ID,
		Titulo:              w.Titulo,
		EntidadOrganizadora: w.EntidadOrganizadora,
		FechaInicio:         w.FechaInicio,
		FechaFin:            w.FechaFin,
		Horas:               w.Horas,
		Asistentes:          w.Asistentes,
		Observaciones:       w.Observaciones,
		User:                w.User,
		Farm:                w.Farm,
		Created:             w.Created,
		Updated:             w.Updated,
	}
}

func toWire(l Course) Wire {
	return Wire{
		OwnedRecord:         pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		Titulo:              l.Titulo,
		EntidadOrganizadora: l.EntidadOrganizadora,
		FechaInicio:         l.FechaInicio,
		FechaFin:            l.FechaFin,
		Horas:               l.Horas,
		Asistentes:          l.Asistentes,
		Observaciones:       l.Observaciones,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.Titulo == "" {
		fields = append(fields, "titulo")
	}
	if w.FechaInicio == "" {
		fields = append(fields, "fecha_inicio")
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
	if w.Asistentes == nil {
		w.Asistentes = []string{}
	}
}

func (Course) TableHeader() []string {
	return []string{"ID", "Título", "Entidad", "Inicio", "Horas"}
}

func (l Course) TableRow() []string {
	return []string{l.ID, l.Titulo, l.EntidadOrganizadora, l.FechaInicio, itoa(l.Horas)}
}
