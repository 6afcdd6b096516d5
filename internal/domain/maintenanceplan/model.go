// Package maintenanceplan holds the installation-maintenance schedule
// of a farm (collection plan_mantenimiento).
package maintenanceplan

import "cuaderno/internal/pocket"

const Collection = "plan_mantenimiento"

type Wire struct {
	pocket.OwnedRecord
	Instalacion     string `json:"instalacion,omitempty"`
	Tarea           string `json:"tarea,omitempty"`
	Periodicidad    string `json:"periodicidad,omitempty"`
	UltimaRevision  string `json:"ultima_revision,omitempty"`
	ProximaRevision string `json:"proxima_revision,omitempty"`
	Responsable     string `json:"responsable,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
}

type Plan struct {
	ID              string `json:"id,omitempty"`
	Instalacion     string `json:"instalacion,omitempty"`
	Tarea           string `json:"tarea,omitempty"`
	Periodicidad    string `json:"periodicidad,omitempty"`
	UltimaRevision  string `json:"ultimaRevision,omitempty"`
	ProximaRevision string `json:"proximaRevision,omitempty"`
	Responsable     string `json:"responsable,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
	User            string `json:"user,omitempty"`
	Farm            string `json:"farm,omitempty"`
	Created         string `json:"created,omitempty"`
	Updated         string `json:"updated,omitempty"`
}

func toLocal(w Wire) Plan {
	return Plan{
		ID:              w.ID,
		Instalacion:     w.Instalacion,
		Tarea:           w.Tarea,
		Periodicidad:    w.Periodicidad,
		UltimaRevision:  w.UltimaRevision,
		ProximaRevision: w.ProximaRevision,
		Responsable:     w.Responsable,
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
		Instalacion:     l.Instalacion,
		Tarea:           l.Tarea,
		Periodicidad:    l.Periodicidad,
		UltimaRevision:  l.UltimaRevision,
		ProximaRevision: l.ProximaRevision,
		Responsable:     l.Responsable,
		Observaciones:   l.Observaciones,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.Instalacion == "" {
		fields = append(fields, "instalacion")
	}
	if w.Tarea == "" {
		fields = append(fields, "tarea")
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
	return []string{"ID", "Instalación", "Tarea", "Periodicidad", "Última revisión"}
}

func (l Plan) TableRow() []string {
	return []string{l.ID, l.Instalacion, l.Tarea, l.Periodicidad, l.UltimaRevision}
}
