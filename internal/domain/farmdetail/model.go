// Package farmdetail holds the environmental and resource details of a
// farm (collection datos_explotacion). Unlike the log collections there
// is at most one record per farm, and a farm without one is an expected
// state, not an error.
package farmdetail

import "cuaderno/internal/pocket"

const Collection = "datos_explotacion"

type Wire struct {
	pocket.OwnedRecord
	ConsumoAgua        float64 `json:"consumo_agua,omitempty"`
	ConsumoEnergia     float64 `json:"consumo_energia,omitempty"`
	SuperficieTotal    float64 `json:"superficie_total,omitempty"`
	NumeroAnimales     int     `json:"numero_animales,omitempty"`
	OrigenAgua         string  `json:"origen_agua,omitempty"`
	SistemaVentilacion string  `json:"sistema_ventilacion,omitempty"`
	Observaciones      string  `json:"observaciones,omitempty"`
}

type Detail struct {
	ID                 string  `json:"id,omitempty"`
	ConsumoAgua        float64 `json:"consumoAgua,omitempty"`
	ConsumoEnergia     float64 `json:"consumoEnergia,omitempty"`
	SuperficieTotal    float64 `json:"superficieTotal,omitempty"`
	NumeroAnimales     int     `json:"numeroAnimales,omitempty"`
	OrigenAgua         string  `json:"origenAgua,omitempty"`
	SistemaVentilacion string  `json:"sistemaVentilacion,omitempty"`
	Observaciones      string  `json:"observaciones,omitempty"`
	User               string  `json:"user,omitempty"`
	Farm               string  `json:"farm,omitempty"`
	Created            string  `json:"created,omitempty"`
	Updated            string  `json:"updated,omitempty"`
}

func toLocal(w Wire) Detail {
	return Detail{
		ID:                 w.ID,
		ConsumoAgua:        w.ConsumoAgua,
		ConsumoEnergia:     w.ConsumoEnergia,
		SuperficieTotal:    w.SuperficieTotal,
		NumeroAnimales:     w.NumeroAnimales,
		OrigenAgua:         w.OrigenAgua,
		SistemaVentilacion: w.SistemaVentilacion,
		Observaciones:      w.Observaciones,
		User:               w.User,
		Farm:               w.Farm,
		Created:            w.Created,
		Updated:            w.Updated,
	}
}

func toWire(l Detail) Wire {
	return Wire{
		OwnedRecord:        pocket.OwnedRecord{User: l.User, Farm: l.Farm},
		ConsumoAgua:        l.ConsumoAgua,
		ConsumoEnergia:     l.ConsumoEnergia,
		SuperficieTotal:    l.SuperficieTotal,
		NumeroAnimales:     l.NumeroAnimales,
		OrigenAgua:         l.OrigenAgua,
		SistemaVentilacion: l.SistemaVentilacion,
		Observaciones:      l.Observaciones,
	}
}

func missing(w Wire) []string {
	var fields []string
	if w.User == "" {
		fields = append(fields, "user")
	}
	if w.Farm == "" {
		fields = append(fields, "farm")
	}
	return fields
}

func (Detail) TableHeader() []string {
	return []string{"ID", "Animales", "Superficie", "Agua", "Energía"}
}

func (l Detail) TableRow() []string {
	return []string{
		l.ID,
		itoa(l.NumeroAnimales),
		ftoa(l.SuperficieTotal),
		ftoa(l.ConsumoAgua),
		ftoa(l.ConsumoEnergia),
	}
}
