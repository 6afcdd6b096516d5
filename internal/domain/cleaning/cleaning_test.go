package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cuaderno/internal/pocket"
)

func TestEquipmentRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		wire Wire
	}{
		{name: "all off", wire: Wire{}},
		{name: "arco only", wire: Wire{DesinfeccionArco: true}},
		{name: "vado and mochila", wire: Wire{DesinfeccionVado: true, DesinfeccionMochila: true}},
		{name: "all on", wire: Wire{DesinfeccionArco: true, DesinfeccionVado: true, DesinfeccionMochila: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := toLocal(tt.wire)
			assert.Equal(t, tt.wire.DesinfeccionArco, entry.Equipos.Arco)
			assert.Equal(t, tt.wire.DesinfeccionVado, entry.Equipos.Vado)
			assert.Equal(t, tt.wire.DesinfeccionMochila, entry.Equipos.Mochila)

			back := toWire(entry)
			assert.Equal(t, tt.wire.DesinfeccionArco, back.DesinfeccionArco)
			assert.Equal(t, tt.wire.DesinfeccionVado, back.DesinfeccionVado)
			assert.Equal(t, tt.wire.DesinfeccionMochila, back.DesinfeccionMochila)
		})
	}
}

func TestFlatFieldsMapToNestedEntry(t *testing.T) {
	entry := toLocal(Wire{
		OwnedRecord:      pocket.OwnedRecord{BaseRecord: pocket.BaseRecord{ID: "c1"}, User: "u1", Farm: "f1"},
		ProductoEmpleado: "lejía",
		ZonaTratada:      "nave 2",
		DesinfeccionArco: true,
	})

	assert.Equal(t, "c1", entry.ID)
	assert.Equal(t, "lejía", entry.Producto)
	assert.Equal(t, "nave 2", entry.ZonaTratada)
	assert.True(t, entry.Equipos.Arco)
	assert.False(t, entry.Equipos.Vado)
}

func TestMissingRequiredFields(t *testing.T) {
	fields := missing(Wire{ProductoEmpleado: "lejía", Fecha: "2024-03-01"})
	assert.Equal(t, []string{"responsable", "user", "farm"}, fields)
}
