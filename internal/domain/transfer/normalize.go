package transfer

import (
	"strings"

	"fichero/internal/domain/ficha"
)

// Placeholder values written into imported fichas whose fields are missing or
// unusable, so the user can spot and fix them afterwards.
const (
	PlaceholderTechnique   = "Técnica sin especificar - edite para agregar información"
	PlaceholderDoctor      = "Doctor sin especificar - edite para agregar información"
	PlaceholderDescription = "Descripción sin especificar - edite para agregar información"
	PlaceholderMaterials   = "Materiales sin especificar - edite para agregar información"
)

// normalize maps one arbitrary decoded JSON value into a valid ficha,
// field by field. Anything missing or of the wrong type gets its placeholder;
// a missing, non-numeric or already-seen id gets a fresh one. The second
// return value reports whether any defaulting happened.
func normalize(entry any, nextID func() int64, seen map[int64]bool) (ficha.Ficha, bool) {
	defaulted := false

	obj, ok := entry.(map[string]any)
	if !ok {
		obj = map[string]any{}
	}

	field := func(key, placeholder string) string {
		value, ok := obj[key].(string)
		if !ok || strings.TrimSpace(value) == "" {
			defaulted = true
			return placeholder
		}
		return strings.TrimSpace(value)
	}

	var id int64
	if n, ok := obj["id"].(float64); ok && n > 0 && n == float64(int64(n)) && !seen[int64(n)] {
		id = int64(n)
	} else {
		id = nextID()
		defaulted = true
	}
	seen[id] = true

	return ficha.Ficha{
		ID:            id,
		TechniqueName: field("nombre_tecnica", PlaceholderTechnique),
		Doctor:        field("doctor", PlaceholderDoctor),
		Description:   field("descripcion", PlaceholderDescription),
		Materials:     field("materiales", PlaceholderMaterials),
	}, defaulted
}
