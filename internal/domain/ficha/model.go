package ficha

import (
	"fmt"
	"strings"
	"time"
)

// Ficha is a surgical technique reference card. JSON field names match the
// mobile app's export format, so old backups import cleanly.
type Ficha struct {
	ID            int64  `json:"id"`
	TechniqueName string `json:"nombre_tecnica"`
	Doctor        string `json:"doctor"`
	Description   string `json:"descripcion"`
	Materials     string `json:"materiales"`
}

// New builds a ficha from manual input. Manual creation requires every field,
// including materials; imported fichas may carry an empty materials value.
func New(techniqueName, doctor, description, materials string) (*Ficha, error) {
	f := &Ficha{
		ID:            time.Now().UnixMilli(),
		TechniqueName: strings.TrimSpace(techniqueName),
		Doctor:        strings.TrimSpace(doctor),
		Description:   strings.TrimSpace(description),
		Materials:     strings.TrimSpace(materials),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.Materials == "" {
		return nil, fmt.Errorf("%w: materiales", ErrInvalidData)
	}
	return f, nil
}

// Validate checks the invariants every stored ficha must satisfy. Materials is
// deliberately allowed to be empty here: normalization of imported data may
// only be able to default it.
func (f *Ficha) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("%w: id", ErrInvalidData)
	}
	if strings.TrimSpace(f.TechniqueName) == "" {
		return fmt.Errorf("%w: nombre_tecnica", ErrInvalidData)
	}
	if strings.TrimSpace(f.Doctor) == "" {
		return fmt.Errorf("%w: doctor", ErrInvalidData)
	}
	if strings.TrimSpace(f.Description) == "" {
		return fmt.Errorf("%w: descripcion", ErrInvalidData)
	}
	return nil
}

// MatchesTechnique reports whether name matches the card's technique name,
// ignoring case and surrounding whitespace. Exact match, not substring.
func (f *Ficha) MatchesTechnique(name string) bool {
	return strings.EqualFold(
		strings.TrimSpace(f.TechniqueName),
		strings.TrimSpace(name),
	)
}
