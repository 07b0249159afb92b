package pago

import (
	"fmt"
	"time"
)

type Source string

const (
	SourceClinic  Source = "clinic"
	SourcePatient Source = "patient"
)

func (s Source) Valid() bool {
	return s == SourceClinic || s == SourcePatient
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// DoctorUnspecified is the default the legacy-field shim falls back to when an
// old payment carries neither doctor nor pacienteClinica.
const DoctorUnspecified = "No especificado"

// Pago is a tracked payment tied to a ficha. JSON field names match the mobile
// app's stored format. The doctor here is the one who performed the procedure
// the payment covers, which may differ from the ficha's doctor.
type Pago struct {
	ID          int64      `json:"id"`
	FichaID     int64      `json:"fichaId"`
	Doctor      string     `json:"doctor"`
	Source      Source     `json:"paymentSource"`
	Status      Status     `json:"paymentStatus"`
	Amount      *float64   `json:"amount,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func (p *Pago) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: id", ErrInvalidData)
	}
	if p.FichaID <= 0 {
		return fmt.Errorf("%w: fichaId", ErrInvalidData)
	}
	if !p.Source.Valid() {
		return fmt.Errorf("%w: paymentSource %q", ErrInvalidData, p.Source)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: paymentStatus %q", ErrInvalidData, p.Status)
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return fmt.Errorf("%w: amount debe ser mayor a 0", ErrInvalidData)
	}
	// Patient payments always carry an amount; clinic ones may get it later.
	if p.Source == SourcePatient && p.Amount == nil {
		return fmt.Errorf("%w: amount requerido para pagos de paciente", ErrInvalidData)
	}
	return nil
}

// Partial holds a partial update for Update: nil fields are left untouched.
type Partial struct {
	Doctor      *string
	Source      *Source
	Status      *Status
	Amount      *float64
	PaymentDate *time.Time
	Notes       *string
}
