package pago

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"fichero/internal/infrastructure/storage"
)

const storageKey = "payments_storage"

// Store keeps the payment collection as one JSON array under a single storage
// key, read-modify-write per operation like the ficha store. It shares no
// storage transaction with the ficha collection, so a deleted ficha can leave
// orphaned payments behind; ListOrphans exposes them for an explicit sweep.
type Store struct {
	kv  storage.KV
	log *slog.Logger
	now func() time.Time
	mu  sync.Mutex
}

func NewStore(kv storage.KV, log *slog.Logger) *Store {
	return &Store{kv: kv, log: log, now: time.Now}
}

// legacyPago carries the pre-doctor schema field so old collections load.
type legacyPago struct {
	Pago
	PacienteClinica string `json:"pacienteClinica,omitempty"`
}

// LoadAll returns the stored collection, fail-open like the ficha store.
// Payments saved by the old schema version have their doctor filled from the
// legacy pacienteClinica field, defaulting to DoctorUnspecified.
func (s *Store) LoadAll(ctx context.Context) []Pago {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll(ctx)
}

func (s *Store) loadAll(ctx context.Context) []Pago {
	blob, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Warn("no se pudieron leer los pagos", "error", err)
		}
		return []Pago{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		s.log.Warn("colección de pagos corrupta, se ignora", "error", err)
		return []Pago{}
	}

	pagos := make([]Pago, 0, len(raw))
	for _, entry := range raw {
		var lp legacyPago
		if err := json.Unmarshal(entry, &lp); err != nil {
			s.log.Warn("pago ilegible descartado", "error", err)
			continue
		}
		p := lp.Pago
		if p.Doctor == "" {
			if lp.PacienteClinica != "" {
				p.Doctor = lp.PacienteClinica
			} else {
				p.Doctor = DoctorUnspecified
			}
		}
		pagos = append(pagos, p)
	}
	return pagos
}

// SaveAll overwrites the whole collection. This is the batch full-replacement
// path; it does not re-validate entries.
func (s *Store) SaveAll(ctx context.Context, pagos []Pago) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAll(ctx, pagos)
}

func (s *Store) saveAll(ctx context.Context, pagos []Pago) error {
	blob, err := json.Marshal(pagos)
	if err != nil {
		return fmt.Errorf("serialize pagos: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, blob); err != nil {
		return fmt.Errorf("persist pagos: %w", err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, p Pago) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pagos := s.loadAll(ctx)
	pagos = append(pagos, p)
	return s.saveAll(ctx, pagos)
}

// GetByFichaID returns the first payment referencing the ficha, or nil.
//
// A ficha can have several payments; callers that mean "all payments for this
// ficha" should use GetManyByFichaIDs. This first-match lookup survives for
// the one legacy caller that only needs to know about the earliest payment.
func (s *Store) GetByFichaID(ctx context.Context, fichaID int64) *Pago {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.loadAll(ctx) {
		if p.FichaID == fichaID {
			return &p
		}
	}
	return nil
}

// GetManyByFichaIDs returns every payment whose ficha is in the given set.
func (s *Store) GetManyByFichaIDs(ctx context.Context, fichaIDs []int64) []Pago {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []Pago
	for _, p := range s.loadAll(ctx) {
		if slices.Contains(fichaIDs, p.FichaID) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Update merges the non-nil fields of partial into the payment with the given
// id. A missing id is a no-op, matching the original. A set amount is
// immutable (ErrAmountImmutable), and so is the paid status: the only way out
// of paid is deletion (ErrStatusImmutable).
func (s *Store) Update(ctx context.Context, id int64, partial Partial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pagos := s.loadAll(ctx)
	for i := range pagos {
		if pagos[i].ID != id {
			continue
		}
		if partial.Amount != nil && pagos[i].Amount != nil && *partial.Amount != *pagos[i].Amount {
			return ErrAmountImmutable
		}
		if partial.Status != nil && pagos[i].Status == StatusPaid && *partial.Status != StatusPaid {
			return ErrStatusImmutable
		}
		if partial.Doctor != nil {
			pagos[i].Doctor = *partial.Doctor
		}
		if partial.Source != nil {
			pagos[i].Source = *partial.Source
		}
		if partial.Status != nil {
			pagos[i].Status = *partial.Status
		}
		if partial.Amount != nil {
			pagos[i].Amount = partial.Amount
		}
		if partial.PaymentDate != nil {
			pagos[i].PaymentDate = partial.PaymentDate
		}
		if partial.Notes != nil {
			pagos[i].Notes = *partial.Notes
		}
		return s.saveAll(ctx, pagos)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pagos := s.loadAll(ctx)
	kept := pagos[:0]
	for _, p := range pagos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.saveAll(ctx, kept)
}

// ListByMonth returns the payments belonging to a month view. A payment is
// included if it is paid and its payment date falls in (year, month), or if it
// is pending and (year, month) is the real current month: pending payments
// always hang off the current month until they are paid.
func (s *Store) ListByMonth(ctx context.Context, year int, month time.Month) []Pago {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowYear, nowMonth, _ := s.now().Date()
	current := year == nowYear && month == nowMonth

	var matches []Pago
	for _, p := range s.loadAll(ctx) {
		switch {
		case p.Status == StatusPaid && p.PaymentDate != nil &&
			p.PaymentDate.Year() == year && p.PaymentDate.Month() == month:
			matches = append(matches, p)
		case p.Status == StatusPending && current:
			matches = append(matches, p)
		}
	}
	return matches
}

// MarkPaid moves a pending payment to paid, stamping the payment date. The
// amount must already be set or be supplied here; once set it never changes,
// so marking an already-paid payment again keeps the stored amount and date.
// Legacy data can hold paid payments without amount or date; re-marking those
// backfills what it can instead of failing.
func (s *Store) MarkPaid(ctx context.Context, id int64, amount *float64) (*Pago, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pagos := s.loadAll(ctx)
	for i := range pagos {
		if pagos[i].ID != id {
			continue
		}
		if pagos[i].Status == StatusPaid {
			changed := false
			if pagos[i].Amount == nil && amount != nil && *amount > 0 {
				pagos[i].Amount = amount
				changed = true
			}
			if pagos[i].PaymentDate == nil {
				when := s.now()
				pagos[i].PaymentDate = &when
				changed = true
			}
			if changed {
				if err := s.saveAll(ctx, pagos); err != nil {
					return nil, err
				}
			}
			paid := pagos[i]
			return &paid, nil
		}
		if pagos[i].Amount == nil {
			if amount == nil {
				return nil, fmt.Errorf("%w: amount requerido para marcar como pagado", ErrInvalidData)
			}
			if *amount <= 0 {
				return nil, fmt.Errorf("%w: amount debe ser mayor a 0", ErrInvalidData)
			}
			pagos[i].Amount = amount
		}
		when := s.now()
		pagos[i].Status = StatusPaid
		pagos[i].PaymentDate = &when
		if err := s.saveAll(ctx, pagos); err != nil {
			return nil, err
		}
		paid := pagos[i]
		return &paid, nil
	}
	return nil, ErrNotFound
}

// ListOrphans returns payments whose ficha id is not in existingFichaIDs.
// Nothing calls this automatically: deleting a ficha never cascades, so the
// sweep is an explicit maintenance action.
func (s *Store) ListOrphans(ctx context.Context, existingFichaIDs []int64) []Pago {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orphans []Pago
	for _, p := range s.loadAll(ctx) {
		if !slices.Contains(existingFichaIDs, p.FichaID) {
			orphans = append(orphans, p)
		}
	}
	return orphans
}
