package recarga

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidStatus      = errors.New("invalid recarga status")
	ErrInvalidTipo        = errors.New("invalid extinguisher type")
	ErrBackwardTransition = errors.New("status cannot move backward")
	ErrMissingUserEmail   = errors.New("userEmail is required")
	ErrMissingField       = errors.New("required field is empty")
	ErrMissingActor       = errors.New("actor is required")
)

// TimelineEntry records one status change in the audit trail.
// Field names are part of the persisted contract.
type TimelineEntry struct {
	TS     time.Time `json:"ts"`
	Status Status    `json:"status"`
	By     string    `json:"by"`
}

// Recarga is a fire-extinguisher recharge service request. The JSON tags
// match the persisted document shape exactly; renaming one breaks every
// record already on disk.
type Recarga struct {
	ID             string          `json:"id"`
	UserEmail      string          `json:"userEmail"`
	UserID         *int64          `json:"userId"`
	Tipo           Tipo            `json:"tipo"`
	EstadoExtintor string          `json:"estadoExtintor"`
	Fecha          string          `json:"fecha"`
	Franja         string          `json:"franja"`
	Direccion      string          `json:"direccion"`
	Telefono       string          `json:"telefono"`
	Observaciones  string          `json:"observaciones"`
	Status         Status          `json:"status"`
	Timeline       []TimelineEntry `json:"timeline"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NewRecargaInput carries the caller-supplied fields for a new request.
type NewRecargaInput struct {
	UserEmail      string
	UserID         *int64
	Tipo           string
	EstadoExtintor string
	Fecha          string
	Franja         string
	Direccion      string
	Telefono       string
	Observaciones  string
}

// NewRecarga builds a request in its initial state: status PENDIENTE and a
// single timeline entry attributed to the owner. The store assigns the id.
func NewRecarga(in NewRecargaInput, now time.Time) (*Recarga, error) {
	userEmail := strings.TrimSpace(in.UserEmail)
	if userEmail == "" {
		return nil, ErrMissingUserEmail
	}

	tipo, err := NewTipo(in.Tipo)
	if err != nil {
		return nil, err
	}

	for _, field := range []string{in.EstadoExtintor, in.Fecha, in.Franja, in.Direccion, in.Telefono} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingField
		}
	}

	return &Recarga{
		UserEmail:      userEmail,
		UserID:         in.UserID,
		Tipo:           tipo,
		EstadoExtintor: in.EstadoExtintor,
		Fecha:          in.Fecha,
		Franja:         in.Franja,
		Direccion:      in.Direccion,
		Telefono:       in.Telefono,
		Observaciones:  in.Observaciones,
		Status:         StatusPendiente,
		Timeline: []TimelineEntry{
			{TS: now, Status: StatusPendiente, By: userEmail},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanTransitionTo reports whether moving to newStatus is legal: equal or
// later in StatusOrder. Forward jumps over intermediate stages are allowed.
func (r *Recarga) CanTransitionTo(newStatus Status) bool {
	return newStatus.Index() >= r.Status.Index()
}

// ApplyStatus performs a status transition, bumping updatedAt and appending
// a timeline entry. The entity is left untouched on any error.
func (r *Recarga) ApplyStatus(newStatus Status, actor string, now time.Time) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus
	}
	if actor == "" {
		return ErrMissingActor
	}
	if !r.CanTransitionTo(newStatus) {
		return ErrBackwardTransition
	}

	r.Status = newStatus
	r.UpdatedAt = now
	r.Timeline = append(r.Timeline, TimelineEntry{TS: now, Status: newStatus, By: actor})
	return nil
}

// IsFinalized reports whether the request reached the terminal stage.
func (r *Recarga) IsFinalized() bool {
	return r.Status == StatusFinalizado
}
