package recarga

type Status string

const (
	StatusPendiente  Status = "PENDIENTE"
	StatusRecogido   Status = "RECOGIDO"
	StatusEnRecarga  Status = "EN_RECARGA"
	StatusListo      Status = "LISTO"
	StatusEntregado  Status = "ENTREGADO"
	StatusFinalizado Status = "FINALIZADO"
)

// StatusOrder is the fulfillment sequence. A request may only move forward
// (or stay) along this list.
var StatusOrder = []Status{
	StatusPendiente,
	StatusRecogido,
	StatusEnRecarga,
	StatusListo,
	StatusEntregado,
	StatusFinalizado,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in StatusOrder, or -1 for unknown values.
func (s Status) Index() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Tipo is the extinguisher type being serviced.
type Tipo string

const (
	TipoABC Tipo = "ABC"
	TipoCO2 Tipo = "CO2"
	TipoH2O Tipo = "H2O"
	TipoK   Tipo = "K"
)

func (t Tipo) String() string {
	return string(t)
}

func (t Tipo) IsValid() bool {
	switch t {
	case TipoABC, TipoCO2, TipoH2O, TipoK:
		return true
	default:
		return false
	}
}

func NewTipo(s string) (Tipo, error) {
	tipo := Tipo(s)
	if !tipo.IsValid() {
		return "", ErrInvalidTipo
	}
	return tipo, nil
}
