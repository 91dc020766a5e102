//go:build unit || e2e

package builder

import (
	"time"

	domrecarga "extinguard/internal/domain/recarga"
	reqdto "extinguard/internal/handler/dto/request"
)

type RecargaBuilder struct {
	UserEmail      string
	UserID         *int64
	Tipo           string
	EstadoExtintor string
	Fecha          string
	Franja         string
	Direccion      string
	Telefono       string
	Observaciones  string
	Now            time.Time
}

func NewRecargaBuilder() *RecargaBuilder {
	userID := int64(42)
	return &RecargaBuilder{
		UserEmail:      "cliente@example.com",
		UserID:         &userID,
		Tipo:           "ABC",
		EstadoExtintor: "Operativo",
		Fecha:          "2026-09-15",
		Franja:         "Mañana",
		Direccion:      "Calle 10 #5-32",
		Telefono:       "3001234567",
		Observaciones:  "Porteria, preguntar por Luis",
		Now:            time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *RecargaBuilder) With(mutate func(*RecargaBuilder)) *RecargaBuilder {
	mutate(r)
	return r
}

func (r *RecargaBuilder) BuildInput() domrecarga.NewRecargaInput {
	return domrecarga.NewRecargaInput{
		UserEmail:      r.UserEmail,
		UserID:         r.UserID,
		Tipo:           r.Tipo,
		EstadoExtintor: r.EstadoExtintor,
		Fecha:          r.Fecha,
		Franja:         r.Franja,
		Direccion:      r.Direccion,
		Telefono:       r.Telefono,
		Observaciones:  r.Observaciones,
	}
}

func (r *RecargaBuilder) BuildDomain() (*domrecarga.Recarga, error) {
	return domrecarga.NewRecarga(r.BuildInput(), r.Now)
}

func (r *RecargaBuilder) BuildCreateRequestDTO() reqdto.CreateRecargaRequest {
	return reqdto.CreateRecargaRequest{
		Tipo:           r.Tipo,
		EstadoExtintor: r.EstadoExtintor,
		Fecha:          r.Fecha,
		Franja:         r.Franja,
		Direccion:      r.Direccion,
		Telefono:       r.Telefono,
		Observaciones:  r.Observaciones,
	}
}
