package request

import "extinguard/internal/usecase"

// CreateRecargaRequest carries the recharge form fields. Owner identity is
// taken from the authenticated session, never from the body.
type CreateRecargaRequest struct {
	Tipo           string `json:"tipo" binding:"required"`
	EstadoExtintor string `json:"estadoExtintor" binding:"required"`
	Fecha          string `json:"fecha" binding:"required"`
	Franja         string `json:"franja" binding:"required"`
	Direccion      string `json:"direccion" binding:"required"`
	Telefono       string `json:"telefono" binding:"required"`
	Observaciones  string `json:"observaciones"`
}

func (r *CreateRecargaRequest) ToParams(userEmail string, userID *int64) usecase.CreateRecargaParams {
	return usecase.CreateRecargaParams{
		UserEmail:      userEmail,
		UserID:         userID,
		Tipo:           r.Tipo,
		EstadoExtintor: r.EstadoExtintor,
		Fecha:          r.Fecha,
		Franja:         r.Franja,
		Direccion:      r.Direccion,
		Telefono:       r.Telefono,
		Observaciones:  r.Observaciones,
	}
}

type UpdateRecargaStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
