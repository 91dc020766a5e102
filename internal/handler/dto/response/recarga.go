package response

import (
	"time"

	"github.com/jinzhu/copier"

	"extinguard/internal/domain/recarga"
	"extinguard/internal/pkg/errs"
)

type TimelineEntryResponse struct {
	TS     time.Time `json:"ts"`
	Status string    `json:"status"`
	By     string    `json:"by"`
}

type RecargaResponse struct {
	ID             string                  `json:"id"`
	UserEmail      string                  `json:"userEmail"`
	UserID         *int64                  `json:"userId"`
	Tipo           string                  `json:"tipo"`
	EstadoExtintor string                  `json:"estadoExtintor"`
	Fecha          string                  `json:"fecha"`
	Franja         string                  `json:"franja"`
	Direccion      string                  `json:"direccion"`
	Telefono       string                  `json:"telefono"`
	Observaciones  string                  `json:"observaciones"`
	Status         string                  `json:"status"`
	Timeline       []TimelineEntryResponse `json:"timeline"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func FromRecarga(rec *recarga.Recarga) (RecargaResponse, error) {
	var resp RecargaResponse
	if err := copier.Copy(&resp, rec); err != nil {
		return RecargaResponse{}, errs.Wrap(err, "failed to map recarga response")
	}
	return resp, nil
}

func FromRecargas(recs []*recarga.Recarga) ([]RecargaResponse, error) {
	out := make([]RecargaResponse, 0, len(recs))
	for _, rec := range recs {
		resp, err := FromRecarga(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

type CreateRecargaResponse struct {
	ID string `json:"id"`
}
