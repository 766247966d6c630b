package request

import (
	"time"
)

type CreateLoteRequest struct {
	Codigo      string    `json:"codigo" binding:"required"`
	FechaLimite time.Time `json:"fecha_limite" binding:"required"`
	Notas       *string   `json:"notas"`
}
