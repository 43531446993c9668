package cancel_reservation

import "github.com/golab368/REPL-backend-tenis/internal/service/reservations/models"

// CancelRequest HTTP request model
// Selection - порядковый номер брони в списке броней имени (1-индексация)
type CancelRequest struct {
	Name      string `json:"name"`
	Selection int    `json:"selection"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Cancelled models.ReservationResponse `json:"cancelled"`
}
