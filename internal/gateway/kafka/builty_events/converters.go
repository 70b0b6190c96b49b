package builty_events

import (
	"time"

	"builty-service/internal/entities"
)

// message is the wire form of a lifecycle event. It never carries money fields.
type message struct {
	Type           string    `json:"type"`
	BuiltyID       int64     `json:"builty_id"`
	DocumentNumber string    `json:"document_number"`
	ConsignorID    int64     `json:"consignor_id"`
	CarrierID      int64     `json:"carrier_id"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func toMessage(e entities.BuiltyEvent) message {
	return message{
		Type:           string(e.Type),
		BuiltyID:       e.BuiltyID,
		DocumentNumber: e.DocumentNumber,
		ConsignorID:    e.ConsignorID,
		CarrierID:      e.CarrierID,
		Status:         e.Status.String(),
		OccurredAt:     e.OccurredAt,
	}
}
