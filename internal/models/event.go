package models

import "time"

// ProductEventType names a catalog mutation.
type ProductEventType string

const (
	ProductCreated ProductEventType = "product.created"
	ProductUpdated ProductEventType = "product.updated"
	ProductDeleted ProductEventType = "product.deleted"
)

// ProductEvent is published after a successful mutation.
type ProductEvent struct {
	Type       ProductEventType `json:"type"`
	Product    Product          `json:"product"`
	OccurredAt time.Time        `json:"occurredAt"`
}
