package domain

import "time"

// ApplicationStatus representa a situação de uma candidatura do criador a uma campanha
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

// Application é uma candidatura com a campanha já desnormalizada
type Application struct {
	ID        string            `json:"id"`
	Status    ApplicationStatus `json:"status"`
	Campaign  Campaign          `json:"campaign"`
	CreatedAt time.Time         `json:"created_at"`
}
