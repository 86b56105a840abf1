package models

// User represents an account in the system. The ventures list lives in a
// single JSON document column and is only mutated through the ventures
// package.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // Never expose this to the client
	Ventures      []Venture `json:"ventures"`
	LastUpdate    string    `json:"lastUpdate,omitempty"`
	WebhookURL    string    `json:"webhookUrl,omitempty"`
	WebhookAPIKey string    `json:"-"`
}
