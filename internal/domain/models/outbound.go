package models

import "time"

// DigestMessage is the payload published to the digest webhook.
type DigestMessage struct {
	Region      string    `json:"region"`
	Month       int       `json:"month"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ErrorResponse is the JSON body returned for failed API requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
