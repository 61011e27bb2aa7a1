package domain

import "time"

// ContactSubmission is a message left through the storefront contact form.
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
