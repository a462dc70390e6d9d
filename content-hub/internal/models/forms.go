package models

import "time"

// ContactSubmission is a message sent from any site's contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Source  SiteID `json:"source,omitempty"`
}

// Subscription is a newsletter sign-up.
type Subscription struct {
	Email  string `json:"email"`
	Source SiteID `json:"source,omitempty"`
}

// Receipt acknowledges a form submission.
type Receipt struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// DashboardStats is the admin overview. Counts is keyed by resource name.
type DashboardStats struct {
	Counts           map[string]int `json:"counts"`
	ContactMessages  int            `json:"contact_messages"`
	NewsletterSignup int            `json:"newsletter_subscribers"`
}
