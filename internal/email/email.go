package email

import (
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/eugenenazirov/login-checker/internal/settings"
)

// Recipient is a single destination address.
type Recipient struct {
	Address string
}

// Sender is the from-identity attached to outgoing mail.
type Sender struct {
	Name    string
	Address string
}

// Recipients splits the comma-separated address list into one Recipient per
// segment, preserving source order. The split is literal: segments are not
// trimmed and empty segments (from a trailing comma, say) are kept, matching
// what the hosting application already tolerates.
func Recipients(s settings.Settings) []Recipient {
	parts := strings.Split(s.EmailToAddresses, ",")
	recipients := make([]Recipient, 0, len(parts))
	for _, part := range parts {
		recipients = append(recipients, Recipient{Address: part})
	}
	return recipients
}

// NewSender derives the from-identity from resolved settings.
func NewSender(s settings.Settings) Sender {
	return Sender{
		Name:    s.EmailFromName,
		Address: s.EmailFromAddress,
	}
}

// NewMessage builds an addressed message skeleton: From carries the sender's
// display name, To lists every recipient in order. Subject, body, and sending
// are left to the caller.
func NewMessage(s settings.Settings) *gomail.Message {
	m := gomail.NewMessage()

	from := NewSender(s)
	m.SetAddressHeader("From", from.Address, from.Name)

	recipients := Recipients(s)
	to := make([]string, len(recipients))
	for i, r := range recipients {
		to[i] = r.Address
	}
	m.SetHeader("To", to...)

	return m
}
