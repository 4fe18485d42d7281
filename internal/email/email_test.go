package email

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eugenenazirov/login-checker/internal/settings"
)

func TestRecipients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		addresses string
		want      []Recipient
	}{
		{
			name:      "two addresses",
			addresses: "user1@example.com,user2@example.com",
			want: []Recipient{
				{Address: "user1@example.com"},
				{Address: "user2@example.com"},
			},
		},
		{
			name:      "single address",
			addresses: "user1@example.com",
			want:      []Recipient{{Address: "user1@example.com"}},
		},
		{
			name:      "trailing comma keeps empty segment",
			addresses: "user1@example.com,user2@example.com,",
			want: []Recipient{
				{Address: "user1@example.com"},
				{Address: "user2@example.com"},
				{Address: ""},
			},
		},
		{
			name:      "whitespace is preserved",
			addresses: "user1@example.com, user2@example.com",
			want: []Recipient{
				{Address: "user1@example.com"},
				{Address: " user2@example.com"},
			},
		},
		{
			name:      "empty source yields one empty recipient",
			addresses: "",
			want:      []Recipient{{Address: ""}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Recipients(settings.Settings{EmailToAddresses: tc.addresses})
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected recipients (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewSender(t *testing.T) {
	t.Parallel()

	got := NewSender(settings.Settings{
		EmailFromName:    "Login Checker",
		EmailFromAddress: "noreply@example.com",
	})

	want := Sender{Name: "Login Checker", Address: "noreply@example.com"}
	if got != want {
		t.Fatalf("expected sender %+v, got %+v", want, got)
	}
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	m := NewMessage(settings.Settings{
		EmailFromName:    "Login Checker",
		EmailFromAddress: "noreply@example.com",
		EmailToAddresses: "user1@example.com,user2@example.com",
	})

	from := m.GetHeader("From")
	if len(from) != 1 {
		t.Fatalf("expected a single From header, got %v", from)
	}
	if !strings.Contains(from[0], "noreply@example.com") {
		t.Fatalf("expected From to carry the sender address, got %q", from[0])
	}
	if !strings.Contains(from[0], "Login Checker") {
		t.Fatalf("expected From to carry the display name, got %q", from[0])
	}

	to := m.GetHeader("To")
	want := []string{"user1@example.com", "user2@example.com"}
	if diff := cmp.Diff(want, to); diff != "" {
		t.Fatalf("unexpected To header (-want +got):\n%s", diff)
	}
}
