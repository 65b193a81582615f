package fields

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Fields
	}{
		{
			name: "email with plus and multi-label domain",
			text: "Contact: jane.doe+work@example.co.uk for details",
			want: Fields{Email: "jane.doe+work@example.co.uk"},
		},
		{
			name: "parenthesized phone",
			text: "Call (415) 555-2671 anytime",
			want: Fields{Phone: "(415) 555-2671"},
		},
		{
			name: "phone with country code and dots",
			text: "phone: +1 415.555.2671",
			want: Fields{Phone: "+1 415.555.2671"},
		},
		{
			name: "name on first line",
			text: "John Smith\nSenior Engineer\njohn@example.com",
			want: Fields{Name: "John Smith", Email: "john@example.com"},
		},
		{
			name: "name on a later line",
			text: "resume\nJane Doe\nhello",
			want: Fields{Name: "Jane Doe"},
		},
		{
			name: "capitalized words not at line start",
			text: "contact: Jane Doe",
			want: Fields{},
		},
		{
			name: "single capitalized word",
			text: "Resume\nengineer",
			want: Fields{},
		},
		{
			name: "particle breaks the name run",
			text: "Ludwig van Beethoven",
			want: Fields{},
		},
		{
			name: "email trailing punctuation",
			text: "mail me at a@b.com.",
			want: Fields{Email: "a@b.com"},
		},
		{
			name: "no matches",
			text: "nothing to see here",
			want: Fields{},
		},
		{
			name: "empty",
			text: "",
			want: Fields{},
		},
		{
			name: "all three",
			text: "Ada Lovelace\nada@example.com | 212-555-0199",
			want: Fields{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "212-555-0199"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.text); got != tt.want {
				t.Fatalf("Extract(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	text := "Jane Roe\nfirst@example.com second@example.com\n(212) 555-0100 or 646-555-0111"
	got := Extract(text)
	if got.Email != "first@example.com" {
		t.Fatalf("expected first email, got %q", got.Email)
	}
	if got.Phone != "(212) 555-0100" {
		t.Fatalf("expected first phone, got %q", got.Phone)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "John Smith\nSenior Engineer\njohn@example.com\n+1 (415) 555-2671"
	first := Extract(text)
	for i := 0; i < 50; i++ {
		if got := Extract(text); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
