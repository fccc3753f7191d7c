package fallback

import "testing"

func TestCorrect_EmptyInput(t *testing.T) {
	if got := Correct(""); got != "" {
		t.Errorf("Correct(\"\") = %q, want \"\"", got)
	}
}

func TestCorrect_Deterministic(t *testing.T) {
	in := "i definately think teh answer is their,somewhere.  go look"
	first := Correct(in)
	for i := 0; i < 5; i++ {
		if got := Correct(in); got != first {
			t.Fatalf("Correct is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCorrect_IdempotentOnCorrectText(t *testing.T) {
	cases := []string{
		"I like it.",
		"Hello world. This is nice",
		"The quick brown fox jumps over the lazy dog!",
	}
	for _, in := range cases {
		if got := Correct(in); got != in {
			t.Errorf("Correct(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestCorrect_CapitalizationAndSpacing(t *testing.T) {
	got := Correct("hello world.  this is nice")
	want := "Hello world. This is nice"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrect_Misspellings(t *testing.T) {
	got := Correct("i recieve the seperate occured items")
	want := "I receive the separate occurred items"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrect_PunctuationNormalization(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"space before comma removed", "well , fine", "Well, fine"},
		{"space before period removed", "done .", "Done."},
		{"missing space after sentence end", "stop.go now", "Stop. Go now"},
		{"whitespace runs collapsed", "too   many\tspaces", "Too many spaces"},
		{"leading and trailing trimmed", "  padded text  ", "Padded text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Correct(tc.in); got != tc.want {
				t.Errorf("Correct(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCorrect_SentenceInitialCapitals(t *testing.T) {
	got := Correct("first point. second point! third point? fourth point")
	want := "First point. Second point! Third point? Fourth point"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}
