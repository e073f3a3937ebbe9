package analyzer

import (
	"reflect"
	"testing"
)

func TestLexiconAnalyzer_Sentiment(t *testing.T) {
	a := NewLexiconAnalyzer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "clearly positive", text: "what a wonderful day, I love it", want: "positive"},
		{name: "clearly negative", text: "this is terrible and I hate it", want: "negative"},
		{name: "no scored words", text: "the cat sat on the mat", want: "neutral"},
		{name: "score exactly one stays neutral", text: "I agree", want: "neutral"},
		{name: "score exactly minus one stays neutral", text: "sorry", want: "neutral"},
		{name: "score two is positive", text: "I like it", want: "positive"},
		{name: "score minus two is negative", text: "so sad", want: "negative"},
		{name: "mixed words cancel out", text: "love hate", want: "neutral"},
		{name: "empty text", text: "", want: "neutral"},
		{name: "case insensitive scoring", text: "LOVE LOVE", want: "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text)
			if got.Sentiment != tt.want {
				t.Fatalf("Analyze(%q).Sentiment = %q, want %q", tt.text, got.Sentiment, tt.want)
			}
		})
	}
}

func TestLexiconAnalyzer_Toxicity(t *testing.T) {
	a := NewLexiconAnalyzer()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "profane word", text: "this is shit", want: true},
		{name: "profane word uppercase", text: "WHAT THE FUCK", want: true},
		{name: "profanity with punctuation", text: "damn!", want: true},
		{name: "clean text", text: "have a lovely evening", want: false},
		{name: "profanity only as substring of clean word", text: "visiting scunthorpe", want: false},
		{name: "empty text", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text)
			if got.IsToxic != tt.want {
				t.Fatalf("Analyze(%q).IsToxic = %v, want %v", tt.text, got.IsToxic, tt.want)
			}
		})
	}
}

func TestLexiconAnalyzer_Tags(t *testing.T) {
	a := NewLexiconAnalyzer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single keyword", text: "I love autumn", want: []string{"love"}},
		{name: "support from sad", text: "feeling sad tonight", want: []string{"support"}},
		{name: "support from depress prefix", text: "so depressing lately", want: []string{"support"}},
		{name: "work from job", text: "new job tomorrow", want: []string{"work"}},
		{name: "study from exam", text: "exam season again", want: []string{"study"}},
		{name: "additive in check order", text: "I love my exam results", want: []string{"love", "study"}},
		{name: "all four", text: "love being sad about job and exam", want: []string{"love", "support", "work", "study"}},
		{name: "case insensitive", text: "LOVE my WORK", want: []string{"love", "work"}},
		{name: "one tag per condition", text: "job work workload", want: []string{"work"}},
		{name: "no keywords", text: "nothing to see here", want: nil},
		{name: "empty text", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text)
			if !reflect.DeepEqual(got.Tags, tt.want) {
				t.Fatalf("Analyze(%q).Tags = %v, want %v", tt.text, got.Tags, tt.want)
			}
		})
	}
}

func TestLexiconAnalyzer_Deterministic(t *testing.T) {
	a := NewLexiconAnalyzer()
	const text = "I love my job today"

	first := a.Analyze(text)
	for i := 0; i < 5; i++ {
		if got := a.Analyze(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Analyze not deterministic: run %d got %+v, first %+v", i, got, first)
		}
	}
	if first.IsToxic {
		t.Fatalf("clean text flagged toxic: %+v", first)
	}
	if !reflect.DeepEqual(first.Tags, []string{"love", "work"}) {
		t.Fatalf("expected tags [love work], got %v", first.Tags)
	}
}
