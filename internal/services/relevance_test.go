package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCareerRelated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"keyword career", "I need help with my career", true},
		{"keyword job", "How do I find a job in Berlin?", true},
		{"keyword engineer", "How do I become a software engineer?", true},
		{"keyword resume", "Can you review my resume?", true},
		{"keyword salary", "What salary can a nurse expect?", true},
		{"phrase after school", "What should I do after high school?", true},
		{"phrase good at math", "I'm good at math, any advice?", true},
		{"heuristic question plus verb", "What should I study next year?", true},
		{"heuristic become", "Who can I become if I like painting?", true},
		{"weather", "What is the weather?", false},
		{"joke", "Tell me a joke", false},
		{"recipe", "Give me a pasta recipe", false},
		{"empty", "", false},
		{"whitespace", "   \n\t ", false},
		{"uppercase keyword", "HOW DO I GET A JOB?", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCareerRelated(tt.message), "message: %q", tt.message)
		})
	}
}

func TestContainsWordBoundaries(t *testing.T) {
	t.Parallel()

	// "who" must not fire inside "whole"
	assert.False(t, containsWord("the whole thing", "who"))
	assert.True(t, containsWord("who is this", "who"))
}
