package services

import (
	"strings"
	"testing"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Basic(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("How do I become a pilot?", PromptOptions{})

	assert.Contains(t, prompt, "Careerion")
	assert.Contains(t, prompt, "### USER QUESTION:\nHow do I become a pilot?")
	assert.Contains(t, prompt, "STRUCTURE YOUR RESPONSE")
	assert.NotContains(t, prompt, "USER PROFILE")
	assert.NotContains(t, prompt, "minified JSON")
}

func TestBuildPrompt_ProfileRendering(t *testing.T) {
	t.Parallel()

	user := &models.User{
		Name: "Jane",
		Profile: models.Profile{
			EducationLevel: "Bachelor's",
			Skills:         []string{"Go", "SQL"},
		},
	}
	prompt := BuildPrompt("q", PromptOptions{Profile: user})

	assert.Contains(t, prompt, "- Name: Jane")
	assert.Contains(t, prompt, "- Education level: Bachelor's")
	assert.Contains(t, prompt, "- Skills: Go, SQL")
	// missing fields render as the placeholder, not empty
	assert.Contains(t, prompt, "- Field of study: Not specified")
	assert.Contains(t, prompt, "- Career goals: Not specified")
}

func TestBuildPrompt_StrictJSONPrefix(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("q", PromptOptions{StrictJSON: true})
	assert.True(t, strings.HasPrefix(prompt, "Respond with ONLY valid minified JSON"))
}

func TestBuildPrompt_SystemPromptAppendedVerbatim(t *testing.T) {
	t.Parallel()

	extra := "Always answer in French."
	prompt := BuildPrompt("q", PromptOptions{SystemPrompt: extra})
	assert.True(t, strings.HasSuffix(prompt, extra))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	t.Parallel()

	opts := PromptOptions{SystemPrompt: "x", StrictJSON: true}
	assert.Equal(t, BuildPrompt("same", opts), BuildPrompt("same", opts))
}
