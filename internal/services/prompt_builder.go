package services

import (
	"fmt"
	"strings"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
)

const personaBlock = `You are Careerion, an expert AI career guidance counsellor.

### COMPETENCY AREAS:
- Career discovery and planning for students and early professionals
- Education paths: degrees, certifications, bootcamps, entrance exams
- Job market insight: in-demand roles, skills, salary ranges, hiring trends
- Application craft: resumes, cover letters, portfolios, interviews
- Career transitions, upskilling and long-term growth strategy

### RESPONSE RULES:
1. Be comprehensive - cover the question fully, not superficially.
2. Be actionable - give concrete next steps the user can take this week.
3. Be current - reflect today's job market, not outdated advice.
4. Be personalized - use the user's profile when one is provided.
5. Be resourceful - name real courses, platforms, certifications where useful.
6. Be realistic - include honest trade-offs, timelines and difficulty.
7. Be structured - use clear headings and short paragraphs.`

const responseTemplate = `### STRUCTURE YOUR RESPONSE AS:
1. Direct answer to the question
2. Key factors to consider
3. Recommended paths or options
4. Skills and qualifications needed
5. Concrete next steps
6. Helpful resources
7. Encouraging closing note`

const jsonOnlyPrefix = `Respond with ONLY valid minified JSON, no prose, no markdown, no code fences.

`

// PromptOptions tune how BuildPrompt assembles the instruction block.
type PromptOptions struct {
	// Profile personalizes the prompt when the caller is authenticated.
	Profile *models.User
	// SystemPrompt is caller-supplied extra instruction, appended verbatim.
	SystemPrompt string
	// StrictJSON prepends the JSON-only directive for structured endpoints.
	StrictJSON bool
}

// BuildPrompt renders the full instruction block sent to the model. Pure
// function: same inputs, same prompt.
func BuildPrompt(message string, opts PromptOptions) string {
	var b strings.Builder

	if opts.StrictJSON {
		b.WriteString(jsonOnlyPrefix)
	}

	b.WriteString(personaBlock)
	b.WriteString("\n\n")

	if opts.Profile != nil {
		b.WriteString(renderProfile(opts.Profile))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "### USER QUESTION:\n%s\n\n", message)
	b.WriteString(responseTemplate)

	if opts.SystemPrompt != "" {
		b.WriteString("\n\n")
		b.WriteString(opts.SystemPrompt)
	}

	return b.String()
}

func renderProfile(u *models.User) string {
	p := u.Profile
	var b strings.Builder
	b.WriteString("### USER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNotSpecified(u.Name))
	fmt.Fprintf(&b, "- Education level: %s\n", orNotSpecified(p.EducationLevel))
	fmt.Fprintf(&b, "- Field of study: %s\n", orNotSpecified(p.FieldOfStudy))
	fmt.Fprintf(&b, "- Institution: %s\n", orNotSpecified(p.Institution))
	fmt.Fprintf(&b, "- Completion year: %s\n", orNotSpecified(p.CompletionYear))
	fmt.Fprintf(&b, "- Current status: %s\n", orNotSpecified(p.CurrentStatus))
	fmt.Fprintf(&b, "- Work experience: %s\n", orNotSpecified(p.WorkExperience))
	fmt.Fprintf(&b, "- Skills: %s\n", orNotSpecified(strings.Join(p.Skills, ", ")))
	fmt.Fprintf(&b, "- Interests: %s\n", orNotSpecified(strings.Join(p.Interests, ", ")))
	fmt.Fprintf(&b, "- Career goals: %s\n", orNotSpecified(p.CareerGoals))
	fmt.Fprintf(&b, "- Preferred work environment: %s\n", orNotSpecified(p.WorkEnvironment))
	fmt.Fprintf(&b, "- Preferred location: %s\n", orNotSpecified(p.Location))
	fmt.Fprintf(&b, "- Salary expectation: %s\n", orNotSpecified(p.SalaryRange))
	if p.WillingRelocate {
		b.WriteString("- Willing to relocate: yes")
	} else {
		b.WriteString("- Willing to relocate: Not specified")
	}
	return b.String()
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not specified"
	}
	return v
}
