package services

import "strings"

// RelevancePredicate decides whether a chat message is within the assistant's
// topic domain. It is a plain function type so tests and future callers can
// swap the default keyword matcher for something smarter.
type RelevancePredicate func(message string) bool

// careerKeywords is the vocabulary scan. Deliberately broad: a false positive
// costs one AI call, a false negative costs the user a canned redirect.
var careerKeywords = []string{
	"career", "job", "profession", "occupation", "employment", "work",
	"salary", "wage", "income", "pay", "compensation",
	"resume", "cv", "cover letter", "portfolio", "linkedin",
	"interview", "recruiter", "recruitment", "hiring", "hire",
	"internship", "intern", "apprenticeship", "placement",
	"skill", "qualification", "certification", "certificate", "degree",
	"education", "college", "university", "school", "course", "study",
	"major", "field", "stream", "subject", "exam", "entrance",
	"engineer", "engineering", "doctor", "medicine", "lawyer", "law",
	"developer", "programmer", "software", "data science", "designer",
	"teacher", "professor", "scientist", "researcher", "analyst",
	"accountant", "finance", "marketing", "management", "mba",
	"business", "startup", "entrepreneur", "freelance", "freelancing",
	"promotion", "switch", "transition", "industry", "sector",
	"vacancy", "opening", "opportunity", "application", "apply",
	"training", "upskill", "reskill", "bootcamp", "diploma",
	"workplace", "office", "remote work", "work from home",
	"mentor", "mentorship", "guidance", "counselling", "counseling",
	"aptitude", "assessment", "placement cell", "campus",
}

// careerPhrases catches guidance-style questions when no single keyword is
// present.
var careerPhrases = []string{
	"what should i do after",
	"what should i become",
	"which path should i",
	"help me choose",
	"help me decide",
	"future options",
	"my future",
	"what can i do with",
	"where can i work",
	"how do i get into",
	"how to get into",
	"is it worth studying",
	"best option for me",
	"right for me",
	"suits me",
	"good at math",
	"good at science",
	"what are my options",
}

var interrogatives = []string{"what", "how", "where", "when", "why", "which", "who"}

var workVerbs = []string{"study", "learn", "become", "get", "find", "choose", "decide", "start"}

// IsCareerRelated is the default RelevancePredicate. Empty or whitespace-only
// input is never career-related.
func IsCareerRelated(message string) bool {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return false
	}

	for _, kw := range careerKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	for _, phrase := range careerPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	// Heuristic: an interrogative plus a work-context verb reads like a
	// guidance question even without explicit vocabulary.
	hasQuestion := false
	for _, q := range interrogatives {
		if containsWord(text, q) {
			hasQuestion = true
			break
		}
	}
	if !hasQuestion {
		return false
	}
	for _, v := range workVerbs {
		if containsWord(text, v) {
			return true
		}
	}
	return false
}

// containsWord matches on word boundaries so "who" does not fire on "whole".
func containsWord(text, word string) bool {
	for _, f := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '\'')
	}) {
		if f == word {
			return true
		}
	}
	return false
}
