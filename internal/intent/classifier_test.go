package intent

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"empty", "", Unknown},
		{"whitespace only", "   \t\n  ", Unknown},
		{"simple greeting", "hi", Greeting},
		{"skills question", "what technologies do you use", Skills},
		{"project specific beats generic", "tell me about the resume builder", ResumeBuilder},
		{"crm project", "tell me about the CRM project", CRM},
		{"details phrasing", "tell me more about your projects", ProjectDetails},
		{"contact", "how can I reach you on linkedin", Contact},
		{"pricing", "how much would a website cost", Pricing},
		{"gibberish", "xyzzy plugh qwerty", Unknown},
		{"unmatched project name", "what about AccuManage?", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lower := Classify("tell me your skills")
	upper := Classify("TELL ME YOUR SKILLS")
	if lower != upper {
		t.Errorf("case changed classification: %s vs %s", lower, upper)
	}
	if lower != Skills {
		t.Errorf("expected skills, got %s", lower)
	}
}

func TestClassifyTieKeepsEarlierEntry(t *testing.T) {
	// "hobby" and "help" each hit exactly one keyword of two equal-weight,
	// six-keyword intents, so the scores tie. Hobbies is declared first and
	// must win.
	got := Classify("hobby help")
	if got != Hobbies {
		t.Errorf("Classify tie = %s, want %s", got, Hobbies)
	}
}

func TestClassifyWeightBeatsGenericProjects(t *testing.T) {
	// "resume builder" hits half the resume_builder vocabulary (weight 1.1).
	// The generic projects intent must not win even if some of its keywords
	// appear too.
	got := Classify("did you build the resume builder as one of your projects")
	if got != ResumeBuilder {
		t.Errorf("Classify = %s, want %s", got, ResumeBuilder)
	}
}

func TestClassifyVeryLongInput(t *testing.T) {
	msg := strings.Repeat("lorem ipsum dolor sit amet ", 10000) + "what is your tech stack"
	if got := Classify(msg); got != Skills {
		t.Errorf("Classify(long) = %s, want %s", got, Skills)
	}
}

func TestCatalogueKeywordsLowercaseAndUnique(t *testing.T) {
	for _, e := range Catalogue {
		seen := make(map[string]bool)
		for _, kw := range e.Keywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("%s keyword %q is not lowercase", e.Intent, kw)
			}
			if seen[kw] {
				t.Errorf("%s has duplicate keyword %q", e.Intent, kw)
			}
			seen[kw] = true
		}
		if e.Weight <= 0 {
			t.Errorf("%s has non-positive weight %v", e.Intent, e.Weight)
		}
	}
}
