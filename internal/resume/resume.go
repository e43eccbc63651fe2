// Package resume compares the downloadable resume PDF against the knowledge
// base, flagging skills and projects the document no longer mentions. The
// assistant answers from the knowledge base, so a stale resume quietly
// contradicts it; this check catches that drift.
package resume

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/neer2304/foliobot/internal/kb"
)

// Coverage reports which knowledge-base entries appear in the resume text.
type Coverage struct {
	SkillsCovered   []string
	SkillsMissing   []string
	ProjectsCovered []string
	ProjectsMissing []string
}

// Covered reports whether every skill and project is mentioned.
func (c Coverage) Covered() bool {
	return len(c.SkillsMissing) == 0 && len(c.ProjectsMissing) == 0
}

// Extract returns the plain text of a PDF file.
func Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	rd, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, rd); err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	return sb.String(), nil
}

// Check scans text for every skill and project name in the knowledge base.
// Matching is case-insensitive substring search; soft skills are skipped
// because resumes rarely spell them out verbatim.
func Check(text string, k *kb.KnowledgeBase) Coverage {
	lower := strings.ToLower(text)
	var cov Coverage

	for _, cat := range k.Skills.Categories() {
		if cat.Name == "Soft Skills" {
			continue
		}
		for _, skill := range cat.Skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				cov.SkillsCovered = append(cov.SkillsCovered, skill)
			} else {
				cov.SkillsMissing = append(cov.SkillsMissing, skill)
			}
		}
	}

	for _, p := range k.Projects {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			cov.ProjectsCovered = append(cov.ProjectsCovered, p.Name)
		} else {
			cov.ProjectsMissing = append(cov.ProjectsMissing, p.Name)
		}
	}

	return cov
}

// CheckFile extracts the PDF at path and checks it against the knowledge base.
func CheckFile(path string, k *kb.KnowledgeBase) (Coverage, error) {
	text, err := Extract(path)
	if err != nil {
		return Coverage{}, err
	}
	return Check(text, k), nil
}
