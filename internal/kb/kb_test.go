package kb

import "testing"

func TestDefaultProjectsUnique(t *testing.T) {
	k := Default()
	if len(k.Projects) < 6 {
		t.Fatalf("expected at least 6 projects, got %d", len(k.Projects))
	}
	seen := make(map[string]bool)
	for _, p := range k.Projects {
		if seen[p.Name] {
			t.Errorf("duplicate project name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Name == "" || p.Description == "" || p.LongDescription == "" {
			t.Errorf("project %q has empty required fields", p.Name)
		}
		if len(p.Technologies) == 0 || len(p.Features) == 0 {
			t.Errorf("project %q missing technologies or features", p.Name)
		}
	}
}

func TestFindProject(t *testing.T) {
	k := Default()

	p, ok := k.FindProject("AccuManage")
	if !ok {
		t.Fatal("AccuManage not found")
	}
	if p.Year != "2022" {
		t.Errorf("AccuManage year = %q, want 2022", p.Year)
	}

	if _, ok := k.FindProject("Nonexistent"); ok {
		t.Error("FindProject returned ok for unknown name")
	}
}

func TestSkillCategoriesOrder(t *testing.T) {
	cats := Default().Skills.Categories()
	want := []string{
		"Frontend Development",
		"Backend Development",
		"Database & ORM",
		"DevOps & Cloud",
		"Tools & Technologies",
		"Soft Skills",
	}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i, w := range want {
		if cats[i].Name != w {
			t.Errorf("category %d = %q, want %q", i, cats[i].Name, w)
		}
		if len(cats[i].Skills) == 0 {
			t.Errorf("category %q has no skills", w)
		}
	}
}

func TestExperienceMostRecentFirst(t *testing.T) {
	k := Default()
	if len(k.Experience) < 2 {
		t.Fatalf("expected at least 2 experience entries, got %d", len(k.Experience))
	}
	if k.Experience[0].Period != "2023 - Present" {
		t.Errorf("first entry period = %q, want most recent", k.Experience[0].Period)
	}
}
