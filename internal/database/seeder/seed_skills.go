package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"skillmap/internal/database"

	"gopkg.in/yaml.v3"
)

// SkillsSeeder populates the skill catalog. The built-in catalog covers the
// common cases; FixtureFile may point at a yaml file extending or overriding
// it without a rebuild.
type SkillsSeeder struct {
	FixtureFile string
}

func (SkillsSeeder) Name() string { return "skills" }

type skillFixture struct {
	Skills []skillEntry `yaml:"skills"`
}

type skillEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	items := defaultSkills()

	if strings.TrimSpace(s.FixtureFile) != "" {
		extra, err := loadSkillFixture(s.FixtureFile)
		if err != nil {
			return err
		}
		items = append(items, extra...)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func defaultSkills() []skillEntry {
	return []skillEntry{
		{Name: "Go", Category: "Programming Language"},
		{Name: "Java", Category: "Programming Language"},
		{Name: "Kotlin", Category: "Programming Language"},
		{Name: "JavaScript", Category: "Programming Language"},
		{Name: "TypeScript", Category: "Programming Language"},
		{Name: "Python", Category: "Programming Language"},
		{Name: "React", Category: "Frontend"},
		{Name: "Angular", Category: "Frontend"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "Redis", Category: "Database"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Kubernetes", Category: "DevOps"},
		{Name: "AWS", Category: "Cloud"},
		{Name: "GCP", Category: "Cloud"},
		{Name: "Project Management", Category: "Management"},
		{Name: "UX Design", Category: "Design"},
	}
}

func loadSkillFixture(path string) ([]skillEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var fx skillFixture
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return fx.Skills, nil
}
