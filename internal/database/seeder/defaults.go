package seeder

func Defaults(seedFile string) []Seeder {
	return []Seeder{
		SkillsSeeder{FixtureFile: seedFile},
	}
}
