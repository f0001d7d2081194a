package extraction

import "sync"

// Technical skill categories of the default taxonomy
const (
	CategoryProgrammingLanguages = "Programming Languages"
	CategoryWebTechnologies      = "Web Technologies"
	CategoryDatabases            = "Databases"
	CategoryCloudDevOps          = "Cloud & DevOps"
	CategoryDataScienceML        = "Data Science & ML"
	CategoryMobileDevelopment    = "Mobile Development"
	CategoryToolsOthers          = "Tools & Others"
)

var defaultCategories = []struct {
	category string
	skills   []string
}{
	{CategoryProgrammingLanguages, []string{
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby",
		"Go", "Rust", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash",
	}},
	{CategoryWebTechnologies, []string{
		"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express.js",
		"Django", "Flask", "Spring", "Laravel", "Ruby on Rails", "ASP.NET",
		"jQuery", "Bootstrap", "Sass", "Less", "Webpack", "Next.js", "Nuxt.js",
	}},
	{CategoryDatabases, []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Oracle",
		"SQL Server", "SQLite", "Cassandra", "DynamoDB", "Neo4j", "InfluxDB",
	}},
	{CategoryCloudDevOps, []string{
		"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins",
		"GitLab CI", "GitHub Actions", "Terraform", "Ansible", "Chef", "Puppet",
		"Vagrant", "Nginx", "Apache", "Linux", "Ubuntu", "CentOS",
	}},
	{CategoryDataScienceML, []string{
		"Machine Learning", "Deep Learning", "Artificial Intelligence", "Data Science",
		"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras",
		"Jupyter", "Matplotlib", "Seaborn", "Plotly", "Apache Spark", "Hadoop",
	}},
	{CategoryMobileDevelopment, []string{
		"iOS", "Android", "React Native", "Flutter", "Xamarin", "Ionic", "Objective-C",
	}},
	{CategoryToolsOthers, []string{
		"Git", "SVN", "JIRA", "Confluence", "Slack", "Teams", "Agile", "Scrum",
		"Kanban", "REST API", "GraphQL", "Microservices", "Unit Testing",
		"Integration Testing", "CI/CD", "Monitoring", "Logging",
	}},
}

// Names that are ordinary English words or single letters in other casings
var caseSensitiveSkills = map[string]bool{
	"Go":     true,
	"R":      true,
	"Swift":  true,
	"Shell":  true,
	"Spring": true,
	"Less":   true,
	"Oracle": true,
	"Chef":   true,
	"Puppet": true,
	"Apache": true,
	"Slack":  true,
	"Teams":  true,
	"Ionic":  true,
}

var defaultSoftSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "creativity",
	"analytical", "detail-oriented", "organized", "motivated", "adaptable",
	"collaborative", "innovative", "strategic", "customer service", "presentation",
	"negotiation", "time management", "project management", "critical thinking",
	"mentoring", "stakeholder management", "conflict resolution",
}

// DefaultTaxonomy returns the built-in technical skill taxonomy. The compiled
// taxonomy is immutable and shared.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy()
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	var entries []TaxonomyEntry
	for _, c := range defaultCategories {
		for _, skill := range c.skills {
			entries = append(entries, TaxonomyEntry{
				Skill:         skill,
				Category:      c.category,
				CaseSensitive: caseSensitiveSkills[skill],
			})
		}
	}
	return NewTaxonomy(entries)
})

// DefaultSoftSkills returns the built-in soft-skill lexicon
func DefaultSoftSkills() *Lexicon {
	return NewLexicon(defaultSoftSkills)
}
