package parsing

import (
	"sort"
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names.
// Canonical names are listed under their own lowercase key so that casing is
// restored for acronyms such as AWS or PHP.
var skillNormalizations = map[string]string{
	"golang":                  "Go",
	"golanglang":              "Go",
	"go lang":                 "Go",
	"javascript":              "JavaScript",
	"js":                      "JavaScript",
	"ecmascript":              "JavaScript",
	"typescript":              "TypeScript",
	"ts":                      "TypeScript",
	"k8s":                     "Kubernetes",
	"kubernetes":              "Kubernetes",
	"react":                   "React",
	"react.js":                "React",
	"reactjs":                 "React",
	"vue":                     "Vue",
	"vue.js":                  "Vue",
	"vuejs":                   "Vue",
	"angular":                 "Angular",
	"angularjs":               "Angular",
	"node.js":                 "Node.js",
	"nodejs":                  "Node.js",
	"express.js":              "Express.js",
	"expressjs":               "Express.js",
	"next.js":                 "Next.js",
	"nextjs":                  "Next.js",
	"nuxt.js":                 "Nuxt.js",
	"nuxtjs":                  "Nuxt.js",
	"python":                  "Python",
	"python3":                 "Python",
	"c++":                     "C++",
	"cpp":                     "C++",
	"c#":                      "C#",
	"csharp":                  "C#",
	"php":                     "PHP",
	"matlab":                  "MATLAB",
	"html":                    "HTML",
	"html5":                   "HTML",
	"css":                     "CSS",
	"css3":                    "CSS",
	"sass":                    "Sass",
	"scss":                    "Sass",
	"jquery":                  "jQuery",
	"asp.net":                 "ASP.NET",
	"ruby on rails":           "Ruby on Rails",
	"rails":                   "Ruby on Rails",
	"mysql":                   "MySQL",
	"postgresql":              "PostgreSQL",
	"postgres":                "PostgreSQL",
	"psql":                    "PostgreSQL",
	"mongodb":                 "MongoDB",
	"mongo":                   "MongoDB",
	"sql server":              "SQL Server",
	"mssql":                   "SQL Server",
	"sqlite":                  "SQLite",
	"dynamodb":                "DynamoDB",
	"neo4j":                   "Neo4j",
	"influxdb":                "InfluxDB",
	"elasticsearch":           "Elasticsearch",
	"elastic search":          "Elasticsearch",
	"aws":                     "AWS",
	"amazon web services":     "AWS",
	"gcp":                     "Google Cloud",
	"google cloud":            "Google Cloud",
	"google cloud platform":   "Google Cloud",
	"azure":                   "Azure",
	"microsoft azure":         "Azure",
	"gitlab ci":               "GitLab CI",
	"github actions":          "GitHub Actions",
	"ios":                     "iOS",
	"objective-c":             "Objective-C",
	"objc":                    "Objective-C",
	"react native":            "React Native",
	"centos":                  "CentOS",
	"numpy":                   "NumPy",
	"scikit-learn":            "Scikit-learn",
	"sklearn":                 "Scikit-learn",
	"tensorflow":              "TensorFlow",
	"pytorch":                 "PyTorch",
	"spark":                   "Apache Spark",
	"apache spark":            "Apache Spark",
	"pyspark":                 "Apache Spark",
	"ml":                      "Machine Learning",
	"machine learning":        "Machine Learning",
	"deep learning":           "Deep Learning",
	"ai":                      "Artificial Intelligence",
	"artificial intelligence": "Artificial Intelligence",
	"data science":            "Data Science",
	"svn":                     "SVN",
	"jira":                    "JIRA",
	"rest api":                "REST API",
	"restful":                 "REST API",
	"restful api":             "REST API",
	"graphql":                 "GraphQL",
	"ci/cd":                   "CI/CD",
	"cicd":                    "CI/CD",
	"unit testing":            "Unit Testing",
	"integration testing":     "Integration Testing",
	"microservices":           "Microservices",
	"micro-services":          "Microservices",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps single words that aren't known acronyms get only their first letter capitalized
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 {
		if !strings.Contains(lower, " ") {
			return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
		}
		return normalized
	}

	// Mixed case is kept as written
	if normalized != strings.ToLower(normalized) {
		return normalized
	}

	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// CanonicalKey returns the comparison key for a skill name. Two names refer to the
// same skill exactly when their keys are equal.
func CanonicalKey(skillName string) string {
	return strings.ToLower(NormalizeSkillName(skillName))
}

// NormalizeSkills normalizes each name and drops blanks and duplicates, keeping the
// first occurrence of each skill.
func NormalizeSkills(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := NormalizeSkillName(name)
		if normalized == "" {
			continue
		}
		key := strings.ToLower(normalized)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// AliasesOf returns every known variant that normalizes to canonical, excluding
// spellings that differ from canonical only by case. The result is sorted.
func AliasesOf(canonical string) []string {
	var aliases []string
	for variant, target := range skillNormalizations {
		if target != canonical || strings.EqualFold(variant, canonical) {
			continue
		}
		aliases = append(aliases, variant)
	}
	sort.Strings(aliases)
	return aliases
}
