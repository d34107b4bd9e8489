package gap

import "github.com/velionx/placement-engine/internal/types"

// CompanySummary is a catalog listing entry.
type CompanySummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
}

// catalogOrder keeps Companies() listings deterministic.
var catalogOrder = []string{
	"google_sde1",
	"amazon_sde1",
	"microsoft_sde",
	"meta_sde",
	"startup_fullstack",
	"tcs_developer",
	"infosys_se",
	"data_scientist",
}

// DefaultCatalog returns the built-in employer requirement profiles.
func DefaultCatalog() map[string]types.RequirementProfile {
	return map[string]types.RequirementProfile{
		"google_sde1": {
			ID:              "google_sde1",
			CompanyName:     "Google",
			Role:            "Software Development Engineer I",
			RequiredSkills:  []string{"dsa", "system design", "python", "problem solving"},
			PreferredSkills: []string{"distributed systems", "machine learning", "go"},
			MinimumCGPA:     7.0,
		},
		"amazon_sde1": {
			ID:              "amazon_sde1",
			CompanyName:     "Amazon",
			Role:            "Software Development Engineer I",
			RequiredSkills:  []string{"dsa", "java", "oop", "system design"},
			PreferredSkills: []string{"aws", "microservices", "leadership"},
			MinimumCGPA:     6.5,
		},
		"microsoft_sde": {
			ID:              "microsoft_sde",
			CompanyName:     "Microsoft",
			Role:            "Software Engineer",
			RequiredSkills:  []string{"dsa", "c++", "system design", "problem solving"},
			PreferredSkills: []string{"azure", "distributed systems", "c#"},
			MinimumCGPA:     7.0,
		},
		"meta_sde": {
			ID:              "meta_sde",
			CompanyName:     "Meta",
			Role:            "Software Engineer",
			RequiredSkills:  []string{"dsa", "system design", "python", "react"},
			PreferredSkills: []string{"machine learning", "mobile development"},
			MinimumCGPA:     7.5,
		},
		"startup_fullstack": {
			ID:              "startup_fullstack",
			CompanyName:     "Tech Startup",
			Role:            "Full Stack Developer",
			RequiredSkills:  []string{"javascript", "react", "node.js", "sql"},
			PreferredSkills: []string{"typescript", "docker", "aws"},
			MinimumCGPA:     6.0,
		},
		"tcs_developer": {
			ID:              "tcs_developer",
			CompanyName:     "TCS",
			Role:            "Developer",
			RequiredSkills:  []string{"java", "sql", "oop", "communication"},
			PreferredSkills: []string{"spring", "html", "css"},
			MinimumCGPA:     6.0,
		},
		"infosys_se": {
			ID:              "infosys_se",
			CompanyName:     "Infosys",
			Role:            "Systems Engineer",
			RequiredSkills:  []string{"java", "python", "sql", "communication"},
			PreferredSkills: []string{"cloud", "agile"},
			MinimumCGPA:     6.0,
		},
		"data_scientist": {
			ID:              "data_scientist",
			CompanyName:     "Data Company",
			Role:            "Data Scientist",
			RequiredSkills:  []string{"python", "machine learning", "sql", "statistics"},
			PreferredSkills: []string{"deep learning", "nlp", "tableau"},
			MinimumCGPA:     7.0,
		},
	}
}
