package ontology

// Default returns the authored skill ontology used for gap analysis.
// Relations are directional as authored; Related derives the reverse edges.
func Default() *Ontology {
	return New(map[string][]string{
		// Programming languages
		"python":     {"data science", "machine learning", "django", "flask", "fastapi"},
		"java":       {"spring", "android", "enterprise", "oop"},
		"javascript": {"react", "node.js", "angular", "vue", "typescript", "frontend"},
		"c++":        {"systems programming", "competitive programming", "dsa", "game development"},
		"c":          {"embedded", "systems", "operating systems"},

		// Web technologies
		"react":   {"javascript", "frontend", "typescript", "redux", "next.js"},
		"node.js": {"javascript", "backend", "express", "api"},
		"html":    {"css", "web", "frontend"},
		"css":     {"html", "web", "frontend", "tailwind", "bootstrap"},

		// Data & ML
		"machine learning": {"python", "data science", "tensorflow", "pytorch", "numpy", "pandas"},
		"data science":     {"python", "machine learning", "statistics", "sql", "visualization"},
		"sql":              {"database", "postgresql", "mysql", "data analysis"},

		// Core CS
		"dsa":           {"algorithms", "data structures", "problem solving", "competitive programming"},
		"oop":           {"object oriented", "design patterns", "java", "c++", "python"},
		"system design": {"architecture", "scalability", "distributed systems", "microservices"},

		// Cloud & DevOps
		"aws":        {"cloud", "devops", "infrastructure"},
		"docker":     {"containers", "kubernetes", "devops", "microservices"},
		"kubernetes": {"containers", "docker", "devops", "orchestration"},

		// Soft skills
		"communication":   {"presentation", "teamwork", "leadership"},
		"leadership":      {"management", "teamwork", "communication"},
		"problem solving": {"analytical", "critical thinking", "dsa"},
	})
}
