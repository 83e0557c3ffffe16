package recommend

import (
	"regexp"
	"strings"
)

// skillLexicon lists the tech-skill keywords matched against job text.
var skillLexicon = []string{
	"python", "javascript", "java", "typescript", "react", "angular", "vue",
	"node", "express", "django", "flask", "fastapi", "spring", "laravel",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"machine learning", "ai", "data science", "deep learning", "nlp",
	"devops", "ci/cd", "jenkins", "git", "github", "gitlab", "agile", "scrum",
	"frontend", "backend", "fullstack", "mobile", "ios", "android", "flutter",
	"react native", "web", "cloud", "microservices", "api", "rest", "graphql",
	"security", "cybersecurity", "blockchain", "iot", "golang", "rust",
}

var skillPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(skillLexicon))
	for _, s := range skillLexicon {
		m[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
	return m
}()

// ExtractSkills returns the lexicon skills found in text, in lexicon order.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, s := range skillLexicon {
		if skillPatterns[s].MatchString(lower) {
			found = append(found, s)
		}
	}
	return found
}
