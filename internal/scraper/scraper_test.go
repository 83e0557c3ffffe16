package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const remoteOKFixture = `[
	{"legal": "API terms apply"},
	{
		"id": "12345",
		"epoch": 1755043200,
		"date": "2025-08-13T00:00:00+00:00",
		"company": "Acme Corp",
		"position": "Senior Go Engineer",
		"tags": ["Golang", "PostgreSQL", "AWS"],
		"location": "Worldwide",
		"description": "Build distributed systems in Go.",
		"salary_min": 120000,
		"salary_max": 160000,
		"url": "https://remoteok.com/remote-jobs/12345"
	},
	{
		"id": "12346",
		"epoch": 0,
		"date": "2025-08-12T10:30:00+00:00",
		"company": "Widget Inc",
		"position": "Python Developer",
		"tags": ["Python", "Django"],
		"location": "",
		"description": "Django backend work.",
		"salary_min": 90000,
		"salary_max": 0,
		"url": "https://remoteok.com/remote-jobs/12346"
	}
]`

func TestParseRemoteOK(t *testing.T) {
	postings := parseRemoteOK([]byte(remoteOKFixture))
	require.Len(t, postings, 2, "legal notice entry should be skipped")

	first := postings[0]
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Senior Go Engineer", first.Role)
	assert.Equal(t, []string{"golang", "postgresql", "aws"}, first.TechStack)
	assert.Equal(t, "Worldwide", first.Location)
	assert.Equal(t, "$120000 - $160000", first.SalaryText)
	assert.Equal(t, "https://remoteok.com/remote-jobs/12345", first.SourceURL)
	assert.Equal(t, time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC), first.PostedDate)

	second := postings[1]
	assert.Equal(t, "Remote", second.Location, "empty location defaults to Remote")
	assert.Equal(t, "$90000+", second.SalaryText, "open-ended when only salary_min present")
	assert.Equal(t, time.Date(2025, 8, 12, 10, 30, 0, 0, time.UTC), second.PostedDate, "falls back to date field when epoch is zero")
}

const wwrFixture = `<html><body>
<section class="jobs">
  <ul>
    <li>
      <a href="/remote-jobs/acme-corp-senior-backend-engineer">
        <span class="company">Acme Corp</span>
        <span class="title">Senior Backend Engineer</span>
        <span class="region company">Anywhere in the World</span>
      </a>
    </li>
    <li>
      <a href="/remote-jobs/widget-inc-devops-engineer">
        <span class="company">Widget Inc</span>
        <span class="title">DevOps Engineer</span>
        <span class="region company">Americas Only</span>
      </a>
    </li>
    <li class="view-all"><a href="/categories/remote-programming-jobs">View all</a></li>
  </ul>
</section>
</body></html>`

func TestParseWeWorkRemotely(t *testing.T) {
	postings, err := parseWeWorkRemotely([]byte(wwrFixture), "https://weworkremotely.com")
	require.NoError(t, err)
	require.Len(t, postings, 2, "the view-all row has no title and should be skipped")

	assert.Equal(t, "Acme Corp", postings[0].Company)
	assert.Equal(t, "Senior Backend Engineer", postings[0].Role)
	assert.Equal(t, "Anywhere in the World", postings[0].Location)
	assert.Equal(t, "https://weworkremotely.com/remote-jobs/acme-corp-senior-backend-engineer", postings[0].SourceURL)
	assert.Empty(t, postings[0].SalaryText, "listing page carries no salary text")

	assert.Equal(t, "Widget Inc", postings[1].Company)
	assert.Equal(t, "Americas Only", postings[1].Location)
}

func TestMatchesKeywords(t *testing.T) {
	posting := Posting{
		Role:        "Senior Go Engineer",
		Company:     "Acme Corp",
		Description: "Distributed systems work",
		TechStack:   []string{"golang", "kubernetes"},
	}

	assert.True(t, matchesKeywords(posting, nil), "empty keyword list matches everything")
	assert.True(t, matchesKeywords(posting, []string{"go"}))
	assert.True(t, matchesKeywords(posting, []string{"KUBERNETES"}), "matching is case-insensitive")
	assert.True(t, matchesKeywords(posting, []string{"rust", "golang"}), "any keyword suffices")
	assert.False(t, matchesKeywords(posting, []string{"rust", "elixir"}))
}
