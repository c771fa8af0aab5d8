package recommend

import (
	"net/url"
	"strings"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/types"
)

// learningPatterns detects the learning domain of a saved role. Entries are
// checked in order and the first with any matching fragment wins.
var learningPatterns = []matching.DomainKeywords{
	{Domain: matching.Design, Keywords: []string{"design", "ux", "ui", "figma", "visual", "brand"}},
	{Domain: matching.Engineering, Keywords: []string{"engineer", "developer", "react", "node", "python", "java", "code", "software"}},
	{Domain: matching.Data, Keywords: []string{"data", "analytics", "sql", "machine learning", "ml", "ai", "statistic"}},
	{Domain: matching.Marketing, Keywords: []string{"market", "seo", "content", "social", "campaign", "growth", "brand"}},
	{Domain: matching.Healthcare, Keywords: []string{"health", "nurs", "medic", "pharma", "clinical", "care"}},
	{Domain: matching.Finance, Keywords: []string{"financ", "account", "audit", "bank", "invest", "tax"}},
	{Domain: matching.Education, Keywords: []string{"teach", "educat", "tutor", "curriculum", "instruct", "train"}},
}

// LearningDomain picks the domain whose learning resources suit a role,
// from its title and gap skills.
func LearningDomain(title string, gaps []string) matching.Domain {
	text := strings.ToLower(strings.Join(append([]string{title}, gaps...), " "))
	for _, p := range learningPatterns {
		for _, kw := range p.Keywords {
			if matching.Contains(text, kw) {
				return p.Domain
			}
		}
	}
	return matching.General
}

const (
	defaultWorkshopQuery = "career skills"
	gapWorkshopSkills    = 2
)

// Workshops returns course search links for a role title, plus a skill-gap
// workshop when the role lists gaps.
func Workshops(title string, gaps []string) []types.Workshop {
	if title == "" {
		title = defaultWorkshopQuery
	}
	q := encodeComponent(title)

	links := []types.Workshop{
		{Name: "Coursera", Icon: "coursera", URL: "https://www.coursera.org/search?query=" + q},
		{Name: "LinkedIn Learning", Icon: "linkedin", URL: "https://www.linkedin.com/learning/search?keywords=" + q},
		{Name: "Udemy", Icon: "udemy", URL: "https://www.udemy.com/courses/search/?q=" + q},
		{Name: "edX", Icon: "edx", URL: "https://www.edx.org/search?q=" + q},
	}

	if len(gaps) > 0 {
		focus := gaps
		if len(focus) > gapWorkshopSkills {
			focus = focus[:gapWorkshopSkills]
		}
		links = append(links, types.Workshop{
			Name: "Skill-Gap Workshop",
			Icon: "workshop",
			URL:  "https://www.coursera.org/search?query=" + encodeComponent(strings.Join(focus, " ")),
			Note: "Focus: " + strings.Join(focus, ", "),
		})
	}
	return links
}

// encodeComponent escapes s for use as a query value, encoding spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

var sharedAcademies = []types.Academy{
	{Name: "LinkedIn Learning", URL: "https://www.linkedin.com/learning/", Type: "Online Platform"},
}

var domainAcademies = map[matching.Domain][]types.Academy{
	matching.Design: {
		{Name: "Designlab", URL: "https://designlab.com", Type: "Online Bootcamp"},
		{Name: "Interaction Design Foundation", URL: "https://www.interaction-design.org", Type: "Online Academy"},
		{Name: "General Assembly — UX Design", URL: "https://generalassemb.ly/education/ux-design-immersive", Type: "Immersive Bootcamp"},
		{Name: "CareerFoundry — UX/UI", URL: "https://careerfoundry.com/en/courses/become-a-ux-designer/", Type: "Online Bootcamp"},
	},
	matching.Engineering: {
		{Name: "freeCodeCamp", URL: "https://www.freecodecamp.org", Type: "Free Online"},
		{Name: "The Odin Project", URL: "https://www.theodinproject.com", Type: "Free Online"},
		{Name: "General Assembly — Software Engineering", URL: "https://generalassemb.ly/education/software-engineering-immersive", Type: "Immersive Bootcamp"},
		{Name: "Codecademy Pro", URL: "https://www.codecademy.com/pro", Type: "Online Academy"},
	},
	matching.Data: {
		{Name: "DataCamp", URL: "https://www.datacamp.com", Type: "Online Academy"},
		{Name: "Springboard — Data Science", URL: "https://www.springboard.com/courses/data-science-career-track/", Type: "Online Bootcamp"},
		{Name: "General Assembly — Data Science", URL: "https://generalassemb.ly/education/data-science-immersive", Type: "Immersive Bootcamp"},
		{Name: "Google Data Analytics Certificate", URL: "https://grow.google/certificates/data-analytics/", Type: "Certificate Program"},
	},
	matching.Marketing: {
		{Name: "Google Digital Marketing Certificate", URL: "https://grow.google/certificates/digital-marketing-ecommerce/", Type: "Certificate Program"},
		{Name: "HubSpot Academy", URL: "https://academy.hubspot.com", Type: "Free Online"},
		{Name: "General Assembly — Digital Marketing", URL: "https://generalassemb.ly/education/digital-marketing", Type: "Immersive Bootcamp"},
		{Name: "CXL Institute", URL: "https://cxl.com", Type: "Online Academy"},
	},
	matching.Healthcare: {
		{Name: "Coursera — Public Health", URL: "https://www.coursera.org/browse/health", Type: "Online Courses"},
		{Name: "edX — Health & Medicine", URL: "https://www.edx.org/learn/health", Type: "Online Courses"},
		{Name: "Khan Academy — Health & Medicine", URL: "https://www.khanacademy.org/science/health-and-medicine", Type: "Free Online"},
	},
	matching.Finance: {
		{Name: "CFI — Corporate Finance Institute", URL: "https://corporatefinanceinstitute.com", Type: "Online Academy"},
		{Name: "Khan Academy — Finance", URL: "https://www.khanacademy.org/economics-finance-domain", Type: "Free Online"},
		{Name: "Coursera — Finance Specializations", URL: "https://www.coursera.org/browse/business/finance", Type: "Online Courses"},
	},
	matching.Education: {
		{Name: "Coursera — Education Teaching", URL: "https://www.coursera.org/browse/social-sciences/education", Type: "Online Courses"},
		{Name: "edX — Education & Teacher Training", URL: "https://www.edx.org/learn/education", Type: "Online Courses"},
		{Name: "Khan Academy", URL: "https://www.khanacademy.org", Type: "Free Online"},
	},
	matching.General: {
		{Name: "Coursera", URL: "https://www.coursera.org", Type: "Online Platform"},
		{Name: "edX", URL: "https://www.edx.org", Type: "Online Platform"},
		{Name: "Skillshare", URL: "https://www.skillshare.com", Type: "Online Platform"},
	},
}

// Academies lists learning providers for a domain, followed by providers
// that suit every domain.
func Academies(d matching.Domain) []types.Academy {
	list, ok := domainAcademies[d]
	if !ok {
		list = domainAcademies[matching.General]
	}
	out := make([]types.Academy, 0, len(list)+len(sharedAcademies))
	out = append(out, list...)
	return append(out, sharedAcademies...)
}
