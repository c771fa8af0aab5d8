package roadmap

import "github.com/jonathan/career-comeback/internal/matching"

// coreSkills are the skills expected in each domain, in priority order.
// Gaps are reported in this order.
var coreSkills = map[matching.Domain][]string{
	matching.Design: {"UI Design", "UX Design", "Figma", "Design Systems", "Prototyping", "User Research", "Visual Design", "Typography", "Responsive Design", "Interaction Design"},
	matching.Engineering: {"JavaScript", "React", "Node.js", "Python", "SQL", "Git", "TypeScript", "API Design", "Docker", "Agile"},
	matching.Data: {"SQL", "Python", "Data Visualization", "Statistics", "Analytics", "Tableau", "Excel", "ETL", "Machine Learning", "A/B Testing"},
	matching.Marketing: {"Content Marketing", "SEO", "Brand Strategy", "Campaign Management", "Copywriting", "Analytics", "Social Media", "Email Marketing", "Market Research", "Growth"},
	matching.Healthcare: {"Clinical Knowledge", "EHR Systems", "Patient Care", "Data Analysis", "Research", "Regulatory Compliance", "HIPAA", "Telemedicine", "Medical Terminology", "Quality Assurance"},
	matching.Finance: {"Financial Analysis", "Excel", "Financial Modeling", "Accounting", "SQL", "Budgeting", "Forecasting", "Risk Management", "Audit", "Tax"},
	matching.Education: {"Curriculum Design", "Teaching", "LMS", "Content Creation", "Assessment Design", "Instructional Design", "Training", "E-Learning", "Public Speaking", "Mentoring"},
	matching.Operations: {"Project Management", "Process Improvement", "Agile", "Jira", "Lean", "Six Sigma", "Supply Chain", "KPI Frameworks", "Change Management", "Leadership"},
	matching.Legal: {"Compliance", "Contract Management", "Regulatory Affairs", "Legal Research", "Risk Assessment", "Litigation", "Negotiation", "IP", "Privacy Law", "Legal Writing"},
	matching.HR: {"Recruiting", "Talent Management", "Employee Relations", "Payroll", "Performance Management", "HRIS", "Onboarding", "Benefits Administration", "Labor Law", "DEI"},
	matching.General: {"Project Management", "Communication", "Analytics", "Leadership", "Strategy", "Stakeholder Management", "Excel", "Problem-Solving", "Agile", "Data Analysis"},
}

// CoreSkills returns the expected skills for d, falling back to General.
func CoreSkills(d matching.Domain) []string {
	if s, ok := coreSkills[d]; ok {
		return s
	}
	return coreSkills[matching.General]
}
