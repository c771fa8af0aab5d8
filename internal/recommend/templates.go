package recommend

import "github.com/jonathan/career-comeback/internal/matching"

// RoleTemplate describes one generated role. Title and Description are
// format strings; see renderContext for the placeholders they may use.
// Skills and GapSkills are only set on adjacent and replacement templates.
type RoleTemplate struct {
	Title       string
	Description string
	Skills      []string
	GapSkills   []string
}

// DomainTemplates holds the role templates for each tier of one domain.
type DomainTemplates struct {
	Direct      []RoleTemplate
	Adjacent    []RoleTemplate
	Replacement []RoleTemplate
}

// ForTier returns the templates for tier t.
func (d DomainTemplates) ForTier(t matching.Tier) []RoleTemplate {
	switch t {
	case matching.TierDirect:
		return d.Direct
	case matching.TierAdjacent:
		return d.Adjacent
	case matching.TierReplacement:
		return d.Replacement
	default:
		return nil
	}
}

// templatesFor returns the templates for d, falling back to General.
func templatesFor(d matching.Domain) DomainTemplates {
	if t, ok := roleTemplates[d]; ok {
		return t
	}
	return roleTemplates[matching.General]
}

var roleTemplates = map[matching.Domain]DomainTemplates{
	matching.Design: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Continue your career as a {role}. Your {skills} experience maps directly to this role.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} position leveraging your {skills} expertise.",
			},
			{
				Title:       "Lead {role}",
				Description: "Step into leadership driving design strategy with your {years} experience.",
			},
			{
				Title:       "{role} II",
				Description: "Mid-senior hands-on {skills} role with room to grow into leadership.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "UX Researcher",
				Description: "Your {skills} background gives you strong user empathy — the most critical UX research skill.",
				Skills:      []string{"User Research", "Usability Testing", "Data Analysis"},
				GapSkills:   []string{"Quantitative Research", "A/B Testing", "Survey Design"},
			},
			{
				Title:       "Design Program Manager",
				Description: "Bridge design and operations. Your {skills} domain expertise is invaluable.",
				Skills:      []string{"Project Management", "Design Systems", "Stakeholder Communication"},
				GapSkills:   []string{"Program Management", "Agile/Scrum", "Roadmap Planning"},
			},
			{
				Title:       "Front-End Developer",
				Description: "Bring designs to life in code. Your design eye gives you a massive advantage.",
				Skills:      []string{"HTML", "CSS", "JavaScript", "Responsive Design"},
				GapSkills:   []string{"React/Vue", "JavaScript", "Git"},
			},
			{
				Title:       "Brand Strategist",
				Description: "Apply visual and strategic thinking to brand building. Designers make exceptional brand strategists.",
				Skills:      []string{"Brand Strategy", "Visual Identity", "Market Research"},
				GapSkills:   []string{"Market Analysis", "Competitive Positioning"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "No-Code Product Builder",
				Description: "Build full products without code. Your design skills translate directly into shipping fast.",
				Skills:      []string{"Visual Design", "Prototyping", "User Flows"},
				GapSkills:   []string{"Webflow", "Bubble", "No-Code Architecture"},
			},
			{
				Title:       "Design Educator & Mentor",
				Description: "Share your {skills} expertise with the next generation of designers.",
				Skills:      []string{"Design Process", "Figma", "Portfolio Review"},
				GapSkills:   []string{"Teaching", "Curriculum Design", "Public Speaking"},
			},
			{
				Title:       "AI-Assisted Design Specialist",
				Description: "Combine traditional design skills with AI tools — an emerging, high-demand role.",
				Skills:      []string{"AI Tools", "Prompt Design", "Visual Design"},
				GapSkills:   []string{"Midjourney/DALL-E", "AI Workflows", "Prompt Engineering"},
			},
		},
	},
	matching.Engineering: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Your {skills} skills are in high demand. This role matches your technical profile directly.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} engineering position. Your {skills} expertise is the core requirement.",
			},
			{
				Title:       "Staff {role}",
				Description: "A senior IC track role where your {years} technical depth drives architecture and mentorship.",
			},
			{
				Title:       "{role} — Contract",
				Description: "A contract opportunity to ease back in with high-impact {skills} work and flexible terms.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "Developer Advocate",
				Description: "Your {skills} background makes you ideal for bridging engineering and developer community.",
				Skills:      []string{"Technical Writing", "Public Speaking", "Coding"},
				GapSkills:   []string{"Content Creation", "Community Building", "Demos"},
			},
			{
				Title:       "Technical Project Manager",
				Description: "Lead engineering teams with your technical depth — a rare advantage in PM.",
				Skills:      []string{"Project Management", "Agile", "Technical Architecture"},
				GapSkills:   []string{"Jira/Linear", "Stakeholder Management", "Roadmap Planning"},
			},
			{
				Title:       "Solutions Engineer",
				Description: "Use your {skills} expertise to help customers integrate and succeed with products.",
				Skills:      []string{"API Design", "Client Communication", "Technical Demos"},
				GapSkills:   []string{"Sales Engineering", "Consultative Selling"},
			},
			{
				Title:       "Engineering Manager",
				Description: "Transition from IC to leadership. Your technical credibility is the foundation.",
				Skills:      []string{"Team Leadership", "Agile", "Technical Strategy"},
				GapSkills:   []string{"People Management", "Performance Reviews", "Hiring"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "AI/ML Engineer",
				Description: "Your engineering foundations transfer directly to the fastest-growing field in tech.",
				Skills:      []string{"Python", "Data Structures", "Mathematics"},
				GapSkills:   []string{"Machine Learning", "PyTorch/TensorFlow", "LLM Fine-Tuning"},
			},
			{
				Title:       "Cloud Solutions Architect",
				Description: "Help organizations design and build in the cloud. Your backend skills are the perfect base.",
				Skills:      []string{"Infrastructure", "Networking", "API Design"},
				GapSkills:   []string{"AWS/GCP Certification", "Terraform", "Cloud Architecture"},
			},
			{
				Title:       "Freelance Technical Consultant",
				Description: "Go independent with your {skills} expertise. Flexible, high-value consulting.",
				Skills:      []string{"Architecture", "Code Review", "Strategy"},
				GapSkills:   []string{"Business Development", "Proposal Writing", "Client Management"},
			},
		},
	},
	matching.Data: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Your {skills} skills make you a strong match for senior data roles.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} data role focused on {skills}.",
			},
			{
				Title:       "Lead {role}",
				Description: "Drive data strategy with your {years} experience in {skills}.",
			},
			{
				Title:       "Business Intelligence Analyst",
				Description: "Transform data into actionable insights. Your {skills} expertise is directly applicable.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "Product Analyst",
				Description: "Bridge data and product. Your {skills} skills are the foundation of great product analytics.",
				Skills:      []string{"SQL", "Product Metrics", "A/B Testing"},
				GapSkills:   []string{"Product Thinking", "Experimentation Frameworks"},
			},
			{
				Title:       "Data Engineer",
				Description: "Build the data infrastructure that powers analytics. Your query skills transfer directly.",
				Skills:      []string{"SQL", "Python", "ETL Pipelines"},
				GapSkills:   []string{"Spark", "Airflow", "Data Modeling"},
			},
			{
				Title:       "Analytics Manager",
				Description: "Lead an analytics team with your deep {skills} expertise.",
				Skills:      []string{"Team Leadership", "Analytics Strategy", "Stakeholder Communication"},
				GapSkills:   []string{"People Management", "Executive Reporting"},
			},
			{
				Title:       "Quantitative Researcher",
				Description: "Apply rigorous analytical methods to complex problems.",
				Skills:      []string{"Statistics", "Python", "Research Design"},
				GapSkills:   []string{"Advanced Statistics", "Causal Inference"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "Machine Learning Engineer",
				Description: "Your data foundations are the perfect springboard into ML engineering.",
				Skills:      []string{"Python", "Statistics", "Linear Algebra"},
				GapSkills:   []string{"PyTorch/TensorFlow", "Model Deployment", "MLOps"},
			},
			{
				Title:       "AI Product Manager",
				Description: "Combine data expertise with product leadership in the AI space.",
				Skills:      []string{"Data Literacy", "Product Thinking", "Communication"},
				GapSkills:   []string{"Product Management", "AI/ML Fundamentals", "Roadmapping"},
			},
			{
				Title:       "Data Literacy Consultant",
				Description: "Help organizations become data-driven using your {skills} expertise.",
				Skills:      []string{"Teaching", "Data Visualization", "Communication"},
				GapSkills:   []string{"Consulting", "Workshop Facilitation", "Business Development"},
			},
		},
	},
	matching.Marketing: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Your {skills} expertise makes this a direct match. Continue at the senior level.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} role leveraging your {skills} skills.",
			},
			{
				Title:       "Head of {head_role}",
				Description: "Lead the function with your {years} marketing experience.",
			},
			{
				Title:       "Brand Strategist",
				Description: "Shape brand narrative and positioning with your {skills} background.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "Product Marketing Manager",
				Description: "Bridge marketing and product. Your {skills} skills are the foundation.",
				Skills:      []string{"Product Launches", "Market Research", "Positioning"},
				GapSkills:   []string{"Competitive Intelligence", "Sales Enablement", "Product Launches"},
			},
			{
				Title:       "Community Manager",
				Description: "Build and nurture communities around brands. Your communication skills are the core.",
				Skills:      []string{"Content Creation", "Engagement", "Brand Voice"},
				GapSkills:   []string{"Community Platforms", "Event Management", "Metrics & Reporting"},
			},
			{
				Title:       "Growth Marketing Analyst",
				Description: "Apply data-driven growth tactics. Your {skills} experience provides strategic context.",
				Skills:      []string{"Analytics", "SEO", "Campaign Strategy"},
				GapSkills:   []string{"Growth Frameworks", "Funnel Optimization", "Marketing Automation"},
			},
			{
				Title:       "Communications Director",
				Description: "Lead organizational communication and public relations.",
				Skills:      []string{"PR", "Stakeholder Relations", "Crisis Communication"},
				GapSkills:   []string{"Media Relations", "Executive Communication"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "AI Content Strategist",
				Description: "Combine content expertise with AI tools — an emerging, high-demand role.",
				Skills:      []string{"Content Strategy", "AI Tools", "Editing"},
				GapSkills:   []string{"AI Writing Tools", "Prompt Engineering", "AI Workflows"},
			},
			{
				Title:       "Cohort Course Creator",
				Description: "Package your {skills} expertise into online courses. Scalable income.",
				Skills:      []string{"Teaching", "Content Creation", "Community"},
				GapSkills:   []string{"Course Design", "Facilitation", "Platform Setup"},
			},
			{
				Title:       "Freelance Marketing Consultant",
				Description: "Go independent with your {skills} expertise. Flexible, high-value consulting.",
				Skills:      []string{"Strategy", "Client Relations", "Analytics"},
				GapSkills:   []string{"Business Development", "Proposal Writing", "Personal Branding"},
			},
		},
	},
	matching.Healthcare: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Return to practice at the senior level. Your {skills} background is directly applicable.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} healthcare position matching your {skills} expertise.",
			},
			{
				Title:       "Health Informatics Specialist",
				Description: "Bridge clinical knowledge and technology. Your {skills} experience is essential.",
			},
			{
				Title:       "Clinical Research Coordinator",
				Description: "Apply your {skills} background to advancing medical research.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "Health Tech Product Manager",
				Description: "Shape telehealth products. Your clinical experience gives you unmatched user empathy.",
				Skills:      []string{"Product Thinking", "Healthcare Domain", "Stakeholder Communication"},
				GapSkills:   []string{"Product Management", "Agile", "User Research"},
			},
			{
				Title:       "Medical Science Liaison",
				Description: "Bridge clinical practice and pharmaceutical science.",
				Skills:      []string{"Clinical Knowledge", "Communication", "Research"},
				GapSkills:   []string{"Pharma Industry", "KOL Management", "Regulatory Affairs"},
			},
			{
				Title:       "Patient Experience Manager",
				Description: "Improve patient outcomes at an organizational level using your firsthand experience.",
				Skills:      []string{"Patient Care", "Process Improvement", "Team Leadership"},
				GapSkills:   []string{"CX Frameworks", "Survey Design", "Data Analysis"},
			},
			{
				Title:       "Healthcare Data Analyst",
				Description: "Combine clinical and analytical skills to drive data-informed decisions.",
				Skills:      []string{"Clinical Knowledge", "Data Analysis", "EHR Systems"},
				GapSkills:   []string{"SQL", "Tableau", "Population Health Analytics"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "Health & Wellness Coach",
				Description: "Use your clinical expertise to help individuals achieve their health goals.",
				Skills:      []string{"Clinical Knowledge", "Communication", "Empathy"},
				GapSkills:   []string{"Coaching Certification", "Business Development", "Digital Marketing"},
			},
			{
				Title:       "Healthcare Consultant",
				Description: "Advise healthcare organizations using your {skills} expertise. High-value, flexible work.",
				Skills:      []string{"Domain Expertise", "Process Analysis", "Communication"},
				GapSkills:   []string{"Consulting Frameworks", "Business Development"},
			},
			{
				Title:       "Medical Writer",
				Description: "Translate complex medical information into clear content. Remote-friendly.",
				Skills:      []string{"Clinical Knowledge", "Writing", "Research"},
				GapSkills:   []string{"Regulatory Writing", "Publication Standards", "Medical Editing"},
			},
		},
	},
	matching.Finance: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Continue your finance career at the senior level. Your {skills} expertise is directly applicable.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} finance role matching your {skills} background.",
			},
			{
				Title:       "Financial Planning & Analysis Lead",
				Description: "Drive strategic financial decisions. Your {skills} experience is the core qualification.",
			},
			{
				Title:       "Corporate Controller",
				Description: "Oversee financial reporting and compliance with your {years} experience.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "FinTech Product Analyst",
				Description: "Apply your {skills} expertise to shape financial technology products.",
				Skills:      []string{"Financial Analysis", "Analytics", "Product Thinking"},
				GapSkills:   []string{"Product Analytics", "SQL/Python", "A/B Testing"},
			},
			{
				Title:       "Risk & Compliance Manager",
				Description: "Your financial background is essential for navigating regulatory environments.",
				Skills:      []string{"Regulatory Knowledge", "Risk Assessment", "Audit"},
				GapSkills:   []string{"Compliance Frameworks", "RegTech Tools"},
			},
			{
				Title:       "Business Operations Manager",
				Description: "Use your financial acumen to drive operational efficiency.",
				Skills:      []string{"Financial Analysis", "Process Improvement", "Leadership"},
				GapSkills:   []string{"Operations Management", "KPI Frameworks"},
			},
			{
				Title:       "Treasury Analyst",
				Description: "Specialize in cash and liquidity management. Your foundations are directly applicable.",
				Skills:      []string{"Cash Management", "Financial Modeling", "Risk Management"},
				GapSkills:   []string{"Treasury Systems", "Liquidity Planning"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "Personal Finance Advisor",
				Description: "Help individuals reach financial goals using your {skills} expertise.",
				Skills:      []string{"Financial Planning", "Client Relations", "Communication"},
				GapSkills:   []string{"CFP Certification", "Business Development", "Digital Marketing"},
			},
			{
				Title:       "Finance Automation Consultant",
				Description: "Automate financial workflows. Combines domain expertise with technology.",
				Skills:      []string{"Excel", "Financial Processes", "Analysis"},
				GapSkills:   []string{"RPA Tools", "Python", "Process Automation"},
			},
			{
				Title:       "Financial Literacy Educator",
				Description: "Share your {skills} knowledge through courses, workshops, and content.",
				Skills:      []string{"Financial Knowledge", "Communication", "Teaching"},
				GapSkills:   []string{"Curriculum Design", "Content Creation", "Public Speaking"},
			},
		},
	},
	matching.Education: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Return to education at the senior level. Your {skills} experience is a direct match.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} education position leveraging your {skills} background.",
			},
			{
				Title:       "Instructional Designer",
				Description: "Design learning experiences that scale. Your {skills} background powers effective curriculum creation.",
			},
			{
				Title:       "Curriculum Development Lead",
				Description: "Lead curriculum strategy with your deep {skills} expertise.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "Learning & Development Manager",
				Description: "Your teaching expertise is in high demand in corporate training.",
				Skills:      []string{"Training", "Curriculum Design", "Program Management"},
				GapSkills:   []string{"Corporate L&D", "LMS Administration", "Performance Metrics"},
			},
			{
				Title:       "EdTech Product Manager",
				Description: "Shape education technology products with your {skills} domain insight.",
				Skills:      []string{"Education Domain", "User Empathy", "Product Thinking"},
				GapSkills:   []string{"Product Management", "Agile", "Data Analytics"},
			},
			{
				Title:       "Academic Program Manager",
				Description: "Manage educational programs with your deep pedagogical understanding.",
				Skills:      []string{"Program Management", "Stakeholder Relations", "Curriculum"},
				GapSkills:   []string{"Accreditation", "Budget Management", "Enrollment Strategy"},
			},
			{
				Title:       "Student Success Coordinator",
				Description: "Support student outcomes using your teaching experience. High-impact role.",
				Skills:      []string{"Mentoring", "Communication", "Student Support"},
				GapSkills:   []string{"CRM Systems", "Retention Analytics", "Case Management"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "Online Course Creator",
				Description: "Package your {skills} knowledge into online courses. Scalable income.",
				Skills:      []string{"Teaching", "Content Creation", "Subject Expertise"},
				GapSkills:   []string{"Video Production", "Platform Setup", "Marketing"},
			},
			{
				Title:       "Corporate Trainer / Facilitator",
				Description: "Bring teaching expertise into the corporate world. Remote-friendly.",
				Skills:      []string{"Facilitation", "Training Design", "Public Speaking"},
				GapSkills:   []string{"Corporate Culture", "Assessment Design", "Virtual Facilitation"},
			},
			{
				Title:       "Educational Content Writer",
				Description: "Create educational content that reaches millions. Your {skills} ensures depth.",
				Skills:      []string{"Writing", "Subject Expertise", "Research"},
				GapSkills:   []string{"SEO", "Content Strategy", "EdTech Platforms"},
			},
		},
	},
	matching.General: {
		Direct: []RoleTemplate{
			{
				Title:       "Senior {role}",
				Description: "Continue your career at the experienced level. Your {skills} skills map directly.",
			},
			{
				Title:       "{role} ({worktype})",
				Description: "A {worktype_lower} position matching your profile and {skills} expertise.",
			},
			{
				Title:       "Lead {role}",
				Description: "Step into leadership with your {years} experience and strategic skills.",
			},
		},
		Adjacent: []RoleTemplate{
			{
				Title:       "Project Manager",
				Description: "Your {skills} background gives strong domain knowledge for project leadership.",
				Skills:      []string{"Organization", "Communication", "Planning"},
				GapSkills:   []string{"PMP/Agile Certification", "Jira/Asana", "Stakeholder Management"},
			},
			{
				Title:       "Operations Manager",
				Description: "Apply your experience to streamlining operations.",
				Skills:      []string{"Process Improvement", "Team Leadership", "Analytics"},
				GapSkills:   []string{"Operations Strategy", "KPI Frameworks", "Change Management"},
			},
			{
				Title:       "Customer Success Manager",
				Description: "Drive customer outcomes with domain expertise and relationship skills.",
				Skills:      []string{"Client Relations", "Communication", "Problem-Solving"},
				GapSkills:   []string{"CRM Tools", "Health Scoring", "Renewal Strategy"},
			},
		},
		Replacement: []RoleTemplate{
			{
				Title:       "Freelance Consultant",
				Description: "Go independent with your {skills} expertise. Flexible hours and premium clients.",
				Skills:      []string{"Strategy", "Communication", "Domain Expertise"},
				GapSkills:   []string{"Business Development", "Personal Branding", "Proposal Writing"},
			},
			{
				Title:       "Career Coach / Mentor",
				Description: "Help others navigate careers using your {skills} experience.",
				Skills:      []string{"Communication", "Empathy", "Domain Knowledge"},
				GapSkills:   []string{"Coaching Certification", "Business Development", "Digital Presence"},
			},
			{
				Title:       "AI-Assisted Specialist",
				Description: "Combine domain expertise with AI tools — experienced professionals excel here.",
				Skills:      []string{"Domain Knowledge", "Problem-Solving", "Communication"},
				GapSkills:   []string{"AI Tools", "Prompt Engineering", "Automation"},
			},
		},
	},
}
