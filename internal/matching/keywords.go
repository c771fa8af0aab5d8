package matching

// DomainKeywords pairs a domain with the substrings that count as hits for it.
type DomainKeywords struct {
	Domain   Domain
	Keywords []string
}

// KeywordTable is an ordered list of domain keyword sets. Order is the
// tie-break priority used by Classify: the earlier entry wins a tie.
type KeywordTable []DomainKeywords

// RecommendationKeywords drives domain detection for role recommendations.
// Only domains that have role templates appear here.
var RecommendationKeywords = KeywordTable{
	{Design, []string{
		"ui", "ux", "design", "figma", "sketch", "visual", "typography",
		"illustration", "prototyping", "wireframing", "graphic", "branding",
		"creative", "adobe", "photoshop", "art director", "product design",
		"interaction design",
	}},
	{Engineering, []string{
		"software", "developer", "engineer", "react", "javascript", "python",
		"node", "frontend", "backend", "full-stack", "fullstack", "devops", "cloud",
		"mobile", "ios", "android", "java", "typescript", "golang", "api", "docker",
		"kubernetes", "c++", "c#", ".net", "rust",
	}},
	{Data, []string{
		"data", "analytics", "scientist", "machine learning", "ml", "ai",
		"statistics", "sql", "tableau", "power bi", "big data", "etl",
		"data warehouse", "business intelligence",
	}},
	{Marketing, []string{
		"marketing", "brand", "content", "seo", "social media", "copywriting",
		"campaign", "advertising", "communications", "pr", "public relations",
		"growth", "digital marketing", "email marketing",
	}},
	{Healthcare, []string{
		"healthcare", "medical", "nursing", "clinical", "hospital", "patient",
		"pharma", "health", "ehr", "telemedicine", "biotech",
	}},
	{Finance, []string{
		"finance", "accounting", "financial", "investment", "banking", "audit",
		"tax", "cpa", "budgeting", "forecasting", "risk",
	}},
	{Education, []string{
		"education", "teaching", "teacher", "professor", "curriculum",
		"instructional", "learning", "training", "academic", "school",
	}},
}

// RoadmapKeywords drives domain detection for roadmap generation. It covers
// more domains than RecommendationKeywords and differs slightly in content.
var RoadmapKeywords = KeywordTable{
	{Design, []string{
		"ui", "ux", "design", "figma", "sketch", "visual", "typography",
		"illustration", "prototyping", "wireframing", "graphic", "branding",
		"creative", "adobe", "photoshop", "art director",
	}},
	{Engineering, []string{
		"software", "developer", "engineer", "react", "javascript", "python",
		"node", "frontend", "backend", "full-stack", "fullstack", "devops",
		"cloud", "mobile", "ios", "android", "java", "typescript", "golang",
		"rust", "c++", "api", "docker", "kubernetes",
	}},
	{Data, []string{
		"data", "analytics", "scientist", "machine learning", "ml", "ai",
		"statistics", "sql", "tableau", "power bi", "python", "r programming",
		"big data", "etl", "data warehouse", "business intelligence",
	}},
	{Marketing, []string{
		"marketing", "brand", "content", "seo", "social media", "copywriting",
		"campaign", "advertising", "communications", "pr", "public relations",
		"growth", "digital marketing", "email marketing",
	}},
	{Healthcare, []string{
		"healthcare", "medical", "nursing", "clinical", "hospital", "patient",
		"pharma", "health", "ehr", "telemedicine", "biotech",
	}},
	{Finance, []string{
		"finance", "accounting", "financial", "investment", "banking",
		"audit", "tax", "cpa", "budgeting", "forecasting", "risk",
	}},
	{Education, []string{
		"education", "teaching", "teacher", "professor", "curriculum",
		"instructional", "learning", "training", "academic", "school",
	}},
	{Operations, []string{
		"operations", "project management", "supply chain", "logistics",
		"procurement", "process", "quality", "lean", "six sigma",
	}},
	{Legal, []string{
		"legal", "law", "attorney", "compliance", "regulatory", "contract",
		"paralegal", "litigation",
	}},
	{HR, []string{
		"hr", "human resources", "recruiting", "talent", "people",
		"employee relations", "payroll", "benefits",
	}},
}
