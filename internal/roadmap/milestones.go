package roadmap

import "github.com/jonathan/career-comeback/internal/matching"

// Placeholder tokens recognized in milestone templates. Each is replaced
// once, by plain text substitution.
const (
	TokenTargetRole = "{TARGET_ROLE}"
	TokenIndustry   = "{INDUSTRY}"
	TokenSkillGap1  = "{SKILL_GAP_1}"
	TokenSkillGap2  = "{SKILL_GAP_2}"
)

type milestoneTemplate struct {
	Title       string
	Description string
	Week        string
}

var (
	linkedInMilestone = milestoneTemplate{
		Title:       "Update your LinkedIn profile",
		Description: "Rewrite your headline to reflect your target role. Add your career break with a confident, authentic narrative.",
		Week:        "Week 1",
	}
	resumeMilestone = milestoneTemplate{
		Title:       "Tailor your resume for target roles",
		Description: "Rewrite your resume highlighting transferable skills and quantified achievements. Customize for each application.",
		Week:        "Week 2",
	}
	networkMilestone = milestoneTemplate{
		Title:       "Reconnect with your professional network",
		Description: "Reach out to 5 former colleagues or mentors. Share your comeback story and what you're looking for.",
		Week:        "Week 2-3",
	}
	applyMilestone = milestoneTemplate{
		Title:       "Apply to your first target roles",
		Description: "Submit 3 carefully tailored applications. Quality over volume — each one should feel intentional.",
		Week:        "Week 3-4",
	}
	interviewMilestone = milestoneTemplate{
		Title:       "Prepare for interviews",
		Description: "Practice your career break narrative, STAR-format answers, and role-specific questions. Use mock interviews.",
		Week:        "Week 4",
	}
	journalingMilestone = milestoneTemplate{
		Title:       "Daily confidence journaling",
		Description: "Spend 5 minutes each morning writing what makes you qualified. Combat imposter syndrome with evidence.",
		Week:        "Ongoing",
	}
	celebrateMilestone = milestoneTemplate{
		Title:       "Celebrate your progress",
		Description: "You've rebuilt skills, expanded your network, and taken real action. This milestone exists because you deserve to acknowledge it.",
		Week:        "Week 5+",
	}
)

// extendedBreakMilestones ease users back in after a long break.
var extendedBreakMilestones = []milestoneTemplate{
		{Title: "Reacclimatize to workplace culture", Description: "Read about current workplace trends — remote/hybrid norms, communication tools (Slack, Teams), meeting culture.", Week: "Week 1"},
		{Title: "Build daily work routines", Description: "Start structuring your days like a workday — focused blocks, breaks, and a consistent schedule. Rebuilds stamina.", Week: "Week 1-2"},
}

// lowConfidenceMilestones add support for users who rate their confidence low.
var lowConfidenceMilestones = []milestoneTemplate{
		{Title: "Join a comeback support community", Description: "Connect with others on the same journey. Renova's community, Path Forward, or Reboot are great places to start.", Week: "Week 1"},
		{Title: "Identify your career break superpowers", Description: "List 5 skills you developed during your break — patience, adaptability, problem-solving. These are genuine strengths.", Week: "Week 1"},
}

// domainMilestones are the six skill-building steps for each domain. Legal
// and HR have none of their own and use General's.
var domainMilestones = map[matching.Domain][]milestoneTemplate{
	matching.Design: {
		{Title: "Refresh your design portfolio", Description: "Curate 3-5 of your strongest projects. Rewrite case studies to show process, decisions, and outcomes — not just visuals.", Week: "Week 1"},
		{Title: "Update your design tools", Description: "Spend time with the latest version of Figma (or your primary tool). Explore auto layout, variables, and dev mode.", Week: "Week 1"},
		{Title: "Complete a design refresher course", Description: "Take a focused course on {SKILL_GAP_1} — this is the most common gap for your target roles.", Week: "Week 2"},
		{Title: "Redesign a real product screen", Description: "Pick an app you use daily and redesign one flow. Document your thinking as a mini case study for your portfolio.", Week: "Week 2"},
		{Title: "Build or refine your design system", Description: "Create a small component library that demonstrates your systems thinking — tokens, components, documentation.", Week: "Week 3"},
		{Title: "Join design community events", Description: "Attend a local or virtual design meetup. Reconnect with the design community and stay current on trends.", Week: "Week 3"},
	},
	matching.Engineering: {
		{Title: "Rebuild your coding environment", Description: "Set up your dev machine with current tools, frameworks, and extensions. Push a fresh repo to GitHub.", Week: "Week 1"},
		{Title: "Complete a hands-on coding refresher", Description: "Spend 2-3 hours on a focused tutorial covering {SKILL_GAP_1} — your most impactful skill gap.", Week: "Week 1"},
		{Title: "Build a portfolio project", Description: "Create a small but complete project that demonstrates your {SKILL_GAP_1} and {SKILL_GAP_2} skills. Deploy it live.", Week: "Week 2"},
		{Title: "Contribute to open source", Description: "Find a beginner-friendly issue on GitHub in a project you use. Even a documentation fix shows you're active.", Week: "Week 2-3"},
		{Title: "Practice technical interview patterns", Description: "Solve 10-15 problems on LeetCode or similar. Focus on patterns, not memorization.", Week: "Week 3"},
		{Title: "Learn current best practices", Description: "Read up on the latest in {SKILL_GAP_2} — the industry has evolved and interviewers will ask about modern approaches.", Week: "Week 3-4"},
	},
	matching.Data: {
		{Title: "Set up your analytics environment", Description: "Install Python, Jupyter, and key libraries (pandas, scikit-learn). Run through a quick EDA on a public dataset.", Week: "Week 1"},
		{Title: "Refresh your SQL skills", Description: "Complete 20 SQL challenges on StrataScratch or LeetCode. Focus on window functions and CTEs.", Week: "Week 1"},
		{Title: "Build an end-to-end data project", Description: "Pick a real dataset, clean it, analyze it, and build a dashboard or notebook. This becomes your portfolio piece.", Week: "Week 2"},
		{Title: "Learn {SKILL_GAP_1}", Description: "This is the most common gap for your target roles. Take a structured course and build a small project.", Week: "Week 2-3"},
		{Title: "Practice case study interviews", Description: "Data roles often have case interviews. Practice structuring analyses and presenting findings clearly.", Week: "Week 3"},
		{Title: "Get a relevant certification", Description: "Consider Google Data Analytics Certificate or similar — it signals current knowledge to recruiters.", Week: "Week 3-4"},
	},
	matching.Marketing: {
		{Title: "Audit your personal brand", Description: "Update LinkedIn with your career break narrative framed as growth. Your story is an asset, not a gap.", Week: "Week 1"},
		{Title: "Learn current marketing tools", Description: "Spend time with {SKILL_GAP_1} — the marketing tech stack has evolved. Hands-on practice matters.", Week: "Week 1"},
		{Title: "Create a strategy case study", Description: "Pick a brand you admire and write a mock marketing strategy. This demonstrates current thinking to recruiters.", Week: "Week 2"},
		{Title: "Build a content portfolio", Description: "Write 2-3 pieces of content (blog posts, social campaigns) that showcase your expertise in your target niche.", Week: "Week 2-3"},
		{Title: "Reconnect with your network", Description: "Reach out to 5 former colleagues with a genuine re-introduction. Share what you've been learning.", Week: "Week 3"},
		{Title: "Explore {SKILL_GAP_2} fundamentals", Description: "This skill appears frequently in your target roles. Even basic familiarity will set you apart.", Week: "Week 3-4"},
	},
	matching.Healthcare: {
		{Title: "Verify and renew certifications", Description: "Check that all your professional certifications and licenses are current. Begin renewal if needed.", Week: "Week 1"},
		{Title: "Review updated clinical guidelines", Description: "Catch up on changes in protocols, EHR systems, and regulatory requirements in your specialty.", Week: "Week 1-2"},
		{Title: "Complete a continuing education module", Description: "Take a focused CE course in {SKILL_GAP_1} — this keeps your skills sharp and your credentials valid.", Week: "Week 2"},
		{Title: "Shadow or volunteer in a clinical setting", Description: "Even a few days helps you reconnect with the pace and build confidence before formal interviews.", Week: "Week 2-3"},
		{Title: "Update your healthcare resume", Description: "Highlight patient outcomes, certifications, and transferable skills like leadership and process improvement.", Week: "Week 3"},
		{Title: "Research health tech opportunities", Description: "Your clinical knowledge is valuable in health tech, informatics, and telehealth — explore adjacent paths.", Week: "Week 3-4"},
	},
	matching.Finance: {
		{Title: "Refresh financial modeling skills", Description: "Rebuild a DCF model or financial forecast from scratch. Use current tools and Excel best practices.", Week: "Week 1"},
		{Title: "Update regulatory knowledge", Description: "Review changes in accounting standards, tax codes, or financial regulations since your career break.", Week: "Week 1-2"},
		{Title: "Learn {SKILL_GAP_1}", Description: "This skill gap appears most frequently in your target roles. Even foundational knowledge makes a difference.", Week: "Week 2"},
		{Title: "Get a relevant certification", Description: "Consider CFA prep, CPA renewal, or a FinTech certificate — signals commitment to staying current.", Week: "Week 2-3"},
		{Title: "Build a financial analysis portfolio", Description: "Create 2-3 sample analyses (market research, valuation, budget forecast) in a clean presentation format.", Week: "Week 3"},
		{Title: "Network with finance professionals", Description: "Attend a virtual finance meetup or reconnect with former colleagues. The finance world runs on relationships.", Week: "Week 3-4"},
	},
	matching.Education: {
		{Title: "Explore current EdTech platforms", Description: "Familiarize yourself with modern LMS platforms, virtual classroom tools, and AI in education.", Week: "Week 1"},
		{Title: "Refresh your teaching portfolio", Description: "Update lesson plans, student outcomes data, and teaching philosophy statement.", Week: "Week 1-2"},
		{Title: "Take a professional development course", Description: "Focus on {SKILL_GAP_1} — the education landscape has shifted and this skill will be expected.", Week: "Week 2"},
		{Title: "Design a sample curriculum module", Description: "Create a polished sample lesson or course module that showcases your expertise and modern pedagogy.", Week: "Week 2-3"},
		{Title: "Explore corporate L&D opportunities", Description: "Your teaching skills are highly valued in corporate training, instructional design, and L&D roles.", Week: "Week 3"},
		{Title: "Volunteer or guest lecture", Description: "Offer to guest-teach a class or workshop — rebuilds confidence and generates a fresh reference.", Week: "Week 3-4"},
	},
	matching.General: {
		{Title: "Define your target role clearly", Description: "Research 5 job listings that excite you. Note common requirements and how your experience maps to them.", Week: "Week 1"},
		{Title: "Audit and update your skills", Description: "Identify your top transferable skills and 2-3 gaps to address. Focus on the ones that appear in your target roles.", Week: "Week 1"},
		{Title: "Learn {SKILL_GAP_1}", Description: "This is the most impactful skill gap for your target roles. Start with a beginner-friendly course.", Week: "Week 2"},
		{Title: "Build a portfolio or work sample", Description: "Create something tangible that demonstrates your ability — a project, analysis, or case study.", Week: "Week 2-3"},
		{Title: "Explore {SKILL_GAP_2}", Description: "This skill appears frequently in adjacent roles and could open new opportunities.", Week: "Week 3"},
		{Title: "Practice your career break narrative", Description: "Write and rehearse a 30-second story about your break that frames it as growth, not a gap.", Week: "Week 3-4"},
	},
	matching.Operations: {
		{Title: "Map your process improvement wins", Description: "Document 3-5 concrete examples where you improved efficiency, cut costs, or streamlined operations.", Week: "Week 1"},
		{Title: "Update your project management toolkit", Description: "Familiarize yourself with current tools — Jira, Asana, Monday.com. Get comfortable with agile workflows.", Week: "Week 1-2"},
		{Title: "Get certified in {SKILL_GAP_1}", Description: "Certifications carry weight in operations roles. Consider PMP, Lean Six Sigma, or Agile.", Week: "Week 2"},
		{Title: "Build an operations case study", Description: "Create a detailed write-up of a process improvement you led — metrics, methodology, and results.", Week: "Week 2-3"},
		{Title: "Learn data-driven operations", Description: "Operations is increasingly data-driven. Refresh your Excel, SQL, or analytics skills.", Week: "Week 3"},
		{Title: "Network in operations communities", Description: "Join PMI local chapter, Operations Management Society, or LinkedIn ops groups.", Week: "Week 3-4"},
	},
}

func milestonesFor(d matching.Domain) []milestoneTemplate {
	if m, ok := domainMilestones[d]; ok {
		return m
	}
	return domainMilestones[matching.General]
}
