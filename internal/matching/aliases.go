package matching

// skillAliases maps a lower-case skill to related terms. It is consulted in
// both directions during matching but only authored in one; entries are kept
// as written rather than mirrored.
var skillAliases = map[string][]string{
	"ui design":          {"ui", "interface design", "visual design", "ui/ux", "figma"},
	"ux design":          {"ux", "user experience", "ui/ux", "interaction design"},
	"figma":              {"ui design", "sketch", "design tools", "prototyping"},
	"react":              {"reactjs", "react.js", "frontend", "front-end"},
	"javascript":         {"js", "typescript", "ts", "node", "frontend"},
	"node.js":            {"node", "nodejs", "backend", "express", "server-side"},
	"python":             {"py", "django", "flask", "data science", "machine learning"},
	"sql":                {"database", "postgresql", "mysql", "data analysis", "queries"},
	"css":                {"styling", "tailwind", "sass", "scss", "design systems"},
	"html":               {"web development", "frontend", "markup"},
	"design systems":     {"component library", "ui kit", "design tokens"},
	"prototyping":        {"wireframing", "mockups", "figma", "sketch"},
	"user research":      {"usability testing", "ux research", "interviews"},
	"analytics":          {"data analysis", "google analytics", "metrics"},
	"project management": {"agile", "scrum", "jira", "planning"},
	"copywriting":        {"writing", "content writing", "copywriting & editing"},
	"content marketing":  {"content strategy", "blogging", "seo"},
	"team leadership":    {"management", "leadership", "people management"},
	"visual design":      {"graphic design", "illustration", "ui design"},
	"typography":         {"fonts", "type design", "visual design"},
	"color theory":       {"visual design", "branding", "ui design"},
	"responsive design":  {"mobile design", "css", "web design"},
}

// Aliases returns the alias list for a lower-case skill name.
func Aliases(skill string) []string {
	return skillAliases[skill]
}
