package recommend

import "github.com/jonathan/career-comeback/internal/matching"

// workTypes rotates per template. Each tier starts at a different offset.
var workTypes = []string{"Remote", "Hybrid", "Onsite", "Remote"}

var tierWorkTypeOffset = map[matching.Tier]int{
	matching.TierDirect:      0,
	matching.TierAdjacent:    1,
	matching.TierReplacement: 2,
}

var salaryRanges = map[matching.Domain]map[matching.Tier][]string{
	matching.Design: {
		matching.TierDirect:      {"$90k–$120k", "$100k–$135k", "$110k–$145k", "$95k–$125k"},
		matching.TierAdjacent:    {"$80k–$110k", "$85k–$115k", "$90k–$120k", "$85k–$110k"},
		matching.TierReplacement: {"$65k–$95k", "$60k–$90k", "$75k–$105k"},
	},
	matching.Engineering: {
		matching.TierDirect:      {"$120k–$160k", "$110k–$145k", "$130k–$175k", "$100k–$140k"},
		matching.TierAdjacent:    {"$95k–$130k", "$100k–$135k", "$110k–$140k", "$105k–$140k"},
		matching.TierReplacement: {"$130k–$180k", "$120k–$160k", "$90k–$140k"},
	},
	matching.Data: {
		matching.TierDirect:      {"$95k–$130k", "$85k–$115k", "$105k–$140k", "$80k–$110k"},
		matching.TierAdjacent:    {"$90k–$120k", "$95k–$135k", "$100k–$130k", "$85k–$115k"},
		matching.TierReplacement: {"$120k–$170k", "$100k–$140k", "$80k–$110k"},
	},
	matching.Marketing: {
		matching.TierDirect:      {"$85k–$115k", "$80k–$105k", "$95k–$125k", "$75k–$100k"},
		matching.TierAdjacent:    {"$75k–$105k", "$70k–$90k", "$80k–$110k", "$85k–$115k"},
		matching.TierReplacement: {"$70k–$100k", "$55k–$85k", "$65k–$110k"},
	},
	matching.Healthcare: {
		matching.TierDirect:      {"$75k–$110k", "$80k–$115k", "$85k–$120k", "$70k–$100k"},
		matching.TierAdjacent:    {"$90k–$125k", "$80k–$110k", "$75k–$105k", "$70k–$100k"},
		matching.TierReplacement: {"$60k–$90k", "$75k–$110k", "$65k–$95k"},
	},
	matching.Finance: {
		matching.TierDirect:      {"$90k–$130k", "$85k–$120k", "$100k–$140k", "$95k–$135k"},
		matching.TierAdjacent:    {"$80k–$115k", "$85k–$120k", "$90k–$125k", "$80k–$110k"},
		matching.TierReplacement: {"$70k–$100k", "$80k–$115k", "$65k–$95k"},
	},
	matching.Education: {
		matching.TierDirect:      {"$60k–$90k", "$55k–$85k", "$65k–$95k", "$70k–$100k"},
		matching.TierAdjacent:    {"$80k–$115k", "$75k–$105k", "$70k–$95k", "$65k–$90k"},
		matching.TierReplacement: {"$50k–$85k", "$60k–$95k", "$55k–$80k"},
	},
	matching.General: {
		matching.TierDirect:      {"$75k–$110k", "$80k–$115k", "$90k–$125k"},
		matching.TierAdjacent:    {"$70k–$100k", "$75k–$105k", "$80k–$110k"},
		matching.TierReplacement: {"$60k–$95k", "$65k–$100k", "$70k–$105k"},
	},
}

// salaryFor returns the salary range for the i-th template of a tier,
// cycling through the domain's list and falling back to General.
func salaryFor(d matching.Domain, t matching.Tier, i int) string {
	ranges := salaryRanges[d][t]
	if len(ranges) == 0 {
		ranges = salaryRanges[matching.General][t]
	}
	if len(ranges) == 0 {
		return ""
	}
	return ranges[i%len(ranges)]
}
