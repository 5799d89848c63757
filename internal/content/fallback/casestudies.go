package fallback

import "github.com/adichatupes-source/Portfolio/internal/content"

// CaseStudies returns a copy of the bundled case studies. The nested
// sequences are copied as well so callers cannot mutate the bundled data.
func CaseStudies() []content.CaseStudy {
	out := make([]content.CaseStudy, len(caseStudies))
	copy(out, caseStudies)
	for i := range out {
		out[i].Challenge = append([]string(nil), out[i].Challenge...)
		out[i].Actions = append([]string(nil), out[i].Actions...)
		out[i].Outcomes = append([]string(nil), out[i].Outcomes...)
	}
	return out
}

var caseStudies = []content.CaseStudy{
	{
		ID:       "fintech",
		Slug:     "fintech-gtm-growth-scale",
		Icon:     "Building2",
		Industry: "Fintech / Payments",
		Company:  "WCT Pay",
		Title:    "Fintech GTM & Growth Scale",
		Context:  "Growth-stage fintech payments organization needing to establish market credibility and build a scalable demand engine.",
		Challenge: []string{
			"Low market credibility in a trust-sensitive fintech category",
			"High acquisition costs with inconsistent lead quality",
			"Fragmented growth efforts across channels",
			"Limited visibility into funnel performance and ROI",
		},
		Approach: "Treated this as a GTM and growth infrastructure problem, not a campaign problem. Focus on establishing trust before scaling spend, designing full-funnel architecture, and creating visibility into unit economics.",
		Actions: []string{
			"Defined clear product positioning aligned to target customer segments",
			"Designed acquisition strategy across paid media, SEO, partnerships, and affiliates",
			"Reworked landing pages, lead flows, and onboarding journeys",
			"Built leadership dashboards covering CAC, CPL, ROAS, and funnel conversion",
			"Led cross-functional teams across performance, content, creative, and growth",
		},
		Outcomes: []string{
			"Improved acquisition efficiency and lead quality",
			"Created a scalable, repeatable GTM and demand engine",
			"Established trust and credibility in competitive fintech market",
			"Marketing moved from \"activity\" to a measurable revenue contributor",
		},
		Proves:      "Ability to lead GTM and growth in regulated, trust-led categories with strong understanding of growth economics and funnel architecture.",
		Status:      "Published",
		StatusColor: "green",
	},
	{
		ID:       "edtech",
		Slug:     "edtech-enrollment-growth",
		Icon:     "GraduationCap",
		Industry: "EdTech / Higher Education",
		Company:  "ISB & UPES",
		Title:    "EdTech Enrollment Growth",
		Context:  "Premium education programs at ISB and UPES requiring large-scale student acquisition while maintaining quality and cost efficiency.",
		Challenge: []string{
			"Intense competition in executive education and higher education space",
			"Pressure to reduce cost per acquisition while scaling volume",
			"Complex, long sales cycles with multiple stakeholder touchpoints",
			"Need for clear attribution across fragmented student journeys",
		},
		Approach: "Built systematic acquisition engines focused on quality over volume, with clear attribution models and stage-wise funnel optimization.",
		Actions: []string{
			"Redesigned paid media strategy with focus on intent-based targeting",
			"Implemented multi-touch attribution to understand true acquisition costs",
			"Created nurturing sequences aligned to student decision timelines",
			"Optimized landing pages and application flows for conversion",
			"Established real-time dashboards for performance visibility",
		},
		Outcomes: []string{
			"Scaled lead volume from 20,000 to 100,000+ quality leads",
			"Achieved significant CAC reduction through funnel optimization",
			"2x growth in qualified enrollments year-over-year",
			"Established predictable enrollment forecasting models",
		},
		Proves:      "Experience scaling high-consideration purchases with long sales cycles, and ability to build attribution clarity in complex B2C journeys.",
		Status:      "Published",
		StatusColor: "green",
	},
	{
		ID:       "market-entry",
		Slug:     "market-entry-break-even",
		Icon:     "Globe",
		Industry: "Global Education Services",
		Company:  "AECC Global",
		Title:    "Market Entry & Break-Even",
		Context:  "AECC Global's India market launch from scratch — building the entire marketing function and regional presence.",
		Challenge: []string{
			"Entering a new market with no existing brand presence",
			"Need to build marketing function from zero",
			"Requirement to achieve break-even within aggressive timeline",
			"Regional expansion across diverse markets (Punjab, Gujarat, Telangana)",
		},
		Approach: "Designed GTM strategy focused on rapid market penetration while building sustainable growth infrastructure and high-performing teams.",
		Actions: []string{
			"Developed comprehensive GTM strategy for India market entry",
			"Built marketing team and established operational processes",
			"Rolled out regional expansion with localized strategies",
			"Created performance frameworks with clear accountability",
			"Established vendor and agency partnerships for scale",
		},
		Outcomes: []string{
			"Achieved break-even within 12 months of market entry",
			"Built high-performing marketing teams across regions",
			"Established sustainable demand engine for continued growth",
			"Created playbook for future regional expansions",
		},
		Proves:      "Capability to build from scratch, achieve ambitious timelines, and create sustainable growth systems in new markets.",
		Status:      "Published",
		StatusColor: "green",
	},
}
