// Package fallback holds the bundled static datasets used when live content
// is unavailable. The data mirrors the site's hand-authored content; the
// accessors return copies so callers cannot mutate the bundled records.
package fallback

import "github.com/adichatupes-source/Portfolio/internal/content"

// BlogPosts returns a copy of the bundled blog posts.
func BlogPosts() []content.BlogPost {
	out := make([]content.BlogPost, len(blogPosts))
	copy(out, blogPosts)
	return out
}

var blogPosts = []content.BlogPost{
	{
		ID:      "1",
		Slug:    "enterprise-shift-to-otc-settlement",
		Title:   "The Enterprise Shift to OTC Settlement",
		Excerpt: "How enterprises are moving towards faster, safer global finance through over-the-counter settlement mechanisms and what it means for the future of B2B payments.",
		Content: `
# The Enterprise Shift to OTC Settlement

The global financial landscape is undergoing a significant transformation. Enterprises are increasingly moving towards Over-the-Counter (OTC) settlement mechanisms, seeking faster, safer, and more efficient ways to conduct international transactions.

## Why Enterprises Are Making the Shift

Traditional banking systems, while reliable, often come with significant friction:
- **Settlement delays**: Cross-border transactions can take 3-5 business days
- **High fees**: Multiple intermediaries add cumulative costs
- **Limited transparency**: Tracking payments across systems is challenging
- **Currency exposure**: Extended settlement times increase FX risk

## The OTC Advantage

OTC settlement offers several compelling benefits for enterprises:

### Speed
Direct counterparty transactions eliminate intermediary delays, enabling same-day or even real-time settlement.

### Cost Efficiency
Fewer intermediaries mean lower transaction costs and better exchange rates.

### Transparency
Direct relationships provide clearer visibility into transaction status and fees.

### Flexibility
Custom settlement terms can be negotiated based on business needs.

## Implementation Considerations

Enterprises considering OTC settlement should evaluate:
1. Counterparty risk management frameworks
2. Regulatory compliance across jurisdictions
3. Technology infrastructure requirements
4. Integration with existing treasury systems

## Looking Ahead

As technology continues to evolve and regulatory frameworks adapt, we expect OTC settlement to become an increasingly mainstream option for enterprise treasury operations.
    `,
		FeaturedImage: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=450&fit=crop",
		Category:      "Fintech",
		Author:        content.Author{Name: "Aditya Chatterjee"},
		PublishedDate: "2024-01-15",
		ReadingTime:   "5 min read",
		Status:        "Publish",
		StatusColor:   "green",
	},
	{
		ID:      "2",
		Slug:    "building-predictable-demand-engines",
		Title:   "Building Predictable Demand Engines",
		Excerpt: "A systematic approach to creating demand generation systems that deliver consistent, scalable pipeline growth for B2B organizations.",
		Content: `
# Building Predictable Demand Engines

In my experience leading growth at B2B organizations, the difference between struggling and thriving often comes down to one thing: predictability. Can you reliably forecast next quarter's pipeline? Do you know which channels will deliver?

## The Problem with "Campaign Thinking"

Many organizations approach demand generation as a series of campaigns:
- Launch a webinar
- Run a content promotion
- Execute an ABM play

While campaigns have their place, they create unpredictable, lumpy results.

## The Engine Approach

A demand engine is different. It's a systematic infrastructure that:

### 1. Operates Continuously
Not start-stop campaigns, but always-on systems that compound over time.

### 2. Has Clear Attribution
Every touchpoint is tracked, measured, and optimized based on revenue impact.

### 3. Scales Predictably
Doubling investment should yield predictable output increases.

### 4. Balances Channels
A healthy mix of paid, organic, and relationship-driven sources reduces risk.

## Building Blocks of a Demand Engine

**Top of Funnel**: Content, SEO, paid media, events
**Middle of Funnel**: Nurture sequences, retargeting, sales enablement
**Bottom of Funnel**: High-intent campaigns, SDR outreach, conversion optimization

## Measurement Framework

Key metrics to track:
- **Volume**: MQLs, SQLs, Opportunities
- **Velocity**: Time through each stage
- **Value**: Average deal size, win rates
- **Efficiency**: CAC, CAC:LTV ratio

## Getting Started

1. Audit your current state
2. Identify your highest-leverage channel
3. Build measurement infrastructure
4. Optimize before scaling
5. Add channels systematically

The goal isn't to do everything—it's to do the right things consistently well.
    `,
		FeaturedImage: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=450&fit=crop",
		Category:      "Growth Strategy",
		Author:        content.Author{Name: "Aditya Chatterjee"},
		PublishedDate: "2024-01-08",
		ReadingTime:   "7 min read",
		Status:        "Publish",
		StatusColor:   "green",
	},
	{
		ID:      "3",
		Slug:    "gtm-thinking-before-execution",
		Title:   "Why GTM Thinking Matters Before Execution",
		Excerpt: "The critical importance of strategic go-to-market planning before diving into tactical execution, and how it separates successful launches from failures.",
		Content: `
# Why GTM Thinking Matters Before Execution

I've seen it countless times: teams rush to execute without proper GTM thinking. They launch campaigns, build funnels, hire SDRs—all before answering fundamental questions.

## The Execution Trap

Execution is seductive. It feels like progress:
- "We launched the campaign!"
- "We're running ads!"
- "We hired the team!"

But activity without strategy is just expensive noise.

## What GTM Thinking Actually Means

True GTM thinking answers these questions BEFORE execution:

### Who are we really selling to?
Not demographics—actual buying personas with real problems, budgets, and decision-making processes.

### Why would they buy from us?
What's our genuine differentiation? Not features—real value that customers care about.

### How will they find us?
Which channels align with how our buyers actually discover solutions?

### What's the buying journey?
How long? How many stakeholders? What triggers action?

## The Framework I Use

**Market Definition**: TAM, SAM, SOM with realistic assumptions
**Segmentation**: Primary vs. secondary targets, with clear prioritization
**Positioning**: Differentiated value proposition by segment
**Channel Strategy**: Right channels for right segments
**Metrics Architecture**: What we'll measure and why

## Signs You've Skipped GTM Thinking

- Your ICP is "everyone who might buy"
- You're on every channel but effective on none
- Sales and marketing have different target definitions
- You can't explain why customers choose you over alternatives
- Your CAC keeps increasing without clear diagnosis

## Getting It Right

1. Invest time upfront (2-4 weeks of focused work)
2. Talk to customers and lost deals
3. Analyze your wins—why did they actually buy?
4. Make hard choices about who you're NOT targeting
5. Document and align the organization

The companies that win don't outspend competitors—they out-think them.
    `,
		FeaturedImage: "https://images.unsplash.com/photo-1553028826-f4804a6dba3b?w=800&h=450&fit=crop",
		Category:      "Leadership",
		Author:        content.Author{Name: "Aditya Chatterjee"},
		PublishedDate: "2024-01-02",
		ReadingTime:   "6 min read",
		Status:        "Publish",
		StatusColor:   "green",
	},
	{
		ID:      "4",
		Slug:    "reducing-cac-without-sacrificing-quality",
		Title:   "Reducing CAC Without Sacrificing Lead Quality",
		Excerpt: "Practical strategies for optimizing customer acquisition costs while maintaining or improving the quality of leads entering your funnel.",
		Content: `
# Reducing CAC Without Sacrificing Lead Quality

One of the most common challenges I encounter: leadership wants lower CAC, but not at the expense of lead quality. Here's how to thread that needle.

## The False Choice

Many teams believe CAC and quality are inversely related. Lower CAC = worse leads. This is often true when you optimize poorly, but it doesn't have to be.

## Root Causes of High CAC

Before optimizing, diagnose:
1. **Poor targeting**: Reaching wrong people
2. **Weak conversion**: Good traffic, bad funnel
3. **Channel inefficiency**: Right people, wrong channel
4. **Timing mismatch**: Right people, wrong moment

## Strategies That Work

### Improve Targeting Precision
- Use intent data to find in-market buyers
- Build lookalike audiences from best customers
- Exclude low-fit segments proactively

### Optimize the Funnel
- Reduce friction at each step
- Improve messaging-to-audience fit
- Test landing page variations systematically

### Shift Channel Mix
- Move budget to higher-intent channels
- Invest in organic for long-term efficiency
- Use retargeting strategically

### Improve Lead Scoring
- Score on fit AND engagement
- Disqualify early and often
- Align sales on quality definitions

## Measurement Discipline

Track cohort-level metrics:
- CAC by channel and campaign
- Lead-to-opportunity conversion by source
- CAC:LTV ratio over time
- Time to revenue by acquisition source

## The 90-Day Play

Month 1: Diagnose current state, identify top 3 issues
Month 2: Implement highest-impact changes
Month 3: Measure, learn, iterate

Small, systematic improvements compound into significant CAC reduction without quality trade-offs.
    `,
		FeaturedImage: "https://images.unsplash.com/photo-1543286386-713bdd548da4?w=800&h=450&fit=crop",
		Category:      "Growth Strategy",
		Author:        content.Author{Name: "Aditya Chatterjee"},
		PublishedDate: "2023-12-18",
		ReadingTime:   "5 min read",
		Status:        "Publish",
		StatusColor:   "green",
	},
	{
		ID:      "5",
		Slug:    "building-growth-teams-that-perform",
		Title:   "Building Growth Teams That Actually Perform",
		Excerpt: "Lessons from building and leading high-performing growth and marketing teams across different industries and company stages.",
		Content: `
# Building Growth Teams That Actually Perform

After building teams at multiple organizations, I've learned that team structure and culture matter more than individual talent.

## Common Team Failures

Teams fail for predictable reasons:
- **Unclear ownership**: Everyone's responsible means no one is
- **Skill gaps**: Missing critical capabilities
- **Misalignment**: Different goals across functions
- **Process absence**: No systematic ways of working

## The Team Architecture That Works

### Core Roles
1. **Demand Generation**: Owns pipeline creation
2. **Content & Brand**: Owns messaging and assets
3. **Growth/Performance**: Owns optimization and analytics
4. **Marketing Ops**: Owns systems and data

### Supporting Functions
- Design (internal or agency)
- SDR/BDR (aligned but often under sales)
- Events (if relevant to your GTM)

## Hiring Principles

**Hire for learning velocity**: Skills can be taught; curiosity can't
**Prioritize ownership mindset**: People who take responsibility
**Balance specialists and generalists**: You need both
**Look for collaborative instincts**: Growth is cross-functional

## Building Culture

### Metrics Discipline
- Clear KPIs at team and individual level
- Regular reviews (weekly for activity, monthly for outcomes)
- Transparent dashboards everyone can access

### Experimentation Mindset
- Encourage testing and learning
- Celebrate learnings, not just wins
- Create psychological safety to try new things

### Cross-Functional Collaboration
- Regular sync with sales leadership
- Shared goals with revenue teams
- Customer feedback loops

## Leadership Approach

As a growth leader, your job is to:
1. Set clear direction and priorities
2. Remove obstacles for your team
3. Build capabilities systematically
4. Create accountability without micromanagement
5. Shield the team from organizational noise

Great teams are built, not hired. Invest in the system.
    `,
		FeaturedImage: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800&h=450&fit=crop",
		Category:      "Leadership",
		Author:        content.Author{Name: "Aditya Chatterjee"},
		PublishedDate: "2023-12-10",
		ReadingTime:   "6 min read",
		Status:        "Publish",
		StatusColor:   "green",
	},
	{
		ID:      "6",
		Slug:    "attribution-models-that-actually-work",
		Title:   "Attribution Models That Actually Work",
		Excerpt: "Moving beyond last-touch attribution to build measurement frameworks that reflect real customer journeys and drive better decisions.",
		Content: `
# Attribution Models That Actually Work

Attribution is one of the most debated topics in marketing. Here's my practical take on building models that drive better decisions.

## Why Attribution Matters

Without proper attribution, you:
- Over-invest in bottom-funnel at the expense of top
- Miss the impact of brand and content investments
- Make budget decisions based on incomplete data
- Create conflict between channels and teams

## The Attribution Landscape

### Last-Touch
Gives all credit to the final interaction before conversion.
**Pros**: Simple, clear
**Cons**: Ignores the journey, over-credits low-funnel

### First-Touch
Credits the initial interaction.
**Pros**: Values awareness creation
**Cons**: Ignores nurture and conversion efforts

### Linear
Distributes credit equally across all touchpoints.
**Pros**: Acknowledges full journey
**Cons**: Treats all touches as equal (they're not)

### Time-Decay
Gives more credit to recent interactions.
**Pros**: Reflects recency value
**Cons**: May undervalue awareness

### Position-Based
Heavy credit to first and last, some to middle.
**Pros**: Balances acquisition and conversion
**Cons**: Still somewhat arbitrary

## My Recommended Approach

### 1. Accept Imperfection
No model perfectly reflects reality. Choose one that's directionally useful.

### 2. Use Multiple Views
Report on 2-3 models to see different perspectives.

### 3. Invest in Data Quality
Attribution is only as good as your tracking.

### 4. Combine with Incrementality
Use experiments to validate attribution insights.

### 5. Focus on Decisions
Ask: "What decision will this help me make?"

## Practical Implementation

**Start simple**: First + last touch is better than nothing
**Build infrastructure**: Ensure consistent UTMs and tracking
**Create dashboards**: Make insights accessible
**Review regularly**: Monthly attribution reviews with leadership
**Evolve over time**: Improve as your data matures

Attribution isn't about perfect measurement—it's about better decision-making.
    `,
		FeaturedImage: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=450&fit=crop",
		Category:      "Growth Strategy",
		Author:        content.Author{Name: "Aditya Chatterjee"},
		PublishedDate: "2023-12-01",
		ReadingTime:   "7 min read",
		Status:        "Publish",
		StatusColor:   "green",
	},
}
