package page

// builtinPages returns the demo site content matching the default menu. Each
// page name lines up with a menu item's page identifier so route detection
// marks the right header item.
func builtinPages() []Page {
	return []Page{
		{
			Name: "home",
			Path: "/",
			Markdown: `# Rovelle

A small digital agency, rendered in your terminal.

We build fast sites, rank them, and keep the pipeline honest. Use the
menu above to look around, or press ` + "`?`" + ` for keys.

## What we do

- **Search** — technical SEO and content strategy
- **Design** — sites that load before the coffee does
- **Media** — paid campaigns with public dashboards

Scroll this page to watch the progress strip under the header fill up.

## Why a terminal

Because every pixel of this site is also a test fixture. The navigation
above is a real state machine: hover a menu item with a ▾ marker, move the
pointer away, and count to three hundred milliseconds.

---

_Rovelle — est. 2019. No cookies, only cells._
`,
		},
		{
			Name: "services",
			Path: "/services.html",
			Markdown: `# Services

Everything we sell, on one page.

| Service | Good for |
|---------|----------|
| SEO | Being found |
| Web Design | Being liked |
| Paid Media | Being found faster |
| Content Marketing | Being remembered |

Each service has its own page under the **Services ▾** dropdown.
`,
		},
		{
			Name: "seo",
			Path: "/seo.html",
			Markdown: `# SEO

Technical audits, information architecture, and the slow compounding work
of making pages answer questions.

## What an engagement looks like

1. Crawl and audit
2. Fix the boring things first
3. Content roadmap
4. Quarterly review

We do not promise rankings. We promise the checklist gets shorter.
`,
		},
		{
			Name: "web-design",
			Path: "/web-design.html",
			Markdown: `# Web Design

Design systems over hero images. We ship static-first sites with
measurable budgets: every page under 100KB before images.

> A website is finished when there is nothing left to delete.
`,
		},
		{
			Name: "paid-media",
			Path: "/paid-media.html",
			Markdown: `# Paid Media

Search and social campaigns with shared dashboards. You see the same
numbers we do, at the same time we do.

## Channels

- Search ads
- Social retargeting
- Sponsored newsletters
`,
		},
		{
			Name: "content-marketing",
			Path: "/content-marketing.html",
			Markdown: `# Content Marketing

Editorial calendars, writing, and distribution. One good article a month
beats ten thin ones a week.
`,
		},
		{
			Name: "pricing",
			Path: "/pricing.html",
			Markdown: `# Pricing

Two ways to work with us: fixed **Packages** for well-defined scopes, and
**Custom Quotes** for everything else. Both live under the Pricing ▾ menu.
`,
		},
		{
			Name: "packages",
			Path: "/packages.html",
			Markdown: `# Packages

| Package | Scope | Monthly |
|---------|-------|---------|
| Starter | Audit + fixes | $1,500 |
| Growth | Audit + content | $3,500 |
| Full | Everything | $6,000 |

Packages renew monthly and cancel any time.
`,
		},
		{
			Name: "quotes",
			Path: "/quotes.html",
			Markdown: `# Custom Quotes

Scopes that do not fit a package get a written quote within three business
days. Head to the **Contact** page and tell us what you are building.
`,
		},
		{
			Name: "about",
			Path: "/about.html",
			Markdown: `# About

Rovelle is four people and a build server. We have been shipping sites
since 2019 and terminal demos since this one.

## The team

- A designer who measures in characters
- Two engineers who argue about margins
- One strategist who wins those arguments
`,
		},
	}
}
