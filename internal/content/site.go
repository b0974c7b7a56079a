package content

// Site is the portfolio rendered by the app. Everything the page shows
// lives here; swap this var out to reskin the site for someone else.
var Site = Page{
	Profile: Profile{
		Name:     "Iris Navarro",
		Tagline:  "I build fast, friendly software for the web and the terminal.",
		Roles:    []string{"Software Developer", "UI Designer", "Open Source Contributor", "Occasional Speaker"},
		Location: "Valencia, Spain",
		Email:    "iris@irisnavarro.dev",
	},
	About: About{
		Paragraphs: []string{
			"I am a software developer with nine years of experience building web platforms, internal tools and the occasional odd terminal app. I care about software that starts fast, reads well and respects the people using it.",
			"These days I split my time between backend work in Go, interface work in TypeScript and mentoring newer developers. When I am away from the keyboard I am probably photographing the coastline or fixing someone's bicycle.",
		},
		Facts: []Fact{
			{Label: "Location", Value: "Valencia, Spain"},
			{Label: "Experience", Value: "9+ years"},
			{Label: "Degree", Value: "BSc Computer Science"},
			{Label: "Email", Value: "iris@irisnavarro.dev"},
			{Label: "Freelance", Value: "Available"},
			{Label: "Remote", Value: "Worldwide"},
		},
	},
	Counters: []Counter{
		{Label: "Years writing software", Value: 9},
		{Label: "Projects shipped", Value: 48},
		{Label: "Open source contributions", Value: 120},
		{Label: "Conference talks", Value: 12},
	},
	Skills: []Skill{
		{Name: "Go", Level: 90},
		{Name: "TypeScript", Level: 85},
		{Name: "React", Level: 80},
		{Name: "PostgreSQL", Level: 75},
		{Name: "Docker", Level: 70},
		{Name: "Figma", Level: 65},
	},
	Education: []TimelineEntry{
		{
			Title: "BSc Computer Science",
			Org:   "Universitat Politecnica de Valencia",
			Span:  "2012 - 2016",
			Notes: []string{
				"Focused on distributed systems and human-computer interaction.",
				"Final project: a collaborative route planner for cyclists.",
			},
		},
		{
			Title: "Interaction Design Specialization",
			Org:   "Online certificate",
			Span:  "2018",
			Notes: []string{
				"Evenings-and-weekends course on research, prototyping and evaluation.",
			},
		},
	},
	Experience: []TimelineEntry{
		{
			Title: "Senior Software Developer",
			Org:   "Nimbus Labs",
			Span:  "2021 - Present",
			Notes: []string{
				"Lead developer on a Go service mesh handling 40k requests per second.",
				"Introduced tracing and structured logging across a dozen services.",
				"Mentor two junior developers and run the weekly architecture review.",
			},
		},
		{
			Title: "Full Stack Developer",
			Org:   "Helix Analytics",
			Span:  "2018 - 2021",
			Notes: []string{
				"Built customer-facing dashboards in React backed by Go APIs.",
				"Cut report generation time from minutes to seconds with worker pools.",
			},
		},
		{
			Title: "Junior Developer",
			Org:   "Mar Digital",
			Span:  "2016 - 2018",
			Notes: []string{
				"Shipped marketing sites and small e-commerce builds for local clients.",
			},
		},
	},
	Services: []Service{
		{
			Name: "Web Applications",
			Desc: "Product development from first sketch to production, with boring, reliable deploys.",
			Art:  "web",
		},
		{
			Name: "API Design",
			Desc: "Clean, versioned HTTP and gRPC APIs that other teams actually enjoy consuming.",
			Art:  "api",
		},
		{
			Name: "CLI Tooling",
			Desc: "Fast command line tools and terminal interfaces for developer workflows.",
			Art:  "cli",
		},
		{
			Name: "Cloud Migrations",
			Desc: "Moving legacy workloads into containers and managed platforms without downtime.",
			Art:  "cloud",
		},
		{
			Name: "UI Engineering",
			Desc: "Accessible, responsive interfaces with careful attention to motion and detail.",
			Art:  "ui",
		},
		{
			Name: "Technical Writing",
			Desc: "Documentation, tutorials and architecture notes people read past the first page.",
			Art:  "writing",
		},
	},
	Projects: []Project{
		{
			Name: "Tidewatch",
			Desc: "Live marine traffic dashboard for the port of Valencia.",
			Tags: []string{"Go", "React", "PostgreSQL"},
			URL:  "https://github.com/irisnavarro/tidewatch",
		},
		{
			Name: "Inkwell",
			Desc: "Markdown publishing pipeline with a one-command deploy.",
			Tags: []string{"Go", "CLI"},
			URL:  "https://github.com/irisnavarro/inkwell",
		},
		{
			Name: "Brisa",
			Desc: "A calm, keyboard-first feed reader for the browser.",
			Tags: []string{"TypeScript", "React"},
			URL:  "https://github.com/irisnavarro/brisa",
		},
		{
			Name: "Faro",
			Desc: "Self-hosted uptime monitor with pluggable alert channels.",
			Tags: []string{"Go", "Docker"},
			URL:  "https://github.com/irisnavarro/faro",
		},
		{
			Name: "Mosaic",
			Desc: "Generates print-ready photo walls from a folder of images.",
			Tags: []string{"Go"},
			URL:  "https://github.com/irisnavarro/mosaic",
		},
	},
	Volunteer: []TimelineEntry{
		{
			Title: "Code Mentor",
			Org:   "CoderDojo Valencia",
			Span:  "2019 - Present",
			Notes: []string{
				"Weekly sessions teaching teenagers their first programming language.",
			},
		},
		{
			Title: "Workshop Instructor",
			Org:   "Open Tech Valencia",
			Span:  "2017 - 2019",
			Notes: []string{
				"Ran introductory Git and web development workshops for career changers.",
			},
		},
	},
	Languages: []Language{
		{Name: "Spanish", Level: 100},
		{Name: "English", Level: 90},
		{Name: "Portuguese", Level: 70},
		{Name: "German", Level: 40},
	},
	Contact: Contact{
		Blurb: "Have a project in mind, a conference slot to fill, or just want to talk shop? My inbox is open.",
		Email: "iris@irisnavarro.dev",
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/irisnavarro"},
			{Label: "LinkedIn", URL: "https://linkedin.com/in/irisnavarro"},
			{Label: "Mastodon", URL: "https://hachyderm.io/@iris"},
		},
	},
}
