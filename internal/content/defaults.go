package content

// Default returns the built-in copy used when no content file is configured.
func Default() Site {
	return Site{
		Name:        "Northwind Labs",
		Tagline:     "Software that ships",
		Description: "Northwind Labs designs, builds and runs production software for teams that cannot afford downtime.",
		Hero: Hero{
			Eyebrow:      "Product engineering studio",
			Headline:     "We build the software your business runs on",
			Subheadline:  "From first prototype to global scale, one senior team owns the whole stack.",
			PrimaryCTA:   Link{Label: "Start a project", Href: "#contact"},
			SecondaryCTA: Link{Label: "See our services", Href: "#services"},
		},
		TechStack: TechStack{
			Title: "Our stack",
			Intro: "Proven tools, chosen for longevity rather than hype.",
			Items: []Tech{
				{Name: "Go", Category: "Backend"},
				{Name: "PostgreSQL", Category: "Data"},
				{Name: "TypeScript", Category: "Frontend"},
				{Name: "React", Category: "Frontend"},
				{Name: "Kubernetes", Category: "Infrastructure"},
				{Name: "Terraform", Category: "Infrastructure"},
				{Name: "AWS", Category: "Cloud"},
				{Name: "Google Cloud", Category: "Cloud"},
			},
		},
		About: About{
			Title: "About us",
			Paragraphs: []string{
				"We are a small team of engineers, designers and operators who have built systems for banks, hospitals and logistics networks.",
				"Every engagement is led by the people who write the code. No hand-offs, no layers of account management.",
			},
			Stats: []Stat{
				{Value: "12+", Label: "Years in production"},
				{Value: "80+", Label: "Projects delivered"},
				{Value: "99.95%", Label: "Average uptime"},
			},
		},
		Industries: Industries{
			Title: "Industries",
			Intro: "Regulated, high-volume and always-on environments are where we do our best work.",
			Items: []Industry{
				{Name: "Financial services", Summary: "Payments, ledgers and reporting with audit trails built in."},
				{Name: "Healthcare", Summary: "Patient-facing apps and integrations that respect privacy rules."},
				{Name: "Logistics", Summary: "Tracking, routing and warehouse systems that keep goods moving."},
				{Name: "Retail", Summary: "Storefronts and inventory platforms that survive peak season."},
			},
		},
		Services: Services{
			Title: "Services",
			Intro: "Pick one, or let us carry a product end to end.",
			Items: []Service{
				{
					Name:       "Product development",
					Summary:    "Web and mobile products designed and built by one team.",
					Highlights: []string{"Discovery workshops", "Design systems", "Iterative delivery"},
				},
				{
					Name:       "Platform engineering",
					Summary:    "Cloud infrastructure, CI/CD and observability you can operate.",
					Highlights: []string{"Infrastructure as code", "Zero-downtime deploys", "Cost reviews"},
				},
				{
					Name:       "AI integration",
					Summary:    "Voice agents and assistants wired into your existing workflows.",
					Highlights: []string{"Conversational agents", "Retrieval pipelines", "Evaluation harnesses"},
				},
			},
		},
		FAQ: FAQ{
			Title: "Frequently asked questions",
			Questions: []Question{
				{Question: "How quickly can you start?", Answer: "Most engagements start within two weeks of the first call."},
				{Question: "Do you work with in-house teams?", Answer: "Yes. We often embed alongside existing engineers and leave them owning the result."},
				{Question: "Who owns the code?", Answer: "You do, from the first commit."},
				{Question: "What does an engagement cost?", Answer: "We quote fixed-scope phases after a short discovery, so there are no open-ended invoices."},
			},
		},
		Contact: Contact{
			Title:      "Get in touch",
			Intro:      "Tell us what you are building. We reply within one business day.",
			Email:      "hello@northwind.example",
			Location:   "Remote, worldwide",
			FormAction: "/contact",
		},
	}
}
