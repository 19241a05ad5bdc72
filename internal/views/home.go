package views

import (
	"github.com/a-h/templ"
	"github.com/samber/lo"

	"landing/internal/content"
)

type homeSection struct {
	Name   string
	Render func(content.Site) templ.Component
}

// homeSections is the landing page, top to bottom.
var homeSections = []homeSection{
	{Name: "hero", Render: func(s content.Site) templ.Component { return HeroSection(s.Hero) }},
	{Name: "tech-stack", Render: func(s content.Site) templ.Component { return TechStackSection(s.TechStack) }},
	{Name: "about", Render: func(s content.Site) templ.Component { return AboutSection(s.About) }},
	{Name: "industries", Render: func(s content.Site) templ.Component { return IndustriesSection(s.Industries) }},
	{Name: "services", Render: func(s content.Site) templ.Component { return ServicesSection(s.Services) }},
	{Name: "faq", Render: func(s content.Site) templ.Component { return FAQSection(s.FAQ) }},
	{Name: "contact", Render: func(s content.Site) templ.Component { return ContactSection(s.Contact) }},
}

// SectionOrder lists the section ids in the order Home renders them.
var SectionOrder = lo.Map(homeSections, func(s homeSection, _ int) string { return s.Name })

func HomePage(site content.Site, canonical string) templ.Component {
	return Page(site, PageMeta{
		Title:     lo.Ternary(site.Tagline == "", site.Name, site.Name+" | "+site.Tagline),
		Canonical: canonical,
	}, nil, Home(site))
}
