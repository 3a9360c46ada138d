package content

// SiteContent is the editable marketing copy. It is always replaced as a whole.
type SiteContent struct {
	Hero     Hero     `json:"hero"`
	About    About    `json:"about"`
	Services Services `json:"services"`
	Contact  Contact  `json:"contact"`
	Footer   Footer   `json:"footer"`
	Legal    Legal    `json:"legal"`
}

type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTAText         string `json:"ctaText"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

type About struct {
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Highlights []string `json:"highlights,omitempty"`
	Image      string   `json:"image,omitempty"`
}

type Services struct {
	Title string `json:"title"`
	Intro string `json:"intro"`
}

type Contact struct {
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
}

type Footer struct {
	Tagline     string            `json:"tagline"`
	Copyright   string            `json:"copyright"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

type Legal struct {
	PrivacyPolicy string `json:"privacyPolicy"`
	Terms         string `json:"terms"`
}

func Default(siteName string) SiteContent {
	return SiteContent{
		Hero: Hero{
			Title:    siteName,
			Subtitle: "Event rentals and decor for every occasion",
			CTAText:  "Book now",
		},
		About: About{
			Title: "About us",
		},
		Services: Services{
			Title: "Our packages",
		},
		Footer: Footer{
			Copyright: siteName,
		},
	}
}
