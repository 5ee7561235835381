package models

// ContentDocument is the single structured JSON document driving all
// editable marketing copy. The admin dashboard always writes the whole
// document; the binding tags reject partial documents at the API boundary
// before anything reaches storage.
type ContentDocument struct {
	Pricing PricingSection `json:"pricing" binding:"required"`
	FAQ     []FAQItem      `json:"faq" binding:"required,min=1,dive"`
	Links   Links          `json:"links" binding:"required"`
	Hero    Hero           `json:"hero" binding:"required"`
	CTA     CTASection     `json:"cta" binding:"required"`
}

type PricingSection struct {
	Title     string        `json:"title" binding:"required"`
	Subtitle  string        `json:"subtitle"`
	Plans     []PricingPlan `json:"plans" binding:"required,min=1,dive"`
	FreeTrial FreeTrial     `json:"freeTrial"`
}

type PricingPlan struct {
	Name          string `json:"name" binding:"required"`
	Price         string `json:"price" binding:"required"`
	Period        string `json:"period"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	Description   string `json:"description"`
	CTA           string `json:"cta"`
	Popular       bool   `json:"popular"`
	Badge         string `json:"badge,omitempty"`
	Savings       string `json:"savings,omitempty"`
}

type FreeTrial struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

type FAQItem struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type LinkItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Links struct {
	Primary PrimaryLinks `json:"primary"`
	Footer  FooterLinks  `json:"footer"`
}

type PrimaryLinks struct {
	Contact string `json:"contact"`
	Academy string `json:"academy"`
}

type FooterLinks struct {
	Company []LinkItem `json:"company"`
	Legal   []LinkItem `json:"legal"`
}

type Hero struct {
	Title    string    `json:"title" binding:"required"`
	Subtitle string    `json:"subtitle"`
	Stats    HeroStats `json:"stats"`
}

type HeroStats struct {
	WinRate    string `json:"winRate"`
	Members    string `json:"members"`
	VIP        string `json:"vip"`
	Support    string `json:"support"`
	Experience string `json:"experience"`
}

type CTASection struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
}
