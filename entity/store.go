package entity

// StoreInfo is optional static store metadata appended to the system
// prompt. It is loaded once from the config file.
type StoreInfo struct {
	Brand    string `yaml:"brand" json:"brand"`
	About    string `yaml:"about" json:"about"`
	Mission  string `yaml:"mission" json:"mission"`
	Shipping string `yaml:"shipping" json:"shipping"`
	Payment  string `yaml:"payment" json:"payment"`
	Returns  string `yaml:"returns" json:"returns"`
	Contact  string `yaml:"contact" json:"contact"`
}

type FAQEntry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}
