package persona

// Persona describes a hypothetical asker profile. Active personas are
// injected into the provider prompt context so answers are tailored to that
// audience.
type Persona struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Active bool   `json:"active"`
}

// MaxPersonas bounds the store; the add form refuses a sixth entry.
const MaxPersonas = 5
