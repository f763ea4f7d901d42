package competitor

// Competitor is a tracked brand with the keyword surface forms that count
// as a mention when they appear in a provider answer.
type Competitor struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}
