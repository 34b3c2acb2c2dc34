package outline

// Sections is the canonical slide order for a paper breakdown.
var Sections = []string{"TITLE", "PURPOSE", "METHOD", "RESULT", "CONCLUSION"}

// Outline maps section names to their text. Sections the model failed to
// produce are simply absent.
type Outline map[string]string

// Section returns the text for a section, or "" when the model skipped it.
func (o Outline) Section(name string) string {
	return o[name]
}
