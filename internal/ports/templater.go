package ports

// Templater renders payload templates. templateName only appears in error messages.
type Templater interface {
	Render(templateText string, templateName string, values map[string]interface{}) (string, error)
}
