package tools

// Tool describes one endpoint in the public catalog. Title and description
// are translation keys resolved by the frontend.
type Tool struct {
	Slug           string `json:"slug"`
	TitleKey       string `json:"titleKey"`
	DescriptionKey string `json:"descriptionKey"`
	Endpoint       string `json:"endpoint"`
	Method         string `json:"method"`
}

var catalog = []Tool{
	newTool("slug-generator", "slugGenerator"),
	newTool("word-counter", "wordCounter"),
	newTool("password-generator", "passwordGenerator"),
	newTool("base64-converter", "base64Converter"),
	newTool("cnp-generator", "cnpGenerator"),
	newTool("cnp-validator", "cnpValidator"),
}

func newTool(slug, key string) Tool {
	return Tool{
		Slug:           slug,
		TitleKey:       "tools." + key + ".title",
		DescriptionKey: "tools." + key + ".description",
		Endpoint:       "/api/tools/" + slug,
		Method:         "POST",
	}
}

// Catalog returns a copy of the tool list in display order.
func Catalog() []Tool {
	out := make([]Tool, len(catalog))
	copy(out, catalog)
	return out
}
