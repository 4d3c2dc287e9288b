package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	tools := Catalog()
	assert.Len(t, tools, 6)
	assert.Equal(t, Tool{
		Slug:           "slug-generator",
		TitleKey:       "tools.slugGenerator.title",
		DescriptionKey: "tools.slugGenerator.description",
		Endpoint:       "/api/tools/slug-generator",
		Method:         "POST",
	}, tools[0])

	tools[0].Slug = "changed"
	assert.Equal(t, "slug-generator", Catalog()[0].Slug)
}
