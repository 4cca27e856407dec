package summary_test

import (
	"strings"
	"testing"

	"nixup/pkg/shellenv"
	"nixup/pkg/summary"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown_ListsAliasCategories(t *testing.T) {
	md := summary.Markdown()

	for _, heading := range []string{"## Shell", "## Git", "## Containers", "## Nix"} {
		assert.Contains(t, md, heading)
	}
	assert.Contains(t, md, "nix develop")
	assert.Contains(t, md, "home-manager switch")
}

func TestMarkdown_IncludesEveryAlias(t *testing.T) {
	md := summary.Markdown()

	for _, cat := range shellenv.Default().Categories {
		for _, a := range cat.Aliases {
			assert.Contains(t, md, "`"+a.Name+"`")
		}
	}
}

func TestRender_WritesReport(t *testing.T) {
	var buf strings.Builder
	summary.Render(&buf)

	assert.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "nix develop")
}
