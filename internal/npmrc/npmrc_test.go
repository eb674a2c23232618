package npmrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_KeyValuePairs(t *testing.T) {
	content := `registry=https://registry.example.com/
# a comment
; another comment
@myorg:registry=https://npm.myorg.com
//npm.myorg.com/:_authToken=abc123

malformed line without equals
`

	pairs := Parse(content)
	assert.Equal(t, "https://registry.example.com/", pairs["registry"])
	assert.Equal(t, "https://npm.myorg.com", pairs["@myorg:registry"])
	assert.Equal(t, "abc123", pairs["//npm.myorg.com/:_authToken"])
	assert.NotContains(t, pairs, "malformed line without equals")
	assert.Len(t, pairs, 3)
}

func TestParse_ExpandsEnvReferences(t *testing.T) {
	t.Setenv("NPM_TOKEN", "secret-token")
	t.Setenv("OTHER", "unused")

	pairs := Parse("//registry.npmjs.org/:_authToken=${NPM_TOKEN}\nplain=$NOT_EXPANDED")
	assert.Equal(t, "secret-token", pairs["//registry.npmjs.org/:_authToken"])
	// npm only expands the ${VAR} form.
	assert.Equal(t, "$NOT_EXPANDED", pairs["plain"])
}

func TestRegistryFor_ScopedAndDefault(t *testing.T) {
	cfg := &Config{
		DefaultRegistry: "https://registry.example.com",
		ScopedRegistries: map[string]string{
			"@myorg": "https://npm.myorg.com",
		},
	}

	assert.Equal(t, "https://npm.myorg.com", cfg.RegistryFor("@myorg/pkg"))
	assert.Equal(t, "https://registry.example.com", cfg.RegistryFor("@other/pkg"))
	assert.Equal(t, "https://registry.example.com", cfg.RegistryFor("lodash"))
}

func TestRegistryFor_FallsBackToPublicRegistry(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultRegistry, cfg.RegistryFor("lodash"))
}

func TestTokenFor_LongestPrefixWins(t *testing.T) {
	cfg := &Config{
		AuthTokens: map[string]string{
			"//npm.myorg.com/":         "broad",
			"//npm.myorg.com/private/": "narrow",
		},
	}

	assert.Equal(t, "narrow", cfg.TokenFor("https://npm.myorg.com/private"))
	assert.Equal(t, "broad", cfg.TokenFor("https://npm.myorg.com"))
	assert.Equal(t, "", cfg.TokenFor("https://registry.npmjs.org"))
}

func TestTokenFor_InvalidURL(t *testing.T) {
	cfg := &Config{AuthTokens: map[string]string{"//x/": "t"}}
	assert.Equal(t, "", cfg.TokenFor("not a url"))
}
