// Package npmrc resolves npm registry URLs and auth tokens from layered
// .npmrc files, the way the npm CLI does: project config first, then user
// config, then global config, with earlier layers winning.
package npmrc

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultRegistry is used when no .npmrc overrides the registry.
const DefaultRegistry = "https://registry.npmjs.org"

// Config holds resolved registry settings.
type Config struct {
	// DefaultRegistry is the registry for unscoped packages.
	DefaultRegistry string

	// ScopedRegistries maps "@scope" to a registry URL.
	ScopedRegistries map[string]string

	// AuthTokens maps a registry host prefix (the "//host/path/" form npm
	// uses) to its auth token.
	AuthTokens map[string]string
}

// Load reads layered npm configuration: <projectDir>/.npmrc, then
// ~/.npmrc, then /etc/npmrc. Missing files are skipped. Keys from earlier
// layers win over later ones.
func Load(projectDir string) *Config {
	cfg := &Config{
		DefaultRegistry:  DefaultRegistry,
		ScopedRegistries: make(map[string]string),
		AuthTokens:       make(map[string]string),
	}

	var paths []string
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".npmrc"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".npmrc"))
	}
	paths = append(paths, "/etc/npmrc")

	// Apply layers in reverse so earlier (higher priority) files overwrite.
	for i := len(paths) - 1; i >= 0; i-- {
		data, err := os.ReadFile(paths[i])
		if err != nil {
			continue
		}
		cfg.apply(Parse(string(data)))
	}

	return cfg
}

// Parse parses .npmrc content into key/value pairs. Comment lines (# or ;)
// and malformed lines are skipped. ${VAR} references in values are expanded
// from the environment.
func Parse(content string) map[string]string {
	pairs := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = expandEnv(strings.TrimSpace(value))
		if key != "" {
			pairs[key] = value
		}
	}
	return pairs
}

func (c *Config) apply(pairs map[string]string) {
	for key, value := range pairs {
		switch {
		case key == "registry":
			c.DefaultRegistry = strings.TrimRight(value, "/")
		case strings.HasPrefix(key, "@") && strings.HasSuffix(key, ":registry"):
			scope := strings.TrimSuffix(key, ":registry")
			c.ScopedRegistries[scope] = strings.TrimRight(value, "/")
		case strings.HasPrefix(key, "//") && strings.HasSuffix(key, ":_authToken"):
			host := strings.TrimSuffix(key, ":_authToken")
			c.AuthTokens[host] = value
		}
	}
}

// RegistryFor returns the registry URL for a package name, honoring scoped
// registry overrides for "@scope/name" packages.
func (c *Config) RegistryFor(pkg string) string {
	if strings.HasPrefix(pkg, "@") {
		if scope, _, ok := strings.Cut(pkg, "/"); ok {
			if reg, found := c.ScopedRegistries[scope]; found {
				return reg
			}
		}
	}
	if c.DefaultRegistry != "" {
		return c.DefaultRegistry
	}
	return DefaultRegistry
}

// TokenFor returns the auth token for a registry URL, or "" when none is
// configured. Matching follows npm's "//host/path/:_authToken" convention:
// the registry's scheme is dropped and the longest configured prefix wins.
func (c *Config) TokenFor(registryURL string) string {
	u, err := url.Parse(registryURL)
	if err != nil || u.Host == "" {
		return ""
	}
	target := "//" + u.Host + strings.TrimRight(u.Path, "/") + "/"

	best := ""
	token := ""
	for host, t := range c.AuthTokens {
		prefix := strings.TrimRight(host, "/") + "/"
		if strings.HasPrefix(target, prefix) && len(prefix) > len(best) {
			best = prefix
			token = t
		}
	}
	return token
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnv expands ${VAR} references, leaving bare $VAR forms alone to
// match npm's behavior.
func expandEnv(value string) string {
	return envRef.ReplaceAllStringFunc(value, func(m string) string {
		return os.Getenv(m[2 : len(m)-1])
	})
}
