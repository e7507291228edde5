package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigRegistry(t *testing.T) {
	path := writeProfiles(t, `
[titan]
source = builtin:titan
format = html
output = out/titan.html

[acme]
source = s3://benefique-reports/acme/2026-01.yaml
aws_profile = benefique

[empty]
`)

	reg, err := NewConfigRegistry(path)
	require.NoError(t, err)

	profiles, err := reg.GetProfiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "titan"}, profiles)

	titan, err := reg.GetProfile("titan")
	require.NoError(t, err)
	assert.Equal(t, &Profile{Name: "titan", Source: "builtin:titan", Format: "html", Output: "out/titan.html"}, titan)

	acme, err := reg.GetProfile("acme")
	require.NoError(t, err)
	assert.Equal(t, "benefique", acme.AWSProfile)
	assert.Empty(t, acme.Format)

	_, err = reg.GetProfile("empty")
	assert.Error(t, err)

	_, err = reg.GetProfile("missing")
	assert.Error(t, err)
}

func TestConfigRegistry_NoSource(t *testing.T) {
	reg, err := NewConfigRegistry(writeProfiles(t, "[titan]\nformat = json\n"))
	require.NoError(t, err)

	_, err = reg.GetProfile("titan")
	assert.ErrorContains(t, err, "no source")
}

func TestNewConfigRegistry_MissingFile(t *testing.T) {
	_, err := NewConfigRegistry(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
