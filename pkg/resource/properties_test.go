package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: ${TEST_APP_NAME:fallback-name}
  url: http://${TEST_HOST:localhost}:${TEST_PORT:9000}/v1
  empty: ${TEST_EMPTY:}
  plain: just-text
  timeout: 10s
  limit: 5
  headers:
    - x-one
    - x-two
`

func TestLoadResolvesEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("TEST_APP_NAME", "from-env")
	t.Setenv("TEST_PORT", "8181")

	require.NoError(t, Load([]byte(sample)))

	assert.Equal(t, "from-env", GetString("app.name"))
	assert.Equal(t, "http://localhost:8181/v1", GetString("app.url"))
	assert.Equal(t, "", GetString("app.empty"))
	assert.Equal(t, "just-text", GetString("app.plain"))
}

func TestLoadKeepsTypedValues(t *testing.T) {
	require.NoError(t, Load([]byte(sample)))

	assert.Equal(t, 10*time.Second, GetDuration("app.timeout"))
	assert.Equal(t, 5, GetInt("app.limit"))
	assert.Equal(t, []string{"x-one", "x-two"}, GetStringSlice("app.headers"))
}

func TestDefaults(t *testing.T) {
	require.NoError(t, Load([]byte(sample)))

	assert.Equal(t, "fallback", GetStringOrDefault("app.missing", "fallback"))
	assert.Equal(t, 3*time.Second, GetDurationOrDefault("app.missing", 3*time.Second))
	assert.Equal(t, 7, GetIntOrDefault("app.missing", 7))
	assert.Equal(t, 5, GetIntOrDefault("app.limit", 7))
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	assert.Error(t, Load([]byte("app: [unclosed")))
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init("does/not/exist.yml"))
}
