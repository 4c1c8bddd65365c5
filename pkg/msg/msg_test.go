package msg

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = `
greeting:
  hello: "Hello {0}, you are {1}"
  struct: "Payload {0}"
  error: "Failed: {0}"
  latency: "Took {0}"
`

func TestGetMessage(t *testing.T) {
	require.NoError(t, Load([]byte(catalog)))

	tests := []struct {
		name string
		key  string
		args []any
		want string
	}{
		{name: "primitives", key: "greeting.hello", args: []any{"Ana", 30}, want: "Hello Ana, you are 30"},
		{name: "float", key: "greeting.hello", args: []any{"Bo", 1.5}, want: "Hello Bo, you are 1.5"},
		{name: "struct as json", key: "greeting.struct", args: []any{struct {
			ID string `json:"id"`
		}{ID: "FRPAR"}}, want: `Payload {"id":"FRPAR"}`},
		{name: "error", key: "greeting.error", args: []any{errors.New("boom")}, want: "Failed: boom"},
		{name: "stringer", key: "greeting.latency", args: []any{2 * time.Second}, want: "Took 2s"},
		{name: "missing args keep placeholders", key: "greeting.hello", want: "Hello {0}, you are {1}"},
		{name: "unknown key", key: "greeting.nope", want: "Message not found: greeting.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMessage(tt.key, tt.args...))
		})
	}
}

func TestLoadMergesCatalogs(t *testing.T) {
	require.NoError(t, Load([]byte(catalog)))
	require.NoError(t, Load([]byte("other:\n  key: \"second\"\n")))

	assert.Equal(t, "second", GetMessage("other.key"))
	assert.Equal(t, "Took {0}", GetMessage("greeting.latency"))
}
