package service_test

import (
	"testing"

	"edumotion/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, `[{"a":1}]`, service.StripCodeFences(`[{"a":1}]`))
	})

	t.Run("fenced json is unwrapped", func(t *testing.T) {
		input := "```json\n[{\"a\":1}]\n```"
		assert.Equal(t, `[{"a":1}]`, service.StripCodeFences(input))
	})

	t.Run("fence without language tag", func(t *testing.T) {
		input := "```\n[1,2,3]\n```"
		assert.Equal(t, "[1,2,3]", service.StripCodeFences(input))
	})

	t.Run("idempotent", func(t *testing.T) {
		input := "```json\n[{\"a\":1}]\n```"
		once := service.StripCodeFences(input)
		twice := service.StripCodeFences(once)
		assert.Equal(t, once, twice)
	})

	t.Run("unterminated fence keeps the body", func(t *testing.T) {
		input := "```json\n[{\"a\":1}]"
		assert.Equal(t, `[{"a":1}]`, service.StripCodeFences(input))
	})
}

func TestExtractQuizJSON(t *testing.T) {
	t.Run("array surrounded by prose", func(t *testing.T) {
		input := `Here is your quiz: [{"q":"x"}] hope it helps!`
		out, err := service.ExtractQuizJSON(input)
		require.NoError(t, err)
		assert.Equal(t, `[{"q":"x"}]`, out)
	})

	t.Run("nested arrays stay intact", func(t *testing.T) {
		input := `[{"options":["A) 1","B) 2"]}]`
		out, err := service.ExtractQuizJSON(input)
		require.NoError(t, err)
		assert.Equal(t, input, out)
	})

	t.Run("bracket inside string literal is ignored", func(t *testing.T) {
		input := `[{"question":"what is arr[0]?"}] trailing`
		out, err := service.ExtractQuizJSON(input)
		require.NoError(t, err)
		assert.Equal(t, `[{"question":"what is arr[0]?"}]`, out)
	})

	t.Run("no array falls back to whole cleaned text", func(t *testing.T) {
		out, err := service.ExtractQuizJSON(`{"not":"an array"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"not":"an array"}`, out)
	})

	t.Run("empty response is an error", func(t *testing.T) {
		_, err := service.ExtractQuizJSON("```\n```")
		assert.Error(t, err)
	})
}
