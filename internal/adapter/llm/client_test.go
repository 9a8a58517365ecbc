package llm_test

import (
	"context"
	"testing"

	"edumotion/internal/adapter/llm"
	"edumotion/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete_EmptyPrompt(t *testing.T) {
	// Rejected before any network call, so a fake key is fine.
	client, err := llm.NewOpenAIClient(testLLMConfig("openai"))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "", "")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}
