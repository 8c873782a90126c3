package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	agent, ok := Lookup("comms-advisor")
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", agent.Model)
	assert.NotEmpty(t, agent.SystemPrompt)

	_, ok = Lookup("no-such-agent")
	assert.False(t, ok)
}

func TestCommsAdvisorCarriesCRMTools(t *testing.T) {
	agent, ok := Lookup("comms-advisor")
	require.True(t, ok)

	names := make(map[string]bool)
	for _, tool := range agent.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"search_crm", "create_contact", "update_contact", "set_reminder", "send_email"} {
		assert.True(t, names[want], "missing tool %s", want)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)

	first[0] = nil
	second := All()
	assert.NotNil(t, second[0])
}
