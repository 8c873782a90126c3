// Package agents holds the static persona catalog. Each agent is a
// fixed configuration of prompt, model and tool schemas; nothing here
// performs I/O.
package agents

import "github.com/shennylee/aios/internal/domain"

var catalog = []*domain.Agent{
	commsAdvisor,
	researchAgent,
	contentAgent,
}

// Lookup returns the agent with the given id, or false if unknown.
func Lookup(id domain.AgentID) (*domain.Agent, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// All returns every registered agent, in catalog order.
func All() []*domain.Agent {
	out := make([]*domain.Agent, len(catalog))
	copy(out, catalog)
	return out
}
