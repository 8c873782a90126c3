package domain

type AgentID string
type ThreadID string
type ContactID string

// ContactType classifies the relationship a contact represents.
type ContactType string

const (
	TypeInvestor ContactType = "investor"
	TypeProspect ContactType = "prospect"
	TypeAdvisor  ContactType = "advisor"
	TypePartner  ContactType = "partner"
	TypeFounder  ContactType = "founder"
	TypeOther    ContactType = "other"
)
