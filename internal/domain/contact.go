package domain

// Contact is one CRM record. Date fields are ISO-8601 day strings
// ("2025-03-10") because that is the wire format the tools exchange.
// Notes is an append-only blob of timestamp-prefixed lines.
type Contact struct {
	ID           ContactID
	Name         string
	Company      string
	Type         ContactType
	Email        string
	Notes        string
	LastContact  string
	FollowUpDate string
}

// ContactPatch is a partial update. Nil fields are left untouched.
type ContactPatch struct {
	Notes        *string
	LastContact  *string
	FollowUpDate *string
}
