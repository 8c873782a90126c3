package agents

import "github.com/shennylee/aios/internal/domain"

// CRMTools declares the function tools backed by the CRM store and the
// email sender. The schemas are plain JSON-schema objects forwarded to
// the run provider verbatim.
var CRMTools = []domain.ToolSchema{
	{
		Name:        "search_crm",
		Description: "Search for a contact in the CRM by name or company. Use this to get context about someone before drafting a message.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Name or company to search for",
				},
			},
			"required": []string{"query"},
		},
	},
	{
		Name:        "create_contact",
		Description: "Create a new contact in the CRM. Use this when the user mentions someone new.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Contact name",
				},
				"company": map[string]any{
					"type":        "string",
					"description": "Company name",
				},
				"type": map[string]any{
					"type":        "string",
					"enum":        []string{"investor", "prospect", "advisor", "founder", "other"},
					"description": "Relationship type",
				},
				"email": map[string]any{
					"type":        "string",
					"description": "Contact email address",
				},
				"notes": map[string]any{
					"type":        "string",
					"description": "Initial notes about this contact",
				},
			},
			"required": []string{"name", "type"},
		},
	},
	{
		Name:        "update_contact",
		Description: "Update an existing contact with new information or notes.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"contact_id": map[string]any{
					"type":        "string",
					"description": "CRM id of the contact",
				},
				"notes": map[string]any{
					"type":        "string",
					"description": "Notes to append",
				},
				"last_contact": map[string]any{
					"type":        "string",
					"description": "Date of last contact (YYYY-MM-DD format)",
				},
				"follow_up_date": map[string]any{
					"type":        "string",
					"description": "Date to follow up (YYYY-MM-DD format)",
				},
			},
			"required": []string{"contact_id"},
		},
	},
	{
		Name:        "set_reminder",
		Description: "Set a reminder to follow up with someone. Updates their follow-up date in the CRM.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"contact_name": map[string]any{
					"type":        "string",
					"description": "Name of the person to follow up with",
				},
				"follow_up_date": map[string]any{
					"type":        "string",
					"description": "When to follow up (YYYY-MM-DD format, or relative like 'in 2 weeks')",
				},
				"note": map[string]any{
					"type":        "string",
					"description": "What to remember for the follow-up",
				},
			},
			"required": []string{"contact_name", "follow_up_date"},
		},
	},
	{
		Name:        "send_email",
		Description: "Send an email to Shenny with a draft, summary or reminder.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{
					"type":        "string",
					"description": "Email subject",
				},
				"body": map[string]any{
					"type":        "string",
					"description": "Email body (HTML allowed)",
				},
			},
			"required": []string{"subject", "body"},
		},
	},
}
