package research

import (
	"fmt"
	"html/template"
	"strings"
)

// renderReport assembles the full HTML email. Model output is markdown-
// flavored plain text; it gets a light conversion (line breaks, heading
// markers) rather than a full markdown render, matching the report's
// single-recipient, fixed-layout purpose.
func renderReport(executiveSummary, combinedSummaries, content string, results []TopicResult) string {
	var body strings.Builder

	topics := make([]string, 0, len(results))
	for _, r := range results {
		topics = append(topics, r.Topic)
	}
	coveredTopics := 0
	for _, r := range results {
		if len(r.Results) > 0 {
			coveredTopics++
		}
	}

	body.WriteString(reportHeader)
	fmt.Fprintf(&body, `<div class="stats"><strong>This Week:</strong> %d sources analyzed across %d topics<br><strong>Topics Covered:</strong> %s</div>`,
		totalSources(results), coveredTopics, template.HTMLEscapeString(strings.Join(topics, " • ")))

	body.WriteString(`<h2>📌 Executive Summary</h2><div class="insight">`)
	body.WriteString(markupToHTML(executiveSummary))
	body.WriteString(`</div>`)

	body.WriteString(`<h2>📚 Research by Topic</h2><div class="topic">`)
	body.WriteString(markupToHTML(combinedSummaries))
	body.WriteString(`</div>`)

	body.WriteString(`<h2>✍️ Content Ready to Post</h2><div class="insight">`)
	body.WriteString(markupToHTML(content))
	body.WriteString(`</div>`)

	body.WriteString(`<h2>🔗 All Sources</h2><div class="sources">`)
	body.WriteString(sourcesHTML(results))
	body.WriteString(`</div>`)

	body.WriteString(reportFooter)
	return body.String()
}

func sourcesHTML(results []TopicResult) string {
	var b strings.Builder
	for _, topic := range results {
		if len(topic.Results) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h3>%s</h3><ul>", template.HTMLEscapeString(topic.Topic))
		for _, r := range topic.Results {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a>`,
				template.HTMLEscapeString(r.URL), template.HTMLEscapeString(r.Title))
			if r.PublishedDate != "" {
				fmt.Fprintf(&b, ` <span style="color: #64748b; font-size: 12px;">(%s)</span>`,
					template.HTMLEscapeString(r.PublishedDate))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// markupToHTML converts the model's markdown-ish text to HTML: escape,
// promote heading markers, strip bold markers, break lines.
func markupToHTML(s string) string {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "## ", `<strong style="font-size: 18px; display: block; margin-top: 20px;">`)
	escaped = strings.ReplaceAll(escaped, "### ", `<strong style="font-size: 16px; display: block; margin-top: 15px;">`)
	escaped = strings.ReplaceAll(escaped, "---", `<hr style="border: none; border-top: 1px solid #e2e8f0; margin: 20px 0;">`)
	escaped = strings.ReplaceAll(escaped, "**", "")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return escaped
}

const reportHeader = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
    h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
    h2 { color: #1e40af; margin-top: 30px; }
    h3 { color: #333; font-weight: normal; font-size: 16px; margin-top: 20px; }
    .stats { background: #f1f5f9; padding: 15px; border-radius: 8px; margin: 20px 0; }
    .insight { background: #fff; border-left: 4px solid #2563eb; padding: 15px; margin: 15px 0; }
    .topic { background: #f8fafc; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .sources { background: #f8fafc; padding: 15px; border-radius: 8px; margin: 15px 0; }
    a { color: #2563eb; text-decoration: none; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #64748b; font-size: 14px; }
  </style>
</head>
<body>
  <h1>📊 Weekly Research Report</h1>
`

const reportFooter = `
  <div class="footer">
    <p>This report was automatically generated by your Research Agent.</p>
    <p>Ready-to-post content has been created by your Content Agent.</p>
  </div>
</body>
</html>
`
