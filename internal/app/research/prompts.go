package research

import (
	"fmt"
	"strings"
)

func topicSummaryPrompt(topic TopicResult) string {
	var b strings.Builder
	for i, r := range topic.Results {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&b, "**%s**\nSource: %s\n", r.Title, r.URL)
		if r.PublishedDate != "" {
			fmt.Fprintf(&b, "Published: %s\n", r.PublishedDate)
		}
		b.WriteString(r.Content)
	}

	return fmt.Sprintf(`Analyze this research on %q and provide a DETAILED summary.

Research:
%s

Provide:
1. **Key Developments** (3-5 bullet points, 2-3 sentences each): What happened? Why does it matter?
2. **Notable Statistics**: Any specific numbers, percentages, or data points worth citing
3. **Implications for AI Hiring**: How does this relate to AI-powered interviewing and screening?
4. **Content Angle**: One specific angle Shenny could use for a LinkedIn or Twitter post

Be specific and detailed. Include company names, numbers, and concrete examples where available.`, topic.Topic, b.String())
}

func executivePrompt(combinedSummaries string) string {
	return fmt.Sprintf(`Based on this week's detailed research summaries, create a COMPREHENSIVE executive summary.

Research Summaries by Topic:
%s

Create a thorough executive summary with:

## 🔥 Top 5 Findings This Week
For each finding: what happened, why it matters for the recruitment/TA industry, how it relates to AI-powered hiring and voice interviewing, and what action Shenny should take from it.

## 📊 Key Statistics & Data Points Worth Citing
List 5-10 specific numbers, percentages, and metrics with context and source.

## 📈 Emerging Trends (3-5 trends)
For each: what the trend is, evidence from this week's research, where it's heading, implications for HYRE.

## 🎯 Competitor Watch
New products or features, funding or partnerships, strategic moves, weaknesses or gaps identified.

## ⚡ Hot Takes & Contrarian Views
What debates are happening? What contrarian positions could Shenny take?

## 💡 Top 3 Content Opportunities
Specific content ideas with the angle, why it would resonate now, which platform, and key points to include.

Be comprehensive and detailed.`, combinedSummaries)
}

func contentPrompt(executiveSummary, combinedSummaries string) string {
	return fmt.Sprintf(`Based on this week's research, create thought leadership content for LinkedIn and Twitter.

## Executive Summary:
%s

## Detailed Research by Topic:
%s

Please create:

### LinkedIn Posts (5 posts)
Each 150-250 words with a hook, a clear insight, specific data where relevant, ending with a question or reflection. Mix: one hot take, one research insight, one founder journey, one industry observation, one future prediction.

### Twitter Posts (7 tweets)
Each under 280 characters, punchy and conversational, no hashtags. Mix: 2 hot takes, 2 insights with stats, 2 observations or questions, 1 thread starter.

All content must reference specific findings, keep Shenny's authentic warm direct voice, and be ready to copy and post.`, executiveSummary, combinedSummaries)
}
