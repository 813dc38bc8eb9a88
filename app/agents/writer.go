package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ContentCrewAI/app/history"
	"ContentCrewAI/app/models"
	"ContentCrewAI/app/storage"
)

const writerSystemPrompt = `You are an expert content writer specialized in creating high-quality, engaging, and informative content. Your role is to:

1. Transform research data into compelling, well-structured content
2. Adapt writing style based on target audience and requirements
3. Ensure content is accurate, engaging, and actionable
4. Create clear, logical flow with proper structure and formatting
5. Optimize content for readability and comprehension

Always prioritize clarity, accuracy, and engagement. Use research data effectively to support your points and create valuable content for readers.`

const DefaultStyle = "Professional"

var styleGuides = map[string]string{
	"Professional": `- Use formal tone and business language
- Focus on facts, data, and actionable insights
- Structure with clear executive summary and key points
- Include relevant statistics and evidence
- Write for business stakeholders and decision-makers`,
	"Casual": `- Use conversational, friendly tone
- Include relatable examples and analogies
- Break down complex concepts simply
- Add personality and engagement
- Write as if explaining to a friend`,
	"Academic": `- Use scholarly tone with proper citations
- Include methodology and evidence-based arguments
- Structure with abstract, introduction, analysis, conclusion
- Reference research findings extensively
- Write for academic audience with domain expertise`,
	"Creative": `- Use engaging storytelling elements
- Include metaphors, analogies, and creative examples
- Focus on narrative flow and emotional connection
- Use varied sentence structure and descriptive language
- Write to inspire and engage readers`,
}

var enhancementPrompts = map[string]string{
	"readability": "Improve the readability and flow of this content while maintaining all key information",
	"engagement":  "Make this content more engaging and compelling while keeping it professional",
	"conciseness": "Make this content more concise and to-the-point while preserving important details",
	"seo":         "Optimize this content for search engines while maintaining quality and readability",
}

var summaryPrompts = map[string]string{
	"executive": "Create a brief executive summary highlighting key points and actionable insights",
	"bullet":    "Create a bullet-point summary of the main points",
	"abstract":  "Create an academic-style abstract summarizing the content",
	"tldr":      "Create a very brief TL;DR summary",
}

type Writer struct {
	agent
}

type WritingStatistics struct {
	TotalPieces    int
	TotalWords     int
	AverageWords   int
	StyleBreakdown map[string]int
	LastActivity   time.Time
}

func NewWriter(model models.Interface, archive storage.Interface) *Writer {
	return &Writer{
		agent: agent{
			name: "Writer Agent",
			capabilities: []string{
				"AI-powered content creation",
				"Multiple writing styles and formats",
				"Research-based article writing",
				"Content optimization and enhancement",
			},
			systemPrompt: writerSystemPrompt,
			model:        model,
			history:      history.New(archive),
		},
	}
}

// StyleInstructions returns the guidance for a writing style, falling back
// to the Professional default for unknown styles.
func StyleInstructions(style string) string {
	if guide, ok := styleGuides[style]; ok {
		return guide
	}
	return styleGuides[DefaultStyle]
}

// Write turns research data into content in the requested style. Unknown
// styles fall back to Professional.
func (w *Writer) Write(ctx context.Context, researchData, requirements, style string) (string, error) {
	if _, ok := styleGuides[style]; !ok {
		style = DefaultStyle
	}
	if requirements == "" {
		requirements = "Create comprehensive, informative content"
	}
	params := map[string]string{"style": style, "requirements": requirements}

	prompt := fmt.Sprintf(`Create high-quality content based on the following research data.

RESEARCH DATA:
%s

REQUIREMENTS:
%s

WRITING STYLE: %s
%s

Please create well-structured content that:
1. Uses the research data effectively
2. Follows the specified writing style
3. Meets the stated requirements
4. Is engaging and informative
5. Has clear headings and organization
6. Includes actionable insights where appropriate

Format the content in markdown with proper headings, bullet points, and emphasis.`,
		researchData, requirements, style, StyleInstructions(style))

	content, err := w.think(ctx, prompt, 0.7, 2000)
	if err != nil {
		w.logTask(ctx, history.Entry{Operation: "write", Params: params, Status: history.StatusFailed})
		return "", fmt.Errorf("write: %w", err)
	}

	final := fmt.Sprintf(`# ✍️ Content Created by %s

*Generated at %s | Style: %s*

%s

---
**Content Metadata:**
- Writing Style: %s
- Word Count: ~%d words
- Based on: Research Agent findings
`, w.name, now(), style, content, style, wordCount(content))

	w.logTask(ctx, history.Entry{
		Operation: "write",
		Params:    params,
		WordCount: wordCount(content),
		Status:    history.StatusCompleted,
	})

	return final, nil
}

// EnhanceContent rewrites content for a given enhancement type; unknown
// types fall back to readability. No history entry.
func (w *Writer) EnhanceContent(ctx context.Context, content, enhancementType string) (string, error) {
	prompt, ok := enhancementPrompts[enhancementType]
	if !ok {
		enhancementType = "readability"
		prompt = enhancementPrompts[enhancementType]
	}

	enhanced, err := w.think(ctx, fmt.Sprintf(`%s:

%s

Please provide the enhanced version while maintaining the original structure and key messages.`, prompt, content), 0.5, 2000)
	if err != nil {
		return "", fmt.Errorf("enhance content: %w", err)
	}

	return fmt.Sprintf(`# ✨ Enhanced Content

*Enhancement Type: %s*
*Enhanced at: %s*

%s
`, strings.Title(enhancementType), now(), enhanced), nil
}

// CreateSummary produces a summary of the requested kind; unknown kinds
// fall back to executive. Returns the raw generated text.
func (w *Writer) CreateSummary(ctx context.Context, content, summaryType string) (string, error) {
	prompt, ok := summaryPrompts[summaryType]
	if !ok {
		prompt = summaryPrompts["executive"]
	}

	summary, err := w.thinkAs(ctx,
		"You are an expert at creating concise, informative summaries.",
		fmt.Sprintf("%s for the following content:\n\n%s", prompt, content), 0.3, 500)
	if err != nil {
		return "", fmt.Errorf("create summary: %w", err)
	}
	return summary, nil
}

// Statistics aggregates completed writing tasks. Pure read, no generation
// call; zero-valued on an empty history.
func (w *Writer) Statistics() WritingStatistics {
	stats := WritingStatistics{StyleBreakdown: map[string]int{}}
	for _, entry := range w.history.Snapshot() {
		if entry.Operation != "write" || entry.Status != history.StatusCompleted {
			continue
		}
		stats.TotalPieces++
		stats.TotalWords += entry.WordCount
		stats.StyleBreakdown[entry.Params["style"]]++
		stats.LastActivity = entry.CreatedAt
	}
	if stats.TotalPieces > 0 {
		stats.AverageWords = stats.TotalWords / stats.TotalPieces
	}
	return stats
}
