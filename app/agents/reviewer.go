package agents

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"ContentCrewAI/app/history"
	"ContentCrewAI/app/models"
	"ContentCrewAI/app/storage"
)

const reviewerSystemPrompt = `You are an expert content reviewer and quality assurance specialist. Your role is to:

1. Thoroughly analyze content for accuracy, clarity, and effectiveness
2. Identify areas for improvement in structure, flow, and readability
3. Check for factual accuracy and logical consistency
4. Provide constructive feedback and specific improvement suggestions
5. Ensure content meets professional standards and objectives

Always be thorough, constructive, and specific in your feedback. Focus on both strengths and areas for improvement.`

const DefaultCriteria = "comprehensive"

var criteriaGuides = map[string]string{
	"comprehensive": `Conduct a full content review covering all aspects:
- Factual accuracy and evidence quality
- Writing quality and readability
- Structure and logical flow
- Audience appropriateness
- Completeness and depth`,
	"accuracy": `Focus primarily on factual accuracy:
- Verify claims and statistics
- Check for logical inconsistencies
- Assess evidence quality
- Identify potential inaccuracies`,
	"readability": `Focus on clarity and readability:
- Sentence structure and flow
- Word choice and terminology
- Paragraph organization
- Overall comprehension ease`,
	"professional": `Focus on professional standards:
- Business writing conventions
- Formal tone and language
- Professional presentation
- Industry appropriateness`,
}

var focusPrompts = map[string]string{
	"overall":     "Provide comprehensive improvement suggestions for all aspects of the content",
	"structure":   "Focus on improving the structure, organization, and flow of the content",
	"clarity":     "Focus on improving clarity, readability, and comprehension",
	"engagement":  "Focus on making the content more engaging and compelling",
	"conciseness": "Focus on making the content more concise and impactful",
}

type Reviewer struct {
	agent
}

type FactCheckResult struct {
	Analysis  string
	CheckedAt time.Time
	Status    string
}

// QualityReport carries the model's free-text quality assessment. Scored
// stays false: per-dimension numbers are not parsed out of the analysis,
// and none are fabricated.
type QualityReport struct {
	Analysis   string
	Scored     bool
	AssessedAt time.Time
}

type ReviewStatistics struct {
	TotalReviews      int
	AverageStrictness float64
	CriteriaBreakdown map[string]int
	ReviewsToday      int
	LastReview        time.Time
}

func NewReviewer(model models.Interface, archive storage.Interface) *Reviewer {
	return &Reviewer{
		agent: agent{
			name: "Reviewer Agent",
			capabilities: []string{
				"AI-powered content review and analysis",
				"Quality assurance and fact-checking",
				"Content improvement suggestions",
				"Style and tone analysis",
			},
			systemPrompt: reviewerSystemPrompt,
			model:        model,
			history:      history.New(archive),
		},
	}
}

// CriteriaGuidance returns the review guidance block for the criteria,
// falling back to comprehensive for unknown values.
func CriteriaGuidance(criteria string) string {
	if guide, ok := criteriaGuides[criteria]; ok {
		return guide
	}
	return criteriaGuides[DefaultCriteria]
}

// StrictnessGuidance maps the 1-10 strictness level onto one of four
// guidance bands.
func StrictnessGuidance(strictness int) string {
	switch {
	case strictness <= 3:
		return "Be very lenient and focus on major issues only"
	case strictness <= 6:
		return "Apply moderate standards with balanced feedback"
	case strictness <= 8:
		return "Apply high standards with detailed analysis"
	default:
		return "Be extremely thorough and identify even minor issues"
	}
}

// Review analyzes content against the given criteria at the given
// strictness. Unknown criteria fall back to comprehensive.
func (r *Reviewer) Review(ctx context.Context, content, criteria string, strictness int) (string, error) {
	if _, ok := criteriaGuides[criteria]; !ok {
		criteria = DefaultCriteria
	}
	params := map[string]string{"criteria": criteria}

	prompt := fmt.Sprintf(`Please conduct a thorough review of the following content.

CONTENT TO REVIEW:
%s

REVIEW CRITERIA: %s
STRICTNESS LEVEL: %d/10
%s

Strictness Level %d/10 means:
- %s

Provide a comprehensive review including:

1. **Overall Assessment**
2. **Strengths** - What works well
3. **Areas for Improvement** - Specific issues and suggestions
4. **Content Quality Analysis**:
   - Accuracy and factual correctness
   - Clarity and readability
   - Structure and organization
   - Tone and style appropriateness
5. **Specific Recommendations** - Actionable improvements
6. **Final Verdict** - Ready for publication or needs revision

Be specific, constructive, and provide examples where helpful.`,
		content, criteria, strictness, CriteriaGuidance(criteria), strictness, StrictnessGuidance(strictness))

	analysis, err := r.think(ctx, prompt, 0.3, 2000)
	if err != nil {
		r.logTask(ctx, history.Entry{Operation: "review", Params: params, Strictness: strictness, Status: history.StatusFailed})
		return "", fmt.Errorf("review: %w", err)
	}

	final := fmt.Sprintf(`# 📝 Content Review Report

*Review conducted by %s at %s*
*Review Criteria: %s | Strictness Level: %d/10*

%s

---
**Review Metadata:**
- Content Length: %d words
- Review Type: %s
- Strictness: %d/10
- Status: Analysis Complete
`, r.name, now(), criteria, strictness, analysis, wordCount(content), strings.Title(criteria), strictness)

	r.logTask(ctx, history.Entry{
		Operation:  "review",
		Params:     params,
		Strictness: strictness,
		WordCount:  wordCount(content),
		Status:     history.StatusCompleted,
	})

	return final, nil
}

// FactCheck requests a claim-by-claim accuracy assessment. The claims stay
// embedded in the free-text analysis.
func (r *Reviewer) FactCheck(ctx context.Context, content string) (*FactCheckResult, error) {
	prompt := fmt.Sprintf(`Fact-check the following content and identify:

%s

Please provide:
1. List of factual claims made
2. Assessment of each claim (Accurate/Questionable/Inaccurate/Unverifiable)
3. Potential sources for verification
4. Red flags or areas requiring additional verification

Focus on specific, verifiable claims`, content)

	analysis, err := r.thinkAs(ctx,
		"You are an expert fact-checker. Analyze content for factual claims and assess their accuracy.",
		prompt, 0.2, 1500)
	if err != nil {
		return nil, fmt.Errorf("fact check: %w", err)
	}

	return &FactCheckResult{
		Analysis:  analysis,
		CheckedAt: time.Now(),
		Status:    "completed",
	}, nil
}

// SuggestImprovements generates focused improvement suggestions; unknown
// focus areas fall back to overall. No history entry.
func (r *Reviewer) SuggestImprovements(ctx context.Context, content, focusArea string) (string, error) {
	prompt, ok := focusPrompts[focusArea]
	if !ok {
		focusArea = "overall"
		prompt = focusPrompts[focusArea]
	}

	improvements, err := r.think(ctx, fmt.Sprintf(`%s for the following content:

%s

Provide specific, actionable suggestions in the following format:
1. **Priority Issues** (must fix)
2. **Recommended Improvements** (should fix)
3. **Enhancement Opportunities** (nice to have)
4. **Specific Examples** of how to implement changes

Be concrete and provide before/after examples where helpful.`, prompt, content), 0.4, 1500)
	if err != nil {
		return "", fmt.Errorf("suggest improvements: %w", err)
	}

	return fmt.Sprintf(`# 🔧 Content Improvement Suggestions

*Generated by %s at %s*
*Focus Area: %s*

%s
`, r.name, now(), strings.Title(focusArea), improvements), nil
}

// QualityScore requests a multi-dimension quality assessment.
func (r *Reviewer) QualityScore(ctx context.Context, content string) (*QualityReport, error) {
	prompt := fmt.Sprintf(`Assess the quality of this content across multiple dimensions and briefly explain each:

%s

1. **Accuracy & Factualness**
2. **Clarity & Readability**
3. **Structure & Organization**
4. **Engagement & Interest**
5. **Completeness & Depth**
6. **Professional Quality**

Also provide:
- **Key Strengths** (top 2-3)
- **Main Weaknesses** (top 2-3)
- **Recommendation**: Ready to publish / Needs minor revisions / Needs major revisions

Be objective and provide brief explanations for each dimension.`, content)

	analysis, err := r.thinkAs(ctx,
		"You are an expert content quality assessor. Provide a detailed assessment across multiple dimensions.",
		prompt, 0.3, 1000)
	if err != nil {
		return nil, fmt.Errorf("quality score: %w", err)
	}

	return &QualityReport{
		Analysis:   analysis,
		AssessedAt: time.Now(),
	}, nil
}

// CompareVersions analyzes the differences between two versions of a text.
func (r *Reviewer) CompareVersions(ctx context.Context, original, revised string) (string, error) {
	prompt := fmt.Sprintf(`Compare these two versions of content and analyze the changes:

ORIGINAL VERSION:
%s

REVISED VERSION:
%s

Please provide:
1. **Summary of Changes** - What was modified
2. **Improvements Made** - How the revision is better
3. **Quality Assessment** - Overall impact of changes
4. **Recommendation** - Which version is better and why

Focus on content quality, clarity, and effectiveness.`, original, revised)

	comparison, err := r.thinkAs(ctx,
		"You are an expert at comparing document versions and identifying improvements.",
		prompt, 0.3, 1200)
	if err != nil {
		return "", fmt.Errorf("compare versions: %w", err)
	}

	return fmt.Sprintf(`# 🔄 Version Comparison Analysis

*Comparison conducted at %s*

%s
`, now(), comparison), nil
}

// Statistics aggregates completed reviews. Pure read, zero-valued on an
// empty history.
func (r *Reviewer) Statistics() ReviewStatistics {
	stats := ReviewStatistics{CriteriaBreakdown: map[string]int{}}

	var strictnessSum int
	today := time.Now()
	for _, entry := range r.history.Snapshot() {
		if entry.Operation != "review" || entry.Status != history.StatusCompleted {
			continue
		}
		stats.TotalReviews++
		strictnessSum += entry.Strictness
		stats.CriteriaBreakdown[entry.Params["criteria"]]++
		if sameDay(entry.CreatedAt, today) {
			stats.ReviewsToday++
		}
		stats.LastReview = entry.CreatedAt
	}
	if stats.TotalReviews > 0 {
		avg := float64(strictnessSum) / float64(stats.TotalReviews)
		stats.AverageStrictness = math.Round(avg*10) / 10
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
