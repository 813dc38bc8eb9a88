package agents

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xlab/treeprint"

	"ContentCrewAI/app/history"
	"ContentCrewAI/app/models"
	"ContentCrewAI/app/retrieval"
	"ContentCrewAI/app/storage"
)

const researcherSystemPrompt = `You are an expert research agent specialized in gathering, analyzing, and synthesizing information. Your role is to:

1. Conduct thorough research on given topics
2. Analyze and verify information from multiple sources
3. Synthesize findings into comprehensive, well-structured reports
4. Identify key trends, statistics, and insights
5. Provide actionable recommendations based on research

Always be thorough, accurate, and cite your reasoning. Focus on current, relevant information and emerging trends.`

type Researcher struct {
	agent
	source retrieval.Source
	pause  time.Duration
}

// SourceVerification carries the model's free-text credibility judgment.
// Scored stays false: no numeric score is parsed out of the analysis, and
// none is fabricated.
type SourceVerification struct {
	Analysis         string
	VerifiedSources  int
	CredibilityScore float64
	Scored           bool
	VerifiedAt       time.Time
}

// AspectFinding is one deep-dive item: either an analysis or the error
// that aspect ran into. One aspect failing never discards the others.
type AspectFinding struct {
	Aspect   string
	Analysis string
	Err      error
}

func NewResearcher(model models.Interface, source retrieval.Source, archive storage.Interface, pause time.Duration) *Researcher {
	if source == nil {
		source = retrieval.Static{}
	}
	if pause <= 0 {
		pause = 500 * time.Millisecond
	}
	return &Researcher{
		agent: agent{
			name: "Research Agent",
			capabilities: []string{
				"Web search and scraping",
				"AI-powered data analysis",
				"Information synthesis",
				"Source verification and fact-checking",
			},
			systemPrompt: researcherSystemPrompt,
			model:        model,
			history:      history.New(archive),
		},
		source: source,
		pause:  pause,
	}
}

// Research runs a full session: plan, gather material, synthesize a report.
// Both the success and the failure of a session are logged.
func (r *Researcher) Research(ctx context.Context, topic string, depth int) (string, error) {
	params := map[string]string{"topic": topic, "depth": fmt.Sprintf("%d", depth)}

	plan, err := r.createPlan(ctx, topic, depth)
	if err != nil {
		r.logTask(ctx, history.Entry{Operation: "research", Params: params, Status: history.StatusFailed})
		return "", fmt.Errorf("research %q: create plan: %w", topic, err)
	}

	material, err := r.source.Gather(ctx, topic)
	if err != nil {
		r.logTask(ctx, history.Entry{Operation: "research", Params: params, Status: history.StatusFailed})
		return "", fmt.Errorf("research %q: gather material: %w", topic, err)
	}

	report, err := r.synthesize(ctx, topic, plan, material)
	if err != nil {
		r.logTask(ctx, history.Entry{Operation: "research", Params: params, Status: history.StatusFailed})
		return "", fmt.Errorf("research %q: synthesize: %w", topic, err)
	}

	params["plan"] = plan
	r.logTask(ctx, history.Entry{
		Operation: "research",
		Params:    params,
		WordCount: wordCount(report),
		Status:    history.StatusCompleted,
	})

	if indexer, ok := r.source.(retrieval.Indexer); ok {
		if err = indexer.Index(ctx, topic, report); err != nil {
			log.Printf("⚠️ Error indexing report for topic %q: %v", topic, err)
		}
	}

	return report, nil
}

func (r *Researcher) createPlan(ctx context.Context, topic string, depth int) (string, error) {
	prompt := fmt.Sprintf(`Create a structured research plan for the topic: %q

Research depth level: %d/10

Please provide:
1. Key research questions to investigate
2. Important subtopics to explore
3. Types of sources to prioritize
4. Specific data points to look for
5. Potential challenges or limitations

Format as a clear, actionable research plan.`, topic, depth)

	return r.think(ctx, prompt, 0.7, 800)
}

func (r *Researcher) synthesize(ctx context.Context, topic, plan, material string) (string, error) {
	prompt := fmt.Sprintf(`Based on the research plan and gathered data, create a comprehensive research report.

TOPIC: %s

RESEARCH PLAN:
%s

GATHERED DATA:
%s

Please create a well-structured research report including:
1. Executive Summary
2. Key Findings
3. Statistical Insights
4. Current Trends and Patterns
5. Challenges and Opportunities
6. Actionable Recommendations
7. Data Sources and Methodology

Format the report in clear markdown with proper headings and bullet points.`, topic, plan, material)

	// lower temperature keeps the synthesis factual
	report, err := r.think(ctx, prompt, 0.3, 1500)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`# 🔍 Research Report: %s

*Generated by %s at %s*

%s

---
**Research Metadata:**
- Sources Consulted: see Data Sources and Methodology
- Last Updated: %s
`, topic, r.name, now(), report, now()), nil
}

// VerifySources asks for a credibility judgment over the given source
// descriptors.
func (r *Researcher) VerifySources(ctx context.Context, sources []string) (*SourceVerification, error) {
	var list string
	for _, source := range sources {
		list += fmt.Sprintf("- %s\n", source)
	}

	prompt := fmt.Sprintf(`Analyze these sources for credibility and reliability:

%s
Provide:
- source quality breakdown
- recommendations for improvement
- potential bias indicators`, list)

	analysis, err := r.thinkAs(ctx,
		"You are an expert at evaluating source credibility and reliability.",
		prompt, 0.2, 0)
	if err != nil {
		return nil, fmt.Errorf("verify sources: %w", err)
	}

	return &SourceVerification{
		Analysis:        analysis,
		VerifiedSources: len(sources),
		VerifiedAt:      time.Now(),
	}, nil
}

// DeepDive researches each aspect in turn, pausing between generation calls
// to self-throttle. Findings are collected per aspect; context cancellation
// aborts the loop and returns what was gathered so far.
func (r *Researcher) DeepDive(ctx context.Context, topic string, aspects []string) ([]AspectFinding, error) {
	findings := make([]AspectFinding, 0, len(aspects))

	for i, aspect := range aspects {
		if i > 0 {
			select {
			case <-ctx.Done():
				return findings, ctx.Err()
			case <-time.After(r.pause):
			}
		}

		prompt := fmt.Sprintf(`Conduct deep research on this specific aspect: %q in the context of the broader topic: %q

Provide detailed analysis including:
- Current state and recent developments
- Key statistics and metrics
- Industry trends and patterns
- Challenges and opportunities
- Expert opinions and insights`, aspect, topic)

		analysis, err := r.think(ctx, prompt, 0.4, 600)
		if err != nil {
			if ctx.Err() != nil {
				return findings, ctx.Err()
			}
			log.Printf("⚠️ Deep dive aspect %q failed: %v", aspect, err)
			findings = append(findings, AspectFinding{Aspect: aspect, Err: fmt.Errorf("deep dive aspect %q: %w", aspect, err)})
			continue
		}
		findings = append(findings, AspectFinding{Aspect: aspect, Analysis: analysis})
	}

	return findings, nil
}

// Summary renders the last three completed research sessions as a tree.
// Pure read, no generation call.
func (r *Researcher) Summary() string {
	recent := r.history.RecentCompleted(3)
	if len(recent) == 0 {
		return "No research conducted yet."
	}

	tree := treeprint.New()
	tree.SetValue("Recent Research Activity")
	for i, entry := range recent {
		branch := tree.AddBranch(fmt.Sprintf("Session %d: %s", i+1, entry.Params["topic"]))
		branch.AddNode("Completed: " + entry.CreatedAt.Format(timeLayout))
		if depth, ok := entry.Params["depth"]; ok {
			branch.AddNode("Depth: " + depth + "/10")
		}
	}
	return tree.String()
}
