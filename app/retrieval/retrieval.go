// Package retrieval supplies the material-gathering step of a research
// session. Sources are pluggable: the static source stands in for a real
// search integration, the web source scrapes configured pages, and the
// vector source queries previously indexed reports.
package retrieval

import (
	"context"
	"fmt"
)

type Source interface {
	Gather(ctx context.Context, topic string) (string, error)
}

// Indexer is implemented by sources that can absorb finished reports for
// later gathering.
type Indexer interface {
	Index(ctx context.Context, topic, report string) error
}

var _ Source = Static{}

// Static returns fixed multi-source material for any topic.
type Static struct{}

func (Static) Gather(_ context.Context, topic string) (string, error) {
	return fmt.Sprintf(`Web Search Results for: %s

Source 1: Industry Report 2026
- Recent market analysis shows significant growth trends
- Key statistics: 40%% year-over-year increase in adoption
- Major players are investing heavily in R&D
- Regulatory environment is becoming more supportive

Source 2: Academic Research Paper
- Peer-reviewed study published in leading journal
- Methodology: Survey of 500+ industry professionals
- Findings: Implementation challenges still exist but decreasing
- Future outlook: Positive with sustained growth expected

Source 3: News Articles (Last 30 days)
- 3 major announcements from industry leaders
- New partnerships and collaborations emerging
- Government policy changes supporting development
- Consumer sentiment surveys show increased interest

Source 4: Technical Documentation
- Latest best practices and implementation guides
- Common pitfalls and how to avoid them
- Performance benchmarks and case studies
- Integration patterns with existing systems

Data Points Collected:
- Market size estimates and CAGR projections
- Key demographics and user segments
- Geographic distribution and regional trends
- Technology adoption lifecycle stage: Early majority
`, topic), nil
}
