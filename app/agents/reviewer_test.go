package agents

import (
	"context"
	"strings"
	"testing"

	"ContentCrewAI/app/history"
)

func TestReviewAccuracyAtMaxStrictness(t *testing.T) {
	model := fixedModel("The claim is wrong: the sky is not green.")
	r := NewReviewer(model, nil)

	report, err := r.Review(context.Background(), "The sky is green.", "accuracy", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report == "" {
		t.Fatal("expected non-empty report")
	}
	if !strings.Contains(report, "Review Criteria: accuracy | Strictness Level: 9/10") {
		t.Fatalf("metadata header wrong:\n%s", report)
	}

	prompt := model.prompts[0]
	if !strings.Contains(prompt, "Verify claims and statistics") {
		t.Fatal("accuracy guidance block not selected")
	}
	if !strings.Contains(prompt, "Be extremely thorough and identify even minor issues") {
		t.Fatal("max strictness band not selected")
	}

	snap := r.History().Snapshot()
	if len(snap) != 1 || snap[0].Params["criteria"] != "accuracy" || snap[0].Strictness != 9 {
		t.Fatalf("unexpected history entry: %+v", snap)
	}
	if snap[0].WordCount != 4 {
		t.Fatalf("content length not recorded: %+v", snap[0])
	}
}

func TestReviewUnknownCriteriaFallsBack(t *testing.T) {
	model := fixedModel("fine")
	r := NewReviewer(model, nil)

	if _, err := r.Review(context.Background(), "text", "vibes", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(model.prompts[0], "Conduct a full content review") {
		t.Fatal("comprehensive guidance not selected for unknown criteria")
	}
	if r.History().Snapshot()[0].Params["criteria"] != "comprehensive" {
		t.Fatal("history should record the effective criteria")
	}
}

func TestStrictnessGuidanceBands(t *testing.T) {
	cases := []struct {
		strictness int
		want       string
	}{
		{1, "very lenient"},
		{3, "very lenient"},
		{4, "moderate standards"},
		{6, "moderate standards"},
		{7, "high standards"},
		{8, "high standards"},
		{9, "extremely thorough"},
		{10, "extremely thorough"},
	}
	for _, cse := range cases {
		if got := StrictnessGuidance(cse.strictness); !strings.Contains(got, cse.want) {
			t.Fatalf("strictness %d: got %q, want %q", cse.strictness, got, cse.want)
		}
	}
}

func TestReviewStatistics(t *testing.T) {
	r := NewReviewer(fixedModel("ok"), nil)

	empty := r.Statistics()
	if empty.TotalReviews != 0 || empty.AverageStrictness != 0 || empty.ReviewsToday != 0 {
		t.Fatalf("expected zero-valued stats, got %+v", empty)
	}
	if len(empty.CriteriaBreakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", empty.CriteriaBreakdown)
	}

	reviews := []struct {
		criteria   string
		strictness int
	}{
		{"accuracy", 9},
		{"accuracy", 6},
		{"readability", 5},
	}
	for _, rv := range reviews {
		if _, err := r.Review(context.Background(), "text", rv.criteria, rv.strictness); err != nil {
			t.Fatalf("review: %v", err)
		}
	}

	stats := r.Statistics()
	if stats.TotalReviews != 3 {
		t.Fatalf("expected 3 reviews, got %d", stats.TotalReviews)
	}
	if stats.AverageStrictness != 6.7 {
		t.Fatalf("expected average 6.7, got %v", stats.AverageStrictness)
	}
	if stats.CriteriaBreakdown["accuracy"] != 2 || stats.CriteriaBreakdown["readability"] != 1 {
		t.Fatalf("unexpected breakdown: %+v", stats.CriteriaBreakdown)
	}
	if stats.ReviewsToday != 3 {
		t.Fatalf("expected all reviews counted for today, got %d", stats.ReviewsToday)
	}
	if stats.LastReview.IsZero() {
		t.Fatal("last review not recorded")
	}
}

func TestFactCheck(t *testing.T) {
	r := NewReviewer(fixedModel("Claim 1: Accurate"), nil)

	result, err := r.FactCheck(context.Background(), "Water boils at 100C.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Analysis != "Claim 1: Accurate" || result.Status != "completed" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.CheckedAt.IsZero() {
		t.Fatal("timestamp missing")
	}
	if r.History().Len() != 0 {
		t.Fatal("fact check must not log history")
	}
}

func TestQualityScoreIsUnscored(t *testing.T) {
	r := NewReviewer(fixedModel("Clarity: strong. Depth: thin."), nil)

	report, err := r.QualityScore(context.Background(), "some content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Scored {
		t.Fatal("quality report must mark numeric scores unavailable")
	}
	if report.Analysis == "" || report.AssessedAt.IsZero() {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestSuggestImprovementsDefaultFocus(t *testing.T) {
	model := fixedModel("suggestions")
	r := NewReviewer(model, nil)

	out, err := r.SuggestImprovements(context.Background(), "text", "sparkle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Focus Area: Overall") {
		t.Fatalf("unknown focus should fall back to overall:\n%s", out)
	}
	if r.History().Len() != 0 {
		t.Fatal("suggestions must not log history")
	}
}

func TestCompareVersions(t *testing.T) {
	r := NewReviewer(fixedModel("revised version is clearer"), nil)

	out, err := r.CompareVersions(context.Background(), "v1 text", "v2 text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Version Comparison Analysis") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "revised version is clearer") {
		t.Fatal("analysis missing")
	}
}

func TestReviewFailureIsLogged(t *testing.T) {
	r := NewReviewer(failingModel(context.DeadlineExceeded), nil)

	if _, err := r.Review(context.Background(), "text", "accuracy", 7); err == nil {
		t.Fatal("expected error")
	}
	snap := r.History().Snapshot()
	if len(snap) != 1 || snap[0].Status != history.StatusFailed {
		t.Fatalf("failed review not logged: %+v", snap)
	}
	if r.Statistics().TotalReviews != 0 {
		t.Fatal("failed review must not count")
	}
}
