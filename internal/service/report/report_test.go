package report_test

import (
	"strings"
	"testing"

	model "github.com/rokhoon/geo-briefing/internal/model/briefing"
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/service/report"
)

func TestHighlightPrefersLongestKeyword(t *testing.T) {
	got := string(report.Highlight("I ate Apple Pie", []string{"Apple", "Apple Pie"}))

	if !strings.Contains(got, "<mark>Apple Pie</mark>") {
		t.Fatalf("expected whole-phrase highlight, got %q", got)
	}
	if strings.Contains(got, "<mark>Apple</mark> Pie") {
		t.Fatalf("shorter keyword must not mask the longer one: %q", got)
	}
	if strings.Count(got, "<mark>") != 1 {
		t.Fatalf("expected exactly one highlight, got %q", got)
	}
}

func TestHighlightMarksEveryOccurrence(t *testing.T) {
	got := string(report.Highlight("윙크 is 윙크", []string{"윙크"}))
	if strings.Count(got, "<mark>윙크</mark>") != 2 {
		t.Fatalf("expected both occurrences highlighted, got %q", got)
	}
}

func TestHighlightEscapesHTML(t *testing.T) {
	got := string(report.Highlight("<b>raw</b> and brand", []string{"brand"}))
	if strings.Contains(got, "<b>") {
		t.Fatalf("markup must be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Fatalf("expected escaped markup, got %q", got)
	}
	if !strings.Contains(got, "<mark>brand</mark>") {
		t.Fatalf("expected keyword highlight, got %q", got)
	}
}

func sampleResults() []model.Result {
	return []model.Result{
		{
			Question: "Which service is best for elementary students?",
			Answers: map[string]string{
				"gemini": "Many parents pick 밀크티 for elementary learners.",
				"gpt":    "밀크티 and 홈런 both come up often.",
			},
		},
	}
}

func sampleCompetitors() []competitor.Competitor {
	return []competitor.Competitor{
		{Name: "MilkT", Keywords: []string{"밀크티"}},
		{Name: "HomeRun", Keywords: []string{"홈런"}},
	}
}

func TestEmailIncludesStatsAndHighlights(t *testing.T) {
	body, err := report.New().Email(sampleResults(), sampleCompetitors())
	if err != nil {
		t.Fatalf("Email err: %v", err)
	}

	for _, want := range []string{
		"MilkT", "HomeRun",
		"<mark>밀크티</mark>", "<mark>홈런</mark>",
		"Which service is best for elementary students?",
		"✨ Gemini", "🤖 GPT",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("email body missing %q:\n%s", want, body)
		}
	}
}

func TestDashboardSharesContent(t *testing.T) {
	html, err := report.New().Dashboard(sampleResults(), sampleCompetitors())
	if err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}

	got := string(html)
	for _, want := range []string{"MilkT", "<mark>밀크티</mark>", "✨ Gemini"} {
		if !strings.Contains(got, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, got)
		}
	}
}

func TestBuildTrendUsesStoredSnapshots(t *testing.T) {
	// Newest first, as the history store returns them. The older run
	// tracked only MilkT; the newer one added HomeRun.
	entries := []model.Entry{
		{
			Timestamp: "2026-08-28 09:00:00",
			Results: []model.Result{
				{Question: "q", Answers: map[string]string{"gemini": "밀크티 홈런"}},
			},
			Competitors: []competitor.Competitor{
				{Name: "MilkT", Keywords: []string{"밀크티"}},
				{Name: "HomeRun", Keywords: []string{"홈런"}},
			},
		},
		{
			Timestamp: "2026-08-27 09:00:00",
			Results: []model.Result{
				{Question: "q", Answers: map[string]string{"gemini": "밀크티 홈런"}},
			},
			Competitors: []competitor.Competitor{
				{Name: "MilkT", Keywords: []string{"밀크티"}},
			},
		},
	}

	trend := report.BuildTrend(entries)

	if len(trend.Labels) != 2 || trend.Labels[0] != "2026-08-27" || trend.Labels[1] != "2026-08-28" {
		t.Fatalf("expected oldest-first date labels, got %v", trend.Labels)
	}

	byBrand := map[string][]int{}
	dashed := map[string]bool{}
	for _, s := range trend.Series {
		byBrand[s.Brand] = s.Counts
		dashed[s.Brand] = s.Dashed
	}

	// HomeRun was not tracked on the 27th, so its count there is zero even
	// though the answer text mentioned it.
	if got := byBrand["HomeRun"]; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("unexpected HomeRun series: %v", got)
	}
	if got := byBrand["MilkT"]; len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Fatalf("unexpected MilkT series: %v", got)
	}

	if dashed["MilkT"] == dashed["HomeRun"] {
		t.Fatal("expected alternating line styles across brands")
	}
}
