package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	model "github.com/rokhoon/geo-briefing/internal/model/briefing"
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/service/stats"
)

// providerLabels maps provider names to their display headings. Unknown
// providers fall back to their raw name.
var providerLabels = map[string]string{
	"gemini": "✨ Gemini",
	"gpt":    "🤖 GPT",
}

type keywordRow struct {
	Keyword string
	Count   int
}

type brandRow struct {
	Name     string
	Count    int
	Keywords []keywordRow
}

type answerBlock struct {
	Provider string
	Label    string
	HTML     template.HTML
}

type questionBlock struct {
	Number   int
	Question string
	Answers  []answerBlock
}

// reportData is the content model shared by the dashboard and email views.
type reportData struct {
	Brands    []brandRow
	Questions []questionBlock
}

// Renderer turns a briefing result batch plus a competitor snapshot into
// the dashboard and email report views.
type Renderer struct{}

// New returns a report renderer.
func New() *Renderer {
	return &Renderer{}
}

// build assembles the shared content model: the per-brand mention summary
// followed by one block per question with each provider's highlighted
// answer.
func (r *Renderer) build(results []model.Result, competitors []competitor.Competitor) reportData {
	tally := stats.Calculate(results, competitors)

	var keywords []string
	for _, c := range competitors {
		keywords = append(keywords, c.Keywords...)
	}

	data := reportData{}
	for _, c := range competitors {
		bs := tally[c.Name]
		row := brandRow{Name: c.Name, Count: bs.Count}
		for _, kw := range c.Keywords {
			row.Keywords = append(row.Keywords, keywordRow{Keyword: kw, Count: bs.Details[kw]})
		}
		data.Brands = append(data.Brands, row)
	}

	for i, result := range results {
		block := questionBlock{Number: i + 1, Question: result.Question}
		for _, name := range sortedProviders(result.Answers) {
			block.Answers = append(block.Answers, answerBlock{
				Provider: name,
				Label:    providerLabel(name),
				HTML:     Highlight(result.Answers[name], keywords),
			})
		}
		data.Questions = append(data.Questions, block)
	}

	return data
}

// Dashboard renders the interactive view fragment.
func (r *Renderer) Dashboard(results []model.Result, competitors []competitor.Competitor) (template.HTML, error) {
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, r.build(results, competitors)); err != nil {
		return "", fmt.Errorf("render dashboard report: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Email renders the full HTML email body for the same content.
func (r *Renderer) Email(results []model.Result, competitors []competitor.Competitor) (string, error) {
	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, r.build(results, competitors)); err != nil {
		return "", fmt.Errorf("render email report: %w", err)
	}
	return buf.String(), nil
}

func providerLabel(name string) string {
	if label, ok := providerLabels[name]; ok {
		return label
	}
	return name
}

func sortedProviders(answers map[string]string) []string {
	names := make([]string, 0, len(answers))
	for name := range answers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrendSeries is one brand's mention counts across the archive, oldest
// first. Dashed alternates per brand so adjacent chart lines stay
// distinguishable when many brands are tracked.
type TrendSeries struct {
	Brand  string `json:"brand"`
	Counts []int  `json:"counts"`
	Dashed bool   `json:"dashed"`
}

// Trend is a date-labeled multi-line chart of per-brand mention counts.
type Trend struct {
	Labels []string      `json:"labels"`
	Series []TrendSeries `json:"series"`
}

// BuildTrend recomputes stats for every archived run using that run's own
// competitor snapshot, so each point reflects the configuration active when
// the briefing happened. Entries arrive newest-first from the store and are
// charted oldest to newest.
func BuildTrend(entries []model.Entry) Trend {
	ordered := make([]model.Entry, len(entries))
	for i, e := range entries {
		ordered[len(entries)-1-i] = e
	}

	trend := Trend{}
	var brandOrder []string
	seen := make(map[string]bool)
	counts := make(map[string][]int)

	for _, entry := range ordered {
		trend.Labels = append(trend.Labels, dateLabel(entry.Timestamp))
		for _, c := range entry.Competitors {
			if !seen[c.Name] {
				seen[c.Name] = true
				brandOrder = append(brandOrder, c.Name)
			}
		}
	}

	for i, entry := range ordered {
		tally := stats.Calculate(entry.Results, entry.Competitors)
		for _, brand := range brandOrder {
			if counts[brand] == nil {
				counts[brand] = make([]int, len(ordered))
			}
			if bs, ok := tally[brand]; ok {
				counts[brand][i] = bs.Count
			}
		}
	}

	for i, brand := range brandOrder {
		trend.Series = append(trend.Series, TrendSeries{
			Brand:  brand,
			Counts: counts[brand],
			Dashed: i%2 == 1,
		})
	}

	return trend
}

func dateLabel(timestamp string) string {
	if idx := strings.IndexByte(timestamp, ' '); idx > 0 {
		return timestamp[:idx]
	}
	return timestamp
}
