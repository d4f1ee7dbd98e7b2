package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/robot-taxonomy/internal/classifier"
	"github.com/Veraticus/robot-taxonomy/internal/explore"
	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// TaxonomyView is the read side of a taxonomy registry.
type TaxonomyView interface {
	Categories(level model.Level) []model.Category
}

// tableWriter collects the first write error so renderers can write rows
// without checking each one.
type tableWriter struct {
	tw  *tabwriter.Writer
	err error
}

func newTableWriter(w io.Writer) *tableWriter {
	return &tableWriter{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *tableWriter) row(cells ...string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *tableWriter) header(cells ...string) {
	styled := make([]string, len(cells))
	rule := make([]string, len(cells))
	for i, c := range cells {
		styled[i] = HeaderStyle.Render(c)
		rule[i] = strings.Repeat("-", len(c))
	}
	t.row(styled...)
	t.row(rule...)
}

func (t *tableWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.tw, s)
}

func (t *tableWriter) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.tw.Flush()
}

// RenderSummary writes one frequency table per level, most common first.
func RenderSummary(w io.Writer, s classifier.Summary) error {
	t := newTableWriter(w)

	t.line(FormatTitle("Taxonomy summary"))
	t.line(fmt.Sprintf("Robots classified: %d", s.Total))
	if s.Skipped > 0 {
		t.line(WarningStyle.Render(fmt.Sprintf("Records skipped: %d", s.Skipped)))
	}

	for _, level := range model.Levels() {
		counts := s.MostCommon(level)
		total := 0
		for _, c := range counts {
			total += c.Count
		}

		t.line("")
		t.header(level.String(), "Count", "Share")
		if len(counts) == 0 {
			t.row(SubtleStyle.Render("(none)"), "0", "-")
			continue
		}
		for _, c := range counts {
			t.row(c.Label, fmt.Sprintf("%d", c.Count), fmt.Sprintf("%.1f%%", 100*float64(c.Count)/float64(total)))
		}
	}

	return t.flush()
}

// RenderTaxonomy lists the categories of each level with their descriptions
// and keywords.
func RenderTaxonomy(w io.Writer, tax TaxonomyView, levels []model.Level) error {
	t := newTableWriter(w)

	for i, level := range levels {
		if i > 0 {
			t.line("")
		}
		t.line(LevelStyle(level).Render(level.String() + " Level"))
		t.header("Category", "Description", "Keywords")
		for _, cat := range tax.Categories(level) {
			desc := cat.Description
			if desc == "" {
				desc = SubtleStyle.Render("(no description)")
			}
			keywords := SubtleStyle.Render("(none)")
			if len(cat.Keywords) > 0 {
				keywords = strings.Join(cat.Keywords, ", ")
			}
			t.row(cat.Name, desc, keywords)
		}
	}

	return t.flush()
}

// RenderRuns lists stored runs.
func RenderRuns(w io.Writer, runs []model.RunInfo) error {
	t := newTableWriter(w)

	t.header("ID", "Created", "Source", "Records", "Skipped")
	for _, r := range runs {
		t.row(
			r.ID,
			r.CreatedAt.Local().Format(time.DateTime),
			r.Source,
			fmt.Sprintf("%d", r.RecordCount),
			fmt.Sprintf("%d", r.Skipped),
		)
	}

	return t.flush()
}

// RenderRecords lists classified records with their main labels.
func RenderRecords(w io.Writer, records []model.ClassifiedRecord) error {
	t := newTableWriter(w)

	t.header("Name", "Domain", "Kingdom", "Phylum", "Class", "Species")
	for _, r := range records {
		t.row(r.Name, r.Domain, r.Kingdom, r.Phylum, r.Class, strings.Join(r.Species, ", "))
	}

	return t.flush()
}

// RenderMatches lists similarity matches with their scores.
func RenderMatches(w io.Writer, matches []explore.Match) error {
	t := newTableWriter(w)

	t.header("Score", "Name", "Kingdom", "Class", "Species")
	for _, m := range matches {
		r := m.Record
		t.row(fmt.Sprintf("%.1f", m.Score), r.Name, r.Kingdom, r.Class, strings.Join(r.Species, ", "))
	}

	return t.flush()
}
