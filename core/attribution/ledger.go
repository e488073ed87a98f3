// ABOUTME: Attribution ledger accumulates license records for downloaded icons
// ABOUTME: Serializes the records to text, JSON, HTML and Markdown

package attribution

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/markdown"

	"svg-icon-library/core/domain"
)

// Export format names accepted by Export.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Ledger accumulates attribution records for icons downloaded during a
// session. It is safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	records []domain.AttributionRecord
	now     func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// Add appends a record to the ledger.
func (l *Ledger) Add(record domain.AttributionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

// AddIcon composes and appends a record for an icon downloaded to filePath.
func (l *Ledger) AddIcon(icon domain.SvgIcon, filePath string) domain.AttributionRecord {
	record := domain.NewAttributionRecord(icon, filePath, l.now())
	l.Add(record)
	return record
}

// All returns a copy of the tracked records in insertion order.
func (l *Ledger) All() []domain.AttributionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.AttributionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of tracked records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Export serializes the ledger in the requested format.
func (l *Ledger) Export(format string) (string, error) {
	switch format {
	case FormatText:
		return l.ExportText(), nil
	case FormatJSON:
		return l.ExportJSON()
	case FormatHTML:
		return l.ExportHTML()
	case FormatMarkdown:
		return l.ExportMarkdown()
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

// ExportText renders the records as plain text.
func (l *Ledger) ExportText() string {
	var b strings.Builder
	b.WriteString("SVG Icon Attributions\n")
	b.WriteString(strings.Repeat("=", 20) + "\n\n")

	for _, attr := range l.All() {
		fmt.Fprintf(&b, "Icon: %s\n", attr.IconName)
		fmt.Fprintf(&b, "Provider: %s\n", attr.Provider)
		fmt.Fprintf(&b, "License: %s\n", attr.License)
		fmt.Fprintf(&b, "Attribution: %s\n", attr.AttributionText)
		fmt.Fprintf(&b, "URL: %s\n", attr.URL)
		fmt.Fprintf(&b, "Imported: %s\n", attr.ImportedDate.Format(time.RFC3339))
		b.WriteString("\n")
	}

	return b.String()
}

// jsonExport is the JSON export envelope.
type jsonExport struct {
	ExportedDate time.Time                  `json:"exported_date"`
	TotalIcons   int                        `json:"total_icons"`
	Attributions []domain.AttributionRecord `json:"attributions"`
}

// ExportJSON renders the records as an indented JSON document.
func (l *Ledger) ExportJSON() (string, error) {
	records := l.All()
	payload := jsonExport{
		ExportedDate: l.now(),
		TotalIcons:   len(records),
		Attributions: records,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var htmlExportTemplate = template.Must(template.New("attributions").Parse(`<!DOCTYPE html>
<html>
<head>
<title>SVG Icon Attributions</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
.attribution { border: 1px solid #ddd; padding: 10px; margin: 10px 0; }
.icon-name { font-weight: bold; color: #333; }
.provider { color: #666; }
.license { background: #f5f5f5; padding: 2px 5px; border-radius: 3px; }
</style>
</head>
<body>
<h1>SVG Icon Attributions</h1>
{{range .}}<div class="attribution">
<div class="icon-name">{{.IconName}}</div>
<div class="provider">Provider: {{.Provider}}</div>
<div class="license">License: {{.License}}</div>
<div>Attribution: {{.AttributionText}}</div>
<div><a href="{{.URL}}">Source URL</a></div>
<div>Imported: {{.ImportedDate.Format "2006-01-02 15:04:05"}}</div>
</div>
{{end}}</body>
</html>
`))

// ExportHTML renders the records as a standalone HTML document.
func (l *Ledger) ExportHTML() (string, error) {
	var buf bytes.Buffer
	if err := htmlExportTemplate.Execute(&buf, l.All()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportMarkdown renders the records as a Markdown document with one
// summary table, suitable for dropping into a project README or docs tree.
func (l *Ledger) ExportMarkdown() (string, error) {
	records := l.All()

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("SVG Icon Attributions")
	md.PlainText("")

	if len(records) == 0 {
		md.PlainText("No icons imported.")
		return md.String(), md.Build()
	}

	rows := make([][]string, len(records))
	for i, attr := range records {
		source := "-"
		if attr.URL != "" {
			source = fmt.Sprintf("[source](%s)", attr.URL)
		}
		rows[i] = []string{
			attr.IconName,
			attr.Provider,
			attr.License,
			attr.AttributionText,
			source,
			attr.ImportedDate.Format("2006-01-02"),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Icon", "Provider", "License", "Attribution", "Source", "Imported"},
		Rows:   rows,
	})

	return md.String(), md.Build()
}
