package htmlreport

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/IgorBayerl/linereader/internal/reporter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	reportTitle = "Line Report"
	reportStyle = `body{font-family:sans-serif}` +
		`ol.lines{font-family:monospace}` +
		`ol.lines li{white-space:pre}` +
		`table{border-collapse:collapse}` +
		`td,th{border:1px solid #ccc;padding:2px 8px;text-align:left}`
)

// HtmlReportBuilder renders a standalone HTML document.
type HtmlReportBuilder struct {
	Title string
}

func init() {
	reporter.RegisterBuilder(NewHtmlReportBuilder(reportTitle))
}

// NewHtmlReportBuilder creates a builder whose document uses the given title.
func NewHtmlReportBuilder(title string) reporter.Builder {
	if title == "" {
		title = reportTitle
	}
	return &HtmlReportBuilder{Title: title}
}

func (b *HtmlReportBuilder) Name() string {
	return "html"
}

// CreateReport builds the document as a node tree and renders it, so every
// line is escaped by the renderer. Each file becomes a <section> holding an
// ordered list of its lines; in count mode a single summary table is written.
func (b *HtmlReportBuilder) CreateReport(w io.Writer, files []reporter.FileLines, opts reporter.Options) error {
	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), b.Title))

	if opts.CountOnly {
		body.AppendChild(countTable(files))
	} else {
		for _, f := range files {
			body.AppendChild(fileSection(f))
		}
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, html.Attribute{Key: "lang", Val: "en"})
	root.AppendChild(head(b.Title))
	root.AppendChild(body)
	doc.AppendChild(root)

	bw := bufio.NewWriter(w)
	if err := html.Render(bw, doc); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	bw.WriteString("\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write html report: %w", err)
	}
	return nil
}

func head(title string) *html.Node {
	n := element(atom.Head)
	n.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	n.AppendChild(withText(element(atom.Title), title))
	n.AppendChild(withText(element(atom.Style), reportStyle))
	return n
}

func fileSection(f reporter.FileLines) *html.Node {
	section := element(atom.Section)
	section.AppendChild(withText(element(atom.H2), f.Path))
	section.AppendChild(withText(element(atom.P), fmt.Sprintf("%d lines", f.Count)))

	list := element(atom.Ol, html.Attribute{Key: "class", Val: "lines"})
	for _, line := range f.Lines {
		list.AppendChild(withText(element(atom.Li), line))
	}
	section.AppendChild(list)
	return section
}

func countTable(files []reporter.FileLines) *html.Node {
	table := element(atom.Table)

	header := element(atom.Tr)
	header.AppendChild(withText(element(atom.Th), "File"))
	header.AppendChild(withText(element(atom.Th), "Lines"))
	table.AppendChild(header)

	for _, f := range files {
		row := element(atom.Tr)
		row.AppendChild(withText(element(atom.Td), f.Path))
		row.AppendChild(withText(element(atom.Td), strconv.Itoa(f.Count)))
		table.AppendChild(row)
	}
	return table
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
