package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/hnfeed"
	"golang.org/x/net/html"
)

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var listTags = map[string]bool{"ol": true, "ul": true}

var _ hnfeed.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor builds sanitized article HTML. Hosts with a configured
// filter rule are extracted by classifying and re-rendering the rule's
// candidate nodes; all other hosts go through the generic fallback
// extractor.
type ContentExtractor struct {
	registry *hnfeed.FilterRegistry
	fallback hnfeed.Extractor
}

// NewContentExtractor creates a ContentExtractor over a read-only filter
// registry and a generic fallback extractor.
func NewContentExtractor(registry *hnfeed.FilterRegistry, fallback hnfeed.Extractor) *ContentExtractor {
	return &ContentExtractor{registry: registry, fallback: fallback}
}

// ExtractContent returns the article body as a sanitized HTML fragment
// wrapped in a single div element.
func (e *ContentExtractor) ExtractContent(rawHTML string, host string) (string, error) {
	rule, ok := e.registry.Lookup(host)
	if !ok {
		return e.extractGeneric(rawHTML)
	}
	return e.extractWithRule(rawHTML, rule)
}

// extractGeneric delegates to the fallback extractor. Its output is
// already boilerplate-free; whitespace runs are collapsed before wrapping.
func (e *ContentExtractor) extractGeneric(rawHTML string) (string, error) {
	result, err := e.fallback.Extract(rawHTML)
	if err != nil {
		return "", err
	}
	return "<div>" + hnfeed.Squish(result.ContentHTML) + "</div>", nil
}

// extractWithRule selects the rule's candidate nodes and re-renders each
// non-excluded one from its text content, in document order.
func (e *ContentExtractor) extractWithRule(rawHTML string, rule hnfeed.FilterRule) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", hnfeed.Errorf(hnfeed.EINVALID, "failed to parse article HTML: %v", err)
	}

	var candidates *goquery.Selection
	if rule.ChildrenOf != "" {
		candidates = doc.Find(rule.ChildrenOf).Children()
	} else {
		candidates = doc.Find(strings.Join(rule.Selectors, ", "))
	}

	var b strings.Builder
	b.WriteString("<div>")
	candidates.Each(func(_ int, node *goquery.Selection) {
		b.WriteString(renderNode(node))
	})
	b.WriteString("</div>")

	return b.String(), nil
}

// renderNode classifies a candidate node and returns its replacement
// fragment. Excluded classes render as "". First matching class wins:
// blank, header, footer, script, list, paragraph/heading, code, other.
func renderNode(node *goquery.Selection) string {
	name := goquery.NodeName(node)

	switch {
	case isBlank(node, name), isHeader(node, name), isFooter(node, name), isScript(node, name):
		return ""
	case isList(node, name):
		return renderList(node)
	case name == "p" || headingTags[name]:
		return wrapText(name, node.Text())
	case name == "code":
		return wrapText("code", node.Text())
	default:
		return wrapText("p", node.Text())
	}
}

func isBlank(node *goquery.Selection, name string) bool {
	return strings.TrimSpace(node.Text()) == "" || name == "br"
}

func isHeader(node *goquery.Selection, name string) bool {
	return name == "header" || goquery.NodeName(node.Parent()) == "header"
}

func isFooter(node *goquery.Selection, name string) bool {
	return name == "footer" || goquery.NodeName(node.Parent()) == "footer"
}

func isScript(node *goquery.Selection, name string) bool {
	return name == "script" || node.Find("script").Length() > 0
}

func isList(node *goquery.Selection, name string) bool {
	return listTags[name] || node.Find("ol, ul").Length() > 0
}

// renderList re-renders a list node from its item text, one list-item
// element per source item, wrapped in an unordered list.
func renderList(node *goquery.Selection) string {
	var b strings.Builder
	b.WriteString("<ul>")
	node.Find("li").Each(func(_ int, item *goquery.Selection) {
		b.WriteString(wrapText("li", item.Text()))
	})
	b.WriteString("</ul>")
	return b.String()
}

// wrapText wraps escaped text content in the given tag. Escaping the text
// is what keeps the re-rendered fragment sanitized: no markup from the
// source page survives.
func wrapText(tag, text string) string {
	return "<" + tag + ">" + html.EscapeString(text) + "</" + tag + ">"
}
