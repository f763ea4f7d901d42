package report

import (
	"html/template"
	"sort"
	"strings"
	"unicode/utf8"
)

// Highlight HTML-escapes text and wraps every keyword occurrence in a
// <mark> element. Keywords are tried longest-first at each position so a
// multi-word brand term is highlighted whole instead of being split by a
// shorter overlapping keyword.
func Highlight(text string, keywords []string) template.HTML {
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	sort.SliceStable(kws, func(i, j int) bool { return len(kws[i]) > len(kws[j]) })

	var out strings.Builder
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			out.WriteString(template.HTMLEscapeString(plain.String()))
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		matched := ""
		for _, kw := range kws {
			if strings.HasPrefix(text[i:], kw) {
				matched = kw
				break
			}
		}
		if matched != "" {
			flush()
			out.WriteString("<mark>")
			out.WriteString(template.HTMLEscapeString(matched))
			out.WriteString("</mark>")
			i += len(matched)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		plain.WriteString(text[i : i+size])
		i += size
	}
	flush()

	return template.HTML(out.String())
}
