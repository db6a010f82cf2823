package format

import (
	"fmt"
	"strings"
	"unicode"
)

// placeholder substitutes characters that no target grammar defines
// (control characters). The substitution is surfaced through OnWarning,
// never applied silently.
const placeholder = "?"

// sanitize replaces control characters in a label with the placeholder
// and reports the substitution. Tabs count as control characters here;
// neither grammar gives them meaning inside a label.
func sanitize(label string, opts Options, what string) string {
	if !strings.ContainsFunc(label, unicode.IsControl) {
		return label
	}
	opts.warn(fmt.Sprintf("%s %q contains control characters; substituted %q", what, label, placeholder))
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return rune(placeholder[0])
		}
		return r
	}, label)
}

// mermaidEscaper neutralizes characters with special meaning in Mermaid
// labels using Mermaid's numeric entity codes, which render back as the
// original character. '#' is escaped too so existing text can never form
// an accidental entity.
var mermaidEscaper = strings.NewReplacer(
	"#", "#35;",
	`"`, "#quot;",
	"|", "#124;",
	"[", "#91;",
	"]", "#93;",
	"{", "#123;",
	"}", "#125;",
	"(", "#40;",
	")", "#41;",
)

func escapeMermaid(label string, opts Options, what string) string {
	return mermaidEscaper.Replace(sanitize(label, opts, what))
}

// d2Escaper neutralizes characters with special meaning inside a D2
// double-quoted label.
var d2Escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

func escapeD2(label string, opts Options, what string) string {
	return d2Escaper.Replace(sanitize(label, opts, what))
}
