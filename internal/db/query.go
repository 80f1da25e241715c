package db

import (
	"fmt"
	"strings"
)

// Query string helpers for FT.SEARCH (dialect 2). All user-supplied tokens
// are escaped so query-syntax characters and wildcards match literally.

// TagIn builds a tag set filter: @field:{a|b|c}.
func TagIn(field string, values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = tagEscaper.Replace(v)
	}
	return fmt.Sprintf("@%s:{%s}", field, strings.Join(escaped, "|"))
}

// TagIs builds an exact single-tag filter: @field:{value}.
func TagIs(field, value string) string {
	return TagIn(field, []string{value})
}

// Contains builds an infix wildcard match on a TEXT field: @field:(*token*).
func Contains(field, token string) string {
	return fmt.Sprintf("@%s:(*%s*)", field, EscapeToken(token))
}

// TagContains builds an infix wildcard match on a TAG field: @field:{*token*}.
func TagContains(field, token string) string {
	return fmt.Sprintf("@%s:{*%s*}", field, tagEscaper.Replace(token))
}

// NumLT builds an exclusive upper-bound numeric filter.
func NumLT(field string, v float64) string {
	return fmt.Sprintf("@%s:[-inf (%g]", field, v)
}

// NumGT builds an exclusive lower-bound numeric filter.
func NumGT(field string, v float64) string {
	return fmt.Sprintf("@%s:[(%g +inf]", field, v)
}

// NumBetween builds an inclusive range numeric filter.
func NumBetween(field string, min, max float64) string {
	return fmt.Sprintf("@%s:[%g %g]", field, min, max)
}

// Or joins expressions into a should-group: (a | b). Empty parts are
// dropped; a single part is returned as-is.
func Or(parts ...string) string {
	kept := keep(parts)
	if len(kept) == 0 {
		return ""
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return "(" + strings.Join(kept, " | ") + ")"
}

// And joins expressions into a must-group separated by spaces.
func And(parts ...string) string {
	return strings.Join(keep(parts), " ")
}

func keep(parts []string) []string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}

// EscapeToken escapes FT.SEARCH query syntax in a user token so it is
// matched literally, including wildcard operators.
func EscapeToken(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
	`_`, `\_`,
	`:`, `\:`,
	`,`, `\,`,
	` `, `\ `,
)

var tagEscaper = strings.NewReplacer(
	`,`, `\,`,
	`.`, `\.`,
	`<`, `\<`,
	`>`, `\>`,
	`{`, `\{`,
	`}`, `\}`,
	`"`, `\"`,
	`'`, `\'`,
	`:`, `\:`,
	`;`, `\;`,
	`!`, `\!`,
	`@`, `\@`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`^`, `\^`,
	`&`, `\&`,
	`*`, `\*`,
	`?`, `\?`,
	`(`, `\(`,
	`)`, `\)`,
	`-`, `\-`,
	`+`, `\+`,
	`=`, `\=`,
	`~`, `\~`,
	`|`, `\|`,
	` `, `\ `,
)
