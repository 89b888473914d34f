// Package export renders breakpoint registries into distributable artifacts:
// a hide-rule stylesheet, a machine-readable query dump, and band diagrams.
//
// This file implements the CSS and JSON renderers.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/mediaband/pkg/mediaquery"
)

// Stylesheet renders the full hide-rule stylesheet. Each exported rule hides
// elements carrying its class at every width outside the directive's visible
// range; the negation is already baked into the rule conditions, so this
// only wraps them in @media blocks.
func Stylesheet(reg *mediaquery.Registry) string {
	var b strings.Builder
	b.WriteString("/* Generated by mband. Do not edit. */\n")
	for _, rule := range reg.RuleSets() {
		fmt.Fprintf(&b, "@media %s{.%s{display:none!important;}}\n", rule.Conditions, rule.ClassName)
	}
	return b.String()
}

// QueryDump is the machine-readable export of everything a consumer needs to
// reproduce the registry's decisions without recomputing them.
type QueryDump struct {
	Breakpoints map[string]int             `json:"breakpoints"`
	Sorted      []string                   `json:"sorted"`
	Largest     string                     `json:"largest"`
	Queries     []mediaquery.CompiledQuery `json:"queries"`
	Rules       []ruleEntry                `json:"rules"`
}

type ruleEntry struct {
	ClassName  string `json:"class_name"`
	Conditions string `json:"conditions"`
}

// QueriesJSON renders the registry as indented JSON. Output is byte-stable
// for a given breakpoint set.
func QueriesJSON(reg *mediaquery.Registry) ([]byte, error) {
	dump := QueryDump{
		Breakpoints: reg.Widths(),
		Sorted:      reg.SortedNames(),
		Largest:     reg.Largest(),
		Queries:     reg.Queries(),
	}
	for _, rule := range reg.RuleSets() {
		dump.Rules = append(dump.Rules, ruleEntry{
			ClassName:  rule.ClassName,
			Conditions: rule.Conditions,
		})
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query dump: %w", err)
	}
	return append(data, '\n'), nil
}
