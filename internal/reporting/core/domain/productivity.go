package domain

import "strings"

// ProductivityClass tells which output buckets a function name falls into.
// A function can land in both buckets at once.
type ProductivityClass struct {
	Quotation bool
	Report    bool
}

// Classifier buckets a system function name into productivity categories.
// It is injected into the aggregation layer so the heuristic can be swapped
// for an exact taxonomy later without touching the grouping code.
type Classifier func(systemFunction string) ProductivityClass

// ClassifyFunction is the default heuristic: case-sensitive substring match
// on the function name. Intentionally loose, a proxy for "this interaction
// produced billable sales or report output" — keep the substring semantics.
func ClassifyFunction(systemFunction string) ProductivityClass {
	return ProductivityClass{
		Quotation: strings.Contains(systemFunction, "quotation") || strings.Contains(systemFunction, "proposal"),
		Report:    strings.Contains(systemFunction, "report"),
	}
}
