package merge

// DiagnosticKind says which policy produced a diagnostic.
type DiagnosticKind string

const (
	// DiagnosticDelta is emitted when both sides' changes were added up.
	DiagnosticDelta DiagnosticKind = "delta"
	// DiagnosticMax is emitted when a delta merge had no ancestor.
	DiagnosticMax DiagnosticKind = "max"
	// DiagnosticDropped is emitted when an item found no free slot.
	DiagnosticDropped DiagnosticKind = "dropped"
)

// Diagnostic is an advisory note about a merge decision. Diagnostics never
// change the merge outcome.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Field   string         `json:"field"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return "merging " + d.Field + ": " + d.Message
}

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Collector keeps every diagnostic it receives.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

func report(r Reporter, d Diagnostic) {
	if r != nil {
		r.Report(d)
	}
}
