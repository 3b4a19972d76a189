package models

// Resolution is a human reviewer's decision on an escalation item.
type Resolution string

const (
	ResolutionApproved          Resolution = "approved"
	ResolutionApprovedWithEdits Resolution = "approved_with_edits"
	ResolutionRequestReanalysis Resolution = "request_reanalysis"
	ResolutionRejected          Resolution = "rejected"
)

// IsValid checks if the resolution is valid.
func (r Resolution) IsValid() bool {
	switch r {
	case ResolutionApproved, ResolutionApprovedWithEdits, ResolutionRequestReanalysis, ResolutionRejected:
		return true
	default:
		return false
	}
}

// SpecificIssue pinpoints one problem in the analysis or draft.
type SpecificIssue struct {
	Location        string `json:"location"` // e.g. "pass2.motivation_analysis.primary_driver"
	Description     string `json:"description"`
	SuggestedAction string `json:"suggested_action,omitempty"`
}

// ReviewPackage is everything a human reviewer needs, snapshotted at
// escalation time.
type ReviewPackage struct {
	Draft            string                 `json:"draft,omitempty"`
	SpecificIssues   []SpecificIssue        `json:"specific_issues"`
	SourceDocRefs    []string               `json:"source_doc_refs,omitempty"`
	AnalysisChain    map[string]interface{} `json:"analysis_chain"`
	DebateTranscript *Transcript            `json:"debate_transcript,omitempty"`
	SuggestedActions []string               `json:"suggested_actions,omitempty"`
}
