package processor

// ProcessedProof is the bundle-shaped output for one claim. It is built
// fresh per claim, forwarded once, and discarded.
type ProcessedProof struct {
	Success  bool           `json:"success"`
	Data     map[string]any `json:"data"`
	Metadata Metadata       `json:"metadata"`
}

// Metadata describes the processing outcome.
type Metadata struct {
	Verified  bool  `json:"verified"`
	Timestamp int64 `json:"timestamp,omitempty"`
}

// Processor reshapes a claim's raw extracted parameters into its bundle's
// output form.
//
// Implementations must be total: a processing failure is reported as a
// ProcessedProof with Success=false and an error description in Data, never
// as a panic. One claim's failure must not affect sibling claims in the same
// callback batch.
type Processor interface {
	Process(extractedParameters map[string]string) ProcessedProof
}

// failure builds the uniform failure shape shared by all processors.
func failure(message, details string) ProcessedProof {
	return ProcessedProof{
		Success: false,
		Data: map[string]any{
			"error":   message,
			"details": details,
		},
		Metadata: Metadata{Verified: false, Timestamp: nowMillis()},
	}
}
