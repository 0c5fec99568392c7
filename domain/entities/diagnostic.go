package entities

// Severity grades how serious a diagnostic is. Downstream consumers decide
// whether to block deployment on error-severity diagnostics; this core
// never blocks on its own.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Code is a stable, machine-readable diagnostic identifier. New checks
// must add a constant here so call sites are verified by the compiler
// rather than string-matched at render time.
type Code string

const (
	// CodeUnknownService flags a capability or restriction naming a
	// service absent from the registry.
	CodeUnknownService Code = "UNKNOWN_SERVICE"

	// CodeWildcardResource flags a statement whose resources collapsed
	// to a bare "*" even though an explicit ARN was derivable.
	CodeWildcardResource Code = "WILDCARD_RESOURCE"

	// CodeMissingResourceSegment flags a capability that did not supply
	// every ARN segment its service requires; the missing segment was
	// emitted as a wildcard placeholder.
	CodeMissingResourceSegment Code = "MISSING_RESOURCE_SEGMENT"

	// CodeConditionKeyUnsupported flags a condition key the target
	// service does not accept. The key is dropped from the emitted
	// statement, never carried through.
	CodeConditionKeyUnsupported Code = "CONDITION_KEY_UNSUPPORTED"

	// CodeLowEvidenceConfidence flags a capability with no evidence, or
	// whose best citation falls below EvidenceConfidenceThreshold.
	CodeLowEvidenceConfidence Code = "LOW_EVIDENCE_CONFIDENCE"

	// CodeInsecureTransport flags a data-plane capability that carries
	// no transport-security condition.
	CodeInsecureTransport Code = "INSECURE_TRANSPORT"
)

// Diagnostic is a structured finding from canonicalization or validation.
type Diagnostic struct {
	// Severity grades the finding.
	Severity Severity `json:"severity"`

	// Code is the stable machine-readable identifier.
	Code Code `json:"code"`

	// Subject names the capability, restriction, or statement the
	// finding concerns (e.g. "s3/read-only", "Sid:AllowS3ReadOnly").
	Subject string `json:"subject"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// Info creates an info-severity diagnostic.
func Info(code Code, subject, message string) Diagnostic {
	return Diagnostic{Severity: SeverityInfo, Code: code, Subject: subject, Message: message}
}

// Warning creates a warning-severity diagnostic.
func Warning(code Code, subject, message string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Code: code, Subject: subject, Message: message}
}

// Error creates an error-severity diagnostic.
func Error(code Code, subject, message string) Diagnostic {
	return Diagnostic{Severity: SeverityError, Code: code, Subject: subject, Message: message}
}
