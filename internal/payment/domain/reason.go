package domain

// Reason codes form a controlled vocabulary, required whenever a payment is
// rejected or cancelled by an employee.
const (
	ReasonInsufficientDocs        = "insufficient_docs"
	ReasonAMLFlag                 = "aml_flag"
	ReasonInvalidRecipientDetails = "invalid_recipient_details"
	ReasonComplianceHold          = "compliance_hold"
	ReasonRiskReview              = "risk_review"
	ReasonDuplicatePayment        = "duplicate_payment"
	ReasonFundingIssue            = "funding_issue"
)

var reasonCodes = map[string]string{
	ReasonInsufficientDocs:        "Insufficient documentation",
	ReasonAMLFlag:                 "AML flag",
	ReasonInvalidRecipientDetails: "Invalid recipient details",
	ReasonComplianceHold:          "Compliance hold",
	ReasonRiskReview:              "Risk review",
	ReasonDuplicatePayment:        "Duplicate payment",
	ReasonFundingIssue:            "Funding issue",
}

// IsValidReasonCode reports whether code is a member of the registry
func IsValidReasonCode(code string) bool {
	_, ok := reasonCodes[code]
	return ok
}

// ReasonCodeLabel returns the human-readable label for a code
func ReasonCodeLabel(code string) string {
	return reasonCodes[code]
}

// ReasonCodes returns the registry as code/label pairs
func ReasonCodes() map[string]string {
	out := make(map[string]string, len(reasonCodes))
	for code, label := range reasonCodes {
		out[code] = label
	}
	return out
}
