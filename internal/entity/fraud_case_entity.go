package entity

// Fraud case statuses. A case arrives as pending_review and is closed exactly
// once, either by a customer disposition or by an abandoned call.
const (
	CaseStatusPendingReview      = "pending_review"
	CaseStatusConfirmedSafe      = "confirmed_safe"
	CaseStatusConfirmedFraud     = "confirmed_fraud"
	CaseStatusVerificationFailed = "verification_failed"
)

// FraudCase is a single suspicious-transaction record. SecurityIdentifier is
// a shared secret used only for identity verification; it is never a payment
// credential, and only the masked card suffix (CardEnding) is ever read out.
// JSON field names mirror fraud_cases.json exactly.
type FraudCase struct {
	Id                  string  `json:"id"`
	UserName            string  `json:"userName"`
	SecurityIdentifier  string  `json:"securityIdentifier"`
	CardEnding          string  `json:"cardEnding"`
	TransactionAmount   float64 `json:"transactionAmount"`
	TransactionCurrency string  `json:"transactionCurrency"`
	TransactionName     string  `json:"transactionName"`
	TransactionCategory string  `json:"transactionCategory"`
	TransactionLocation string  `json:"transactionLocation"`
	TransactionSource   string  `json:"transactionSource"`
	TransactionTime     string  `json:"transactionTime"`
	Status              string  `json:"status"`
	OutcomeNote         string  `json:"outcomeNote,omitempty"`
}

// FraudCallSession is the per-call verification state machine. The active
// case is a working copy; the file store is only rewritten on disposition or
// call end. Verified gates both detail disclosure and disposition.
type FraudCallSession struct {
	Id            string     `json:"id"`
	ActiveCase    *FraudCase `json:"active_case,omitempty"`
	Verified      bool       `json:"verified"`
	CallCompleted bool       `json:"call_completed"`
}
