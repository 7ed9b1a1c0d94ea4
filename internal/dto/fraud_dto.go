package dto

type LoadCaseRequest struct {
	Username string `json:"username" validate:"required"`
}

type VerifyCustomerRequest struct {
	SecurityIdentifier string `json:"security_identifier" validate:"required"`
}

type DisposeRequest struct {
	// "safe" or "fraud"
	Outcome string `json:"outcome" validate:"required,oneof=safe fraud"`
}

// FraudCaseView is the disclosure-safe projection of a case: the security
// identifier never leaves the server and the card is only ever the masked
// suffix.
type FraudCaseView struct {
	Id                  string  `json:"id"`
	UserName            string  `json:"userName"`
	CardEnding          string  `json:"cardEnding"`
	TransactionAmount   float64 `json:"transactionAmount"`
	TransactionCurrency string  `json:"transactionCurrency"`
	TransactionName     string  `json:"transactionName"`
	TransactionCategory string  `json:"transactionCategory"`
	TransactionLocation string  `json:"transactionLocation"`
	TransactionSource   string  `json:"transactionSource"`
	TransactionTime     string  `json:"transactionTime"`
	Status              string  `json:"status"`
}

type FraudCallResponse struct {
	Message       string         `json:"-"`
	SessionId     string         `json:"session_id"`
	Case          *FraudCaseView `json:"case,omitempty"`
	Verified      bool           `json:"verified"`
	CallCompleted bool           `json:"call_completed"`
}
