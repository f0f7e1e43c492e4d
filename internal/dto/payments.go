package dto

// Amounts travel as strings and are parsed with domain.ParseAmount.

type TransferRequest struct {
	Amount              string `json:"amount" binding:"required"`
	RecipientNationalID string `json:"recipientNationalId" binding:"required"`
}

type BillRequest struct {
	Amount     string `json:"amount" binding:"required"`
	BillType   string `json:"billType" binding:"required"`
	ConsumerID string `json:"consumerId" binding:"required"`
}

type TaxRequest struct {
	Amount string `json:"amount" binding:"required"`
	TaxID  string `json:"taxId" binding:"required"`
}

type ChallanRequest struct {
	Amount        string `json:"amount" binding:"required"`
	ChallanNumber string `json:"challanNumber" binding:"required"`
	PSID          string `json:"psid" binding:"required"`
}

type FeeRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Institute string `json:"institute" binding:"required"`
	RollNo    string `json:"rollNo" binding:"required"`
	PSID      string `json:"psid" binding:"required"`
}

// AdminAmountRequest is the body of the admin funds and tax endpoints.
type AdminAmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}
