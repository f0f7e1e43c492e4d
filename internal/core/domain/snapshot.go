package domain

// Snapshot is the whole persisted ledger state.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
}

// FreshSnapshot returns the bootstrap state: the administrator and an empty ledger.
func FreshSnapshot(adminSecret string) Snapshot {
	return Snapshot{
		Accounts:     []Account{NewBootstrapAdmin(adminSecret)},
		Transactions: []Transaction{},
	}
}
