package entity

// BalanceResponse represents the wallet view of an account
type BalanceResponse struct {
	AccountID        string `json:"accountId"`
	DisplayName      string `json:"displayName"`
	Balance          int64  `json:"balance"`
	FormattedBalance string `json:"formattedBalance"`
	Coins            int64  `json:"coins"`
}

// AccountToBalanceResponse converts an Account entity to a BalanceResponse
// This is a separate function rather than a method on Account to keep domain models clean
func AccountToBalanceResponse(account *Account) BalanceResponse {
	return BalanceResponse{
		AccountID:        account.ID,
		DisplayName:      account.DisplayName,
		Balance:          account.Balance(),
		FormattedBalance: account.FormattedBalance(),
		Coins:            account.Coins,
	}
}
