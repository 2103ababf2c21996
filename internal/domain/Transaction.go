package domain

import "time"

type TransactionType string

const (
	TransactionTypeCampaignPayment TransactionType = "campaign_payment"
	TransactionTypeWithdrawal      TransactionType = "withdrawal"
	TransactionTypeReferralReward  TransactionType = "referral_reward"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction é uma movimentação financeira do criador. Amount pode ser negativo (saques).
type Transaction struct {
	ID        string            `json:"id"`
	Type      TransactionType   `json:"type"`
	Status    TransactionStatus `json:"status"`
	Amount    float64           `json:"amount"`
	CreatedAt time.Time         `json:"created_at"`
}

// IsCompletedCampaignPayment indica se a transação é um pagamento de campanha concluído
func (t Transaction) IsCompletedCampaignPayment() bool {
	return t.Type == TransactionTypeCampaignPayment && t.Status == TransactionStatusCompleted
}
