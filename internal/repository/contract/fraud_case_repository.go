package contract

import "voicemart-be/internal/entity"

// IFraudCaseRepository reads and rewrites the fraud case collection file.
// Cases are re-read on every lookup so a call always starts from the current
// on-disk state; Update does a read-modify-write matched by case id.
type IFraudCaseRepository interface {
	LoadAll() ([]*entity.FraudCase, error)
	FindByUserName(username string) (*entity.FraudCase, error)
	Update(c *entity.FraudCase) error
}
