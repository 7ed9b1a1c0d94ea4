package implementation

import (
	"os"
	"strings"
	"sync"

	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/contract"
)

type fraudCaseRepository struct {
	filePath string
	log      logger.ILogger
	mu       sync.Mutex
}

// NewFraudCaseRepository reads fraud_cases.json on demand rather than caching
// it: cases are pre-seeded externally and the on-disk state is authoritative
// at the start of every call.
func NewFraudCaseRepository(filePath string, log logger.ILogger) contract.IFraudCaseRepository {
	return &fraudCaseRepository{filePath: filePath, log: log}
}

func (r *fraudCaseRepository) LoadAll() ([]*entity.FraudCase, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		r.log.Error("FraudCaseRepository", "Fraud cases file not found", map[string]interface{}{
			"path": r.filePath,
		})
		return []*entity.FraudCase{}, nil
	}

	var cases []*entity.FraudCase
	if err := readJSON(r.filePath, &cases); err != nil {
		return nil, apperror.Persistence("failed to load fraud cases", err)
	}
	return cases, nil
}

func (r *fraudCaseRepository) FindByUserName(username string) (*entity.FraudCase, error) {
	cases, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, c := range cases {
		if strings.EqualFold(c.UserName, username) {
			return c, nil
		}
	}
	return nil, nil
}

// Update rewrites the full collection with the given case substituted in,
// matched by id. Matching by id rather than slice position matters because
// the collection is reloaded here and may have shifted since the case was
// first read.
func (r *fraudCaseRepository) Update(updated *entity.FraudCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cases, err := r.LoadAll()
	if err != nil {
		return err
	}

	found := false
	for i, c := range cases {
		if c.Id == updated.Id {
			cases[i] = updated
			found = true
			break
		}
	}
	if !found {
		return apperror.NotFound("fraud case '%s' no longer exists in the case file", updated.Id)
	}

	if err := writeJSONAtomic(r.filePath, cases); err != nil {
		return apperror.Persistence("failed to save fraud cases", err)
	}

	r.log.Info("FraudCaseRepository", "Fraud cases saved", map[string]interface{}{
		"cases":   len(cases),
		"case_id": updated.Id,
		"status":  updated.Status,
	})
	return nil
}
