package service

import (
	"fmt"
	"time"

	"voicemart-be/internal/dto"
	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/contract"
	"voicemart-be/internal/repository/memory"

	"github.com/google/uuid"
)

// Disposition outcomes accepted by Dispose.
const (
	OutcomeSafe  = "safe"
	OutcomeFraud = "fraud"
)

// IFraudService drives one verification call: load a pending case, verify
// the customer, disclose details, record a disposition. Verification is a
// hard gate — details and dispositions are unreachable until the customer's
// security identifier matches exactly.
type IFraudService interface {
	CreateSession() *dto.FraudCallResponse
	LoadCase(sessionId string, req *dto.LoadCaseRequest) (*dto.FraudCallResponse, error)
	Verify(sessionId string, req *dto.VerifyCustomerRequest) (*dto.FraudCallResponse, error)
	GetDetails(sessionId string) (*dto.FraudCallResponse, error)
	Dispose(sessionId string, req *dto.DisposeRequest) (*dto.FraudCallResponse, error)
	EndCall(sessionId string) (*dto.FraudCallResponse, error)
}

type fraudService struct {
	caseRepo    contract.IFraudCaseRepository
	sessionRepo *memory.FraudSessionRepository
	broadcaster StateBroadcaster
	log         logger.ILogger
	now         func() time.Time
}

func NewFraudService(
	caseRepo contract.IFraudCaseRepository,
	sessionRepo *memory.FraudSessionRepository,
	broadcaster StateBroadcaster,
	log logger.ILogger,
) IFraudService {
	return &fraudService{
		caseRepo:    caseRepo,
		sessionRepo: sessionRepo,
		broadcaster: broadcaster,
		log:         log,
		now:         time.Now,
	}
}

func (s *fraudService) CreateSession() *dto.FraudCallResponse {
	session := &entity.FraudCallSession{Id: uuid.NewString()}
	s.sessionRepo.Save(session)

	s.log.Info("FraudService", "Fraud call session created", map[string]interface{}{
		"session_id": session.Id,
	})
	return &dto.FraudCallResponse{
		Message:   "New fraud verification call started.",
		SessionId: session.Id,
	}
}

func (s *fraudService) session(sessionId string) (*entity.FraudCallSession, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, apperror.NotFound("fraud call session '%s' not found or expired", sessionId)
	}
	return session, nil
}

func (s *fraudService) LoadCase(sessionId string, req *dto.LoadCaseRequest) (*dto.FraudCallResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	c, err := s.caseRepo.FindByUserName(req.Username)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("I couldn't find a fraud case for '%s'. Please verify the name.", req.Username)
	}

	// Already-processed cases expose their status but are never reopened.
	if c.Status != entity.CaseStatusPendingReview {
		return nil, apperror.InvalidState("This fraud case has already been processed. Status: %s", c.Status)
	}

	session.ActiveCase = c
	session.Verified = false
	session.CallCompleted = false
	s.sessionRepo.Save(session)

	s.log.Info("FraudService", "Fraud case loaded", map[string]interface{}{
		"session_id": sessionId,
		"case_id":    c.Id,
	})

	res := s.response(session)
	res.Message = fmt.Sprintf("Fraud case loaded for %s. Transaction of $%.2f at %s.", c.UserName, c.TransactionAmount, c.TransactionName)
	s.broadcaster.BroadcastState(sessionId, "case_loaded", res)
	return res, nil
}

func (s *fraudService) Verify(sessionId string, req *dto.VerifyCustomerRequest) (*dto.FraudCallResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	if session.ActiveCase == nil {
		return nil, apperror.InvalidState("Please load a fraud case first before verifying the customer.")
	}

	if session.Verified {
		res := s.response(session)
		res.Message = "Customer has already been verified."
		return res, nil
	}

	if req.SecurityIdentifier != session.ActiveCase.SecurityIdentifier {
		s.log.Warn("FraudService", "Verification failed", map[string]interface{}{
			"session_id": sessionId,
			"case_id":    session.ActiveCase.Id,
		})
		res := s.response(session)
		res.Message = "I'm sorry, but the security identifier you provided doesn't match our records. For security reasons, I cannot proceed with this call. Please contact our customer service directly."
		return res, nil
	}

	session.Verified = true
	s.sessionRepo.Save(session)

	s.log.Info("FraudService", "Customer verified", map[string]interface{}{
		"session_id": sessionId,
		"case_id":    session.ActiveCase.Id,
	})

	res := s.response(session)
	res.Message = "Identity verified successfully. I can now proceed with the fraud investigation."
	s.broadcaster.BroadcastState(sessionId, "verification_updated", res)
	return res, nil
}

// requireVerified enforces the disclosure gate, distinguishing "no case
// loaded" from "case loaded but customer not verified".
func requireVerified(session *entity.FraudCallSession) error {
	if session.ActiveCase == nil {
		return apperror.InvalidState("No fraud case loaded. Please load a case first.")
	}
	if !session.Verified {
		return apperror.InvalidState("Customer must be verified before sharing transaction details.")
	}
	return nil
}

func (s *fraudService) GetDetails(sessionId string) (*dto.FraudCallResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := requireVerified(session); err != nil {
		return nil, err
	}

	c := session.ActiveCase
	message := fmt.Sprintf(
		"Here are the details of the suspicious transaction:\n"+
			"- Amount: $%.2f %s\n"+
			"- Merchant: %s\n"+
			"- Card ending in: %s\n"+
			"- Category: %s\n"+
			"- Location: %s\n"+
			"- Transaction source: %s\n"+
			"- Time: %s",
		c.TransactionAmount, c.TransactionCurrency, c.TransactionName, c.CardEnding,
		c.TransactionCategory, c.TransactionLocation, c.TransactionSource, c.TransactionTime,
	)

	res := s.response(session)
	res.Message = message
	return res, nil
}

func (s *fraudService) Dispose(sessionId string, req *dto.DisposeRequest) (*dto.FraudCallResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := requireVerified(session); err != nil {
		return nil, err
	}

	c := session.ActiveCase
	var message string
	switch req.Outcome {
	case OutcomeSafe:
		c.Status = entity.CaseStatusConfirmedSafe
		c.OutcomeNote = fmt.Sprintf("Customer confirmed transaction as legitimate on %s", s.now().Format(time.RFC3339))
		message = fmt.Sprintf(
			"Thank you for confirming. I've marked this transaction as legitimate in our system. Your card ending in %s is secure and no action is needed. Thank you for your time, and have a great day!",
			c.CardEnding,
		)
	case OutcomeFraud:
		c.Status = entity.CaseStatusConfirmedFraud
		c.OutcomeNote = fmt.Sprintf("Customer denied transaction. Card blocked and dispute initiated on %s", s.now().Format(time.RFC3339))
		message = fmt.Sprintf(
			"I understand. For your protection, I have immediately blocked your card ending in %s, raised a dispute for the $%.2f transaction, and flagged this as fraudulent activity. You will receive a new card within 5-7 business days. You will not be charged for this fraudulent transaction.",
			c.CardEnding, c.TransactionAmount,
		)
	default:
		return nil, apperror.Validation("unknown disposition outcome '%s'", req.Outcome)
	}

	degraded := false
	if err := s.caseRepo.Update(c); err != nil {
		degraded = true
		s.log.Error("FraudService", "Failed to persist case disposition", map[string]interface{}{
			"case_id": c.Id,
			"error":   err.Error(),
		})
	}

	session.CallCompleted = true
	s.sessionRepo.Save(session)

	s.log.Info("FraudService", "Case disposed", map[string]interface{}{
		"session_id": sessionId,
		"case_id":    c.Id,
		"status":     c.Status,
	})

	if degraded {
		message += persistDegradedNote
	}

	res := s.response(session)
	res.Message = message
	s.broadcaster.BroadcastState(sessionId, "case_disposed", res)
	return res, nil
}

// EndCall closes the session. A call abandoned with an undisposed case marks
// that case verification_failed so it never silently stays pending.
func (s *fraudService) EndCall(sessionId string) (*dto.FraudCallResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	if !session.CallCompleted && session.ActiveCase != nil {
		c := session.ActiveCase
		c.Status = entity.CaseStatusVerificationFailed
		c.OutcomeNote = fmt.Sprintf("Call ended without resolution on %s", s.now().Format(time.RFC3339))

		if err := s.caseRepo.Update(c); err != nil {
			s.log.Error("FraudService", "Failed to persist abandoned call outcome", map[string]interface{}{
				"case_id": c.Id,
				"error":   err.Error(),
			})
		} else {
			s.log.Info("FraudService", "Call ended without resolution", map[string]interface{}{
				"session_id": sessionId,
				"case_id":    c.Id,
			})
		}
	}

	res := s.response(session)
	s.sessionRepo.Delete(sessionId)

	res.Message = "Thank you for your time. Goodbye!"
	return res, nil
}

func (s *fraudService) response(session *entity.FraudCallSession) *dto.FraudCallResponse {
	res := &dto.FraudCallResponse{
		SessionId:     session.Id,
		Verified:      session.Verified,
		CallCompleted: session.CallCompleted,
	}
	if c := session.ActiveCase; c != nil {
		res.Case = &dto.FraudCaseView{
			Id:                  c.Id,
			UserName:            c.UserName,
			CardEnding:          c.CardEnding,
			TransactionAmount:   c.TransactionAmount,
			TransactionCurrency: c.TransactionCurrency,
			TransactionName:     c.TransactionName,
			TransactionCategory: c.TransactionCategory,
			TransactionLocation: c.TransactionLocation,
			TransactionSource:   c.TransactionSource,
			TransactionTime:     c.TransactionTime,
			Status:              c.Status,
		}
	}
	return res
}
