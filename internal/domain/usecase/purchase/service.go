package purchase

import (
	"context"
	"errors"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/messaging"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// maxCodeAttempts bounds how many order codes are tried when codes collide
const maxCodeAttempts = 3

// Service runs the purchase sequence: intent, debit, record, notify.
// A failure after the debit credits the charge back; a failure of that
// credit is reported as ErrCriticalCompensation and left for manual repair.
type Service struct {
	accounts     usecase.AccountUseCase
	uow          persistence.UnitOfWork
	broadcaster  messaging.Broadcaster
	validator    *PurchaseValidator
	idempotency  *IdempotencyHandler
	newCode      CodeGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	catalog *entity.Catalog,
	accounts usecase.AccountUseCase,
	uow persistence.UnitOfWork,
	broadcaster messaging.Broadcaster,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		accounts:     accounts,
		uow:          uow,
		broadcaster:  broadcaster,
		validator:    NewPurchaseValidator(catalog),
		idempotency:  NewIdempotencyHandler(uow),
		newCode:      NewOrderCode,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// WithCodeGenerator replaces the order code generator
func (s *Service) WithCodeGenerator(gen CodeGenerator) *Service {
	s.newCode = gen
	return s
}

// Purchase turns a purchase request into a debited wallet and a pending order
func (s *Service) Purchase(ctx context.Context, req usecase.PurchaseRequest) (*entity.Order, error) {
	quote, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	// A replay is answered before the balance check: the first attempt may
	// have spent the very funds the retry would be checked against.
	if req.RequestID != "" {
		order, err := s.idempotency.CheckRequest(ctx, account.ID, req.RequestID)
		if err != nil {
			return nil, err
		}
		if order != nil {
			s.logger.Info("Replaying recorded purchase", map[string]any{
				"request_id": req.RequestID,
				"order_id":   order.ID,
				"account_id": account.ID,
			})
			return order, nil
		}
	}

	if !account.CanDeduct(quote.Charge) {
		return nil, errs.NewInsufficientBalanceError(account.ID, quote.Charge, account.Balance())
	}

	code, err := s.newCode()
	if err != nil {
		return nil, errs.NewPurchaseError("", account.ID, quote.Charge, errs.StageIntent, err)
	}
	intent := entity.NewPurchaseIntent(uuid.NewString(), req.RequestID, account.ID, code, quote.Charge, s.timeProvider)
	if err := s.uow.GetIntentRepository(ctx).Create(ctx, intent); err != nil {
		if errors.Is(err, errs.ErrDuplicatePurchase) {
			return nil, err
		}
		return nil, errs.NewPurchaseError(code, account.ID, quote.Charge, errs.StageIntent, err)
	}

	debited, err := s.debit(ctx, intent)
	if err != nil {
		s.advanceQuietly(ctx, intent, entity.IntentAbandoned, err)
		if isDomainRejection(err) {
			return nil, err
		}
		return nil, errs.NewPurchaseError(code, account.ID, quote.Charge, errs.StageDebit, err)
	}

	order, err := s.record(ctx, intent, debited, quote, req)
	if err != nil {
		return nil, s.compensate(ctx, intent, err)
	}

	s.advanceQuietly(ctx, intent, entity.IntentRecorded, nil)

	s.logger.Info("Purchase recorded", map[string]any{
		"order_id":   order.ID,
		"account_id": order.AccountID,
		"item_id":    order.ItemID,
		"quantity":   order.Quantity,
		"price":      order.Price,
		"balance":    debited.Balance(),
	})

	s.notify(ctx, order)
	return order, nil
}

// debit takes the charge and marks the intent debited in one transaction,
// so an intent still in the started state never holds the buyer's money.
func (s *Service) debit(ctx context.Context, intent *entity.PurchaseIntent) (*entity.Account, error) {
	next := *intent
	if err := next.Transition(entity.IntentDebited, nil, s.timeProvider); err != nil {
		return nil, err
	}

	var debited *entity.Account
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		account, err := s.accounts.Debit(txCtx, intent.AccountID, intent.Amount)
		if err != nil {
			return err
		}
		debited = account
		return s.uow.GetIntentRepository(txCtx).UpdateState(txCtx, &next, intent.State)
	})
	if err != nil {
		return nil, err
	}

	*intent = next
	return debited, nil
}

// record creates the order, drawing a new code when the current one is taken
func (s *Service) record(
	ctx context.Context,
	intent *entity.PurchaseIntent,
	account *entity.Account,
	quote *Quote,
	req usecase.PurchaseRequest,
) (*entity.Order, error) {
	for attempt := 1; ; attempt++ {
		order := entity.NewOrder(intent.OrderID, account, quote.Item, quote.Quantity, quote.Charge,
			req.PlayerID, req.ServerID, s.timeProvider)

		err := s.uow.GetOrderRepository(ctx).Create(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, errs.ErrDuplicateOrderID) || attempt == maxCodeAttempts {
			return nil, err
		}

		code, err := s.newCode()
		if err != nil {
			return nil, err
		}
		s.logger.Warn("Order code collision, drawing a new code", map[string]any{
			"order_id":  intent.OrderID,
			"new_code":  code,
			"intent_id": intent.ID,
			"attempt":   attempt,
		})

		intent.OrderID = code
		intent.UpdatedAt = s.timeProvider.Now()
		if err := s.uow.GetIntentRepository(ctx).UpdateState(ctx, intent, intent.State); err != nil {
			return nil, err
		}
	}
}

// compensate credits the charge back after the order could not be recorded
func (s *Service) compensate(ctx context.Context, intent *entity.PurchaseIntent, cause error) error {
	ctx = context.WithoutCancel(ctx)
	purchaseErr := errs.NewPurchaseError(intent.OrderID, intent.AccountID, intent.Amount, errs.StageRecord, cause)

	err := refund(ctx, s.uow, intent, cause, s.timeProvider)
	if errors.Is(err, errs.ErrInvalidStatusTransition) {
		fields := purchaseErr.LogFields()
		fields["intent_id"] = intent.ID
		fields["refund_error"] = err
		s.logger.Warn("Purchase intent already settled by the reconciler", fields)
		return purchaseErr
	}
	if err != nil {
		purchaseErr.CompensationErr = err
		fields := purchaseErr.LogFields()
		fields["intent_id"] = intent.ID
		s.logger.Error("CRITICAL: compensating credit failed, wallet left debited", fields)
		s.advanceQuietly(ctx, intent, entity.IntentCompensationFailed, err)
		return purchaseErr
	}

	fields := purchaseErr.LogFields()
	fields["intent_id"] = intent.ID
	s.logger.Warn("Order not recorded, charge credited back", fields)
	return purchaseErr
}

// notify posts the order summary once; failures never affect the purchase
func (s *Service) notify(ctx context.Context, order *entity.Order) {
	if err := s.broadcaster.Send(ctx, order.Summary()); err != nil {
		s.logger.Warn("Failed to broadcast order", map[string]any{
			"order_id": order.ID,
			"error":    err,
		})
	}
}

// advance moves the intent to the next state and persists it, provided no
// one else moved the stored intent first. On failure intent is left unchanged.
func (s *Service) advance(ctx context.Context, intent *entity.PurchaseIntent, to entity.IntentState, cause error) error {
	next := *intent
	if err := next.Transition(to, cause, s.timeProvider); err != nil {
		return err
	}
	if err := s.uow.GetIntentRepository(ctx).UpdateState(ctx, &next, intent.State); err != nil {
		return err
	}
	*intent = next
	return nil
}

// advanceQuietly is advance for transitions the reconciler can redo, logging failures
func (s *Service) advanceQuietly(ctx context.Context, intent *entity.PurchaseIntent, to entity.IntentState, cause error) {
	if err := s.advance(context.WithoutCancel(ctx), intent, to, cause); err != nil {
		s.logger.Error("Failed to update purchase intent", map[string]any{
			"intent_id":  intent.ID,
			"order_id":   intent.OrderID,
			"account_id": intent.AccountID,
			"state":      string(to),
			"error":      err,
		})
	}
}

// isDomainRejection reports errors that mean the debit was refused rather than failed
func isDomainRejection(err error) bool {
	return errs.IsInsufficientBalanceError(err) ||
		errs.IsValidationError(err) ||
		errs.IsNotFoundError(err) ||
		errs.IsConflictError(err) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
