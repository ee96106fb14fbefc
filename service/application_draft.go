package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"phone-loan/domain"
	"phone-loan/repository"
)

var (
	ErrLookupFailed       = errors.New("existing application lookup failed")
	ErrSubmissionFailed   = errors.New("application submission failed")
	ErrCatalogUnavailable = errors.New("device catalog unavailable")
)

type Option func(*ApplicationDraft)

// WithClock sets the source of "today" used for century and age decisions.
func WithClock(now func() time.Time) Option {
	return func(d *ApplicationDraft) { d.now = now }
}

// WithCallTimeout bounds every store and catalog call. Zero disables it.
func WithCallTimeout(timeout time.Duration) Option {
	return func(d *ApplicationDraft) { d.callTimeout = timeout }
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *ApplicationDraft) { d.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(d *ApplicationDraft) { d.metrics = m }
}

// ApplicationDraft is one applicant's in-progress application. Each draft
// is owned by its caller; results of store calls that complete after a
// Reset are discarded.
type ApplicationDraft struct {
	store       repository.ApplicationStore
	catalog     repository.DeviceCatalog
	now         func() time.Time
	callTimeout time.Duration
	logger      *slog.Logger
	metrics     *Metrics

	mu         sync.Mutex
	state      domain.ApplicationState
	generation uint64
}

// NewApplicationDraft creates a draft in its initial state.
func NewApplicationDraft(
	store repository.ApplicationStore,
	catalog repository.DeviceCatalog,
	opts ...Option,
) *ApplicationDraft {
	d := &ApplicationDraft{
		store:   store,
		catalog: catalog,
		now:     time.Now,
		logger:  slog.Default(),
		state:   domain.NewApplicationState(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Snapshot returns a copy of the current state.
func (d *ApplicationDraft) Snapshot() domain.ApplicationState {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	s.Birthday = clonePtr(s.Birthday)
	s.ProofDocumentName = clonePtr(s.ProofDocumentName)
	s.SelectedPhoneID = clonePtr(s.SelectedPhoneID)
	s.ExistingApplicationID = clonePtr(s.ExistingApplicationID)
	s.AvailablePhones = slices.Clone(s.AvailablePhones)
	return s
}

// SetPersonalInformation stores the applicant's name and identity number.
// For a valid identity of an eligible age it looks up an earlier
// application for the same identity so a later Submit updates it. A failed
// lookup is returned wrapped in ErrLookupFailed; the draft is still updated
// and treated as having no earlier application.
func (d *ApplicationDraft) SetPersonalInformation(
	ctx context.Context,
	fullName, identityNumber string,
) (domain.IdentityCheck, error) {
	d.mu.Lock()
	today := d.now()
	identity := ParseIdentity(identityNumber, today)

	d.state.FullName = fullName
	d.state.SAIDNumber = identityNumber
	d.state.Birthday = identity.BirthDate
	d.state.ExistingApplicationID = nil
	d.recomputePricing(today)

	_, age := tierForBirthDate(identity.BirthDate, today)
	check := domain.IdentityCheck{
		IdentityValid: identity.Valid,
		AgeValid:      age != nil && IsEligibleAge(*age),
		Age:           age,
	}
	generation := d.generation
	d.mu.Unlock()

	if !check.IdentityValid || !check.AgeValid {
		d.metrics.lookup("skipped")
		return check, nil
	}

	id, err := d.findExisting(ctx, identityNumber)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != generation || d.state.SAIDNumber != identityNumber {
		return check, nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		d.metrics.lookup("not_found")
	case err != nil:
		d.metrics.lookup("error")
		d.logger.Warn("existing application lookup failed", "error", err)
		return check, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	default:
		d.metrics.lookup("found")
		d.state.ExistingApplicationID = &id
		check.ExistingApplicationID = clonePtr(&id)
	}
	return check, nil
}

func (d *ApplicationDraft) findExisting(ctx context.Context, identityNumber string) (int64, error) {
	ctx, cancel := d.callContext(ctx)
	defer cancel()
	return d.store.FindApplicationIDByIdentity(ctx, identityNumber)
}

// SetMonthlyIncome stores the applicant's monthly income.
func (d *ApplicationDraft) SetMonthlyIncome(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidIncome
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.MonthlyIncome = decimal.NewNullDecimal(amount)
	return nil
}

// SetProofDocumentName records the name of the uploaded proof of income.
func (d *ApplicationDraft) SetProofDocumentName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.ProofDocumentName = &name
}

// LoadDevices replaces the draft's catalog. On failure the catalog is left
// empty and the error is returned wrapped in ErrCatalogUnavailable.
func (d *ApplicationDraft) LoadDevices(ctx context.Context) error {
	d.mu.Lock()
	generation := d.generation
	d.mu.Unlock()

	callCtx, cancel := d.callContext(ctx)
	devices, err := d.catalog.ListDevices(callCtx)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != generation {
		return nil
	}

	if err != nil {
		d.metrics.catalogLoad("error")
		d.logger.Warn("failed to load device catalog", "error", err)
		d.state.AvailablePhones = nil
		d.recomputePricing(d.now())
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	d.metrics.catalogLoad("success")
	d.state.AvailablePhones = devices
	d.recomputePricing(d.now())
	return nil
}

// SetSelectedDevice chooses a device and recomputes the loan amounts.
func (d *ApplicationDraft) SetSelectedDevice(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.SelectedPhoneID = &id
	d.recomputePricing(d.now())
}

// Quote prices device for the current applicant. The second result is
// false when no risk tier applies.
func (d *ApplicationDraft) Quote(device domain.Device) (domain.LoanQuote, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	tier, _ := tierForBirthDate(d.state.Birthday, d.now())
	if tier == nil {
		return domain.LoanQuote{}, false
	}
	return Price(device, *tier), true
}

// AffordableDevices lists the catalog devices the applicant can afford.
func (d *ApplicationDraft) AffordableDevices() []domain.DeviceQuote {
	d.mu.Lock()
	defer d.mu.Unlock()

	tier, _ := tierForBirthDate(d.state.Birthday, d.now())
	return AffordableQuotes(d.state.AvailablePhones, d.state.MonthlyIncome, tier)
}

func (d *ApplicationDraft) NextStep() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.CurrentStep++
	return d.state.CurrentStep
}

// PrevStep moves one step back, never below the first step.
func (d *ApplicationDraft) PrevStep() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state.CurrentStep > 1 {
		d.state.CurrentStep--
	}
	return d.state.CurrentStep
}

// Submit writes the draft to the store, updating the earlier application
// for the same identity when one was found. Only one submission may be in
// flight. A failed write leaves the draft in StatusError with its earlier
// application id kept so Submit can be retried.
func (d *ApplicationDraft) Submit(ctx context.Context) error {
	d.mu.Lock()
	switch d.state.Status {
	case domain.StatusSubmitting:
		d.mu.Unlock()
		return domain.ErrSubmissionInFlight
	case domain.StatusSubmitted:
		d.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, domain.StatusSubmitted, domain.StatusSubmitting)
	}
	d.state.Status = domain.StatusSubmitting
	payload := d.payload()
	existingID := clonePtr(d.state.ExistingApplicationID)
	generation := d.generation
	d.mu.Unlock()

	callCtx, cancel := d.callContext(ctx)
	defer cancel()

	mode := "insert"
	var err error
	if existingID != nil {
		mode = "update"
		err = d.store.UpdateApplication(callCtx, *existingID, payload)
	} else {
		_, err = d.store.InsertApplication(callCtx, payload)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != generation {
		d.logger.Info("discarding submission result for a reset draft", "mode", mode)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		}
		return nil
	}

	if err != nil {
		d.metrics.submission(mode, "error")
		d.logger.Error("error submitting application", "mode", mode, "error", err)
		d.state.Status = domain.StatusError
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	d.metrics.submission(mode, "success")
	d.state.Status = domain.StatusSubmitted
	d.state.ExistingApplicationID = nil
	return nil
}

// Reset returns the draft to its initial state.
func (d *ApplicationDraft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = domain.NewApplicationState()
	d.generation++
}

// payload snapshots the applicant fields. The stored record always starts
// out PENDING whatever the draft's own status is.
func (d *ApplicationDraft) payload() domain.ApplicationPayload {
	return domain.ApplicationPayload{
		FullName:        d.state.FullName,
		SAIDNumber:      d.state.SAIDNumber,
		Birthday:        clonePtr(d.state.Birthday),
		MonthlyIncome:   d.state.MonthlyIncome,
		PhoneID:         clonePtr(d.state.SelectedPhoneID),
		LoanPrincipal:   d.state.LoanPrincipal,
		TotalLoanAmount: d.state.TotalLoanAmount,
		DailyPayment:    d.state.DailyPayment,
		Status:          domain.StatusPending,
	}
}

// recomputePricing keeps the loan amounts set exactly when a catalog
// device is selected and the applicant's age resolves a tier.
func (d *ApplicationDraft) recomputePricing(today time.Time) {
	d.state.LoanPrincipal = decimal.NullDecimal{}
	d.state.TotalLoanAmount = decimal.NullDecimal{}
	d.state.DailyPayment = decimal.NullDecimal{}

	if d.state.SelectedPhoneID == nil {
		return
	}
	idx := slices.IndexFunc(d.state.AvailablePhones, func(p domain.Device) bool {
		return p.ID == *d.state.SelectedPhoneID
	})
	if idx < 0 {
		return
	}
	tier, _ := tierForBirthDate(d.state.Birthday, today)
	if tier == nil {
		return
	}

	quote := Price(d.state.AvailablePhones[idx], *tier)
	d.state.LoanPrincipal = decimal.NewNullDecimal(quote.Principal)
	d.state.TotalLoanAmount = decimal.NewNullDecimal(quote.TotalAmount)
	d.state.DailyPayment = decimal.NewNullDecimal(quote.DailyPayment)
}

func (d *ApplicationDraft) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.callTimeout > 0 {
		return context.WithTimeout(ctx, d.callTimeout)
	}
	return context.WithCancel(ctx)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
