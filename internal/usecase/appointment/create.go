package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariamb/admin-api/internal/audit"
	domain "github.com/barbeariamb/admin-api/internal/domain/appointment"
	discountdomain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/models"
)

// CodeValidator is the read-only side of the discount ledger.
type CodeValidator interface {
	Execute(ctx context.Context, code string) (discountdomain.Verdict, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	Date      string
	ClientID  string
	BarberID  string
	ServiceID string

	Notes        string
	DiscountCode string
}

type CreateAppointmentOutput struct {
	Appointment    *models.Appointment
	AppliedPercent int
	DiscountCode   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	validator CodeValidator
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	validator CodeValidator,
	auditDispatcher *audit.Dispatcher,
	now func() time.Time,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		validator: validator,
		audit:     auditDispatcher,
		now:       now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// Validation: ids and date, before any write
	// --------------------------------------------------
	if in.Date == "" || in.ClientID == "" || in.BarberID == "" || in.ServiceID == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	clientID, err := uuid.Parse(in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_client_id")
	}
	barberID, err := uuid.Parse(in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_barber_id")
	}
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service_id")
	}

	now := uc.now()

	date, err := ParseDate(in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// Referenced entities must resolve
	// --------------------------------------------------
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if _, err := uc.repo.GetService(ctx, serviceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// Discount code: an invalid code fails the whole
	// creation, nothing is persisted
	// --------------------------------------------------
	var discount *models.DiscountCode

	if in.DiscountCode != "" {
		verdict, err := uc.validator.Execute(ctx, in.DiscountCode)
		if err != nil {
			return nil, err
		}
		if !verdict.Valid {
			return nil, httperr.ErrBusiness(verdict.Reason)
		}
		discount = verdict.Discount
	}

	// --------------------------------------------------
	// Persist; redemption shares the insert's transaction
	// --------------------------------------------------
	ap := &models.Appointment{
		Date:      date,
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
	}

	if discount != nil {
		err = uc.repo.CreateAppointmentWithDiscount(ctx, ap, discount.ID, now)
	} else {
		err = uc.repo.CreateAppointment(ctx, ap)
	}
	if err != nil {
		return nil, err
	}

	detailed, err := uc.repo.GetAppointmentDetailed(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	out := &CreateAppointmentOutput{Appointment: detailed}
	if discount != nil {
		out.AppliedPercent = discount.Percent
		out.DiscountCode = discount.Code

		uc.audit.Dispatch(audit.Event{
			Action:   "discount_redeemed",
			Entity:   "discount_code",
			EntityID: &discount.ID,
			Metadata: map[string]any{"appointment_id": ap.ID},
		})
	}

	return out, nil
}
