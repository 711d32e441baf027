package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
	"github.com/stretchr/testify/assert"
)

// --- fakes shared by the lifecycle tests ---

type fakeBookingStore struct {
	bookings  map[string]*models.Booking
	insertErr error
	updateErr error
	inserted  int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingStore) Insert(b *models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted++
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", f.inserted)
	}
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingStore) GetByOrderID(orderID string) (*models.Booking, error) {
	if orderID == "" {
		return nil, errors.New("booking not found")
	}
	for _, b := range f.bookings {
		if b.OrderID == orderID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookingStore) SetOrderID(id, orderID string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.bookings[id].OrderID = orderID
	return nil
}

func (f *fakeBookingStore) SetPaymentOutcome(id, paymentStatus, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.bookings[id].PaymentStatus = paymentStatus
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingStore) SetStatus(id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingStore) ListAll() ([]models.Booking, error) {
	var all []models.Booking
	for _, b := range f.bookings {
		all = append(all, *b)
	}
	return all, nil
}

type fakeTripStore struct {
	trips map[string]*models.Trip
}

func newFakeTripStore(trips ...*models.Trip) *fakeTripStore {
	f := &fakeTripStore{trips: make(map[string]*models.Trip)}
	for _, t := range trips {
		f.trips[t.Name] = t
	}
	return f
}

func (f *fakeTripStore) Store(t *models.Trip) error  { f.trips[t.Name] = t; return nil }
func (f *fakeTripStore) Update(t *models.Trip) error { f.trips[t.Name] = t; return nil }
func (f *fakeTripStore) Delete(id string) error      { return nil }

func (f *fakeTripStore) GetByID(id string) (*models.Trip, error) {
	for _, t := range f.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.New("trip not found")
}

func (f *fakeTripStore) GetByName(name string) (*models.Trip, error) {
	t, ok := f.trips[name]
	if !ok {
		return nil, errors.New("trip not found")
	}
	return t, nil
}

func (f *fakeTripStore) Search(query string) ([]models.Trip, error) { return nil, nil }
func (f *fakeTripStore) ListAll() ([]models.Trip, error)            { return nil, nil }

type sentMail struct {
	to         string
	subject    string
	body       string
	attachment *Attachment
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(to, subject, htmlBody string, attachment *Attachment) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody, attachment: attachment})
	return nil
}

type orderCall struct {
	amount   int64
	currency string
	receipt  string
	notes    map[string]string
}

type fakeGateway struct {
	orderID   string
	createErr error
	calls     []orderCall
}

func (f *fakeGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (string, error) {
	f.calls = append(f.calls, orderCall{amount: amount, currency: currency, receipt: receipt, notes: notes})
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.orderID, nil
}

// The fake accepts exactly one signature value so tests can exercise both
// branches without real crypto.
func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "valid"
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

func newLifecycleService(bookings *fakeBookingStore, trips *fakeTripStore, gateway *fakeGateway, mailer *fakeMailer) *PaymentService {
	return NewPaymentService(bookings, trips, gateway, mailer, NewInvoiceService(""))
}

func seedBooking(store *fakeBookingStore, trip, orderID string) *models.Booking {
	booking := &models.Booking{
		Name:          "Asha",
		Email:         "asha@example.com",
		Trip:          trip,
		TravelDate:    "2026-09-15",
		Status:        utils.StatusPending,
		PaymentStatus: utils.PaymentUnpaid,
		OrderID:       orderID,
		CreatedAt:     time.Now(),
	}
	store.Insert(booking)
	if orderID != "" {
		store.bookings[booking.ID].OrderID = orderID
	}
	return booking
}

// --- IssueOrder ---

func TestIssueOrder_ChargesTripPriceInMinorUnits(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Goa Getaway", Price: "5000"})
	gateway := &fakeGateway{orderID: "order_abc"}
	service := newLifecycleService(bookings, trips, gateway, &fakeMailer{})

	booking := seedBooking(bookings, "Goa Getaway", "")

	checkout, err := service.IssueOrder(booking.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(500000), checkout.Amount)
	assert.Equal(t, 5000, checkout.Price)
	assert.Equal(t, "order_abc", checkout.OrderID)
	assert.Equal(t, utils.CurrencyINR, checkout.Currency)

	// Order is tagged with the booking id and traveler metadata
	assert.Len(t, gateway.calls, 1)
	assert.Equal(t, booking.ID, gateway.calls[0].receipt)
	assert.Equal(t, "Goa Getaway", gateway.calls[0].notes["trip"])
	assert.Equal(t, "asha@example.com", gateway.calls[0].notes["email"])

	// Order id persisted on the booking; status fields unchanged
	stored := bookings.bookings[booking.ID]
	assert.Equal(t, "order_abc", stored.OrderID)
	assert.Equal(t, utils.StatusPending, stored.Status)
	assert.Equal(t, utils.PaymentUnpaid, stored.PaymentStatus)
}

func TestIssueOrder_MissingTripChargesZero(t *testing.T) {
	bookings := newFakeBookingStore()
	gateway := &fakeGateway{orderID: "order_zero"}
	service := newLifecycleService(bookings, newFakeTripStore(), gateway, &fakeMailer{})

	booking := seedBooking(bookings, "Atlantis", "")

	checkout, err := service.IssueOrder(booking.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), checkout.Amount)
}

func TestIssueOrder_NonNumericPriceChargesZero(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Mystery Tour", Price: "call us"})
	gateway := &fakeGateway{orderID: "order_zero"}
	service := newLifecycleService(bookings, trips, gateway, &fakeMailer{})

	booking := seedBooking(bookings, "Mystery Tour", "")

	checkout, err := service.IssueOrder(booking.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), checkout.Amount)
}

func TestIssueOrder_GatewayFailureLeavesBookingUntouched(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Goa Getaway", Price: "5000"})
	gateway := &fakeGateway{createErr: errors.New("gateway down")}
	service := newLifecycleService(bookings, trips, gateway, &fakeMailer{})

	booking := seedBooking(bookings, "Goa Getaway", "")

	_, err := service.IssueOrder(booking.ID)

	assert.Error(t, err)
	stored := bookings.bookings[booking.ID]
	assert.Empty(t, stored.OrderID)
	assert.Equal(t, utils.StatusPending, stored.Status)
	assert.Equal(t, utils.PaymentUnpaid, stored.PaymentStatus)
}

func TestIssueOrder_UnknownBookingIsNotFound(t *testing.T) {
	service := newLifecycleService(newFakeBookingStore(), newFakeTripStore(), &fakeGateway{}, &fakeMailer{})

	_, err := service.IssueOrder("missing")

	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

// --- VerifyPayment ---

func TestVerifyPayment_InvalidSignatureNeverMutates(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Goa Getaway", Price: "5000"})
	mailer := &fakeMailer{}
	service := newLifecycleService(bookings, trips, &fakeGateway{}, mailer)

	booking := seedBooking(bookings, "Goa Getaway", "order_abc")

	for i := 0; i < 3; i++ {
		err := service.VerifyPayment("order_abc", "pay_123", "forged")

		assert.Error(t, err)
		appErr, ok := err.(*utils.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	}

	stored := bookings.bookings[booking.ID]
	assert.Equal(t, utils.StatusPending, stored.Status)
	assert.Equal(t, utils.PaymentUnpaid, stored.PaymentStatus)
	assert.Empty(t, mailer.sent)
}

func TestVerifyPayment_ConfirmsBookingAndSendsOneReceipt(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Goa Getaway", Price: "5000"})
	mailer := &fakeMailer{}
	service := newLifecycleService(bookings, trips, &fakeGateway{}, mailer)

	booking := seedBooking(bookings, "Goa Getaway", "order_abc")

	err := service.VerifyPayment("order_abc", "pay_123", "valid")

	assert.NoError(t, err)
	stored := bookings.bookings[booking.ID]
	assert.Equal(t, utils.StatusConfirmed, stored.Status)
	assert.Equal(t, utils.PaymentPaid, stored.PaymentStatus)

	// Exactly one receipt email with one attached invoice
	assert.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "asha@example.com", mail.to)
	assert.Equal(t, "Payment Receipt: Goa Getaway", mail.subject)
	assert.Contains(t, mail.body, "pay_123")
	assert.NotNil(t, mail.attachment)
	assert.Equal(t, InvoiceMimeType, mail.attachment.MimeType)
	assert.NotEmpty(t, mail.attachment.Data)
}

func TestVerifyPayment_UnknownOrderIsASilentNoOp(t *testing.T) {
	bookings := newFakeBookingStore()
	mailer := &fakeMailer{}
	service := newLifecycleService(bookings, newFakeTripStore(), &fakeGateway{}, mailer)

	booking := seedBooking(bookings, "Goa Getaway", "order_abc")

	// The gateway-facing caller must see success; the payment itself went
	// through at the gateway even though we have nothing to update.
	err := service.VerifyPayment("order_unknown", "pay_123", "valid")

	assert.NoError(t, err)
	stored := bookings.bookings[booking.ID]
	assert.Equal(t, utils.StatusPending, stored.Status)
	assert.Equal(t, utils.PaymentUnpaid, stored.PaymentStatus)
	assert.Empty(t, mailer.sent)
}

func TestVerifyPayment_ReplayConvergesButResendsEmail(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Goa Getaway", Price: "5000"})
	mailer := &fakeMailer{}
	service := newLifecycleService(bookings, trips, &fakeGateway{}, mailer)

	booking := seedBooking(bookings, "Goa Getaway", "order_abc")

	assert.NoError(t, service.VerifyPayment("order_abc", "pay_123", "valid"))
	assert.NoError(t, service.VerifyPayment("order_abc", "pay_123", "valid"))

	// Idempotent on final state, at-least-once on the side effect
	stored := bookings.bookings[booking.ID]
	assert.Equal(t, utils.StatusConfirmed, stored.Status)
	assert.Equal(t, utils.PaymentPaid, stored.PaymentStatus)
	assert.Len(t, mailer.sent, 2)
}

func TestVerifyPayment_EmailFailureDoesNotRevertTransition(t *testing.T) {
	bookings := newFakeBookingStore()
	trips := newFakeTripStore(&models.Trip{ID: "t1", Name: "Goa Getaway", Price: "5000"})
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	service := newLifecycleService(bookings, trips, &fakeGateway{}, mailer)

	booking := seedBooking(bookings, "Goa Getaway", "order_abc")

	err := service.VerifyPayment("order_abc", "pay_123", "valid")

	assert.NoError(t, err)
	stored := bookings.bookings[booking.ID]
	assert.Equal(t, utils.StatusConfirmed, stored.Status)
	assert.Equal(t, utils.PaymentPaid, stored.PaymentStatus)
}
