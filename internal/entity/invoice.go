package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPartial,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice status %q", ErrInvalidArgument, s)
	}
}

type InvoiceStatusChart map[InvoiceStatus][]InvoiceStatus

// InvoiceStatusTransitions is the only place status movement is defined.
// paid and cancelled are terminal.
var InvoiceStatusTransitions = InvoiceStatusChart{
	InvoiceStatusDraft:   {InvoiceStatusSent, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusCancelled},
	InvoiceStatusSent:    {InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusPartial: {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusOverdue: {InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusCancelled},
}

func (c InvoiceStatusChart) Allowed(from, to InvoiceStatus) bool {
	if from == to {
		return true
	}

	for _, status := range c[from] {
		if status == to {
			return true
		}
	}

	return false
}

type InvoiceType string

const (
	InvoiceTypeCustomer  InvoiceType = "customer"
	InvoiceTypeOnlineApp InvoiceType = "online_app"
	InvoiceTypeCharter   InvoiceType = "charter"
)

func (t InvoiceType) String() string {
	return string(t)
}

func (t InvoiceType) Validate() error {
	switch t {
	case InvoiceTypeCustomer, InvoiceTypeOnlineApp, InvoiceTypeCharter:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice type %q", ErrInvalidArgument, t)
	}
}

type InvoiceDirection string

const (
	InvoiceDirectionSales    InvoiceDirection = "sales"
	InvoiceDirectionPurchase InvoiceDirection = "purchase"
)

func (d InvoiceDirection) String() string {
	return string(d)
}

func (d InvoiceDirection) Validate() error {
	switch d {
	case InvoiceDirectionSales, InvoiceDirectionPurchase:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice direction %q", ErrInvalidArgument, d)
	}
}

type LineItem struct {
	ID              uuid.UUID
	InvoiceID       uuid.UUID
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	GSTPercentage   decimal.Decimal
	RateIncludesGST bool
	BaseAmount      decimal.Decimal
	GSTAmount       decimal.Decimal
	Amount          decimal.Decimal
	IsDeduction     bool
	CreatedAt       time.Time
}

var oneHundred = decimal.New(100, 0)

// Calculate fills BaseAmount, GSTAmount and Amount from quantity, unit price
// and GST percentage. Intermediate math keeps full precision; the three stored
// amounts are rounded to 2 decimal places at the end.
func (li *LineItem) Calculate() {
	if li.RateIncludesGST {
		total := li.Quantity.Mul(li.UnitPrice)
		base := total.Div(decimal.New(1, 0).Add(li.GSTPercentage.Div(oneHundred)))
		gst := total.Sub(base)

		li.BaseAmount = base.Round(2)
		li.GSTAmount = gst.Round(2)
		li.Amount = total.Round(2)

		return
	}

	base := li.Quantity.Mul(li.UnitPrice)
	gst := base.Mul(li.GSTPercentage).Div(oneHundred)

	li.BaseAmount = base.Round(2)
	li.GSTAmount = gst.Round(2)
	li.Amount = base.Add(gst).Round(2)
}

type Payment struct {
	ID              uuid.UUID
	InvoiceID       uuid.UUID
	Amount          decimal.Decimal
	PaymentDate     time.Time
	PaymentMode     string
	ReferenceNumber string
	Notes           string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

type Invoice struct {
	ID              uuid.UUID
	InvoiceNumber   string
	InvoiceDate     time.Time
	DueDate         *time.Time
	InvoiceType     InvoiceType
	Direction       InvoiceDirection
	Category        string
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CustomerGST     string
	VendorName      string
	VendorAddress   string
	VendorPhone     string
	VendorGST       string
	TripID          uuid.UUID
	BusID           uuid.UUID
	Subtotal        decimal.Decimal
	GSTAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	AmountPaid      decimal.Decimal
	BalanceDue      decimal.Decimal
	Status          InvoiceStatus
	Notes           string
	Terms           string
	LineItems       []LineItem
	Payments        []Payment
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ApplyLineItems computes every line item and aggregates the invoice totals.
// Deduction rows subtract their base and GST from the running sums. Runs once
// at creation; later invoice updates never recompute line items.
func (i *Invoice) ApplyLineItems() {
	subtotal := decimal.Zero
	gst := decimal.Zero

	for idx := range i.LineItems {
		li := &i.LineItems[idx]
		li.InvoiceID = i.ID
		li.Calculate()

		if li.IsDeduction {
			subtotal = subtotal.Sub(li.BaseAmount)
			gst = gst.Sub(li.GSTAmount)
		} else {
			subtotal = subtotal.Add(li.BaseAmount)
			gst = gst.Add(li.GSTAmount)
		}
	}

	i.Subtotal = subtotal
	i.GSTAmount = gst
	i.TotalAmount = subtotal.Add(gst)
	i.AmountPaid = decimal.Zero
	i.BalanceDue = i.TotalAmount
}

// ApplyPayment reconciles a payment against the invoice. The overpayment case
// is allowed on purpose (balance goes negative, it tracks refunds owed);
// non-positive amounts are rejected. Status moves only forward through
// InvoiceStatusTransitions, so a payment against a cancelled invoice fails.
func (i *Invoice) ApplyPayment(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: payment amount %s must be positive", ErrInvalidArgument, amount)
	}

	paid := i.AmountPaid.Add(amount)
	balance := i.TotalAmount.Sub(paid)

	next := i.Status

	switch {
	case balance.Sign() <= 0:
		next = InvoiceStatusPaid
	case paid.Sign() > 0:
		next = InvoiceStatusPartial
	}

	if !InvoiceStatusTransitions.Allowed(i.Status, next) {
		return fmt.Errorf("%w: invoice %q cannot move from %q to %q",
			ErrInvalidTransition, i.InvoiceNumber, i.Status, next)
	}

	i.AmountPaid = paid
	i.BalanceDue = balance
	i.Status = next

	return nil
}

// SetStatus validates a direct status change against the transition chart.
func (i *Invoice) SetStatus(next InvoiceStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !InvoiceStatusTransitions.Allowed(i.Status, next) {
		return fmt.Errorf("%w: invoice %q cannot move from %q to %q",
			ErrInvalidTransition, i.InvoiceNumber, i.Status, next)
	}

	i.Status = next

	return nil
}

type InvoiceFilter struct {
	Status    *InvoiceStatus
	Direction *InvoiceDirection
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     uint64
	Offset    uint64
}
