package models

import (
	"encoding/json"
	"time"
)

// AuthorizationStatus is the status of a payment authorization.
type AuthorizationStatus string

const (
	AuthorizationStatusCreated           AuthorizationStatus = "CREATED"
	AuthorizationStatusCaptured          AuthorizationStatus = "CAPTURED"
	AuthorizationStatusDenied            AuthorizationStatus = "DENIED"
	AuthorizationStatusExpired           AuthorizationStatus = "EXPIRED"
	AuthorizationStatusPartiallyExpired  AuthorizationStatus = "PARTIALLY_EXPIRED"
	AuthorizationStatusPartiallyCaptured AuthorizationStatus = "PARTIALLY_CAPTURED"
	AuthorizationStatusVoided            AuthorizationStatus = "VOIDED"
	AuthorizationStatusPending           AuthorizationStatus = "PENDING"
)

func (a *AuthorizationStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "AuthorizationStatus", a,
		AuthorizationStatusCreated, AuthorizationStatusCaptured,
		AuthorizationStatusDenied, AuthorizationStatusExpired,
		AuthorizationStatusPartiallyExpired, AuthorizationStatusPartiallyCaptured,
		AuthorizationStatusVoided, AuthorizationStatusPending)
}

// AuthorizationStatusDetailsReason explains why an authorization is pending.
type AuthorizationStatusDetailsReason string

const (
	// AuthorizationReasonPendingReview means the authorized payment is
	// pending manual review.
	AuthorizationReasonPendingReview AuthorizationStatusDetailsReason = "PENDING_REVIEW"
)

func (a *AuthorizationStatusDetailsReason) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "AuthorizationStatusDetailsReason", a, AuthorizationReasonPendingReview)
}

// AuthorizationStatusDetails are the details of a pending authorization.
type AuthorizationStatusDetails struct {
	Reason AuthorizationStatusDetailsReason `json:"reason" validate:"required"`
}

// SellerProtectionStatus indicates whether the transaction is eligible for
// PayPal Seller Protection.
type SellerProtectionStatus string

const (
	SellerProtectionEligible          SellerProtectionStatus = "ELIGIBLE"
	SellerProtectionPartiallyEligible SellerProtectionStatus = "PARTIALLY_ELIGIBLE"
	SellerProtectionNotEligible       SellerProtectionStatus = "NOT_ELIGIBLE"
)

func (s *SellerProtectionStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "SellerProtectionStatus", s,
		SellerProtectionEligible, SellerProtectionPartiallyEligible,
		SellerProtectionNotEligible)
}

// SellerProtection is the level of protection offered as defined by PayPal
// Seller Protection for Merchants.
type SellerProtection struct {
	Status            SellerProtectionStatus `json:"status,omitempty"`
	DisputeCategories []string               `json:"dispute_categories,omitempty"`
}

// NetworkTransactionReference holds reference values used by the card
// network to identify a transaction.
type NetworkTransactionReference struct {
	ID                      string `json:"id" validate:"required"`
	Date                    string `json:"date,omitempty"`
	AcquirerReferenceNumber string `json:"acquirer_reference_number,omitempty"`
	Network                 string `json:"network,omitempty"`
}

// AuthorizationWithData is a payment authorization with additional payment
// details.
type AuthorizationWithData struct {
	Status           AuthorizationStatus        `json:"status" validate:"required"`
	StatusDetails    AuthorizationStatusDetails `json:"status_details" validate:"required"`
	ID               string                     `json:"id,omitempty"`
	InvoiceID        string                     `json:"invoice_id,omitempty"`
	CustomID         string                     `json:"custom_id,omitempty"`
	Links            []LinkDescription          `json:"links,omitempty" validate:"omitempty,dive"`
	Amount           *Money                     `json:"amount,omitempty"`
	SellerProtection *SellerProtection          `json:"seller_protection,omitempty"`
	ExpirationTime   *time.Time                 `json:"expiration_time,omitempty"`
	CreateTime       *time.Time                 `json:"create_time,omitempty"`
	UpdateTime       *time.Time                 `json:"update_time,omitempty"`
	// The processor response for direct credit card transactions, passed
	// through opaquely.
	ProcessorResponse json.RawMessage `json:"processor_response,omitempty"`
}

// CaptureStatus is the status of a captured payment.
type CaptureStatus string

const (
	CaptureStatusCompleted         CaptureStatus = "COMPLETED"
	CaptureStatusDeclined          CaptureStatus = "DECLINED"
	CaptureStatusPartiallyRefunded CaptureStatus = "PARTIALLY_REFUNDED"
	CaptureStatusPending           CaptureStatus = "PENDING"
	CaptureStatusRefunded          CaptureStatus = "REFUNDED"
)

func (c *CaptureStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "CaptureStatus", c,
		CaptureStatusCompleted, CaptureStatusDeclined,
		CaptureStatusPartiallyRefunded, CaptureStatusPending,
		CaptureStatusRefunded)
}

// CaptureStatusDetailsReason explains why a captured payment is pending or
// was denied.
type CaptureStatusDetailsReason string

const (
	CaptureReasonBuyerComplaint                          CaptureStatusDetailsReason = "BUYER_COMPLAINT"
	CaptureReasonChargeback                              CaptureStatusDetailsReason = "CHARGEBACK"
	CaptureReasonEcheck                                  CaptureStatusDetailsReason = "ECHECK"
	CaptureReasonInternationalWithdrawal                 CaptureStatusDetailsReason = "INTERNATIONAL_WITHDRAWAL"
	CaptureReasonOther                                   CaptureStatusDetailsReason = "OTHER"
	CaptureReasonPendingReview                           CaptureStatusDetailsReason = "PENDING_REVIEW"
	CaptureReasonReceivingPreferenceMandatesManualAction CaptureStatusDetailsReason = "RECEIVING_PREFERENCE_MANDATES_MANUAL_ACTION"
	CaptureReasonRefunded                                CaptureStatusDetailsReason = "REFUNDED"
	CaptureReasonTransactionApprovedAwaitingFunding      CaptureStatusDetailsReason = "TRANSACTION_APPROVED_AWAITING_FUNDING"
	CaptureReasonUnilateral                              CaptureStatusDetailsReason = "UNILATERAL"
	CaptureReasonVerificationRequired                    CaptureStatusDetailsReason = "VERIFICATION_REQUIRED"
)

func (c *CaptureStatusDetailsReason) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "CaptureStatusDetailsReason", c,
		CaptureReasonBuyerComplaint, CaptureReasonChargeback,
		CaptureReasonEcheck, CaptureReasonInternationalWithdrawal,
		CaptureReasonOther, CaptureReasonPendingReview,
		CaptureReasonReceivingPreferenceMandatesManualAction,
		CaptureReasonRefunded, CaptureReasonTransactionApprovedAwaitingFunding,
		CaptureReasonUnilateral, CaptureReasonVerificationRequired)
}

// CaptureStatusDetails are the details of the captured payment status.
type CaptureStatusDetails struct {
	Reason CaptureStatusDetailsReason `json:"reason" validate:"required"`
}

// ExchangeRateDetail is the exchange rate that determines the amount
// credited to the payee's PayPal account.
type ExchangeRateDetail struct {
	// The target currency amount, equivalent to one unit of the source
	// currency.
	Value          string `json:"value" validate:"required"`
	SourceCurrency string `json:"source_currency,omitempty"`
	TargetCurrency string `json:"target_currency,omitempty"`
}

// SellerReceivableBreakdown is the detailed breakdown of the capture
// activity. Not available for transactions in pending state.
type SellerReceivableBreakdown struct {
	PlatformFees []PlatformFee `json:"platform_fees,omitempty" validate:"omitempty,dive"`
	GrossAmount  Money         `json:"gross_amount" validate:"required"`
	PaypalFee    Money         `json:"paypal_fee"   validate:"required"`
	// Returned only when the fee is charged in the receivable currency.
	PaypalFeeInReceivableCurrency *Money              `json:"paypal_fee_in_receivable_currency,omitempty"`
	NetAmount                     *Money              `json:"net_amount,omitempty"`
	ReceivableAmount              *Money              `json:"receivable_amount,omitempty"`
	ExchangeRate                  *ExchangeRateDetail `json:"exchange_rate,omitempty"`
}

// Capture is a captured payment.
type Capture struct {
	CreateTime *time.Time `json:"create_time,omitempty"`
	UpdateTime *time.Time `json:"update_time,omitempty"`
	ID         string     `json:"id,omitempty"`
	InvoiceID  string     `json:"invoice_id,omitempty"`
	CustomID   string     `json:"custom_id,omitempty"`
	// Whether additional captures can be made against the authorization.
	FinalCapture                *bool                        `json:"final_capture,omitempty"`
	Links                       []LinkDescription            `json:"links,omitempty" validate:"omitempty,dive"`
	Amount                      Money                        `json:"amount" validate:"required"`
	NetworkTransactionReference *NetworkTransactionReference `json:"network_transaction_reference,omitempty"`
	SellerProtection            *SellerProtection            `json:"seller_protection,omitempty"`
	Status                      CaptureStatus                `json:"status" validate:"required"`
	StatusDetails               *CaptureStatusDetails        `json:"status_details,omitempty"`
	SellerReceivableBreakdown   *SellerReceivableBreakdown   `json:"seller_receivable_breakdown,omitempty"`
	DisbursementMode            DisbursementMode             `json:"disbursement_mode,omitempty"`
	ProcessorResponse           json.RawMessage              `json:"processor_response,omitempty"`
}

// RefundStatus is the status of a refund.
type RefundStatus string

const (
	RefundStatusCancelled RefundStatus = "CANCELLED"
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusFailed    RefundStatus = "FAILED"
)

func (r *RefundStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "RefundStatus", r,
		RefundStatusCancelled, RefundStatusPending,
		RefundStatusCompleted, RefundStatusFailed)
}

// RefundStatusDetailsReason explains why a refund is pending or failed.
type RefundStatusDetailsReason string

const (
	// RefundReasonEcheck means the customer's account is funded through an
	// eCheck that has not yet cleared.
	RefundReasonEcheck RefundStatusDetailsReason = "ECHECK"
)

func (r *RefundStatusDetailsReason) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "RefundStatusDetailsReason", r, RefundReasonEcheck)
}

// RefundStatusDetails are the details of the refund status.
type RefundStatusDetails struct {
	Reason RefundStatusDetailsReason `json:"reason" validate:"required"`
}

// ExchangeRate is the exchange rate applied to a cross-currency refund.
type ExchangeRate struct {
	SourceCurrency Currency `json:"source_currency" validate:"required"`
	TargetCurrency Currency `json:"target_currency" validate:"required"`
	Value          string   `json:"value"           validate:"required"`
}

// NetAmountBreakdown is a breakdown value for the net refund amount.
// Returned when the refund currency differs from the currency of the PayPal
// account where the payee holds their funds.
type NetAmountBreakdown struct {
	ConvertedAmount Money        `json:"converted_amount" validate:"required"`
	ExchangeRate    ExchangeRate `json:"exchange_rate"    validate:"required"`
	PayableAmount   Money        `json:"payable_amount"   validate:"required"`
}

// SellerPayableBreakdown is the breakdown of a refund.
type SellerPayableBreakdown struct {
	PlatformFees                  []PlatformFee        `json:"platform_fees,omitempty" validate:"omitempty,dive"`
	NetAmountBreakdown            []NetAmountBreakdown `json:"net_amount_breakdown,omitempty" validate:"omitempty,dive"`
	GrossAmount                   *Money               `json:"gross_amount,omitempty"`
	PaypalFee                     *Money               `json:"paypal_fee,omitempty"`
	PaypalFeeInReceivableCurrency *Money               `json:"paypal_fee_in_receivable_currency,omitempty"`
	NetAmount                     *Money               `json:"net_amount,omitempty"`
	NetAmountInReceivableCurrency *Money               `json:"net_amount_in_receivable_currency,omitempty"`
	// The total amount refunded from the original capture to date.
	TotalRefundedAmount Money `json:"total_refunded_amount" validate:"required"`
}

// Refund is a refund of a captured payment.
type Refund struct {
	Status                  RefundStatus           `json:"status" validate:"required"`
	StatusDetails           *RefundStatusDetails   `json:"status_details,omitempty"`
	ID                      string                 `json:"id" validate:"required"`
	InvoiceID               string                 `json:"invoice_id,omitempty"`
	CustomerID              string                 `json:"customer_id,omitempty"`
	AcquirerReferenceNumber string                 `json:"acquirer_reference_number,omitempty"`
	NoteToPayer             string                 `json:"note_to_payer,omitempty"`
	SellerPayableBreakdown  SellerPayableBreakdown `json:"seller_payable_breakdown" validate:"required"`
	Links                   []LinkDescription      `json:"links" validate:"required,dive"`
	Amount                  Money                  `json:"amount" validate:"required"`
	Payer                   *Payer                 `json:"payer,omitempty"`
	CreateTime              *time.Time             `json:"create_time,omitempty"`
	UpdateTime              *time.Time             `json:"update_time,omitempty"`
}

// PaymentCollection is the comprehensive history of payments for a purchase
// unit.
type PaymentCollection struct {
	Authorizations []AuthorizationWithData `json:"authorizations,omitempty" validate:"omitempty,dive"`
	Captures       []Capture               `json:"captures,omitempty" validate:"omitempty,dive"`
	Refunds        []Refund                `json:"refunds,omitempty" validate:"omitempty,dive"`
}
