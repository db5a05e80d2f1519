package models

import "time"

// FileReference is a PayPal file attached to an invoice.
type FileReference struct {
	ID           string    `json:"id"            validate:"required"`
	ReferenceURL string    `json:"reference_url" validate:"required"`
	ContentType  string    `json:"content_type"  validate:"required"`
	CreateTime   time.Time `json:"create_time"   validate:"required"`
	// The size of the file, in bytes.
	Size string `json:"size" validate:"required"`
}

// PaymentTermType is the payment term type: due on receipt, on a specified
// date, or in a set number of days.
type PaymentTermType string

const (
	PaymentTermDueOnReceipt       PaymentTermType = "DUE_ON_RECEIPT"
	PaymentTermDueOnDateSpecified PaymentTermType = "DUE_ON_DATE_SPECIFIED"
	PaymentTermNet10              PaymentTermType = "NET_10"
	PaymentTermNet15              PaymentTermType = "NET_15"
	PaymentTermNet30              PaymentTermType = "NET_30"
	PaymentTermNet45              PaymentTermType = "NET_45"
	PaymentTermNet60              PaymentTermType = "NET_60"
	PaymentTermNet90              PaymentTermType = "NET_90"
	PaymentTermNoDueDate          PaymentTermType = "NO_DUE_DATE"
)

func (p *PaymentTermType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "PaymentTermType", p,
		PaymentTermDueOnReceipt, PaymentTermDueOnDateSpecified,
		PaymentTermNet10, PaymentTermNet15, PaymentTermNet30,
		PaymentTermNet45, PaymentTermNet60, PaymentTermNet90,
		PaymentTermNoDueDate)
}

// PaymentTerm is the payment due date for the invoice.
type PaymentTerm struct {
	TermType PaymentTermType `json:"term_type" validate:"required"`
	DueDate  *Date           `json:"due_date,omitempty"`
}

// FlowType is the flow variation that created an invoice.
type FlowType string

const (
	FlowTypeMultipleRecipientsGroup FlowType = "MULTIPLE_RECIPIENTS_GROUP"
	FlowTypeBatch                   FlowType = "BATCH"
	FlowTypeRegularSingle           FlowType = "REGULAR_SINGLE"
)

func (f *FlowType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "FlowType", f,
		FlowTypeMultipleRecipientsGroup, FlowTypeBatch, FlowTypeRegularSingle)
}

// InvoiceMetadata is the audit metadata of an invoice.
type InvoiceMetadata struct {
	CreateTime       *time.Time `json:"create_time,omitempty"`
	CreatedBy        string     `json:"created_by,omitempty"`
	LastUpdateTime   *time.Time `json:"last_update_time,omitempty"`
	LastUpdatedBy    string     `json:"last_updated_by,omitempty"`
	CancelTime       *time.Time `json:"cancel_time,omitempty"`
	CancelledBy      string     `json:"cancelled_by,omitempty"`
	FirstSentTime    *time.Time `json:"first_sent_time,omitempty"`
	LastSentTime     *time.Time `json:"last_sent_time,omitempty"`
	LastSentBy       string     `json:"last_sent_by,omitempty"`
	CreatedByFlow    FlowType   `json:"created_by_flow,omitempty"`
	RecipientViewURL string     `json:"recipient_view_url,omitempty"`
	InvoicerViewURL  string     `json:"invoicer_view_url,omitempty"`
}

// InvoiceDetail holds the invoice number, dates, payment terms and audit
// metadata of an invoice.
type InvoiceDetail struct {
	// The reference data, such as a post office (PO) number.
	Reference    string   `json:"reference,omitempty"`
	CurrencyCode Currency `json:"currency_code" validate:"required"`
	// A note to the invoice recipient, also shown in the notification email.
	Note               string           `json:"note,omitempty"`
	TermsAndConditions string           `json:"terms_and_conditions,omitempty"`
	Memo               string           `json:"memo,omitempty"`
	Attachments        []FileReference  `json:"attachments,omitempty" validate:"omitempty,dive"`
	InvoiceNumber      string           `json:"invoice_number,omitempty"`
	InvoiceDate        *Date            `json:"invoice_date,omitempty"`
	PaymentTerm        *PaymentTerm     `json:"payment_term,omitempty"`
	Metadata           *InvoiceMetadata `json:"metadata,omitempty"`
}

// InvoiceDetailBuilder assembles an InvoiceDetail. Only the currency code is
// required.
type InvoiceDetailBuilder struct {
	detail InvoiceDetail
}

// NewInvoiceDetailBuilder starts an InvoiceDetail in the given currency.
func NewInvoiceDetailBuilder(currency Currency) *InvoiceDetailBuilder {
	return &InvoiceDetailBuilder{detail: InvoiceDetail{CurrencyCode: currency}}
}

func (b *InvoiceDetailBuilder) Reference(reference string) *InvoiceDetailBuilder {
	b.detail.Reference = reference
	return b
}

func (b *InvoiceDetailBuilder) Note(note string) *InvoiceDetailBuilder {
	b.detail.Note = note
	return b
}

func (b *InvoiceDetailBuilder) TermsAndConditions(terms string) *InvoiceDetailBuilder {
	b.detail.TermsAndConditions = terms
	return b
}

func (b *InvoiceDetailBuilder) Memo(memo string) *InvoiceDetailBuilder {
	b.detail.Memo = memo
	return b
}

func (b *InvoiceDetailBuilder) InvoiceNumber(number string) *InvoiceDetailBuilder {
	b.detail.InvoiceNumber = number
	return b
}

func (b *InvoiceDetailBuilder) InvoiceDate(date Date) *InvoiceDetailBuilder {
	b.detail.InvoiceDate = &date
	return b
}

func (b *InvoiceDetailBuilder) PaymentTerm(term PaymentTerm) *InvoiceDetailBuilder {
	b.detail.PaymentTerm = &term
	return b
}

func (b *InvoiceDetailBuilder) Attachments(attachments ...FileReference) *InvoiceDetailBuilder {
	b.detail.Attachments = append(b.detail.Attachments, attachments...)
	return b
}

// Build validates that every required field was supplied.
func (b *InvoiceDetailBuilder) Build() (InvoiceDetail, error) {
	if err := checkBuilt("InvoiceDetail", b.detail); err != nil {
		return InvoiceDetail{}, err
	}
	return b.detail, nil
}

// Name is a party's name, used for invoicer and recipient information. The
// server decides which combination of parts it requires; none is enforced
// locally.
type Name struct {
	// The prefix, or title, to the party's name.
	Prefix     string `json:"prefix,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	Surname    string `json:"surname,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	Suffix     string `json:"suffix,omitempty"`
	// Deprecated by PayPal in favour of full_name.
	AlternateFullName string `json:"alternate_full_name,omitempty"`
	FullName          string `json:"full_name,omitempty"`
}

// PhoneDetail is a phone number with an optional extension.
type PhoneDetail struct {
	CountryCode     string    `json:"country_code"    validate:"required"`
	NationalNumber  string    `json:"national_number" validate:"required"`
	ExtensionNumber string    `json:"extension_number,omitempty"`
	PhoneType       PhoneType `json:"phone_type,omitempty"`
}

// InvoicerInfo is the invoicer information: business name, email, phones,
// website, tax ID, notes and logo.
type InvoicerInfo struct {
	BusinessName string `json:"business_name,omitempty"`
	Name         *Name  `json:"name,omitempty"`
	// Must be listed in the user's PayPal profile.
	EmailAddress    string        `json:"email_address,omitempty"`
	Phones          []PhoneDetail `json:"phones,omitempty" validate:"omitempty,dive"`
	Website         string        `json:"website,omitempty"`
	TaxID           string        `json:"tax_id,omitempty"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`
	// Must not be larger than 250 pixels wide by 90 pixels high.
	LogoURL string `json:"logo_url,omitempty"`
}

// BillingInfo is the billing information of the invoice recipient.
type BillingInfo struct {
	BusinessName string        `json:"business_name" validate:"required"`
	Name         *Name         `json:"name,omitempty"`
	Address      *Address      `json:"address,omitempty"`
	EmailAddress string        `json:"email_address,omitempty"`
	Phones       []PhoneDetail `json:"phones,omitempty" validate:"omitempty,dive"`
	// Maximum length: 40.
	AdditionalInfo string `json:"additional_info,omitempty"`
	// The language of the recipient's email message. Used only when the
	// recipient does not have a PayPal account.
	Language string `json:"language,omitempty"`
}

// ContactInformation is a recipient's contact information.
type ContactInformation struct {
	BusinessName string   `json:"business_name" validate:"required"`
	Name         *Name    `json:"name,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

// RecipientInfo is the billing and shipping information of an invoice
// recipient.
type RecipientInfo struct {
	BillingInfo  *BillingInfo        `json:"billing_info,omitempty"`
	ShippingInfo *ContactInformation `json:"shipping_info,omitempty"`
}

// Tax is the tax applied to invoice items or shipping.
type Tax struct {
	Name string `json:"name" validate:"required"`
	// The tax rate. Value is from 0 to 100, up to five decimal places.
	Percent string `json:"percent" validate:"required"`
	// The calculated tax amount, added to the item total.
	Amount *Money `json:"amount,omitempty"`
}

// InvoiceDiscount is a discount as a percent or amount, at item or invoice
// level. If both are provided, amount takes precedence.
type InvoiceDiscount struct {
	Percent string         `json:"percent,omitempty"`
	Amount  *InvoiceAmount `json:"amount,omitempty"`
}

// UnitOfMeasure is the unit of measure for an invoiced item.
type UnitOfMeasure string

const (
	// UnitOfMeasureQuantity is typically used for physical goods.
	UnitOfMeasureQuantity UnitOfMeasure = "QUANTITY"
	// UnitOfMeasureHours is typically used for services.
	UnitOfMeasureHours UnitOfMeasure = "HOURS"
	// UnitOfMeasureAmount hides unit_amount and quantity on the invoice.
	UnitOfMeasureAmount UnitOfMeasure = "AMOUNT"
)

func (u *UnitOfMeasure) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "UnitOfMeasure", u,
		UnitOfMeasureQuantity, UnitOfMeasureHours, UnitOfMeasureAmount)
}

// InvoiceItem is an invoice line item.
type InvoiceItem struct {
	// Read only, assigned by PayPal.
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	// Value is from -1000000 to 1000000, up to five decimal places.
	Quantity string `json:"quantity" validate:"required"`
	// The unit price, excluding tax and discount.
	UnitAmount    Money            `json:"unit_amount" validate:"required"`
	Tax           *Tax             `json:"tax,omitempty"`
	ItemDate      *time.Time       `json:"item_date,omitempty"`
	Discount      *InvoiceDiscount `json:"discount,omitempty"`
	UnitOfMeasure UnitOfMeasure    `json:"unit_of_measure,omitempty"`
}

// InvoiceItemBuilder assembles an InvoiceItem. The name, quantity and unit
// amount are required.
type InvoiceItemBuilder struct {
	item InvoiceItem
}

// NewInvoiceItemBuilder starts an InvoiceItem with its required fields.
func NewInvoiceItemBuilder(name, quantity string, unitAmount Money) *InvoiceItemBuilder {
	return &InvoiceItemBuilder{item: InvoiceItem{Name: name, Quantity: quantity, UnitAmount: unitAmount}}
}

func (b *InvoiceItemBuilder) Description(description string) *InvoiceItemBuilder {
	b.item.Description = description
	return b
}

func (b *InvoiceItemBuilder) Tax(tax Tax) *InvoiceItemBuilder {
	b.item.Tax = &tax
	return b
}

func (b *InvoiceItemBuilder) ItemDate(date time.Time) *InvoiceItemBuilder {
	b.item.ItemDate = &date
	return b
}

func (b *InvoiceItemBuilder) Discount(discount InvoiceDiscount) *InvoiceItemBuilder {
	b.item.Discount = &discount
	return b
}

func (b *InvoiceItemBuilder) UnitOfMeasure(unit UnitOfMeasure) *InvoiceItemBuilder {
	b.item.UnitOfMeasure = unit
	return b
}

// Build validates that every required field was supplied.
func (b *InvoiceItemBuilder) Build() (InvoiceItem, error) {
	if err := checkBuilt("InvoiceItem", b.item); err != nil {
		return InvoiceItem{}, err
	}
	return b.item, nil
}

// PartialPayment are the partial payment details of an invoice.
type PartialPayment struct {
	AllowPartialPayment *bool `json:"allow_partial_payment,omitempty"`
	// Valid only when allow_partial_payment is true.
	MinimumAmountDue *Money `json:"minimum_amount_due,omitempty"`
}

// InvoiceConfiguration are the invoice configuration details: partial
// payment, tip, and tax calculated after discount.
type InvoiceConfiguration struct {
	TaxCalculatedAfterDiscount *bool           `json:"tax_calculated_after_discount,omitempty"`
	TaxInclusive               *bool           `json:"tax_inclusive,omitempty"`
	AllowTip                   *bool           `json:"allow_tip,omitempty"`
	PartialPayment             *PartialPayment `json:"partial_payment,omitempty"`
	// The template that determines the layout of the invoice.
	TemplateID string `json:"template_id,omitempty"`
}

// AggregatedDiscount is the discount at invoice and item level.
type AggregatedDiscount struct {
	InvoiceDiscount *InvoiceDiscount `json:"invoice_discount,omitempty"`
	ItemDiscount    *Money           `json:"item_discount,omitempty"`
}

// ShippingCost is the shipping fee for all items, including tax on shipping.
type ShippingCost struct {
	Amount *Money `json:"amount,omitempty"`
	Tax    *Tax   `json:"tax,omitempty"`
}

// CustomAmount is a custom amount applied to an invoice.
type CustomAmount struct {
	Label  string `json:"label" validate:"required"`
	Amount *Money `json:"amount,omitempty"`
}

// InvoiceBreakdown decomposes an invoice amount into item total, discount,
// tax, shipping and custom amounts.
type InvoiceBreakdown struct {
	ItemTotal *Money              `json:"item_total,omitempty"`
	Discount  *AggregatedDiscount `json:"discount,omitempty"`
	TaxTotal  *Money              `json:"tax_total,omitempty"`
	Shipping  *ShippingCost       `json:"shipping,omitempty"`
	Custom    *CustomAmount       `json:"custom,omitempty"`
}

// InvoiceAmount is an amount of money with an optional invoice breakdown.
type InvoiceAmount struct {
	CurrencyCode Currency          `json:"currency_code" validate:"required"`
	Value        string            `json:"value"         validate:"required"`
	Breakdown    *InvoiceBreakdown `json:"breakdown,omitempty"`
}

// NewInvoiceAmount returns an InvoiceAmount with the given currency and
// decimal string value and no breakdown.
func NewInvoiceAmount(currency Currency, value string) InvoiceAmount {
	return InvoiceAmount{CurrencyCode: currency, Value: value}
}

// InvoicePaymentType indicates whether a payment was made through PayPal or
// externally in the invoicing flow.
type InvoicePaymentType string

const (
	InvoicePaymentTypePaypal   InvoicePaymentType = "PAYPAL"
	InvoicePaymentTypeExternal InvoicePaymentType = "EXTERNAL"
)

func (i *InvoicePaymentType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "InvoicePaymentType", i,
		InvoicePaymentTypePaypal, InvoicePaymentTypeExternal)
}

// InvoicePaymentMethod is the payment mode or method through which the
// invoicer can accept a payment.
type InvoicePaymentMethod string

const (
	InvoicePaymentMethodBankTransfer InvoicePaymentMethod = "BANK_TRANSFER"
	InvoicePaymentMethodCash         InvoicePaymentMethod = "CASH"
	InvoicePaymentMethodCheck        InvoicePaymentMethod = "CHECK"
	InvoicePaymentMethodCreditCard   InvoicePaymentMethod = "CREDIT_CARD"
	InvoicePaymentMethodDebitCard    InvoicePaymentMethod = "DEBIT_CARD"
	InvoicePaymentMethodPaypal       InvoicePaymentMethod = "PAYPAL"
	InvoicePaymentMethodWireTransfer InvoicePaymentMethod = "WIRE_TRANSFER"
	InvoicePaymentMethodOther        InvoicePaymentMethod = "OTHER"
)

func (i *InvoicePaymentMethod) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "InvoicePaymentMethod", i,
		InvoicePaymentMethodBankTransfer, InvoicePaymentMethodCash,
		InvoicePaymentMethodCheck, InvoicePaymentMethodCreditCard,
		InvoicePaymentMethodDebitCard, InvoicePaymentMethodPaypal,
		InvoicePaymentMethodWireTransfer, InvoicePaymentMethodOther)
}

// InvoicePaymentDetail is a payment registered against an invoice.
type InvoicePaymentDetail struct {
	Type InvoicePaymentType `json:"type,omitempty"`
	// Required for the PAYPAL payment type.
	PaymentID   string               `json:"payment_id,omitempty"`
	PaymentDate *time.Time           `json:"payment_date,omitempty"`
	Method      InvoicePaymentMethod `json:"method" validate:"required"`
	// A note associated with an external cash or check payment.
	Note string `json:"note,omitempty"`
	// If omitted, the total invoice amount is marked as paid. Cannot exceed
	// the amount due.
	Amount       *Money              `json:"amount,omitempty"`
	ShippingInfo *ContactInformation `json:"shipping_info,omitempty"`
}

// InvoicePayments are the payments registered against an invoice. Read only.
type InvoicePayments struct {
	PaidAmount   *Money                 `json:"paid_amount,omitempty"`
	Transactions []InvoicePaymentDetail `json:"transactions,omitempty" validate:"omitempty,dive"`
}

// InvoiceRefundDetail is a refund registered against an invoice.
type InvoiceRefundDetail struct {
	Type InvoicePaymentType `json:"type,omitempty"`
	// Required for the PAYPAL refund type.
	RefundID   string     `json:"refund_id,omitempty"`
	RefundDate *time.Time `json:"refund_date,omitempty"`
	// If omitted, the total invoice paid amount is recorded as refunded.
	Amount *Money               `json:"amount,omitempty"`
	Method InvoicePaymentMethod `json:"method" validate:"required"`
}

// InvoiceRefunds are the refunds registered against an invoice. Read only.
type InvoiceRefunds struct {
	RefundAmount *Money                `json:"refund_amount,omitempty"`
	Transactions []InvoiceRefundDetail `json:"transactions,omitempty" validate:"omitempty,dive"`
}

// InvoiceStatus is the status of an invoice.
type InvoiceStatus string

const (
	// InvoiceStatusDraft means the invoice is not yet sent to the payer.
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	// InvoiceStatusSent means the invoice has been sent and payment is awaited.
	InvoiceStatusSent InvoiceStatus = "SENT"
	// InvoiceStatusScheduled means the invoice is scheduled on a future date.
	InvoiceStatusScheduled InvoiceStatus = "SCHEDULED"
	// InvoiceStatusPaid means the payer has paid for the invoice.
	InvoiceStatusPaid InvoiceStatus = "PAID"
	// InvoiceStatusMarkedAsPaid means the invoicer marked the invoice as paid.
	InvoiceStatusMarkedAsPaid InvoiceStatus = "MARKED_AS_PAID"
	// InvoiceStatusCancelled means the invoicer cancelled the invoice.
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
	// InvoiceStatusRefunded means the invoicer refunded the invoice.
	InvoiceStatusRefunded InvoiceStatus = "REFUNDED"
	// InvoiceStatusPartiallyPaid means the payer partially paid the invoice.
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	// InvoiceStatusPartiallyRefunded means the invoicer partially refunded
	// the invoice.
	InvoiceStatusPartiallyRefunded InvoiceStatus = "PARTIALLY_REFUNDED"
	// InvoiceStatusMarkedAsRefunded means the invoicer marked the invoice as
	// refunded.
	InvoiceStatusMarkedAsRefunded InvoiceStatus = "MARKED_AS_REFUNDED"
	// InvoiceStatusUnpaid means the invoicer is yet to receive the payment.
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	// InvoiceStatusPaymentPending means the payment is under pending review.
	InvoiceStatusPaymentPending InvoiceStatus = "PAYMENT_PENDING"
)

func (i *InvoiceStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "InvoiceStatus", i,
		InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusScheduled,
		InvoiceStatusPaid, InvoiceStatusMarkedAsPaid, InvoiceStatusCancelled,
		InvoiceStatusRefunded, InvoiceStatusPartiallyPaid,
		InvoiceStatusPartiallyRefunded, InvoiceStatusMarkedAsRefunded,
		InvoiceStatusUnpaid, InvoiceStatusPaymentPending)
}

// InvoicePayload is the request body used to create a draft invoice.
type InvoicePayload struct {
	Detail   InvoiceDetail `json:"detail" validate:"required"`
	Invoicer *InvoicerInfo `json:"invoicer,omitempty"`
	// The billing and shipping information of the recipients.
	PrimaryRecipients []RecipientInfo `json:"primary_recipients,omitempty" validate:"omitempty,dive"`
	// One or more CC: emails to which notifications are sent.
	AdditionalRecipients []string              `json:"additional_recipients,omitempty"`
	Items                []InvoiceItem         `json:"items" validate:"required,min=1,dive"`
	Configuration        *InvoiceConfiguration `json:"configuration,omitempty"`
	Amount               *InvoiceAmount        `json:"amount,omitempty"`
	Payments             *InvoicePayments      `json:"payments,omitempty"`
	Refunds              *InvoiceRefunds       `json:"refunds,omitempty"`
}

// InvoicePayloadBuilder assembles an InvoicePayload. The detail and at least
// one line item are required.
type InvoicePayloadBuilder struct {
	payload InvoicePayload
}

// NewInvoicePayloadBuilder starts an InvoicePayload with its invoice detail.
func NewInvoicePayloadBuilder(detail InvoiceDetail) *InvoicePayloadBuilder {
	return &InvoicePayloadBuilder{payload: InvoicePayload{Detail: detail}}
}

func (b *InvoicePayloadBuilder) AddItem(item InvoiceItem) *InvoicePayloadBuilder {
	b.payload.Items = append(b.payload.Items, item)
	return b
}

func (b *InvoicePayloadBuilder) Invoicer(invoicer InvoicerInfo) *InvoicePayloadBuilder {
	b.payload.Invoicer = &invoicer
	return b
}

func (b *InvoicePayloadBuilder) PrimaryRecipients(recipients ...RecipientInfo) *InvoicePayloadBuilder {
	b.payload.PrimaryRecipients = append(b.payload.PrimaryRecipients, recipients...)
	return b
}

func (b *InvoicePayloadBuilder) AdditionalRecipients(emails ...string) *InvoicePayloadBuilder {
	b.payload.AdditionalRecipients = append(b.payload.AdditionalRecipients, emails...)
	return b
}

func (b *InvoicePayloadBuilder) Configuration(configuration InvoiceConfiguration) *InvoicePayloadBuilder {
	b.payload.Configuration = &configuration
	return b
}

func (b *InvoicePayloadBuilder) Amount(amount InvoiceAmount) *InvoicePayloadBuilder {
	b.payload.Amount = &amount
	return b
}

// Build validates that every required field was supplied.
func (b *InvoicePayloadBuilder) Build() (InvoicePayload, error) {
	if err := checkBuilt("InvoicePayload", b.payload); err != nil {
		return InvoicePayload{}, err
	}
	return b.payload, nil
}

// Invoice is an invoice as returned by the Invoicing API.
type Invoice struct {
	ID string `json:"id" validate:"required"`
	// The group invoice to which the invoice is related, if any.
	ParentID             string                `json:"parent_id,omitempty"`
	Status               InvoiceStatus         `json:"status" validate:"required"`
	Detail               InvoiceDetail         `json:"detail" validate:"required"`
	Invoicer             *InvoicerInfo         `json:"invoicer,omitempty"`
	PrimaryRecipients    []RecipientInfo       `json:"primary_recipients,omitempty" validate:"omitempty,dive"`
	AdditionalRecipients []string              `json:"additional_recipients,omitempty"`
	Items                []InvoiceItem         `json:"items,omitempty" validate:"omitempty,dive"`
	Configuration        *InvoiceConfiguration `json:"configuration,omitempty"`
	Amount               InvoiceAmount         `json:"amount" validate:"required"`
	// The balance outstanding after payments.
	DueAmount *Money `json:"due_amount,omitempty"`
	// The amount paid by the payer as gratuity to the invoicer.
	Gratuity *Money            `json:"gratuity,omitempty"`
	Payments *InvoicePayments  `json:"payments,omitempty"`
	Refunds  *InvoiceRefunds   `json:"refunds,omitempty"`
	Links    []LinkDescription `json:"links,omitempty" validate:"omitempty,dive"`
}

// InvoiceList is a page of invoices.
type InvoiceList struct {
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	Items      []Invoice         `json:"items" validate:"omitempty,dive"`
	Links      []LinkDescription `json:"links" validate:"omitempty,dive"`
}

// CancelReason is the notification options used when cancelling an invoice.
type CancelReason struct {
	// The subject of the email notification to the recipient.
	Subject string `json:"subject,omitempty"`
	// A note to the payer.
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
}

// QR code actions accepted by GenerateQRCode.
const (
	QRActionPay     = "pay"
	QRActionDetails = "details"
)

// QRCodeParams are the QR code generation parameters. Width and height are
// in pixels, from 150 to 500.
type QRCodeParams struct {
	Width  int `json:"width"  validate:"required"`
	Height int `json:"height" validate:"required"`
	// The type of URL for which to generate a QR code: QRActionPay or
	// QRActionDetails.
	Action string `json:"action,omitempty"`
}

// RecordPaymentPayload records a payment made against an invoice outside of
// PayPal.
type RecordPaymentPayload struct {
	PaymentID    string               `json:"payment_id,omitempty"`
	PaymentDate  *time.Time           `json:"payment_date,omitempty"`
	Method       InvoicePaymentMethod `json:"method" validate:"required"`
	Note         string               `json:"note,omitempty"`
	Amount       InvoiceAmount        `json:"amount" validate:"required"`
	ShippingInfo *ContactInformation  `json:"shipping_info,omitempty"`
}

// RecordPaymentPayloadBuilder assembles a RecordPaymentPayload. The method
// and amount are required.
type RecordPaymentPayloadBuilder struct {
	payload RecordPaymentPayload
}

// NewRecordPaymentPayloadBuilder starts a RecordPaymentPayload with its
// required fields.
func NewRecordPaymentPayloadBuilder(method InvoicePaymentMethod, amount InvoiceAmount) *RecordPaymentPayloadBuilder {
	return &RecordPaymentPayloadBuilder{payload: RecordPaymentPayload{Method: method, Amount: amount}}
}

func (b *RecordPaymentPayloadBuilder) PaymentID(paymentID string) *RecordPaymentPayloadBuilder {
	b.payload.PaymentID = paymentID
	return b
}

func (b *RecordPaymentPayloadBuilder) PaymentDate(date time.Time) *RecordPaymentPayloadBuilder {
	b.payload.PaymentDate = &date
	return b
}

func (b *RecordPaymentPayloadBuilder) Note(note string) *RecordPaymentPayloadBuilder {
	b.payload.Note = note
	return b
}

func (b *RecordPaymentPayloadBuilder) ShippingInfo(info ContactInformation) *RecordPaymentPayloadBuilder {
	b.payload.ShippingInfo = &info
	return b
}

// Build validates that every required field was supplied.
func (b *RecordPaymentPayloadBuilder) Build() (RecordPaymentPayload, error) {
	if err := checkBuilt("RecordPaymentPayload", b.payload); err != nil {
		return RecordPaymentPayload{}, err
	}
	return b.payload, nil
}

// PaymentReference is the response of recording a payment against an
// invoice.
type PaymentReference struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

// SendInvoicePayload is the notification options used when sending an
// invoice.
type SendInvoicePayload struct {
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	Subject              string   `json:"subject,omitempty"`
}
