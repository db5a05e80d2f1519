package models

import (
	"encoding/json"
	"time"
)

// Intent is the intent to either capture payment immediately or authorize a
// payment for an order after order creation.
type Intent string

const (
	// IntentCapture captures payment immediately after the customer pays.
	IntentCapture Intent = "CAPTURE"
	// IntentAuthorize authorizes a payment and places funds on hold after the
	// customer makes a payment. A separate request captures the payment.
	IntentAuthorize Intent = "AUTHORIZE"
)

func (i *Intent) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "Intent", i, IntentCapture, IntentAuthorize)
}

// PayerName is the name of the customer who approves and pays for an order.
type PayerName struct {
	GivenName string `json:"given_name" validate:"required"`
	Surname   string `json:"surname"    validate:"required"`
}

// PhoneNumber is a phone number in its canonical international E.164
// numbering plan format.
type PhoneNumber struct {
	CountryCode    string `json:"country_code,omitempty"`
	NationalNumber string `json:"national_number" validate:"required"`
}

// Phone is the phone number of the customer.
type Phone struct {
	PhoneType   PhoneType   `json:"phone_type,omitempty"`
	PhoneNumber PhoneNumber `json:"phone_number" validate:"required"`
}

// TaxIDType is the customer's tax ID type, supported for the PayPal payment
// method only.
type TaxIDType string

const (
	// TaxIDTypeBRCPF is the individual tax ID type.
	TaxIDTypeBRCPF TaxIDType = "BR_CPF"
	// TaxIDTypeBRCNPJ is the business tax ID type.
	TaxIDTypeBRCNPJ TaxIDType = "BR_CNPJ"
)

func (t *TaxIDType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "TaxIDType", t, TaxIDTypeBRCPF, TaxIDTypeBRCNPJ)
}

// TaxInfo is the tax information of the payer. Required only for Brazilian
// payers.
type TaxInfo struct {
	TaxID     string    `json:"tax_id"      validate:"required"`
	TaxIDType TaxIDType `json:"tax_id_type" validate:"required"`
}

// Payer is the customer who approves and pays for the order.
type Payer struct {
	Name         *PayerName `json:"name,omitempty"`
	EmailAddress string     `json:"email_address,omitempty"`
	PayerID      string     `json:"payer_id,omitempty"`
	Phone        *Phone     `json:"phone,omitempty"`
	// The birth date of the payer in YYYY-MM-DD format.
	BirthDate string   `json:"birth_date,omitempty"`
	TaxInfo   *TaxInfo `json:"tax_info,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// Breakdown decomposes an order amount into item total, tax, shipping,
// handling, insurance and discounts. When present the sub-totals are expected
// to sum to the parent amount; the server, not this layer, enforces that.
type Breakdown struct {
	ItemTotal        *Money `json:"item_total,omitempty"`
	Shipping         *Money `json:"shipping,omitempty"`
	Handling         *Money `json:"handling,omitempty"`
	TaxTotal         *Money `json:"tax_total,omitempty"`
	Insurance        *Money `json:"insurance,omitempty"`
	ShippingDiscount *Money `json:"shipping_discount,omitempty"`
	Discount         *Money `json:"discount,omitempty"`
}

// Amount is the total order amount with an optional breakdown.
type Amount struct {
	CurrencyCode Currency   `json:"currency_code" validate:"required"`
	Value        string     `json:"value"         validate:"required"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

// NewAmount returns an Amount with the given currency and decimal string
// value and no breakdown.
func NewAmount(currency Currency, value string) Amount {
	return Amount{CurrencyCode: currency, Value: value}
}

// Payee is the merchant who receives payment for a transaction.
type Payee struct {
	EmailAddress string `json:"email_address,omitempty"`
	MerchantID   string `json:"merchant_id,omitempty"`
}

// PlatformFee is a fee, commission, tip or donation associated with a
// transaction.
type PlatformFee struct {
	Amount Money  `json:"amount" validate:"required"`
	Payee  *Payee `json:"payee,omitempty"`
}

// DisbursementMode describes how funds held on behalf of the merchant are
// released.
type DisbursementMode string

const (
	DisbursementModeInstant DisbursementMode = "INSTANT"
	DisbursementModeDelayed DisbursementMode = "DELAYED"
)

func (d *DisbursementMode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "DisbursementMode", d, DisbursementModeInstant, DisbursementModeDelayed)
}

// PaymentInstruction carries additional payment instructions for PayPal
// Commerce Platform customers.
type PaymentInstruction struct {
	PlatformFees            []PlatformFee    `json:"platform_fees,omitempty" validate:"omitempty,dive"`
	PayeePricingTierID      string           `json:"payee_pricing_tier_id,omitempty"`
	PayeeReceivableFxRateID string           `json:"payee_receivable_fx_rate_id,omitempty"`
	DisbursementMode        DisbursementMode `json:"disbursement_mode,omitempty"`
}

// ItemCategoryType is the item category type.
type ItemCategoryType string

const (
	ItemCategoryDigitalGoods  ItemCategoryType = "DIGITAL_GOODS"
	ItemCategoryPhysicalGoods ItemCategoryType = "PHYSICAL_GOODS"
	ItemCategoryDonation      ItemCategoryType = "DONATION"
)

func (i *ItemCategoryType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "ItemCategoryType", i,
		ItemCategoryDigitalGoods, ItemCategoryPhysicalGoods, ItemCategoryDonation)
}

// Item is an item the customer purchases from the merchant.
type Item struct {
	Name string `json:"name" validate:"required"`
	// The item quantity. Must be a whole number.
	Quantity    string           `json:"quantity" validate:"required"`
	Description string           `json:"description,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	URL         string           `json:"url,omitempty"`
	Category    ItemCategoryType `json:"category,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	UnitAmount  Money            `json:"unit_amount" validate:"required"`
	Tax         *Money           `json:"tax,omitempty"`
	UPC         *ItemUpc         `json:"upc,omitempty"`
}

// ItemBuilder assembles an order Item. The name, quantity and unit amount
// are required; all other fields default to absent.
type ItemBuilder struct {
	item Item
}

// NewItemBuilder starts an Item with its required fields.
func NewItemBuilder(name, quantity string, unitAmount Money) *ItemBuilder {
	return &ItemBuilder{item: Item{Name: name, Quantity: quantity, UnitAmount: unitAmount}}
}

func (b *ItemBuilder) Description(description string) *ItemBuilder {
	b.item.Description = description
	return b
}

func (b *ItemBuilder) SKU(sku string) *ItemBuilder {
	b.item.SKU = sku
	return b
}

func (b *ItemBuilder) URL(url string) *ItemBuilder {
	b.item.URL = url
	return b
}

func (b *ItemBuilder) Category(category ItemCategoryType) *ItemBuilder {
	b.item.Category = category
	return b
}

func (b *ItemBuilder) ImageURL(imageURL string) *ItemBuilder {
	b.item.ImageURL = imageURL
	return b
}

func (b *ItemBuilder) Tax(tax Money) *ItemBuilder {
	b.item.Tax = &tax
	return b
}

func (b *ItemBuilder) UPC(upc ItemUpc) *ItemBuilder {
	b.item.UPC = &upc
	return b
}

// Build validates that every required field was supplied.
func (b *ItemBuilder) Build() (Item, error) {
	if err := checkBuilt("Item", b.item); err != nil {
		return Item{}, err
	}
	return b.item, nil
}

// ShippingDetailName is the name of the person to whom to ship the items.
// Supports only the full_name property.
type ShippingDetailName struct {
	FullName string `json:"full_name"`
}

// ShippingType is a classification for the method of purchase fulfillment.
type ShippingType string

const (
	ShippingTypeShipping ShippingType = "SHIPPING"
	// Deprecated: use ShippingTypePickupFromPerson instead.
	ShippingTypePickupInPerson   ShippingType = "PICKUP_IN_PERSON"
	ShippingTypePickupInStore    ShippingType = "PICKUP_IN_STORE"
	ShippingTypePickupFromPerson ShippingType = "PICKUP_FROM_PERSON"
)

func (s *ShippingType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "ShippingType", s,
		ShippingTypeShipping, ShippingTypePickupInPerson,
		ShippingTypePickupInStore, ShippingTypePickupFromPerson)
}

// TrackerStatus is the status of an item shipment.
type TrackerStatus string

const (
	TrackerStatusCancelled TrackerStatus = "CANCELLED"
	TrackerStatusShipped   TrackerStatus = "SHIPPED"
)

func (t *TrackerStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "TrackerStatus", t, TrackerStatusCancelled, TrackerStatusShipped)
}

// ShipmentItem is an item in a shipment.
type ShipmentItem struct {
	Name string `json:"name,omitempty"`
	// The item quantity. Must be a whole number.
	Quantity string   `json:"quantity,omitempty"`
	SKU      string   `json:"sku,omitempty"`
	URL      string   `json:"url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	UPC      *ItemUpc `json:"upc,omitempty"`
}

// TransactionTracker is a tracker for a transaction.
type TransactionTracker struct {
	ID         string            `json:"id,omitempty"`
	Status     TrackerStatus     `json:"status,omitempty"`
	Items      []ShipmentItem    `json:"items,omitempty"`
	Links      []LinkDescription `json:"links,omitempty" validate:"omitempty,dive"`
	CreateTime *time.Time        `json:"create_time,omitempty"`
	UpdateTime *time.Time        `json:"update_time,omitempty"`
}

// ShippingOption is a shipping option the payee or merchant offers to the
// payer to ship or pick up their items.
type ShippingOption struct {
	ID    string `json:"id"    validate:"required"`
	Label string `json:"label" validate:"required"`
	// Only one option within a shipping detail can be selected.
	Selected     bool         `json:"selected"`
	ShippingType ShippingType `json:"shipping_type,omitempty"`
	Amount       *Money       `json:"amount,omitempty"`
}

// ShippingDetail is the name and address of the person to whom to ship the
// items. Either type or options may be present, but not both.
type ShippingDetail struct {
	ShippingType ShippingType         `json:"type,omitempty"`
	Options      []ShippingOption     `json:"options,omitempty" validate:"omitempty,dive"`
	Name         *ShippingDetailName  `json:"name,omitempty"`
	PhoneNumber  *PhoneNumber         `json:"phone_number,omitempty"`
	Address      *Address             `json:"address,omitempty"`
	Trackers     []TransactionTracker `json:"trackers,omitempty" validate:"omitempty,dive"`
}

// SupplementaryCustomer is profile information of the sender or receiver.
type SupplementaryCustomer struct {
	// The consumer's IP address, in either IPv4 or IPv6 format.
	IPAddress string `json:"ip_address,omitempty"`
}

// SupplementaryRisk carries additional customer parameters for fraud
// protection on unbranded card payments.
type SupplementaryRisk struct {
	Customer *SupplementaryCustomer `json:"customer,omitempty"`
}

// SupplementaryData is supplementary data about a payment. The level 2 and
// level 3 card processing collections are passed through opaquely.
type SupplementaryData struct {
	Level2 json.RawMessage    `json:"level_2,omitempty"`
	Level3 json.RawMessage    `json:"level_3,omitempty"`
	Risk   *SupplementaryRisk `json:"risk,omitempty"`
}

// PurchaseUnit represents either a full or partial order that the payer
// intends to purchase from the payee.
type PurchaseUnit struct {
	ReferenceID string `json:"reference_id,omitempty"`
	Description string `json:"description,omitempty"`
	CustomID    string `json:"custom_id,omitempty"`
	InvoiceID   string `json:"invoice_id,omitempty"`
	ID          string `json:"id,omitempty"`
	// The dynamic text used to construct the statement descriptor on the
	// payer's card statement.
	SoftDescriptor     string              `json:"soft_descriptor,omitempty"`
	Items              []Item              `json:"items,omitempty" validate:"omitempty,dive"`
	Amount             Amount              `json:"amount" validate:"required"`
	Payee              *Payee              `json:"payee,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
	Shipping           *ShippingDetail     `json:"shipping,omitempty"`
	Payments           *PaymentCollection  `json:"payments,omitempty"`
}

// PurchaseUnitBuilder assembles a PurchaseUnit. Only the amount is required.
type PurchaseUnitBuilder struct {
	unit PurchaseUnit
}

// NewPurchaseUnitBuilder starts a PurchaseUnit with its required amount.
func NewPurchaseUnitBuilder(amount Amount) *PurchaseUnitBuilder {
	return &PurchaseUnitBuilder{unit: PurchaseUnit{Amount: amount}}
}

func (b *PurchaseUnitBuilder) ReferenceID(referenceID string) *PurchaseUnitBuilder {
	b.unit.ReferenceID = referenceID
	return b
}

func (b *PurchaseUnitBuilder) Description(description string) *PurchaseUnitBuilder {
	b.unit.Description = description
	return b
}

func (b *PurchaseUnitBuilder) CustomID(customID string) *PurchaseUnitBuilder {
	b.unit.CustomID = customID
	return b
}

func (b *PurchaseUnitBuilder) InvoiceID(invoiceID string) *PurchaseUnitBuilder {
	b.unit.InvoiceID = invoiceID
	return b
}

func (b *PurchaseUnitBuilder) SoftDescriptor(softDescriptor string) *PurchaseUnitBuilder {
	b.unit.SoftDescriptor = softDescriptor
	return b
}

func (b *PurchaseUnitBuilder) Items(items ...Item) *PurchaseUnitBuilder {
	b.unit.Items = append(b.unit.Items, items...)
	return b
}

func (b *PurchaseUnitBuilder) Payee(payee Payee) *PurchaseUnitBuilder {
	b.unit.Payee = &payee
	return b
}

func (b *PurchaseUnitBuilder) PaymentInstruction(instruction PaymentInstruction) *PurchaseUnitBuilder {
	b.unit.PaymentInstruction = &instruction
	return b
}

func (b *PurchaseUnitBuilder) Shipping(shipping ShippingDetail) *PurchaseUnitBuilder {
	b.unit.Shipping = &shipping
	return b
}

// Build validates that every required field was supplied.
func (b *PurchaseUnitBuilder) Build() (PurchaseUnit, error) {
	if err := checkBuilt("PurchaseUnit", b.unit); err != nil {
		return PurchaseUnit{}, err
	}
	return b.unit, nil
}

// LandingPage is the type of landing page to show on the PayPal site for
// customer checkout.
type LandingPage string

const (
	LandingPageLogin        LandingPage = "LOGIN"
	LandingPageBilling      LandingPage = "BILLING"
	LandingPageNoPreference LandingPage = "NO_PREFERENCE"
)

func (l *LandingPage) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "LandingPage", l,
		LandingPageLogin, LandingPageBilling, LandingPageNoPreference)
}

// ShippingPreference describes where the shipping address comes from during
// checkout.
type ShippingPreference string

const (
	ShippingPreferenceGetFromFile        ShippingPreference = "GET_FROM_FILE"
	ShippingPreferenceNoShipping         ShippingPreference = "NO_SHIPPING"
	ShippingPreferenceSetProvidedAddress ShippingPreference = "SET_PROVIDED_ADDRESS"
)

func (s *ShippingPreference) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "ShippingPreference", s,
		ShippingPreferenceGetFromFile, ShippingPreferenceNoShipping,
		ShippingPreferenceSetProvidedAddress)
}

// UserAction configures a Continue or Pay Now checkout flow.
type UserAction string

const (
	UserActionContinue UserAction = "CONTINUE"
	UserActionPayNow   UserAction = "PAY_NOW"
)

func (u *UserAction) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "UserAction", u, UserActionContinue, UserActionPayNow)
}

// PayeePreferred is the merchant-preferred payment source.
type PayeePreferred string

const (
	PayeePreferredUnrestricted             PayeePreferred = "UNRESTRICTED"
	PayeePreferredImmediatePaymentRequired PayeePreferred = "IMMEDIATE_PAYMENT_REQUIRED"
)

func (p *PayeePreferred) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "PayeePreferred", p,
		PayeePreferredUnrestricted, PayeePreferredImmediatePaymentRequired)
}

// PaymentMethod is the customer and merchant payment preferences.
type PaymentMethod struct {
	PayerSelected  string         `json:"payer_selected,omitempty"`
	PayeePreferred PayeePreferred `json:"payee_preferred,omitempty"`
}

// ApplicationContext customizes the payer experience during the approval
// process for the payment with PayPal.
type ApplicationContext struct {
	BrandName string `json:"brand_name,omitempty"`
	// The BCP 47-formatted locale of pages the payment experience shows.
	Locale             string             `json:"locale,omitempty"`
	LandingPage        LandingPage        `json:"landing_page,omitempty"`
	ShippingPreference ShippingPreference `json:"shipping_preference,omitempty"`
	UserAction         UserAction         `json:"user_action,omitempty"`
	PaymentMethod      *PaymentMethod     `json:"payment_method,omitempty"`
	ReturnURL          string             `json:"return_url,omitempty"`
	CancelURL          string             `json:"cancel_url,omitempty"`
}

// PaymentCard is a card used as a payment source when creating an order.
type PaymentCard struct {
	Number         string  `json:"number" validate:"required"`
	Expiry         string  `json:"expiry" validate:"required"`
	Name           string  `json:"name"   validate:"required"`
	BillingAddress Address `json:"billing_address" validate:"required"`
}

// TransactionReference is a reference to a previous card transaction.
type TransactionReference struct {
	ID string `json:"id" validate:"required"`
	// The transaction network, e.g. "VISA".
	Network string `json:"network" validate:"required"`
}

// StoredCredential describes how a stored payment credential is used.
type StoredCredential struct {
	// The payment initiator, e.g. "MERCHANT".
	PaymentInitiator string `json:"payment_initiator" validate:"required"`
	// The payment type, e.g. "RECURRING".
	PaymentType string `json:"payment_type" validate:"required"`
	// The stored credential usage, e.g. "SUBSEQUENT".
	Usage                               string               `json:"usage" validate:"required"`
	PreviousNetworkTransactionReference TransactionReference `json:"previous_network_transaction_reference" validate:"required"`
}

// OrderPaymentSource is the payment source supplied when creating an order.
type OrderPaymentSource struct {
	Card             PaymentCard       `json:"card" validate:"required"`
	StoredCredential *StoredCredential `json:"stored_credential,omitempty"`
}

// OrderPayload is the request body used to create an order.
type OrderPayload struct {
	Intent Intent `json:"intent" validate:"required"`
	// Deprecated by PayPal but still accepted on order creation.
	Payer              *Payer              `json:"payer,omitempty"`
	PurchaseUnits      []PurchaseUnit      `json:"purchase_units" validate:"required,min=1,dive"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
	PaymentSource      *OrderPaymentSource `json:"payment_source,omitempty"`
}

// OrderPayloadBuilder assembles an OrderPayload. The intent and at least one
// purchase unit are required.
type OrderPayloadBuilder struct {
	payload OrderPayload
}

// NewOrderPayloadBuilder starts an OrderPayload with the given intent.
func NewOrderPayloadBuilder(intent Intent) *OrderPayloadBuilder {
	return &OrderPayloadBuilder{payload: OrderPayload{Intent: intent}}
}

func (b *OrderPayloadBuilder) AddPurchaseUnit(unit PurchaseUnit) *OrderPayloadBuilder {
	b.payload.PurchaseUnits = append(b.payload.PurchaseUnits, unit)
	return b
}

func (b *OrderPayloadBuilder) Payer(payer Payer) *OrderPayloadBuilder {
	b.payload.Payer = &payer
	return b
}

func (b *OrderPayloadBuilder) ApplicationContext(ctx ApplicationContext) *OrderPayloadBuilder {
	b.payload.ApplicationContext = &ctx
	return b
}

func (b *OrderPayloadBuilder) PaymentSource(source OrderPaymentSource) *OrderPayloadBuilder {
	b.payload.PaymentSource = &source
	return b
}

// Build validates that every required field was supplied.
func (b *OrderPayloadBuilder) Build() (OrderPayload, error) {
	if err := checkBuilt("OrderPayload", b.payload); err != nil {
		return OrderPayload{}, err
	}
	return b.payload, nil
}

// CardBrand is the card brand or network.
type CardBrand string

const (
	CardBrandVisa          CardBrand = "VISA"
	CardBrandMastercard    CardBrand = "MASTERCARD"
	CardBrandDiscover      CardBrand = "DISCOVER"
	CardBrandAmex          CardBrand = "AMEX"
	CardBrandSolo          CardBrand = "SOLO"
	CardBrandJCB           CardBrand = "JCB"
	CardBrandStar          CardBrand = "STAR"
	CardBrandDelta         CardBrand = "DELTA"
	CardBrandSwitch        CardBrand = "SWITCH"
	CardBrandMaestro       CardBrand = "MAESTRO"
	CardBrandCBNationale   CardBrand = "CB_NATIONALE"
	CardBrandConfigoga     CardBrand = "CONFIGOGA"
	CardBrandConfidis      CardBrand = "CONFIDIS"
	CardBrandElectron      CardBrand = "ELECTRON"
	CardBrandCetelem       CardBrand = "CETELEM"
	CardBrandChinaUnionPay CardBrand = "CHINA_UNION_PAY"
)

func (c *CardBrand) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "CardBrand", c,
		CardBrandVisa, CardBrandMastercard, CardBrandDiscover, CardBrandAmex,
		CardBrandSolo, CardBrandJCB, CardBrandStar, CardBrandDelta,
		CardBrandSwitch, CardBrandMaestro, CardBrandCBNationale,
		CardBrandConfigoga, CardBrandConfidis, CardBrandElectron,
		CardBrandCetelem, CardBrandChinaUnionPay)
}

// CardType is the payment card type.
type CardType string

const (
	CardTypeCredit  CardType = "CREDIT"
	CardTypeDebit   CardType = "DEBIT"
	CardTypePrepaid CardType = "PREPAID"
	CardTypeUnknown CardType = "UNKNOWN"
)

func (c *CardType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "CardType", c,
		CardTypeCredit, CardTypeDebit, CardTypePrepaid, CardTypeUnknown)
}

// CardResponse is the payment card used to fund a payment.
type CardResponse struct {
	LastDigits string    `json:"last_digits" validate:"required"`
	Brand      CardBrand `json:"brand"       validate:"required"`
	CardType   CardType  `json:"type"        validate:"required"`
}

// PaymentSourceResponse is the payment source used to fund the payment. Each
// funding instrument is carried as an opaque JSON document; PayPal's schemas
// for these sub-methods are not modelled in full.
type PaymentSourceResponse struct {
	Card       json.RawMessage `json:"card,omitempty"`
	Bancontact json.RawMessage `json:"bancontact,omitempty"`
	Blik       json.RawMessage `json:"blik,omitempty"`
	EPS        json.RawMessage `json:"eps,omitempty"`
	Giropay    json.RawMessage `json:"giropay,omitempty"`
	Ideal      json.RawMessage `json:"ideal,omitempty"`
	MyBank     json.RawMessage `json:"mybank,omitempty"`
	P24        json.RawMessage `json:"p24,omitempty"`
	Sofort     json.RawMessage `json:"sofort,omitempty"`
	Trustly    json.RawMessage `json:"trustly,omitempty"`
	Venmo      json.RawMessage `json:"venmo,omitempty"`
	Paypal     json.RawMessage `json:"paypal,omitempty"`
	ApplePay   json.RawMessage `json:"apple_pay,omitempty"`
	GooglePay  json.RawMessage `json:"google_pay,omitempty"`
}

// OrderStatus is the status of an order.
type OrderStatus string

const (
	// OrderStatusCreated means the order was created with the specified context.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusSaved means the order was saved and persisted.
	OrderStatusSaved OrderStatus = "SAVED"
	// OrderStatusApproved means the customer approved the payment.
	OrderStatusApproved OrderStatus = "APPROVED"
	// OrderStatusVoided means all purchase units in the order are voided.
	OrderStatusVoided OrderStatus = "VOIDED"
	// OrderStatusCompleted means the payment was authorized or the authorized
	// payment was captured for the order.
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

func (o *OrderStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "OrderStatus", o,
		OrderStatusCreated, OrderStatusSaved, OrderStatusApproved,
		OrderStatusVoided, OrderStatusCompleted)
}

// Order represents a payment between two or more parties.
type Order struct {
	CreateTime    *time.Time             `json:"create_time,omitempty"`
	UpdateTime    *time.Time             `json:"update_time,omitempty"`
	ID            string                 `json:"id" validate:"required"`
	PurchaseUnits []PurchaseUnit         `json:"purchase_units,omitempty" validate:"omitempty,dive"`
	Links         []LinkDescription      `json:"links" validate:"required,dive"`
	PaymentSource *PaymentSourceResponse `json:"payment_source,omitempty"`
	Intent        Intent                 `json:"intent,omitempty"`
	Payer         *Payer                 `json:"payer,omitempty"`
	Status        OrderStatus            `json:"status" validate:"required"`
}

// InvoiceNumber is the response of the generate-next-invoice-number call.
type InvoiceNumber struct {
	InvoiceNumber string `json:"invoice_number" validate:"required"`
}
