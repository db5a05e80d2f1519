package models

// Currency is a three-character ISO-4217 currency code from the set PayPal
// supports for transactions.
type Currency string

const (
	CurrencyAUD Currency = "AUD"
	CurrencyBRL Currency = "BRL"
	CurrencyCAD Currency = "CAD"
	CurrencyCNY Currency = "CNY"
	CurrencyCZK Currency = "CZK"
	CurrencyDKK Currency = "DKK"
	CurrencyEUR Currency = "EUR"
	CurrencyHKD Currency = "HKD"
	CurrencyHUF Currency = "HUF"
	CurrencyILS Currency = "ILS"
	CurrencyINR Currency = "INR"
	CurrencyJPY Currency = "JPY"
	CurrencyMXN Currency = "MXN"
	CurrencyMYR Currency = "MYR"
	CurrencyNOK Currency = "NOK"
	CurrencyNZD Currency = "NZD"
	CurrencyPHP Currency = "PHP"
	CurrencyPLN Currency = "PLN"
	CurrencyGBP Currency = "GBP"
	CurrencyRUB Currency = "RUB"
	CurrencySEK Currency = "SEK"
	CurrencySGD Currency = "SGD"
	CurrencyCHF Currency = "CHF"
	CurrencyTHB Currency = "THB"
	CurrencyTWD Currency = "TWD"
	CurrencyUSD Currency = "USD"
)

var currencies = []Currency{
	CurrencyAUD, CurrencyBRL, CurrencyCAD, CurrencyCNY, CurrencyCZK,
	CurrencyDKK, CurrencyEUR, CurrencyHKD, CurrencyHUF, CurrencyILS,
	CurrencyINR, CurrencyJPY, CurrencyMXN, CurrencyMYR, CurrencyNOK,
	CurrencyNZD, CurrencyPHP, CurrencyPLN, CurrencyGBP, CurrencyRUB,
	CurrencySEK, CurrencySGD, CurrencyCHF, CurrencyTHB, CurrencyTWD,
	CurrencyUSD,
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "Currency", c, currencies...)
}
