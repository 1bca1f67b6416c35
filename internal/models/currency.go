package models

// Display/settlement currencies. Conversion between them is anchored on a
// single reference rate (CCL-style USD/ARS quote).
const (
	CurrencyUSD = "USD"
	CurrencyARS = "ARS"
)

// Crypto symbols quoted by rate providers.
const (
	CurrencyBTC  = "BTC"
	CurrencyETH  = "ETH"
	CurrencyUSDT = "USDT"
	CurrencyUSDC = "USDC"
	CurrencyDAI  = "DAI"
	CurrencySOL  = "SOL"
)

// IsDisplayCurrency reports whether c can be used as a portfolio display
// currency.
func IsDisplayCurrency(c string) bool {
	return c == CurrencyUSD || c == CurrencyARS
}
