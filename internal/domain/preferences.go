package domain

type Currency string

const (
	CurrencyGNF Currency = "GNF"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"

	// HomeCurrency is the currency product prices are stored in.
	HomeCurrency = CurrencyGNF
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyGNF, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"

	DefaultLanguage = LanguageFR
)

func (l Language) Valid() bool {
	return l == LanguageFR || l == LanguageEN
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Storage keys shared by the visitor-scoped stores.
const (
	KeyCart     = "yayah-cart"
	KeyCurrency = "yayah-currency"
	KeyLanguage = "yayah-language"
	KeyTheme    = "yayah-theme"
	KeyOrders   = "yayah-orders"
)
