package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
)

// WhatsAppSummary renders the order summary sent through the messaging
// handoff. Prices go through format so they follow the selected currency.
func WhatsAppSummary(tr i18n.Translator, info domain.CustomerInfo, items []domain.CartItem, total int64, format func(int64) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛍️ *%s*\n\n", tr.T(i18n.KeyWANewOrder))
	fmt.Fprintf(&b, "👤 *%s:* %s\n", tr.T(i18n.KeyWACustomer), info.Customer)
	fmt.Fprintf(&b, "📞 *%s:* %s\n", tr.T(i18n.KeyWAPhone), info.Phone)
	if !blank(info.Email) {
		fmt.Fprintf(&b, "📧 *%s:* %s\n", tr.T(i18n.KeyWAEmail), info.Email)
	}
	fmt.Fprintf(&b, "📍 *%s:* %s\n\n", tr.T(i18n.KeyWAAddress), info.Address)

	fmt.Fprintf(&b, "🛒 *%s:*\n", tr.T(i18n.KeyWAProducts))
	for _, item := range items {
		fmt.Fprintf(&b, "• %s x%d - %s\n", item.Name, item.Quantity, format(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\n💰 *%s:* %s\n\n", tr.T(i18n.KeyWATotal), format(total))
	fmt.Fprintf(&b, "%s 🚀", tr.T(i18n.KeyWAThanks))
	return b.String()
}

// WhatsAppLink builds the wa.me deep link carrying text.
func WhatsAppLink(number, text string) string {
	// spaces as %20, not +
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, escaped)
}
