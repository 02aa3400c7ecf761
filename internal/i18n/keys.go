package i18n

// Key names one translatable message.
type Key string

const (
	// Header
	KeyCart     Key = "cart"
	KeyCall     Key = "call"
	KeyWhatsApp Key = "whatsapp"

	// Hero
	KeyHeroTitle       Key = "heroTitle"
	KeyHeroSubtitle    Key = "heroSubtitle"
	KeyHeroDescription Key = "heroDescription"

	// Search & filters
	KeySearchPlaceholder Key = "searchPlaceholder"
	KeyAll               Key = "all"
	KeyInStock           Key = "inStock"
	KeyAddToCart         Key = "addToCart"
	KeyView              Key = "view"

	// Product
	KeyDescription     Key = "description"
	KeyCharacteristics Key = "characteristics"
	KeyQuantity        Key = "quantity"
	KeyTotal           Key = "total"
	KeyAddToCartFull   Key = "addToCartFull"
	KeyBackToProducts  Key = "backToProducts"
	KeyProductNotFound Key = "productNotFound"
	KeyBackToHome      Key = "backToHome"

	// Cart
	KeyMyCart           Key = "myCart"
	KeyArticles         Key = "articles"
	KeyBack             Key = "back"
	KeyEmptyCart        Key = "emptyCart"
	KeyEmptyCartDesc    Key = "emptyCartDesc"
	KeyContinueShopping Key = "continueShopping"
	KeyOrderSummary     Key = "orderSummary"
	KeyPlaceOrder       Key = "placeOrder"
	KeyCustomerName     Key = "customerName"
	KeyPhone            Key = "phone"
	KeyEmail            Key = "email"
	KeyDeliveryAddress  Key = "deliveryAddress"
	KeyNotes            Key = "notes"
	KeyNotesPlaceholder Key = "notesPlaceholder"
	KeyConfirmWhatsApp  Key = "confirmWhatsApp"
	KeyValidateOrder    Key = "validateOrder"
	KeyOrderSent        Key = "orderSent"
	KeyFillRequired     Key = "fillRequired"

	// Checkout outcome
	KeyOrderSuccess      Key = "orderSuccess"
	KeyOrderReceived     Key = "orderReceived"
	KeyOrderReceivedDesc Key = "orderReceivedDesc"
	KeyInvalidEmail      Key = "invalidEmail"
	KeyInvalidPhone      Key = "invalidPhone"
	KeyCartIsEmpty       Key = "cartIsEmpty"
	KeySubmitInProgress  Key = "submitInProgress"
	KeyErrTimeout        Key = "errTimeout"
	KeyErrServer         Key = "errServer" // takes the HTTP status
	KeyErrUnreachable    Key = "errUnreachable"
	KeyErrSubmission     Key = "errSubmission"
	KeyErrUnexpected     Key = "errUnexpected"

	// WhatsApp summary
	KeyWANewOrder Key = "waNewOrder"
	KeyWACustomer Key = "waCustomer"
	KeyWAPhone    Key = "waPhone"
	KeyWAEmail    Key = "waEmail"
	KeyWAAddress  Key = "waAddress"
	KeyWAProducts Key = "waProducts"
	KeyWATotal    Key = "waTotal"
	KeyWAThanks   Key = "waThanks"

	// Preferences
	KeyCurrency  Key = "currency"
	KeyLanguage  Key = "language"
	KeyLightMode Key = "lightMode"
	KeyDarkMode  Key = "darkMode"
	KeyMyOrders  Key = "myOrders"
	KeyNoOrders  Key = "noOrders"

	// Footer
	KeyContact           Key = "contact"
	KeyInformation       Key = "information"
	KeyFastDelivery      Key = "fastDelivery"
	KeyAuthenticProducts Key = "authenticProducts"
	KeyCustomerService   Key = "customerService"
	KeySecurePayment     Key = "securePayment"
	KeyRightsReserved    Key = "rightsReserved"
	KeyTrustedPartner    Key = "trustedPartner"

	// Misc
	KeyNoProductsFound Key = "noProductsFound"
	KeyLoading         Key = "loading"
	KeyError           Key = "error"
	KeyRetry           Key = "retry"
	KeyPage            Key = "page"
	KeyOf              Key = "of"
	KeyPrevious        Key = "previous"
	KeyNext            Key = "next"
)

// AllKeys lists every key. Tables are checked against it.
var AllKeys = []Key{
	KeyCart, KeyCall, KeyWhatsApp,
	KeyHeroTitle, KeyHeroSubtitle, KeyHeroDescription,
	KeySearchPlaceholder, KeyAll, KeyInStock, KeyAddToCart, KeyView,
	KeyDescription, KeyCharacteristics, KeyQuantity, KeyTotal, KeyAddToCartFull,
	KeyBackToProducts, KeyProductNotFound, KeyBackToHome,
	KeyMyCart, KeyArticles, KeyBack, KeyEmptyCart, KeyEmptyCartDesc, KeyContinueShopping,
	KeyOrderSummary, KeyPlaceOrder, KeyCustomerName, KeyPhone, KeyEmail, KeyDeliveryAddress,
	KeyNotes, KeyNotesPlaceholder, KeyConfirmWhatsApp, KeyValidateOrder, KeyOrderSent, KeyFillRequired,
	KeyOrderSuccess, KeyOrderReceived, KeyOrderReceivedDesc, KeyInvalidEmail, KeyInvalidPhone,
	KeyCartIsEmpty, KeySubmitInProgress,
	KeyErrTimeout, KeyErrServer, KeyErrUnreachable, KeyErrSubmission, KeyErrUnexpected,
	KeyWANewOrder, KeyWACustomer, KeyWAPhone, KeyWAEmail, KeyWAAddress, KeyWAProducts, KeyWATotal, KeyWAThanks,
	KeyCurrency, KeyLanguage, KeyLightMode, KeyDarkMode, KeyMyOrders, KeyNoOrders,
	KeyContact, KeyInformation, KeyFastDelivery, KeyAuthenticProducts, KeyCustomerService,
	KeySecurePayment, KeyRightsReserved, KeyTrustedPartner,
	KeyNoProductsFound, KeyLoading, KeyError, KeyRetry, KeyPage, KeyOf, KeyPrevious, KeyNext,
}
