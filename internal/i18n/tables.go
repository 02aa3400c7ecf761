package i18n

import "github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"

var tables = map[domain.Language]map[Key]string{
	domain.LanguageFR: fr,
	domain.LanguageEN: en,
}

var fr = map[Key]string{
	KeyCart:     "Panier",
	KeyCall:     "Appeler",
	KeyWhatsApp: "WhatsApp",

	KeyHeroTitle:       "YAYAH LIVRAISON",
	KeyHeroSubtitle:    "Tous vos produits livrés rapidement et en toute sécurité",
	KeyHeroDescription: "Service de livraison professionnel pour tous types de produits",

	KeySearchPlaceholder: "Rechercher un produit...",
	KeyAll:               "Tous",
	KeyInStock:           "En stock",
	KeyAddToCart:         "Ajouter",
	KeyView:              "Voir",

	KeyDescription:     "Description",
	KeyCharacteristics: "Caractéristiques",
	KeyQuantity:        "Quantité",
	KeyTotal:           "Total",
	KeyAddToCartFull:   "Ajouter au panier",
	KeyBackToProducts:  "Retour aux produits",
	KeyProductNotFound: "Produit non trouvé",
	KeyBackToHome:      "Retour à l'accueil",

	KeyMyCart:           "Mon Panier",
	KeyArticles:         "articles",
	KeyBack:             "Retour",
	KeyEmptyCart:        "Votre panier est vide",
	KeyEmptyCartDesc:    "Découvrez nos produits de qualité",
	KeyContinueShopping: "Continuer les achats",
	KeyOrderSummary:     "Résumé de la commande",
	KeyPlaceOrder:       "Passer la commande",
	KeyCustomerName:     "Nom du client",
	KeyPhone:            "Téléphone",
	KeyEmail:            "Email",
	KeyDeliveryAddress:  "Adresse de livraison",
	KeyNotes:            "Notes",
	KeyNotesPlaceholder: "Instructions spéciales...",
	KeyConfirmWhatsApp:  "Confirmer via WhatsApp",
	KeyValidateOrder:    "Valider la commande",
	KeyOrderSent:        "Commande envoyée ! Vous allez être redirigé vers WhatsApp.",
	KeyFillRequired:     "Veuillez remplir tous les champs obligatoires",

	KeyOrderSuccess:      "Commande validée avec succès ! Vous recevrez une confirmation.",
	KeyOrderReceived:     "Commande reçue",
	KeyOrderReceivedDesc: "Commande bien reçue, nous vous contacterons bientôt pour la confirmation",
	KeyInvalidEmail:      "Veuillez entrer une adresse email valide",
	KeyInvalidPhone:      "Le numéro de téléphone doit commencer par l'indicatif du pays (ex: +224, +33, +1)",
	KeyCartIsEmpty:       "Votre panier est vide",
	KeySubmitInProgress:  "Une commande est déjà en cours d'envoi",
	KeyErrTimeout:        "Timeout de la requête. Veuillez réessayer.",
	KeyErrServer:         "Erreur serveur: %d. Veuillez réessayer.",
	KeyErrUnreachable:    "L'API est inaccessible depuis cet environnement. Utilisez l'option WhatsApp pour finaliser votre commande.",
	KeyErrSubmission:     "Erreur lors de la soumission. Veuillez réessayer.",
	KeyErrUnexpected:     "Erreur inattendue. Veuillez réessayer ou utiliser l'option WhatsApp.",

	KeyWANewOrder: "NOUVELLE COMMANDE YAYAH LIVRAISON",
	KeyWACustomer: "Client",
	KeyWAPhone:    "Téléphone",
	KeyWAEmail:    "Email",
	KeyWAAddress:  "Adresse",
	KeyWAProducts: "Produits commandés",
	KeyWATotal:    "Total",
	KeyWAThanks:   "Merci pour votre commande !",

	KeyCurrency:  "Devise",
	KeyLanguage:  "Langue",
	KeyLightMode: "Mode clair",
	KeyDarkMode:  "Mode sombre",
	KeyMyOrders:  "Mes commandes",
	KeyNoOrders:  "Aucune commande pour le moment",

	KeyContact:           "Contact",
	KeyInformation:       "Informations",
	KeyFastDelivery:      "Livraison rapide",
	KeyAuthenticProducts: "Produits authentiques",
	KeyCustomerService:   "Service client 24/7",
	KeySecurePayment:     "Paiement sécurisé",
	KeyRightsReserved:    "Tous droits réservés",
	KeyTrustedPartner:    "Votre partenaire de confiance pour la livraison de produits de qualité.",

	KeyNoProductsFound: "Aucun produit trouvé",
	KeyLoading:         "Chargement...",
	KeyError:           "Erreur",
	KeyRetry:           "Réessayer",
	KeyPage:            "Page",
	KeyOf:              "sur",
	KeyPrevious:        "Précédent",
	KeyNext:            "Suivant",
}

var en = map[Key]string{
	KeyCart:     "Cart",
	KeyCall:     "Call",
	KeyWhatsApp: "WhatsApp",

	KeyHeroTitle:       "YAYAH DELIVERY",
	KeyHeroSubtitle:    "All your products delivered quickly and safely",
	KeyHeroDescription: "Professional delivery service for all types of products",

	KeySearchPlaceholder: "Search for a product...",
	KeyAll:               "All",
	KeyInStock:           "In Stock",
	KeyAddToCart:         "Add",
	KeyView:              "View",

	KeyDescription:     "Description",
	KeyCharacteristics: "Characteristics",
	KeyQuantity:        "Quantity",
	KeyTotal:           "Total",
	KeyAddToCartFull:   "Add to Cart",
	KeyBackToProducts:  "Back to Products",
	KeyProductNotFound: "Product Not Found",
	KeyBackToHome:      "Back to Home",

	KeyMyCart:           "My Cart",
	KeyArticles:         "items",
	KeyBack:             "Back",
	KeyEmptyCart:        "Your cart is empty",
	KeyEmptyCartDesc:    "Discover our quality products",
	KeyContinueShopping: "Continue Shopping",
	KeyOrderSummary:     "Order Summary",
	KeyPlaceOrder:       "Place Order",
	KeyCustomerName:     "Customer Name",
	KeyPhone:            "Phone",
	KeyEmail:            "Email",
	KeyDeliveryAddress:  "Delivery Address",
	KeyNotes:            "Notes",
	KeyNotesPlaceholder: "Special instructions...",
	KeyConfirmWhatsApp:  "Confirm via WhatsApp",
	KeyValidateOrder:    "Validate Order",
	KeyOrderSent:        "Order sent! You will be redirected to WhatsApp.",
	KeyFillRequired:     "Please fill in all required fields",

	KeyOrderSuccess:      "Order confirmed! You will receive a confirmation.",
	KeyOrderReceived:     "Order received",
	KeyOrderReceivedDesc: "Order received, we will contact you shortly to confirm",
	KeyInvalidEmail:      "Please enter a valid email address",
	KeyInvalidPhone:      "The phone number must start with the country code (e.g. +224, +33, +1)",
	KeyCartIsEmpty:       "Your cart is empty",
	KeySubmitInProgress:  "An order is already being sent",
	KeyErrTimeout:        "Request timed out. Please try again.",
	KeyErrServer:         "Server error: %d. Please try again.",
	KeyErrUnreachable:    "The API cannot be reached from this environment. Use the WhatsApp option to complete your order.",
	KeyErrSubmission:     "Error while submitting. Please try again.",
	KeyErrUnexpected:     "Unexpected error. Please try again or use the WhatsApp option.",

	KeyWANewOrder: "NEW YAYAH DELIVERY ORDER",
	KeyWACustomer: "Customer",
	KeyWAPhone:    "Phone",
	KeyWAEmail:    "Email",
	KeyWAAddress:  "Address",
	KeyWAProducts: "Ordered products",
	KeyWATotal:    "Total",
	KeyWAThanks:   "Thank you for your order!",

	KeyCurrency:  "Currency",
	KeyLanguage:  "Language",
	KeyLightMode: "Light mode",
	KeyDarkMode:  "Dark mode",
	KeyMyOrders:  "My orders",
	KeyNoOrders:  "No orders yet",

	KeyContact:           "Contact",
	KeyInformation:       "Information",
	KeyFastDelivery:      "Fast Delivery",
	KeyAuthenticProducts: "Authentic Products",
	KeyCustomerService:   "24/7 Customer Service",
	KeySecurePayment:     "Secure Payment",
	KeyRightsReserved:    "All rights reserved",
	KeyTrustedPartner:    "Your trusted partner for quality product delivery.",

	KeyNoProductsFound: "No products found",
	KeyLoading:         "Loading...",
	KeyError:           "Error",
	KeyRetry:           "Retry",
	KeyPage:            "Page",
	KeyOf:              "of",
	KeyPrevious:        "Previous",
	KeyNext:            "Next",
}
