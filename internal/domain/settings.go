package domain

// StoreSettings é a configuração visual e de textos da loja, SEMPRE
// totalmente preenchida: os overrides do lojista (linha no DB) são
// mesclados sobre os padrões uma única vez, em vez de checagens de nulo
// espalhadas por cada ponto de uso.
type StoreSettings struct {
	StoreName string `json:"store_name"`

	// Paleta
	PrimaryColor             string `json:"primary_color"`
	SecondaryColor           string `json:"secondary_color"`
	AccentColor              string `json:"accent_color"`
	SuccessColor             string `json:"success_color"`
	WarningColor             string `json:"warning_color"`
	TextColor                string `json:"text_color"`
	ProductTitleColor        string `json:"product_title_color"`
	ProductPriceColor        string `json:"product_price_color"`
	ProductDescriptionColor  string `json:"product_description_color"`
	ButtonPrimaryBgColor     string `json:"button_primary_bg_color"`
	ButtonPrimaryTextColor   string `json:"button_primary_text_color"`
	ButtonSecondaryBgColor   string `json:"button_secondary_bg_color"`
	ButtonSecondaryTextColor string `json:"button_secondary_text_color"`

	// Textos
	MessageEmptyCartText       string `json:"message_empty_cart_text"`
	ButtonContinueShoppingText string `json:"button_continue_shopping_text"`
	ButtonCheckoutText         string `json:"button_checkout_text"`

	// Contato e entrega
	ContactEmail          string `json:"contact_email"`
	ContactPhone          string `json:"contact_phone"`
	EstimatedDeliveryDays int    `json:"estimated_delivery_days"`
}

// DefaultStoreSettings retorna os padrões de fábrica da vitrine.
// Os overrides do lojista são aplicados por cima destes valores.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		StoreName: "Vitrine",

		PrimaryColor:             "#3b82f6",
		SecondaryColor:           "#10b981",
		AccentColor:              "#f59e0b",
		SuccessColor:             "#10b981",
		WarningColor:             "#f59e0b",
		TextColor:                "#111827",
		ProductTitleColor:        "#111827",
		ProductPriceColor:        "#3b82f6",
		ProductDescriptionColor:  "#6b7280",
		ButtonPrimaryBgColor:     "#3b82f6",
		ButtonPrimaryTextColor:   "#ffffff",
		ButtonSecondaryBgColor:   "#6b7280",
		ButtonSecondaryTextColor: "#ffffff",

		MessageEmptyCartText:       "Seu carrinho está vazio",
		ButtonContinueShoppingText: "Continuar Comprando",
		ButtonCheckoutText:         "Finalizar Pedido",

		ContactEmail:          "suporte@loja.com",
		ContactPhone:          "",
		EstimatedDeliveryDays: 7,
	}
}

// StoreSettingsOverrides é a linha crua vinda do banco: cada campo é um
// ponteiro porque o lojista pode ter customizado apenas alguns.
type StoreSettingsOverrides struct {
	StoreName *string

	PrimaryColor             *string
	SecondaryColor           *string
	AccentColor              *string
	SuccessColor             *string
	WarningColor             *string
	TextColor                *string
	ProductTitleColor        *string
	ProductPriceColor        *string
	ProductDescriptionColor  *string
	ButtonPrimaryBgColor     *string
	ButtonPrimaryTextColor   *string
	ButtonSecondaryBgColor   *string
	ButtonSecondaryTextColor *string

	MessageEmptyCartText       *string
	ButtonContinueShoppingText *string
	ButtonCheckoutText         *string

	ContactEmail          *string
	ContactPhone          *string
	EstimatedDeliveryDays *int
}
