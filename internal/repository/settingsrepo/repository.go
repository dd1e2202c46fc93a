package settingsrepo

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/domain"
	"vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// SettingsRepository lê a linha única de configurações da loja.
// Cada coluna é anulável: o lojista customiza só o que quiser e o serviço
// mescla os overrides sobre os padrões.
type SettingsRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSettingsRepository cria e retorna uma nova instância do Repositório de Configurações.
func NewSettingsRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *SettingsRepository {
	return &SettingsRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// FindOverrides busca os overrides do lojista. A ausência da linha não é
// erro: significa loja sem customização (todos os campos nil).
func (r *SettingsRepository) FindOverrides(ctx context.Context) (domain.StoreSettingsOverrides, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT store_name,
		       primary_color, secondary_color, accent_color, success_color, warning_color,
		       text_color, product_title_color, product_price_color, product_description_color,
		       button_primary_bg_color, button_primary_text_color,
		       button_secondary_bg_color, button_secondary_text_color,
		       message_empty_cart_text, button_continue_shopping_text, button_checkout_text,
		       contact_email, contact_phone, estimated_delivery_days
		FROM store_settings
		LIMIT 1`

	var o domain.StoreSettingsOverrides
	err := r.DB.QueryRowContext(ctxTimeout, query).Scan(
		&o.StoreName,
		&o.PrimaryColor, &o.SecondaryColor, &o.AccentColor, &o.SuccessColor, &o.WarningColor,
		&o.TextColor, &o.ProductTitleColor, &o.ProductPriceColor, &o.ProductDescriptionColor,
		&o.ButtonPrimaryBgColor, &o.ButtonPrimaryTextColor,
		&o.ButtonSecondaryBgColor, &o.ButtonSecondaryTextColor,
		&o.MessageEmptyCartText, &o.ButtonContinueShoppingText, &o.ButtonCheckoutText,
		&o.ContactEmail, &o.ContactPhone, &o.EstimatedDeliveryDays,
	)

	if err == sql.ErrNoRows {
		// Loja sem linha de configurações: devolve overrides vazios
		return domain.StoreSettingsOverrides{}, nil
	}
	if err != nil {
		return domain.StoreSettingsOverrides{}, errors.NewDBError("Falha ao buscar configurações da loja", err)
	}

	return o, nil
}
