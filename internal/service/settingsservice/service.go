package settingsservice

import (
	"context"
	"encoding/json"
	"time"

	"vitrine/internal/domain"
	"vitrine/internal/pkg/cache"
	"vitrine/internal/pkg/logger"
)

const settingsCacheKey = "store:settings"

// SettingsRepository define o contrato de leitura das personalizações da loja.
type SettingsRepository interface {
	FindOverrides(ctx context.Context) (domain.StoreSettingsOverrides, error)
}

// Service resolve as configurações visuais e de contato da vitrine.
//
// O resultado é sempre um objeto completo: os padrões da loja são a base
// e apenas os campos personalizados pelo lojista são sobrescritos. O
// objeto resolvido fica em cache no Redis, já que é lido em toda página.
type Service struct {
	repo     SettingsRepository
	cache    cache.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Configurações.
func NewService(repo SettingsRepository, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *Service {
	return &Service{repo: repo, cache: cacheClient, cacheTTL: cacheTTL, logger: log}
}

// GetSettings retorna as configurações resolvidas da loja.
func (s *Service) GetSettings(ctx domain.Context) (domain.StoreSettings, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	// 1. Tentativa de Cache (Cache-Aside)
	if cached, err := s.cache.Get(ctxGo, settingsCacheKey); err == nil {
		var settings domain.StoreSettings
		if jsonErr := json.Unmarshal([]byte(cached), &settings); jsonErr == nil {
			s.logger.Debug("⚡ Configurações da loja servidas do cache", nil)
			return settings, nil
		}
		// Entrada corrompida: descarta e segue para o DB.
		_ = s.cache.Delete(ctxGo, settingsCacheKey)
	}

	// 2. Busca no DB e merge sobre os padrões
	overrides, err := s.repo.FindOverrides(ctxGo)
	if err != nil {
		// Configuração é cosmética: se o DB falhar, a vitrine ainda
		// abre com os padrões.
		s.logger.Error("⚠️ Falha ao buscar personalizações da loja, usando padrões", err)
		return domain.DefaultStoreSettings(), nil
	}

	settings := merge(domain.DefaultStoreSettings(), overrides)

	// 3. Escrita no cache (falha não impede a resposta)
	if payload, jsonErr := json.Marshal(settings); jsonErr == nil {
		if cacheErr := s.cache.Set(ctxGo, settingsCacheKey, payload, s.cacheTTL); cacheErr != nil {
			s.logger.Warn("⚠️ Falha ao escrever configurações no cache", map[string]interface{}{
				"error": cacheErr.Error(),
			})
		}
	}

	return settings, nil
}

// merge sobrepõe os campos personalizados sobre a base de padrões.
func merge(base domain.StoreSettings, o domain.StoreSettingsOverrides) domain.StoreSettings {
	if o.StoreName != nil {
		base.StoreName = *o.StoreName
	}
	if o.PrimaryColor != nil {
		base.PrimaryColor = *o.PrimaryColor
	}
	if o.SecondaryColor != nil {
		base.SecondaryColor = *o.SecondaryColor
	}
	if o.AccentColor != nil {
		base.AccentColor = *o.AccentColor
	}
	if o.SuccessColor != nil {
		base.SuccessColor = *o.SuccessColor
	}
	if o.WarningColor != nil {
		base.WarningColor = *o.WarningColor
	}
	if o.TextColor != nil {
		base.TextColor = *o.TextColor
	}
	if o.ProductTitleColor != nil {
		base.ProductTitleColor = *o.ProductTitleColor
	}
	if o.ProductPriceColor != nil {
		base.ProductPriceColor = *o.ProductPriceColor
	}
	if o.ProductDescriptionColor != nil {
		base.ProductDescriptionColor = *o.ProductDescriptionColor
	}
	if o.ButtonPrimaryBgColor != nil {
		base.ButtonPrimaryBgColor = *o.ButtonPrimaryBgColor
	}
	if o.ButtonPrimaryTextColor != nil {
		base.ButtonPrimaryTextColor = *o.ButtonPrimaryTextColor
	}
	if o.ButtonSecondaryBgColor != nil {
		base.ButtonSecondaryBgColor = *o.ButtonSecondaryBgColor
	}
	if o.ButtonSecondaryTextColor != nil {
		base.ButtonSecondaryTextColor = *o.ButtonSecondaryTextColor
	}
	if o.MessageEmptyCartText != nil {
		base.MessageEmptyCartText = *o.MessageEmptyCartText
	}
	if o.ButtonContinueShoppingText != nil {
		base.ButtonContinueShoppingText = *o.ButtonContinueShoppingText
	}
	if o.ButtonCheckoutText != nil {
		base.ButtonCheckoutText = *o.ButtonCheckoutText
	}
	if o.ContactEmail != nil {
		base.ContactEmail = *o.ContactEmail
	}
	if o.ContactPhone != nil {
		base.ContactPhone = *o.ContactPhone
	}
	if o.EstimatedDeliveryDays != nil {
		base.EstimatedDeliveryDays = *o.EstimatedDeliveryDays
	}
	return base
}
