package watcher

import (
	"context"
	"time"

	"vitrine/internal/domain"
	"vitrine/internal/pkg/logger"
)

// PaymentVerifier executa um passo de verificação do pagamento de um
// pedido. Na prática é o orderservice, compartilhado com o endpoint de
// status consultado pela página de obrigado.
type PaymentVerifier interface {
	VerifyPayment(ctx domain.Context, orderID string) (domain.OrderStatusView, error)
}

// Watcher acompanha em background os pedidos recém-criados até o
// pagamento resolver. Cada pedido ganha uma goroutine com ticker; o loop
// termina quando o pagamento é pago ou falha, quando o contexto do
// servidor é cancelado (shutdown) ou quando o tempo máximo de
// acompanhamento expira.
type Watcher struct {
	verifier    PaymentVerifier
	interval    time.Duration
	maxDuration time.Duration
	logger      logger.Logger
}

// NewWatcher cria e retorna uma nova instância do Watcher de pagamentos.
func NewWatcher(verifier PaymentVerifier, interval, maxDuration time.Duration, log logger.Logger) *Watcher {
	return &Watcher{
		verifier:    verifier,
		interval:    interval,
		maxDuration: maxDuration,
		logger:      log,
	}
}

// Start inicia o acompanhamento do pedido em uma goroutine própria.
func (w *Watcher) Start(ctx context.Context, orderID string) {
	go w.Watch(ctx, orderID)
}

// Watch roda o loop de verificação até o pagamento resolver. Bloqueante;
// use Start para o disparo em background.
func (w *Watcher) Watch(ctx context.Context, orderID string) {
	ctx, cancel := context.WithTimeout(ctx, w.maxDuration)
	defer cancel()

	w.logger.Info("👀 Acompanhando pagamento do pedido.", map[string]interface{}{
		"order_id": orderID,
		"interval": w.interval.String(),
	})

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Acompanhamento de pagamento encerrado sem resolução.", map[string]interface{}{
				"order_id": orderID,
				"reason":   ctx.Err().Error(),
			})
			return
		case <-ticker.C:
			view, err := w.verifier.VerifyPayment(ctx, orderID)
			if err != nil {
				// Pedido sumiu ou DB indisponível; o próximo tick tenta de novo.
				w.logger.Warn("⚠️ Verificação de pagamento falhou, tentando no próximo tick.", map[string]interface{}{
					"order_id": orderID,
					"error":    err.Error(),
				})
				continue
			}

			switch view.PaymentStatus {
			case domain.PaymentStatusPaid:
				w.logger.Info("✅ Pagamento resolvido, acompanhamento encerrado.", map[string]interface{}{
					"order_id": orderID,
				})
				return
			case domain.PaymentStatusFailed:
				w.logger.Warn("❌ Pagamento falhou, acompanhamento encerrado.", map[string]interface{}{
					"order_id": orderID,
				})
				return
			}
			// checking/pending: segue para o próximo tick.
		}
	}
}
