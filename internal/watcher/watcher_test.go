package watcher_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vitrine/internal/domain"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/watcher"
)

// scriptedVerifier devolve uma sequência pré-programada de status, um por
// chamada, e conta as chamadas.
type scriptedVerifier struct {
	mu       sync.Mutex
	statuses []domain.PaymentStatus
	calls    int
}

func (v *scriptedVerifier) VerifyPayment(ctx domain.Context, orderID string) (domain.OrderStatusView, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	status := v.statuses[len(v.statuses)-1]
	if v.calls < len(v.statuses) {
		status = v.statuses[v.calls]
	}
	v.calls++
	return domain.OrderStatusView{
		Order:         domain.Order{ID: orderID},
		PaymentStatus: status,
		Confirmed:     status == domain.PaymentStatusPaid,
	}, nil
}

func (v *scriptedVerifier) callCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.calls
}

// TestWatch_StopsWhenPaid testa que o loop para no tick em que o pagamento
// é aprovado, depois de acompanhar os ticks pendentes.
func TestWatch_StopsWhenPaid(t *testing.T) {
	verifier := &scriptedVerifier{statuses: []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusPending,
		domain.PaymentStatusPaid,
	}}
	w := watcher.NewWatcher(verifier, 5*time.Millisecond, time.Second, logger.NewLogger("error"))

	done := make(chan struct{})
	go func() {
		w.Watch(context.Background(), "pedido-1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher não encerrou após o pagamento aprovado")
	}
	assert.Equal(t, 3, verifier.callCount())
}

// TestWatch_StopsWhenFailed testa que o loop para quando o pagamento falha.
func TestWatch_StopsWhenFailed(t *testing.T) {
	verifier := &scriptedVerifier{statuses: []domain.PaymentStatus{
		domain.PaymentStatusFailed,
	}}
	w := watcher.NewWatcher(verifier, 5*time.Millisecond, time.Second, logger.NewLogger("error"))

	done := make(chan struct{})
	go func() {
		w.Watch(context.Background(), "pedido-1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher não encerrou após a falha do pagamento")
	}
	assert.Equal(t, 1, verifier.callCount())
}

// TestWatch_ContextCancellation testa o encerramento pelo shutdown do servidor.
func TestWatch_ContextCancellation(t *testing.T) {
	verifier := &scriptedVerifier{statuses: []domain.PaymentStatus{
		domain.PaymentStatusPending,
	}}
	w := watcher.NewWatcher(verifier, 5*time.Millisecond, time.Minute, logger.NewLogger("error"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Watch(ctx, "pedido-1")
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher não respeitou o cancelamento do contexto")
	}
}

// TestWatch_MaxDuration testa que o acompanhamento expira sozinho.
func TestWatch_MaxDuration(t *testing.T) {
	verifier := &scriptedVerifier{statuses: []domain.PaymentStatus{
		domain.PaymentStatusPending,
	}}
	w := watcher.NewWatcher(verifier, 5*time.Millisecond, 30*time.Millisecond, logger.NewLogger("error"))

	done := make(chan struct{})
	go func() {
		w.Watch(context.Background(), "pedido-1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher não respeitou a duração máxima")
	}
}
