package cartrepo

import (
	"sync"

	"vitrine/internal/domain"
)

// MemoryCartRepository guarda os carrinhos em memória, indexados pelo ID da
// sessão. É o único estado mutável compartilhado do sistema: um RWMutex
// protege o mapa porque o servidor HTTP atende sessões em paralelo, mas
// cada sessão tem um único escritor por vez (a aba do navegador).
// Não há persistência: reiniciar o serviço zera todos os carrinhos.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

// NewMemoryCartRepository cria o armazém de carrinhos em memória.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string][]domain.CartItem),
	}
}

// Load devolve uma cópia das linhas do carrinho da sessão, na ordem de
// inserção. Sessão desconhecida devolve carrinho vazio.
func (r *MemoryCartRepository) Load(sessionID string) []domain.CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[sessionID]
	copia := make([]domain.CartItem, len(items))
	copy(copia, items)
	return copia
}

// Store substitui as linhas do carrinho da sessão.
func (r *MemoryCartRepository) Store(sessionID string, items []domain.CartItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(items) == 0 {
		delete(r.carts, sessionID)
		return
	}
	copia := make([]domain.CartItem, len(items))
	copy(copia, items)
	r.carts[sessionID] = copia
}

// Clear esvazia o carrinho da sessão. Leituras após o Clear refletem o
// carrinho vazio imediatamente (o "limpar" é autoritativo).
func (r *MemoryCartRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
