package orderrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/domain"
	"vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// OrderRepository é a camada de acesso a dados dos pedidos.
// A criação é deliberadamente em dois passos (pedido, depois itens em lote)
// para que o serviço de checkout possa compensar a falha dos itens com um
// Delete do pedido recém-criado, espelhando o contrato do fluxo original.
type OrderRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewOrderRepository cria e retorna uma nova instância do Repositório de Pedidos.
func NewOrderRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *OrderRepository {
	return &OrderRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// CreateOrder persiste o pedido em status pending e devolve o registro com
// ID e timestamp atribuídos.
func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now().UTC()

	const orderSQL = `
		INSERT INTO orders (id, customer_name, customer_email, customer_phone, customer_cpf,
		                    customer_address, shipping_cost, total_amount, payment_method, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := r.DB.ExecContext(ctxTimeout, orderSQL,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.CustomerCPF,
		order.CustomerAddress,
		order.ShippingCost,
		order.TotalAmount,
		string(order.PaymentMethod),
		string(order.Status),
		order.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, errors.NewDBError("Falha ao criar pedido", err)
	}

	r.logger.Debug("Pedido criado no repositório.", map[string]interface{}{"order_id": order.ID})
	return order, nil
}

// CreateOrderItems insere todas as linhas do pedido em uma única transação:
// ou todas entram, ou nenhuma entra e o chamador compensa o pedido.
func (r *OrderRepository) CreateOrderItems(ctx context.Context, items []domain.OrderItem) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return errors.NewDBError("Falha ao iniciar transação de itens", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const itemSQL = `
		INSERT INTO order_items (id, order_id, product_id, product_name, product_price, quantity, total_price)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`

	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctxTimeout, itemSQL,
			item.ID,
			item.OrderID,
			item.ProductID,
			item.ProductName,
			item.ProductPrice,
			item.Quantity,
			item.TotalPrice,
		)
		if err != nil {
			return errors.NewDBError("Falha ao inserir itens do pedido", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.NewDBError("Falha ao confirmar itens do pedido", err)
	}

	return nil
}

// Delete remove um pedido (ação compensatória do checkout quando a criação
// dos itens falha).
func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	_, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return errors.NewDBError("Falha ao excluir pedido", err)
	}
	return nil
}

// FindByIDWithItems busca o pedido com seus itens e, para cada item, o
// produto vivo (expansão de relacionamento em uma única consulta de itens).
func (r *OrderRepository) FindByIDWithItems(ctx context.Context, orderID string) (domain.Order, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const orderSQL = `
		SELECT id, customer_name, customer_email, customer_phone, customer_cpf,
		       customer_address, shipping_cost, total_amount, payment_method,
		       status, COALESCE(payment_id, ''), COALESCE(payment_status, ''), created_at
		FROM orders
		WHERE id = $1`

	var order domain.Order
	var method, status, payStatus string
	err := r.DB.QueryRowContext(ctxTimeout, orderSQL, orderID).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.CustomerCPF,
		&order.CustomerAddress,
		&order.ShippingCost,
		&order.TotalAmount,
		&method,
		&status,
		&order.PaymentID,
		&payStatus,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return domain.Order{}, errors.NewNotFoundError(fmt.Sprintf("Pedido com ID %s não existe na base de dados.", orderID))
	}
	if err != nil {
		return domain.Order{}, errors.NewDBError("Falha ao buscar pedido no DB", err)
	}
	order.PaymentMethod = domain.PaymentMethod(method)
	order.Status = domain.OrderStatus(status)
	order.PaymentStatus = domain.PaymentStatus(payStatus)

	const itemsSQL = `
		SELECT i.id, i.order_id, i.product_id, i.product_name, i.product_price,
		       i.quantity, i.total_price,
		       p.id, p.name, p.image_url
		FROM order_items i
		LEFT JOIN products p ON p.id::text = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`

	rows, err := r.DB.QueryContext(ctxTimeout, itemsSQL, orderID)
	if err != nil {
		return domain.Order{}, errors.NewDBError("Falha ao buscar itens do pedido", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var pID, pName, pImage sql.NullString
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.ProductPrice, &item.Quantity, &item.TotalPrice,
			&pID, &pName, &pImage,
		); err != nil {
			return domain.Order{}, errors.NewDBError("Falha ao mapear item do pedido", err)
		}
		// Produto pode ter saído do catálogo depois da compra
		if pID.Valid {
			item.Product = &domain.Product{ID: pID.String, Name: pName.String, ImageURL: pImage.String}
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, errors.NewDBError("Falha ao iterar itens do pedido", err)
	}

	return order, nil
}

// UpdatePaymentID grava o ID de pagamento retornado pelo gateway no pedido.
func (r *OrderRepository) UpdatePaymentID(ctx context.Context, orderID, paymentID string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	_, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE orders SET payment_id = $1, payment_status = $2 WHERE id = $3`,
		paymentID, string(domain.PaymentStatusPending), orderID)
	if err != nil {
		return errors.NewDBError("Falha ao gravar ID de pagamento no pedido", err)
	}
	return nil
}

// ConfirmPayment marca o pedido como confirmado e pago. É um set simples de
// campos: reaplicar em um pedido já confirmado é idempotente.
func (r *OrderRepository) ConfirmPayment(ctx context.Context, orderID string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	_, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE orders SET status = $1, payment_status = $2 WHERE id = $3`,
		string(domain.OrderStatusConfirmed), string(domain.PaymentStatusPaid), orderID)
	if err != nil {
		return errors.NewDBError("Falha ao confirmar pagamento do pedido", err)
	}
	return nil
}
