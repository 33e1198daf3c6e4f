package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Recibe el pool (no un Querier) porque Create abre su propia transacción.
type MovementRepo struct {
	pool *pgxpool.Pool
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepo {
	return &MovementRepo{pool: pool}
}

const movementSelect = `
	SELECT m.id, m.part_id, m.type, m.quantity, m.reason, m.created_at,
	       p.id, p.name, p.part_number, p.description, p.category_id, p.supplier_id,
	       p.quantity, p.minimum_stock, p.unit_price, p.location, p.created_at, p.updated_at
	FROM movements m
	JOIN parts p ON p.id = m.part_id`

// Create registra el movimiento y aplica el ajuste de existencia en una sola
// transacción: el UPDATE con GREATEST(0, ...) fija el piso en cero y el
// row lock de PostgreSQL serializa movimientos concurrentes del mismo
// repuesto. Si el part_id no resuelve, el UPDATE afecta cero filas y el
// movimiento queda registrado igual.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := `
		INSERT INTO movements (id, part_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.Exec(ctx, insert,
		movement.ID, movement.PartID, string(movement.Type),
		movement.Quantity, movement.Reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	adjust := `
		UPDATE parts
		SET quantity = GREATEST(0, quantity + $2), updated_at = $3
		WHERE id = $1`
	if _, err := tx.Exec(ctx, adjust, movement.PartID, movement.Delta(), movement.CreatedAt); err != nil {
		return fmt.Errorf("adjust part quantity: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento unido con su repuesto. nil si no existe o su
// repuesto fue eliminado (el INNER JOIN filtra).
func (r *MovementRepo) GetByID(id string) (*entity.MovementWithPart, error) {
	row := r.pool.QueryRow(context.Background(), movementSelect+` WHERE m.id = $1`, id)
	m, err := scanMovementWithPart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista los movimientos con repuesto resoluble, el más antiguo primero.
func (r *MovementRepo) List() ([]*entity.MovementWithPart, error) {
	return r.list(movementSelect + ` ORDER BY m.created_at, m.id`)
}

// ListByPart lista los movimientos de un repuesto con repuesto resoluble.
func (r *MovementRepo) ListByPart(partID string) ([]*entity.MovementWithPart, error) {
	return r.list(movementSelect+` WHERE m.part_id = $1 ORDER BY m.created_at, m.id`, partID)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.MovementWithPart, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovementWithPart
	for rows.Next() {
		m, err := scanMovementWithPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMovementWithPart(row pgx.Row) (*entity.MovementWithPart, error) {
	var (
		m       entity.Movement
		movType string
		p       entity.Part
	)
	err := row.Scan(
		&m.ID, &m.PartID, &movType, &m.Quantity, &m.Reason, &m.CreatedAt,
		&p.ID, &p.Name, &p.PartNumber, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.Quantity, &p.MinimumStock, &p.UnitPrice, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(movType)
	return &entity.MovementWithPart{Movement: m, Part: p}, nil
}
