package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/partsflow/internal/domain"
	"github.com/tu-usuario/partsflow/internal/domain/entity"
	"github.com/tu-usuario/partsflow/internal/domain/inventory"
	"github.com/tu-usuario/partsflow/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre PostgreSQL.
// Las referencias a categoría/proveedor son débiles (sin FK): el LEFT JOIN
// resuelve las colgantes a NULL y el scan las deja en nil.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos.
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partSelect = `
	SELECT p.id, p.name, p.part_number, p.description, p.category_id, p.supplier_id,
	       p.quantity, p.minimum_stock, p.unit_price, p.location, p.created_at, p.updated_at,
	       c.id, c.name, c.description,
	       s.id, s.name, s.contact_email, s.contact_phone, s.address
	FROM parts p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id`

// Create persiste un repuesto nuevo. PartNumber repetido -> domain.ErrDuplicate.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, name, part_number, description, category_id, supplier_id,
		                   quantity, minimum_stock, unit_price, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.PartNumber, part.Description, part.CategoryID, part.SupplierID,
		part.Quantity, part.MinimumStock, part.UnitPrice, part.Location, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto enriquecido. nil si no existe.
func (r *PartRepo) GetByID(id string) (*entity.PartWithDetails, error) {
	return r.getBy(`p.id = $1`, id)
}

// GetByPartNumber obtiene un repuesto enriquecido por número de parte.
func (r *PartRepo) GetByPartNumber(partNumber string) (*entity.PartWithDetails, error) {
	return r.getBy(`p.part_number = $1`, partNumber)
}

func (r *PartRepo) getBy(where string, arg any) (*entity.PartWithDetails, error) {
	row := r.q.QueryRow(context.Background(), partSelect+` WHERE `+where, arg)
	p, err := scanPartDetails(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// List lista todos los repuestos enriquecidos.
func (r *PartRepo) List() ([]*entity.PartWithDetails, error) {
	return r.list(partSelect + ` ORDER BY p.created_at, p.id`)
}

// Search filtra por subcadena case-insensitive en name, part_number o description.
func (r *PartRepo) Search(query string) ([]*entity.PartWithDetails, error) {
	return r.list(partSelect+`
		WHERE p.name ILIKE '%' || $1 || '%'
		   OR p.part_number ILIKE '%' || $1 || '%'
		   OR p.description ILIKE '%' || $1 || '%'
		ORDER BY p.created_at, p.id`, query)
}

// ListLowStock filtra quantity <= minimum_stock (los agotados califican siempre).
func (r *PartRepo) ListLowStock() ([]*entity.PartWithDetails, error) {
	return r.list(partSelect + `
		WHERE p.quantity <= p.minimum_stock
		ORDER BY p.created_at, p.id`)
}

func (r *PartRepo) list(query string, args ...any) ([]*entity.PartWithDetails, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var out []*entity.PartWithDetails
	for rows.Next() {
		p, err := scanPartDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update sobreescribe un repuesto existente.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts
		SET name = $2, part_number = $3, description = $4, category_id = $5, supplier_id = $6,
		    quantity = $7, minimum_stock = $8, unit_price = $9, location = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.PartNumber, part.Description, part.CategoryID, part.SupplierID,
		part.Quantity, part.MinimumStock, part.UnitPrice, part.Location, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un repuesto. Sus movimientos quedan en la bitácora.
func (r *PartRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanPartDetails escanea una fila del partSelect y deriva el estado de stock.
func scanPartDetails(row pgx.Row) (*entity.PartWithDetails, error) {
	var (
		p                        entity.Part
		catID, catName, catDesc  *string
		supID, supName, supEmail *string
		supPhone, supAddress     *string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.PartNumber, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.Quantity, &p.MinimumStock, &p.UnitPrice, &p.Location, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catDesc,
		&supID, &supName, &supEmail, &supPhone, &supAddress,
	)
	if err != nil {
		return nil, err
	}
	out := &entity.PartWithDetails{
		Part:        p,
		StockStatus: inventory.StatusFor(p.Quantity, p.MinimumStock),
	}
	if catID != nil {
		out.Category = &entity.Category{ID: *catID, Name: *catName, Description: *catDesc}
	}
	if supID != nil {
		out.Supplier = &entity.Supplier{
			ID: *supID, Name: *supName,
			ContactEmail: *supEmail, ContactPhone: *supPhone, Address: *supAddress,
		}
	}
	return out, nil
}
