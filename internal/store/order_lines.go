package store

import (
	"database/sql"
	"fmt"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// BatchInsertOrderLines inserts sanitized lines in one transaction,
// preserving input order (the dedup policy is first-encountered-wins, so
// insertion order is part of the contract).
func (s *Store) BatchInsertOrderLines(lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertLines(tx, lines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertLines(tx *sql.Tx, lines []model.OrderLine) error {
	stmt, err := tx.Prepare(`
		INSERT INTO order_lines (
			cod_pedido, cod_cliente, nome_cliente,
			cod_colaborador, nome_colaborador,
			cod_marca, desc_marca,
			cod_grupo_produto, desc_grupo_produto,
			cod_grupo_pai, desc_grupo_pai,
			empresa_nota_fiscal, ramo_atividade,
			uf, cidade, bairro,
			cod_situacao, desc_situacao,
			nop, dt_faturamento, ano, mes,
			valor_nota, total_bruto, desconto_pedido, cep
		) VALUES (
			?, ?, ?,
			?, ?,
			?, ?,
			?, ?,
			?, ?,
			?, ?,
			?, ?, ?,
			?, ?,
			?, ?, ?, ?,
			?, ?, ?, ?
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, l := range lines {
		_, err := stmt.Exec(
			l.OrderID, l.CustomerID, l.CustomerName,
			l.SalespersonID, l.SalespersonName,
			l.BrandID, l.BrandName,
			l.ProductGroupID, l.ProductGroup,
			l.ParentGroupID, l.ParentGroup,
			l.CompanyID, l.ActivitySector,
			l.State, l.City, l.District,
			l.StatusCode, l.StatusName,
			l.Nop, l.InvoiceDate, l.Year, l.Month,
			l.NetValue, l.GrossValue, l.Discount, l.PostalCode,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line: %w", err)
		}
	}
	return nil
}

// ReplaceOrderLines clears the cache and loads a fresh line set in one
// transaction: a failed insert rolls the delete back, leaving the previous
// contents intact.
func (s *Store) ReplaceOrderLines(lines []model.OrderLine) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM order_lines`); err != nil {
		return fmt.Errorf("failed to clear order lines: %w", err)
	}
	if err := insertLines(tx, lines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// OrderLineQueryOptions narrows LoadOrderLines.
type OrderLineQueryOptions struct {
	MinYear *int // keep lines with ano >= MinYear
}

// LoadOrderLines reads cached lines in insertion order.
func (s *Store) LoadOrderLines(opts OrderLineQueryOptions) ([]model.OrderLine, error) {
	query := `
		SELECT
			cod_pedido, cod_cliente, nome_cliente,
			cod_colaborador, nome_colaborador,
			cod_marca, desc_marca,
			cod_grupo_produto, desc_grupo_produto,
			cod_grupo_pai, desc_grupo_pai,
			empresa_nota_fiscal, ramo_atividade,
			uf, cidade, bairro,
			cod_situacao, desc_situacao,
			nop, dt_faturamento, ano, mes,
			valor_nota, total_bruto, desconto_pedido, cep
		FROM order_lines WHERE 1=1`
	args := []interface{}{}

	if opts.MinYear != nil {
		query += " AND ano >= ?"
		args = append(args, *opts.MinYear)
	}

	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	return scanOrderLines(rows)
}

// CountOrderLines returns the number of cached lines.
func (s *Store) CountOrderLines() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM order_lines`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count order lines: %w", err)
	}
	return count, nil
}

func scanOrderLines(rows *sql.Rows) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		err := rows.Scan(
			&l.OrderID, &l.CustomerID, &l.CustomerName,
			&l.SalespersonID, &l.SalespersonName,
			&l.BrandID, &l.BrandName,
			&l.ProductGroupID, &l.ProductGroup,
			&l.ParentGroupID, &l.ParentGroup,
			&l.CompanyID, &l.ActivitySector,
			&l.State, &l.City, &l.District,
			&l.StatusCode, &l.StatusName,
			&l.Nop, &l.InvoiceDate, &l.Year, &l.Month,
			&l.NetValue, &l.GrossValue, &l.Discount, &l.PostalCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
