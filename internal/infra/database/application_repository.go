package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/idealmodas/crediario/internal/entity"
)

type ApplicationRepository struct {
	DB *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entity.CreditApplication) error {
	query := `
		INSERT INTO pre_cadastros (
			nome_completo, nome_mae, nome_pai, estado_civil, sexo,
			data_nascimento, cpf, salario, telefone, email,
			cep, cidade, endereco, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		app.Name,
		app.MotherName,
		nullString(app.FatherName),
		app.MaritalStatus,
		app.Gender,
		app.BirthDate,
		app.CPF,
		app.Salary,
		app.Phone,
		app.Email,
		app.CEP,
		app.City,
		app.Address,
		app.Status,
	).Scan(&app.ID, &app.CreatedAt)

	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]entity.CreditApplication, error) {
	query := `
		SELECT
			id, nome_completo, nome_mae, COALESCE(nome_pai, ''), estado_civil, sexo,
			data_nascimento, cpf, salario, telefone, email,
			cep, cidade, endereco, status, limite_credito, created_at
		FROM pre_cadastros
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pré-cadastros: %w", err)
	}
	defer rows.Close()

	var apps []entity.CreditApplication
	for rows.Next() {
		var app entity.CreditApplication
		if err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.MotherName,
			&app.FatherName,
			&app.MaritalStatus,
			&app.Gender,
			&app.BirthDate,
			&app.CPF,
			&app.Salary,
			&app.Phone,
			&app.Email,
			&app.CEP,
			&app.City,
			&app.Address,
			&app.Status,
			&app.CreditLimit,
			&app.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler pré-cadastro: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*entity.CreditApplication, error) {
	query := `
		SELECT
			id, nome_completo, nome_mae, COALESCE(nome_pai, ''), estado_civil, sexo,
			data_nascimento, cpf, salario, telefone, email,
			cep, cidade, endereco, status, limite_credito, created_at
		FROM pre_cadastros
		WHERE id = $1
	`

	var app entity.CreditApplication
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&app.ID,
		&app.Name,
		&app.MotherName,
		&app.FatherName,
		&app.MaritalStatus,
		&app.Gender,
		&app.BirthDate,
		&app.CPF,
		&app.Salary,
		&app.Phone,
		&app.Email,
		&app.CEP,
		&app.City,
		&app.Address,
		&app.Status,
		&app.CreditLimit,
		&app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pré-cadastro: %w", err)
	}

	return &app, nil
}

// UpdateStatus grava a decisão. Limite só acompanha aprovação;
// nos demais casos a coluna é limpa.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status entity.Status, limit *float64) error {
	query := `UPDATE pre_cadastros SET status = $1, limite_credito = $2 WHERE id = $3`

	result, err := r.DB.ExecContext(ctx, query, status, limit, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar pré-cadastro: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrApplicationNotFound
	}

	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
