package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	transactionsTable = "creator_transactions t"
)

type TransactionRepository interface {
	ListByCreatorID(ctx context.Context, creatorID string) ([]domain.Transaction, error)
}

type transactionRepository struct {
	conn postgres.Queryer
}

func NewTransactionRepository(conn postgres.Queryer) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func buildTransactionsQuery(creatorID string) (string, []interface{}, error) {
	return squirrel.
		Select("t.id", "t.type", "t.status", "t.amount", "t.created_at").
		From(transactionsTable).
		Where(squirrel.Eq{"t.creator_id": creatorID}).
		OrderBy("t.created_at ASC", "t.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *transactionRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]domain.Transaction, error) {
	query, args, err := buildTransactionsQuery(creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de transações")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar transações do criador %s", creatorID)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			transaction domain.Transaction
			txType      string
			status      string
		)

		if err := rows.Scan(&transaction.ID, &txType, &status, &transaction.Amount, &transaction.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear transação")
		}

		transaction.Type = domain.TransactionType(txType)
		transaction.Status = domain.TransactionStatus(status)

		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de transações")
	}

	return transactions, nil
}
