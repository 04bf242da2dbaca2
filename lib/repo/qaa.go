package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	qaa "github.com/holmes89/qaa/lib"
	"github.com/holmes89/qaa/lib/service/answer"
	"github.com/holmes89/qaa/lib/service/store"
)

const qaaTable = "qaa"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type QAARepo struct {
	*Conn
}

var _ store.QAARepository = (*QAARepo)(nil)
var _ answer.QAARepository = (*QAARepo)(nil)

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *QAARepo) Create(ctx context.Context, b *qaa.QAA) error {
	query, args, err := psql.Insert(qaaTable).
		Columns("question", "answer").
		Values(b.Question, b.Answer).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("unable to insert record: %w", err)
	}
	return nil
}

func (r *QAARepo) Get(ctx context.Context, id int64) (*qaa.QAA, error) {
	return r.get(ctx, r.conn, id, false)
}

func (r *QAARepo) UpdateQuestion(ctx context.Context, id int64, question string) (*qaa.QAA, error) {
	return r.update(ctx, id, "question", question)
}

func (r *QAARepo) UpdateAnswer(ctx context.Context, id int64, answer string) (*qaa.QAA, error) {
	return r.update(ctx, id, "answer", answer)
}

// update locks the row, writes a single column and returns the new state.
func (r *QAARepo) update(ctx context.Context, id int64, column, value string) (*qaa.QAA, error) {
	var record *qaa.QAA
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		current, err := r.get(ctx, tx, id, true)
		if err != nil {
			return err
		}
		query, args, err := psql.Update(qaaTable).
			Set(column, value).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("unable to update %s: %w", column, err)
		}
		switch column {
		case "question":
			current.Question = value
		case "answer":
			current.Answer = value
		}
		record = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *QAARepo) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.get(ctx, tx, id, true); err != nil {
			return err
		}
		query, args, err := psql.Delete(qaaTable).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("unable to delete record: %w", err)
		}
		return nil
	})
}

func (r *QAARepo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete(qaaTable).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unable to delete records: %w", err)
	}
	return res.RowsAffected()
}

func (r *QAARepo) List(ctx context.Context) ([]*qaa.QAA, error) {
	query, args, err := psql.Select("id", "question", "answer").
		From(qaaTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unable to list records: %w", err)
	}
	defer rows.Close()

	records := []*qaa.QAA{}
	for rows.Next() {
		record, err := scanQAA(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *QAARepo) get(ctx context.Context, q queryRower, id int64, forUpdate bool) (*qaa.QAA, error) {
	builder := psql.Select("id", "question", "answer").
		From(qaaTable).
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	record, err := scanQAA(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, qaa.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanQAA reads one row; NULL columns come back as empty strings.
func scanQAA(s scanner) (*qaa.QAA, error) {
	var (
		record   qaa.QAA
		question sql.NullString
		answer   sql.NullString
	)
	if err := s.Scan(&record.ID, &question, &answer); err != nil {
		return nil, err
	}
	record.Question = question.String
	record.Answer = answer.String
	return &record, nil
}
