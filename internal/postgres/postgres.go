package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/suvidhapay/wallet/internal/domain"
	"github.com/suvidhapay/wallet/pkg/logger"
)

const transactionRollbackError = "error rolling back transaction"

// unique_violation
const pgUniqueViolation = "23505"

type Postgres struct {
	DB *sql.DB
}

func New(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

// Migrate creates tables and indexes idempotently at startup. The unique
// constraints on username, emailid and reference back the duplicate checks:
// a conflicting insert fails with 23505 instead of racing a prior lookup.
func (p *Postgres) Migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL     PRIMARY KEY,
			username      VARCHAR(255)  NOT NULL,
			password      VARCHAR(255)  NOT NULL,
			full_name     VARCHAR(255)  NOT NULL,
			phone_number  VARCHAR(50)   NOT NULL,
			address       TEXT          NOT NULL DEFAULT '',
			aadhar_number VARCHAR(50)   NOT NULL,
			pan_number    VARCHAR(50)   NOT NULL,
			emailid       VARCHAR(255)  NOT NULL,
			bank_name     VARCHAR(255)  NOT NULL DEFAULT '',
			dob           DATE,
			balance       NUMERIC(20,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
			created_at    TIMESTAMP     NOT NULL DEFAULT NOW(),
			CONSTRAINT users_username_key UNIQUE (username),
			CONSTRAINT users_emailid_key  UNIQUE (emailid)
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id               BIGSERIAL     PRIMARY KEY,
			user_id          BIGINT        NOT NULL REFERENCES users(id),
			reference        UUID          NOT NULL UNIQUE,
			recipient_number VARCHAR(50)   NOT NULL,
			amount           NUMERIC(20,2) NOT NULL CHECK (amount > 0),
			transaction_type VARCHAR(20)   NOT NULL,
			status           VARCHAR(20)   NOT NULL,
			transaction_date TIMESTAMP     NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id
			ON transactions(user_id)`,
		`CREATE TABLE IF NOT EXISTS loan_requests (
			id           BIGSERIAL     PRIMARY KEY,
			user_id      BIGINT        NOT NULL,
			amount       NUMERIC(20,2) NOT NULL,
			purpose      TEXT          NOT NULL,
			email        VARCHAR(255)  NOT NULL,
			status       VARCHAR(20)   NOT NULL,
			request_date TIMESTAMP     NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_loan_requests_user_id
			ON loan_requests(user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := p.DB.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (p *Postgres) CreateUser(user *domain.User) (int64, error) {
	var id int64
	err := p.DB.QueryRow(
		`INSERT INTO users (username, password, full_name, phone_number, address, aadhar_number, pan_number, emailid, bank_name, dob, balance)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		user.Username, user.Password, user.FullName, user.PhoneNumber, user.Address,
		user.AadharNumber, user.PanNumber, user.Email, user.BankName, user.Dob, user.Balance,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "emailid") {
				logger.Log.Warn("email already registered", logger.String("emailid", user.Email))
				return 0, domain.ErrEmailExists
			}
			logger.Log.Warn("username already taken", logger.String("username", user.Username))
			return 0, domain.ErrUsernameExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

func (p *Postgres) UserByEmail(email string) (*domain.User, error) {
	row := p.DB.QueryRow(
		`SELECT id, username, password, full_name, phone_number, address, aadhar_number, pan_number, emailid, bank_name, dob, balance, created_at
		 FROM users WHERE emailid = $1`, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

func (p *Postgres) UserByID(id int64) (*domain.User, error) {
	row := p.DB.QueryRow(
		`SELECT id, username, password, full_name, phone_number, address, aadhar_number, pan_number, emailid, bank_name, dob, balance, created_at
		 FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// UpdateUserProfile persists the mutable profile columns only; identity,
// credentials and balance never change through this path.
func (p *Postgres) UpdateUserProfile(user *domain.User) error {
	result, err := p.DB.Exec(
		`UPDATE users SET phone_number = $1, address = $2, dob = $3, aadhar_number = $4, pan_number = $5 WHERE id = $6`,
		user.PhoneNumber, user.Address, user.Dob, user.AadharNumber, user.PanNumber, user.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating user profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for profile update: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var dob sql.NullTime

	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName, &user.PhoneNumber,
		&user.Address, &user.AadharNumber, &user.PanNumber, &user.Email, &user.BankName,
		&dob, &user.Balance, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dob.Valid {
		user.Dob = &dob.Time
	}

	return &user, nil
}

// CreateTransaction appends a ledger row. The ledger is append-only: no
// update or delete statements exist for transactions anywhere in this module.
func (p *Postgres) CreateTransaction(transaction *domain.Transaction) error {
	err := p.DB.QueryRow(
		`INSERT INTO transactions (user_id, reference, recipient_number, amount, transaction_type, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, transaction_date`,
		transaction.UserID, transaction.Reference, transaction.RecipientNumber,
		transaction.Amount, transaction.Type, transaction.Status,
	).Scan(&transaction.ID, &transaction.TransactionDate)

	if err != nil {
		return fmt.Errorf("error creating transaction: %w", err)
	}

	return nil
}

func (p *Postgres) TransactionsByUser(userID int64) ([]domain.Transaction, error) {
	rows, err := p.DB.Query(
		`SELECT id, user_id, reference, recipient_number, amount, transaction_type, status, transaction_date
		 FROM transactions WHERE user_id = $1 ORDER BY transaction_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching transactions: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID, &transaction.UserID, &transaction.Reference, &transaction.RecipientNumber,
			&transaction.Amount, &transaction.Type, &transaction.Status, &transaction.TransactionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over transactions: %w", err)
	}

	return transactions, nil
}

// CreateLoanRequest inserts the per-user loan request. The existence check is
// one lookup by user_id with no status filter, inside the same database
// transaction as the insert: any prior row for the user blocks resubmission.
func (p *Postgres) CreateLoanRequest(loan *domain.LoanRequest) error {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	var existingID int64
	err = tx.QueryRow(`SELECT id FROM loan_requests WHERE user_id = $1`, loan.UserID).
		Scan(&existingID)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		rollback(tx)
		return fmt.Errorf("error fetching loan request: %w", err)
	}

	if existingID != 0 {
		logger.Log.Warn(
			"loan request already exists",
			logger.Int64("user_id", loan.UserID),
			logger.Int64("existing_id", existingID),
		)
		rollback(tx)
		return domain.ErrLoanExists
	}

	err = tx.QueryRow(
		`INSERT INTO loan_requests (user_id, amount, purpose, email, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, request_date`,
		loan.UserID, loan.Amount, loan.Purpose, loan.Email, loan.Status,
	).Scan(&loan.ID, &loan.RequestDate)
	if err != nil {
		rollback(tx)
		return fmt.Errorf("error creating loan request: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		rollback(tx)
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func (p *Postgres) LoanRequestByUser(userID int64) (*domain.LoanRequest, error) {
	row := p.DB.QueryRow(
		`SELECT id, user_id, amount, purpose, email, status, request_date
		 FROM loan_requests WHERE user_id = $1`, userID)

	return scanLoanRequest(row)
}

func (p *Postgres) LoanRequestByID(id int64) (*domain.LoanRequest, error) {
	row := p.DB.QueryRow(
		`SELECT id, user_id, amount, purpose, email, status, request_date
		 FROM loan_requests WHERE id = $1`, id)

	return scanLoanRequest(row)
}

// DeleteLoanRequest removes the row outright; a cancelled request leaves no
// trace, which is what lets the user submit again later.
func (p *Postgres) DeleteLoanRequest(id int64) error {
	result, err := p.DB.Exec(`DELETE FROM loan_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting loan request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for loan request delete: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

func scanLoanRequest(row *sql.Row) (*domain.LoanRequest, error) {
	var loan domain.LoanRequest
	err := row.Scan(&loan.ID, &loan.UserID, &loan.Amount, &loan.Purpose, &loan.Email, &loan.Status, &loan.RequestDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, fmt.Errorf("error fetching loan request: %w", err)
	}

	return &loan, nil
}

func rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil {
		logger.Log.Error(transactionRollbackError, logger.Error(err))
	}
}
