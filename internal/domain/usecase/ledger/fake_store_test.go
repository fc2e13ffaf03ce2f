package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

// fakeDatabase is an in-memory stand-in for the credit tables.
// A unit of work holds txLock until it ends, and Rollback restores the snapshot taken at Begin.
// Units of work therefore never overlap: concurrency tests against it check the facade's
// pairing and counting, not the row-level race. The conditional UPDATE that closes that race
// is asserted in repository/balance_store_test.go.
type fakeDatabase struct {
	txLock sync.Mutex
	mu     sync.Mutex

	accounts     map[string]*entity.Account
	transactions []*entity.Transaction
	nextID       uint64

	snapshotAccounts     map[string]entity.Account
	snapshotTransactions []*entity.Transaction
	snapshotNextID       uint64

	failAppend error
	failCommit error
	commits    int
	rollbacks  int
}

type fakeTxKey struct{}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{accounts: make(map[string]*entity.Account)}
}

var _ persistence.UnitOfWork = (*fakeDatabase)(nil)

func (f *fakeDatabase) Begin(ctx context.Context) (context.Context, error) {
	f.txLock.Lock()

	f.mu.Lock()
	f.snapshotAccounts = make(map[string]entity.Account, len(f.accounts))
	for id, acct := range f.accounts {
		f.snapshotAccounts[id] = *acct
	}
	f.snapshotTransactions = append([]*entity.Transaction(nil), f.transactions...)
	f.snapshotNextID = f.nextID
	f.mu.Unlock()

	return context.WithValue(ctx, fakeTxKey{}, true), nil
}

func (f *fakeDatabase) Commit(ctx context.Context) error {
	if ctx.Value(fakeTxKey{}) == nil {
		return errs.ErrNoActiveUnitOfWork
	}
	f.mu.Lock()
	commitErr := f.failCommit
	if commitErr == nil {
		f.commits++
	}
	f.mu.Unlock()
	if commitErr != nil {
		// the transaction stays open so the caller's rollback can restore it
		return commitErr
	}
	f.txLock.Unlock()
	return nil
}

func (f *fakeDatabase) Rollback(ctx context.Context) error {
	if ctx.Value(fakeTxKey{}) == nil {
		return errs.ErrNoActiveUnitOfWork
	}
	f.mu.Lock()
	f.accounts = make(map[string]*entity.Account, len(f.snapshotAccounts))
	for id, acct := range f.snapshotAccounts {
		acct := acct
		f.accounts[id] = &acct
	}
	f.transactions = f.snapshotTransactions
	f.nextID = f.snapshotNextID
	f.rollbacks++
	f.mu.Unlock()

	f.txLock.Unlock()
	return nil
}

func (f *fakeDatabase) GetBalanceStore(ctx context.Context) persistence.BalanceStore {
	return &fakeBalanceStore{db: f}
}

func (f *fakeDatabase) GetTransactionLedger(ctx context.Context) persistence.TransactionLedger {
	return &fakeLedger{db: f}
}

func (f *fakeDatabase) balance(accountID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if acct, ok := f.accounts[accountID]; ok {
		return acct.Balance()
	}
	return -1
}

func (f *fakeDatabase) rows(accountID string) []*entity.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []*entity.Transaction
	for _, tx := range f.transactions {
		if tx.AccountID == accountID {
			rows = append(rows, tx)
		}
	}
	return rows
}

type fakeBalanceStore struct {
	db *fakeDatabase
}

func (s *fakeBalanceStore) Initialize(ctx context.Context, accountID string, startingBalance int64) (*entity.Account, bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if acct, ok := s.db.accounts[accountID]; ok {
		copied := *acct
		return &copied, false, nil
	}
	acct := entity.RestoreAccount(accountID, startingBalance, 0, fixedTime, fixedTime)
	s.db.accounts[accountID] = acct
	copied := *acct
	return &copied, true, nil
}

func (s *fakeBalanceStore) Get(ctx context.Context, accountID string) (*entity.Account, bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	acct, ok := s.db.accounts[accountID]
	if !ok {
		return nil, false, nil
	}
	copied := *acct
	return &copied, true, nil
}

func (s *fakeBalanceStore) DebitIfSufficient(ctx context.Context, accountID string, amount int64) (entity.MutationResult, error) {
	if amount <= 0 {
		return entity.MutationResult{}, errs.ErrInvalidAmount
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	acct, ok := s.db.accounts[accountID]
	if !ok {
		return entity.Rejected(entity.ReasonNotFound), nil
	}
	if acct.Balance() < amount {
		return entity.Rejected(entity.ReasonInsufficientFunds), nil
	}
	s.db.accounts[accountID] = entity.RestoreAccount(accountID, acct.Balance()-amount, acct.TotalConsumed+amount, acct.CreatedAt, fixedTime)
	return entity.Succeeded(acct.Balance() - amount), nil
}

func (s *fakeBalanceStore) Credit(ctx context.Context, accountID string, amount int64) (entity.MutationResult, error) {
	if amount <= 0 {
		return entity.MutationResult{}, errs.ErrInvalidAmount
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	acct, ok := s.db.accounts[accountID]
	if !ok {
		return entity.Rejected(entity.ReasonNotFound), nil
	}
	s.db.accounts[accountID] = entity.RestoreAccount(accountID, acct.Balance()+amount, acct.TotalConsumed, acct.CreatedAt, fixedTime)
	return entity.Succeeded(acct.Balance() + amount), nil
}

type fakeLedger struct {
	db *fakeDatabase
}

func (l *fakeLedger) Append(ctx context.Context, transaction *entity.Transaction) error {
	l.db.mu.Lock()
	defer l.db.mu.Unlock()
	if l.db.failAppend != nil {
		return l.db.failAppend
	}
	l.db.nextID++
	stored := *transaction
	stored.ID = l.db.nextID
	transaction.ID = stored.ID
	l.db.transactions = append(l.db.transactions, &stored)
	return nil
}

func (l *fakeLedger) List(ctx context.Context, accountID string, opts entity.ListOptions) ([]*entity.Transaction, error) {
	var rows []*entity.Transaction
	for _, tx := range l.db.rows(accountID) {
		switch {
		case opts.Cursor == 0,
			opts.Order == entity.OrderOldestFirst && tx.ID > opts.Cursor,
			opts.Order != entity.OrderOldestFirst && tx.ID < opts.Cursor:
			rows = append(rows, tx)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if opts.Order == entity.OrderOldestFirst {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].ID > rows[j].ID
	})
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}
	return rows, nil
}

func (l *fakeLedger) Aggregate(ctx context.Context, accountID string) (*entity.LedgerAggregate, error) {
	agg := &entity.LedgerAggregate{}
	for _, tx := range l.db.rows(accountID) {
		agg.NetAmount += tx.Amount
		agg.TransactionCount++
		if tx.Amount > 0 {
			agg.TotalEarned += tx.Amount
		} else {
			agg.TotalUsed += -tx.Amount
		}
	}
	return agg, nil
}

var errInjected = errors.New("injected failure")
