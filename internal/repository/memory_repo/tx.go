package memory_repo

import "context"

// TxManager - менеджер транзакций без транзакций: просто вызывает fn.
// Каждый репозиторий в памяти защищен своим мьютексом
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
