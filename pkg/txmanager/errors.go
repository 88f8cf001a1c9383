package txmanager

import "errors"

var (
	// ErrBeginTx возвращается, когда не удалось открыть транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerializationFailure возвращается при конфликте сериализуемых транзакций (SQLSTATE 40001).
	// Операцию можно повторить.
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)
