package models

import "errors"

var (
	// ErrInvalidDate - опорная дата (или год) не разбирается
	ErrInvalidDate = errors.New("invalid date")
	// ErrNotFound - идентификатор не найден ни в БД, ни в удаленном хранилище
	ErrNotFound = errors.New("incident not found")
	// ErrRemoteStoreUnavailable - удаленное хранилище недоступно; не фатально
	ErrRemoteStoreUnavailable = errors.New("remote store unavailable")
	// ErrTransactionFailed - транзакция удаления в БД откатилась
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrNoSelection - массовое действие без выбранных инцидентов
	ErrNoSelection = errors.New("no incidents selected")
)
