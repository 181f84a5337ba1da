// Package storage описывает общие ошибки хранилищ. Реализации лежат
// в подпакетах memory и postgresql.
package storage

import "errors"

var (
	// ErrNotFound: запись с таким идентификатором или ключом отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists: нарушено ограничение уникальности.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrStatusConflict: заявка уже не в статусе pending.
	ErrStatusConflict = errors.New("membership request is not pending")
)
