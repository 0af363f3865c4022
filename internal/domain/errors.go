package domain

import "errors"

// Виды ошибок. Ошибки пакетов оборачивают один из них,
// чтобы граница запроса могла выбрать HTTP статус по виду ошибки
var (
	// ErrValidation некорректные или отсутствующие входные данные
	ErrValidation = errors.New("validation error")

	// ErrNotFound сущность не найдена
	ErrNotFound = errors.New("not found")

	// ErrConflict конфликт с текущим состоянием (слот занят, клиент уже зарегистрирован)
	ErrConflict = errors.New("conflict")

	// ErrStore ошибка хранилища
	ErrStore = errors.New("store error")
)
