package domain

import "errors"

var (
	// ErrUnknownIntent — интент не поддерживается ботом.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrMalformedRequest — параметры интента не удалось разобрать.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrUnknownFoodItem — блюда нет в меню, строку заказа вставить нельзя.
	ErrUnknownFoodItem = errors.New("unknown food item")

	// ErrOrderNotFound — заказа с таким id нет в хранилище.
	ErrOrderNotFound = errors.New("order not found")
)
