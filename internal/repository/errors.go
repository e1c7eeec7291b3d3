package repository

import "errors"

var (
	// ErrUnexpectedStatus возвращается, если PostgREST ответил не 2xx.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse возвращается, если тело ответа не является JSON-массивом строк.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidSeed возвращается при ошибке чтения или разбора YAML-файла с данными.
	ErrInvalidSeed = errors.New("invalid seed file")
)
