package req

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// MaxBodySize предел тела запроса, 1 MiB
const MaxBodySize = 1 << 20

var ErrBodyTooLarge = fmt.Errorf("request body larger than %d bytes", MaxBodySize)

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// Decode читает JSON тело запроса в T. Неизвестные поля - ошибка.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	data, err := io.ReadAll(io.LimitReader(body, MaxBodySize+1))
	if err != nil {
		return payload, fmt.Errorf("read request body: %w", err)
	}
	if len(data) > MaxBodySize {
		return payload, ErrBodyTooLarge
	}
	if len(data) == 0 {
		return payload, errors.New("empty request body")
	}
	if !json.Valid(data) {
		return payload, errors.New("invalid request body: malformed json")
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("invalid request body: %w", err)
	}
	return payload, nil
}
