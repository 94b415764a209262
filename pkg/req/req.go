package req

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// MaxBodyBytes Предел размера JSON тела запроса
const MaxBodyBytes int64 = 4 << 10

var (
	ErrEmptyBody    = errors.New("empty request body")
	ErrBodyTooLarge = fmt.Errorf("request body is larger than %d bytes", MaxBodyBytes)
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode - читает JSON тело запроса в T. Пустое тело или тело больше MaxBodyBytes - ошибка
func Decode[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var payload T
	if r.Body == nil || r.Body == http.NoBody {
		return payload, ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return payload, ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return payload, ErrEmptyBody
		}
		return payload, err
	}
	return payload, nil
}
