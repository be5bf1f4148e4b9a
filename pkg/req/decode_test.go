package req

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type payload struct {
	Coins int `json:"coins"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"coins":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Coins != 3 {
		t.Fatalf("coins = %d", got.Coins)
	}
}

func TestDecode_Errors(t *testing.T) {
	for name, body := range map[string]string{
		"empty":         "",
		"broken":        `{"coins":`,
		"unknown field": `{"coins":1,"bet":2}`,
		"wrong type":    `{"coins":"one"}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode[payload](strings.NewReader(body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDecode_BodyTooLarge(t *testing.T) {
	// валидный JSON, но длиннее предела: пробелы после объекта
	body := io.MultiReader(strings.NewReader(`{"coins":1}`), strings.NewReader(strings.Repeat(" ", MaxBodySize)))
	if _, err := Decode[payload](body); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("err = %v, want ErrBodyTooLarge", err)
	}

	atLimit := `{"coins":1}` + strings.Repeat(" ", MaxBodySize-len(`{"coins":1}`))
	if _, err := Decode[payload](strings.NewReader(atLimit)); err != nil {
		t.Fatalf("body at limit: %v", err)
	}
}
