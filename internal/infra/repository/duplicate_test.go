package repository

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"gobarber-api/internal/httperr"
)

func TestTranslateDuplicate(t *testing.T) {
	// violação de índice único vira erro de negócio da tabela
	err := translateDuplicate(gorm.ErrDuplicatedKey, httperr.CodeEmailTaken)
	if httperr.BusinessCode(err) != httperr.CodeEmailTaken {
		t.Fatalf("error = %v, want %s", err, httperr.CodeEmailTaken)
	}

	err = translateDuplicate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), httperr.CodeSlotTaken)
	if httperr.BusinessCode(err) != httperr.CodeSlotTaken {
		t.Fatalf("wrapped error = %v, want %s", err, httperr.CodeSlotTaken)
	}

	if err := translateDuplicate(nil, httperr.CodeEmailTaken); err != nil {
		t.Fatalf("nil should pass through, got %v", err)
	}

	boom := errors.New("connection reset")
	if err := translateDuplicate(boom, httperr.CodeEmailTaken); !errors.Is(err, boom) {
		t.Fatalf("unrelated error should pass through, got %v", err)
	}
}
