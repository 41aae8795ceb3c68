package repository

import (
	"errors"

	"gorm.io/gorm"

	"gobarber-api/internal/httperr"
)

// translateDuplicate converte a violação de índice único reportada pelo
// gorm (TranslateError ligado na conexão) no código de negócio da
// tabela. Qualquer outro erro passa intocado.
func translateDuplicate(err error, code string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness(code)
	}
	return err
}
