package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput indica entrada sem nenhuma linha útil (nem cabeçalho).
var ErrEmptyInput = errors.New("importação vazia: nenhuma linha para processar")

// MissingColumnsError aborta o lote inteiro antes de qualquer linha ser
// processada: pré-condição estrutural, checada uma única vez.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("colunas obrigatórias ausentes: %s", strings.Join(e.Columns, ", "))
}

// IsBatchAbort diz se o erro invalida a corrida inteira (nenhum Result
// parcial é produzido), em oposição aos erros por linha acumulados no Result.
func IsBatchAbort(err error) bool {
	var mc *MissingColumnsError
	return errors.Is(err, ErrEmptyInput) || errors.As(err, &mc)
}
