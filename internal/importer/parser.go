// Package importer implementa a esteira de importação em massa de leads:
// parser de texto delimitado tolerante a campos entre aspas, políticas de
// cabeçalho por modo de entrada (arquivo vs texto colado) e o loop de
// reconciliação linha a linha com falha parcial.
package importer

import "strings"

// Mode controla o que fazer com linhas cuja contagem de campos não bate com
// o cabeçalho.
type Mode int

const (
	// ModeStrict descarta a linha silenciosamente (caminho de upload de arquivo).
	ModeStrict Mode = iota
	// ModeTolerant preenche campos finais ausentes com string vazia e corta
	// excedentes (caminho de texto colado).
	ModeTolerant
)

// Record é uma linha de entrada já reconciliada: cabeçalho → valor.
type Record map[string]string

// Parser percorre o texto delimitado em uma única passada. Não é
// reiniciável: consumido o último registro, Next passa a retornar false.
type Parser struct {
	headers []string
	lines   []string
	pos     int
	mode    Mode
	delim   byte
}

// NewParser separa o texto em linhas não vazias (aparadas), toma a primeira
// como cabeçalho e devolve o iterador sobre as demais. Retorna ErrEmptyInput
// quando não sobra nenhuma linha.
func NewParser(raw string, mode Mode) (*Parser, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	return &Parser{
		headers: splitFields(lines[0], ','),
		lines:   lines[1:],
		mode:    mode,
		delim:   ',',
	}, nil
}

// Headers devolve o cabeçalho já parseado (aspas resolvidas).
func (p *Parser) Headers() []string {
	return p.headers
}

// Next devolve o próximo registro. Em ModeStrict, linhas com contagem de
// campos divergente são puladas; em ModeTolerant, linhas curtas ganham
// campos vazios no fim e linhas longas perdem o excedente.
func (p *Parser) Next() (Record, bool) {
	for p.pos < len(p.lines) {
		fields := splitFields(p.lines[p.pos], p.delim)
		p.pos++

		if len(fields) != len(p.headers) {
			if p.mode == ModeStrict {
				continue
			}
			for len(fields) < len(p.headers) {
				fields = append(fields, "")
			}
			fields = fields[:len(p.headers)]
		}

		rec := make(Record, len(p.headers))
		for i, h := range p.headers {
			rec[h] = strings.TrimSpace(fields[i])
		}
		return rec, true
	}
	return nil, false
}

// splitFields divide uma linha pelo delimitador respeitando aspas: campo
// entre aspas pode conter o delimitador, e "" dentro de campo citado é
// aspa literal (estilo RFC 4180).
func splitFields(line string, delim byte) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if quoted && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			quoted = !quoted
		case ch == delim && !quoted:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}
