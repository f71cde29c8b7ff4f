package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapcapta/zapcapta-api/internal/importer"
)

func drain(p *importer.Parser) []importer.Record {
	var records []importer.Record
	for {
		rec, ok := p.Next()
		if !ok {
			return records
		}
		records = append(records, rec)
	}
}

func TestParser_EntradaVazia(t *testing.T) {
	for _, raw := range []string{"", "\n\n\n", "   \n  \t \n"} {
		_, err := importer.NewParser(raw, importer.ModeStrict)
		assert.ErrorIs(t, err, importer.ErrEmptyInput)
	}
}

func TestParser_CabecalhoEValores(t *testing.T) {
	raw := "name,email,cellphone\nJoão,joao@x.com,11999998888\nMaria,maria@x.com,21988887777\n"

	p, err := importer.NewParser(raw, importer.ModeStrict)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "email", "cellphone"}, p.Headers())

	records := drain(p)
	require.Len(t, records, 2)
	assert.Equal(t, "João", records[0]["name"])
	assert.Equal(t, "maria@x.com", records[1]["email"])
}

func TestParser_CampoEntreAspasComVirgula(t *testing.T) {
	raw := "name,email\n\"Smith, John\",a@b.com\n"

	p, err := importer.NewParser(raw, importer.ModeTolerant)
	require.NoError(t, err)

	records := drain(p)
	require.Len(t, records, 1)
	assert.Equal(t, "Smith, John", records[0]["name"])
	assert.Equal(t, "a@b.com", records[0]["email"])
}

func TestParser_AspaDuplaEscapada(t *testing.T) {
	raw := "name,message\nAna,\"disse \"\"oi\"\" e saiu\"\n"

	p, err := importer.NewParser(raw, importer.ModeTolerant)
	require.NoError(t, err)

	records := drain(p)
	require.Len(t, records, 1)
	assert.Equal(t, `disse "oi" e saiu`, records[0]["message"])
}

func TestParser_ModeStrict_DescartaLinhaTorta(t *testing.T) {
	raw := "name,email,cellphone\nJoão,joao@x.com,119999\nSóUmCampo\nMaria,maria@x.com,219888\n"

	p, err := importer.NewParser(raw, importer.ModeStrict)
	require.NoError(t, err)

	records := drain(p)
	require.Len(t, records, 2)
	assert.Equal(t, "João", records[0]["name"])
	assert.Equal(t, "Maria", records[1]["name"])
}

func TestParser_ModeTolerant_CompletaLinhaCurta(t *testing.T) {
	raw := "name,email,cellphone\nJoão,joao@x.com\n"

	p, err := importer.NewParser(raw, importer.ModeTolerant)
	require.NoError(t, err)

	records := drain(p)
	require.Len(t, records, 1)
	assert.Equal(t, "João", records[0]["name"])
	assert.Equal(t, "joao@x.com", records[0]["email"])
	assert.Equal(t, "", records[0]["cellphone"])
}

func TestParser_ModeTolerant_CortaExcedente(t *testing.T) {
	raw := "name,email\nJoão,joao@x.com,extra,mais-extra\n"

	p, err := importer.NewParser(raw, importer.ModeTolerant)
	require.NoError(t, err)

	records := drain(p)
	require.Len(t, records, 1)
	assert.Equal(t, "joao@x.com", records[0]["email"])
}

func TestParser_LinhasVaziasIgnoradas(t *testing.T) {
	raw := "\n\nname,email\n\nJoão,joao@x.com\n\n\n"

	p, err := importer.NewParser(raw, importer.ModeStrict)
	require.NoError(t, err)

	records := drain(p)
	require.Len(t, records, 1)
}

func TestParser_NaoReiniciavel(t *testing.T) {
	p, err := importer.NewParser("name\nJoão\n", importer.ModeStrict)
	require.NoError(t, err)

	drain(p)
	_, ok := p.Next()
	assert.False(t, ok)
}
