package importer

import "strings"

// Field é um campo lógico que toda importação precisa resolver a partir dos
// cabeçalhos concretos do modo ativo.
type Field string

const (
	FieldTenantEmail Field = "tenant_email"
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldMessage     Field = "message"
	FieldOrigin      Field = "origin"
	FieldURL         Field = "url"
	FieldCreatedAt   Field = "created_at"
)

type fieldSpec struct {
	field    Field
	required bool
	// Em política exata: nomes aceitos, case-sensitive.
	// Em política por substring: fragmentos, comparados em lowercase.
	names []string
}

// Policy dá nome à convenção de entrada de cada modo de importação. As duas
// convenções divergem de propósito (estrito vs tolerante, nome exato vs
// substring) porque refletem formatos já em uso; não unificar.
type Policy struct {
	Name  string
	Mode  Mode
	exact bool
	specs []fieldSpec
}

// PastePolicy: texto colado. Linhas curtas são completadas; cabeçalhos
// obrigatórios casados por nome exato, sensível a maiúsculas.
var PastePolicy = &Policy{
	Name:  "paste",
	Mode:  ModeTolerant,
	exact: true,
	specs: []fieldSpec{
		{FieldTenantEmail, true, []string{"Email-cliente"}},
		{FieldName, true, []string{"name"}},
		{FieldEmail, true, []string{"email"}},
		{FieldPhone, true, []string{"cellphone"}},
		{FieldMessage, false, []string{"message"}},
		{FieldOrigin, false, []string{"origem"}},
		{FieldURL, false, []string{"url_pesquisa"}},
		{FieldCreatedAt, false, []string{"created_at"}},
	},
}

// FilePolicy: upload de arquivo. Linhas com contagem errada de campos são
// descartadas; cabeçalhos casados por substring, sem distinção de caixa,
// na ordem dos campos — o primeiro cabeçalho livre que contiver o fragmento
// serve ao campo (por isso o e-mail do cliente resolve antes do e-mail do
// lead).
var FilePolicy = &Policy{
	Name: "file",
	Mode: ModeStrict,
	specs: []fieldSpec{
		{FieldTenantEmail, true, []string{"email-cliente", "email do cliente", "e-mail do cliente", "cliente"}},
		{FieldName, true, []string{"nome", "name"}},
		{FieldEmail, true, []string{"email", "e-mail"}},
		{FieldPhone, true, []string{"cellphone", "celular", "telefone", "whatsapp", "phone"}},
		{FieldMessage, false, []string{"mensagem", "message"}},
		{FieldOrigin, false, []string{"origem"}},
		{FieldURL, false, []string{"url"}},
		{FieldCreatedAt, false, []string{"created_at", "data"}},
	},
}

// Resolve mapeia cada campo lógico para o cabeçalho concreto que o serve e
// lista os obrigatórios que não puderam ser resolvidos.
func (p *Policy) Resolve(headers []string) (map[Field]string, []string) {
	resolved := make(map[Field]string, len(p.specs))
	claimed := make(map[string]bool, len(headers))
	var missing []string

	for _, spec := range p.specs {
		header, ok := p.match(headers, claimed, spec)
		if ok {
			resolved[spec.field] = header
			claimed[header] = true
		} else if spec.required {
			missing = append(missing, spec.names[0])
		}
	}
	return resolved, missing
}

func (p *Policy) match(headers []string, claimed map[string]bool, spec fieldSpec) (string, bool) {
	for _, h := range headers {
		if claimed[h] {
			continue
		}
		for _, name := range spec.names {
			if p.exact {
				if h == name {
					return h, true
				}
			} else if strings.Contains(strings.ToLower(h), name) {
				return h, true
			}
		}
	}
	return "", false
}
