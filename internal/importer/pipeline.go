package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/zapcapta/zapcapta-api/internal/origin"
)

// DefaultOrigin marca leads históricos cuja linha não informa origem, para a
// agregação distinguir importação em massa do tráfego de widget.
const DefaultOrigin = "Importado"

// TenantDirectory resolve o dono de cada linha importada. As duas buscas são
// propositalmente separadas: a atribuição de erro por linha depende de saber
// qual etapa falhou.
type TenantDirectory interface {
	FindTenantByEmail(ctx context.Context, email string) (string, error)
	FindClientByTenant(ctx context.Context, tenantID string) (string, error)
}

// Lead é o registro reconciliado entregue ao repositório.
type Lead struct {
	ClientID  string
	Name      string
	Email     string
	Phone     string
	Message   string
	URL       string
	Origin    string
	Campaign  string
	CreatedAt time.Time
}

type LeadStore interface {
	InsertLead(ctx context.Context, lead Lead) error
}

// Result acumula o desfecho de uma corrida de importação. Invariante:
// Success + len(Errors) == Total ao fim da corrida — toda linha parseada
// conta exatamente uma vez.
type Result struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

// Pipeline executa um lote de importação: valida o cabeçalho uma vez, depois
// processa linha a linha sem abortar no primeiro erro.
type Pipeline struct {
	Directory  TenantDirectory
	Store      LeadStore
	Policy     *Policy
	RowTimeout time.Duration   // 0 desliga o deadline por linha
	Progress   func(float64)   // opcional, (linha+1)/total após cada linha
	Now        func() time.Time // opcional, default time.Now
}

// Run processa o texto bruto inteiro. Só dois erros derrubam o lote:
// entrada vazia e coluna obrigatória ausente. Todo o resto vira entrada em
// Result.Errors, prefixada com o número da linha (1-based sobre os registros
// parseados). Cancelamento via ctx é checado antes de cada linha e devolve o
// Result parcial junto com ctx.Err().
//
// Rodar o mesmo lote duas vezes insere os leads duas vezes: não há guarda de
// deduplicação, igual ao comportamento de origem.
func (p *Pipeline) Run(ctx context.Context, raw string) (*Result, error) {
	parser, err := NewParser(raw, p.Policy.Mode)
	if err != nil {
		return nil, err
	}

	resolved, missing := p.Policy.Resolve(parser.Headers())
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var records []Record
	for {
		rec, ok := parser.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}

	result := &Result{Total: len(records)}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		line := i + 1
		if rowErr := p.processRow(ctx, rec, resolved); rowErr != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %s", line, rowErr))
		} else {
			result.Success++
		}

		if p.Progress != nil {
			p.Progress(float64(line) / float64(result.Total))
		}
	}

	return result, nil
}

func (p *Pipeline) processRow(ctx context.Context, rec Record, resolved map[Field]string) string {
	if p.RowTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.RowTimeout)
		defer cancel()
	}

	value := func(f Field) string { return rec[resolved[f]] }

	tenantEmail := value(FieldTenantEmail)
	name := value(FieldName)
	email := value(FieldEmail)
	phone := value(FieldPhone)

	if tenantEmail == "" || name == "" || email == "" || phone == "" {
		return "campos obrigatórios faltando"
	}

	tenantID, err := p.Directory.FindTenantByEmail(ctx, tenantEmail)
	if err != nil {
		return fmt.Sprintf("cliente %s não encontrado: %v", tenantEmail, err)
	}

	clientID, err := p.Directory.FindClientByTenant(ctx, tenantID)
	if err != nil {
		return fmt.Sprintf("conta do cliente %s não encontrada: %v", tenantEmail, err)
	}

	leadOrigin := value(FieldOrigin)
	if leadOrigin == "" {
		leadOrigin = DefaultOrigin
	}

	lead := Lead{
		ClientID:  clientID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   value(FieldMessage),
		URL:       value(FieldURL),
		Origin:    leadOrigin,
		Campaign:  origin.CampaignNotInformed,
		CreatedAt: p.parseCreatedAt(value(FieldCreatedAt)),
	}

	if err := p.Store.InsertLead(ctx, lead); err != nil {
		return fmt.Sprintf("falha ao salvar lead: %v", err)
	}
	return ""
}

func (p *Pipeline) parseCreatedAt(raw string) time.Time {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	if raw == "" {
		return now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now()
}
