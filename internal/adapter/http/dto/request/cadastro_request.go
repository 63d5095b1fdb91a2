package request

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"maisquecafe-painel/internal/domain/entities"
)

var (
	ErrPrecoInvalido  = errors.New("invalid preco")
	ErrNumeroInvalido = errors.New("invalid numeric field")
)

// Master-data forms. Numeric fields arrive as form strings and the Resolve
// methods apply the same defaults the original panel applied before posting
// (sla_dias 2, unidade_medida "UN", limite 0..999999).

type CriarFornecedorRequest struct {
	Codigo       string `json:"codigo"`
	RazaoSocial  string `json:"razao_social"`
	CNPJ         string `json:"cnpj"`
	EmailPedidos string `json:"email_pedidos"`
	SLADias      string `json:"sla_dias"`
}

func (r CriarFornecedorRequest) Resolve() (entities.NovoFornecedor, error) {
	novo := entities.NovoFornecedor{
		Codigo:      strings.TrimSpace(r.Codigo),
		RazaoSocial: strings.TrimSpace(r.RazaoSocial),
		SLADias:     2,
	}
	if cnpj := strings.TrimSpace(r.CNPJ); cnpj != "" {
		novo.CNPJ = &cnpj
	}
	if email := strings.TrimSpace(r.EmailPedidos); email != "" {
		novo.EmailPedidos = &email
	}
	if s := strings.TrimSpace(r.SLADias); s != "" {
		dias, err := strconv.Atoi(s)
		if err != nil || dias <= 0 {
			return entities.NovoFornecedor{}, ErrNumeroInvalido
		}
		novo.SLADias = dias
	}
	return novo, nil
}

type CriarUnidadeRequest struct {
	Codigo      string `json:"codigo"`
	Nome        string `json:"nome"`
	CNPJ        string `json:"cnpj"`
	CentroCusto string `json:"centro_custo"`
}

func (r CriarUnidadeRequest) Resolve() entities.NovaUnidade {
	nova := entities.NovaUnidade{
		Codigo: strings.TrimSpace(r.Codigo),
		Nome:   strings.TrimSpace(r.Nome),
		Ativa:  true,
	}
	if cnpj := strings.TrimSpace(r.CNPJ); cnpj != "" {
		nova.CNPJ = &cnpj
	}
	if cc := strings.TrimSpace(r.CentroCusto); cc != "" {
		nova.CentroCusto = &cc
	}
	return nova
}

type CriarProdutoRequest struct {
	Codigo        string `json:"codigo"`
	Nome          string `json:"nome"`
	UnidadeMedida string `json:"unidade_medida"`
	FornecedorID  string `json:"fornecedor_id"`
	Preco         string `json:"preco"`
}

func (r CriarProdutoRequest) Resolve() (entities.NovoProduto, error) {
	fornecedorID, err := strconv.ParseInt(strings.TrimSpace(r.FornecedorID), 10, 64)
	if err != nil || fornecedorID <= 0 {
		return entities.NovoProduto{}, ErrFornecedorInvalido
	}

	novo := entities.NovoProduto{
		Codigo:        strings.TrimSpace(r.Codigo),
		Nome:          strings.TrimSpace(r.Nome),
		UnidadeMedida: strings.TrimSpace(r.UnidadeMedida),
		FornecedorID:  fornecedorID,
		Ativo:         true,
	}
	if novo.UnidadeMedida == "" {
		novo.UnidadeMedida = "UN"
	}
	if s := strings.TrimSpace(r.Preco); s != "" {
		preco, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(preco) || math.IsInf(preco, 0) || preco < 0 {
			return entities.NovoProduto{}, ErrPrecoInvalido
		}
		novo.Preco = preco
	}
	return novo, nil
}

type CriarLimiteRequest struct {
	UnidadeID string `json:"unidade_id"`
	ProdutoID string `json:"produto_id"`
	Minimo    string `json:"minimo"`
	Maximo    string `json:"maximo"`
}

func (r CriarLimiteRequest) Resolve() (entities.NovoLimite, error) {
	unidadeID, err := strconv.ParseInt(strings.TrimSpace(r.UnidadeID), 10, 64)
	if err != nil || unidadeID <= 0 {
		return entities.NovoLimite{}, ErrUnidadeInvalida
	}
	produtoID, err := strconv.ParseInt(strings.TrimSpace(r.ProdutoID), 10, 64)
	if err != nil || produtoID <= 0 {
		return entities.NovoLimite{}, ErrNumeroInvalido
	}

	novo := entities.NovoLimite{UnidadeID: unidadeID, ProdutoID: produtoID, Maximo: 999999}
	if s := strings.TrimSpace(r.Minimo); s != "" {
		minimo, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(minimo) || minimo < 0 {
			return entities.NovoLimite{}, ErrNumeroInvalido
		}
		novo.Minimo = minimo
	}
	if s := strings.TrimSpace(r.Maximo); s != "" {
		maximo, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(maximo) || maximo < 0 {
			return entities.NovoLimite{}, ErrNumeroInvalido
		}
		novo.Maximo = maximo
	}
	return novo, nil
}
