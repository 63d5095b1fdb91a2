package request

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"maisquecafe-painel/internal/domain/entities"
)

var (
	ErrUnidadeInvalida      = errors.New("invalid unidade_id")
	ErrFornecedorInvalido   = errors.New("invalid fornecedor_id")
	ErrGerenteObrigatorio   = errors.New("gerente_nome is required")
	ErrPedidoSemItens       = errors.New("pedido has no valid items")
	ErrDataDesejadaInvalida = errors.New("desejado_para must be YYYY-MM-DD")
)

// ItemPedidoLinha is one raw line-item row as typed in the panel form. All
// fields arrive as strings; parsing decides whether the row is complete.
type ItemPedidoLinha struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade string `json:"quantidade"`
	Preco      string `json:"preco"`
	Motivo     string `json:"motivo"`
}

// CriarPedidoRequest is the order draft exactly as the panel form holds it.
type CriarPedidoRequest struct {
	UnidadeID    string            `json:"unidade_id"`
	FornecedorID string            `json:"fornecedor_id"`
	GerenteNome  string            `json:"gerente_nome"`
	Contato      string            `json:"contato"`
	DesejadoPara string            `json:"desejado_para"`
	Observacoes  string            `json:"observacoes"`
	Itens        []ItemPedidoLinha `json:"itens"`
}

// BuildItens keeps a row iff produto_id parses to an integer and quantidade
// to a finite decimal greater than zero. Incomplete rows are dropped; they
// never block the rest of the draft. Surviving rows keep their input order.
//
// A blank preco means "use the product's default price" (nil on the wire);
// an unparseable preco degrades to the same, matching the original panel
// where NaN serialized to null.
func BuildItens(linhas []ItemPedidoLinha) []entities.NovoItem {
	itens := make([]entities.NovoItem, 0, len(linhas))
	for _, linha := range linhas {
		produtoID, err := strconv.ParseInt(strings.TrimSpace(linha.ProdutoID), 10, 64)
		if err != nil {
			continue
		}
		quantidade, err := strconv.ParseFloat(strings.TrimSpace(linha.Quantidade), 64)
		if err != nil || math.IsNaN(quantidade) || math.IsInf(quantidade, 0) || quantidade <= 0 {
			continue
		}

		item := entities.NovoItem{ProdutoID: produtoID, Quantidade: quantidade}
		if s := strings.TrimSpace(linha.Preco); s != "" {
			if preco, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(preco) && !math.IsInf(preco, 0) {
				item.Preco = &preco
			}
		}
		if motivo := strings.TrimSpace(linha.Motivo); motivo != "" {
			item.Motivo = &motivo
		}
		itens = append(itens, item)
	}
	return itens
}

// ResolveDraft validates the header fields and filters the item rows,
// producing the typed draft submitted to the purchasing API. Any error here
// means no network call happens.
func (r CriarPedidoRequest) ResolveDraft() (entities.NovoPedido, error) {
	unidadeID, err := strconv.ParseInt(strings.TrimSpace(r.UnidadeID), 10, 64)
	if err != nil || unidadeID <= 0 {
		return entities.NovoPedido{}, ErrUnidadeInvalida
	}
	fornecedorID, err := strconv.ParseInt(strings.TrimSpace(r.FornecedorID), 10, 64)
	if err != nil || fornecedorID <= 0 {
		return entities.NovoPedido{}, ErrFornecedorInvalido
	}
	gerente := strings.TrimSpace(r.GerenteNome)
	if gerente == "" {
		return entities.NovoPedido{}, ErrGerenteObrigatorio
	}

	itens := BuildItens(r.Itens)
	if len(itens) == 0 {
		return entities.NovoPedido{}, ErrPedidoSemItens
	}

	draft := entities.NovoPedido{
		UnidadeID:    unidadeID,
		FornecedorID: fornecedorID,
		GerenteNome:  gerente,
		Itens:        itens,
	}
	if contato := strings.TrimSpace(r.Contato); contato != "" {
		draft.Contato = &contato
	}
	if obs := strings.TrimSpace(r.Observacoes); obs != "" {
		draft.Observacoes = &obs
	}
	if data := strings.TrimSpace(r.DesejadoPara); data != "" {
		if _, err := time.Parse("2006-01-02", data); err != nil {
			return entities.NovoPedido{}, ErrDataDesejadaInvalida
		}
		draft.DesejadoPara = &data
	}
	return draft, nil
}

// DecidirPedidoRequest is the approval decision form.
type DecidirPedidoRequest struct {
	Decisor  string `json:"decisor"`
	Aprovado bool   `json:"aprovado"`
	Motivo   string `json:"motivo"`
}

func (r DecidirPedidoRequest) ResolveDecisao() entities.NovaDecisao {
	decisao := entities.NovaDecisao{
		Decisor:  strings.TrimSpace(r.Decisor),
		Aprovado: r.Aprovado,
	}
	if motivo := strings.TrimSpace(r.Motivo); motivo != "" {
		decisao.Motivo = &motivo
	}
	return decisao
}

// RecebimentoRequest is the receipt form. The quantity arrives as a string
// and is parsed here; validation (positive, finite) is the lifecycle use
// case's job.
type RecebimentoRequest struct {
	DataRecebimento    string `json:"data_recebimento"`
	QuantidadeRecebida string `json:"quantidade_recebida"`
	Divergencia        string `json:"divergencia"`
}

func (r RecebimentoRequest) ResolveRecebimento() entities.NovoRecebimento {
	recebimento := entities.NovoRecebimento{
		DataRecebimento: strings.TrimSpace(r.DataRecebimento),
	}
	if quantidade, err := strconv.ParseFloat(strings.TrimSpace(r.QuantidadeRecebida), 64); err == nil {
		recebimento.QuantidadeRecebida = quantidade
	}
	if divergencia := strings.TrimSpace(r.Divergencia); divergencia != "" {
		recebimento.Divergencia = &divergencia
	}
	return recebimento
}
