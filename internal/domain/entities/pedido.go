package entities

// OrderStatus represents the purchase order lifecycle as reported by the
// MaisQueCafe API.
//
// Domain notes:
//   - The remote API is the sole writer of Status; the panel only requests
//     transitions (enviar / aprovar / recebimentos) and re-reads.
//   - The set below is what the API enumerates today. Any unknown value must
//     still render, so code never switches exhaustively over OrderStatus.

type OrderStatus string

const (
	StatusRascunho          OrderStatus = "rascunho"
	StatusPendenteAprovacao OrderStatus = "pendente_aprovacao"
	StatusReprovado         OrderStatus = "reprovado"
	StatusAprovado          OrderStatus = "aprovado"
	StatusAutorizado        OrderStatus = "autorizado"
	StatusRecebido          OrderStatus = "recebido"
)

// Display badge classes used by the panel table.
const (
	EstiloOK     = "ok"
	EstiloAlerta = "warn"
	EstiloNeutro = "pill"
)

// Estilo maps a status to its badge class. Total over all strings: anything
// the panel does not recognize gets the neutral badge.
func (s OrderStatus) Estilo() string {
	switch s {
	case StatusAutorizado:
		return EstiloOK
	case StatusPendenteAprovacao:
		return EstiloAlerta
	default:
		return EstiloNeutro
	}
}

// ItemPedido is a line item as persisted by the remote API (preco and
// subtotal already resolved server-side).
type ItemPedido struct {
	ID         int64   `json:"id"`
	ProdutoID  int64   `json:"produto_id"`
	Quantidade float64 `json:"quantidade"`
	Preco      float64 `json:"preco"`
	Subtotal   float64 `json:"subtotal"`
	Motivo     *string `json:"motivo,omitempty"`
}

// Pedido is a purchase order owned by the remote API. The panel holds only
// transient copies and never mutates one directly.
type Pedido struct {
	ID           int64        `json:"id"`
	CriadoEm     DataHora     `json:"criado_em"`
	UnidadeID    int64        `json:"unidade_id"`
	FornecedorID int64        `json:"fornecedor_id"`
	GerenteNome  string       `json:"gerente_nome"`
	Contato      *string      `json:"contato,omitempty"`
	Status       OrderStatus  `json:"status"`
	DesejadoPara *string      `json:"desejado_para,omitempty"`
	Observacoes  *string      `json:"observacoes,omitempty"`
	ValorTotal   float64      `json:"valor_total"`
	Itens        []ItemPedido `json:"itens,omitempty"`
}

// NovoItem is one validated line of an order draft. Preco nil means "use the
// product's default price" on the server.
type NovoItem struct {
	ProdutoID  int64    `json:"produto_id"`
	Quantidade float64  `json:"quantidade"`
	Preco      *float64 `json:"preco"`
	Motivo     *string  `json:"motivo,omitempty"`
}

// NovoPedido is the order creation payload (the composed draft). It exists
// only until the remote API accepts it.
type NovoPedido struct {
	UnidadeID    int64      `json:"unidade_id"`
	FornecedorID int64      `json:"fornecedor_id"`
	GerenteNome  string     `json:"gerente_nome"`
	Contato      *string    `json:"contato"`
	DesejadoPara *string    `json:"desejado_para"`
	Observacoes  *string    `json:"observacoes"`
	Itens        []NovoItem `json:"itens"`
}

// NovaDecisao is the approval decision payload for POST /pedidos/{id}/aprovar.
type NovaDecisao struct {
	Decisor  string  `json:"decisor"`
	Aprovado bool    `json:"aprovado"`
	Motivo   *string `json:"motivo,omitempty"`
}

// NovoRecebimento is the receipt payload for POST /pedidos/{id}/recebimentos.
// DataRecebimento uses the API's date format (2006-01-02).
type NovoRecebimento struct {
	DataRecebimento    string  `json:"data_recebimento"`
	QuantidadeRecebida float64 `json:"quantidade_recebida"`
	Divergencia        *string `json:"divergencia,omitempty"`
}

// FiltroPedidos narrows GET /pedidos. Nil fields are omitted from the query.
type FiltroPedidos struct {
	UnidadeID    *int64
	FornecedorID *int64
	Status       *OrderStatus
	Mes          *int
	Ano          *int
}
