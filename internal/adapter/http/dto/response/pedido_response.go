package response

import (
	"maisquecafe-painel/internal/domain/entities"
)

type ItemPedidoResponse struct {
	ID         int64   `json:"id"`
	ProdutoID  int64   `json:"produto_id"`
	Produto    string  `json:"produto"`
	Quantidade float64 `json:"quantidade"`
	Preco      float64 `json:"preco"`
	Subtotal   float64 `json:"subtotal"`
	Motivo     *string `json:"motivo,omitempty"`
}

// PedidoResponse is an order row as the panel table renders it: the raw
// server fields plus the lookup labels and the status badge class.
type PedidoResponse struct {
	ID               int64                `json:"id"`
	CriadoEm         entities.DataHora    `json:"criado_em"`
	UnidadeID        int64                `json:"unidade_id"`
	UnidadeCodigo    string               `json:"unidade_codigo"`
	FornecedorID     int64                `json:"fornecedor_id"`
	FornecedorCodigo string               `json:"fornecedor_codigo"`
	GerenteNome      string               `json:"gerente_nome"`
	Contato          *string              `json:"contato,omitempty"`
	Status           string               `json:"status"`
	Estilo           string               `json:"estilo"`
	DesejadoPara     *string              `json:"desejado_para,omitempty"`
	Observacoes      *string              `json:"observacoes,omitempty"`
	ValorTotal       float64              `json:"valor_total"`
	Itens            []ItemPedidoResponse `json:"itens,omitempty"`
}

func FromPedido(p entities.Pedido, refs entities.Referencias) PedidoResponse {
	out := PedidoResponse{
		ID:               p.ID,
		CriadoEm:         p.CriadoEm,
		UnidadeID:        p.UnidadeID,
		UnidadeCodigo:    refs.CodigoUnidade(p.UnidadeID),
		FornecedorID:     p.FornecedorID,
		FornecedorCodigo: refs.CodigoFornecedor(p.FornecedorID),
		GerenteNome:      p.GerenteNome,
		Contato:          p.Contato,
		Status:           string(p.Status),
		Estilo:           p.Status.Estilo(),
		DesejadoPara:     p.DesejadoPara,
		Observacoes:      p.Observacoes,
		ValorTotal:       p.ValorTotal,
	}
	for _, item := range p.Itens {
		out.Itens = append(out.Itens, ItemPedidoResponse{
			ID:         item.ID,
			ProdutoID:  item.ProdutoID,
			Produto:    refs.CodigoProduto(item.ProdutoID),
			Quantidade: item.Quantidade,
			Preco:      item.Preco,
			Subtotal:   item.Subtotal,
			Motivo:     item.Motivo,
		})
	}
	return out
}

// FromPedidos always returns a non-nil slice so an empty month renders as
// an empty table, not a JSON null.
func FromPedidos(pedidos []entities.Pedido, refs entities.Referencias) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, FromPedido(p, refs))
	}
	return out
}

// CriacaoPedidoResponse answers a successful order creation: the created
// order plus the refreshed list view.
type CriacaoPedidoResponse struct {
	Pedido  PedidoResponse   `json:"pedido"`
	Pedidos []PedidoResponse `json:"pedidos"`
}

// TransicaoPedidoResponse answers a successful lifecycle transition.
type TransicaoPedidoResponse struct {
	Pedido  PedidoResponse   `json:"pedido"`
	Pedidos []PedidoResponse `json:"pedidos"`
}

// StatusResponse mirrors the remote health probe.
type StatusResponse struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}

func FromStatus(s entities.StatusAPI) StatusResponse {
	return StatusResponse{OK: s.OK, Time: s.Time}
}
