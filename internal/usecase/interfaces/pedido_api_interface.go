package interfaces

import (
	"context"

	"maisquecafe-painel/internal/domain/entities"
)

// IPedidoAPI abstracts the purchase-order endpoints of the remote MaisQueCafe
// API. The remote service owns all state; every call here crosses the network.
type IPedidoAPI interface {
	CriarPedido(ctx context.Context, novo entities.NovoPedido) (entities.Pedido, error)
	ListarPedidos(ctx context.Context, filtro entities.FiltroPedidos) ([]entities.Pedido, error)
	ObterPedido(ctx context.Context, id int64) (entities.Pedido, error)
	ExcluirPedido(ctx context.Context, id int64) error
	EnviarPedido(ctx context.Context, id int64) (entities.Pedido, error)
	AprovarPedido(ctx context.Context, id int64, decisao entities.NovaDecisao) (entities.Pedido, error)
	RegistrarRecebimento(ctx context.Context, id int64, recebimento entities.NovoRecebimento) (entities.Pedido, error)
}
