package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"maisquecafe-painel/internal/domain/entities"
	"maisquecafe-painel/internal/usecase/interfaces"
)

var (
	ErrUnidadeInvalida    = errors.New("invalid unidade_id")
	ErrFornecedorInvalido = errors.New("invalid fornecedor_id")
	ErrGerenteObrigatorio = errors.New("gerente_nome is required")
	ErrPedidoSemItens     = errors.New("pedido has no valid items")
)

// IOrderComposerUseCase assembles a validated order draft and submits it to
// the remote purchasing API.
//
// Requested behavior:
//   - every precondition is checked before any network call; an invalid draft
//     never leaves the panel and stays untouched for correction.
//   - a successful create returns the server's order verbatim (assigned id,
//     computed total, initial status) plus one fresh copy of the list view.

type IOrderComposerUseCase interface {
	Submit(ctx context.Context, draft entities.NovoPedido, filtro entities.FiltroPedidos) (ResultadoCriacao, error)
}

// ResultadoCriacao is the composer's answer: the created order and the
// re-fetched list the panel renders next.
type ResultadoCriacao struct {
	Pedido  entities.Pedido
	Pedidos []entities.Pedido
}

type OrderComposerUseCase struct {
	api interfaces.IPedidoAPI
}

var _ IOrderComposerUseCase = (*OrderComposerUseCase)(nil)

func NewOrderComposerUseCase(api interfaces.IPedidoAPI) *OrderComposerUseCase {
	return &OrderComposerUseCase{api: api}
}

func (u *OrderComposerUseCase) Submit(ctx context.Context, draft entities.NovoPedido, filtro entities.FiltroPedidos) (ResultadoCriacao, error) {
	log.Printf("[pedido][composer] submit start unidade_id=%d fornecedor_id=%d itens=%d", draft.UnidadeID, draft.FornecedorID, len(draft.Itens))

	if err := validarRascunho(draft); err != nil {
		log.Printf("[pedido][composer] draft rejected err=%v", err)
		return ResultadoCriacao{}, err
	}

	criado, err := u.api.CriarPedido(ctx, draft)
	if err != nil {
		log.Printf("[pedido][composer] create failed err=%v", err)
		return ResultadoCriacao{}, err
	}
	log.Printf("[pedido][composer] create success pedido_id=%d status=%s valor_total=%.2f", criado.ID, criado.Status, criado.ValorTotal)

	pedidos, err := u.api.ListarPedidos(ctx, filtro)
	if err != nil {
		log.Printf("[pedido][composer] list refresh failed pedido_id=%d err=%v", criado.ID, err)
		return ResultadoCriacao{}, err
	}

	return ResultadoCriacao{Pedido: criado, Pedidos: pedidos}, nil
}

func validarRascunho(draft entities.NovoPedido) error {
	if draft.UnidadeID <= 0 {
		return ErrUnidadeInvalida
	}
	if draft.FornecedorID <= 0 {
		return ErrFornecedorInvalido
	}
	if strings.TrimSpace(draft.GerenteNome) == "" {
		return ErrGerenteObrigatorio
	}
	if len(draft.Itens) == 0 {
		return ErrPedidoSemItens
	}
	return nil
}
