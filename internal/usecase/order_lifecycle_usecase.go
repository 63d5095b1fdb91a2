package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"maisquecafe-painel/internal/domain/entities"
	"maisquecafe-painel/internal/usecase/interfaces"
)

var (
	ErrPedidoInvalido             = errors.New("invalid pedido id")
	ErrDecisorObrigatorio         = errors.New("decisor is required")
	ErrQuantidadeRecebidaInvalida = errors.New("quantidade_recebida must be a positive number")
	ErrDataRecebimentoInvalida    = errors.New("data_recebimento must be YYYY-MM-DD")
	ErrExclusaoNaoConfirmada      = errors.New("exclusao not confirmed")
)

const formatoData = "2006-01-02"

// IOrderLifecycleUseCase drives state transitions on existing orders and
// keeps the panel's list view consistent with server state.
//
// Every successful transition re-fetches the order list exactly once with
// the caller's current filter; there are no optimistic updates. On failure
// the API error is returned as-is and the list is not re-fetched.

type IOrderLifecycleUseCase interface {
	Listar(ctx context.Context, filtro entities.FiltroPedidos) ([]entities.Pedido, error)
	Obter(ctx context.Context, id int64) (entities.Pedido, error)
	Enviar(ctx context.Context, id int64, filtro entities.FiltroPedidos) (ResultadoTransicao, error)
	Decidir(ctx context.Context, id int64, decisao entities.NovaDecisao, filtro entities.FiltroPedidos) (ResultadoTransicao, error)
	RegistrarRecebimento(ctx context.Context, id int64, recebimento entities.NovoRecebimento, filtro entities.FiltroPedidos) (ResultadoTransicao, error)
	Excluir(ctx context.Context, id int64, confirmado bool, filtro entities.FiltroPedidos) ([]entities.Pedido, error)
}

// ResultadoTransicao carries the transitioned order and the refreshed list.
type ResultadoTransicao struct {
	Pedido  entities.Pedido
	Pedidos []entities.Pedido
}

type OrderLifecycleUseCase struct {
	api interfaces.IPedidoAPI
}

var _ IOrderLifecycleUseCase = (*OrderLifecycleUseCase)(nil)

func NewOrderLifecycleUseCase(api interfaces.IPedidoAPI) *OrderLifecycleUseCase {
	return &OrderLifecycleUseCase{api: api}
}

func (u *OrderLifecycleUseCase) Listar(ctx context.Context, filtro entities.FiltroPedidos) ([]entities.Pedido, error) {
	return u.api.ListarPedidos(ctx, filtro)
}

func (u *OrderLifecycleUseCase) Obter(ctx context.Context, id int64) (entities.Pedido, error) {
	if id <= 0 {
		return entities.Pedido{}, ErrPedidoInvalido
	}
	return u.api.ObterPedido(ctx, id)
}

func (u *OrderLifecycleUseCase) Enviar(ctx context.Context, id int64, filtro entities.FiltroPedidos) (ResultadoTransicao, error) {
	if id <= 0 {
		return ResultadoTransicao{}, ErrPedidoInvalido
	}
	log.Printf("[pedido][lifecycle] enviar start pedido_id=%d", id)

	atualizado, err := u.api.EnviarPedido(ctx, id)
	if err != nil {
		log.Printf("[pedido][lifecycle] enviar failed pedido_id=%d err=%v", id, err)
		return ResultadoTransicao{}, err
	}
	log.Printf("[pedido][lifecycle] enviar success pedido_id=%d status=%s", id, atualizado.Status)

	return u.comListaAtualizada(ctx, atualizado, filtro)
}

func (u *OrderLifecycleUseCase) Decidir(ctx context.Context, id int64, decisao entities.NovaDecisao, filtro entities.FiltroPedidos) (ResultadoTransicao, error) {
	if id <= 0 {
		return ResultadoTransicao{}, ErrPedidoInvalido
	}
	if strings.TrimSpace(decisao.Decisor) == "" {
		return ResultadoTransicao{}, ErrDecisorObrigatorio
	}
	log.Printf("[pedido][lifecycle] decidir start pedido_id=%d decisor=%s aprovado=%t", id, decisao.Decisor, decisao.Aprovado)

	atualizado, err := u.api.AprovarPedido(ctx, id, decisao)
	if err != nil {
		log.Printf("[pedido][lifecycle] decidir failed pedido_id=%d err=%v", id, err)
		return ResultadoTransicao{}, err
	}
	log.Printf("[pedido][lifecycle] decidir success pedido_id=%d status=%s", id, atualizado.Status)

	return u.comListaAtualizada(ctx, atualizado, filtro)
}

// RegistrarRecebimento validates the received quantity and date before
// anything reaches the wire. The original panel collected the quantity
// through a blocking prompt and let NaN through; that is a defect, not a
// contract, so the guard lives here.
func (u *OrderLifecycleUseCase) RegistrarRecebimento(ctx context.Context, id int64, recebimento entities.NovoRecebimento, filtro entities.FiltroPedidos) (ResultadoTransicao, error) {
	if id <= 0 {
		return ResultadoTransicao{}, ErrPedidoInvalido
	}
	if recebimento.QuantidadeRecebida <= 0 || math.IsNaN(recebimento.QuantidadeRecebida) || math.IsInf(recebimento.QuantidadeRecebida, 0) {
		return ResultadoTransicao{}, ErrQuantidadeRecebidaInvalida
	}
	if strings.TrimSpace(recebimento.DataRecebimento) == "" {
		recebimento.DataRecebimento = time.Now().UTC().Format(formatoData)
	} else if _, err := time.Parse(formatoData, recebimento.DataRecebimento); err != nil {
		return ResultadoTransicao{}, ErrDataRecebimentoInvalida
	}
	log.Printf("[pedido][lifecycle] recebimento start pedido_id=%d data=%s quantidade=%.2f", id, recebimento.DataRecebimento, recebimento.QuantidadeRecebida)

	atualizado, err := u.api.RegistrarRecebimento(ctx, id, recebimento)
	if err != nil {
		log.Printf("[pedido][lifecycle] recebimento failed pedido_id=%d err=%v", id, err)
		return ResultadoTransicao{}, err
	}
	log.Printf("[pedido][lifecycle] recebimento success pedido_id=%d status=%s", id, atualizado.Status)

	return u.comListaAtualizada(ctx, atualizado, filtro)
}

// Excluir deletes an order. The explicit confirmado flag replaces the
// browser confirm() step: declining it must produce zero network calls.
func (u *OrderLifecycleUseCase) Excluir(ctx context.Context, id int64, confirmado bool, filtro entities.FiltroPedidos) ([]entities.Pedido, error) {
	if id <= 0 {
		return nil, ErrPedidoInvalido
	}
	if !confirmado {
		return nil, ErrExclusaoNaoConfirmada
	}
	log.Printf("[pedido][lifecycle] excluir start pedido_id=%d", id)

	if err := u.api.ExcluirPedido(ctx, id); err != nil {
		log.Printf("[pedido][lifecycle] excluir failed pedido_id=%d err=%v", id, err)
		return nil, err
	}
	log.Printf("[pedido][lifecycle] excluir success pedido_id=%d", id)

	return u.api.ListarPedidos(ctx, filtro)
}

func (u *OrderLifecycleUseCase) comListaAtualizada(ctx context.Context, pedido entities.Pedido, filtro entities.FiltroPedidos) (ResultadoTransicao, error) {
	pedidos, err := u.api.ListarPedidos(ctx, filtro)
	if err != nil {
		log.Printf("[pedido][lifecycle] list refresh failed pedido_id=%d err=%v", pedido.ID, err)
		return ResultadoTransicao{}, err
	}
	return ResultadoTransicao{Pedido: pedido, Pedidos: pedidos}, nil
}
