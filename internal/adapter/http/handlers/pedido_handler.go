package handlers

import (
	"errors"
	"log"
	request "maisquecafe-painel/internal/adapter/http/dto/request"
	response "maisquecafe-painel/internal/adapter/http/dto/response"
	"maisquecafe-painel/internal/domain/entities"
	"maisquecafe-painel/internal/infrastructure/procurement"
	"maisquecafe-painel/internal/usecase"
	"maisquecafe-painel/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidPedidoPayload = pkg.NewDomainErrorSimple("INVALID_PEDIDO_INPUT", "Invalid pedido payload", http.StatusBadRequest)

// PedidoHandler handles the purchase-order screens of the panel: composing
// and creating a draft, listing the month's orders, and driving lifecycle
// transitions on an existing order.

type PedidoHandler struct {
	composer  usecase.IOrderComposerUseCase
	lifecycle usecase.IOrderLifecycleUseCase
	cadastro  usecase.ICadastroUseCase
}

func NewPedidoHandler(composer usecase.IOrderComposerUseCase, lifecycle usecase.IOrderLifecycleUseCase, cadastro usecase.ICadastroUseCase) *PedidoHandler {
	return &PedidoHandler{composer: composer, lifecycle: lifecycle, cadastro: cadastro}
}

// CriarPedido validates and submits the composed draft. Validation failures
// answer synchronously; the remote API is only reached with a clean draft.
func (h *PedidoHandler) CriarPedido(c *gin.Context) {
	var payload request.CriarPedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	draft, err := payload.ResolveDraft()
	if err != nil {
		log.Printf("[pedido][handler] draft rejected err=%v", err)
		appErr := pkg.NewDomainError("INVALID_PEDIDO_INPUT", "Invalid pedido payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resultado, err := h.composer.Submit(c.Request.Context(), draft, filtroPedidos(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pedido][handler] create success pedido_id=%d status=%s", resultado.Pedido.ID, resultado.Pedido.Status)

	refs := h.referencias(c)
	c.JSON(http.StatusCreated, response.CriacaoPedidoResponse{
		Pedido:  response.FromPedido(resultado.Pedido, refs),
		Pedidos: response.FromPedidos(resultado.Pedidos, refs),
	})
}

// ListarPedidos renders the order table for the current filter (month/year
// by default). An empty month is a valid, empty table.
func (h *PedidoHandler) ListarPedidos(c *gin.Context) {
	pedidos, err := h.lifecycle.Listar(c.Request.Context(), filtroPedidos(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidos(pedidos, h.referencias(c)))
}

func (h *PedidoHandler) ObterPedido(c *gin.Context) {
	id, ok := pedidoID(c)
	if !ok {
		return
	}

	pedido, err := h.lifecycle.Obter(c.Request.Context(), id)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedido(pedido, h.referencias(c)))
}

func (h *PedidoHandler) EnviarPedido(c *gin.Context) {
	id, ok := pedidoID(c)
	if !ok {
		return
	}

	resultado, err := h.lifecycle.Enviar(c.Request.Context(), id, filtroPedidos(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondTransicao(c, resultado)
}

func (h *PedidoHandler) DecidirPedido(c *gin.Context) {
	id, ok := pedidoID(c)
	if !ok {
		return
	}

	var payload request.DecidirPedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	resultado, err := h.lifecycle.Decidir(c.Request.Context(), id, payload.ResolveDecisao(), filtroPedidos(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondTransicao(c, resultado)
}

func (h *PedidoHandler) RegistrarRecebimento(c *gin.Context) {
	id, ok := pedidoID(c)
	if !ok {
		return
	}

	var payload request.RecebimentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	resultado, err := h.lifecycle.RegistrarRecebimento(c.Request.Context(), id, payload.ResolveRecebimento(), filtroPedidos(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.respondTransicao(c, resultado)
}

// ExcluirPedido deletes an order. The panel sends confirmado=true only after
// the user confirmed; without it nothing reaches the remote API.
func (h *PedidoHandler) ExcluirPedido(c *gin.Context) {
	id, ok := pedidoID(c)
	if !ok {
		return
	}
	confirmado := c.Query("confirmado") == "true"

	pedidos, err := h.lifecycle.Excluir(c.Request.Context(), id, confirmado, filtroPedidos(c))
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidos(pedidos, h.referencias(c)))
}

func (h *PedidoHandler) respondTransicao(c *gin.Context, resultado usecase.ResultadoTransicao) {
	refs := h.referencias(c)
	c.JSON(http.StatusOK, response.TransicaoPedidoResponse{
		Pedido:  response.FromPedido(resultado.Pedido, refs),
		Pedidos: response.FromPedidos(resultado.Pedidos, refs),
	})
}

// referencias loads the lookup snapshot for labeling. Failure here only
// degrades labels to raw ids; it never fails the primary action.
func (h *PedidoHandler) referencias(c *gin.Context) entities.Referencias {
	refs, err := h.cadastro.CarregarReferencias(c.Request.Context())
	if err != nil {
		log.Printf("[pedido][handler] referencias unavailable err=%v", err)
		return entities.NovasReferencias(nil, nil, nil)
	}
	return refs
}

func pedidoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_PEDIDO_ID", "Invalid pedido id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

// filtroPedidos reads the list filter from the query string. Unparseable
// values are simply dropped, like blank filter inputs in the panel.
func filtroPedidos(c *gin.Context) entities.FiltroPedidos {
	filtro := entities.FiltroPedidos{}
	if mes, err := strconv.Atoi(c.Query("mes")); err == nil {
		filtro.Mes = &mes
	}
	if ano, err := strconv.Atoi(c.Query("ano")); err == nil {
		filtro.Ano = &ano
	}
	if unidadeID, err := strconv.ParseInt(c.Query("unidade_id"), 10, 64); err == nil {
		filtro.UnidadeID = &unidadeID
	}
	if fornecedorID, err := strconv.ParseInt(c.Query("fornecedor_id"), 10, 64); err == nil {
		filtro.FornecedorID = &fornecedorID
	}
	if status := c.Query("status_eq"); status != "" {
		s := entities.OrderStatus(status)
		filtro.Status = &s
	}
	return filtro
}

func mapPedidoError(err error) *pkg.AppError {
	var apiErr *procurement.ApiError
	switch {
	case errors.Is(err, usecase.ErrUnidadeInvalida),
		errors.Is(err, usecase.ErrFornecedorInvalido),
		errors.Is(err, usecase.ErrGerenteObrigatorio),
		errors.Is(err, usecase.ErrPedidoSemItens),
		errors.Is(err, usecase.ErrPedidoInvalido),
		errors.Is(err, usecase.ErrDecisorObrigatorio),
		errors.Is(err, usecase.ErrQuantidadeRecebidaInvalida),
		errors.Is(err, usecase.ErrDataRecebimentoInvalida):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExclusaoNaoConfirmada):
		return pkg.NewDomainErrorSimple("EXCLUSAO_NAO_CONFIRMADA", "Deletion requires confirmation", http.StatusBadRequest)
	case errors.As(err, &apiErr):
		// Surface the remote API's answer verbatim, status included.
		return pkg.NewDomainError("REMOTE_API_ERROR", apiErr.Detail, apiErr, apiErr.StatusCode)
	default:
		return pkg.NewDomainError("REMOTE_API_UNAVAILABLE", "Purchasing API unreachable", err, http.StatusBadGateway)
	}
}
