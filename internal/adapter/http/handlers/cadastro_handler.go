package handlers

import (
	"context"
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

var errInvalidCadastroPayload = pkg.NewDomainErrorSimple("INVALID_CADASTRO_INPUT", "Invalid cadastro payload", http.StatusBadRequest)

// CadastroHandler backs the reference-data tab: fornecedores, unidades,
// produtos and limites, plus the combined snapshot the composer selects from.

type CadastroHandler struct {
	usecase usecase.ICadastroUseCase
}

func NewCadastroHandler(uc usecase.ICadastroUseCase) *CadastroHandler {
	return &CadastroHandler{usecase: uc}
}

// Referencias returns the lookup snapshot used to populate the composer
// selects in one round trip.
func (h *CadastroHandler) Referencias(c *gin.Context) {
	refs, err := h.usecase.CarregarReferencias(c.Request.Context())
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReferencias(refs))
}

func (h *CadastroHandler) ListarFornecedores(c *gin.Context) {
	fornecedores, err := h.usecase.ListarFornecedores(c.Request.Context())
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFornecedores(fornecedores))
}

func (h *CadastroHandler) CriarFornecedor(c *gin.Context) {
	var payload request.CriarFornecedorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCadastroPayload.HTTPStatus, errInvalidCadastroPayload.ToHTTPError())
		return
	}

	novo, err := payload.Resolve()
	if err != nil {
		log.Printf("[cadastro][handler] fornecedor payload rejected err=%v", err)
		appErr := pkg.NewDomainError("INVALID_CADASTRO_INPUT", "Invalid fornecedor payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fornecedor, err := h.usecase.CriarFornecedor(c.Request.Context(), novo)
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFornecedor(fornecedor))
}

func (h *CadastroHandler) ExcluirFornecedor(c *gin.Context) {
	h.excluir(c, h.usecase.ExcluirFornecedor)
}

func (h *CadastroHandler) ListarUnidades(c *gin.Context) {
	unidades, err := h.usecase.ListarUnidades(c.Request.Context())
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnidades(unidades))
}

func (h *CadastroHandler) CriarUnidade(c *gin.Context) {
	var payload request.CriarUnidadeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCadastroPayload.HTTPStatus, errInvalidCadastroPayload.ToHTTPError())
		return
	}

	unidade, err := h.usecase.CriarUnidade(c.Request.Context(), payload.Resolve())
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUnidade(unidade))
}

func (h *CadastroHandler) ExcluirUnidade(c *gin.Context) {
	h.excluir(c, h.usecase.ExcluirUnidade)
}

func (h *CadastroHandler) ListarProdutos(c *gin.Context) {
	produtos, err := h.usecase.ListarProdutos(c.Request.Context(), filtroProdutos(c))
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	refs := h.referenciasParaRotulos(c)
	c.JSON(http.StatusOK, response.FromProdutos(produtos, refs))
}

func (h *CadastroHandler) CriarProduto(c *gin.Context) {
	var payload request.CriarProdutoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCadastroPayload.HTTPStatus, errInvalidCadastroPayload.ToHTTPError())
		return
	}

	novo, err := payload.Resolve()
	if err != nil {
		log.Printf("[cadastro][handler] produto payload rejected err=%v", err)
		appErr := pkg.NewDomainError("INVALID_CADASTRO_INPUT", "Invalid produto payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	produto, err := h.usecase.CriarProduto(c.Request.Context(), novo)
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduto(produto, h.referenciasParaRotulos(c)))
}

func (h *CadastroHandler) ExcluirProduto(c *gin.Context) {
	h.excluir(c, h.usecase.ExcluirProduto)
}

func (h *CadastroHandler) ListarLimites(c *gin.Context) {
	limites, err := h.usecase.ListarLimites(c.Request.Context())
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLimites(limites, h.referenciasParaRotulos(c)))
}

func (h *CadastroHandler) CriarLimite(c *gin.Context) {
	var payload request.CriarLimiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCadastroPayload.HTTPStatus, errInvalidCadastroPayload.ToHTTPError())
		return
	}

	novo, err := payload.Resolve()
	if err != nil {
		log.Printf("[cadastro][handler] limite payload rejected err=%v", err)
		appErr := pkg.NewDomainError("INVALID_CADASTRO_INPUT", "Invalid limite payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	limite, err := h.usecase.CriarLimite(c.Request.Context(), novo)
	if err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLimite(limite, h.referenciasParaRotulos(c)))
}

func (h *CadastroHandler) ExcluirLimite(c *gin.Context) {
	h.excluir(c, h.usecase.ExcluirLimite)
}

// excluir shares the delete flow: parse id, require confirmado=true, answer
// 204 on success.
func (h *CadastroHandler) excluir(c *gin.Context, op func(ctx context.Context, id int64, confirmado bool) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CADASTRO_ID", "Invalid id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	confirmado := c.Query("confirmado") == "true"

	if err := op(c.Request.Context(), id, confirmado); err != nil {
		appErr := mapCadastroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CadastroHandler) referenciasParaRotulos(c *gin.Context) entities.Referencias {
	refs, err := h.usecase.CarregarReferencias(c.Request.Context())
	if err != nil {
		log.Printf("[cadastro][handler] referencias unavailable err=%v", err)
		return entities.NovasReferencias(nil, nil, nil)
	}
	return refs
}

func filtroProdutos(c *gin.Context) entities.FiltroProdutos {
	filtro := entities.FiltroProdutos{}
	switch c.Query("ativo") {
	case "true":
		ativo := true
		filtro.Ativo = &ativo
	case "false":
		ativo := false
		filtro.Ativo = &ativo
	}
	if fornecedorID, err := strconv.ParseInt(c.Query("fornecedor_id"), 10, 64); err == nil {
		filtro.FornecedorID = &fornecedorID
	}
	return filtro
}

func mapCadastroError(err error) *pkg.AppError {
	var apiErr *procurement.ApiError
	switch {
	case errors.Is(err, usecase.ErrIDInvalido),
		errors.Is(err, usecase.ErrCodigoObrigatorio),
		errors.Is(err, usecase.ErrRazaoSocialObrigatoria),
		errors.Is(err, usecase.ErrNomeObrigatorio),
		errors.Is(err, usecase.ErrProdutoInvalido),
		errors.Is(err, usecase.ErrPrecoInvalido),
		errors.Is(err, usecase.ErrLimiteInvalido):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExclusaoNaoConfirmada):
		return pkg.NewDomainErrorSimple("EXCLUSAO_NAO_CONFIRMADA", "Deletion requires confirmation", http.StatusBadRequest)
	case errors.As(err, &apiErr):
		return pkg.NewDomainError("REMOTE_API_ERROR", apiErr.Detail, apiErr, apiErr.StatusCode)
	default:
		return pkg.NewDomainError("REMOTE_API_UNAVAILABLE", "Purchasing API unreachable", err, http.StatusBadGateway)
	}
}
