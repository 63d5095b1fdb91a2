package procurement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"maisquecafe-painel/internal/domain/entities"
	"maisquecafe-painel/internal/usecase/interfaces"
)

// ApiError is a non-2xx answer from the MaisQueCafe API. Detail carries the
// server's "detail" field when the body is parseable JSON, otherwise the HTTP
// status text; Raw keeps the original body for logs.
type ApiError struct {
	StatusCode int
	Detail     string
	Raw        json.RawMessage
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("maisquecafe api: %d %s", e.StatusCode, e.Detail)
}

// Client is the typed HTTP client for the MaisQueCafe purchasing API. Every
// request carries the static x-api-key plus a fresh x-request-id for
// correlation on the server side.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var (
	_ interfaces.IPedidoAPI   = (*Client)(nil)
	_ interfaces.ICadastroAPI = (*Client)(nil)
	_ interfaces.IStatusAPI   = (*Client)(nil)
)

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-request-id", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[procurement][client] request failed method=%s path=%s err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		apiErr := newApiError(resp.StatusCode, raw)
		log.Printf("[procurement][client] api error method=%s path=%s status=%d detail=%s", method, path, apiErr.StatusCode, apiErr.Detail)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func newApiError(statusCode int, raw []byte) *ApiError {
	apiErr := &ApiError{StatusCode: statusCode, Detail: http.StatusText(statusCode)}
	if len(raw) == 0 || !json.Valid(raw) {
		return apiErr
	}
	apiErr.Raw = json.RawMessage(raw)

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	} else {
		apiErr.Detail = strings.TrimSpace(string(raw))
	}
	return apiErr
}

// ---- util ----

func (c *Client) Status(ctx context.Context) (entities.StatusAPI, error) {
	var out entities.StatusAPI
	err := c.do(ctx, http.MethodGet, "/status", nil, nil, &out)
	return out, err
}

// ---- pedidos ----

func (c *Client) CriarPedido(ctx context.Context, novo entities.NovoPedido) (entities.Pedido, error) {
	var out entities.Pedido
	err := c.do(ctx, http.MethodPost, "/pedidos", nil, novo, &out)
	return out, err
}

func (c *Client) ListarPedidos(ctx context.Context, filtro entities.FiltroPedidos) ([]entities.Pedido, error) {
	query := url.Values{}
	if filtro.Mes != nil {
		query.Set("mes", strconv.Itoa(*filtro.Mes))
	}
	if filtro.Ano != nil {
		query.Set("ano", strconv.Itoa(*filtro.Ano))
	}
	if filtro.UnidadeID != nil {
		query.Set("unidade_id", strconv.FormatInt(*filtro.UnidadeID, 10))
	}
	if filtro.FornecedorID != nil {
		query.Set("fornecedor_id", strconv.FormatInt(*filtro.FornecedorID, 10))
	}
	if filtro.Status != nil {
		query.Set("status_eq", string(*filtro.Status))
	}

	out := []entities.Pedido{}
	err := c.do(ctx, http.MethodGet, "/pedidos", query, nil, &out)
	return out, err
}

func (c *Client) ObterPedido(ctx context.Context, id int64) (entities.Pedido, error) {
	var out entities.Pedido
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pedidos/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) ExcluirPedido(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pedidos/%d", id), nil, nil, nil)
}

func (c *Client) EnviarPedido(ctx context.Context, id int64) (entities.Pedido, error) {
	var out entities.Pedido
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pedidos/%d/enviar", id), nil, nil, &out)
	return out, err
}

func (c *Client) AprovarPedido(ctx context.Context, id int64, decisao entities.NovaDecisao) (entities.Pedido, error) {
	var out entities.Pedido
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pedidos/%d/aprovar", id), nil, decisao, &out)
	return out, err
}

func (c *Client) RegistrarRecebimento(ctx context.Context, id int64, recebimento entities.NovoRecebimento) (entities.Pedido, error) {
	var out entities.Pedido
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pedidos/%d/recebimentos", id), nil, recebimento, &out)
	return out, err
}

// ---- cadastros ----

func (c *Client) ListarFornecedores(ctx context.Context) ([]entities.Fornecedor, error) {
	out := []entities.Fornecedor{}
	err := c.do(ctx, http.MethodGet, "/fornecedores", nil, nil, &out)
	return out, err
}

func (c *Client) CriarFornecedor(ctx context.Context, novo entities.NovoFornecedor) (entities.Fornecedor, error) {
	var out entities.Fornecedor
	err := c.do(ctx, http.MethodPost, "/fornecedores", nil, novo, &out)
	return out, err
}

func (c *Client) ExcluirFornecedor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/fornecedores/%d", id), nil, nil, nil)
}

func (c *Client) ListarUnidades(ctx context.Context) ([]entities.Unidade, error) {
	out := []entities.Unidade{}
	err := c.do(ctx, http.MethodGet, "/unidades", nil, nil, &out)
	return out, err
}

func (c *Client) CriarUnidade(ctx context.Context, nova entities.NovaUnidade) (entities.Unidade, error) {
	var out entities.Unidade
	err := c.do(ctx, http.MethodPost, "/unidades", nil, nova, &out)
	return out, err
}

func (c *Client) ExcluirUnidade(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/unidades/%d", id), nil, nil, nil)
}

func (c *Client) ListarProdutos(ctx context.Context, filtro entities.FiltroProdutos) ([]entities.Produto, error) {
	query := url.Values{}
	if filtro.Ativo != nil {
		query.Set("ativo", strconv.FormatBool(*filtro.Ativo))
	}
	if filtro.FornecedorID != nil {
		query.Set("fornecedor_id", strconv.FormatInt(*filtro.FornecedorID, 10))
	}

	out := []entities.Produto{}
	err := c.do(ctx, http.MethodGet, "/produtos", query, nil, &out)
	return out, err
}

func (c *Client) CriarProduto(ctx context.Context, novo entities.NovoProduto) (entities.Produto, error) {
	var out entities.Produto
	err := c.do(ctx, http.MethodPost, "/produtos", nil, novo, &out)
	return out, err
}

func (c *Client) ExcluirProduto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/produtos/%d", id), nil, nil, nil)
}

func (c *Client) ListarLimites(ctx context.Context) ([]entities.Limite, error) {
	out := []entities.Limite{}
	err := c.do(ctx, http.MethodGet, "/limites", nil, nil, &out)
	return out, err
}

func (c *Client) CriarLimite(ctx context.Context, novo entities.NovoLimite) (entities.Limite, error) {
	var out entities.Limite
	err := c.do(ctx, http.MethodPost, "/limites", nil, novo, &out)
	return out, err
}

func (c *Client) ExcluirLimite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/limites/%d", id), nil, nil, nil)
}
