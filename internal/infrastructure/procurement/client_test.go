package procurement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maisquecafe-painel/internal/domain/entities"
)

func novoClienteTeste(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "chave-teste", 5*time.Second)
}

func TestClient_Headers(t *testing.T) {
	var apiKey, requestID string
	client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("x-api-key")
		requestID = r.Header.Get("x-request-id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"time":"2026-08-28T12:00:00Z"}`))
	})

	status, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.OK {
		t.Fatalf("expected ok status, got %+v", status)
	}
	if apiKey != "chave-teste" {
		t.Fatalf("expected api key header, got %q", apiKey)
	}
	if requestID == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestClient_CriarPedido(t *testing.T) {
	client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pedidos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		} else if payload["unidade_id"].(float64) != 1 {
			t.Errorf("unexpected payload: %+v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		// FastAPI emits naive datetimes; the client must accept them.
		w.Write([]byte(`{"id":42,"criado_em":"2026-08-28T09:15:00.123456","unidade_id":1,"fornecedor_id":2,"gerente_nome":"Ana","status":"rascunho","valor_total":30.0,"itens":[{"id":1,"produto_id":7,"quantidade":3,"preco":10.0,"subtotal":30.0}]}`))
	})

	pedido, err := client.CriarPedido(context.Background(), entities.NovoPedido{
		UnidadeID:    1,
		FornecedorID: 2,
		GerenteNome:  "Ana",
		Itens:        []entities.NovoItem{{ProdutoID: 7, Quantidade: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pedido.ID != 42 || pedido.Status != entities.StatusRascunho || pedido.ValorTotal != 30 {
		t.Fatalf("unexpected pedido: %+v", pedido)
	}
	if pedido.CriadoEm.Year() != 2026 {
		t.Fatalf("expected parsed criado_em, got %v", pedido.CriadoEm)
	}
	if len(pedido.Itens) != 1 || pedido.Itens[0].Subtotal != 30 {
		t.Fatalf("unexpected itens: %+v", pedido.Itens)
	}
}

func TestClient_ListarPedidos(t *testing.T) {
	t.Run("filter becomes query parameters", func(t *testing.T) {
		var query string
		client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		})

		mes, ano := 8, 2026
		unidadeID := int64(3)
		status := entities.StatusPendenteAprovacao
		_, err := client.ListarPedidos(context.Background(), entities.FiltroPedidos{
			Mes: &mes, Ano: &ano, UnidadeID: &unidadeID, Status: &status,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query != "ano=2026&mes=8&status_eq=pendente_aprovacao&unidade_id=3" {
			t.Fatalf("unexpected query: %q", query)
		}
	})

	t.Run("empty list stays non nil", func(t *testing.T) {
		client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		})

		pedidos, err := client.ListarPedidos(context.Background(), entities.FiltroPedidos{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pedidos == nil || len(pedidos) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", pedidos)
		}
	})
}

func TestClient_ApiError(t *testing.T) {
	t.Run("detail field is extracted", func(t *testing.T) {
		client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"pedido nao encontrado"}`))
		})

		_, err := client.ObterPedido(context.Background(), 99)
		var apiErr *ApiError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected ApiError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "pedido nao encontrado" {
			t.Fatalf("unexpected ApiError: %+v", apiErr)
		}
	})

	t.Run("non json body falls back to status text", func(t *testing.T) {
		client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		})

		_, err := client.EnviarPedido(context.Background(), 5)
		var apiErr *ApiError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected ApiError, got %v", err)
		}
		if apiErr.Detail != http.StatusText(http.StatusBadGateway) {
			t.Fatalf("unexpected detail: %q", apiErr.Detail)
		}
	})

	t.Run("delete passes 204 through", func(t *testing.T) {
		client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/pedidos/5" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusNoContent)
		})

		if err := client.ExcluirPedido(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClient_ListarProdutos(t *testing.T) {
	var query string
	client := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":3,"codigo":"CAF-500","nome":"Cafe torrado","unidade_medida":"UN","fornecedor_id":1,"preco":32.9,"ativo":true}]`))
	})

	ativo := true
	fornecedorID := int64(1)
	produtos, err := client.ListarProdutos(context.Background(), entities.FiltroProdutos{Ativo: &ativo, FornecedorID: &fornecedorID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "ativo=true&fornecedor_id=1" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(produtos) != 1 || produtos[0].Codigo != "CAF-500" {
		t.Fatalf("unexpected produtos: %+v", produtos)
	}
}
