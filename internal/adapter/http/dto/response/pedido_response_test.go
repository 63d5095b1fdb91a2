package response

import (
	"encoding/json"
	"testing"

	"maisquecafe-painel/internal/domain/entities"
)

func refsTeste() entities.Referencias {
	return entities.NovasReferencias(
		[]entities.Fornecedor{{ID: 2, Codigo: "F002", RazaoSocial: "Graos do Sul"}},
		[]entities.Unidade{{ID: 1, Codigo: "LJ01", Nome: "Centro"}},
		[]entities.Produto{{ID: 7, Codigo: "CAF-500", Nome: "Cafe torrado"}},
	)
}

func TestFromPedido(t *testing.T) {
	pedido := entities.Pedido{
		ID:           42,
		UnidadeID:    1,
		FornecedorID: 2,
		GerenteNome:  "Ana",
		Status:       entities.StatusAutorizado,
		ValorTotal:   30,
		Itens: []entities.ItemPedido{
			{ID: 1, ProdutoID: 7, Quantidade: 3, Preco: 10, Subtotal: 30},
		},
	}

	resp := FromPedido(pedido, refsTeste())
	if resp.UnidadeCodigo != "LJ01" || resp.FornecedorCodigo != "F002" {
		t.Fatalf("unexpected codes: %+v", resp)
	}
	if resp.Estilo != entities.EstiloOK {
		t.Fatalf("expected ok style for autorizado, got %q", resp.Estilo)
	}
	if len(resp.Itens) != 1 || resp.Itens[0].Produto != "CAF-500" {
		t.Fatalf("unexpected itens: %+v", resp.Itens)
	}
}

func TestFromPedido_UnknownReferencesFallBackToIDs(t *testing.T) {
	pedido := entities.Pedido{ID: 42, UnidadeID: 99, FornecedorID: 98, Status: entities.StatusRascunho}

	resp := FromPedido(pedido, entities.NovasReferencias(nil, nil, nil))
	if resp.UnidadeCodigo != "99" || resp.FornecedorCodigo != "98" {
		t.Fatalf("expected id fallback, got %+v", resp)
	}
}

func TestFromPedidos_EmptyListMarshalsToArray(t *testing.T) {
	b, err := json.Marshal(FromPedidos(nil, entities.NovasReferencias(nil, nil, nil)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}
