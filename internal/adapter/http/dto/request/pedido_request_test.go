package request

import (
	"errors"
	"testing"
)

func TestBuildItens(t *testing.T) {
	t.Run("keeps only rows with produto and positive quantidade", func(t *testing.T) {
		itens := BuildItens([]ItemPedidoLinha{
			{ProdutoID: "7", Quantidade: "3"},
			{ProdutoID: "", Quantidade: "2"},
			{ProdutoID: "8", Quantidade: ""},
			{ProdutoID: "abc", Quantidade: "2"},
			{ProdutoID: "9", Quantidade: "0"},
			{ProdutoID: "10", Quantidade: "-1"},
			{ProdutoID: "11", Quantidade: "2.5"},
		})
		if len(itens) != 2 {
			t.Fatalf("expected 2 itens, got %d", len(itens))
		}
		if itens[0].ProdutoID != 7 || itens[1].ProdutoID != 11 {
			t.Fatalf("expected input order preserved, got %+v", itens)
		}
		if itens[1].Quantidade != 2.5 {
			t.Fatalf("unexpected quantidade: %v", itens[1].Quantidade)
		}
	})

	t.Run("nan quantidade is dropped", func(t *testing.T) {
		itens := BuildItens([]ItemPedidoLinha{{ProdutoID: "7", Quantidade: "NaN"}})
		if len(itens) != 0 {
			t.Fatalf("expected NaN row dropped, got %+v", itens)
		}
	})

	t.Run("blank or unparseable preco stays nil", func(t *testing.T) {
		itens := BuildItens([]ItemPedidoLinha{
			{ProdutoID: "7", Quantidade: "1", Preco: ""},
			{ProdutoID: "8", Quantidade: "1", Preco: "abc"},
			{ProdutoID: "9", Quantidade: "1", Preco: "12.5"},
		})
		if len(itens) != 3 {
			t.Fatalf("expected 3 itens, got %d", len(itens))
		}
		if itens[0].Preco != nil || itens[1].Preco != nil {
			t.Fatalf("expected nil preco for blank/unparseable, got %+v", itens)
		}
		if itens[2].Preco == nil || *itens[2].Preco != 12.5 {
			t.Fatalf("expected preco 12.5, got %+v", itens[2].Preco)
		}
	})

	t.Run("motivo is trimmed into a pointer", func(t *testing.T) {
		itens := BuildItens([]ItemPedidoLinha{{ProdutoID: "7", Quantidade: "1", Motivo: "  reposicao  "}})
		if len(itens) != 1 || itens[0].Motivo == nil || *itens[0].Motivo != "reposicao" {
			t.Fatalf("unexpected motivo: %+v", itens)
		}
	})
}

func TestCriarPedidoRequest_ResolveDraft(t *testing.T) {
	valido := CriarPedidoRequest{
		UnidadeID:    "1",
		FornecedorID: "2",
		GerenteNome:  "Ana",
		Itens:        []ItemPedidoLinha{{ProdutoID: "7", Quantidade: "3"}},
	}

	t.Run("valid request", func(t *testing.T) {
		draft, err := valido.ResolveDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.UnidadeID != 1 || draft.FornecedorID != 2 || draft.GerenteNome != "Ana" {
			t.Fatalf("unexpected draft: %+v", draft)
		}
		if draft.Contato != nil || draft.Observacoes != nil || draft.DesejadoPara != nil {
			t.Fatalf("expected nil optionals, got %+v", draft)
		}
	})

	t.Run("unidade not selected", func(t *testing.T) {
		r := valido
		r.UnidadeID = ""
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrUnidadeInvalida) {
			t.Fatalf("expected ErrUnidadeInvalida, got %v", err)
		}
	})

	t.Run("fornecedor not selected", func(t *testing.T) {
		r := valido
		r.FornecedorID = "0"
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrFornecedorInvalido) {
			t.Fatalf("expected ErrFornecedorInvalido, got %v", err)
		}
	})

	t.Run("blank gerente", func(t *testing.T) {
		r := valido
		r.GerenteNome = "   "
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrGerenteObrigatorio) {
			t.Fatalf("expected ErrGerenteObrigatorio, got %v", err)
		}
	})

	t.Run("all rows filtered out", func(t *testing.T) {
		r := valido
		r.Itens = []ItemPedidoLinha{{ProdutoID: "", Quantidade: "2"}, {ProdutoID: "7", Quantidade: "0"}}
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrPedidoSemItens) {
			t.Fatalf("expected ErrPedidoSemItens, got %v", err)
		}
	})

	t.Run("malformed desejado_para", func(t *testing.T) {
		r := valido
		r.DesejadoPara = "31/08/2026"
		if _, err := r.ResolveDraft(); !errors.Is(err, ErrDataDesejadaInvalida) {
			t.Fatalf("expected ErrDataDesejadaInvalida, got %v", err)
		}
	})

	t.Run("optionals are trimmed into pointers", func(t *testing.T) {
		r := valido
		r.Contato = " ana@mqc.com "
		r.Observacoes = " entregar cedo "
		r.DesejadoPara = "2026-09-01"
		draft, err := r.ResolveDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Contato == nil || *draft.Contato != "ana@mqc.com" {
			t.Fatalf("unexpected contato: %+v", draft.Contato)
		}
		if draft.Observacoes == nil || *draft.Observacoes != "entregar cedo" {
			t.Fatalf("unexpected observacoes: %+v", draft.Observacoes)
		}
		if draft.DesejadoPara == nil || *draft.DesejadoPara != "2026-09-01" {
			t.Fatalf("unexpected desejado_para: %+v", draft.DesejadoPara)
		}
	})
}

func TestDecidirPedidoRequest_ResolveDecisao(t *testing.T) {
	decisao := DecidirPedidoRequest{Decisor: " Carla ", Aprovado: false, Motivo: " sem verba "}.ResolveDecisao()
	if decisao.Decisor != "Carla" || decisao.Aprovado {
		t.Fatalf("unexpected decisao: %+v", decisao)
	}
	if decisao.Motivo == nil || *decisao.Motivo != "sem verba" {
		t.Fatalf("unexpected motivo: %+v", decisao.Motivo)
	}
}

func TestRecebimentoRequest_ResolveRecebimento(t *testing.T) {
	t.Run("parses quantity and divergencia", func(t *testing.T) {
		r := RecebimentoRequest{DataRecebimento: "2026-08-28", QuantidadeRecebida: "2.5", Divergencia: " caixa amassada "}.ResolveRecebimento()
		if r.DataRecebimento != "2026-08-28" || r.QuantidadeRecebida != 2.5 {
			t.Fatalf("unexpected recebimento: %+v", r)
		}
		if r.Divergencia == nil || *r.Divergencia != "caixa amassada" {
			t.Fatalf("unexpected divergencia: %+v", r.Divergencia)
		}
	})

	t.Run("unparseable quantity stays zero for the use case to reject", func(t *testing.T) {
		r := RecebimentoRequest{QuantidadeRecebida: "abc"}.ResolveRecebimento()
		if r.QuantidadeRecebida != 0 {
			t.Fatalf("expected zero quantidade, got %v", r.QuantidadeRecebida)
		}
	})
}
