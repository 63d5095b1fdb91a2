package request

import (
	"errors"
	"testing"
)

func TestCriarFornecedorRequest_Resolve(t *testing.T) {
	t.Run("defaults sla to 2", func(t *testing.T) {
		novo, err := CriarFornecedorRequest{Codigo: "F001", RazaoSocial: "Graos do Sul"}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if novo.SLADias != 2 {
			t.Fatalf("expected sla 2, got %d", novo.SLADias)
		}
		if novo.CNPJ != nil || novo.EmailPedidos != nil {
			t.Fatalf("expected nil optionals, got %+v", novo)
		}
	})

	t.Run("rejects non positive sla", func(t *testing.T) {
		if _, err := (CriarFornecedorRequest{Codigo: "F001", RazaoSocial: "Graos do Sul", SLADias: "0"}).Resolve(); !errors.Is(err, ErrNumeroInvalido) {
			t.Fatalf("expected ErrNumeroInvalido, got %v", err)
		}
	})
}

func TestCriarProdutoRequest_Resolve(t *testing.T) {
	t.Run("defaults unidade de medida and ativo", func(t *testing.T) {
		novo, err := CriarProdutoRequest{Codigo: "CAF-500", Nome: "Cafe torrado", FornecedorID: "1", Preco: "32.9"}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if novo.UnidadeMedida != "UN" || !novo.Ativo || novo.Preco != 32.9 {
			t.Fatalf("unexpected produto: %+v", novo)
		}
	})

	t.Run("missing fornecedor", func(t *testing.T) {
		if _, err := (CriarProdutoRequest{Codigo: "CAF-500", Nome: "Cafe torrado"}).Resolve(); !errors.Is(err, ErrFornecedorInvalido) {
			t.Fatalf("expected ErrFornecedorInvalido, got %v", err)
		}
	})

	t.Run("negative preco", func(t *testing.T) {
		if _, err := (CriarProdutoRequest{Codigo: "CAF-500", Nome: "Cafe torrado", FornecedorID: "1", Preco: "-1"}).Resolve(); !errors.Is(err, ErrPrecoInvalido) {
			t.Fatalf("expected ErrPrecoInvalido, got %v", err)
		}
	})
}

func TestCriarLimiteRequest_Resolve(t *testing.T) {
	t.Run("defaults maximo", func(t *testing.T) {
		novo, err := CriarLimiteRequest{UnidadeID: "1", ProdutoID: "2", Minimo: "5"}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if novo.Minimo != 5 || novo.Maximo != 999999 {
			t.Fatalf("unexpected limite: %+v", novo)
		}
	})

	t.Run("unidade not selected", func(t *testing.T) {
		if _, err := (CriarLimiteRequest{ProdutoID: "2"}).Resolve(); !errors.Is(err, ErrUnidadeInvalida) {
			t.Fatalf("expected ErrUnidadeInvalida, got %v", err)
		}
	})
}
