package usecase

import (
	"context"
	"errors"
	"testing"

	"maisquecafe-painel/internal/domain/entities"
	mock_interfaces "maisquecafe-painel/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCadastroUseCase_CarregarReferencias(t *testing.T) {
	t.Run("folds the three lists into a snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICadastroAPI(ctrl)
		uc := NewCadastroUseCase(api)

		api.EXPECT().ListarFornecedores(gomock.Any()).Return([]entities.Fornecedor{{ID: 1, Codigo: "F001", RazaoSocial: "Graos do Sul"}}, nil)
		api.EXPECT().ListarUnidades(gomock.Any()).Return([]entities.Unidade{{ID: 2, Codigo: "LJ01", Nome: "Centro"}}, nil)
		api.EXPECT().ListarProdutos(gomock.Any(), entities.FiltroProdutos{}).Return([]entities.Produto{{ID: 3, Codigo: "CAF-500", Nome: "Cafe torrado"}}, nil)

		refs, err := uc.CarregarReferencias(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refs.CodigoFornecedor(1) != "F001" {
			t.Fatalf("unexpected fornecedor codigo: %s", refs.CodigoFornecedor(1))
		}
		if refs.CodigoUnidade(2) != "LJ01" {
			t.Fatalf("unexpected unidade codigo: %s", refs.CodigoUnidade(2))
		}
		if refs.CodigoProduto(99) != "99" {
			t.Fatalf("expected id fallback for unknown produto, got %s", refs.CodigoProduto(99))
		}
	})

	t.Run("first failing fetch aborts the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICadastroAPI(ctrl)
		uc := NewCadastroUseCase(api)

		api.EXPECT().ListarFornecedores(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := uc.CarregarReferencias(context.Background())
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestCadastroUseCase_CriarFornecedor(t *testing.T) {
	t.Run("blank codigo", func(t *testing.T) {
		uc := NewCadastroUseCase(nil)
		_, err := uc.CriarFornecedor(context.Background(), entities.NovoFornecedor{RazaoSocial: "Graos do Sul"})
		if !errors.Is(err, ErrCodigoObrigatorio) {
			t.Fatalf("expected ErrCodigoObrigatorio, got %v", err)
		}
	})

	t.Run("blank razao social", func(t *testing.T) {
		uc := NewCadastroUseCase(nil)
		_, err := uc.CriarFornecedor(context.Background(), entities.NovoFornecedor{Codigo: "F001"})
		if !errors.Is(err, ErrRazaoSocialObrigatoria) {
			t.Fatalf("expected ErrRazaoSocialObrigatoria, got %v", err)
		}
	})

	t.Run("defaults sla to 2 days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICadastroAPI(ctrl)
		uc := NewCadastroUseCase(api)

		api.EXPECT().CriarFornecedor(gomock.Any(), gomock.AssignableToTypeOf(entities.NovoFornecedor{})).DoAndReturn(
			func(_ context.Context, novo entities.NovoFornecedor) (entities.Fornecedor, error) {
				if novo.SLADias != 2 {
					t.Fatalf("expected defaulted sla, got %d", novo.SLADias)
				}
				return entities.Fornecedor{ID: 1, Codigo: novo.Codigo}, nil
			},
		)

		_, err := uc.CriarFornecedor(context.Background(), entities.NovoFornecedor{Codigo: "F001", RazaoSocial: "Graos do Sul"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCadastroUseCase_CriarProduto(t *testing.T) {
	t.Run("requires fornecedor", func(t *testing.T) {
		uc := NewCadastroUseCase(nil)
		_, err := uc.CriarProduto(context.Background(), entities.NovoProduto{Codigo: "CAF-500", Nome: "Cafe torrado"})
		if !errors.Is(err, ErrFornecedorInvalido) {
			t.Fatalf("expected ErrFornecedorInvalido, got %v", err)
		}
	})

	t.Run("rejects negative preco", func(t *testing.T) {
		uc := NewCadastroUseCase(nil)
		_, err := uc.CriarProduto(context.Background(), entities.NovoProduto{Codigo: "CAF-500", Nome: "Cafe torrado", FornecedorID: 1, Preco: -0.01})
		if !errors.Is(err, ErrPrecoInvalido) {
			t.Fatalf("expected ErrPrecoInvalido, got %v", err)
		}
	})

	t.Run("defaults unidade de medida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICadastroAPI(ctrl)
		uc := NewCadastroUseCase(api)

		api.EXPECT().CriarProduto(gomock.Any(), gomock.AssignableToTypeOf(entities.NovoProduto{})).DoAndReturn(
			func(_ context.Context, novo entities.NovoProduto) (entities.Produto, error) {
				if novo.UnidadeMedida != "UN" {
					t.Fatalf("expected defaulted unidade_medida, got %q", novo.UnidadeMedida)
				}
				return entities.Produto{ID: 3}, nil
			},
		)

		_, err := uc.CriarProduto(context.Background(), entities.NovoProduto{Codigo: "CAF-500", Nome: "Cafe torrado", FornecedorID: 1, Preco: 32.9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCadastroUseCase_CriarLimite(t *testing.T) {
	t.Run("minimo above maximo", func(t *testing.T) {
		uc := NewCadastroUseCase(nil)
		_, err := uc.CriarLimite(context.Background(), entities.NovoLimite{UnidadeID: 1, ProdutoID: 2, Minimo: 10, Maximo: 5})
		if !errors.Is(err, ErrLimiteInvalido) {
			t.Fatalf("expected ErrLimiteInvalido, got %v", err)
		}
	})
}

func TestCadastroUseCase_Excluir(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCadastroUseCase(nil)
		if err := uc.ExcluirFornecedor(context.Background(), 0, true); !errors.Is(err, ErrIDInvalido) {
			t.Fatalf("expected ErrIDInvalido, got %v", err)
		}
	})

	t.Run("not confirmed makes no api call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICadastroAPI(ctrl)
		uc := NewCadastroUseCase(api)

		if err := uc.ExcluirProduto(context.Background(), 3, false); !errors.Is(err, ErrExclusaoNaoConfirmada) {
			t.Fatalf("expected ErrExclusaoNaoConfirmada, got %v", err)
		}
	})

	t.Run("confirmed forwards to api", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockICadastroAPI(ctrl)
		uc := NewCadastroUseCase(api)

		api.EXPECT().ExcluirLimite(gomock.Any(), int64(7)).Return(nil)

		if err := uc.ExcluirLimite(context.Background(), 7, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
