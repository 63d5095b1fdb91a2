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
	ErrIDInvalido             = errors.New("invalid id")
	ErrCodigoObrigatorio      = errors.New("codigo is required")
	ErrRazaoSocialObrigatoria = errors.New("razao_social is required")
	ErrNomeObrigatorio        = errors.New("nome is required")
	ErrProdutoInvalido        = errors.New("invalid produto_id")
	ErrPrecoInvalido          = errors.New("preco must be non-negative")
	ErrLimiteInvalido         = errors.New("limite minimo cannot exceed maximo")
)

// ICadastroUseCase is the generic list/create/delete surface over the four
// master-data entities, plus the lookup snapshot the panel uses to fill
// selects and label foreign keys.

type ICadastroUseCase interface {
	CarregarReferencias(ctx context.Context) (entities.Referencias, error)

	ListarFornecedores(ctx context.Context) ([]entities.Fornecedor, error)
	CriarFornecedor(ctx context.Context, novo entities.NovoFornecedor) (entities.Fornecedor, error)
	ExcluirFornecedor(ctx context.Context, id int64, confirmado bool) error

	ListarUnidades(ctx context.Context) ([]entities.Unidade, error)
	CriarUnidade(ctx context.Context, nova entities.NovaUnidade) (entities.Unidade, error)
	ExcluirUnidade(ctx context.Context, id int64, confirmado bool) error

	ListarProdutos(ctx context.Context, filtro entities.FiltroProdutos) ([]entities.Produto, error)
	CriarProduto(ctx context.Context, novo entities.NovoProduto) (entities.Produto, error)
	ExcluirProduto(ctx context.Context, id int64, confirmado bool) error

	ListarLimites(ctx context.Context) ([]entities.Limite, error)
	CriarLimite(ctx context.Context, novo entities.NovoLimite) (entities.Limite, error)
	ExcluirLimite(ctx context.Context, id int64, confirmado bool) error
}

type CadastroUseCase struct {
	api interfaces.ICadastroAPI
}

var _ ICadastroUseCase = (*CadastroUseCase)(nil)

func NewCadastroUseCase(api interfaces.ICadastroAPI) *CadastroUseCase {
	return &CadastroUseCase{api: api}
}

// CarregarReferencias fetches the three lookup lists sequentially and folds
// them into a fresh snapshot. The previous snapshot (if any) is discarded
// wholesale; there is no merge.
func (u *CadastroUseCase) CarregarReferencias(ctx context.Context) (entities.Referencias, error) {
	fornecedores, err := u.api.ListarFornecedores(ctx)
	if err != nil {
		return entities.Referencias{}, err
	}
	unidades, err := u.api.ListarUnidades(ctx)
	if err != nil {
		return entities.Referencias{}, err
	}
	produtos, err := u.api.ListarProdutos(ctx, entities.FiltroProdutos{})
	if err != nil {
		return entities.Referencias{}, err
	}
	return entities.NovasReferencias(fornecedores, unidades, produtos), nil
}

// ---- fornecedores ----

func (u *CadastroUseCase) ListarFornecedores(ctx context.Context) ([]entities.Fornecedor, error) {
	return u.api.ListarFornecedores(ctx)
}

func (u *CadastroUseCase) CriarFornecedor(ctx context.Context, novo entities.NovoFornecedor) (entities.Fornecedor, error) {
	if strings.TrimSpace(novo.Codigo) == "" {
		return entities.Fornecedor{}, ErrCodigoObrigatorio
	}
	if strings.TrimSpace(novo.RazaoSocial) == "" {
		return entities.Fornecedor{}, ErrRazaoSocialObrigatoria
	}
	if novo.SLADias <= 0 {
		novo.SLADias = 2
	}
	log.Printf("[cadastro][usecase] criar fornecedor codigo=%s", novo.Codigo)
	return u.api.CriarFornecedor(ctx, novo)
}

func (u *CadastroUseCase) ExcluirFornecedor(ctx context.Context, id int64, confirmado bool) error {
	if err := validarExclusao(id, confirmado); err != nil {
		return err
	}
	log.Printf("[cadastro][usecase] excluir fornecedor id=%d", id)
	return u.api.ExcluirFornecedor(ctx, id)
}

// ---- unidades ----

func (u *CadastroUseCase) ListarUnidades(ctx context.Context) ([]entities.Unidade, error) {
	return u.api.ListarUnidades(ctx)
}

func (u *CadastroUseCase) CriarUnidade(ctx context.Context, nova entities.NovaUnidade) (entities.Unidade, error) {
	if strings.TrimSpace(nova.Codigo) == "" {
		return entities.Unidade{}, ErrCodigoObrigatorio
	}
	if strings.TrimSpace(nova.Nome) == "" {
		return entities.Unidade{}, ErrNomeObrigatorio
	}
	log.Printf("[cadastro][usecase] criar unidade codigo=%s", nova.Codigo)
	return u.api.CriarUnidade(ctx, nova)
}

func (u *CadastroUseCase) ExcluirUnidade(ctx context.Context, id int64, confirmado bool) error {
	if err := validarExclusao(id, confirmado); err != nil {
		return err
	}
	log.Printf("[cadastro][usecase] excluir unidade id=%d", id)
	return u.api.ExcluirUnidade(ctx, id)
}

// ---- produtos ----

func (u *CadastroUseCase) ListarProdutos(ctx context.Context, filtro entities.FiltroProdutos) ([]entities.Produto, error) {
	return u.api.ListarProdutos(ctx, filtro)
}

func (u *CadastroUseCase) CriarProduto(ctx context.Context, novo entities.NovoProduto) (entities.Produto, error) {
	if strings.TrimSpace(novo.Codigo) == "" {
		return entities.Produto{}, ErrCodigoObrigatorio
	}
	if strings.TrimSpace(novo.Nome) == "" {
		return entities.Produto{}, ErrNomeObrigatorio
	}
	if novo.FornecedorID <= 0 {
		return entities.Produto{}, ErrFornecedorInvalido
	}
	if novo.Preco < 0 {
		return entities.Produto{}, ErrPrecoInvalido
	}
	if strings.TrimSpace(novo.UnidadeMedida) == "" {
		novo.UnidadeMedida = "UN"
	}
	log.Printf("[cadastro][usecase] criar produto codigo=%s fornecedor_id=%d", novo.Codigo, novo.FornecedorID)
	return u.api.CriarProduto(ctx, novo)
}

func (u *CadastroUseCase) ExcluirProduto(ctx context.Context, id int64, confirmado bool) error {
	if err := validarExclusao(id, confirmado); err != nil {
		return err
	}
	log.Printf("[cadastro][usecase] excluir produto id=%d", id)
	return u.api.ExcluirProduto(ctx, id)
}

// ---- limites ----

func (u *CadastroUseCase) ListarLimites(ctx context.Context) ([]entities.Limite, error) {
	return u.api.ListarLimites(ctx)
}

func (u *CadastroUseCase) CriarLimite(ctx context.Context, novo entities.NovoLimite) (entities.Limite, error) {
	if novo.UnidadeID <= 0 {
		return entities.Limite{}, ErrUnidadeInvalida
	}
	if novo.ProdutoID <= 0 {
		return entities.Limite{}, ErrProdutoInvalido
	}
	if novo.Minimo > novo.Maximo {
		return entities.Limite{}, ErrLimiteInvalido
	}
	log.Printf("[cadastro][usecase] criar limite unidade_id=%d produto_id=%d", novo.UnidadeID, novo.ProdutoID)
	return u.api.CriarLimite(ctx, novo)
}

func (u *CadastroUseCase) ExcluirLimite(ctx context.Context, id int64, confirmado bool) error {
	if err := validarExclusao(id, confirmado); err != nil {
		return err
	}
	log.Printf("[cadastro][usecase] excluir limite id=%d", id)
	return u.api.ExcluirLimite(ctx, id)
}

func validarExclusao(id int64, confirmado bool) error {
	if id <= 0 {
		return ErrIDInvalido
	}
	if !confirmado {
		return ErrExclusaoNaoConfirmada
	}
	return nil
}
