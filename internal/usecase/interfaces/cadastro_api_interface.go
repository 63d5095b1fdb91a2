package interfaces

import (
	"context"

	"maisquecafe-painel/internal/domain/entities"
)

// ICadastroAPI abstracts the master-data (cadastros) endpoints of the remote
// MaisQueCafe API: suppliers, business units, products and purchase limits.
//
// Every entity follows the same list/create/delete surface; the remote API
// enforces referential rules (e.g. a supplier with products cannot be
// deleted) and reports them as regular API errors.
type ICadastroAPI interface {
	ListarFornecedores(ctx context.Context) ([]entities.Fornecedor, error)
	CriarFornecedor(ctx context.Context, novo entities.NovoFornecedor) (entities.Fornecedor, error)
	ExcluirFornecedor(ctx context.Context, id int64) error

	ListarUnidades(ctx context.Context) ([]entities.Unidade, error)
	CriarUnidade(ctx context.Context, nova entities.NovaUnidade) (entities.Unidade, error)
	ExcluirUnidade(ctx context.Context, id int64) error

	ListarProdutos(ctx context.Context, filtro entities.FiltroProdutos) ([]entities.Produto, error)
	CriarProduto(ctx context.Context, novo entities.NovoProduto) (entities.Produto, error)
	ExcluirProduto(ctx context.Context, id int64) error

	ListarLimites(ctx context.Context) ([]entities.Limite, error)
	CriarLimite(ctx context.Context, novo entities.NovoLimite) (entities.Limite, error)
	ExcluirLimite(ctx context.Context, id int64) error
}

// IStatusAPI is the remote health probe (the panel's "ping").
type IStatusAPI interface {
	Status(ctx context.Context) (entities.StatusAPI, error)
}
