package response

import (
	"sort"

	"maisquecafe-painel/internal/domain/entities"
)

type FornecedorResponse struct {
	ID           int64   `json:"id"`
	Codigo       string  `json:"codigo"`
	RazaoSocial  string  `json:"razao_social"`
	CNPJ         *string `json:"cnpj,omitempty"`
	EmailPedidos *string `json:"email_pedidos,omitempty"`
	SLADias      int     `json:"sla_dias"`
}

func FromFornecedor(f entities.Fornecedor) FornecedorResponse {
	return FornecedorResponse{
		ID:           f.ID,
		Codigo:       f.Codigo,
		RazaoSocial:  f.RazaoSocial,
		CNPJ:         f.CNPJ,
		EmailPedidos: f.EmailPedidos,
		SLADias:      f.SLADias,
	}
}

func FromFornecedores(fornecedores []entities.Fornecedor) []FornecedorResponse {
	out := make([]FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, FromFornecedor(f))
	}
	return out
}

type UnidadeResponse struct {
	ID          int64   `json:"id"`
	Codigo      string  `json:"codigo"`
	Nome        string  `json:"nome"`
	CNPJ        *string `json:"cnpj,omitempty"`
	CentroCusto *string `json:"centro_custo,omitempty"`
	Ativa       bool    `json:"ativa"`
}

func FromUnidade(u entities.Unidade) UnidadeResponse {
	return UnidadeResponse{
		ID:          u.ID,
		Codigo:      u.Codigo,
		Nome:        u.Nome,
		CNPJ:        u.CNPJ,
		CentroCusto: u.CentroCusto,
		Ativa:       u.Ativa,
	}
}

func FromUnidades(unidades []entities.Unidade) []UnidadeResponse {
	out := make([]UnidadeResponse, 0, len(unidades))
	for _, u := range unidades {
		out = append(out, FromUnidade(u))
	}
	return out
}

type ProdutoResponse struct {
	ID            int64   `json:"id"`
	Codigo        string  `json:"codigo"`
	Nome          string  `json:"nome"`
	UnidadeMedida string  `json:"unidade_medida"`
	FornecedorID  int64   `json:"fornecedor_id"`
	Fornecedor    string  `json:"fornecedor"`
	Preco         float64 `json:"preco"`
	Ativo         bool    `json:"ativo"`
}

// FromProduto labels the supplier column through the lookup snapshot, the
// way the panel's product table shows razao social instead of an id.
func FromProduto(p entities.Produto, refs entities.Referencias) ProdutoResponse {
	fornecedor := refs.CodigoFornecedor(p.FornecedorID)
	if f, ok := refs.Fornecedores[p.FornecedorID]; ok {
		fornecedor = f.RazaoSocial
	}
	return ProdutoResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		UnidadeMedida: p.UnidadeMedida,
		FornecedorID:  p.FornecedorID,
		Fornecedor:    fornecedor,
		Preco:         p.Preco,
		Ativo:         p.Ativo,
	}
}

func FromProdutos(produtos []entities.Produto, refs entities.Referencias) []ProdutoResponse {
	out := make([]ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, FromProduto(p, refs))
	}
	return out
}

type LimiteResponse struct {
	ID            int64   `json:"id"`
	UnidadeID     int64   `json:"unidade_id"`
	UnidadeCodigo string  `json:"unidade_codigo"`
	ProdutoID     int64   `json:"produto_id"`
	ProdutoCodigo string  `json:"produto_codigo"`
	Minimo        float64 `json:"minimo"`
	Maximo        float64 `json:"maximo"`
}

func FromLimite(l entities.Limite, refs entities.Referencias) LimiteResponse {
	return LimiteResponse{
		ID:            l.ID,
		UnidadeID:     l.UnidadeID,
		UnidadeCodigo: refs.CodigoUnidade(l.UnidadeID),
		ProdutoID:     l.ProdutoID,
		ProdutoCodigo: refs.CodigoProduto(l.ProdutoID),
		Minimo:        l.Minimo,
		Maximo:        l.Maximo,
	}
}

func FromLimites(limites []entities.Limite, refs entities.Referencias) []LimiteResponse {
	out := make([]LimiteResponse, 0, len(limites))
	for _, l := range limites {
		out = append(out, FromLimite(l, refs))
	}
	return out
}

// OpcaoResponse is one entry of a selection control.
type OpcaoResponse struct {
	ID     int64  `json:"id"`
	Rotulo string `json:"rotulo"`
}

// ProdutoOpcaoResponse also carries the default price, which the composer
// form shows next to the product.
type ProdutoOpcaoResponse struct {
	ID     int64   `json:"id"`
	Rotulo string  `json:"rotulo"`
	Preco  float64 `json:"preco"`
}

// ReferenciasResponse feeds every selection control of the panel in one
// payload. Options are sorted by id for stable rendering.
type ReferenciasResponse struct {
	Fornecedores []OpcaoResponse        `json:"fornecedores"`
	Unidades     []OpcaoResponse        `json:"unidades"`
	Produtos     []ProdutoOpcaoResponse `json:"produtos"`
}

func FromReferencias(refs entities.Referencias) ReferenciasResponse {
	out := ReferenciasResponse{
		Fornecedores: make([]OpcaoResponse, 0, len(refs.Fornecedores)),
		Unidades:     make([]OpcaoResponse, 0, len(refs.Unidades)),
		Produtos:     make([]ProdutoOpcaoResponse, 0, len(refs.Produtos)),
	}
	for id := range refs.Fornecedores {
		out.Fornecedores = append(out.Fornecedores, OpcaoResponse{ID: id, Rotulo: refs.RotuloFornecedor(id)})
	}
	for id := range refs.Unidades {
		out.Unidades = append(out.Unidades, OpcaoResponse{ID: id, Rotulo: refs.RotuloUnidade(id)})
	}
	for id, produto := range refs.Produtos {
		out.Produtos = append(out.Produtos, ProdutoOpcaoResponse{ID: id, Rotulo: refs.RotuloProduto(id), Preco: produto.Preco})
	}
	sort.Slice(out.Fornecedores, func(i, j int) bool { return out.Fornecedores[i].ID < out.Fornecedores[j].ID })
	sort.Slice(out.Unidades, func(i, j int) bool { return out.Unidades[i].ID < out.Unidades[j].ID })
	sort.Slice(out.Produtos, func(i, j int) bool { return out.Produtos[i].ID < out.Produtos[j].ID })
	return out
}
