package entities

import "strconv"

// Referencias is the session-scoped lookup snapshot used to fill selection
// controls and to turn foreign keys into readable labels.
//
// It is rebuilt from scratch on every refresh (last write wins on duplicate
// ids, no merge with a previous snapshot) — the remote API stays the single
// source of truth.
type Referencias struct {
	Fornecedores map[int64]Fornecedor
	Unidades     map[int64]Unidade
	Produtos     map[int64]Produto
}

func NovasReferencias(fornecedores []Fornecedor, unidades []Unidade, produtos []Produto) Referencias {
	r := Referencias{
		Fornecedores: make(map[int64]Fornecedor, len(fornecedores)),
		Unidades:     make(map[int64]Unidade, len(unidades)),
		Produtos:     make(map[int64]Produto, len(produtos)),
	}
	for _, f := range fornecedores {
		r.Fornecedores[f.ID] = f
	}
	for _, u := range unidades {
		r.Unidades[u.ID] = u
	}
	for _, p := range produtos {
		r.Produtos[p.ID] = p
	}
	return r
}

// CodigoFornecedor returns the supplier code for table cells, falling back to
// the raw id when the snapshot does not know it.
func (r Referencias) CodigoFornecedor(id int64) string {
	if f, ok := r.Fornecedores[id]; ok {
		return f.Codigo
	}
	return strconv.FormatInt(id, 10)
}

func (r Referencias) CodigoUnidade(id int64) string {
	if u, ok := r.Unidades[id]; ok {
		return u.Codigo
	}
	return strconv.FormatInt(id, 10)
}

func (r Referencias) CodigoProduto(id int64) string {
	if p, ok := r.Produtos[id]; ok {
		return p.Codigo
	}
	return strconv.FormatInt(id, 10)
}

// RotuloFornecedor is the long label used by selection controls
// ("id • codigo - razao social").
func (r Referencias) RotuloFornecedor(id int64) string {
	if f, ok := r.Fornecedores[id]; ok {
		return strconv.FormatInt(f.ID, 10) + " • " + f.Codigo + " - " + f.RazaoSocial
	}
	return strconv.FormatInt(id, 10)
}

func (r Referencias) RotuloUnidade(id int64) string {
	if u, ok := r.Unidades[id]; ok {
		return strconv.FormatInt(u.ID, 10) + " • " + u.Codigo + " - " + u.Nome
	}
	return strconv.FormatInt(id, 10)
}

func (r Referencias) RotuloProduto(id int64) string {
	if p, ok := r.Produtos[id]; ok {
		return strconv.FormatInt(p.ID, 10) + " • " + p.Codigo + " - " + p.Nome
	}
	return strconv.FormatInt(id, 10)
}
