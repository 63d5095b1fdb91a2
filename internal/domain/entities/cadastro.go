package entities

// Master-data records (cadastros) owned by the remote API. The panel fetches
// them fresh per view refresh; nothing here survives beyond a request.

type Fornecedor struct {
	ID           int64   `json:"id"`
	Codigo       string  `json:"codigo"`
	RazaoSocial  string  `json:"razao_social"`
	CNPJ         *string `json:"cnpj,omitempty"`
	EmailPedidos *string `json:"email_pedidos,omitempty"`
	SLADias      int     `json:"sla_dias"`
}

type Unidade struct {
	ID          int64   `json:"id"`
	Codigo      string  `json:"codigo"`
	Nome        string  `json:"nome"`
	CNPJ        *string `json:"cnpj,omitempty"`
	CentroCusto *string `json:"centro_custo,omitempty"`
	Ativa       bool    `json:"ativa"`
}

type Produto struct {
	ID            int64   `json:"id"`
	Codigo        string  `json:"codigo"`
	Nome          string  `json:"nome"`
	UnidadeMedida string  `json:"unidade_medida"`
	FornecedorID  int64   `json:"fornecedor_id"`
	Preco         float64 `json:"preco"`
	Ativo         bool    `json:"ativo"`
}

// Limite is a per-unit, per-product quantity window. Orders whose quantities
// fall outside it require approval (enforced server-side on enviar).
type Limite struct {
	ID        int64   `json:"id"`
	UnidadeID int64   `json:"unidade_id"`
	ProdutoID int64   `json:"produto_id"`
	Minimo    float64 `json:"minimo"`
	Maximo    float64 `json:"maximo"`
}

// Creation payloads. IDs are assigned by the remote API.

type NovoFornecedor struct {
	Codigo       string  `json:"codigo"`
	RazaoSocial  string  `json:"razao_social"`
	CNPJ         *string `json:"cnpj"`
	EmailPedidos *string `json:"email_pedidos"`
	SLADias      int     `json:"sla_dias"`
}

type NovaUnidade struct {
	Codigo      string  `json:"codigo"`
	Nome        string  `json:"nome"`
	CNPJ        *string `json:"cnpj"`
	CentroCusto *string `json:"centro_custo"`
	Ativa       bool    `json:"ativa"`
}

type NovoProduto struct {
	Codigo        string  `json:"codigo"`
	Nome          string  `json:"nome"`
	UnidadeMedida string  `json:"unidade_medida"`
	FornecedorID  int64   `json:"fornecedor_id"`
	Preco         float64 `json:"preco"`
	Ativo         bool    `json:"ativo"`
}

type NovoLimite struct {
	UnidadeID int64   `json:"unidade_id"`
	ProdutoID int64   `json:"produto_id"`
	Minimo    float64 `json:"minimo"`
	Maximo    float64 `json:"maximo"`
}

// FiltroProdutos narrows GET /produtos. Nil fields are omitted.
type FiltroProdutos struct {
	Ativo        *bool
	FornecedorID *int64
}

// StatusAPI is the remote health probe response (GET /status).
type StatusAPI struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}
