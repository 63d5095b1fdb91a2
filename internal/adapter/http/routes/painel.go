package routes

import (
	"maisquecafe-painel/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPedidos      = "/pedidos"
	PathFornecedores = "/fornecedores"
	PathUnidades     = "/unidades"
	PathProdutos     = "/produtos"
	PathLimites      = "/limites"
	PathReferencias  = "/referencias"
)

func addPainelRoutes(rg *gin.RouterGroup, pedidoHandler *handlers.PedidoHandler, cadastroHandler *handlers.CadastroHandler) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.POST("", pedidoHandler.CriarPedido)
		pedidos.GET("", pedidoHandler.ListarPedidos)
		pedidos.GET("/:id", pedidoHandler.ObterPedido)
		pedidos.DELETE("/:id", pedidoHandler.ExcluirPedido)
		pedidos.POST("/:id/enviar", pedidoHandler.EnviarPedido)
		pedidos.POST("/:id/aprovar", pedidoHandler.DecidirPedido)
		pedidos.POST("/:id/recebimentos", pedidoHandler.RegistrarRecebimento)
	}

	fornecedores := rg.Group(PathFornecedores)
	{
		fornecedores.GET("", cadastroHandler.ListarFornecedores)
		fornecedores.POST("", cadastroHandler.CriarFornecedor)
		fornecedores.DELETE("/:id", cadastroHandler.ExcluirFornecedor)
	}

	unidades := rg.Group(PathUnidades)
	{
		unidades.GET("", cadastroHandler.ListarUnidades)
		unidades.POST("", cadastroHandler.CriarUnidade)
		unidades.DELETE("/:id", cadastroHandler.ExcluirUnidade)
	}

	produtos := rg.Group(PathProdutos)
	{
		produtos.GET("", cadastroHandler.ListarProdutos)
		produtos.POST("", cadastroHandler.CriarProduto)
		produtos.DELETE("/:id", cadastroHandler.ExcluirProduto)
	}

	limites := rg.Group(PathLimites)
	{
		limites.GET("", cadastroHandler.ListarLimites)
		limites.POST("", cadastroHandler.CriarLimite)
		limites.DELETE("/:id", cadastroHandler.ExcluirLimite)
	}

	rg.GET(PathReferencias, cadastroHandler.Referencias)
}
