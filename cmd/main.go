package main

import (
	"log"
	"net/http"
	"os"

	"github.com/KromaEnergia/api-comissoes/internal/ajustecomissao"
	"github.com/KromaEnergia/api-comissoes/internal/auth"
	"github.com/KromaEnergia/api-comissoes/internal/calculocomissao"
	"github.com/KromaEnergia/api-comissoes/internal/comercializadora"
	"github.com/KromaEnergia/api-comissoes/internal/consultor"
	"github.com/KromaEnergia/api-comissoes/internal/contrato"
	"github.com/KromaEnergia/api-comissoes/internal/formulacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/linhacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/nivelcomissao"
	"github.com/KromaEnergia/api-comissoes/internal/notificacao"
	"github.com/KromaEnergia/api-comissoes/internal/produtos"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
	"github.com/KromaEnergia/api-comissoes/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Erro ao iniciar logger:", err)
	}
	defer logger.Sync()

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("Erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&consultor.Consultor{},
		&nivelcomissao.NivelComissao{},
		&comercializadora.Comercializadora{},
		&produtos.Produto{},
		&tabelacomissao.FaixaComissao{},
		&formulacomissao.ConfiguracaoFormula{},
		&ajustecomissao.AjusteComissao{},
		&contrato.Contrato{},
		&linhacomissao.LinhaComissao{},
	); err != nil {
		logger.Fatal("Erro no AutoMigrate", zap.Error(err))
	}

	// Handlers
	consultorHandler := consultor.NewHandler(database)
	nivelHandler := nivelcomissao.NewHandler(database)
	comercializadoraHandler := comercializadora.NewHandler(database)
	produtoHandler := produtos.NewHandler(database)
	faixaHandler := tabelacomissao.NewHandler(database)
	formulaHandler := formulacomissao.NewHandler(database)
	ajusteHandler := ajustecomissao.NewHandler(database)
	contratoHandler := contrato.NewHandler(database)
	linhaHandler := linhacomissao.NewHandler(database)

	notificador := notificacao.NewNotificador(logger)
	calculoService := calculocomissao.NewService(logger, notificador)
	calculoHandler := calculocomissao.NewHandler(database, calculoService)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", consultorHandler.Login).Methods("POST")
	r.HandleFunc("/consultores", consultorHandler.CriarConsultor).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Consultores e hierarquia
	api.HandleFunc("/consultores", consultorHandler.ListarConsultores).Methods("GET")
	api.HandleFunc("/consultores/{id}", consultorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/consultores/{id}", consultorHandler.AtualizarConsultor).Methods("PUT")
	api.HandleFunc("/consultores/{id}", consultorHandler.DeletarConsultor).Methods("DELETE")
	api.HandleFunc("/consultores/{id}/cadeia", consultorHandler.ListarCadeia).Methods("GET")
	api.HandleFunc("/consultores/{id}/subordinados", consultorHandler.ListarSubordinados).Methods("GET")
	api.HandleFunc("/consultores/{id}/resetar-senha", consultorHandler.ResetarSenha).Methods("POST")

	// Níveis de comissão
	api.HandleFunc("/niveis-comissao", nivelHandler.CriarNivel).Methods("POST")
	api.HandleFunc("/niveis-comissao", nivelHandler.ListarNiveis).Methods("GET")
	api.HandleFunc("/niveis-comissao/{id}", nivelHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/niveis-comissao/{id}", nivelHandler.AtualizarNivel).Methods("PUT")
	api.HandleFunc("/niveis-comissao/{id}", nivelHandler.DeletarNivel).Methods("DELETE")

	// Comercializadoras
	api.HandleFunc("/comercializadoras", comercializadoraHandler.CriarComercializadora).Methods("POST")
	api.HandleFunc("/comercializadoras", comercializadoraHandler.ListarComercializadoras).Methods("GET")
	api.HandleFunc("/comercializadoras/{id}", comercializadoraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/comercializadoras/{id}", comercializadoraHandler.AtualizarComercializadora).Methods("PUT")
	api.HandleFunc("/comercializadoras/{id}", comercializadoraHandler.DeletarComercializadora).Methods("DELETE")

	// Produtos, faixas e fórmulas
	api.HandleFunc("/produtos", produtoHandler.CriarProduto).Methods("POST")
	api.HandleFunc("/produtos", produtoHandler.ListarProdutos).Methods("GET")
	api.HandleFunc("/produtos/{id}", produtoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/produtos/{id}", produtoHandler.AtualizarProduto).Methods("PUT")
	api.HandleFunc("/produtos/{id}", produtoHandler.DeletarProduto).Methods("DELETE")
	api.HandleFunc("/produtos/{id}/faixas-comissao", faixaHandler.ListarPorProduto).Methods("GET")
	api.HandleFunc("/faixas-comissao", faixaHandler.CriarFaixa).Methods("POST")
	api.HandleFunc("/faixas-comissao/{id}", faixaHandler.DeletarFaixa).Methods("DELETE")
	api.HandleFunc("/produtos/{id}/formula-comissao", formulaHandler.BuscarConfiguracao).Methods("GET")
	api.HandleFunc("/produtos/{id}/formula-comissao", formulaHandler.SalvarConfiguracao).Methods("PUT")
	api.HandleFunc("/produtos/{id}/formula-comissao", formulaHandler.DeletarConfiguracao).Methods("DELETE")

	// Ajustes de comissão
	api.HandleFunc("/consultores/{id}/ajustes-comissao", ajusteHandler.CriarAjuste).Methods("POST")
	api.HandleFunc("/consultores/{id}/ajustes-comissao", ajusteHandler.ListarPorConsultor).Methods("GET")
	api.HandleFunc("/ajustes-comissao/{id}", ajusteHandler.DeletarAjuste).Methods("DELETE")

	// Contratos e cálculo
	api.HandleFunc("/contratos", contratoHandler.CriarContrato).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.ListarContratos).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.AtualizarContrato).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.DeletarContrato).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/calcular-comissoes", calculoHandler.Calcular).Methods("POST")

	// Razão de comissões
	api.HandleFunc("/linhas-comissao", linhaHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}/linhas-comissao", linhaHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/linhas-comissao/{id}/status", linhaHandler.AtualizarStatus).Methods("PATCH")

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	logger.Info("Servidor rodando", zap.String("porta", porta))
	logger.Fatal("servidor encerrado", zap.Error(http.ListenAndServe(":"+porta, handler)))
}
