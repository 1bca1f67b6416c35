package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/centavohq/centavo/internal/db"
	"github.com/centavohq/centavo/internal/handlers"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/repositories"
	"github.com/centavohq/centavo/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zapLogger.Fatal("Database health check failed", zap.Error(err))
	}
	zapLogger.Info("Database connection established")

	// Repositories
	holdingRepo := repositories.NewHoldingRepository(database)
	fxRateRepo := repositories.NewFXRateRepository(database)

	// Providers: HTTP when upstream roots are configured, mocks otherwise
	interestProvider := services.NewMockInterestRateProvider()
	var exchangeProvider services.ExchangeRateProvider
	dollarAPI := os.Getenv("DOLLAR_API_URL")
	cryptoAPI := os.Getenv("CRYPTO_API_URL")
	if dollarAPI != "" && cryptoAPI != "" {
		exchangeProvider = services.NewHTTPExchangeRateProvider(dollarAPI, cryptoAPI)
		zapLogger.Info("Using HTTP exchange rate provider",
			zap.String("dollar_api", dollarAPI),
			zap.String("crypto_api", cryptoAPI))
	} else {
		exchangeProvider = services.NewMockExchangeRateProvider()
		zapLogger.Info("Using mock exchange rate provider")
	}
	var priceProvider services.PriceProvider
	if os.Getenv("PRICE_API_ENABLED") == "true" {
		priceProvider = services.NewCoinGeckoPriceProvider(os.Getenv("PRICE_API_URL"))
		zapLogger.Info("Using CoinGecko price provider")
	} else {
		priceProvider = services.NewMockPriceProvider(nil)
		zapLogger.Info("Using mock price provider")
	}

	// Services
	fxRateService := services.NewFXRateService(fxRateRepo, zapLogger)
	rateService := services.NewRateService(interestProvider, exchangeProvider, zapLogger)
	simulationService := services.NewSimulationService(interestProvider, zapLogger)
	portfolioService := services.NewPortfolioService(holdingRepo, priceProvider, fxRateService, zapLogger)

	// Handlers
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	comparisonHandler := handlers.NewComparisonHandler(simulationService)
	rateHandler := handlers.NewRateHandler(rateService)
	portfolioHandler := handlers.NewPortfolioHandler(holdingRepo, portfolioService)
	fxHandler := handlers.NewFXHandler(fxRateService)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "centavo",
		})
	})

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/simulations/fixed-term", simulationHandler.HandleFixedTerm)
	api.HandleFunc("/simulations/wallet", simulationHandler.HandleWallet)
	api.HandleFunc("/simulations/crypto", simulationHandler.HandleCrypto)
	api.HandleFunc("/comparisons/installments", comparisonHandler.HandleInstallments)
	api.HandleFunc("/rates", rateHandler.HandleRates)
	api.HandleFunc("/rates/best", rateHandler.HandleBestRate)
	api.HandleFunc("/exchange-rates", rateHandler.HandleExchangeRates)
	api.HandleFunc("/exchange-rates/summary", rateHandler.HandleExchangeSummary)
	api.HandleFunc("/holdings", portfolioHandler.HandleHoldings)
	api.HandleFunc("/holdings/{id}", portfolioHandler.HandleHolding)
	api.HandleFunc("/portfolio/valuation", portfolioHandler.HandleValuation)
	api.HandleFunc("/fx-rates", fxHandler.HandleFXRates)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
