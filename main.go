// @title Norvela Ops Console API
// @version 1.0
// @description Session backend for the Norvela retail operations console
// @host localhost:8082
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Norvela-Retail/norvela-ops-console/config"
	"github.com/Norvela-Retail/norvela-ops-console/controllers/console/listview_controller"
	"github.com/Norvela-Retail/norvela-ops-console/controllers/console/order_editor_controller"
	"github.com/Norvela-Retail/norvela-ops-console/middleware"
	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/query"
	"github.com/Norvela-Retail/norvela-ops-console/routes"
	"github.com/Norvela-Retail/norvela-ops-console/services"
	"github.com/Norvela-Retail/norvela-ops-console/session"
	"github.com/Norvela-Retail/norvela-ops-console/upstream"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	// Redis backs the rate limiter
	config.ConnectRedis(cfg.RedisURL)

	// Outbound credential: prefer a static token, else self-signed service JWTs
	var creds upstream.CredentialProvider
	if cfg.UpstreamToken != "" {
		creds = services.StaticTokenProvider(cfg.UpstreamToken)
	} else if cfg.ServiceSecret != "" {
		provider, err := services.NewServiceTokenProvider(cfg.ServiceSecret, "norvela-ops-console")
		if err != nil {
			log.Fatalf("❌ Failed to initialize service token provider: %v", err)
		}
		creds = provider
		log.Println("✅ Service token provider initialized")
	} else {
		log.Println("⚠️ No upstream credential configured, calling upstream unauthenticated")
	}

	client := upstream.NewClient(cfg.UpstreamAPIURL, creds)

	// Cross-collection resolver: warm the related collections the search
	// joins against. Failures are tolerated — lookups just match nothing
	// until the collections load.
	index := query.NewCollectionIndex()
	warmResolverIndex(index, client)

	compiler := query.NewCompiler(index)
	for _, fm := range query.FieldMaps() {
		fm.Validate()
	}

	store := session.NewStore(cfg.SessionTTL)

	if err := listview_controller.Init(store, compiler, client, cfg.SettleDelay, cfg.PageLimit); err != nil {
		log.Fatalf("❌ Failed to initialize list view controller: %v", err)
	}
	if err := order_editor_controller.Init(store, client); err != nil {
		log.Fatalf("❌ Failed to initialize order editor controller: %v", err)
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	consoleGroup := api.Group("/console")
	consoleGroup.Use(middleware.RateLimiter(100, time.Minute))
	routes.SetupConsoleRoutes(consoleGroup)
	log.Println("✅ Console routes registered")

	fmt.Println("🚀 Server is running on http://localhost:" + cfg.Port)
	router.Run(":" + cfg.Port)
}

// warmResolverIndex best-effort loads the collections the search fans out
// over client-side joins for.
func warmResolverIndex(index *query.CollectionIndex, client *upstream.Client) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := client.FetchAll(ctx, "products", &products); err != nil {
		log.Printf("⚠️ resolver warm-up: products not loaded: %v", err)
	} else {
		records := make([]query.NamedRecord, 0, len(products))
		for _, p := range products {
			records = append(records, query.NamedRecord{ID: p.ID, Name: p.Name})
		}
		index.Load(query.CollectionProducts, records)
		log.Printf("✅ resolver warm-up: %d products indexed", len(records))
	}

	var customers []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := client.FetchAll(ctx, "customers", &customers); err != nil {
		log.Printf("⚠️ resolver warm-up: customers not loaded: %v", err)
	} else {
		records := make([]query.NamedRecord, 0, len(customers))
		for _, u := range customers {
			records = append(records, query.NamedRecord{ID: u.ID, Name: u.Name})
		}
		index.Load(query.CollectionCustomers, records)
		log.Printf("✅ resolver warm-up: %d customers indexed", len(records))
	}
}
