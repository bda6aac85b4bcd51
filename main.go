package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"chatconnect_server/models"
	"chatconnect_server/routes"
	"chatconnect_server/services"
	"chatconnect_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Pick the user store: DynamoDB when USERS_TABLE is set, in-memory otherwise
	var users services.UserStore
	if table := os.Getenv("USERS_TABLE"); table != "" {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		users = &services.DynamoUserStore{
			Dynamo: &services.DynamoService{Client: dynamoClient},
			Table:  table,
		}
		log.Printf("DynamoDB client initialized, users table: %s\n", table)
	} else {
		log.Println("USERS_TABLE not set, using in-memory user store")
		users = services.NewUserService()
	}

	// Initialize Services
	rooms := services.NewRoomService()
	matchService := services.NewMatchService(users, rooms, getenvInt("MAX_MATCHES", models.DefaultMaxMatches))
	relayService := services.NewRelayService(rooms)
	moderationService := services.NewModerationService(rooms)
	locationService := services.NewLocationService(
		supportedCities(),
		getenv("DEFAULT_CITY", models.DefaultCity),
		os.Getenv("LOCATION_API_URL"),
	)

	// Set up the server port
	port := getenv("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to ChatConnect")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterSessionRoutes(r, users, locationService, getenvInt("POLL_INTERVAL_MS", models.DefaultPollIntervalMs))
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterActionRoutes(r, moderationService)

	// Mount the Socket.IO server for room join/message events
	socketServer := socket.NewSocketServer(relayService, matchService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-ID"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %d\n", key, value, fallback)
		return fallback
	}
	return parsed
}

func supportedCities() []string {
	raw := os.Getenv("SUPPORTED_CITIES")
	if raw == "" {
		return models.DefaultSupportedCities
	}
	var cities []string
	for _, city := range strings.Split(raw, ",") {
		if city = strings.TrimSpace(city); city != "" {
			cities = append(cities, strings.ToLower(city))
		}
	}
	if len(cities) == 0 {
		return models.DefaultSupportedCities
	}
	return cities
}
