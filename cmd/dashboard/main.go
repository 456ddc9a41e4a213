package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"disasterwatch/internal/adapters/api"
	"disasterwatch/internal/adapters/credstore"
	"disasterwatch/internal/config"
	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/core/query"
	"disasterwatch/internal/core/services"
	"disasterwatch/internal/core/session"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Credential store
	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize credential store: %v", err)
	}

	ctx := context.Background()

	// Session guard: initial state derived synchronously from the store
	guard := session.NewGuard(store)
	guard.Bootstrap(ctx)
	guard.OnLogout(func() {
		log.Printf("🛑 Session expired, logged out")
	})

	// Remote API client and services
	client := api.NewClient(cfg.APIBaseURL)
	authService := services.NewAuthService(client, guard)
	zoneService := services.NewZoneService(seedZones())
	sosService := services.NewSosService(client, guard)
	dashboardService := services.NewDashboardService(zoneService, sosService)

	app := &app{
		cfg:       cfg,
		guard:     guard,
		auth:      authService,
		zones:     zoneService,
		sos:       sosService,
		dashboard: dashboardService,
	}

	if len(os.Args) < 2 {
		app.usage()
		os.Exit(2)
	}

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

type app struct {
	cfg       *config.Config
	guard     *session.Guard
	auth      *services.AuthService
	zones     *services.ZoneService
	sos       *services.SosService
	dashboard *services.DashboardService
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.registerCmd(ctx, args)
	case "login":
		return a.loginCmd(ctx, args)
	case "logout":
		a.auth.Logout(ctx)
		return nil
	case "status":
		printSession(a.guard.Session())
		return nil
	case "sos":
		return a.sosCmd(ctx, args)
	case "zones":
		return a.zonesCmd(args)
	case "overview":
		return a.overviewCmd(ctx)
	case "watch":
		return a.watchCmd(ctx)
	default:
		a.usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) usage() {
	fmt.Fprintln(os.Stderr, `Usage: dashboard <command> [flags]

Commands:
  register <email> <password>   create an account and log in
  login <email> <password>      log in
  logout                        log out and clear stored credentials
  status                        show the current session
  sos                           fetch and query SOS requests
  zones                         query the local zone registry
  overview                      show dashboard overview stats
  watch                         keep the session watcher running`)
}

func (a *app) registerCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: register <email> <password>")
	}
	ses, err := a.auth.Register(ctx, args[0], args[1])
	if err != nil {
		fmt.Printf("Registration failed: %s\n", api.Feedback(err))
		return nil
	}
	printSession(ses)
	return nil
}

func (a *app) loginCmd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	ses, err := a.auth.Login(ctx, args[0], args[1])
	if err != nil {
		fmt.Printf("Login failed: %s\n", api.Feedback(err))
		return nil
	}
	printSession(ses)
	return nil
}

func (a *app) sosCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sos", flag.ContinueOnError)
	search := fs.String("search", "", "free-text match on the message")
	zoneName := fs.String("zone", "", "filter by zone name")
	zoneID := fs.String("zone-id", "", "filter by zone id")
	typ := fs.String("type", "", "filter by disaster type")
	status := fs.String("status", "", "filter by status")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.sos.Refresh(ctx); err != nil {
		fmt.Printf("Fetch failed: %s\n", api.Feedback(err))
		return nil
	}

	params := query.SosParams{
		Search:   *search,
		Status:   domain.ParseSosStatus(*status),
		ZoneName: *zoneName,
		ZoneID:   *zoneID,
		PageSize: a.cfg.Pages.SosPageSize,
	}
	// A malformed type degrades to no filter
	if t := domain.ParseDisasterType(*typ); *typ != "" && t != domain.DisasterUnknown {
		params.Type = t
	}
	params.SetPage(*page)

	printSosResult(a.sos.Query(params))
	return nil
}

func (a *app) zonesCmd(args []string) error {
	fs := flag.NewFlagSet("zones", flag.ContinueOnError)
	search := fs.String("search", "", "search zone names")
	typ := fs.String("type", "", "filter by disaster type")
	danger := fs.String("danger", "", "filter by danger level")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := query.ZoneParams{
		Search:   *search,
		PageSize: a.cfg.Pages.ZonePageSize,
	}
	if t := domain.ParseDisasterType(*typ); *typ != "" && t != domain.DisasterUnknown {
		params.Type = t
	}
	if d := domain.DangerLevel(*danger); d.Rank() > 0 {
		params.Danger = d
	}
	params.SetPage(*page)

	printZoneResult(a.zones.Query(params))
	return nil
}

func (a *app) overviewCmd(ctx context.Context) error {
	if a.guard.Session().Authenticated {
		if err := a.sos.Refresh(ctx); err != nil {
			fmt.Printf("Fetch failed: %s\n", api.Feedback(err))
		}
	}
	printOverview(a.dashboard.GetOverview())
	return nil
}

// watchCmd keeps the periodic session check running until interrupted
func (a *app) watchCmd(ctx context.Context) error {
	watcher, err := session.NewWatcher(a.guard, a.cfg.Session.CheckInterval)
	if err != nil {
		return err
	}
	watcher.Start()
	defer watcher.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	return nil
}

func buildStore(cfg *config.Config) (credstore.Store, error) {
	switch cfg.Store.Kind {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		return credstore.NewRedisStore(client), nil
	default:
		return credstore.NewFileStore(cfg.Store.FilePath), nil
	}
}

// seedZones mirrors the registry's placeholder dataset
func seedZones() []domain.DisasterZone {
	return []domain.DisasterZone{
		{ID: 1, Name: "Mumbai Flood Zone", DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerHigh, CenterLatitude: 19.076, CenterLongitude: 72.8777, RadiusKm: 20},
		{ID: 2, Name: "Delhi Heatwave Zone", DisasterType: domain.DisasterHeatWave, DangerLevel: domain.DangerLow, CenterLatitude: 28.7041, CenterLongitude: 77.1025, RadiusKm: 10},
		{ID: 3, Name: "Chennai Cyclone Risk", DisasterType: domain.DisasterCyclone, DangerLevel: domain.DangerMedium, CenterLatitude: 13.0827, CenterLongitude: 80.2707, RadiusKm: 15},
		{ID: 4, Name: "Kolkata Earthquake Zone", DisasterType: domain.DisasterEarthquake, DangerLevel: domain.DangerHigh, CenterLatitude: 22.5726, CenterLongitude: 88.3639, RadiusKm: 12},
		{ID: 5, Name: "Ahmedabad Drought Area", DisasterType: domain.DisasterDrought, DangerLevel: domain.DangerMedium, CenterLatitude: 23.0225, CenterLongitude: 72.5714, RadiusKm: 25},
		{ID: 6, Name: "Bengaluru Urban Flood Risk", DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerLow, CenterLatitude: 12.9716, CenterLongitude: 77.5946, RadiusKm: 8},
		{ID: 7, Name: "Hyderabad Heatwave Warning", DisasterType: domain.DisasterHeatWave, DangerLevel: domain.DangerHigh, CenterLatitude: 17.385, CenterLongitude: 78.4867, RadiusKm: 18},
		{ID: 8, Name: "Assam Flood-Prone Area", DisasterType: domain.DisasterFlood, DangerLevel: domain.DangerHigh, CenterLatitude: 26.2006, CenterLongitude: 92.9376, RadiusKm: 30},
		{ID: 9, Name: "Rajasthan Desert Drought", DisasterType: domain.DisasterDrought, DangerLevel: domain.DangerLow, CenterLatitude: 27.0238, CenterLongitude: 74.2179, RadiusKm: 40},
		{ID: 10, Name: "Uttarakhand Landslide Zone", DisasterType: domain.DisasterLandslide, DangerLevel: domain.DangerMedium, CenterLatitude: 30.0668, CenterLongitude: 79.0193, RadiusKm: 22},
	}
}
